package store

import (
	"context"

	"business-buddy/internal/data/entity"
	"business-buddy/pkg/database"

	"go.uber.org/zap"
)

// UserStore holds registered users. Email lookups are case-insensitive.
type UserStore interface {
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
}

// BookingFilter carries optional equality filters for listing bookings
type BookingFilter struct {
	Email  string
	Status string
}

// BookingStore holds mentoring bookings. FindAll returns newest first.
// FindByID returns (nil, nil) when the id is unknown.
type BookingStore interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id string) (*entity.Booking, error)
	FindAll(ctx context.Context, filter BookingFilter) ([]*entity.Booking, error)
	Update(ctx context.Context, booking *entity.Booking) error
}

// Store groups the per-entity stores behind one injection point. It is
// constructed once at process start; the memory variant lives exactly as long
// as the process.
type Store struct {
	User    UserStore
	Booking BookingStore
}

// NewMemoryStore builds the in-memory variant
func NewMemoryStore(log *zap.Logger) *Store {
	return &Store{
		User:    NewMemoryUserStore(log),
		Booking: NewMemoryBookingStore(log),
	}
}

// NewPostgresStore builds the remote-table variant
func NewPostgresStore(db database.PgxIface, log *zap.Logger) *Store {
	return &Store{
		User:    NewPostgresUserStore(db, log),
		Booking: NewPostgresBookingStore(db, log),
	}
}
