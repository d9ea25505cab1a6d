package store

import (
	"context"
	"fmt"
	"strings"

	"business-buddy/internal/data/entity"
	"business-buddy/pkg/database"
	"business-buddy/pkg/utils"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type postgresBookingStore struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPostgresBookingStore(db database.PgxIface, log *zap.Logger) BookingStore {
	return &postgresBookingStore{
		db:  db,
		log: log.With(zap.String("store", "booking"), zap.String("driver", "postgres")),
	}
}

const bookingColumns = `id, full_name, email, phone, business_name, business_type,
	preferred_date, preferred_time, topics, experience_level, challenges,
	status, created_at, updated_at`

func (s *postgresBookingStore) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := s.db.Exec(ctx, query,
		booking.ID,
		booking.FullName,
		booking.Email,
		booking.Phone,
		booking.BusinessName,
		booking.BusinessType,
		booking.PreferredDate,
		booking.PreferredTime,
		booking.Topics,
		booking.Experience,
		booking.Challenges,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID, err)
	}

	return nil
}

func (s *postgresBookingStore) FindByID(ctx context.Context, id string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := s.scanRow(s.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		s.log.Error("Failed to find booking",
			zap.Error(err),
			zap.String("booking_id", id),
		)
		return nil, fmt.Errorf("find booking %s: %w", id, err)
	}

	return booking, nil
}

func (s *postgresBookingStore) FindAll(ctx context.Context, filter BookingFilter) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings`

	var conds []string
	var args []any

	if filter.Email != "" {
		args = append(args, utils.NormalizeEmail(filter.Email))
		conds = append(conds, fmt.Sprintf("email = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := s.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}

func (s *postgresBookingStore) Update(ctx context.Context, booking *entity.Booking) error {
	query := `UPDATE bookings SET status = $2, updated_at = $3 WHERE id = $1`

	tag, err := s.db.Exec(ctx, query, booking.ID, booking.Status, booking.UpdatedAt)
	if err != nil {
		s.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID),
		)
		return fmt.Errorf("update booking %s: %w", booking.ID, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", booking.ID)
	}

	return nil
}

func (s *postgresBookingStore) scanRow(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.FullName,
		&booking.Email,
		&booking.Phone,
		&booking.BusinessName,
		&booking.BusinessType,
		&booking.PreferredDate,
		&booking.PreferredTime,
		&booking.Topics,
		&booking.Experience,
		&booking.Challenges,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
