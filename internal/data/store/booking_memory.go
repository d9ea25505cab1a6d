package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"business-buddy/internal/data/entity"
	"business-buddy/pkg/utils"

	"go.uber.org/zap"
)

type memoryBookingStore struct {
	mu       sync.RWMutex
	bookings []entity.Booking
	log      *zap.Logger
}

func NewMemoryBookingStore(log *zap.Logger) BookingStore {
	return &memoryBookingStore{
		log: log.With(zap.String("store", "booking"), zap.String("driver", "memory")),
	}
}

func (s *memoryBookingStore) Create(_ context.Context, booking *entity.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookings = append(s.bookings, *booking)

	s.log.Debug("Booking stored", zap.String("booking_id", booking.ID), zap.Int("total", len(s.bookings)))
	return nil
}

func (s *memoryBookingStore) FindByID(_ context.Context, id string) (*entity.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			booking := s.bookings[i]
			return &booking, nil
		}
	}

	return nil, nil
}

func (s *memoryBookingStore) FindAll(_ context.Context, filter BookingFilter) ([]*entity.Booking, error) {
	email := utils.NormalizeEmail(filter.Email)

	s.mu.RLock()
	matched := make([]*entity.Booking, 0, len(s.bookings))
	for i := range s.bookings {
		if email != "" && s.bookings[i].Email != email {
			continue
		}
		if filter.Status != "" && string(s.bookings[i].Status) != filter.Status {
			continue
		}
		booking := s.bookings[i]
		matched = append(matched, &booking)
	}
	s.mu.RUnlock()

	// Newest first; stable so same-timestamp records keep insertion order
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	return matched, nil
}

func (s *memoryBookingStore) Update(_ context.Context, booking *entity.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID == booking.ID {
			s.bookings[i] = *booking
			return nil
		}
	}

	return fmt.Errorf("booking %s not found", booking.ID)
}
