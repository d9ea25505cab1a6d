package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"business-buddy/internal/data/entity"
	"business-buddy/internal/data/store"
	"business-buddy/internal/dto/request"
	"business-buddy/internal/dto/response"
	"business-buddy/pkg/metrics"
	"business-buddy/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error)
	ListBookings(ctx context.Context, filter store.BookingFilter) (*response.BookingListResponse, error)
	UpdateBooking(ctx context.Context, req *request.UpdateBookingRequest) (*response.UpdateBookingResponse, error)
}

type bookingService struct {
	store *store.Store
	log   *zap.Logger
}

func NewBookingService(st *store.Store, log *zap.Logger) BookingService {
	return &bookingService{
		store: st,
		log:   log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error) {
	// Validation order: presence, then email syntax, then date
	if errs := utils.ValidateStruct(req); errs != nil {
		if missing := utils.MissingFields(errs); len(missing) > 0 {
			s.log.Warn("Booking validation failed", zap.Strings("missing", missing))
			metrics.CountBooking("create", "invalid")
			return nil, fmt.Errorf("%s", utils.MissingFieldsMessage(missing))
		}
	}

	if !utils.IsValidEmail(req.Email) {
		s.log.Warn("Invalid booking email", zap.String("email", req.Email))
		metrics.CountBooking("create", "invalid")
		return nil, fmt.Errorf("Invalid email format")
	}

	preferredDate, err := utils.ParseCalendarDate(req.PreferredDate)
	if err != nil {
		s.log.Warn("Unparseable preferred date", zap.String("date", req.PreferredDate))
		metrics.CountBooking("create", "invalid")
		return nil, fmt.Errorf("Invalid date format")
	}

	if utils.BeforeToday(preferredDate) {
		s.log.Warn("Preferred date in the past", zap.String("date", req.PreferredDate))
		metrics.CountBooking("create", "invalid")
		return nil, fmt.Errorf("Preferred date cannot be in the past")
	}

	now := time.Now()
	booking := &entity.Booking{
		ID:            utils.GenerateID("booking"),
		FullName:      strings.TrimSpace(req.FullName),
		Email:         utils.NormalizeEmail(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		BusinessName:  trimOptional(req.BusinessName),
		BusinessType:  req.BusinessType,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Topics:        strings.TrimSpace(req.Topics),
		Experience:    req.Experience,
		Challenges:    trimOptional(req.Challenges),
		Status:        entity.BookingStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.store.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking", zap.Error(err), zap.String("booking_id", booking.ID))
		metrics.CountBooking("create", "error")
		return nil, fmt.Errorf("failed to save booking")
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID),
		zap.String("preferred_date", booking.PreferredDate),
	)
	metrics.CountBooking("create", "success")

	return &response.CreateBookingResponse{
		Message: "Booking submitted successfully! We will contact you within 24 hours to confirm your session.",
		Booking: response.BookingEcho{
			ID:        booking.ID,
			Status:    booking.Status,
			CreatedAt: booking.CreatedAt,
		},
	}, nil
}

func (s *bookingService) ListBookings(ctx context.Context, filter store.BookingFilter) (*response.BookingListResponse, error) {
	bookings, err := s.store.Booking.FindAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("failed to list bookings")
	}

	resp := response.BookingsToListResponse(bookings)
	return &resp, nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, req *request.UpdateBookingRequest) (*response.UpdateBookingResponse, error) {
	if req.ID == "" || req.Status == "" {
		metrics.CountBooking("update", "invalid")
		return nil, fmt.Errorf("Missing booking ID or status")
	}

	if !entity.ValidBookingStatus(req.Status) {
		metrics.CountBooking("update", "invalid")
		return nil, fmt.Errorf("Invalid status")
	}

	booking, err := s.store.Booking.FindByID(ctx, req.ID)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", req.ID))
		metrics.CountBooking("update", "error")
		return nil, fmt.Errorf("failed to find booking")
	}
	if booking == nil {
		metrics.CountBooking("update", "not_found")
		return nil, fmt.Errorf("Booking not found")
	}

	// Merge-update: any enumerated status may follow any other
	booking.Status = entity.BookingStatus(req.Status)
	booking.UpdatedAt = time.Now()

	if err := s.store.Booking.Update(ctx, booking); err != nil {
		s.log.Error("Failed to update booking", zap.Error(err), zap.String("booking_id", req.ID))
		metrics.CountBooking("update", "error")
		return nil, fmt.Errorf("failed to update booking")
	}

	s.log.Info("Booking updated",
		zap.String("booking_id", booking.ID),
		zap.String("status", string(booking.Status)),
	)
	metrics.CountBooking("update", "success")

	return &response.UpdateBookingResponse{
		Message: "Booking updated successfully",
		Booking: response.BookingToResponse(booking),
	}, nil
}

// trimOptional trims an optional field; empty values collapse to nil
func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
