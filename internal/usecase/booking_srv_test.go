package usecase

import (
	"context"
	"testing"
	"time"

	"business-buddy/internal/data/entity"
	"business-buddy/internal/data/store"
	"business-buddy/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBookingService() BookingService {
	return NewBookingService(store.NewMemoryStore(zap.NewNop()), zap.NewNop())
}

func validBookingRequest() *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		FullName:      "Thandi M",
		Email:         "thandi@example.com",
		Phone:         "+27 11 000 0000",
		BusinessType:  "retail",
		PreferredDate: time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		PreferredTime: "morning",
		Topics:        "funding, marketing",
		Experience:    "beginner",
	}
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc := newBookingService()

		resp, err := svc.CreateBooking(ctx, validBookingRequest())
		require.NoError(t, err)
		assert.Equal(t, entity.BookingStatusPending, resp.Booking.Status)
		assert.NotEmpty(t, resp.Booking.ID)
		assert.False(t, resp.Booking.CreatedAt.IsZero())
		assert.Contains(t, resp.Message, "Booking submitted successfully")
	})

	t.Run("TodayIsAccepted", func(t *testing.T) {
		svc := newBookingService()

		req := validBookingRequest()
		req.PreferredDate = time.Now().Format("2006-01-02")
		_, err := svc.CreateBooking(ctx, req)
		assert.NoError(t, err)
	})

	t.Run("YesterdayIsRejected", func(t *testing.T) {
		svc := newBookingService()

		req := validBookingRequest()
		req.PreferredDate = time.Now().AddDate(0, 0, -1).Format("2006-01-02")
		_, err := svc.CreateBooking(ctx, req)
		require.Error(t, err)
		assert.Equal(t, "Preferred date cannot be in the past", err.Error())
	})

	t.Run("MissingFieldsListedExactly", func(t *testing.T) {
		svc := newBookingService()

		req := validBookingRequest()
		req.FullName = ""
		req.Topics = ""
		_, err := svc.CreateBooking(ctx, req)
		require.Error(t, err)
		assert.Equal(t, "Missing required fields: fullName, topics", err.Error())
	})

	t.Run("PresenceCheckedBeforeEmailSyntax", func(t *testing.T) {
		svc := newBookingService()

		req := validBookingRequest()
		req.Email = "invalid-email"
		req.Topics = ""
		_, err := svc.CreateBooking(ctx, req)
		require.Error(t, err)
		assert.Equal(t, "Missing required fields: topics", err.Error())
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		svc := newBookingService()

		req := validBookingRequest()
		req.Email = "invalid-email"
		_, err := svc.CreateBooking(ctx, req)
		require.Error(t, err)
		assert.Equal(t, "Invalid email format", err.Error())
	})

	t.Run("UnparseableDate", func(t *testing.T) {
		svc := newBookingService()

		req := validBookingRequest()
		req.PreferredDate = "next tuesday"
		_, err := svc.CreateBooking(ctx, req)
		require.Error(t, err)
		assert.Equal(t, "Invalid date format", err.Error())
	})

	t.Run("EmptyOptionalFieldsCollapseToNil", func(t *testing.T) {
		svc := newBookingService()

		empty := "   "
		req := validBookingRequest()
		req.BusinessName = &empty
		resp, err := svc.CreateBooking(ctx, req)
		require.NoError(t, err)

		list, err := svc.ListBookings(ctx, store.BookingFilter{})
		require.NoError(t, err)
		require.Len(t, list.Bookings, 1)
		assert.Equal(t, resp.Booking.ID, list.Bookings[0].ID)
		assert.Nil(t, list.Bookings[0].BusinessName)
	})
}

func TestListBookings(t *testing.T) {
	ctx := context.Background()
	svc := newBookingService()

	first := validBookingRequest()
	_, err := svc.CreateBooking(ctx, first)
	require.NoError(t, err)

	second := validBookingRequest()
	second.Email = "other@example.com"
	_, err = svc.CreateBooking(ctx, second)
	require.NoError(t, err)

	t.Run("All", func(t *testing.T) {
		list, err := svc.ListBookings(ctx, store.BookingFilter{})
		require.NoError(t, err)
		assert.Equal(t, 2, list.Total)
	})

	t.Run("FilteredByEmail", func(t *testing.T) {
		list, err := svc.ListBookings(ctx, store.BookingFilter{Email: "Thandi@Example.com"})
		require.NoError(t, err)
		require.Equal(t, 1, list.Total)
		assert.Equal(t, "thandi@example.com", list.Bookings[0].Email)
	})

	t.Run("FilteredByStatus", func(t *testing.T) {
		list, err := svc.ListBookings(ctx, store.BookingFilter{Status: "cancelled"})
		require.NoError(t, err)
		assert.Equal(t, 0, list.Total)
	})
}

func TestUpdateBooking(t *testing.T) {
	ctx := context.Background()
	svc := newBookingService()

	created, err := svc.CreateBooking(ctx, validBookingRequest())
	require.NoError(t, err)

	t.Run("MissingIDOrStatus", func(t *testing.T) {
		_, err := svc.UpdateBooking(ctx, &request.UpdateBookingRequest{ID: created.Booking.ID})
		require.Error(t, err)
		assert.Equal(t, "Missing booking ID or status", err.Error())
	})

	t.Run("InvalidStatus", func(t *testing.T) {
		_, err := svc.UpdateBooking(ctx, &request.UpdateBookingRequest{ID: created.Booking.ID, Status: "archived"})
		require.Error(t, err)
		assert.Equal(t, "Invalid status", err.Error())
	})

	t.Run("UnknownID", func(t *testing.T) {
		_, err := svc.UpdateBooking(ctx, &request.UpdateBookingRequest{ID: "booking_0_missing", Status: "confirmed"})
		require.Error(t, err)
		assert.Equal(t, "Booking not found", err.Error())
	})

	t.Run("SuccessAdvancesUpdatedAt", func(t *testing.T) {
		before := created.Booking.CreatedAt

		resp, err := svc.UpdateBooking(ctx, &request.UpdateBookingRequest{ID: created.Booking.ID, Status: "confirmed"})
		require.NoError(t, err)
		assert.Equal(t, entity.BookingStatusConfirmed, resp.Booking.Status)
		assert.True(t, resp.Booking.UpdatedAt.After(before) || resp.Booking.UpdatedAt.Equal(before))
		assert.Equal(t, "Booking updated successfully", resp.Message)
	})

	t.Run("AnyTransitionAllowed", func(t *testing.T) {
		// completed back to pending is legal; there is no state machine
		_, err := svc.UpdateBooking(ctx, &request.UpdateBookingRequest{ID: created.Booking.ID, Status: "completed"})
		require.NoError(t, err)

		resp, err := svc.UpdateBooking(ctx, &request.UpdateBookingRequest{ID: created.Booking.ID, Status: "pending"})
		require.NoError(t, err)
		assert.Equal(t, entity.BookingStatusPending, resp.Booking.Status)
	})
}
