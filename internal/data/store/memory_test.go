package store

import (
	"context"
	"testing"
	"time"

	"business-buddy/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestUser(id, email string) *entity.User {
	return &entity.User{
		ID:           id,
		Name:         "Test User",
		Email:        email,
		PasswordHash: "hash",
		UserType:     entity.UserTypeManufacturer,
		CompanyName:  "Co",
		Phone:        "000",
		CreatedAt:    time.Now(),
	}
}

func TestMemoryUserStore(t *testing.T) {
	ctx := context.Background()
	users := NewMemoryUserStore(zap.NewNop())

	t.Run("FindByEmailEmptyStore", func(t *testing.T) {
		user, err := users.FindByEmail(ctx, "a@b.com")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("CreateAndFindCaseInsensitive", func(t *testing.T) {
		require.NoError(t, users.Create(ctx, newTestUser("user_1", "a@b.com")))

		user, err := users.FindByEmail(ctx, "A@B.COM")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "user_1", user.ID)
	})

	t.Run("FindAllPreservesInsertionOrder", func(t *testing.T) {
		require.NoError(t, users.Create(ctx, newTestUser("user_2", "b@b.com")))

		all, err := users.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "user_1", all[0].ID)
		assert.Equal(t, "user_2", all[1].ID)
	})

	t.Run("ReturnedRecordIsACopy", func(t *testing.T) {
		user, err := users.FindByEmail(ctx, "a@b.com")
		require.NoError(t, err)
		user.Name = "mutated"

		again, err := users.FindByEmail(ctx, "a@b.com")
		require.NoError(t, err)
		assert.Equal(t, "Test User", again.Name)
	})
}

func newTestBooking(id, email string, status entity.BookingStatus, createdAt time.Time) *entity.Booking {
	return &entity.Booking{
		ID:            id,
		FullName:      "Booker",
		Email:         email,
		Phone:         "000",
		BusinessType:  "retail",
		PreferredDate: "2030-01-01",
		PreferredTime: "morning",
		Topics:        "funding",
		Experience:    "beginner",
		Status:        status,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
}

func TestMemoryBookingStore(t *testing.T) {
	ctx := context.Background()
	bookings := NewMemoryBookingStore(zap.NewNop())

	base := time.Now()
	require.NoError(t, bookings.Create(ctx, newTestBooking("bk_1", "a@b.com", entity.BookingStatusPending, base)))
	require.NoError(t, bookings.Create(ctx, newTestBooking("bk_2", "c@d.com", entity.BookingStatusConfirmed, base.Add(time.Second))))
	require.NoError(t, bookings.Create(ctx, newTestBooking("bk_3", "a@b.com", entity.BookingStatusPending, base.Add(2*time.Second))))

	t.Run("FindByID", func(t *testing.T) {
		booking, err := bookings.FindByID(ctx, "bk_2")
		require.NoError(t, err)
		require.NotNil(t, booking)
		assert.Equal(t, entity.BookingStatusConfirmed, booking.Status)
	})

	t.Run("FindByIDUnknown", func(t *testing.T) {
		booking, err := bookings.FindByID(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, booking)
	})

	t.Run("FindAllNewestFirst", func(t *testing.T) {
		all, err := bookings.FindAll(ctx, BookingFilter{})
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "bk_3", all[0].ID)
		assert.Equal(t, "bk_2", all[1].ID)
		assert.Equal(t, "bk_1", all[2].ID)
	})

	t.Run("FilterByEmailCaseInsensitive", func(t *testing.T) {
		all, err := bookings.FindAll(ctx, BookingFilter{Email: "A@B.com"})
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "bk_3", all[0].ID)
		assert.Equal(t, "bk_1", all[1].ID)
	})

	t.Run("FilterByStatus", func(t *testing.T) {
		all, err := bookings.FindAll(ctx, BookingFilter{Status: "confirmed"})
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "bk_2", all[0].ID)
	})

	t.Run("CombinedFilters", func(t *testing.T) {
		all, err := bookings.FindAll(ctx, BookingFilter{Email: "a@b.com", Status: "confirmed"})
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("Update", func(t *testing.T) {
		booking, err := bookings.FindByID(ctx, "bk_1")
		require.NoError(t, err)

		booking.Status = entity.BookingStatusCancelled
		booking.UpdatedAt = time.Now()
		require.NoError(t, bookings.Update(ctx, booking))

		stored, err := bookings.FindByID(ctx, "bk_1")
		require.NoError(t, err)
		assert.Equal(t, entity.BookingStatusCancelled, stored.Status)
	})

	t.Run("UpdateUnknown", func(t *testing.T) {
		missing := newTestBooking("nope", "x@y.com", entity.BookingStatusPending, time.Now())
		err := bookings.Update(ctx, missing)
		assert.Error(t, err)
	})
}
