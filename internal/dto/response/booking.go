package response

import (
	"time"

	"business-buddy/internal/data/entity"
)

type BookingResponse struct {
	ID            string               `json:"id"`
	FullName      string               `json:"full_name"`
	Email         string               `json:"email"`
	Phone         string               `json:"phone"`
	BusinessName  *string              `json:"business_name"`
	BusinessType  string               `json:"business_type"`
	PreferredDate string               `json:"preferred_date"`
	PreferredTime string               `json:"preferred_time"`
	Topics        string               `json:"topics"`
	Experience    string               `json:"experience_level"`
	Challenges    *string              `json:"challenges"`
	Status        entity.BookingStatus `json:"status"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// BookingEcho is the minimal echo returned on creation
type BookingEcho struct {
	ID        string               `json:"id"`
	Status    entity.BookingStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
}

type CreateBookingResponse struct {
	Message string      `json:"message"`
	Booking BookingEcho `json:"booking"`
}

type UpdateBookingResponse struct {
	Message string          `json:"message"`
	Booking BookingResponse `json:"booking"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:            booking.ID,
		FullName:      booking.FullName,
		Email:         booking.Email,
		Phone:         booking.Phone,
		BusinessName:  booking.BusinessName,
		BusinessType:  booking.BusinessType,
		PreferredDate: booking.PreferredDate,
		PreferredTime: booking.PreferredTime,
		Topics:        booking.Topics,
		Experience:    booking.Experience,
		Challenges:    booking.Challenges,
		Status:        booking.Status,
		CreatedAt:     booking.CreatedAt,
		UpdatedAt:     booking.UpdatedAt,
	}
}

func BookingsToListResponse(bookings []*entity.Booking) BookingListResponse {
	resp := BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
		Total:    len(bookings),
	}
	for _, booking := range bookings {
		resp.Bookings = append(resp.Bookings, BookingToResponse(booking))
	}
	return resp
}
