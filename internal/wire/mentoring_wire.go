package wire

import (
	"business-buddy/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMentoring(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Post("/mentoring/book", bookingHandler.CreateBooking)
	r.Get("/mentoring/book", bookingHandler.ListBookings)
	r.Put("/mentoring/book", bookingHandler.UpdateBooking)
}
