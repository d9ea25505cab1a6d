package entity

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// ValidBookingStatus reports whether the value is one of the four enumerated
// statuses. Transitions between them are deliberately unconstrained.
func ValidBookingStatus(value string) bool {
	switch BookingStatus(value) {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID            string        `db:"id"`
	FullName      string        `db:"full_name"`
	Email         string        `db:"email"` // stored lowercased and trimmed
	Phone         string        `db:"phone"`
	BusinessName  *string       `db:"business_name"`
	BusinessType  string        `db:"business_type"`
	PreferredDate string        `db:"preferred_date"` // calendar date as submitted
	PreferredTime string        `db:"preferred_time"`
	Topics        string        `db:"topics"`
	Experience    string        `db:"experience_level"`
	Challenges    *string       `db:"challenges"`
	Status        BookingStatus `db:"status"`
	CreatedAt     time.Time     `db:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at"`
}
