package request

type CreateBookingRequest struct {
	FullName      string  `json:"fullName" validate:"required"`
	Email         string  `json:"email" validate:"required"`
	Phone         string  `json:"phone" validate:"required"`
	BusinessName  *string `json:"businessName,omitempty"`
	BusinessType  string  `json:"businessType" validate:"required"`
	PreferredDate string  `json:"preferredDate" validate:"required"`
	PreferredTime string  `json:"preferredTime" validate:"required"`
	Topics        string  `json:"topics" validate:"required"`
	Experience    string  `json:"experience" validate:"required"`
	Challenges    *string `json:"challenges,omitempty"`
}

type UpdateBookingRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
