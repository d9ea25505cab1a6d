package entity

import "time"

type UserType string

const (
	UserTypeManufacturer UserType = "manufacturer"
	UserTypeSupplier     UserType = "supplier"
)

// ValidUserType reports whether the value is one of the enumerated roles
func ValidUserType(value string) bool {
	switch UserType(value) {
	case UserTypeManufacturer, UserTypeSupplier:
		return true
	}
	return false
}

type User struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"` // stored lowercased and trimmed
	PasswordHash string    `db:"password"`
	UserType     UserType  `db:"user_type"`
	CompanyName  string    `db:"company_name"`
	Phone        string    `db:"phone"`
	CreatedAt    time.Time `db:"created_at"`
}
