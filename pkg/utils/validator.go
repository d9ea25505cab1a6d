package utils

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their json name so error messages match the wire format
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// ValidateStruct runs tag-based validation and returns the field errors, if any
func ValidateStruct(data interface{}) validator.ValidationErrors {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		return validationErrors
	}

	return nil
}

// MissingFields extracts the json names of fields that failed the "required" tag
func MissingFields(errs validator.ValidationErrors) []string {
	var missing []string
	for _, err := range errs {
		if err.Tag() == "required" {
			missing = append(missing, err.Field())
		}
	}
	return missing
}

// MissingFieldsMessage joins missing field names into the error message
// returned to clients
func MissingFieldsMessage(missing []string) string {
	return "Missing required fields: " + strings.Join(missing, ", ")
}

// Intentionally loose: local-part@domain-with-dot, no whitespace
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail checks email syntax with a simple pattern match
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// NormalizeEmail lowercases and trims an email for case-insensitive matching
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ParseCalendarDate parses a preferred-date string as a calendar date.
// Accepts plain dates ("2006-01-02") and full RFC3339 timestamps.
func ParseCalendarDate(value string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", value, time.Local); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(time.Local), nil
}

// BeforeToday reports whether the given time falls on a calendar date
// strictly before today. Both sides are truncated to midnight.
func BeforeToday(t time.Time) bool {
	y, m, d := t.Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, time.Local)

	ny, nm, nd := time.Now().Date()
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, time.Local)

	return date.Before(today)
}
