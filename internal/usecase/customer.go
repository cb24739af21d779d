package usecase

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrNameRequired  = errors.New("customer name is required")
	ErrPhoneRequired = errors.New("customer phone is required")
	ErrInvalidPhone  = errors.New("customer phone must be a 10-digit number")
)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// ValidateCustomer trims the name and reduces the phone to its digits
// (spaces and hyphens removed). The phone must then be exactly ten digits.
func ValidateCustomer(name, phone string) (string, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", ErrNameRequired
	}
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return "", "", ErrPhoneRequired
	}
	digits := strings.NewReplacer(" ", "", "-", "", "\t", "").Replace(phone)
	if !phonePattern.MatchString(digits) {
		return "", "", ErrInvalidPhone
	}
	return name, digits, nil
}
