package exotel

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels for provider error kinds. Callers branch with errors.Is.
var (
	ErrValidation           = errors.New("validation error")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrPaymentRequired      = errors.New("payment required")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrNotFound             = errors.New("not found")
	ErrThrottled            = errors.New("request was throttled")
	ErrUniqueViolation      = errors.New("unique violation")
)

// APIError is a provider-reported failure. Kind is one of the package
// sentinels, Description is sourced from the provider error body where the
// API returns one.
type APIError struct {
	Kind        error
	StatusCode  int
	Description string
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("exotel: %v (status %d)", e.Kind, e.StatusCode)
	}
	return fmt.Sprintf("exotel: %v (status %d): %s", e.Kind, e.StatusCode, e.Description)
}

func (e *APIError) Unwrap() error { return e.Kind }

// InvalidNumber identifies one rejected phone number and its position in the
// input slice.
type InvalidNumber struct {
	Position int
	Value    string
}

// InvalidNumbersError reports every phone number that failed E.164 validation.
// It unwraps to ErrValidation.
type InvalidNumbersError struct {
	Invalid []InvalidNumber
}

func (e *InvalidNumbersError) Error() string {
	vals := make([]string, 0, len(e.Invalid))
	for _, n := range e.Invalid {
		vals = append(vals, fmt.Sprintf("%s (position %d)", n.Value, n.Position))
	}
	return fmt.Sprintf("exotel: invalid numbers as per E.164 format: %s", strings.Join(vals, ", "))
}

func (e *InvalidNumbersError) Unwrap() error { return ErrValidation }
