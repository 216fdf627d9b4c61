package exotel

import (
	"fmt"
	"regexp"
)

var (
	phoneNumberRe = regexp.MustCompile(`^\+[1-9]\d{10,14}$`)

	// Scheme, then a domain name, localhost or dotted IPv4 host, an optional
	// port and an optional path/query.
	urlRe = regexp.MustCompile(`(?i)^(?:http|ftp)s?://` +
		`(?:(?:[A-Z0-9](?:[A-Z0-9-]{0,61}[A-Z0-9])?\.)+(?:[A-Z]{2,6}\.?|[A-Z0-9-]{2,}\.?)|` +
		`localhost|` +
		`\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})` +
		`(?::\d+)?` +
		`(?:/?|[/?]\S+)$`)
)

// ValidatePhoneNumber checks value against the E.164 subset the provider
// accepts: a leading +, a nonzero first digit, 11 to 15 digits in total.
func ValidatePhoneNumber(value string) error {
	if !phoneNumberRe.MatchString(value) {
		return &APIError{
			Kind:        ErrValidation,
			Description: fmt.Sprintf("%s is not a valid phone number as per E.164 format", value),
		}
	}
	return nil
}

// ValidateURL checks value for an HTTP(S)/FTP(S) URL shape.
func ValidateURL(value string) error {
	if !urlRe.MatchString(value) {
		return &APIError{
			Kind:        ErrValidation,
			Description: fmt.Sprintf("%s is not a valid url", value),
		}
	}
	return nil
}

// validateNumbers applies the phone validator to every element and reports
// all rejected values with their positions in a single error.
func validateNumbers(numbers []string) error {
	var invalid []InvalidNumber
	for i, num := range numbers {
		if err := ValidatePhoneNumber(num); err != nil {
			invalid = append(invalid, InvalidNumber{Position: i, Value: num})
		}
	}
	if len(invalid) > 0 {
		return &InvalidNumbersError{Invalid: invalid}
	}
	return nil
}
