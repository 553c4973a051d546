// Package newsletter validates newsletter sign-ups. Nothing is stored.
package newsletter

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrEmptyEmail is returned for blank input
	ErrEmptyEmail = errors.New("please enter your email address")
	// ErrInvalidEmail is returned when the address does not look like an email
	ErrInvalidEmail = errors.New("please enter a valid email address")

	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Validate checks the address and returns it trimmed
func Validate(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrEmptyEmail
	}
	if !emailRegex.MatchString(email) {
		return "", ErrInvalidEmail
	}
	return email, nil
}
