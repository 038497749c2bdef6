// Package validator provides input validation and sanitization functions
// for account and resource payloads.
package validator

import (
	"errors"
	"net/mail"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Validation errors
var (
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrInvalidAirportCode = errors.New("invalid airport code")
	ErrWeakPassword       = errors.New("password not strong enough")
	ErrInputTooLong       = errors.New("input exceeds maximum length")
	ErrEmptyInput         = errors.New("input cannot be empty")
)

// IATA codes are three letters
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// MaxPasswordLength is the bcrypt input limit in bytes.
const MaxPasswordLength = 72

// PasswordPolicy describes what a password must contain.
type PasswordPolicy struct {
	MinLength    int
	RequireMixed bool // upper, lower, digit and symbol
}

// DefaultPasswordPolicy is used when no policy is configured.
var DefaultPasswordPolicy = PasswordPolicy{MinLength: 8, RequireMixed: true}

// ValidateEmail validates email address format according to RFC 5322.
// Returns nil if valid, or an appropriate error.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))

	if email == "" {
		return ErrEmptyInput
	}

	// RFC 5321 specifies max email length of 254 characters
	if utf8.RuneCountInString(email) > 254 {
		return ErrInputTooLong
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return ErrInvalidEmail
	}

	return nil
}

// ValidatePassword checks password against policy.
func ValidatePassword(password string, policy PasswordPolicy) error {
	if password == "" {
		return ErrEmptyInput
	}
	if len(password) > MaxPasswordLength {
		return ErrInputTooLong
	}
	if utf8.RuneCountInString(password) < policy.MinLength {
		return ErrWeakPassword
	}
	if !policy.RequireMixed {
		return nil
	}

	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}
	if !upper || !lower || !digit || !symbol {
		return ErrWeakPassword
	}
	return nil
}

// NormalizeAirportCode upper-cases and validates an IATA code.
func NormalizeAirportCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return "", ErrEmptyInput
	}
	if !airportCodeRegex.MatchString(code) {
		return "", ErrInvalidAirportCode
	}
	return code, nil
}

// SanitizeString removes control characters and trims whitespace. Input
// still longer than maxLength runes after cleaning is rejected with
// ErrInputTooLong rather than cut short. A maxLength of 0 means no limit.
func SanitizeString(input string, maxLength int) (string, error) {
	// Remove control characters (ASCII 0-31 and 127)
	input = strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return -1
		}
		return r
	}, input)

	// Trim whitespace
	input = strings.TrimSpace(input)

	if maxLength > 0 && utf8.RuneCountInString(input) > maxLength {
		return "", ErrInputTooLong
	}

	return input, nil
}
