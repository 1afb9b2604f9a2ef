// Package password holds the registration strength policy.
package password

import (
	"errors"
	"strings"
)

const (
	minLength = 8
	symbols   = "@$!%*?&"
)

var ErrWeakPassword = errors.New(
	"Password must be 8+ chars, include uppercase, lowercase, number & special char",
)

// Validate enforces the strength policy: at least 8 characters with an
// uppercase letter, a lowercase letter, a digit and a symbol from the
// allowed set, using no characters outside those classes.
func Validate(pw string) error {
	if len(pw) < minLength {
		return ErrWeakPassword
	}

	var upper, lower, digit, symbol bool
	for _, r := range pw {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(symbols, r):
			symbol = true
		default:
			return ErrWeakPassword
		}
	}

	if !upper || !lower || !digit || !symbol {
		return ErrWeakPassword
	}
	return nil
}
