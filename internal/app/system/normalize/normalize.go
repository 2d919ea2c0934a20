// Package normalize provides helper functions for consistent string
// normalization across the application. Use these helpers instead of
// scattered strings.ToLower and strings.TrimSpace calls.
package normalize

import (
	"strings"
	"unicode"
)

// Email normalizes an email address by trimming whitespace and converting
// to lowercase. This is the canonical form stored and compared.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Phone removes all whitespace from a phone number. "0712 345 678"
// becomes "0712345678"; the result is what the phone pattern is matched
// against and what gets stored.
func Phone(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// Field trims surrounding whitespace from a free-text field. Used for the
// required-field checks at submit time.
func Field(s string) string {
	return strings.TrimSpace(s)
}

// ClientIP normalizes a client IP string for rate-limit keys.
func ClientIP(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
