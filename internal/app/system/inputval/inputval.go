// Package inputval provides format validation for quote form inputs.
//
// The predicates here are pure and total: they never error and have no
// side effects. The patterns are deliberately conservative; the email
// check is not an RFC 5322 parser, it exists to catch obvious typos
// before a submission leaves the browser-facing layer.
package inputval

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/safispaces/safispaces/internal/app/system/normalize"
	"github.com/safispaces/safispaces/internal/domain/models"
)

var (
	// local-part@domain.tld with no whitespace or extra '@' anywhere.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Kenyan mobile numbers: +254 or 0 prefix, then a 1 or 7, then
	// exactly eight digits. Matched after whitespace removal.
	kenyanPhonePattern = regexp.MustCompile(`^(\+254|0)[17][0-9]{8}$`)
)

// IsValidEmail checks if the given string has a plausible email format.
// Empty strings are invalid (the field is required).
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidKenyanPhone checks if the given string is a Kenyan mobile number.
// The field is optional, so the empty string is valid. Internal whitespace
// is ignored ("0712 345 678" is accepted).
func IsValidKenyanPhone(phone string) bool {
	if strings.TrimSpace(phone) == "" {
		return true
	}
	return kenyanPhonePattern.MatchString(normalize.Phone(phone))
}

// IsValidServiceKey checks if the given string is one of the fixed
// service keys (case-insensitive, whitespace trimmed).
func IsValidServiceKey(s string) bool {
	return models.IsValidServiceKey(strings.ToLower(strings.TrimSpace(s)))
}

// IsValidHTTPURL checks if the given string is a valid http:// or https:// URL.
// Used to validate the configured CRM endpoint at startup.
func IsValidHTTPURL(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
