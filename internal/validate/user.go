// Package validate holds the field validators guarding the client and
// server boundary. Every function is a pure, total predicate: invalid
// or malformed input yields false (or a zero sanitized value), never a
// panic, so these are safe to call on every form submission and on
// every record read off the wire.
//
// All length bounds count characters (runes), not bytes, so multibyte
// input is measured the way users see it.
package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxInputLength is the default truncation bound for SanitizeInput.
const MaxInputLength = 255

// emailRe matches the general local@domain.tld shape: no embedded
// whitespace, at least one @ and a dot after it.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// IsValidEmail reports whether email looks like local@domain.tld after
// trimming surrounding whitespace.
func IsValidEmail(email string) bool {
	if email == "" {
		return false
	}
	return emailRe.MatchString(strings.TrimSpace(email))
}

// IsValidPassword requires at least 8 characters with one uppercase
// letter, one lowercase letter and one digit. There is no upper bound.
func IsValidPassword(password string) bool {
	if utf8.RuneCountInString(password) < 8 {
		return false
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit
}

// IsUniversityEmail reports whether email is valid and belongs to a
// .edu domain.
func IsUniversityEmail(email string) bool {
	if !IsValidEmail(email) {
		return false
	}
	return strings.HasSuffix(strings.TrimSpace(strings.ToLower(email)), ".edu")
}

// IsValidUsername accepts 3-20 letters, digits or underscores.
func IsValidUsername(username string) bool {
	trimmed := strings.TrimSpace(username)
	if n := utf8.RuneCountInString(trimmed); n < 3 || n > 20 {
		return false
	}
	return usernameRe.MatchString(trimmed)
}

// IsValidPhoneNumber strips formatting and requires exactly 10 digits,
// or 11 when the number carries a leading country code (+).
func IsValidPhoneNumber(phone string) bool {
	if phone == "" {
		return false
	}
	hasCountryCode := strings.HasPrefix(strings.TrimSpace(phone), "+")

	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}

	if hasCountryCode {
		return digits == 11
	}
	return digits == 10
}

// SanitizeInput trims surrounding whitespace and truncates to
// maxLength characters. A non-positive maxLength falls back to
// MaxInputLength.
func SanitizeInput(input string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = MaxInputLength
	}
	trimmed := strings.TrimSpace(input)
	if runes := []rune(trimmed); len(runes) > maxLength {
		return string(runes[:maxLength])
	}
	return trimmed
}
