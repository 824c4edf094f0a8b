package utils

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidPhoneNumber is returned for inputs that are not an 11-digit
// Iraqi mobile number in local notation (e.g. 07801234567). Inputs already
// carrying the +964 country code exceed 11 digits and are rejected too;
// callers must present the local form.
var ErrInvalidPhoneNumber = errors.New("invalid phone number: expected 11 digits in local format")

var nonDigits = regexp.MustCompile(`\D`)

// NormalizePhoneNumber converts a user-entered Iraqi mobile number into the
// canonical digits-only form used as a WhatsApp deep-link target and lookup
// key: "964" followed by the subscriber number with no leading zero, e.g.
// "0780 123 4567" -> "9647801234567". Pure and deterministic.
func NormalizePhoneNumber(raw string) (string, error) {
	digits := nonDigits.ReplaceAllString(raw, "")

	if len(digits) != 11 {
		return "", ErrInvalidPhoneNumber
	}

	// Remove country code if present, then a single leading zero
	if strings.HasPrefix(digits, "00964") {
		digits = digits[5:]
	} else if strings.HasPrefix(digits, "964") {
		digits = digits[3:]
	}
	digits = strings.TrimPrefix(digits, "0")

	return "964" + digits, nil
}

// IsCanonicalPhone reports whether s is already in canonical form: 13
// digits starting with 964.
func IsCanonicalPhone(s string) bool {
	if len(s) != 13 || !strings.HasPrefix(s, "964") {
		return false
	}
	return nonDigits.ReplaceAllString(s, "") == s
}
