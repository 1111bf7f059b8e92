package audit

import (
	"fmt"
	"strings"
)

// Redacted is the sentinel stored in place of sensitive values.
const Redacted = "[REDACTED]"

// Field-name fragments whose values are fully redacted.
var sensitiveFragments = []string{
	"password", "pass", "secret", "token", "otp", "pin",
	"clientsecret", "client_secret",
}

// Field-name fragments holding Aadhaar-style national ID numbers, reduced
// to their last four digits.
var aadhaarFragments = []string{"aadhar", "aadhaar"}

// MaskValue maps (field name, value) to a display-safe value. Matching is
// case-insensitive on field-name substrings. Nil stays nil so a created or
// cleared sensitive field still reads as "was absent". Pure and total.
func MaskValue(field string, v any) any {
	if v == nil {
		return nil
	}

	lower := strings.ToLower(field)
	for _, frag := range sensitiveFragments {
		if strings.Contains(lower, frag) {
			return Redacted
		}
	}
	for _, frag := range aadhaarFragments {
		if strings.Contains(lower, frag) {
			return maskAadhaar(v)
		}
	}
	return v
}

// maskAadhaar keeps only the trailing 4 digits: XXXX-XXXX-1234. A value
// with no digits at all is returned unmodified.
func maskAadhaar(v any) any {
	s := fmt.Sprint(v)
	var digits []rune
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) == 0 {
		return v
	}
	if len(digits) > 4 {
		digits = digits[len(digits)-4:]
	}
	return "XXXX-XXXX-" + string(digits)
}
