package utils

import (
	"fmt"
	"strings"
	"unicode"
)

// PhoneDigits drops separators such as spaces, dashes, dots and parentheses
// along with a leading '+'.
func PhoneDigits(input string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(input) {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidatePhone accepts 7 to 15 digits once separators are removed.
func ValidatePhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return fmt.Errorf("phone is required")
	}
	for _, r := range strings.TrimSpace(phone) {
		if !unicode.IsDigit(r) && !strings.ContainsRune("+-. ()", r) {
			return fmt.Errorf("phone contains invalid character %q", r)
		}
	}
	digits := PhoneDigits(phone)
	if len(digits) < 7 || len(digits) > 15 {
		return fmt.Errorf("phone must be 7 to 15 digits")
	}
	return nil
}
