package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var nonDigitRegex = regexp.MustCompile(`[^0-9]`)

func StrPtr(s string) *string {
	return &s
}

func PtrString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ToUint(id string) (uint, error) {
	n, err := strconv.ParseUint(id, 10, 64)
	return uint(n), err
}

// NormalizePhonePK converts Pakistani phone numbers to E.164 form.
// "0300-1234567" and "3001234567" both become "+923001234567".
func NormalizePhonePK(phone string) string {
	digits := nonDigitRegex.ReplaceAllString(phone, "")

	switch {
	case strings.HasPrefix(digits, "92"):
		return "+" + digits
	case strings.HasPrefix(digits, "0"):
		return "+92" + digits[1:]
	case digits == "":
		return ""
	default:
		return "+92" + digits
	}
}
