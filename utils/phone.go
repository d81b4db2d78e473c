package utils

import "regexp"

var nonDigits = regexp.MustCompile(`\D`)

// NormalizePhoneNumber strips everything but digits for storage and lookup.
func NormalizePhoneNumber(phoneNumber string) string {
	return nonDigits.ReplaceAllString(phoneNumber, "")
}

// ValidatePhoneNumber accepts exactly 10 digits after normalization.
func ValidatePhoneNumber(phoneNumber string) bool {
	return len(NormalizePhoneNumber(phoneNumber)) == 10
}
