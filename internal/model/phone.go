// Package model defines the phone number type and the closed pattern and bucket vocabularies.
package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Veraticus/fancy-numbers/internal/common"
)

// NumberLength is the number of digits in a PhoneNumber.
const NumberLength = 10

// PhoneNumber is a string of exactly ten decimal digits with no country code or separators.
type PhoneNumber string

// ParsePhoneNumber strips every non-digit character from s and returns the result
// when exactly ten digits remain.
func ParsePhoneNumber(s string) (PhoneNumber, error) {
	digits := StripNonDigits(s)
	if len(digits) != NumberLength {
		return "", fmt.Errorf("%w: %q has %d digits", common.ErrInvalidNumber, s, len(digits))
	}
	return PhoneNumber(digits), nil
}

// StripNonDigits removes everything except ASCII digits.
func StripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Valid reports whether p holds exactly ten ASCII digits.
func (p PhoneNumber) Valid() bool {
	if len(p) != NumberLength {
		return false
	}
	for i := 0; i < len(p); i++ {
		if p[i] < '0' || p[i] > '9' {
			return false
		}
	}
	return true
}

// Int returns the numeric value of the number. Invalid numbers return an error.
func (p PhoneNumber) Int() (uint64, error) {
	if !p.Valid() {
		return 0, fmt.Errorf("%w: %q", common.ErrInvalidNumber, string(p))
	}
	return strconv.ParseUint(string(p), 10, 64)
}

// Digit returns the digit value at position i (0-indexed from the left).
func (p PhoneNumber) Digit(i int) int {
	return int(p[i] - '0')
}

// Format renders the number as XXX-XXX-XXXX. Invalid numbers are returned unchanged.
func (p PhoneNumber) Format() string {
	if !p.Valid() {
		return string(p)
	}
	return string(p[:3]) + "-" + string(p[3:6]) + "-" + string(p[6:])
}

func (p PhoneNumber) String() string {
	return string(p)
}
