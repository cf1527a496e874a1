package search

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/Veraticus/fancy-numbers/internal/common"
	"github.com/Veraticus/fancy-numbers/internal/model"
)

// birthdateLayouts are the digit renderings of a date searched for in numbers:
// DDMMYY, DDMMYYYY, DDMM, MMDD, YYYYMMDD and YYMMDD.
var birthdateLayouts = []string{"020106", "02012006", "0201", "0102", "20060102", "060102"}

// BirthdateVariants renders a YYYY-MM-DD date in every searchable layout.
func BirthdateVariants(dob string) ([]string, error) {
	date, err := time.Parse(time.DateOnly, strings.TrimSpace(dob))
	if err != nil {
		return nil, fmt.Errorf("%w: birthdate %q: %w", common.ErrInvalidArgument, dob, err)
	}
	out := make([]string, len(birthdateLayouts))
	for i, layout := range birthdateLayouts {
		out[i] = date.Format(layout)
	}
	return out, nil
}

// VehicleVariants returns the cleaned plate, its digits and its last four
// characters. Plates shorter than four characters yield nothing.
func VehicleVariants(plate string) []string {
	clean := strings.ToUpper(strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return r
		}
		return -1
	}, plate))
	if len(clean) < 4 {
		return nil
	}

	variants := []string{clean}
	if numeric := model.StripNonDigits(clean); len(numeric) >= 3 {
		variants = append(variants, numeric)
	}
	return append(variants, clean[len(clean)-4:])
}

// MatchBirthdate reports whether n contains any rendering of dob.
func MatchBirthdate(n model.PhoneNumber, dob string) (bool, error) {
	variants, err := BirthdateVariants(dob)
	if err != nil {
		return false, err
	}
	return n.Valid() && containsAny(string(n), variants), nil
}

// MatchVehicle reports whether n contains any variant of the plate.
func MatchVehicle(n model.PhoneNumber, plate string) bool {
	return n.Valid() && containsAny(string(n), VehicleVariants(plate))
}
