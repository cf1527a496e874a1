// Package numerology reduces phone numbers to their digit sums.
package numerology

import (
	"fmt"
	"strings"

	"github.com/Veraticus/fancy-numbers/internal/common"
	"github.com/Veraticus/fancy-numbers/internal/digits"
	"github.com/Veraticus/fancy-numbers/internal/model"
)

// Profile holds the numerology attributes of one number.
type Profile struct {
	Number         model.PhoneNumber `json:"number" yaml:"number"`
	DigitSum       int               `json:"digit_sum" yaml:"digit_sum"`
	SingleDigitSum int               `json:"single_digit_sum" yaml:"single_digit_sum"`
}

// Reduce computes the digit sum and digital root of n.
func Reduce(n model.PhoneNumber) (Profile, error) {
	if !n.Valid() {
		return Profile{}, fmt.Errorf("%w: %q", common.ErrInvalidNumber, string(n))
	}
	sum, err := digits.Sum(string(n))
	if err != nil {
		return Profile{}, err
	}
	root, err := digits.Root(sum)
	if err != nil {
		return Profile{}, err
	}
	return Profile{Number: n, DigitSum: sum, SingleDigitSum: root}, nil
}

// Criteria selects numbers by their sums. A nil field accepts any value.
type Criteria struct {
	DigitSum       *int
	SingleDigitSum *int
}

// Matches reports whether p satisfies every set field of c.
func (c Criteria) Matches(p Profile) bool {
	if c.DigitSum != nil && p.DigitSum != *c.DigitSum {
		return false
	}
	if c.SingleDigitSum != nil && p.SingleDigitSum != *c.SingleDigitSum {
		return false
	}
	return true
}

// Filter returns the profiles of the valid numbers that satisfy c, in input order.
func Filter(numbers []model.PhoneNumber, c Criteria) []Profile {
	var out []Profile
	for _, n := range numbers {
		p, err := Reduce(n)
		if err != nil {
			continue
		}
		if c.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// AvoidsUnluckyDigits reports whether n contains a 5, no 2, 4 or 8, and a sum of
// its odd-position digits that is itself free of 2, 4 and 8.
func AvoidsUnluckyDigits(n model.PhoneNumber) bool {
	if !n.Valid() {
		return false
	}
	s := string(n)
	if !strings.Contains(s, "5") || strings.ContainsAny(s, "248") {
		return false
	}
	odd, err := digits.OddPositionSum(s)
	if err != nil {
		return false
	}
	return !strings.ContainsAny(fmt.Sprint(odd), "248")
}
