// Package digits implements digit sums, digital roots and digit frequency counts.
//
// Functions accept decimal digit strings so that leading zeros are preserved. Empty or
// non-digit input and negative integers fail with common.ErrInvalidArgument.
package digits

import (
	"fmt"

	"github.com/Veraticus/fancy-numbers/internal/common"
)

// Counts returns how many times each digit value 0-9 appears in s.
func Counts(s string) ([10]int, error) {
	var counts [10]int
	if s == "" {
		return counts, fmt.Errorf("%w: empty digit string", common.ErrInvalidArgument)
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return counts, fmt.Errorf("%w: %q is not a digit string", common.ErrInvalidArgument, s)
		}
		counts[c-'0']++
	}
	return counts, nil
}

// Sum returns the arithmetic sum of the digits of s.
func Sum(s string) (int, error) {
	counts, err := Counts(s)
	if err != nil {
		return 0, err
	}
	sum := 0
	for d, c := range counts {
		sum += d * c
	}
	return sum, nil
}

// Root returns the digital root of n: 0 for 0, otherwise 1 + (n-1) mod 9.
// This equals summing digits repeatedly until a single digit remains.
func Root(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: negative value %d", common.ErrInvalidArgument, n)
	}
	if n == 0 {
		return 0, nil
	}
	return 1 + (n-1)%9, nil
}

// SingleDigitSum reduces the digit sum of s to a single digit.
func SingleDigitSum(s string) (int, error) {
	sum, err := Sum(s)
	if err != nil {
		return 0, err
	}
	return Root(sum)
}

// MaxFrequency returns the largest number of times any one digit value appears in s.
func MaxFrequency(s string) (int, error) {
	counts, err := Counts(s)
	if err != nil {
		return 0, err
	}
	most := 0
	for _, c := range counts {
		if c > most {
			most = c
		}
	}
	return most, nil
}

// Distinct returns how many different digit values appear in s.
func Distinct(s string) (int, error) {
	counts, err := Counts(s)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, c := range counts {
		if c > 0 {
			n++
		}
	}
	return n, nil
}

// OddPositionSum sums the digits in the first, third, fifth... positions of s
// (0-indexed even offsets).
func OddPositionSum(s string) (int, error) {
	if _, err := Counts(s); err != nil {
		return 0, err
	}
	sum := 0
	for i := 0; i < len(s); i += 2 {
		sum += int(s[i] - '0')
	}
	return sum, nil
}
