// Package search filters phone numbers the way the storefront browse pages do.
package search

import (
	"fmt"
	"strings"

	"github.com/Veraticus/fancy-numbers/internal/common"
	"github.com/Veraticus/fancy-numbers/internal/digits"
	"github.com/Veraticus/fancy-numbers/internal/model"
	"github.com/Veraticus/fancy-numbers/internal/pattern"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Placement pins a digit to a position, 0-indexed from the left.
type Placement struct {
	Digit    string `validate:"required,len=1,number"`
	Position int    `validate:"min=0,max=9"`
}

// Options holds every filter. Zero values disable a filter.
type Options struct {
	DigitSum       *int        `validate:"omitempty,min=0,max=90"`
	SingleDigitSum *int        `validate:"omitempty,min=0,max=9"`
	Digits         string      `validate:"omitempty,number,max=10"`
	MostContains   string      `validate:"omitempty,len=1,number"`
	RepeatingDigit string      `validate:"omitempty,len=1,number"`
	Query          string      `validate:"max=64"`
	Birthdate      string      `validate:"omitempty,datetime=2006-01-02"`
	Vehicle        string      `validate:"omitempty,max=20"`
	Placements     []Placement `validate:"dive"`
	Patterns       []string    `validate:"dive,required"`
	Sequential     bool
	Repeating      bool
}

// Validate checks the option values. Pattern names are checked by Filter
// against the detector doing the matching.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("%w: %w", common.ErrInvalidArgument, err)
	}
	return nil
}

// Filter returns the valid numbers that pass every enabled filter, in input order.
func Filter(d *pattern.Detector, numbers []model.PhoneNumber, opts Options) ([]model.PhoneNumber, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	names, err := d.Resolve(opts.Patterns...)
	if err != nil {
		return nil, err
	}

	valid := make([]model.PhoneNumber, 0, len(numbers))
	for _, n := range numbers {
		if n.Valid() {
			valid = append(valid, n)
		}
	}

	mostCount := -1
	if opts.MostContains != "" {
		for _, n := range valid {
			mostCount = max(mostCount, strings.Count(string(n), opts.MostContains))
		}
	}

	if opts.Vehicle != "" && len(VehicleVariants(opts.Vehicle)) == 0 {
		return nil, fmt.Errorf("%w: vehicle number %q is too short", common.ErrInvalidArgument, opts.Vehicle)
	}

	var out []model.PhoneNumber
	for _, n := range valid {
		s := string(n)
		if opts.MostContains != "" && strings.Count(s, opts.MostContains) < mostCount {
			continue
		}
		if opts.Birthdate != "" {
			ok, err := MatchBirthdate(n, opts.Birthdate)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}
		if opts.Vehicle != "" && !MatchVehicle(n, opts.Vehicle) {
			continue
		}
		if !matchesDigits(s, opts) || !matchesShape(d, n, names, opts) {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func matchesDigits(s string, opts Options) bool {
	for _, d := range opts.Digits {
		if !strings.ContainsRune(s, d) {
			return false
		}
	}
	for _, p := range opts.Placements {
		if s[p.Position] != p.Digit[0] {
			return false
		}
	}
	if opts.RepeatingDigit != "" && !strings.Contains(s, strings.Repeat(opts.RepeatingDigit, 4)) {
		return false
	}
	if opts.DigitSum != nil || opts.SingleDigitSum != nil {
		sum, err := digits.Sum(s)
		if err != nil {
			return false
		}
		if opts.DigitSum != nil && sum != *opts.DigitSum {
			return false
		}
		if root, _ := digits.Root(sum); opts.SingleDigitSum != nil && root != *opts.SingleDigitSum {
			return false
		}
	}
	return true
}

func matchesShape(d *pattern.Detector, n model.PhoneNumber, names []model.PatternName, opts Options) bool {
	if opts.Sequential && !d.Matches(model.PatternAscending, n) {
		return false
	}
	if opts.Repeating && !pattern.HasABABWindow(string(n)) {
		return false
	}
	if len(names) > 0 && !d.MatchesAny(names, n) {
		return false
	}
	if opts.Query != "" {
		query := strings.ToLower(opts.Query)
		if strings.Contains(string(n), query) {
			return true
		}
		matched := d.Classify(n)
		labels := make([]string, len(matched))
		for i, m := range matched {
			labels[i] = string(m)
		}
		return strings.Contains(strings.ToLower(strings.Join(labels, " ")), query)
	}
	return true
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
