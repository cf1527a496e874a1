package pattern

import (
	"fmt"

	"github.com/Veraticus/fancy-numbers/internal/common"
	"github.com/Veraticus/fancy-numbers/internal/model"
)

// Detector runs a matcher catalog against phone numbers.
// It holds no mutable state and is safe for concurrent use.
type Detector struct {
	byName   map[model.PatternName]int
	matchers []Matcher
}

// NewDetector creates a detector over the given matchers, or over the default
// catalog when none are given.
func NewDetector(matchers ...Matcher) (*Detector, error) {
	if len(matchers) == 0 {
		matchers = Catalog()
	}

	d := &Detector{
		matchers: make([]Matcher, 0, len(matchers)),
		byName:   make(map[model.PatternName]int, len(matchers)),
	}

	for _, m := range matchers {
		if m.Name == "" || m.Match == nil {
			return nil, fmt.Errorf("%w: matcher %q is incomplete", common.ErrInvalidArgument, m.Name)
		}
		if _, dup := d.byName[m.Name]; dup {
			return nil, fmt.Errorf("%w: %q", common.ErrDuplicatePattern, m.Name)
		}
		d.byName[m.Name] = len(d.matchers)
		d.matchers = append(d.matchers, m)
	}

	return d, nil
}

// MustNewDetector returns a detector over the default catalog.
func MustNewDetector() *Detector {
	d, err := NewDetector()
	if err != nil {
		panic(err)
	}
	return d
}

// Classify returns the names of every matcher that accepts n, in catalog order.
// Numbers that are not exactly ten digits match nothing.
func (d *Detector) Classify(n model.PhoneNumber) []model.PatternName {
	if !n.Valid() {
		return nil
	}

	var names []model.PatternName
	for _, m := range d.matchers {
		if m.Match(n) {
			names = append(names, m.Name)
		}
	}
	return names
}

// Result evaluates every matcher and reports each outcome, including misses.
func (d *Detector) Result(n model.PhoneNumber) model.MatchResult {
	result := make(model.MatchResult, len(d.matchers))
	valid := n.Valid()
	for _, m := range d.matchers {
		result[m.Name] = valid && m.Match(n)
	}
	return result
}

// Matches reports whether n matches the named pattern. Unknown names never match.
func (d *Detector) Matches(name model.PatternName, n model.PhoneNumber) bool {
	i, ok := d.byName[name]
	if !ok || !n.Valid() {
		return false
	}
	return d.matchers[i].Match(n)
}

// MatchesAny reports whether n matches at least one of the named patterns.
func (d *Detector) MatchesAny(names []model.PatternName, n model.PhoneNumber) bool {
	for _, name := range names {
		if d.Matches(name, n) {
			return true
		}
	}
	return false
}

// Lookup returns the matcher registered under name.
func (d *Detector) Lookup(name model.PatternName) (Matcher, bool) {
	i, ok := d.byName[name]
	if !ok {
		return Matcher{}, false
	}
	return d.matchers[i], true
}

// Resolve checks that every name is known to the detector.
func (d *Detector) Resolve(names ...string) ([]model.PatternName, error) {
	out := make([]model.PatternName, 0, len(names))
	for _, raw := range names {
		name := model.PatternName(raw)
		if _, ok := d.byName[name]; !ok {
			return nil, fmt.Errorf("%w: %q", common.ErrUnknownPattern, raw)
		}
		out = append(out, name)
	}
	return out, nil
}

// Names returns the pattern names in catalog order.
func (d *Detector) Names() []model.PatternName {
	names := make([]model.PatternName, len(d.matchers))
	for i, m := range d.matchers {
		names[i] = m.Name
	}
	return names
}

// Matchers returns a copy of the detector's catalog.
func (d *Detector) Matchers() []Matcher {
	out := make([]Matcher, len(d.matchers))
	copy(out, d.matchers)
	return out
}

// Count returns the number of loaded matchers.
func (d *Detector) Count() int {
	return len(d.matchers)
}
