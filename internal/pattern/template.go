package pattern

import (
	"fmt"
	"strings"

	"github.com/Veraticus/fancy-numbers/internal/common"
	"github.com/Veraticus/fancy-numbers/internal/model"
)

// Anchor says where a template may occur inside a number.
type Anchor int

const (
	// AnchorFull requires the template to cover all ten digits.
	AnchorFull Anchor = iota
	// AnchorStart requires the template to begin at the first digit.
	AnchorStart
	// AnchorEnd requires the template to finish at the last digit.
	AnchorEnd
	// AnchorAnywhere accepts any offset.
	AnchorAnywhere
	// AnchorInterior accepts offsets that touch neither the first nor the last digit,
	// where the digits on either side differ from the occurrence's own edge digits.
	// A run that continues out to an edge therefore never counts as interior.
	AnchorInterior
)

func (a Anchor) String() string {
	switch a {
	case AnchorFull:
		return "full"
	case AnchorStart:
		return "start"
	case AnchorEnd:
		return "end"
	case AnchorAnywhere:
		return "anywhere"
	case AnchorInterior:
		return "interior"
	default:
		return fmt.Sprintf("anchor(%d)", int(a))
	}
}

// slot is one template position: either a literal digit or a variable group.
type slot struct {
	literal int8 // -1 when the slot is a variable
	group   int8
}

// Template is a compiled block pattern such as "XY ABAB CDCD".
//
// Letters are digit variables (case-insensitive): every position holding the same letter
// must hold the same digit. Different letters impose nothing, so "ABAB" also matches "7777".
// Digits are literals. Spaces are ignored.
type Template struct {
	source string
	slots  []slot
	anchor Anchor
}

// CompileTemplate parses src into a Template anchored as requested.
func CompileTemplate(src string, anchor Anchor) (*Template, error) {
	groups := make(map[rune]int8)
	var slots []slot

	for _, r := range src {
		switch {
		case r == ' ':
			continue
		case r >= '0' && r <= '9':
			slots = append(slots, slot{literal: int8(r - '0'), group: -1})
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			key := r | 0x20 // fold to lower case
			g, ok := groups[key]
			if !ok {
				g = int8(len(groups))
				groups[key] = g
			}
			slots = append(slots, slot{literal: -1, group: g})
		default:
			return nil, fmt.Errorf("%w: template %q has unexpected character %q", common.ErrInvalidArgument, src, r)
		}
	}

	if len(slots) == 0 {
		return nil, fmt.Errorf("%w: template %q is empty", common.ErrInvalidArgument, src)
	}
	if len(slots) > model.NumberLength {
		return nil, fmt.Errorf("%w: template %q is longer than %d digits", common.ErrInvalidArgument, src, model.NumberLength)
	}
	if anchor == AnchorFull && len(slots) != model.NumberLength {
		return nil, fmt.Errorf("%w: full template %q must have %d digits", common.ErrInvalidArgument, src, model.NumberLength)
	}
	if anchor == AnchorInterior && len(slots) > model.NumberLength-2 {
		return nil, fmt.Errorf("%w: interior template %q leaves no room for edges", common.ErrInvalidArgument, src)
	}

	return &Template{source: src, slots: slots, anchor: anchor}, nil
}

// MustCompileTemplate is like CompileTemplate but panics on error.
// It is intended for package-level catalog tables.
func MustCompileTemplate(src string, anchor Anchor) *Template {
	t, err := CompileTemplate(src, anchor)
	if err != nil {
		panic(err)
	}
	return t
}

// String returns the template source with spaces removed.
func (t *Template) String() string {
	return strings.ReplaceAll(t.source, " ", "")
}

// Len returns the number of digit slots.
func (t *Template) Len() int {
	return len(t.slots)
}

// Anchor returns where the template may occur.
func (t *Template) Anchor() Anchor {
	return t.anchor
}

// Match reports whether the number contains the template at an allowed offset.
func (t *Template) Match(n model.PhoneNumber) bool {
	if !n.Valid() {
		return false
	}
	return t.matchDigits(string(n))
}

func (t *Template) matchDigits(s string) bool {
	last := len(s) - len(t.slots)
	if last < 0 {
		return false
	}

	switch t.anchor {
	case AnchorFull:
		return len(s) == len(t.slots) && t.matchAt(s, 0)
	case AnchorStart:
		return t.matchAt(s, 0)
	case AnchorEnd:
		return t.matchAt(s, last)
	case AnchorAnywhere:
		for off := 0; off <= last; off++ {
			if t.matchAt(s, off) {
				return true
			}
		}
	case AnchorInterior:
		for off := 1; off < last; off++ {
			end := off + len(t.slots)
			if s[off-1] == s[off] || s[end] == s[end-1] {
				continue
			}
			if t.matchAt(s, off) {
				return true
			}
		}
	}
	return false
}

func (t *Template) matchAt(s string, off int) bool {
	var bound [26]int8
	for i := range bound {
		bound[i] = -1
	}

	for i, sl := range t.slots {
		d := int8(s[off+i] - '0')
		if sl.literal >= 0 {
			if d != sl.literal {
				return false
			}
			continue
		}
		switch b := bound[sl.group]; {
		case b < 0:
			bound[sl.group] = d
		case b != d:
			return false
		}
	}
	return true
}
