package pattern

import (
	"strings"
)

// The helpers in this file operate on digit strings that the caller has already
// validated. They never allocate more than a reversed copy.

// longestRun returns the length of the longest block of one repeated digit.
func longestRun(s string) int {
	best, cur := 0, 0
	for i := 0; i < len(s); i++ {
		if i > 0 && s[i] == s[i-1] {
			cur++
		} else {
			cur = 1
		}
		if cur > best {
			best = cur
		}
	}
	return best
}

// hasInteriorRun reports whether a maximal run of at least k identical digits
// starts after the first digit and ends before the last one.
func hasInteriorRun(s string, k int) bool {
	start := 0
	for i := 1; i <= len(s); i++ {
		if i < len(s) && s[i] == s[start] {
			continue
		}
		if i-start >= k && start > 0 && i < len(s) {
			return true
		}
		start = i
	}
	return false
}

// hasStepRun reports whether k consecutive digits change by exactly step each time.
func hasStepRun(s string, k, step int) bool {
	run := 1
	for i := 1; i < len(s); i++ {
		if int(s[i])-int(s[i-1]) == step {
			run++
			if run >= k {
				return true
			}
		} else {
			run = 1
		}
	}
	return k <= 1 && len(s) > 0
}

// hasCountingRun reports whether k consecutive digits count upward by one, where a
// 0 directly after a 9 counts as ten ("67890").
func hasCountingRun(s string, k int) bool {
	run, prev := 1, -1
	for i := 0; i < len(s); i++ {
		d := int(s[i] - '0')
		if prev == 9 && d == 0 {
			d = 10
		}
		if i > 0 && d == prev+1 {
			run++
		} else {
			run = 1
		}
		if run >= k {
			return true
		}
		prev = d
	}
	return false
}

// hasSixCounting accepts any six-digit counting run, plus the short run 67890
// that ends on a ten.
func hasSixCounting(s string) bool {
	return hasCountingRun(s, 6) || strings.Contains(s, "67890")
}

// hasCountingDown is hasCountingRun read right to left ("98765", "09876").
func hasCountingDown(s string, k int) bool {
	return hasCountingRun(reverse(s), k)
}

// hasCountingPairs reports whether three consecutive two-digit numbers n, n+1, n+2
// are written back to back, for 10 <= n <= 97 ("111213").
func hasCountingPairs(s string) bool {
	for off := 0; off+6 <= len(s); off++ {
		n := pairAt(s, off)
		if n < 10 || n > 97 {
			continue
		}
		if pairAt(s, off+2) == n+1 && pairAt(s, off+4) == n+2 {
			return true
		}
	}
	return false
}

func pairAt(s string, off int) int {
	return int(s[off]-'0')*10 + int(s[off+1]-'0')
}

// hasYear reports whether some four-digit window reads as a year in [1950, 2029].
func hasYear(s string) bool {
	for off := 0; off+4 <= len(s); off++ {
		y := pairAt(s, off)*100 + pairAt(s, off+2)
		if y >= 1950 && y <= 2029 {
			return true
		}
	}
	return false
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// IsPalindrome reports whether s reads the same in both directions.
func IsPalindrome(s string) bool {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		if s[i] != s[j] {
			return false
		}
	}
	return true
}

// IsMirror reports whether the first half of s equals the reverse of its second half.
// For odd lengths the middle character is ignored.
func IsMirror(s string) bool {
	if s == "" {
		return false
	}
	half := len(s) / 2
	first := s[:half]
	second := s[len(s)-half:]
	return first == reverse(second)
}

func containsAny(s string, literals ...string) bool {
	for _, lit := range literals {
		if strings.Contains(s, lit) {
			return true
		}
	}
	return false
}

func countDigits(s string, digits ...byte) int {
	n := 0
	for i := 0; i < len(s); i++ {
		for _, d := range digits {
			if s[i] == d {
				n++
				break
			}
		}
	}
	return n
}

// fancyConditions evaluates the independent "fancy" heuristics in a fixed order:
// a run of four, a pair repeated three times in a row, a triple repeated twice in a
// row, and a single repeated digit across the whole number.
func fancyConditions(s string) [4]bool {
	return [4]bool{
		longestRun(s) >= 4,
		pairTriplet.matchDigits(s),
		tripleTwice.matchDigits(s),
		longestRun(s) == len(s),
	}
}

var (
	pairTriplet = MustCompileTemplate("XY XY XY", AnchorAnywhere)
	tripleTwice = MustCompileTemplate("XYZ XYZ", AnchorAnywhere)
	ababWindow  = MustCompileTemplate("XY XY", AnchorAnywhere)
)

func isFancy(s string) bool {
	for _, c := range fancyConditions(s) {
		if c {
			return true
		}
	}
	return false
}

func isVVIP(s string) bool {
	c := fancyConditions(s)
	if c[3] {
		return true
	}
	hits := 0
	for _, ok := range c[:3] {
		if ok {
			hits++
		}
	}
	return hits >= 2
}

// isPremium counts the basic shape badges and promotes numbers carrying two or more.
func isPremium(s string) bool {
	shapes := []bool{
		hasStepRun(s, 4, 1) || hasStepRun(s, 4, -1),
		longestRun(s) >= 4,
		ababWindow.matchDigits(s),
		IsPalindrome(s),
		IsMirror(s),
		hasStepRun(s, 4, 1),
		hasStepRun(s, 4, -1),
	}
	hits := 0
	for _, ok := range shapes {
		if ok {
			hits++
		}
	}
	return hits >= 2
}

var xxxZxxx = []*Template{
	MustCompileTemplate("ABC XXX Z XXX", AnchorFull),
	MustCompileTemplate("XXX Z XXX ABC", AnchorFull),
}

func isXXXZXXX(s string) bool {
	for _, t := range xxxZxxx {
		if t.matchDigits(s) {
			return true
		}
	}
	return false
}

var (
	specialSeriesShapes = []*Template{
		MustCompileTemplate("ABC XXXX ABC", AnchorFull),
		MustCompileTemplate("AB XYZ XYZ AB", AnchorFull),
		MustCompileTemplate("PQ ABABAB RS", AnchorFull),
		MustCompileTemplate("ABCDE ABCDE", AnchorFull),
	}

	specialSeriesEndings = map[string]bool{
		"001313": true, "000420": true, "000143": true, "000786": true, "123123": true,
		"143143": true, "302302": true, "786786": true, "420420": true, "101101": true,
		"100100": true, "313313": true, "501501": true, "108108": true, "214214": true,
		"306090": true, "102030": true, "010203": true, "307307": true, "111111": true,
		"222222": true, "333333": true, "444444": true, "123456": true, "555555": true,
		"666666": true, "777777": true, "888888": true, "999999": true, "420786": true,
		"143786": true,
	}

	specialSeriesLiterals = []string{
		"0001010", "420420", "143143", "0001313", "123123", "786786", "92119211",
	}
)

func isSpecialSeries(s string) bool {
	for _, t := range specialSeriesShapes {
		if t.matchDigits(s) {
			return true
		}
	}
	if len(s) >= 6 && specialSeriesEndings[s[len(s)-6:]] {
		return true
	}
	return containsAny(s, specialSeriesLiterals...)
}

// specialDigits are the culturally meaningful substrings behind "Special Digit Numbers".
var specialDigits = []string{"786", "420", "143", "108", "1008", "916", "313"}

func hasSpecialDigits(s string) bool {
	return containsAny(s, specialDigits...) || longestRun(s) >= 4
}

func isWithout248(s string) bool {
	return !strings.ContainsAny(s, "248")
}

// HasABABWindow reports whether a digit string holds two adjacent equal pairs ("1212").
func HasABABWindow(s string) bool {
	return ababWindow.matchDigits(s)
}
