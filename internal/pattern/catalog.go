package pattern

import (
	"github.com/Veraticus/fancy-numbers/internal/model"
)

// Family groups matchers that test the same kind of structure.
type Family string

const (
	// FamilyBlock matches letter templates of fixed-width blocks.
	FamilyBlock Family = "block"
	// FamilyRun matches runs of one repeated digit.
	FamilyRun Family = "run"
	// FamilySequence matches step-by-one ascending or descending runs.
	FamilySequence Family = "sequence"
	// FamilySymmetry matches palindromes and mirrors.
	FamilySymmetry Family = "symmetry"
	// FamilyLiteral matches meaningful literal substrings.
	FamilyLiteral Family = "literal"
	// FamilyYear matches year-like substrings.
	FamilyYear Family = "year"
	// FamilyComposite promotes numbers that satisfy several simpler shapes.
	FamilyComposite Family = "composite"
	// FamilyDigitMix looks at which digits appear, not where.
	FamilyDigitMix Family = "digit-mix"
)

// Matcher tests one named structural pattern.
type Matcher struct {
	Match       func(model.PhoneNumber) bool
	Name        model.PatternName
	Family      Family
	Description string
}

// predicate wraps a digit-string check so invalid numbers never match.
func predicate(name model.PatternName, family Family, desc string, fn func(string) bool) Matcher {
	return Matcher{
		Name:        name,
		Family:      family,
		Description: desc,
		Match: func(n model.PhoneNumber) bool {
			return n.Valid() && fn(string(n))
		},
	}
}

func block(name model.PatternName, src string, anchor Anchor) Matcher {
	t := MustCompileTemplate(src, anchor)
	return Matcher{
		Name:        name,
		Family:      FamilyBlock,
		Description: t.String() + " (" + anchor.String() + ")",
		Match:       t.Match,
	}
}

func literal(name model.PatternName, literals ...string) Matcher {
	desc := "contains " + literals[0]
	for _, l := range literals[1:] {
		desc += " or " + l
	}
	return predicate(name, FamilyLiteral, desc, func(s string) bool {
		return containsAny(s, literals...)
	})
}

// defaultCatalog is built once; matchers are pure so it is shared read-only.
var defaultCatalog = []Matcher{
	// Shape badges.
	predicate(model.PatternSequential, FamilySequence, "four digits counting up or down by one",
		func(s string) bool { return hasStepRun(s, 4, 1) || hasStepRun(s, 4, -1) }),
	predicate(model.PatternRepeating, FamilyRun, "a run of four or an ABAB window",
		func(s string) bool { return longestRun(s) >= 4 || ababWindow.matchDigits(s) }),
	predicate(model.PatternPalindrome, FamilySymmetry, "reads the same in both directions", IsPalindrome),
	predicate(model.PatternMirror, FamilySymmetry, "first half is the reverse of the second half", IsMirror),
	predicate(model.PatternAscending, FamilySequence, "four digits counting up by one",
		func(s string) bool { return hasStepRun(s, 4, 1) }),
	predicate(model.PatternDescending, FamilySequence, "four digits counting down by one",
		func(s string) bool { return hasStepRun(s, 4, -1) }),
	predicate(model.PatternPremium, FamilyComposite, "two or more basic shapes", isPremium),
	predicate(model.PatternRoyal, FamilyDigitMix, "at least half the digits are 8 or 9",
		func(s string) bool { return 2*countDigits(s, '8', '9') >= len(s) }),
	predicate(model.PatternLucky, FamilyDigitMix, "two sevens or three eights",
		func(s string) bool { return countDigits(s, '7') >= 2 || countDigits(s, '8') >= 3 }),

	// Bucket feeders.
	block(model.PatternABCDXABCDY, "ABCD X ABCD Y", AnchorFull),
	block(model.PatternXYABBAABBA, "XY ABBC ABBC", AnchorFull),
	block(model.PatternABCCXABCCY, "ABCC X ABCC Y", AnchorFull),
	block(model.PatternABCXXABCYY, "ABC XX ABC YY", AnchorFull),
	block(model.PatternXYA0B0C0D0, "XY A0 B0 C0 D0", AnchorFull),
	block(model.PatternXYABABCDCD, "XY ABAB CDCD", AnchorFull),
	block(model.PatternABCABCWXYZ, "ABC ABC WXYZ", AnchorFull),
	predicate(model.PatternXXXZXXX, FamilyRun, "two triples split by one digit at either end", isXXXZXXX),
	block(model.PatternXYABCDABCD, "XY ABCD ABCD", AnchorFull),
	block(model.PatternX00XY00Y, "AB X00X Y00Y", AnchorFull),
	block(model.PatternABCDXYZXYZ, "ABCD XYZ XYZ", AnchorFull),
	block(model.PatternABABDABABE, "ABABD ABABE", AnchorFull),
	block(model.PatternABCDCDCXCD, "ABCD CDCX CD", AnchorFull),
	block(model.PatternABCDCDXDCD, "ABCD CDXD CD", AnchorFull),
	block(model.PatternABCDXDCDCD, "ABCD XDCD CD", AnchorFull),
	predicate(model.PatternSixCounting, FamilySequence, "six digits counting up, or 67890", hasSixCounting),
	predicate(model.PatternSpecial, FamilyComposite, "special series endings and shapes", isSpecialSeries),

	// Quick-browse catalog.
	literal(model.PatternTriple0, "000"),
	literal(model.PatternQuad0, "0000"),
	block(model.Pattern00AB00CD, "00AB 00CD", AnchorEnd),
	literal(model.Pattern1008, "1008"),
	literal(model.Pattern108108, "108108"),
	literal(model.Pattern143143, "143143"),
	literal(model.Pattern420420, "420420"),
	literal(model.Pattern786, "786"),
	literal(model.Pattern787, "787"),
	literal(model.Pattern78692, "78692"),
	block(model.Pattern850000XYXY, "850000 xyxy", AnchorFull),
	literal(model.Pattern916916, "916916"),
	block(model.PatternAABAABXYXY, "AAB AAB XYXY", AnchorFull),
	block(model.PatternAABAABXYXYSpaced, "AAB AAB XY XY", AnchorFull),
	block(model.PatternABXXXCDYYY, "AB XXX CD YYY", AnchorFull),
	block(model.PatternABXXXCDYYYJoined, "ABXXX CDYYY", AnchorFull),
	block(model.PatternAB00CD00, "AB00 CD00", AnchorEnd),
	block(model.PatternAB00CD01, "AB00 CD01", AnchorEnd),
	block(model.PatternABAABAXYXY, "ABA ABA XYXY", AnchorFull),
	block(model.PatternABABCDCDXY, "ABAB CDCD XY", AnchorFull),
	block(model.PatternABABXCDCDX, "ABAB X CDCD X", AnchorFull),
	block(model.PatternABABXYACAC, "ABAB XY ACAC", AnchorFull),
	block(model.PatternABABXYCDCD, "ABAB XY CDCD", AnchorFull),
	block(model.PatternABBABBEnding, "ABB ABB", AnchorEnd),
	block(model.PatternABBABBXYXY, "ABB ABB XYXY", AnchorFull),
	block(model.PatternABCABCXYXY, "ABC ABC XYXY", AnchorFull),
	block(model.PatternABCABDXYXY, "ABC ABD XY XY", AnchorFull),
	block(model.PatternAbcdAbcd, "ABCD ABCD", AnchorAnywhere),
	block(model.PatternABCDABCDXY, "ABCD ABCD XY", AnchorFull),
	block(model.PatternABCDXYABCD, "ABCD XY ABCD", AnchorFull),
	block(model.PatternAXXXBYYY, "AXXX BYYY", AnchorEnd),
	block(model.PatternAxxxBCxxxD, "AxxxB CxxxD", AnchorFull),
	predicate(model.PatternCounting111213, FamilySequence, "three consecutive two-digit numbers", hasCountingPairs),
	predicate(model.PatternCounting, FamilySequence, "five digits counting up or down",
		func(s string) bool { return hasCountingRun(s, 5) || hasCountingDown(s, 5) }),
	literal(model.PatternDouble786, "786786"),
	block(model.PatternDoubleJodi, "AABB", AnchorEnd),
	block(model.PatternDoubling, "AABBCCDDEE", AnchorFull),
	block(model.PatternEndingXXX, "XXX", AnchorEnd),
	block(model.PatternEndingXXYYZZ, "XXYYZZ", AnchorEnd),
	predicate(model.PatternFancy, FamilyComposite, "run of four, tripled pair, doubled triple or one digit", isFancy),
	block(model.PatternHexaEnding, "XXXXXX", AnchorEnd),
	predicate(model.PatternMiddleHexa, FamilyRun, "interior run of six",
		func(s string) bool { return hasInteriorRun(s, 6) }),
	predicate(model.PatternMiddlePenta, FamilyRun, "interior run of five",
		func(s string) bool { return hasInteriorRun(s, 5) }),
	block(model.PatternMiddleXXXYYY, "XXX YYY", AnchorInterior),
	predicate(model.PatternMiddleXXXX, FamilyRun, "interior run of four",
		func(s string) bool { return hasInteriorRun(s, 4) }),
	block(model.PatternMiddleXYXYXY, "XY XY XY", AnchorInterior),
	block(model.PatternMirrorNumbers, "XY ABCD DCBA", AnchorFull),
	block(model.PatternPentaEnding, "XXXXX", AnchorEnd),
	block(model.PatternSemiMirror, "ABC WXYZ CBA", AnchorFull),
	predicate(model.PatternSpecialDigit, FamilyLiteral, "786, 420, 143, 108, 1008, 916, 313 or a repdigit block", hasSpecialDigits),
	block(model.PatternStartingXXXX, "XXXX", AnchorStart),
	predicate(model.PatternTetra, FamilyRun, "run of four anywhere",
		func(s string) bool { return longestRun(s) >= 4 }),
	predicate(model.PatternVVIP, FamilyComposite, "one digit throughout or two fancy shapes", isVVIP),
	predicate(model.PatternWithout248, FamilyDigitMix, "no 2, 4 or 8", isWithout248),
	block(model.PatternXABCDABCDX, "X ABCD ABCD X", AnchorFull),
	block(model.PatternX00X00, "X00 X00", AnchorEnd),
	block(model.PatternX00XX00X, "X00X X00X", AnchorEnd),
	block(model.PatternXXXYYYEnding, "XXX YYY", AnchorEnd),
	block(model.PatternXXXYYYStarting, "XXX YYY", AnchorStart),
	block(model.PatternXXYYZZStarting, "XX YY ZZ", AnchorStart),
	block(model.PatternXYABCABCXY, "XY ABC ABC XY", AnchorFull),
	block(model.PatternXYXY, "XY XY", AnchorEnd),
	block(model.PatternXYXYXYEnding, "XY XY XY", AnchorEnd),
	block(model.PatternXYXYXYStarting, "XY XY XY", AnchorStart),
	block(model.PatternXYZXYZEnding, "XYZ XYZ", AnchorEnd),
	block(model.PatternXXXXEnding, "XXXX", AnchorEnd),
	predicate(model.PatternYears, FamilyYear, "a year between 1950 and 2029", hasYear),
}

// Catalog returns a copy of the default matcher table in vocabulary order.
func Catalog() []Matcher {
	out := make([]Matcher, len(defaultCatalog))
	copy(out, defaultCatalog)
	return out
}
