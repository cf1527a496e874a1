package model

// PatternName labels one structural pattern in the closed catalog.
type PatternName string

// Shape patterns shown as badges on every number.
const (
	PatternSequential PatternName = "Sequential"
	PatternRepeating  PatternName = "Repeating"
	PatternPalindrome PatternName = "Palindrome"
	PatternMirror     PatternName = "Mirror"
	PatternAscending  PatternName = "Ascending"
	PatternDescending PatternName = "Descending"
	PatternPremium    PatternName = "Premium"
	PatternRoyal      PatternName = "Royal"
	PatternLucky      PatternName = "Lucky"
)

// Positional block patterns that feed the categorizer buckets.
const (
	PatternABCDXABCDY  PatternName = "ABCD X ABCD Y"
	PatternXYABBAABBA  PatternName = "XY ABBA ABBA"
	PatternABCCXABCCY  PatternName = "ABCC X ABCC Y"
	PatternABCXXABCYY  PatternName = "ABC XX ABC YY"
	PatternXYA0B0C0D0  PatternName = "XY A0 B0 C0 D0"
	PatternXYABABCDCD  PatternName = "XY ABAB CDCD"
	PatternABCABCWXYZ  PatternName = "ABC ABC WXYZ"
	PatternXXXZXXX     PatternName = "XXX Z XXX"
	PatternXYABCDABCD  PatternName = "XY ABCD ABCD"
	PatternX00XY00Y    PatternName = "X00X Y00Y"
	PatternABCDXYZXYZ  PatternName = "ABCD XYZ XYZ"
	PatternABABDABABE  PatternName = "ABABD ABABE"
	PatternABCDCDCXCD  PatternName = "ABCD CDCX CD"
	PatternABCDCDXDCD  PatternName = "ABCD CDXD CD"
	PatternABCDXDCDCD  PatternName = "ABCD XDCD CD"
	PatternSixCounting PatternName = "Six Counting"
	PatternSpecial     PatternName = "Special Series"
)

// Quick-browse patterns.
const (
	PatternTriple0          PatternName = "000 Number"
	PatternQuad0            PatternName = "0000 Number"
	Pattern00AB00CD         PatternName = "00AB 00CD"
	Pattern1008             PatternName = "1008"
	Pattern108108           PatternName = "108 108 Numbers"
	Pattern143143           PatternName = "143 143 Love Number"
	Pattern420420           PatternName = "420 420 Number"
	Pattern786              PatternName = "786 Numbers"
	Pattern787              PatternName = "787 Numbers"
	Pattern78692            PatternName = "78692 Numbers"
	Pattern850000XYXY       PatternName = "850000 xyxy"
	Pattern916916           PatternName = "916 916 Gold"
	PatternAABAABXYXY       PatternName = "AAB AAB XYXY"
	PatternAABAABXYXYSpaced PatternName = "AAB AAB XY XY"
	PatternABXXXCDYYY       PatternName = "AB XXX CD YYY"
	PatternABXXXCDYYYJoined PatternName = "ABXXX CDYYY"
	PatternAB00CD00         PatternName = "AB00 CD00"
	PatternAB00CD01         PatternName = "AB00 CD01"
	PatternABAABAXYXY       PatternName = "ABA ABA XYXY"
	PatternABABCDCDXY       PatternName = "ABAB CDCD XY"
	PatternABABXCDCDX       PatternName = "ABAB X CDCD X"
	PatternABABXYACAC       PatternName = "ABAB XY ACAC"
	PatternABABXYCDCD       PatternName = "ABAB XY CDCD"
	PatternABBABBEnding     PatternName = "ABB ABB Ending"
	PatternABBABBXYXY       PatternName = "ABB ABB XYXY"
	PatternABCABCXYXY       PatternName = "ABC ABC XYXY"
	PatternABCABDXYXY       PatternName = "ABC ABD XY XY"
	PatternAbcdAbcd         PatternName = "Abcd Abcd"
	PatternABCDABCDXY       PatternName = "ABCD ABCD XY"
	PatternABCDXYABCD       PatternName = "ABCD XY ABCD"
	PatternAXXXBYYY         PatternName = "AXXX BYYY"
	PatternAxxxBCxxxD       PatternName = "AxxxB CxxxD"
	PatternCounting111213   PatternName = "Counting 11 12 13 TYPE"
	PatternCounting         PatternName = "Counting Numbers"
	PatternDouble786        PatternName = "Double 786 786"
	PatternDoubleJodi       PatternName = "Double Jodi"
	PatternDoubling         PatternName = "Doubling Number"
	PatternEndingXXX        PatternName = "ENDING XXX"
	PatternEndingXXYYZZ     PatternName = "Ending XXYYZZ"
	PatternFancy            PatternName = "Fancy Number"
	PatternHexaEnding       PatternName = "Hexa Ending"
	PatternMiddleHexa       PatternName = "Middle Hexa"
	PatternMiddlePenta      PatternName = "Middle Penta"
	PatternMiddleXXXYYY     PatternName = "Middle xxx yyy"
	PatternMiddleXXXX       PatternName = "Middle xxxx"
	PatternMiddleXYXYXY     PatternName = "Middle Xy Xy Xy"
	PatternMirrorNumbers    PatternName = "Mirror Numbers"
	PatternPentaEnding      PatternName = "Penta Ending"
	PatternSemiMirror       PatternName = "Semi Mirror Number"
	PatternSpecialDigit     PatternName = "Special Digit Numbers"
	PatternStartingXXXX     PatternName = "Starting xxxx"
	PatternTetra            PatternName = "Tetra Number"
	PatternVVIP             PatternName = "Vvip Number"
	PatternWithout248       PatternName = "Without 2 4 8"
	PatternXABCDABCDX       PatternName = "X ABCD ABCD X"
	PatternX00X00           PatternName = "X00 X00"
	PatternX00XX00X         PatternName = "X00X X00X"
	PatternXXXYYYEnding     PatternName = "XXX YYY Ending"
	PatternXXXYYYStarting   PatternName = "XXX YYY Starting"
	PatternXXYYZZStarting   PatternName = "XXYYZZ Starting"
	PatternXYABCABCXY       PatternName = "XY ABC ABC XY"
	PatternXYXY             PatternName = "XY XY"
	PatternXYXYXYEnding     PatternName = "Xy Xy Xy Ending"
	PatternXYXYXYStarting   PatternName = "XY XY XY Starting"
	PatternXYZXYZEnding     PatternName = "XYZ XYZ Ending"
	PatternXXXXEnding       PatternName = "XXXX Ending"
	PatternYears            PatternName = "Years Numbers"
)

var allPatterns = []PatternName{
	PatternSequential, PatternRepeating, PatternPalindrome, PatternMirror,
	PatternAscending, PatternDescending, PatternPremium, PatternRoyal, PatternLucky,

	PatternABCDXABCDY, PatternXYABBAABBA, PatternABCCXABCCY, PatternABCXXABCYY,
	PatternXYA0B0C0D0, PatternXYABABCDCD, PatternABCABCWXYZ, PatternXXXZXXX,
	PatternXYABCDABCD, PatternX00XY00Y, PatternABCDXYZXYZ, PatternABABDABABE,
	PatternABCDCDCXCD, PatternABCDCDXDCD, PatternABCDXDCDCD, PatternSixCounting,
	PatternSpecial,

	PatternTriple0, PatternQuad0, Pattern00AB00CD, Pattern1008, Pattern108108,
	Pattern143143, Pattern420420, Pattern786, Pattern787, Pattern78692,
	Pattern850000XYXY, Pattern916916, PatternAABAABXYXY, PatternAABAABXYXYSpaced,
	PatternABXXXCDYYY, PatternABXXXCDYYYJoined, PatternAB00CD00, PatternAB00CD01,
	PatternABAABAXYXY, PatternABABCDCDXY, PatternABABXCDCDX, PatternABABXYACAC,
	PatternABABXYCDCD, PatternABBABBEnding, PatternABBABBXYXY, PatternABCABCXYXY,
	PatternABCABDXYXY, PatternAbcdAbcd, PatternABCDABCDXY, PatternABCDXYABCD,
	PatternAXXXBYYY, PatternAxxxBCxxxD, PatternCounting111213, PatternCounting,
	PatternDouble786, PatternDoubleJodi, PatternDoubling, PatternEndingXXX,
	PatternEndingXXYYZZ, PatternFancy, PatternHexaEnding, PatternMiddleHexa,
	PatternMiddlePenta, PatternMiddleXXXYYY, PatternMiddleXXXX, PatternMiddleXYXYXY,
	PatternMirrorNumbers, PatternPentaEnding, PatternSemiMirror, PatternSpecialDigit,
	PatternStartingXXXX, PatternTetra, PatternVVIP, PatternWithout248,
	PatternXABCDABCDX, PatternX00X00, PatternX00XX00X, PatternXXXYYYEnding,
	PatternXXXYYYStarting, PatternXXYYZZStarting, PatternXYABCABCXY, PatternXYXY,
	PatternXYXYXYEnding, PatternXYXYXYStarting, PatternXYZXYZEnding, PatternXXXXEnding,
	PatternYears,
}

// AllPatterns returns the full pattern vocabulary in catalog order.
func AllPatterns() []PatternName {
	out := make([]PatternName, len(allPatterns))
	copy(out, allPatterns)
	return out
}

// MatchResult maps every catalog name to whether one number matched it.
type MatchResult map[PatternName]bool

// Matched returns the names set to true, in vocabulary order.
func (r MatchResult) Matched() []PatternName {
	var out []PatternName
	for _, p := range allPatterns {
		if r[p] {
			out = append(out, p)
		}
	}
	return out
}
