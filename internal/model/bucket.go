package model

// BucketName labels one categorizer bucket.
type BucketName string

const (
	// BucketSuperVIP collects the most repetitive or structured numbers.
	BucketSuperVIP BucketName = "Super VIP"
	// BucketThreeDistinct collects numbers built from exactly three digit values.
	BucketThreeDistinct BucketName = "Three distinct digits"
	// BucketOthers collects valid numbers that matched no other bucket.
	BucketOthers BucketName = "Others"

	BucketXXXX       BucketName = "XXXX"
	BucketX00XY00Y   BucketName = "X00X Y00Y"
	BucketXYABCDABCD BucketName = "XY ABCD ABCD"
	BucketABXBABAB   BucketName = "ABXB ABAB"
	BucketABCDXABCDY BucketName = "ABCD X ABCD Y"
	BucketXYABBAABBA BucketName = "XY ABBA ABBA"
	BucketABCCXABCCY BucketName = "ABCC X ABCC Y"
	BucketABCXXABCYY BucketName = "ABC XX ABC YY"
	BucketXYA0B0C0D0 BucketName = "XY A0 B0 C0 D0"
	BucketXYABABCDCD BucketName = "XY ABAB CDCD"
	BucketABCABCWXYZ BucketName = "ABC ABC WXYZ"
	BucketABCDXYZXYZ BucketName = "ABCD XYZ XYZ"
	BucketSpecial    BucketName = "Special Series"
	BucketABABDABABE BucketName = "ABABD ABABE"
)

var allBuckets = []BucketName{
	BucketSuperVIP,
	BucketXXXX,
	BucketX00XY00Y,
	BucketXYABCDABCD,
	BucketABXBABAB,
	BucketThreeDistinct,
	BucketABCDXABCDY,
	BucketXYABBAABBA,
	BucketABCCXABCCY,
	BucketABCXXABCYY,
	BucketXYA0B0C0D0,
	BucketXYABABCDCD,
	BucketABCABCWXYZ,
	BucketABCDXYZXYZ,
	BucketSpecial,
	BucketABABDABABE,
	BucketOthers,
}

// AllBuckets returns the bucket vocabulary in display order.
func AllBuckets() []BucketName {
	out := make([]BucketName, len(allBuckets))
	copy(out, allBuckets)
	return out
}
