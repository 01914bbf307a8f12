package arith

import "github.com/oisee/bignum/pkg/word"

// CmpSameLen compares two equal-length slices as big-endian-by-magnitude
// numbers (little-endian storage, so it scans from the top word down),
// returning -1, 0, or 1.
func CmpSameLen(a, b []word.Word) int {
	if len(a) != len(b) {
		panic("arith: CmpSameLen requires equal-length slices")
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// CmpInPlace compares two slices that may differ in length, ignoring
// leading (high-order) zero words.
func CmpInPlace(a, b []word.Word) int {
	a = trimLeadingZeros(a)
	b = trimLeadingZeros(b)
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return CmpSameLen(a, b)
}

func trimLeadingZeros(x []word.Word) []word.Word {
	n := len(x)
	for n > 0 && x[n-1] == 0 {
		n--
	}
	return x[:n]
}

// IsZero reports whether every word in x is zero.
func IsZero(x []word.Word) bool {
	for _, w := range x {
		if w != 0 {
			return false
		}
	}
	return true
}
