package arith

import (
	"github.com/oisee/bignum/pkg/word"
	"modernc.org/mathutil"
)

// Log computes floor(log_b(x)) and b^floor(log_b(x)) per §4.7: power-of-
// two shortcuts for b a power of two, else an integer initial estimate
// (the ratio of floor-log2 values via mathutil.Log2, standing in for the
// spec's fixed-point-8 log2 table) walked to the exact answer one step at
// a time. The number of steps is not bounded by a constant: it grows with
// the answer (for b = 3 the estimate overshoots by more than half of k).
func Log(x, b []word.Word, mem *Memory) (k int, pow []word.Word) {
	x = trimLeadingZeros(x)
	b = trimLeadingZeros(b)
	if len(x) == 0 {
		panic("arith: Log of zero")
	}
	if len(b) == 0 || (len(b) == 1 && b[0] <= 1) {
		panic("arith: Log base must be > 1")
	}

	if len(b) == 1 && isPowerOfTwo(b[0]) {
		shift := word.TrailingZeros(b[0])
		bits := BitLenSlice(x) - 1
		k = bits / shift
		return k, oneShl(k * shift)
	}

	est := estimateLog(x, b)

	pow = powSlice(b, est, mem)
	for CmpInPlace(pow, x) > 0 {
		est--
		pow = powSlice(b, est, mem)
	}
	for {
		next := mulSlice(pow, b, mem)
		if CmpInPlace(next, x) > 0 {
			break
		}
		pow = next
		est++
	}
	return est, pow
}

// estimateLog is the fixed-point-8-table stand-in from §4.7 step 2: it
// uses mathutil.Log2 (an exact floor-log2 on the leading word of x and
// b, the cheap part every limb-based estimator needs) combined with the
// word-position offset each slice's leading word sits at, then divides
// the two log2 estimates to approximate log_b(x). Because floor(log2 b)
// can be well below log2 b, the result can be off by an amount that
// grows with the answer; the loops above walk it to the exact answer
// either way.
func estimateLog(x, b []word.Word) int {
	x = trimLeadingZeros(x)
	b = trimLeadingZeros(b)
	log2X := (len(x)-1)*word.Bits + mathutil.Log2(int64(x[len(x)-1])|1)
	log2B := (len(b)-1)*word.Bits + mathutil.Log2(int64(b[len(b)-1])|1)
	if log2B <= 0 {
		return 0
	}
	est := log2X / log2B
	if est < 0 {
		est = 0
	}
	return est
}

func isPowerOfTwo(w word.Word) bool { return w != 0 && w&(w-1) == 0 }

func powSlice(b []word.Word, n int, mem *Memory) []word.Word {
	result := []word.Word{1}
	base := append([]word.Word(nil), b...)
	for n > 0 {
		if n&1 == 1 {
			result = mulSlice(result, base, mem)
		}
		base = mulSlice(base, base, mem)
		n >>= 1
	}
	return result
}

func mulSlice(a, b []word.Word, mem *Memory) []word.Word {
	a = trimLeadingZeros(a)
	b = trimLeadingZeros(b)
	dst := make([]word.Word, len(a)+len(b)+1)
	Multiply(dst, a, b, mem)
	return trimLeadingZeros(dst)
}
