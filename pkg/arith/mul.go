package arith

import (
	"math/big"

	"github.com/oisee/bignum/pkg/word"
	"github.com/remyoudompheng/bigfft"
)

// Size thresholds (in words) for the multiply/square dispatch, per
// spec.md §4.2.
const (
	KaratsubaThreshold = 24
	Toom3Threshold      = 192
	// FFTThreshold is where bigfft.Mul starts winning over continued
	// Karatsuba recursion; chosen generously above Toom3Threshold since
	// bigfft pays a larger constant-factor setup cost.
	FFTThreshold = 1 << 12
)

// MemoryRequirementMul returns the number of scratch words Multiply needs
// for operands of the given lengths.
func MemoryRequirementMul(aLen, bLen int) int {
	n := aLen
	if bLen > n {
		n = bLen
	}
	if n <= KaratsubaThreshold {
		return 0
	}
	// Each recursion level on n words allocates lo, hi and mid (about n
	// words each) and the two operand sums (about n/2 each), roughly
	// 4*n + 11 words, before recursing on its last sub-call and only
	// freeing its own buffers once that sub-call returns; since n roughly
	// halves each level, the live total across the call stack sums to
	// approximately 4*n + 4*n/2 + 4*n/4 + ... which converges to 8*n,
	// plus the per-level constants and rounding, bounded here by 16 words
	// for each bit of n.
	return 8*n + 16*word.BitLen(word.Word(n))
}

// Multiply computes dst = a*b. dst must have length >= len(a)+len(b) and
// be zero-initialized; a and b are left untouched. mem may be nil if
// MemoryRequirementMul(len(a), len(b)) == 0.
func Multiply(dst, a, b []word.Word, mem *Memory) {
	a = trimLeadingZeros(a)
	b = trimLeadingZeros(b)
	if len(dst) < len(a)+len(b) {
		panic("arith: Multiply requires len(dst) >= len(a)+len(b)")
	}
	if len(a) == 0 || len(b) == 0 {
		return
	}
	// Smaller operand first simplifies the schoolbook/Karatsuba dispatch.
	if len(a) > len(b) {
		a, b = b, a
	}
	n := len(b)
	switch {
	case n <= KaratsubaThreshold:
		basicMul(dst, a, b)
	case n >= FFTThreshold:
		fftMul(dst, a, b)
	default:
		mark := 0
		if mem != nil {
			mark = mem.Mark()
		}
		karatsuba(dst[:len(a)+len(b)], a, b, mem)
		if mem != nil {
			mem.Reset(mark)
		}
	}
}

// basicMul is the schoolbook O(n*m) multiply via AddMulWordInPlace.
func basicMul(dst, a, b []word.Word) {
	for i, bi := range b {
		if bi == 0 {
			continue
		}
		carry := AddMulWordInPlace(dst[i:i+len(a)], a, bi, 0)
		j := i + len(a)
		for carry != 0 {
			var c word.Word
			dst[j], c = word.AddWithCarry(dst[j], carry, 0)
			carry = c
			j++
		}
	}
}

// karatsuba implements Karatsuba multiplication: split a, b at n/2,
// recursing on three half-size products instead of four. Falls back to
// basicMul at or below KaratsubaThreshold.
func karatsuba(dst, a, b []word.Word, mem *Memory) {
	// the split below assumes a is the shorter operand
	if len(a) > len(b) {
		a, b = b, a
	}
	n := len(b)
	if n <= KaratsubaThreshold {
		for i := range dst {
			dst[i] = 0
		}
		basicMul(dst, a, b)
		return
	}
	m := (n + 1) / 2
	aLo, aHi := splitAt(a, m)
	bLo, bHi := splitAt(b, m)

	mark := 0
	if mem != nil {
		mark = mem.Mark()
	}
	lo := allocClear(mem, 2*m+2)
	hi := allocClear(mem, (len(aHi)+len(bHi))+2)
	mid := allocClear(mem, 2*m+4)

	karatsuba(lo[:len(aLo)+len(bLo)], aLo, bLo, mem)
	if len(aHi) > 0 && len(bHi) > 0 {
		karatsuba(hi[:len(aHi)+len(bHi)], aHi, bHi, mem)
	}

	// mid = (aLo+aHi)*(bLo+bHi) - lo - hi
	sumA := allocClear(mem, m+1)
	sumB := allocClear(mem, m+1)
	copy(sumA, aLo)
	copy(sumB, bLo)
	var ca, cb word.Word
	if len(aHi) > 0 {
		ca = AddInPlace(sumA[:len(sumA)-1], aHi)
	}
	if len(bHi) > 0 {
		cb = AddInPlace(sumB[:len(sumB)-1], bHi)
	}
	sumA[len(sumA)-1] = ca
	sumB[len(sumB)-1] = cb

	karatsuba(mid[:len(sumA)+len(sumB)], trimLeadingZeros(sumA), trimLeadingZeros(sumB), mem)

	for i := range dst {
		dst[i] = 0
	}
	copy(dst, lo)
	addAt(dst, trimLeadingZeros(hi), 2*m)
	// subtract lo and hi out of mid before adding it in at offset m
	subAt(mid, lo)
	subAt(mid, hi)
	addAt(dst, trimLeadingZeros(mid), m)

	if mem != nil {
		mem.Reset(mark)
	}
}

func splitAt(x []word.Word, m int) (lo, hi []word.Word) {
	if m > len(x) {
		m = len(x)
	}
	lo = trimLeadingZeros(x[:m])
	hi = trimLeadingZeros(x[m:])
	return
}

func allocClear(mem *Memory, n int) []word.Word {
	if mem == nil {
		return make([]word.Word, n)
	}
	return mem.Allocate(n)
}

// addAt adds src into dst starting at word offset off, rippling any
// carry into the higher words of dst.
func addAt(dst, src []word.Word, off int) {
	if len(src) == 0 {
		return
	}
	carry := AddInPlace(dst[off:off+len(src)], src)
	for i := off + len(src); i < len(dst) && carry != 0; i++ {
		dst[i], carry = word.AddWithCarry(dst[i], 0, carry)
	}
}

// subAt subtracts src from dst in place (same length prefix), trusting
// the caller that dst >= src so no borrow escapes the top.
func subAt(dst, src []word.Word) {
	if len(src) == 0 {
		return
	}
	SubInPlace(dst[:len(src)], src)
}

// Square computes dst = a*a. dst must have length >= 2*len(a) and be
// zero-initialized.
func Square(dst, a []word.Word, mem *Memory) {
	Multiply(dst, a, a, mem)
}

// fftMul delegates to bigfft for very large operands, going through
// math/big.Int since that is bigfft's public surface.
func fftMul(dst, a, b []word.Word) {
	x := new(big.Int).SetBits(toBigWords(a))
	y := new(big.Int).SetBits(toBigWords(b))
	z := bigfft.Mul(x, y)
	fromBigWords(dst, z.Bits())
}

func toBigWords(x []word.Word) []big.Word {
	out := make([]big.Word, len(x))
	for i, w := range x {
		out[i] = big.Word(w)
	}
	return out
}

func fromBigWords(dst []word.Word, src []big.Word) {
	for i := range dst {
		dst[i] = 0
	}
	for i, w := range src {
		if i >= len(dst) {
			break
		}
		dst[i] = word.Word(w)
	}
}
