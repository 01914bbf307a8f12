package arith

import "github.com/oisee/bignum/pkg/word"

// MemoryRequirementGcd returns the scratch words GcdInPlace/XgcdInPlace
// need for operands up to n words.
func MemoryRequirementGcd(n int) int {
	return 4 * (n + 1)
}

// GcdInPlace computes gcd(a, b) by repeated Euclidean remainder steps
// (a, b = b, a mod b), with a single-word fast path once both operands
// fit in one word. a and b are consumed as scratch.
func GcdInPlace(a, b []word.Word, mem *Memory) []word.Word {
	a = append([]word.Word(nil), trimLeadingZeros(a)...)
	b = append([]word.Word(nil), trimLeadingZeros(b)...)
	for len(b) > 0 {
		if len(a) == 1 && len(b) == 1 {
			return []word.Word{gcdWord(a[0], b[0])}
		}
		_, r := euclidRem(a, b, mem)
		a, b = b, r
	}
	return trimLeadingZeros(a)
}

func gcdWord(a, b word.Word) word.Word {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// euclidRem computes a mod b (and the quotient, discarded by most
// callers) via the word/dword fast paths or the general DivRemInPlace,
// whichever fits len(b).
func euclidRem(a, b []word.Word, mem *Memory) (q, r []word.Word) {
	if len(b) == 1 {
		numCopy := append([]word.Word(nil), a...)
		rem := DivByWordInPlaceUnnormalized(numCopy, b[0])
		return numCopy, []word.Word{rem}
	}
	shift := word.LeadingZeros(b[len(b)-1])
	den := shiftedCopy(b, uint(shift))
	num := append([]word.Word(nil), a...)
	if shift > 0 {
		num = append(num, ShlInPlace(num, uint(shift)))
	} else {
		num = append(num, 0)
	}
	mark := 0
	if mem != nil {
		mark = mem.Mark()
	}
	top := NewFastDivideNormalized(den[len(den)-1])
	qq, rr := DivRemInPlace(num, den, top, mem)
	// copy out of the arena so each step's scratch is released
	qq = append([]word.Word(nil), qq...)
	rr = append([]word.Word(nil), rr...)
	if mem != nil {
		mem.Reset(mark)
	}
	if shift > 0 {
		ShrInPlace(rr, uint(shift))
	}
	return qq, trimLeadingZeros(rr)
}

func shiftedCopy(x []word.Word, shift uint) []word.Word {
	out := append([]word.Word(nil), x...)
	if shift > 0 {
		ShlInPlace(out, shift)
	}
	return out
}

// DivByWordInPlaceUnnormalized divides num by an arbitrary (not
// necessarily normalized) single word divisor, for callers like GCD that
// don't want to carry a FastDivideNormalized through a simple remainder
// step.
func DivByWordInPlaceUnnormalized(num []word.Word, d word.Word) word.Word {
	if d == 0 {
		panic("divide by 0")
	}
	var rem word.Word
	for i := len(num) - 1; i >= 0; i-- {
		rem, num[i] = divStep(rem, num[i], d)
	}
	return rem
}

func divStep(hi, lo, d word.Word) (rem, q word.Word) {
	q, rem = word.DivRemHiLo(hi, lo, d)
	return rem, q
}

// XgcdInPlace computes the extended GCD: g = gcd(a, b), and cofactors s,
// t (with their signs returned separately since this package works in
// unsigned magnitudes) such that s*a - t*b = ±g or s*a + t*b = ±g,
// depending on sign combination — callers (pkg/ibig) combine the
// returned signs with the magnitudes to build the signed Bézout identity.
// needOther controls whether the second cofactor is computed at all (the
// spec's xgcd_in_place "need_other" flag) since many callers only need
// one side.
func XgcdInPlace(a, b []word.Word, needOther bool, mem *Memory) (g, s, t []word.Word, sSign, tSign int) {
	// Iterative extended Euclidean algorithm on slice-backed big.Int-like
	// magnitudes, tracking cofactors as (magnitude, sign) pairs the way
	// original_source's sign-magnitude Repr does internally.
	oldR := append([]word.Word(nil), trimLeadingZeros(a)...)
	r := append([]word.Word(nil), trimLeadingZeros(b)...)
	oldS, sSignCur := []word.Word{1}, 1
	curS, curSSign := []word.Word{0}, 1
	oldT, tSignCur := []word.Word{0}, 1
	curT, curTSign := []word.Word{1}, 1

	for !IsZero(r) {
		q, rem := divSlice(oldR, r, mem)
		oldR, r = r, rem

		oldS, curS, sSignCur, curSSign = stepCofactor(oldS, curS, sSignCur, curSSign, q, mem)
		if needOther {
			oldT, curT, tSignCur, curTSign = stepCofactor(oldT, curT, tSignCur, curTSign, q, mem)
		}
	}
	return oldR, oldS, oldT, sSignCur, tSignCur
}

func divSlice(num, den []word.Word, mem *Memory) (q, r []word.Word) {
	num = trimLeadingZeros(num)
	den = trimLeadingZeros(den)
	if len(den) == 1 {
		numCopy := append([]word.Word(nil), num...)
		rem := DivByWordInPlaceUnnormalized(numCopy, den[0])
		return trimLeadingZeros(numCopy), []word.Word{rem}
	}
	return euclidRem(num, den, mem)
}

// stepCofactor applies one Euclidean step to a cofactor pair tracked as
// signed magnitudes: (old, cur) -> (cur, old - q*cur).
func stepCofactor(old, cur []word.Word, oldSign, curSign int, q []word.Word, mem *Memory) (newOld, newCur []word.Word, newOldSign, newCurSign int) {
	prodLen := len(q) + len(cur) + 1
	prod := make([]word.Word, prodLen)
	Multiply(prod, q, cur, mem)
	prod = trimLeadingZeros(prod)

	// old - q*cur, tracked as a signed magnitude subtraction.
	sign, mag := signedSub(old, oldSign, prod, curSign)
	return cur, mag, curSign, sign
}

// signedSub computes a*aSign - b*bSign as a (sign, magnitude) pair, where
// aSign/bSign are +1 or -1.
func signedSub(a []word.Word, aSign int, b []word.Word, bSign int) (sign int, mag []word.Word) {
	// a*aSign - b*bSign == a*aSign + b*(-bSign)
	return signedAdd(a, aSign, b, -bSign)
}

func signedAdd(a []word.Word, aSign int, b []word.Word, bSign int) (sign int, mag []word.Word) {
	if aSign == bSign {
		n := len(a)
		if len(b) > n {
			n = len(b)
		}
		out := make([]word.Word, n+1)
		copy(out, a)
		carry := AddInPlace(out[:n], b)
		out[n] = carry
		return aSign, trimLeadingZeros(out)
	}
	// Different signs: subtract the smaller magnitude from the larger.
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	pa := make([]word.Word, n)
	pb := make([]word.Word, n)
	copy(pa, a)
	copy(pb, b)
	switch CmpSameLen(pa, pb) {
	case 0:
		return 1, []word.Word{0}
	case 1:
		SubSameLenInPlace(pa, pb)
		return aSign, trimLeadingZeros(pa)
	default:
		SubSameLenInPlace(pb, pa)
		return bSign, trimLeadingZeros(pb)
	}
}
