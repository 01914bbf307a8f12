// Package ubig implements UBig, the sign-enforcing unsigned big integer:
// a thin wrapper over repr.Repr that panics rather than ever holding a
// negative magnitude.
package ubig

import (
	"github.com/oisee/bignum/pkg/arith"
	"github.com/oisee/bignum/pkg/repr"
	"github.com/oisee/bignum/pkg/word"
)

// UBig is an arbitrary-precision unsigned integer.
type UBig struct {
	r repr.Repr
}

// Zero returns the additive identity.
func Zero() UBig { return UBig{} }

// FromWord builds a UBig from a single machine word.
func FromWord(w word.Word) UBig { return UBig{r: repr.FromWord(w)} }

// FromDWord builds a UBig from a double word.
func FromDWord(dw word.DoubleWord) UBig { return UBig{r: repr.FromDWord(dw)} }

// FromWords builds a UBig from a little-endian magnitude slice.
func FromWords(magnitude []word.Word) UBig { return UBig{r: repr.FromWords(false, magnitude)} }

// IsZero reports whether the value is exactly zero.
func (u UBig) IsZero() bool { return u.r.IsZero() }

// Words returns the magnitude as a little-endian slice.
func (u UBig) Words() []word.Word { return u.r.Words() }

// BitLen returns 0 for zero, else (len-1)*W + bits_in_top_word.
func (u UBig) BitLen() int {
	if u.IsZero() {
		return 0
	}
	return arith.BitLenSlice(u.Words())
}

// TrailingZeros reports the number of trailing zero bits, and false if u
// is zero (spec.md §4.3: "trailing_zeros() is None at zero").
func (u UBig) TrailingZeros() (int, bool) {
	words := u.Words()
	if arith.IsZero(words) {
		return 0, false
	}
	n := 0
	for _, w := range words {
		if w != 0 {
			return n + word.TrailingZeros(w), true
		}
		n += word.Bits
	}
	panic("unreachable")
}

// Cmp compares two UBig values, returning -1, 0, or 1.
func (u UBig) Cmp(v UBig) int { return arith.CmpInPlace(u.Words(), v.Words()) }

// Add computes u + v. The {Small,Small} case is a direct double-word add
// with overflow detection, promoting to a heap buffer only when the sum
// doesn't fit (spec.md §4.3); {Small,Large}/{Large,Small}/{Large,Large}
// share the general slice path, since it is already the tagged view's
// uniform magnitude regardless of which side is inline.
func (u UBig) Add(v UBig) UBig {
	ut, vt := u.r.AsTyped(), v.r.AsTyped()
	if !ut.IsLarge && !vt.IsLarge {
		sum, carry := ut.Small.Add(vt.Small)
		if carry == 0 {
			return UBig{r: repr.FromDWord(sum)}
		}
		return FromWords([]word.Word{sum.Lo, sum.Hi, carry})
	}
	a, b := u.Words(), v.Words()
	if len(a) < len(b) {
		a, b = b, a
	}
	dst := make([]word.Word, len(a)+1)
	copy(dst, a)
	carry := arith.AddInPlace(dst[:len(a)], b)
	dst[len(a)] = carry
	return FromWords(dst)
}

// Sub computes u - v, panicking ("negative UBig") if v > u.
func (u UBig) Sub(v UBig) UBig {
	if u.Cmp(v) < 0 {
		panic("negative UBig")
	}
	a := append([]word.Word(nil), u.Words()...)
	arith.SubInPlace(a, v.Words())
	return FromWords(a)
}

// Mul computes u * v. When both operands fit in a single word the product
// comes from one widening multiply; every other case, including operands
// of two words, goes through the general slice multiply.
func (u UBig) Mul(v UBig) UBig {
	ut, vt := u.r.AsTyped(), v.r.AsTyped()
	if !ut.IsLarge && !vt.IsLarge && ut.Small.Hi == 0 && vt.Small.Hi == 0 {
		p := word.MulWide(ut.Small.Lo, vt.Small.Lo)
		return FromDWord(p)
	}
	a, b := u.Words(), v.Words()
	if arith.IsZero(a) || arith.IsZero(b) {
		return Zero()
	}
	dst := make([]word.Word, len(a)+len(b))
	var mem *arith.Memory
	if req := arith.MemoryRequirementMul(len(a), len(b)); req > 0 {
		mem = arith.NewMemory(req)
	}
	arith.Multiply(dst, a, b, mem)
	return FromWords(dst)
}

// DivRem computes (q, r) such that u == q*v + r && r < v, panicking
// ("divide by 0") if v is zero.
func (u UBig) DivRem(v UBig) (q, r UBig) {
	if v.IsZero() {
		panic("divide by 0")
	}
	num := append([]word.Word(nil), u.Words()...)
	den := append([]word.Word(nil), v.Words()...)
	if len(den) == 1 {
		rem := arith.DivByWordInPlaceUnnormalized(num, den[0])
		return FromWords(num), FromWord(rem)
	}
	shift := word.LeadingZeros(den[len(den)-1])
	if shift > 0 {
		arith.ShlInPlace(den, uint(shift))
		carry := arith.ShlInPlace(num, uint(shift))
		num = append(num, carry)
	} else {
		num = append(num, 0)
	}
	fd := arith.NewFastDivideNormalized(den[len(den)-1])
	mem := arith.NewMemory(arith.MemoryRequirementDiv(len(num), len(den)))
	qq, rr := arith.DivRemInPlace(num, den, fd, mem)
	if shift > 0 {
		arith.ShrInPlace(rr, uint(shift))
	}
	return FromWords(qq), FromWords(rr)
}

// Gcd returns gcd(u, v).
func (u UBig) Gcd(v UBig) UBig {
	mem := arith.NewMemory(arith.MemoryRequirementGcd(max(len(u.Words()), len(v.Words()))))
	g := arith.GcdInPlace(append([]word.Word(nil), u.Words()...), append([]word.Word(nil), v.Words()...), mem)
	return FromWords(g)
}

// XgcdResult holds an extended-GCD result: g == s*u - t*v or g == s*u +
// t*v depending on sign combination (see arith.XgcdInPlace).
type XgcdResult struct {
	G, S, T       UBig
	SSign, TSign  int
}

// Xgcd computes the extended GCD of u and v.
func (u UBig) Xgcd(v UBig) XgcdResult {
	mem := arith.NewMemory(arith.MemoryRequirementGcd(max(len(u.Words()), len(v.Words()))))
	g, s, t, sSign, tSign := arith.XgcdInPlace(u.Words(), v.Words(), true, mem)
	return XgcdResult{G: FromWords(g), S: FromWords(s), T: FromWords(t), SSign: sSign, TSign: tSign}
}

// SqrtRem computes (r, e) such that u == r*r + e && e <= 2*r.
func (u UBig) SqrtRem() (r, e UBig) {
	if u.IsZero() {
		return Zero(), Zero()
	}
	a := append([]word.Word(nil), u.Words()...)
	n := len(a)
	if n%2 != 0 {
		a = append(a, 0)
		n++
	}
	mem := arith.NewMemory(arith.MemoryRequirementSqrt(n))
	s, rem := arith.SqrtRem(a, mem)
	return FromWords(s), FromWords(rem)
}

// CbrtRem computes (r, e) such that u == r^3 + e && e <= 3*r*(r+1).
func (u UBig) CbrtRem() (r, e UBig) {
	mem := arith.NewMemory(8 * (len(u.Words()) + 4))
	root, rem := arith.CbrtRem(u.Words(), mem)
	return FromWords(root), FromWords(rem)
}

// Log computes (k, p) such that p == base^k && p <= u < p*base, panicking
// on a zero operand or a base <= 1.
func (u UBig) Log(base UBig) (k int, p UBig) {
	mem := arith.NewMemory(8 * (len(u.Words()) + len(base.Words()) + 4))
	kk, pow := arith.Log(u.Words(), base.Words(), mem)
	return kk, FromWords(pow)
}

// Shl shifts u left by k bits.
func (u UBig) Shl(k int) UBig {
	if u.IsZero() || k == 0 {
		return u
	}
	words, bits := k/word.Bits, uint(k%word.Bits)
	src := u.Words()
	dst := make([]word.Word, len(src)+words+1)
	arith.ShlWords(dst[:len(src)+words], src, words)
	if bits > 0 {
		carry := arith.ShlInPlace(dst[words:len(src)+words], bits)
		dst[len(src)+words] = carry
	}
	return FromWords(dst)
}

// Shr shifts u right by k bits.
func (u UBig) Shr(k int) UBig {
	if u.IsZero() || k == 0 {
		return u
	}
	words, bits := k/word.Bits, uint(k%word.Bits)
	src := u.Words()
	if words >= len(src) {
		return Zero()
	}
	dst := append([]word.Word(nil), src[words:]...)
	if bits > 0 {
		arith.ShrInPlace(dst, bits)
	}
	return FromWords(dst)
}

// And, Or and Xor are plain word-wise bitwise operations on the
// magnitude (UBig carries no sign bit to emulate two's complement over,
// unlike IBig's versions of the same operators).
func (u UBig) And(v UBig) UBig { return bitwise(u, v, func(a, b word.Word) word.Word { return a & b }) }
func (u UBig) Or(v UBig) UBig  { return bitwise(u, v, func(a, b word.Word) word.Word { return a | b }) }
func (u UBig) Xor(v UBig) UBig { return bitwise(u, v, func(a, b word.Word) word.Word { return a ^ b }) }

func bitwise(u, v UBig, op func(a, b word.Word) word.Word) UBig {
	a, b := u.Words(), v.Words()
	if len(a) < len(b) {
		a, b = b, a
	}
	dst := make([]word.Word, len(a))
	for i := range dst {
		var bw word.Word
		if i < len(b) {
			bw = b[i]
		}
		dst[i] = op(a[i], bw)
	}
	return FromWords(dst)
}
