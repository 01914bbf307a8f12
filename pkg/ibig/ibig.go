// Package ibig implements IBig, the arbitrary-sign big integer: a thin
// wrapper over repr.Repr where, unlike UBig, a negative sign is a normal
// value rather than a programmer error.
package ibig

import (
	"github.com/oisee/bignum/pkg/arith"
	"github.com/oisee/bignum/pkg/repr"
	"github.com/oisee/bignum/pkg/ubig"
	"github.com/oisee/bignum/pkg/word"
)

// IBig is an arbitrary-precision signed integer.
type IBig struct {
	r repr.Repr
}

// Zero returns the additive identity.
func Zero() IBig { return IBig{} }

// FromWord builds a nonnegative IBig from a single machine word.
func FromWord(w word.Word) IBig { return IBig{r: repr.FromWord(w)} }

// FromInt64 builds an IBig from a native signed integer.
func FromInt64(v int64) IBig {
	if v >= 0 {
		return FromWord(word.Word(v))
	}
	return IBig{r: repr.FromWord(word.Word(-v)).WithSign(true)}
}

// FromWords builds an IBig with the given sign and little-endian
// magnitude (sign is forced positive if the magnitude is zero, per the
// zero-is-positive invariant).
func FromWords(negative bool, magnitude []word.Word) IBig {
	return IBig{r: repr.FromWords(negative, magnitude)}
}

// FromUBig lifts a nonnegative UBig into IBig.
func FromUBig(u ubig.UBig) IBig { return FromWords(false, u.Words()) }

// IsZero reports whether the value is exactly zero.
func (x IBig) IsZero() bool { return x.r.IsZero() }

// Negative reports the sign; zero is always reported positive.
func (x IBig) Negative() bool { return x.r.Negative() }

// Words returns the magnitude (sign-free) as a little-endian slice.
func (x IBig) Words() []word.Word { return x.r.Words() }

// Abs returns the magnitude as a UBig.
func (x IBig) Abs() ubig.UBig { return ubig.FromWords(x.Words()) }

// Neg returns -x. ((-(-x)) == x per spec.md §8's round-trip law, since
// WithSign on zero is a no-op and on nonzero flips the bit both times.)
func (x IBig) Neg() IBig {
	if x.IsZero() {
		return x
	}
	return IBig{r: x.r.WithSign(!x.r.Negative())}
}

// BitLen returns 0 for zero, else the magnitude's bit length.
func (x IBig) BitLen() int {
	if x.IsZero() {
		return 0
	}
	return arith.BitLenSlice(x.Words())
}

// Cmp compares two IBig values, returning -1, 0, or 1.
func (x IBig) Cmp(y IBig) int {
	switch {
	case x.Negative() && !y.Negative():
		return -1
	case !x.Negative() && y.Negative():
		return 1
	case !x.Negative():
		return arith.CmpInPlace(x.Words(), y.Words())
	default:
		return arith.CmpInPlace(y.Words(), x.Words())
	}
}

// Add computes x + y, dispatching to magnitude add when signs agree and
// to a signed magnitude subtraction (via arith.SubInPlaceWithSign) when
// they differ — the same shape as the source's "subtraction ... dispatches
// into the signed variant that may negate its buffer" for Sub, reused
// here since x+y and x-(-y) are the same operation once signs are
// unified.
func (x IBig) Add(y IBig) IBig {
	if x.Negative() == y.Negative() {
		a, b := x.Words(), y.Words()
		if len(a) < len(b) {
			a, b = b, a
		}
		dst := make([]word.Word, len(a)+1)
		copy(dst, a)
		dst[len(a)] = arith.AddInPlace(dst[:len(a)], b)
		return FromWords(x.Negative(), dst)
	}
	a, b := x.Words(), y.Words()
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	pa := make([]word.Word, n)
	pb := make([]word.Word, n)
	copy(pa, a)
	copy(pb, b)
	switch arith.CmpSameLen(pa, pb) {
	case 0:
		return Zero()
	case 1:
		arith.SubSameLenInPlace(pa, pb)
		return FromWords(x.Negative(), pa)
	default:
		arith.SubSameLenInPlace(pb, pa)
		return FromWords(y.Negative(), pb)
	}
}

// Sub computes x - y.
func (x IBig) Sub(y IBig) IBig { return x.Add(y.Neg()) }

// Mul computes x * y.
func (x IBig) Mul(y IBig) IBig {
	a, b := x.Words(), y.Words()
	if arith.IsZero(a) || arith.IsZero(b) {
		return Zero()
	}
	dst := make([]word.Word, len(a)+len(b))
	var mem *arith.Memory
	if req := arith.MemoryRequirementMul(len(a), len(b)); req > 0 {
		mem = arith.NewMemory(req)
	}
	arith.Multiply(dst, a, b, mem)
	return FromWords(x.Negative() != y.Negative(), dst)
}

// DivRem computes truncating division: q = trunc(x/y), r = x - q*y
// (r's sign matches x's, like Go's native / and % on signed integers).
// Panics ("divide by 0") if y is zero.
func (x IBig) DivRem(y IBig) (q, r IBig) {
	uq, ur := x.Abs().DivRem(y.Abs())
	return FromWords(x.Negative() != y.Negative(), uq.Words()), FromWords(x.Negative(), ur.Words())
}

// Gcd returns the nonnegative gcd(x, y).
func (x IBig) Gcd(y IBig) ubig.UBig { return x.Abs().Gcd(y.Abs()) }

// Shl shifts x left by k bits, preserving sign.
func (x IBig) Shl(k int) IBig { return FromWords(x.Negative(), x.Abs().Shl(k).Words()) }

// Shr shifts x's magnitude right by k bits and keeps the sign, so a
// negative value rounds toward zero; this is not a two's-complement
// arithmetic shift, which would round toward negative infinity.
func (x IBig) Shr(k int) IBig { return FromWords(x.Negative(), x.Abs().Shr(k).Words()) }
