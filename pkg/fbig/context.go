// Package fbig implements FBig[R], the directed-rounding arbitrary
// precision float: a (significand, exponent) pair in an arbitrary radix,
// where significand*radix^exponent is the represented value and R is a
// zero-size type parameter selecting which Rounding policy division and
// truncation apply (spec.md §4.5, §9).
package fbig

import (
	"github.com/oisee/bignum/pkg/ibig"
	"github.com/oisee/bignum/pkg/ubig"
	"github.com/oisee/bignum/pkg/word"
)

// Context carries the precision (max significant digits, in Radix) and
// rounding policy shared by every value it produces. Radix must be >= 2.
type Context[R Rounding] struct {
	Precision uint
	Radix     int64
}

// NewContext builds a Context for the given precision and radix. A zero
// Precision means "exact, no truncation" and is rejected by operations
// that cannot produce an exact result (division, Ln).
func NewContext[R Rounding](precision uint, radix int64) Context[R] {
	if radix < 2 {
		panic("fbig: radix must be >= 2")
	}
	return Context[R]{Precision: precision, Radix: radix}
}

// FromInt lifts an exact integer into this context, truncating to
// Precision significant digits (with this context's rounding policy) if
// needed.
func (ctx Context[R]) FromInt(v ibig.IBig) FBig[R] {
	return normalize(v, 0, ctx)
}

// FromParts builds significand*radix^exponent, normalizing (trimming
// trailing zero digits, then truncating to Precision digits under this
// context's rounding policy).
func (ctx Context[R]) FromParts(significand ibig.IBig, exponent int) FBig[R] {
	return normalize(significand, exponent, ctx)
}

func digitCount(u ubig.UBig, radix int64) int {
	if u.IsZero() {
		return 0
	}
	k, _ := u.Log(ubig.FromWord(word.Word(radix)))
	return k + 1
}

// powRadix returns radix^d as an IBig, computed by repeated multiply
// (d is always a small digit count in practice, not an arbitrary exponent).
func powRadix(radix int64, d int) ibig.IBig {
	return ibig.FromUBig(powRadixUBig(radix, d))
}

func powRadixUBig(radix int64, d int) ubig.UBig {
	result := ubig.FromWord(1)
	base := ubig.FromWord(word.Word(radix))
	for i := 0; i < d; i++ {
		result = result.Mul(base)
	}
	return result
}
