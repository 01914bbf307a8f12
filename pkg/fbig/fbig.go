package fbig

import (
	"github.com/oisee/bignum/pkg/ibig"
	"github.com/oisee/bignum/pkg/word"
)

// FBig is significand*Ctx.Radix^Exponent, kept in normalized form: no
// trailing zero digit in the significand (in Ctx.Radix), and at most
// Ctx.Precision significant digits (unless Ctx.Precision is 0, meaning
// exact/untruncated).
type FBig[R Rounding] struct {
	Significand ibig.IBig
	Exponent    int
	Ctx         Context[R]
}

// IsZero reports whether the value is exactly zero.
func (x FBig[R]) IsZero() bool { return x.Significand.IsZero() }

// Neg returns -x.
func (x FBig[R]) Neg() FBig[R] {
	return FBig[R]{Significand: x.Significand.Neg(), Exponent: x.Exponent, Ctx: x.Ctx}
}

// Cmp compares two values as their represented rationals, returning -1,
// 0, or 1. Panics if the two contexts use different radixes.
func (x FBig[R]) Cmp(y FBig[R]) int {
	if x.Ctx.Radix != y.Ctx.Radix {
		panic("fbig: Cmp requires matching radixes")
	}
	xs, ys := alignExponents(x, y)
	return xs.Cmp(ys)
}

// Add computes x + y under x's context (precision/rounding policy).
func (x FBig[R]) Add(y FBig[R]) FBig[R] {
	xs, ys := alignExponents(x, y)
	exp := x.Exponent
	if y.Exponent < exp {
		exp = y.Exponent
	}
	return normalize(xs.Add(ys), exp, x.Ctx)
}

// Sub computes x - y under x's context.
func (x FBig[R]) Sub(y FBig[R]) FBig[R] { return x.Add(y.Neg()) }

// Mul computes x * y under x's context.
func (x FBig[R]) Mul(y FBig[R]) FBig[R] {
	return normalize(x.Significand.Mul(y.Significand), x.Exponent+y.Exponent, x.Ctx)
}

// alignExponents rescales the smaller-exponent operand's significand up
// to the larger operand's digit weight so both can be added/compared
// directly, returning the (possibly rescaled) significands.
func alignExponents[R Rounding](x, y FBig[R]) (xs, ys ibig.IBig) {
	switch {
	case x.Exponent == y.Exponent:
		return x.Significand, y.Significand
	case x.Exponent > y.Exponent:
		return x.Significand.Mul(powRadix(x.Ctx.Radix, x.Exponent-y.Exponent)), y.Significand
	default:
		return x.Significand, y.Significand.Mul(powRadix(x.Ctx.Radix, y.Exponent-x.Exponent))
	}
}

// normalize trims trailing zero digits from significand (folding them
// into exponent), then, if ctx.Precision is nonzero and the result still
// carries more than Precision significant digits, truncates down to
// Precision digits applying R's RoundRatio policy to the dropped part.
func normalize[R Rounding](significand ibig.IBig, exponent int, ctx Context[R]) FBig[R] {
	if significand.IsZero() {
		return FBig[R]{Ctx: ctx}
	}

	sig, exp := significand, exponent
	if ctx.Radix == 2 {
		if tz, ok := sig.Abs().TrailingZeros(); ok && tz > 0 {
			sig = sig.Shr(tz)
			exp += tz
		}
	} else {
		base := ibig.FromWord(word.Word(ctx.Radix))
		for {
			q, r := sig.DivRem(base)
			if !r.IsZero() {
				break
			}
			sig = q
			exp++
		}
	}

	if ctx.Precision == 0 {
		return FBig[R]{Significand: sig, Exponent: exp, Ctx: ctx}
	}

	digits := digitCount(sig.Abs(), ctx.Radix)
	if digits <= int(ctx.Precision) {
		return FBig[R]{Significand: sig, Exponent: exp, Ctx: ctx}
	}

	drop := digits - int(ctx.Precision)
	divisor := powRadix(ctx.Radix, drop)
	q, r := sig.DivRem(divisor)
	var rnd R
	if adj := rnd.RoundRatio(q, r, divisor); adj != 0 {
		q = q.Add(ibig.FromInt64(int64(adj)))
	}
	return normalize(q, exp+drop, ctx)
}
