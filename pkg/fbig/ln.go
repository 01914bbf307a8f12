package fbig

import (
	"github.com/oisee/bignum/pkg/ibig"
	"github.com/oisee/bignum/pkg/ubig"
	"github.com/oisee/bignum/pkg/word"
)

// IAcoth computes acoth(n) * Ctx.Radix^Ctx.Precision, rounded to an
// integer under Ctx's rounding policy, for an integer n > 1, via the
// Maclaurin series acoth(n) = sum_{k>=0} 1/((2k+1) n^(2k+1)) (spec.md
// §4.5).
func (ctx Context[R]) IAcoth(n int64) ubig.UBig {
	if n <= 1 {
		panic("fbig: acoth argument must exceed 1")
	}
	return ctx.iArtanh(ubig.FromWord(1), ubig.FromWord(word.Word(n)))
}

// iArtanh computes artanh(p/q) * Ctx.Radix^Ctx.Precision, rounded to an
// integer under Ctx's rounding policy, for 0 <= p < q, via the Maclaurin series
// artanh(t) = sum_{k>=0} t^(2k+1)/(2k+1). acoth(n) is the special case
// artanh(1/n).
//
// Following original_source/float/src/log.rs's iacoth, the series itself
// is accumulated at an internally widened work precision (nominal
// precision plus a handful of guard digits, the same margin Ln uses
// below) since truncating per-term division otherwise loses up to one
// unit in the last place per summed term; only the final sum is rounded
// back down to the nominal precision, once, under R's policy.
func (ctx Context[R]) iArtanh(p, q ubig.UBig) ubig.UBig {
	if p.IsZero() {
		return ubig.Zero()
	}
	guard := ctx.Precision/4 + 8
	scale := powRadixUBig(ctx.Radix, int(ctx.Precision+guard))
	pPow, qPow := p, q
	sum := ubig.Zero()
	for k := 0; ; k++ {
		denom := qPow.Mul(ubig.FromWord(word.Word(2*k + 1)))
		term, _ := scale.Mul(pPow).DivRem(denom)
		if term.IsZero() {
			break
		}
		sum = sum.Add(term)
		pPow = pPow.Mul(p).Mul(p)
		qPow = qPow.Mul(q).Mul(q)
	}
	return roundTrailingDigits[R](ctx.Radix, ibig.FromUBig(sum), int(guard)).Abs()
}

// roundTrailingDigits drops the low dropDigits digits (in the given
// radix) from v, applying R's RoundRatio policy to the dropped remainder
// rather than simply truncating.
func roundTrailingDigits[R Rounding](radix int64, v ibig.IBig, dropDigits int) ibig.IBig {
	if dropDigits <= 0 {
		return v
	}
	divisor := powRadix(radix, dropDigits)
	q, r := v.DivRem(divisor)
	var rnd R
	if adj := rnd.RoundRatio(q, r, divisor); adj != 0 {
		q = q.Add(ibig.FromInt64(int64(adj)))
	}
	return q
}

// lnScaled computes ln(w) * Ctx.Radix^Ctx.Precision for an integer
// w >= 1, via ln(w) = 2*artanh((w-1)/(w+1)): the artanh value is rounded
// to an integer under Ctx's rounding policy and then doubled.
func (ctx Context[R]) lnScaled(w ubig.UBig) ubig.UBig {
	one := ubig.FromWord(1)
	if w.Cmp(one) == 0 {
		return ubig.Zero()
	}
	return ctx.iArtanh(w.Sub(one), w.Add(one)).Mul(ubig.FromWord(2))
}

// Ln computes the natural logarithm of x to x.Ctx's precision. Per
// spec.md §4.5's recomposition ln(x) = ln(y) + ℓ·ln(radix), x's integer
// significand stands in for y and x.Exponent for ℓ, so no separate
// mantissa-reduction pass is needed: ln(significand*radix^exponent) =
// ln(significand) + exponent*ln(radix). Panics on a non-positive operand
// or a zero precision.
func (ctx Context[R]) Ln(x FBig[R]) FBig[R] {
	if x.Significand.Negative() || x.Significand.IsZero() {
		panic("fbig: Ln requires a positive operand")
	}
	if ctx.Precision == 0 {
		panic("fbig: Ln requires a nonzero precision")
	}
	guard := ctx.Precision/4 + 8
	work := Context[R]{Precision: ctx.Precision + guard, Radix: ctx.Radix}

	lnSig := work.lnScaled(x.Significand.Abs())
	lnRadix := work.lnScaled(ubig.FromWord(word.Word(ctx.Radix)))

	scaled := ibig.FromUBig(lnSig).Add(ibig.FromInt64(int64(x.Exponent)).Mul(ibig.FromUBig(lnRadix)))
	return normalize(scaled, -int(work.Precision), ctx)
}
