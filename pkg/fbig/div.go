package fbig

import "github.com/oisee/bignum/pkg/ibig"

// FromRatio computes num/den to Ctx.Precision significant digits under
// Ctx's rounding policy (spec.md §4.5): scale the numerator by a power of
// the radix so the truncating quotient carries exactly Precision digits,
// divide, then apply R.RoundRatio to the truncated remainder before
// folding the scale back into the exponent. Panics ("divide by 0") on a
// zero denominator, and requires a nonzero Precision since an exact
// rational quotient isn't representable in general.
func (ctx Context[R]) FromRatio(num, den ibig.IBig) FBig[R] {
	if den.IsZero() {
		panic("fbig: divide by 0")
	}
	if ctx.Precision == 0 {
		panic("fbig: FromRatio requires a nonzero precision")
	}
	if num.IsZero() {
		return FBig[R]{Ctx: ctx}
	}

	numDigits := digitCount(num.Abs(), ctx.Radix)
	denDigits := digitCount(den.Abs(), ctx.Radix)
	shift := int(ctx.Precision) - (numDigits - denDigits)

	// A negative shift scales the denominator instead of the numerator.
	var q, r, d ibig.IBig
	for {
		scaled := num
		d = den
		if shift > 0 {
			scaled = num.Mul(powRadix(ctx.Radix, shift))
		} else if shift < 0 {
			d = den.Mul(powRadix(ctx.Radix, -shift))
		}
		q, r = scaled.DivRem(d)
		digits := digitCount(q.Abs(), ctx.Radix)
		switch {
		case digits < int(ctx.Precision):
			shift++
			continue
		case digits > int(ctx.Precision):
			shift--
			continue
		}
		break
	}

	var rnd R
	if adj := rnd.RoundRatio(q, r, d); adj != 0 {
		q = q.Add(ibig.FromInt64(int64(adj)))
	}
	return normalize(q, -shift, ctx)
}

// Div computes x/y to x's context's precision: the significands divide
// via FromRatio and the exponents subtract, since
// (xs*radix^xe)/(ys*radix^ye) == (xs/ys)*radix^(xe-ye).
func (x FBig[R]) Div(y FBig[R]) FBig[R] {
	result := x.Ctx.FromRatio(x.Significand, y.Significand)
	result.Exponent += x.Exponent - y.Exponent
	return result
}
