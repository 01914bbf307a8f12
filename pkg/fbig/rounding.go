package fbig

import "github.com/oisee/bignum/pkg/ibig"

// Rounding picks the {-1, 0, +1} adjustment a directed-rounded division
// applies to its truncating quotient, given the quotient q, the
// truncating remainder r, and the divisor d (spec.md §4.5 step 4). The
// type parameter on Context/FBig is constrained to this interface rather
// than dispatched virtually, following the "type-level rounding policy"
// design note in spec.md §9.
type Rounding interface {
	RoundRatio(q, r, d ibig.IBig) int
}

// RoundZero always truncates toward zero.
type RoundZero struct{}

// RoundAway always rounds away from zero on any nonzero remainder.
type RoundAway struct{}

// RoundUp rounds toward positive infinity (ceiling).
type RoundUp struct{}

// RoundDown rounds toward negative infinity (floor).
type RoundDown struct{}

// RoundHalfEven rounds to the nearest representable value, ties to even
// (banker's rounding).
type RoundHalfEven struct{}

// RoundHalfAway rounds to the nearest representable value, ties away
// from zero.
type RoundHalfAway struct{}

func (RoundZero) RoundRatio(q, r, d ibig.IBig) int { return 0 }

func (RoundAway) RoundRatio(q, r, d ibig.IBig) int {
	if r.IsZero() {
		return 0
	}
	return ratioSign(r, d)
}

func (RoundUp) RoundRatio(q, r, d ibig.IBig) int {
	if s := ratioSign(r, d); s > 0 {
		return 1
	}
	return 0
}

func (RoundDown) RoundRatio(q, r, d ibig.IBig) int {
	if s := ratioSign(r, d); s < 0 {
		return -1
	}
	return 0
}

func (RoundHalfEven) RoundRatio(q, r, d ibig.IBig) int {
	return roundHalf(q, r, d, false)
}

func (RoundHalfAway) RoundRatio(q, r, d ibig.IBig) int {
	return roundHalf(q, r, d, true)
}

// ratioSign reports the sign of r/d: +1 if r and d agree in sign (and r
// is nonzero), -1 if they differ, 0 if r is zero.
func ratioSign(r, d ibig.IBig) int {
	if r.IsZero() {
		return 0
	}
	if r.Negative() == d.Negative() {
		return 1
	}
	return -1
}

// roundHalf implements the half-comparison step shared by HalfEven and
// HalfAway: compare 2|r| against |d|.
func roundHalf(q, r, d ibig.IBig, tiesAway bool) int {
	sign := ratioSign(r, d)
	if sign == 0 {
		return 0
	}
	twoAbsR := ibig.FromUBig(r.Abs()).Shl(1)
	absD := ibig.FromUBig(d.Abs())
	switch twoAbsR.Cmp(absD) {
	case -1:
		return 0
	case 1:
		return sign
	default:
		if tiesAway {
			return sign
		}
		if qIsOdd(q) {
			return sign
		}
		return 0
	}
}

func qIsOdd(q ibig.IBig) bool {
	words := q.Words()
	if len(words) == 0 {
		return false
	}
	return words[0]&1 == 1
}
