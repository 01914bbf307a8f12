// Package constdiv implements ConstDivisor: a precomputed, normalized
// divisor that lets repeated division/remainder against the same
// modulus cost O(n) per operation instead of paying the long-division
// setup each time.
package constdiv

import (
	"github.com/oisee/bignum/pkg/arith"
	"github.com/oisee/bignum/pkg/ubig"
	"github.com/oisee/bignum/pkg/word"
)

// kind discriminates the three size cases a ConstDivisor can hold,
// mirroring the {single,double,large} dispatch in arith's own division
// kernels (§4.4).
type kind int

const (
	kindWord kind = iota
	kindDWord
	kindLarge
)

// ConstDivisor is a normalized modulus with its Möller–Granlund
// reciprocal precomputed once at construction.
type ConstDivisor struct {
	kind   kind
	shift  uint
	words  []word.Word // normalized modulus (large case only)
	fd1    arith.FastDivideNormalized
	fd2    arith.FastDivideNormalized2
}

// New builds a ConstDivisor from a nonzero modulus, normalizing it
// (left-shifting so its top word's top bit is set) and caching the
// appropriate reciprocal. Panics ("divide by 0") on a zero modulus.
func New(modulus ubig.UBig) ConstDivisor {
	m := append([]word.Word(nil), modulus.Words()...)
	if arith.IsZero(m) {
		panic("divide by 0")
	}
	shift := word.LeadingZeros(m[len(m)-1])
	if shift > 0 {
		m = append(m, 0)
		arith.ShlInPlace(m, uint(shift))
		m = trimTop(m)
	}

	switch {
	case len(m) == 1:
		return ConstDivisor{kind: kindWord, shift: uint(shift), fd1: arith.NewFastDivideNormalized(m[0])}
	case len(m) == 2:
		return ConstDivisor{kind: kindDWord, shift: uint(shift), fd2: arith.NewFastDivideNormalized2(m[1], m[0])}
	default:
		return ConstDivisor{kind: kindLarge, shift: uint(shift), words: m, fd1: arith.NewFastDivideNormalized(m[len(m)-1])}
	}
}

func trimTop(x []word.Word) []word.Word {
	n := len(x)
	for n > 1 && x[n-1] == 0 {
		n--
	}
	return x[:n]
}

// DivRem computes (q, r) = (dividend / modulus, dividend % modulus).
func (c ConstDivisor) DivRem(dividend ubig.UBig) (q, r ubig.UBig) {
	num := append([]word.Word(nil), dividend.Words()...)
	switch c.kind {
	case kindWord:
		shifted := appendNormShift(num, c.shift)
		rem := arith.DivByWordInPlace(shifted, c.fd1)
		return ubig.FromWords(shifted), ubig.FromWord(shiftRemBack(rem, c.shift))
	case kindDWord:
		shifted := appendNormShift(num, c.shift)
		r1, r0 := arith.DivByDWordInPlace(shifted, c.fd2)
		rem := []word.Word{r0, r1}
		arith.ShrInPlace(rem, c.shift)
		return ubig.FromWords(shifted), ubig.FromWords(rem)
	default:
		shifted := appendNormShift(num, c.shift)
		mem := arith.NewMemory(arith.MemoryRequirementDiv(len(shifted), len(c.words)))
		qq, rr := arith.DivRemInPlace(shifted, c.words, c.fd1, mem)
		arith.ShrInPlace(rr, c.shift)
		return ubig.FromWords(qq), ubig.FromWords(rr)
	}
}

// Div returns only the quotient.
func (c ConstDivisor) Div(dividend ubig.UBig) ubig.UBig {
	q, _ := c.DivRem(dividend)
	return q
}

// Rem returns only the remainder.
func (c ConstDivisor) Rem(dividend ubig.UBig) ubig.UBig {
	_, r := c.DivRem(dividend)
	return r
}

// Mul is a convenience not present in the distilled division-focused
// surface but natural to add next to a divisor abstraction: it multiplies
// dividend by the (unnormalized) modulus this ConstDivisor was built
// from, recovering the original magnitude from the cached shift.
func (c ConstDivisor) Mul(x ubig.UBig) ubig.UBig {
	modulus := c.modulusWords()
	a, b := x.Words(), modulus
	dst := make([]word.Word, len(a)+len(b))
	var mem *arith.Memory
	if req := arith.MemoryRequirementMul(len(a), len(b)); req > 0 {
		mem = arith.NewMemory(req)
	}
	arith.Multiply(dst, a, b, mem)
	return ubig.FromWords(dst)
}

func (c ConstDivisor) modulusWords() []word.Word {
	var normalized []word.Word
	switch c.kind {
	case kindWord:
		normalized = []word.Word{c.fd1.Divisor}
	case kindDWord:
		normalized = []word.Word{c.fd2.D0, c.fd2.D1}
	default:
		normalized = append([]word.Word(nil), c.words...)
	}
	arith.ShrInPlace(normalized, c.shift)
	return normalized
}

func appendNormShift(num []word.Word, shift uint) []word.Word {
	num = append(num, 0)
	if shift > 0 {
		carry := arith.ShlInPlace(num[:len(num)-1], shift)
		num[len(num)-1] = carry
	}
	return num
}

func shiftRemBack(rem word.Word, shift uint) word.Word {
	if shift == 0 {
		return rem
	}
	return rem >> shift
}
