package ibig

import (
	"github.com/oisee/bignum/pkg/arith"
	"github.com/oisee/bignum/pkg/word"
)

// And, Or and Xor emulate two's-complement bitwise semantics over
// sign-magnitude storage (spec.md §4.3), the standard technique shared
// by every sign-magnitude bignum library: pad both operands one word
// beyond their longer magnitude (so the extra word carries pure sign
// extension), convert each to its infinite-precision two's-complement
// bit pattern, apply the op word-wise, then convert the result back to
// sign-magnitude by inspecting its top bit.
func (x IBig) And(y IBig) IBig { return bitwiseOp(x, y, func(a, b word.Word) word.Word { return a & b }) }
func (x IBig) Or(y IBig) IBig  { return bitwiseOp(x, y, func(a, b word.Word) word.Word { return a | b }) }
func (x IBig) Xor(y IBig) IBig { return bitwiseOp(x, y, func(a, b word.Word) word.Word { return a ^ b }) }

func bitwiseOp(x, y IBig, op func(a, b word.Word) word.Word) IBig {
	n := len(x.Words())
	if len(y.Words()) > n {
		n = len(y.Words())
	}
	n++ // room for the sign-extension word

	a := toTwosComplement(x.Negative(), x.Words(), n)
	b := toTwosComplement(y.Negative(), y.Words(), n)
	out := make([]word.Word, n)
	for i := range out {
		out[i] = op(a[i], b[i])
	}
	negative, magnitude := fromTwosComplement(out)
	return FromWords(negative, magnitude)
}

// toTwosComplement materializes v's two's-complement bit pattern in n
// words (n must exceed v's magnitude length, so the top word is pure
// sign extension: all-zero for nonnegative, all-one for negative).
func toTwosComplement(negative bool, magnitude []word.Word, n int) []word.Word {
	out := make([]word.Word, n)
	copy(out, magnitude)
	if !negative {
		return out
	}
	for i := range out {
		out[i] = ^out[i]
	}
	arith.AddOneInPlace(out)
	return out
}

// fromTwosComplement inverts toTwosComplement: the top word's sign bit
// (all-one vs all-zero, since the caller always leaves a pure
// sign-extension word at the top) tells us which case we're in.
func fromTwosComplement(bits []word.Word) (negative bool, magnitude []word.Word) {
	top := bits[len(bits)-1]
	if top>>(word.Bits-1) == 0 {
		return false, bits
	}
	out := append([]word.Word(nil), bits...)
	for i := range out {
		out[i] = ^out[i]
	}
	arith.AddOneInPlace(out)
	return true, out
}
