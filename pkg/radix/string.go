package radix

import (
	"fmt"
	"strings"

	"github.com/oisee/bignum/pkg/constdiv"
	"github.com/oisee/bignum/pkg/ubig"
	"github.com/oisee/bignum/pkg/word"
	"golang.org/x/exp/slices"
)

const digitAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Format renders u in the given radix (2..36), most significant digit
// first, using a ConstDivisor built once for the radix so each digit
// extraction reuses its precomputed reciprocal instead of setting up a
// fresh long division; each digit still costs one reciprocal divide step
// per word of the remaining value.
func Format(u ubig.UBig, radix int64) string {
	if radix < 2 || radix > int64(len(digitAlphabet)) {
		panic("radix: Format requires 2 <= radix <= 36")
	}
	if u.IsZero() {
		return "0"
	}
	d := constdiv.New(ubig.FromWord(word.Word(radix)))
	var digits []byte
	for !u.IsZero() {
		var r ubig.UBig
		u, r = d.DivRem(u)
		digit := byte(0)
		if !r.IsZero() {
			digit = byte(r.Words()[0])
		}
		digits = append(digits, digitAlphabet[digit])
	}
	slices.Reverse(digits)
	return string(digits)
}

// Parse parses a digit string in the given radix (2..36) into a UBig.
// Leading/trailing whitespace is not trimmed; case is ignored for letter
// digits.
func Parse(s string, radix int64) (ubig.UBig, error) {
	if radix < 2 || radix > int64(len(digitAlphabet)) {
		return ubig.UBig{}, fmt.Errorf("radix: Parse requires 2 <= radix <= 36, got %d", radix)
	}
	if s == "" {
		return ubig.UBig{}, fmt.Errorf("radix: Parse: empty string")
	}
	base := ubig.FromWord(word.Word(radix))
	acc := ubig.Zero()
	for _, c := range strings.ToLower(s) {
		idx := strings.IndexRune(digitAlphabet, c)
		if idx < 0 || idx >= int(radix) {
			return ubig.UBig{}, fmt.Errorf("radix: Parse: invalid digit %q for radix %d", c, radix)
		}
		acc = acc.Mul(base).Add(ubig.FromWord(word.Word(idx)))
	}
	return acc, nil
}
