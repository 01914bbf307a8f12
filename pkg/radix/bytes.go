// Package radix is the boundary codec layer: byte-order conversions and
// string-radix parsing/formatting for UBig, kept separate from the core
// arithmetic packages (spec.md §1 draws the line between the arithmetic
// core and any serialization surface around it).
package radix

import (
	"github.com/oisee/bignum/pkg/ubig"
	"github.com/oisee/bignum/pkg/word"
	"golang.org/x/exp/slices"
)

// ToLEBytes renders u as little-endian bytes, trimmed to the minimal
// length that still round-trips through FromLEBytes (zero renders as an
// empty slice).
func ToLEBytes(u ubig.UBig) []byte {
	words := u.Words()
	out := make([]byte, 0, len(words)*8)
	for _, w := range words {
		for i := 0; i < 8; i++ {
			out = append(out, byte(w>>(8*i)))
		}
	}
	n := len(out)
	for n > 0 && out[n-1] == 0 {
		n--
	}
	return out[:n]
}

// FromLEBytes parses a little-endian byte slice back into a UBig. The
// empty slice parses as zero.
func FromLEBytes(b []byte) ubig.UBig {
	if len(b) == 0 {
		return ubig.Zero()
	}
	words := make([]word.Word, (len(b)+7)/8)
	for i, v := range b {
		words[i/8] |= word.Word(v) << uint(8*(i%8))
	}
	return ubig.FromWords(words)
}

// ToBEBytes renders u as big-endian bytes (the reverse of ToLEBytes).
func ToBEBytes(u ubig.UBig) []byte {
	be := ToLEBytes(u)
	slices.Reverse(be)
	return be
}

// FromBEBytes parses a big-endian byte slice back into a UBig.
func FromBEBytes(b []byte) ubig.UBig {
	le := append([]byte(nil), b...)
	slices.Reverse(le)
	return FromLEBytes(le)
}
