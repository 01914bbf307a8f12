package ubig

import (
	"github.com/oisee/bignum/pkg/word"
	"github.com/pkg/errors"
)

// ErrOutOfBounds is wrapped (via github.com/pkg/errors) with call-site
// context when a primitive conversion doesn't fit, per spec.md §6/§7.
var ErrOutOfBounds = errors.New("value out of bounds for target type")

// FromUint64 builds a UBig from a uint64 (always succeeds).
func FromUint64(v uint64) UBig { return FromWord(word.Word(v)) }

// ToUint64 converts u to a uint64, reporting ErrOutOfBounds if u doesn't
// fit, that is if it has more than one significant word (a single word
// always fits, since Word is uint64).
func (u UBig) ToUint64() (uint64, error) {
	words := u.Words()
	if len(words) > 1 {
		return 0, errors.Wrapf(ErrOutOfBounds, "UBig has %d words, uint64 holds 1", len(words))
	}
	if len(words) == 0 {
		return 0, nil
	}
	return uint64(words[0]), nil
}

// ToUint32 converts u to a uint32, reporting ErrOutOfBounds if it
// overflows.
func (u UBig) ToUint32() (uint32, error) {
	v, err := u.ToUint64()
	if err != nil {
		return 0, err
	}
	if v > 0xFFFFFFFF {
		return 0, errors.Wrapf(ErrOutOfBounds, "value %d exceeds uint32 range", v)
	}
	return uint32(v), nil
}
