package arith

import "github.com/oisee/bignum/pkg/word"

// ShlInPlace shifts dst left by k bits (0 <= k < word.Bits) in place,
// returning the bits shifted out of the top word (i.e. what would have
// become the next-higher word).
func ShlInPlace(dst []word.Word, k uint) word.Word {
	if k == 0 || len(dst) == 0 {
		return 0
	}
	if k >= word.Bits {
		panic("arith: ShlInPlace requires 0 <= k < word.Bits")
	}
	var carry word.Word
	for i := range dst {
		next := dst[i] >> (word.Bits - k)
		dst[i] = dst[i]<<k | carry
		carry = next
	}
	return carry
}

// ShrInPlace shifts dst right by k bits (0 <= k < word.Bits) in place,
// returning the low bits dropped off the bottom word.
func ShrInPlace(dst []word.Word, k uint) word.Word {
	if k == 0 || len(dst) == 0 {
		return 0
	}
	if k >= word.Bits {
		panic("arith: ShrInPlace requires 0 <= k < word.Bits")
	}
	var carry word.Word
	for i := len(dst) - 1; i >= 0; i-- {
		next := dst[i] << (word.Bits - k)
		dst[i] = dst[i]>>k | carry
		carry = next
	}
	return carry >> (word.Bits - k)
}

// ShrInPlaceWithCarry shifts dst right by k bits, injecting the low k
// bits of carryIn into the vacated top bits instead of zero, returning
// the low bits dropped off the bottom.
func ShrInPlaceWithCarry(dst []word.Word, k uint, carryIn word.Word) word.Word {
	if len(dst) == 0 {
		return 0
	}
	if k == 0 {
		return 0
	}
	if k >= word.Bits {
		panic("arith: ShrInPlaceWithCarry requires 0 <= k < word.Bits")
	}
	var carry word.Word = carryIn << (word.Bits - k)
	for i := len(dst) - 1; i >= 0; i-- {
		next := dst[i] << (word.Bits - k)
		dst[i] = dst[i]>>k | carry
		carry = next
	}
	return carry >> (word.Bits - k)
}

// ShlWords shifts dst left by n whole words, assuming dst has n extra
// trailing zero words already reserved (len(dst) == len(src)+n). It
// writes the shifted value into dst given src as the unshifted source;
// dst and src may overlap only if dst is exactly src shifted (i.e. not
// aliased for a general memmove).
func ShlWords(dst, src []word.Word, n int) {
	for i := len(src) - 1; i >= 0; i-- {
		dst[i+n] = src[i]
	}
	for i := 0; i < n; i++ {
		dst[i] = 0
	}
}
