package arith

import (
	"math"

	"github.com/oisee/bignum/pkg/word"
)

// CbrtRem computes the integer cube root of x (arbitrary length) and its
// remainder: x == root^3 + rem, with rem <= 3*root*(root+1), per spec.md
// §8. This module implements the generic arbitrary-length path via a
// power-of-two-seeded integer Newton iteration on the whole value rather than
// the native-width (u128) table-seeded fast path; per spec.md §9(iii),
// "implementers may refuse [the native fast path] or forward to a slower
// generic path," and that is the choice made here.
func CbrtRem(x []word.Word, mem *Memory) (root, rem []word.Word) {
	x = trimLeadingZeros(x)
	if len(x) == 0 {
		return []word.Word{0}, []word.Word{0}
	}
	if len(x) == 1 {
		r := cbrtWord(x[0])
		return wordRootRemainder(x[0], r)
	}

	// Seed with 2^ceil(bitlen/3), which is never below the root, then do
	// integer Newton correction on the full value: r_{k+1} = r_k - (r_k^3 -
	// x)/(3*r_k^2), implemented as integer division since this package
	// has no rational type, iterating until the cube brackets x.
	bitLen := BitLenSlice(x)
	shift := (bitLen + 2) / 3
	guess := oneShl(shift)

	r := guess
	for iter := 0; iter < 64; iter++ {
		cube := make([]word.Word, 3*len(r)+3)
		cubeInto(cube, r, mem)
		cube = trimLeadingZeros(cube)
		if CmpInPlace(cube, x) == 0 {
			break
		}
		// r_next = (2*r + x/r^2) / 3
		rSq := make([]word.Word, 2*len(r)+2)
		Multiply(rSq, r, r, mem)
		rSq = trimLeadingZeros(rSq)
		q, _ := divBySlice(append([]word.Word(nil), x...), rSq, mem)
		twoR := append([]word.Word(nil), r...)
		twoR = append(twoR, 0)
		ShlInPlace(twoR, 1)
		_, sum := signedAdd(twoR, 1, q, 1)
		next, _ := divBySlice(sum, []word.Word{3}, mem)
		next = trimLeadingZeros(next)
		if len(next) == 0 {
			next = []word.Word{0}
		}
		if CmpInPlace(next, r) == 0 {
			break
		}
		r = next
	}

	// final correction: step down/up until root^3 <= x < (root+1)^3
	for {
		cube := make([]word.Word, 3*len(r)+3)
		cubeInto(cube, r, mem)
		if CmpInPlace(trimLeadingZeros(cube), x) <= 0 {
			break
		}
		SubOneInPlace(r)
	}
	for {
		next := append([]word.Word(nil), r...)
		AddOneInPlace(next)
		cube := make([]word.Word, 3*len(next)+3)
		cubeInto(cube, next, mem)
		if CmpInPlace(trimLeadingZeros(cube), x) > 0 {
			break
		}
		r = next
	}

	cube := make([]word.Word, 3*len(r)+3)
	cubeInto(cube, r, mem)
	remainder := append([]word.Word(nil), x...)
	if len(cube) > len(remainder) {
		remainder = append(remainder, make([]word.Word, len(cube)-len(remainder))...)
	}
	SubInPlace(remainder, trimLeadingZeros(cube))
	return trimLeadingZeros(r), trimLeadingZeros(remainder)
}

func cubeInto(dst, r []word.Word, mem *Memory) {
	sq := make([]word.Word, 2*len(r)+2)
	Multiply(sq, r, r, mem)
	Multiply(dst, trimLeadingZeros(sq), r, mem)
}

func oneShl(n int) []word.Word {
	words := n/word.Bits + 1
	out := make([]word.Word, words)
	out[n/word.Bits] = 1 << uint(n%word.Bits)
	return trimLeadingZeros(out)
}

// BitLenSlice returns the bit length of a little-endian word slice.
func BitLenSlice(x []word.Word) int {
	x = trimLeadingZeros(x)
	if len(x) == 0 {
		return 0
	}
	return (len(x)-1)*word.Bits + word.BitLen(x[len(x)-1])
}

func cbrtWord(x word.Word) word.Word {
	if x == 0 {
		return 0
	}
	est := uint64(math.Cbrt(float64(x)))
	for est > 0 && est*est*est > x {
		est--
	}
	// 2642245 is the largest value whose cube fits in a word.
	for est < 2642245 && (est+1)*(est+1)*(est+1) <= x {
		est++
	}
	return est
}

func wordRootRemainder(x, r word.Word) (root, rem []word.Word) {
	return []word.Word{r}, []word.Word{x - r*r*r}
}
