package arith

import "github.com/oisee/bignum/pkg/word"

// AddSameLenInPlace computes dst += rhs for two equal-length slices,
// returning the final carry out of the top word.
func AddSameLenInPlace(dst, rhs []word.Word) word.Word {
	if len(dst) != len(rhs) {
		panic("arith: AddSameLenInPlace requires equal-length slices")
	}
	var carry word.Word
	for i := range dst {
		dst[i], carry = word.AddWithCarry(dst[i], rhs[i], carry)
	}
	return carry
}

// AddInPlace computes dst += rhs where rhs may be shorter than dst,
// returning the final carry out of the top word of dst.
func AddInPlace(dst, rhs []word.Word) word.Word {
	if len(rhs) > len(dst) {
		panic("arith: AddInPlace requires len(rhs) <= len(dst)")
	}
	var carry word.Word
	for i := range rhs {
		dst[i], carry = word.AddWithCarry(dst[i], rhs[i], carry)
	}
	for i := len(rhs); i < len(dst) && carry != 0; i++ {
		dst[i], carry = word.AddWithCarry(dst[i], 0, carry)
	}
	return carry
}

// AddDWordInPlace adds a double word to dst (len(dst) >= 2), rippling the
// carry through the remaining words.
func AddDWordInPlace(dst []word.Word, dw word.DoubleWord) word.Word {
	if len(dst) < 2 {
		panic("arith: AddDWordInPlace requires len(dst) >= 2")
	}
	var carry word.Word
	dst[0], carry = word.AddWithCarry(dst[0], dw.Lo, 0)
	dst[1], carry = word.AddWithCarry(dst[1], dw.Hi, carry)
	for i := 2; i < len(dst) && carry != 0; i++ {
		dst[i], carry = word.AddWithCarry(dst[i], 0, carry)
	}
	return carry
}

// AddOneInPlace adds one to dst, rippling the carry.
func AddOneInPlace(dst []word.Word) word.Word {
	var carry word.Word = 1
	for i := range dst {
		if carry == 0 {
			break
		}
		dst[i], carry = word.AddWithCarry(dst[i], 0, carry)
	}
	return carry
}

// SubOneInPlace subtracts one from dst, rippling the borrow.
func SubOneInPlace(dst []word.Word) word.Word {
	var borrow word.Word = 1
	for i := range dst {
		if borrow == 0 {
			break
		}
		dst[i], borrow = word.SubWithBorrow(dst[i], 0, borrow)
	}
	return borrow
}

// SubSameLenInPlace computes dst -= rhs for two equal-length slices,
// returning the final borrow out of the top word.
func SubSameLenInPlace(dst, rhs []word.Word) word.Word {
	if len(dst) != len(rhs) {
		panic("arith: SubSameLenInPlace requires equal-length slices")
	}
	var borrow word.Word
	for i := range dst {
		dst[i], borrow = word.SubWithBorrow(dst[i], rhs[i], borrow)
	}
	return borrow
}

// SubInPlace computes dst -= rhs where rhs may be shorter than dst,
// returning the final borrow out of the top word of dst.
func SubInPlace(dst, rhs []word.Word) word.Word {
	if len(rhs) > len(dst) {
		panic("arith: SubInPlace requires len(rhs) <= len(dst)")
	}
	var borrow word.Word
	for i := range rhs {
		dst[i], borrow = word.SubWithBorrow(dst[i], rhs[i], borrow)
	}
	for i := len(rhs); i < len(dst) && borrow != 0; i++ {
		dst[i], borrow = word.SubWithBorrow(dst[i], 0, borrow)
	}
	return borrow
}

// SubSameLenInPlaceSwap writes rhs-lhs into rhs (instead of lhs-rhs into
// lhs), returning the borrow. Used when the caller wants to negate the
// difference without a second pass.
func SubSameLenInPlaceSwap(lhs, rhs []word.Word) word.Word {
	if len(lhs) != len(rhs) {
		panic("arith: SubSameLenInPlaceSwap requires equal-length slices")
	}
	var borrow word.Word
	for i := range rhs {
		rhs[i], borrow = word.SubWithBorrow(rhs[i], lhs[i], borrow)
	}
	return borrow
}

// SubInPlaceWithSign computes lhs - rhs, writing the absolute difference
// into lhs and returning its sign: -1 if lhs < rhs, 0 if equal, +1 if
// lhs > rhs. lhs and rhs must have equal length (pad the shorter operand
// with zero words before calling).
func SubInPlaceWithSign(lhs, rhs []word.Word) int {
	if len(lhs) != len(rhs) {
		panic("arith: SubInPlaceWithSign requires equal-length slices")
	}
	switch CmpSameLen(lhs, rhs) {
	case 0:
		for i := range lhs {
			lhs[i] = 0
		}
		return 0
	case 1:
		SubSameLenInPlace(lhs, rhs)
		return 1
	default:
		SubSameLenInPlaceSwap(rhs, lhs)
		copy(lhs, rhs)
		return -1
	}
}

// AddMulWordInPlace computes dst += x*y + carryIn, for a multi-word x and
// a single-word multiplier y, returning the carry out of the top word of
// dst. This is the schoolbook-multiply inner loop (§4.2 "Multiply").
//
// Each step accumulates dst[i] + x[i]*y + carry, a sum bounded by
// 2^128-1, so it always fits in the (lo, hi) pair below without losing
// bits across the two carry-propagating additions.
func AddMulWordInPlace(dst, x []word.Word, y word.Word, carryIn word.Word) word.Word {
	if len(dst) < len(x) {
		panic("arith: AddMulWordInPlace requires len(dst) >= len(x)")
	}
	carry := carryIn
	for i, xi := range x {
		p := word.MulWide(xi, y)
		lo, c1 := word.AddWithCarry(p.Lo, dst[i], 0)
		lo, c2 := word.AddWithCarry(lo, carry, 0)
		dst[i] = lo
		carry = p.Hi + c1 + c2
	}
	return carry
}
