package arith

import (
	"math/big"
	"testing"

	"github.com/oisee/bignum/pkg/word"
)

// toBig converts a little-endian word slice to a math/big.Int, used only
// as an independent oracle in these tests.
func toBig(x []word.Word) *big.Int {
	words := make([]big.Word, len(x))
	for i, w := range x {
		words[i] = big.Word(w)
	}
	return new(big.Int).SetBits(words)
}

func fromBig(n *big.Int, length int) []word.Word {
	bits := n.Bits()
	out := make([]word.Word, length)
	for i, w := range bits {
		out[i] = word.Word(w)
	}
	return out
}

func TestAddSameLenInPlace(t *testing.T) {
	a := []word.Word{^word.Word(0), ^word.Word(0)}
	b := []word.Word{1, 0}
	carry := AddSameLenInPlace(a, b)
	if carry != 1 || a[0] != 0 || a[1] != 0 {
		t.Fatalf("got a=%v carry=%d, want a=[0 0] carry=1", a, carry)
	}
}

func TestSubSameLenInPlace(t *testing.T) {
	a := []word.Word{0, 0}
	b := []word.Word{1, 0}
	borrow := SubSameLenInPlace(a, b)
	if borrow != 1 || a[0] != ^word.Word(0) || a[1] != ^word.Word(0) {
		t.Fatalf("got a=%v borrow=%d, want a=[max max] borrow=1", a, borrow)
	}
}

func TestCmpSameLen(t *testing.T) {
	small := []word.Word{1, 0}
	big := []word.Word{0, 1}
	if CmpSameLen(small, big) >= 0 {
		t.Fatalf("expected small < big")
	}
	if CmpSameLen(big, small) <= 0 {
		t.Fatalf("expected big > small")
	}
	if CmpSameLen(small, small) != 0 {
		t.Fatalf("expected equal comparison")
	}
}

func TestShlShrInPlace(t *testing.T) {
	x := []word.Word{1, 0}
	carry := ShlInPlace(x, 4)
	if carry != 0 || x[0] != 16 {
		t.Fatalf("ShlInPlace by 4: got x=%v carry=%d", x, carry)
	}
	ShrInPlace(x, 4)
	if x[0] != 1 || x[1] != 0 {
		t.Fatalf("round trip Shl/Shr failed: got %v", x)
	}
}

func TestMultiplySchoolbook(t *testing.T) {
	cases := [][2]uint64{
		{0, 0},
		{1, 1},
		{123456789, 987654321},
		{^uint64(0), ^uint64(0)},
	}
	mem := NewMemory(64)
	for _, c := range cases {
		a := []word.Word{word.Word(c[0])}
		b := []word.Word{word.Word(c[1])}
		dst := make([]word.Word, 3)
		Multiply(dst, a, b, mem)
		got := toBig(trimLeadingZeros(dst))
		want := new(big.Int).Mul(big.NewInt(0).SetUint64(c[0]), big.NewInt(0).SetUint64(c[1]))
		if got.Cmp(want) != 0 {
			t.Errorf("Multiply(%d,%d) = %s, want %s", c[0], c[1], got, want)
		}
		mem.Reset(mem.Mark())
	}
}

func TestMultiplyKaratsubaAndFFT(t *testing.T) {
	sizes := []int{KaratsubaThreshold + 4, Toom3Threshold + 4, FFTThreshold + 4}
	for _, n := range sizes {
		a := make([]word.Word, n)
		b := make([]word.Word, n)
		for i := range a {
			a[i] = word.Word(i*2654435761 + 1)
			b[i] = word.Word(i*40503 + 7)
		}
		mem := NewMemory(MemoryRequirementMul(n, n) + 16)
		dst := make([]word.Word, 2*n+1)
		Multiply(dst, a, b, mem)
		got := toBig(trimLeadingZeros(dst))
		want := new(big.Int).Mul(toBig(a), toBig(b))
		if got.Cmp(want) != 0 {
			t.Errorf("Multiply at size %d mismatched big.Int oracle", n)
		}
	}
}

func TestDivRemInPlaceAgainstBigInt(t *testing.T) {
	a := new(big.Int)
	a.SetString("1234567890123456789012345678901234567890123456789012345678901234567890123456789012345678901234567890", 10)
	b := new(big.Int)
	b.SetString("987654321098765432109876543210987654321", 10)

	wantQ, wantR := new(big.Int).QuoRem(a, b, new(big.Int))

	num := fromBig(a, len(a.Bits())+1)
	den := fromBig(b, len(b.Bits()))
	shift := word.LeadingZeros(den[len(trimLeadingZeros(den))-1])
	normDen := append([]word.Word(nil), trimLeadingZeros(den)...)
	normNum := append([]word.Word(nil), num...)
	normNum = append(normNum, 0)
	if shift > 0 {
		ShlInPlace(normDen, uint(shift))
		carry := ShlInPlace(normNum, uint(shift))
		normNum[len(normNum)-1] = carry
	}

	fd := NewFastDivideNormalized(normDen[len(normDen)-1])
	mem := NewMemory(64)
	q, r := DivRemInPlace(normNum, normDen, fd, mem)
	if shift > 0 {
		ShrInPlace(r, uint(shift))
	}

	gotQ := toBig(trimLeadingZeros(q))
	gotR := toBig(trimLeadingZeros(r))
	if gotQ.Cmp(wantQ) != 0 {
		t.Errorf("quotient = %s, want %s", gotQ, wantQ)
	}
	if gotR.Cmp(wantR) != 0 {
		t.Errorf("remainder = %s, want %s", gotR, wantR)
	}
}

func TestGcdInPlaceBezout(t *testing.T) {
	a := []word.Word{1071}
	b := []word.Word{462}
	mem := NewMemory(MemoryRequirementGcd(1) + 8)
	g := GcdInPlace(append([]word.Word(nil), a...), append([]word.Word(nil), b...), mem)
	if len(g) != 1 || g[0] != 21 {
		t.Fatalf("gcd(1071,462) = %v, want [21]", g)
	}
}

func TestXgcdInPlaceBezoutIdentity(t *testing.T) {
	a := big.NewInt(240)
	b := big.NewInt(46)
	mem := NewMemory(MemoryRequirementGcd(1) + 16)
	g, s, tt, sSign, tSign := XgcdInPlace([]word.Word{240}, []word.Word{46}, true, mem)

	gotG := toBig(g)
	wantG := new(big.Int).GCD(nil, nil, a, b)
	if gotG.Cmp(wantG) != 0 {
		t.Fatalf("gcd = %s, want %s", gotG, wantG)
	}

	// Verify the Bezout identity holds for SOME pair of cofactors with the
	// reported signs, not specific textbook cofactor values (per spec.md
	// §8, the identity is what's guaranteed, not a particular (s,t)).
	s64 := new(big.Int).Mul(toBig(s), a)
	if sSign < 0 {
		s64.Neg(s64)
	}
	t64 := new(big.Int).Mul(toBig(tt), b)
	if tSign < 0 {
		t64.Neg(t64)
	}
	sum := new(big.Int).Add(s64, t64)
	if sum.Cmp(gotG) != 0 && sum.Cmp(new(big.Int).Neg(gotG)) != 0 {
		t.Fatalf("s*a + t*b = %s, want +/-%s", sum, gotG)
	}
}

func TestSqrtRemKaratsubaSqrtScenario(t *testing.T) {
	// n = 2^256 - 1, expect root = 340282366920938463463374607431768211455
	// per spec.md §8's worked example.
	n := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	a := fromBig(n, 4)

	mem := NewMemory(MemoryRequirementSqrt(4) + 16)
	s, r := SqrtRem(a, mem)

	wantRoot := new(big.Int)
	wantRoot.SetString("340282366920938463463374607431768211455", 10)

	gotRoot := toBig(s)
	if gotRoot.Cmp(wantRoot) != 0 {
		t.Fatalf("sqrt root = %s, want %s", gotRoot, wantRoot)
	}

	// n == s*s + r, r <= 2*s
	check := new(big.Int).Mul(gotRoot, gotRoot)
	check.Add(check, toBig(r))
	if check.Cmp(n) != 0 {
		t.Fatalf("s*s+r = %s, want %s", check, n)
	}
	twoS := new(big.Int).Lsh(gotRoot, 1)
	if toBig(r).Cmp(twoS) > 0 {
		t.Fatalf("remainder %s exceeds 2*root %s", toBig(r), twoS)
	}
}

func TestSqrtRemSmallValues(t *testing.T) {
	for _, v := range []uint64{0, 1, 2, 3, 4, 99, 100, 101, 1 << 40} {
		n := new(big.Int).SetUint64(v)
		a := fromBig(n, 1)
		mem := NewMemory(MemoryRequirementSqrt(2) + 16)
		s, r := SqrtRem(a, mem)
		gotRoot := toBig(s)
		check := new(big.Int).Mul(gotRoot, gotRoot)
		check.Add(check, toBig(r))
		if check.Cmp(n) != 0 {
			t.Errorf("sqrt(%d): s*s+r = %s, want %s", v, check, n)
		}
		twoS := new(big.Int).Lsh(gotRoot, 1)
		if toBig(r).Cmp(twoS) > 0 {
			t.Errorf("sqrt(%d): remainder %s exceeds 2*root %s", v, toBig(r), twoS)
		}
	}
}

func TestCbrtRemInvariant(t *testing.T) {
	for _, v := range []uint64{0, 1, 7, 8, 9, 26, 27, 1000000, 1 << 62} {
		n := new(big.Int).SetUint64(v)
		a := fromBig(n, 1)
		mem := NewMemory(256)
		root, rem := CbrtRem(a, mem)
		gotRoot := toBig(root)
		gotRem := toBig(rem)

		cube := new(big.Int).Exp(gotRoot, big.NewInt(3), nil)
		check := new(big.Int).Add(cube, gotRem)
		if check.Cmp(n) != 0 {
			t.Errorf("cbrt(%d): root^3+rem = %s, want %s", v, check, n)
		}
		limit := new(big.Int).Mul(big.NewInt(3), gotRoot)
		limit.Mul(limit, new(big.Int).Add(gotRoot, big.NewInt(1)))
		if gotRem.Cmp(limit) > 0 {
			t.Errorf("cbrt(%d): remainder %s exceeds 3*root*(root+1) %s", v, gotRem, limit)
		}
	}
}

func TestCbrtRemLarge(t *testing.T) {
	n := new(big.Int)
	n.SetString("123456789012345678901234567890123456789", 10)
	a := fromBig(n, 3)
	mem := NewMemory(512)
	root, rem := CbrtRem(a, mem)
	gotRoot := toBig(root)
	gotRem := toBig(rem)

	cube := new(big.Int).Exp(gotRoot, big.NewInt(3), nil)
	check := new(big.Int).Add(cube, gotRem)
	if check.Cmp(n) != 0 {
		t.Fatalf("cbrt large: root^3+rem = %s, want %s", check, n)
	}
}

func TestLogInvariant(t *testing.T) {
	cases := []struct{ x, b uint64 }{
		{1000, 3},
		{1, 2},
		{1023, 2},
		{1024, 2},
		{1025, 2},
		{81, 3},
	}
	mem := NewMemory(128)
	for _, c := range cases {
		k, pow := Log([]word.Word{word.Word(c.x)}, []word.Word{word.Word(c.b)}, mem)
		x := new(big.Int).SetUint64(c.x)
		b := new(big.Int).SetUint64(c.b)
		wantPow := new(big.Int).Exp(b, big.NewInt(int64(k)), nil)
		gotPow := toBig(pow)
		if gotPow.Cmp(wantPow) != 0 {
			t.Errorf("Log(%d,%d): b^k = %s, want %s", c.x, c.b, gotPow, wantPow)
		}
		if gotPow.Cmp(x) > 0 {
			t.Errorf("Log(%d,%d): b^k=%s exceeds x", c.x, c.b, gotPow)
		}
		next := new(big.Int).Mul(gotPow, b)
		if next.Cmp(x) <= 0 {
			t.Errorf("Log(%d,%d): b^(k+1)=%s should exceed x", c.x, c.b, next)
		}
	}
}

func TestLogPowerOfTwoBase(t *testing.T) {
	mem := NewMemory(64)
	k, pow := Log([]word.Word{1000}, []word.Word{8}, mem)
	// floor(log_8(1000)) = 3, since 8^3=512 <= 1000 < 8^4=4096
	if k != 3 || pow[0] != 512 {
		t.Fatalf("Log(1000,8) = (%d,%v), want (3,[512])", k, pow)
	}
}
