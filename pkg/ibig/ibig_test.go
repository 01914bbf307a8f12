package ibig

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/oisee/bignum/pkg/word"
)

func toBig(x IBig) *big.Int {
	words := x.Words()
	bw := make([]big.Word, len(words))
	for i, w := range words {
		bw[i] = big.Word(w)
	}
	n := new(big.Int).SetBits(bw)
	if x.Negative() {
		n.Neg(n)
	}
	return n
}

func fromBig(n *big.Int) IBig {
	neg := n.Sign() < 0
	abs := new(big.Int).Abs(n)
	bits := abs.Bits()
	words := make([]word.Word, len(bits))
	for i, w := range bits {
		words[i] = word.Word(w)
	}
	return FromWords(neg, words)
}

func TestNegRoundTrip(t *testing.T) {
	x := FromInt64(-42)
	if x.Neg().Neg().Cmp(x) != 0 {
		t.Fatalf("-(-x) != x")
	}
}

func TestAddSubNeutralAndInverse(t *testing.T) {
	x := FromInt64(123)
	if x.Add(x.Neg()).Cmp(Zero()) != 0 {
		t.Fatalf("x + (-x) != 0")
	}
	if x.Sub(x).Cmp(Zero()) != 0 {
		t.Fatalf("x - x != 0")
	}
	if x.Add(Zero()).Cmp(x) != 0 {
		t.Fatalf("x + 0 != x")
	}
}

func TestAddSubCommutativeAssociativeRandomized(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		a := randomSigned(rnd)
		b := randomSigned(rnd)
		c := randomSigned(rnd)

		if a.Add(b).Cmp(b.Add(a)) != 0 {
			t.Fatalf("addition not commutative")
		}
		lhs := a.Add(b).Add(c)
		rhs := a.Add(b.Add(c))
		if lhs.Cmp(rhs) != 0 {
			t.Fatalf("addition not associative")
		}

		wantSum := new(big.Int).Add(toBig(a), toBig(b))
		if toBig(a.Add(b)).Cmp(wantSum) != 0 {
			t.Fatalf("Add mismatch vs big.Int: got %s, want %s", toBig(a.Add(b)), wantSum)
		}
		wantDiff := new(big.Int).Sub(toBig(a), toBig(b))
		if toBig(a.Sub(b)).Cmp(wantDiff) != 0 {
			t.Fatalf("Sub mismatch vs big.Int: got %s, want %s", toBig(a.Sub(b)), wantDiff)
		}
	}
}

func randomSigned(rnd *rand.Rand) IBig {
	mag := new(big.Int).Rand(rnd, new(big.Int).Lsh(big.NewInt(1), 200))
	if rnd.Intn(2) == 0 {
		mag.Neg(mag)
	}
	return fromBig(mag)
}

func TestMulSignRules(t *testing.T) {
	a := FromInt64(-6)
	b := FromInt64(7)
	if a.Mul(b).Cmp(FromInt64(-42)) != 0 {
		t.Fatalf("(-6)*7 != -42")
	}
	if !a.Mul(a.Neg()).Negative() {
		t.Fatalf("(-6)*6 should be negative, got %v", a.Mul(a.Neg()))
	}
}

func TestDivRemMatchesTruncatingSemantics(t *testing.T) {
	a := FromInt64(-7)
	b := FromInt64(2)
	q, r := a.DivRem(b)
	// -7 / 2 truncates to -3, remainder -1 (sign follows dividend).
	if q.Cmp(FromInt64(-3)) != 0 || r.Cmp(FromInt64(-1)) != 0 {
		t.Fatalf("DivRem(-7,2) = (%v,%v), want (-3,-1)", toBig(q), toBig(r))
	}
}

func TestBitwiseAgainstBigInt(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	for i := 0; i < 30; i++ {
		a := randomSigned(rnd)
		b := randomSigned(rnd)

		wantAnd := new(big.Int).And(toBig(a), toBig(b))
		if toBig(a.And(b)).Cmp(wantAnd) != 0 {
			t.Fatalf("AND mismatch: got %s want %s", toBig(a.And(b)), wantAnd)
		}
		wantOr := new(big.Int).Or(toBig(a), toBig(b))
		if toBig(a.Or(b)).Cmp(wantOr) != 0 {
			t.Fatalf("OR mismatch: got %s want %s", toBig(a.Or(b)), wantOr)
		}
		wantXor := new(big.Int).Xor(toBig(a), toBig(b))
		if toBig(a.Xor(b)).Cmp(wantXor) != 0 {
			t.Fatalf("XOR mismatch: got %s want %s", toBig(a.Xor(b)), wantXor)
		}
	}
}
