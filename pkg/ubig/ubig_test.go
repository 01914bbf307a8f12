package ubig

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/oisee/bignum/pkg/word"
)

func toBig(u UBig) *big.Int {
	words := u.Words()
	bw := make([]big.Word, len(words))
	for i, w := range words {
		bw[i] = big.Word(w)
	}
	return new(big.Int).SetBits(bw)
}

func fromBig(n *big.Int) UBig {
	bits := n.Bits()
	words := make([]word.Word, len(bits))
	for i, w := range bits {
		words[i] = word.Word(w)
	}
	return FromWords(words)
}

func TestAddNeutralAndPromotion(t *testing.T) {
	a := FromWord(1)
	if a.Add(Zero()).Cmp(a) != 0 {
		t.Fatalf("x + 0 != x")
	}
	// DoubleWord::MAX + 1 must promote to a 3-word Large.
	maxDW := FromDWord(word.DoubleWord{Lo: ^word.Word(0), Hi: ^word.Word(0)})
	sum := maxDW.Add(FromWord(1))
	if len(sum.Words()) != 3 {
		t.Fatalf("expected promotion to 3 words, got %d", len(sum.Words()))
	}
	if sum.Words()[0] != 0 || sum.Words()[1] != 0 || sum.Words()[2] != 1 {
		t.Fatalf("DoubleWord::MAX+1 = %v, want [0 0 1]", sum.Words())
	}
}

func TestSubPanicsOnNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic subtracting a larger UBig")
		}
	}()
	FromWord(1).Sub(FromWord(2))
}

func TestDivRemInvariant(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		a := new(big.Int).Rand(rnd, new(big.Int).Lsh(big.NewInt(1), 300))
		b := new(big.Int).Rand(rnd, new(big.Int).Lsh(big.NewInt(1), 150))
		if b.Sign() == 0 {
			continue
		}
		ua, ub := fromBig(a), fromBig(b)
		q, r := ua.DivRem(ub)
		check := new(big.Int).Mul(toBig(q), b)
		check.Add(check, toBig(r))
		if check.Cmp(a) != 0 {
			t.Fatalf("q*b+r = %s, want %s", check, a)
		}
		if toBig(r).Cmp(b) >= 0 {
			t.Fatalf("remainder %s not < divisor %s", toBig(r), b)
		}
	}
}

func TestMulAssociativeCommutative(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	for i := 0; i < 20; i++ {
		a := fromBig(new(big.Int).Rand(rnd, new(big.Int).Lsh(big.NewInt(1), 200)))
		b := fromBig(new(big.Int).Rand(rnd, new(big.Int).Lsh(big.NewInt(1), 200)))
		c := fromBig(new(big.Int).Rand(rnd, new(big.Int).Lsh(big.NewInt(1), 200)))

		if a.Mul(b).Cmp(b.Mul(a)) != 0 {
			t.Fatalf("multiplication not commutative")
		}
		lhs := a.Mul(b).Mul(c)
		rhs := a.Mul(b.Mul(c))
		if lhs.Cmp(rhs) != 0 {
			t.Fatalf("multiplication not associative")
		}
		if a.Mul(FromWord(1)).Cmp(a) != 0 {
			t.Fatalf("x * 1 != x")
		}
		if !a.Mul(Zero()).IsZero() {
			t.Fatalf("x * 0 != 0")
		}
	}
}

func TestGcdDividesBoth(t *testing.T) {
	a, b := FromWord(1071), FromWord(462)
	g := a.Gcd(b)
	if _, ra := a.DivRem(g); !ra.IsZero() {
		t.Fatalf("gcd does not divide a")
	}
	if _, rb := b.DivRem(g); !rb.IsZero() {
		t.Fatalf("gcd does not divide b")
	}
	if g.Cmp(FromWord(21)) != 0 {
		t.Fatalf("gcd(1071,462) = %v, want 21", g.Words())
	}
}

func TestXgcdBezoutIdentity(t *testing.T) {
	a, b := FromWord(240), FromWord(46)
	res := a.Xgcd(b)

	s := new(big.Int).Mul(toBig(res.S), toBig(a))
	if res.SSign < 0 {
		s.Neg(s)
	}
	tt := new(big.Int).Mul(toBig(res.T), toBig(b))
	if res.TSign < 0 {
		tt.Neg(tt)
	}
	sum := new(big.Int).Add(s, tt)
	g := toBig(res.G)
	if sum.Cmp(g) != 0 && sum.Cmp(new(big.Int).Neg(g)) != 0 {
		t.Fatalf("s*a + t*b = %s, want +/-%s", sum, g)
	}
}

func TestSqrtRemConcreteScenario(t *testing.T) {
	n := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	u := fromBig(n)
	r, e := u.SqrtRem()

	wantRoot := new(big.Int)
	wantRoot.SetString("340282366920938463463374607431768211455", 10)
	if toBig(r).Cmp(wantRoot) != 0 {
		t.Fatalf("sqrt root = %s, want %s", toBig(r), wantRoot)
	}
	check := new(big.Int).Mul(toBig(r), toBig(r))
	check.Add(check, toBig(e))
	if check.Cmp(n) != 0 {
		t.Fatalf("r*r+e = %s, want %s", check, n)
	}
}

func TestLogTruncationScenario(t *testing.T) {
	k, p := FromWord(1000).Log(FromWord(3))
	if k != 6 || p.Cmp(FromWord(729)) != 0 {
		t.Fatalf("Log(1000,3) = (%d,%v), want (6,729)", k, p.Words())
	}
}

func TestShlShrRoundTrip(t *testing.T) {
	u := FromWord(12345)
	if u.Shl(70).Shr(70).Cmp(u) != 0 {
		t.Fatalf("Shl/Shr round trip failed across a word boundary")
	}
}

func TestBitwiseOps(t *testing.T) {
	a := FromWord(0b1100)
	b := FromWord(0b1010)
	if a.And(b).Cmp(FromWord(0b1000)) != 0 {
		t.Fatalf("AND mismatch")
	}
	if a.Or(b).Cmp(FromWord(0b1110)) != 0 {
		t.Fatalf("OR mismatch")
	}
	if a.Xor(b).Cmp(FromWord(0b0110)) != 0 {
		t.Fatalf("XOR mismatch")
	}
}
