package constdiv

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/oisee/bignum/pkg/ubig"
	"github.com/oisee/bignum/pkg/word"
)

func fromBig(n *big.Int) ubig.UBig {
	bits := n.Bits()
	words := make([]word.Word, len(bits))
	for i, w := range bits {
		words[i] = word.Word(w)
	}
	return ubig.FromWords(words)
}

func toBig(u ubig.UBig) *big.Int {
	words := u.Words()
	bw := make([]big.Word, len(words))
	for i, w := range words {
		bw[i] = big.Word(w)
	}
	return new(big.Int).SetBits(bw)
}

func TestConstDivisorWordCase(t *testing.T) {
	d := New(ubig.FromWord(97))
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		n := new(big.Int).Rand(rnd, new(big.Int).Lsh(big.NewInt(1), 256))
		u := fromBig(n)
		q, r := d.DivRem(u)
		wantQ, wantR := new(big.Int).QuoRem(n, big.NewInt(97), new(big.Int))
		if toBig(q).Cmp(wantQ) != 0 || toBig(r).Cmp(wantR) != 0 {
			t.Fatalf("DivRem(%s,97) = (%s,%s), want (%s,%s)", n, toBig(q), toBig(r), wantQ, wantR)
		}
	}
}

func TestConstDivisorDWordCase(t *testing.T) {
	modulus := new(big.Int)
	modulus.SetString("18446744073709551616987654321", 10) // > 2^64, fits 2 words
	d := New(fromBig(modulus))
	rnd := rand.New(rand.NewSource(2))
	for i := 0; i < 20; i++ {
		n := new(big.Int).Rand(rnd, new(big.Int).Lsh(big.NewInt(1), 300))
		u := fromBig(n)
		q, r := d.DivRem(u)
		wantQ, wantR := new(big.Int).QuoRem(n, modulus, new(big.Int))
		if toBig(q).Cmp(wantQ) != 0 || toBig(r).Cmp(wantR) != 0 {
			t.Fatalf("DivRem mismatch: got (%s,%s), want (%s,%s)", toBig(q), toBig(r), wantQ, wantR)
		}
	}
}

func TestConstDivisorLargeCase(t *testing.T) {
	modulus := new(big.Int)
	modulus.SetString("123456789012345678901234567890123456789012345678901", 10) // 3+ words
	d := New(fromBig(modulus))
	n := new(big.Int)
	n.SetString("987654321098765432109876543210987654321098765432109876543210987654321", 10)
	q, r := d.DivRem(fromBig(n))
	wantQ, wantR := new(big.Int).QuoRem(n, modulus, new(big.Int))
	if toBig(q).Cmp(wantQ) != 0 || toBig(r).Cmp(wantR) != 0 {
		t.Fatalf("DivRem mismatch: got (%s,%s), want (%s,%s)", toBig(q), toBig(r), wantQ, wantR)
	}
}

func TestDivideByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic constructing a zero ConstDivisor")
		}
	}()
	New(ubig.Zero())
}
