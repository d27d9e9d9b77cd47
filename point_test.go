package secp256k1

import (
	"bytes"
	"errors"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
)

// Published coordinates of 2G, from the standard secp256k1 multiples table.
const (
	twoGxHex = "C6047F9441ED7D6D3045406E95C07CD85C778E4B8CEF3CA7ABAC09B95C709EE5"
	twoGyHex = "1AE168FEA63DC339A3C58419466CEAEEF7F632653266D0E1236431A950CFE52A"
)

// btcecMultiple returns k·G computed by btcec, as an uncompressed encoding.
func btcecMultiple(t *testing.T, k Scalar) []byte {
	t.Helper()
	kb := k.Bytes()
	var ks btcec.ModNScalar
	ks.SetBytes(&kb)
	var base, result btcec.JacobianPoint
	btcec.Generator().AsJacobian(&base)
	btcec.ScalarMultNonConst(&ks, &base, &result)
	result.ToAffine()
	return btcec.NewPublicKey(&result.X, &result.Y).SerializeUncompressed()
}

func randPoint(t *testing.T, rng interface{ Intn(int) int }) Point {
	t.Helper()
	return ScalarBaseMult(randScalar(t, rng))
}

func TestGeneratorMatchesPublishedVector(t *testing.T) {
	g := Generator()
	if got := g.X().String(); got != "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" {
		t.Fatalf("Gx = %s", got)
	}
	if got := g.Y().String(); got != "483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8" {
		t.Fatalf("Gy = %s", got)
	}
	if !g.IsOnCurve() {
		t.Fatal("G must satisfy the curve equation")
	}
}

func TestDoubleGMatchesPublishedVector(t *testing.T) {
	twoG := Generator().Double()
	wantX := mustFieldElement(twoGxHex)
	wantY := mustFieldElement(twoGyHex)
	if !twoG.X().Equal(wantX) || !twoG.Y().Equal(wantY) {
		t.Fatalf("2G = (%v, %v), want (%v, %v)", twoG.X(), twoG.Y(), wantX, wantY)
	}
}

func TestDoubleEqualsAddSelf(t *testing.T) {
	g := Generator()
	if !g.Double().Equal(g.Add(g)) {
		t.Fatal("double(G) != add(G, G)")
	}
	rng := newTestRand()
	for i := 0; i < 10; i++ {
		p := randPoint(t, rng)
		if !p.Double().Equal(p.Add(p)) {
			t.Fatalf("double != add-self for %v", p)
		}
	}
}

func TestTripleGMatchesBtcec(t *testing.T) {
	// 3G two ways internally, then against the independent implementation.
	g := Generator()
	threeG := g.Double().Add(g)
	if !threeG.Equal(ScalarMult(scalarFromUint64(3), g)) {
		t.Fatal("3·G != double(G)+G")
	}
	enc, err := threeG.SerializeUncompressed()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if want := btcecMultiple(t, scalarFromUint64(3)); !bytes.Equal(enc, want) {
		t.Fatalf("3G disagrees with btcec: %x != %x", enc, want)
	}
}

func TestGroupAxioms(t *testing.T) {
	rng := newTestRand()
	inf := PointAtInfinity()
	for i := 0; i < 10; i++ {
		p := randPoint(t, rng)
		q := randPoint(t, rng)
		r := randPoint(t, rng)

		if !p.Add(q).Equal(q.Add(p)) {
			t.Fatal("addition must commute")
		}
		if !p.Add(q).Add(r).Equal(p.Add(q.Add(r))) {
			t.Fatal("addition must associate")
		}
		if !p.Add(inf).Equal(p) || !inf.Add(p).Equal(p) {
			t.Fatal("infinity must be neutral")
		}
		if !p.Add(p.Negate()).IsInfinity() {
			t.Fatal("P + (-P) must be infinity")
		}
		if !p.Add(q).Sub(q).Equal(p) {
			t.Fatal("subtraction must undo addition")
		}
		if !p.Sub(p).IsInfinity() {
			t.Fatal("P - P must be infinity")
		}
	}
}

func TestNegate(t *testing.T) {
	if !PointAtInfinity().Negate().IsInfinity() {
		t.Fatal("-infinity must be infinity")
	}
	g := Generator()
	neg := g.Negate()
	if !neg.IsOnCurve() {
		t.Fatal("-G must remain on the curve")
	}
	if !neg.X().Equal(g.X()) || neg.Y().Equal(g.Y()) {
		t.Fatal("-G must share x and differ in y")
	}
	if !neg.Negate().Equal(g) {
		t.Fatal("double negation must restore the point")
	}
}

func TestOrderAnnihilatesGenerator(t *testing.T) {
	// n·G via (n-1)·G + G, since scalars live mod n.
	nm1G := ScalarMult(orderMinusOne, Generator())
	if !nm1G.Add(Generator()).IsInfinity() {
		t.Fatal("n·G must be the point at infinity")
	}
	// The spot just before: (n-1)·G = -G.
	if !nm1G.Equal(Generator().Negate()) {
		t.Fatal("(n-1)·G must equal -G")
	}
}

func TestTwoTorsionDoubling(t *testing.T) {
	// No secp256k1 point has y = 0, but the rule is part of the group-law
	// contract: a hand-built 2-torsion point must double to infinity.
	p := Point{x: fieldFromUint64(5), y: FieldElement{}}
	if !p.Double().IsInfinity() {
		t.Fatal("doubling a y=0 point must give infinity")
	}
	if !PointAtInfinity().Double().IsInfinity() {
		t.Fatal("doubling infinity must give infinity")
	}
}

func TestNewPointRejectsOffCurve(t *testing.T) {
	_, err := NewPoint(fieldFromUint64(1), fieldFromUint64(1))
	if !errors.Is(err, ErrPointNotOnCurve) {
		t.Fatalf("(1,1) must be rejected, got %v", err)
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	rng := newTestRand()
	for i := 0; i < 20; i++ {
		p := randPoint(t, rng)

		comp, err := p.SerializeCompressed()
		if err != nil {
			t.Fatalf("compressed: %v", err)
		}
		back, err := ParsePoint(comp)
		if err != nil {
			t.Fatalf("parse compressed: %v", err)
		}
		if !back.Equal(p) {
			t.Fatal("compressed round trip lost the point")
		}

		unc, err := p.SerializeUncompressed()
		if err != nil {
			t.Fatalf("uncompressed: %v", err)
		}
		back, err = ParsePoint(unc)
		if err != nil {
			t.Fatalf("parse uncompressed: %v", err)
		}
		if !back.Equal(p) {
			t.Fatal("uncompressed round trip lost the point")
		}
	}
}

func TestSerializeMatchesBtcec(t *testing.T) {
	rng := newTestRand()
	for i := 0; i < 10; i++ {
		k := randScalar(t, rng)
		if k.IsZero() {
			continue
		}
		p := ScalarBaseMult(k)
		enc, err := p.SerializeUncompressed()
		if err != nil {
			t.Fatalf("serialize: %v", err)
		}
		if want := btcecMultiple(t, k); !bytes.Equal(enc, want) {
			t.Fatalf("k·G disagrees with btcec for k=%v", k)
		}

		// Compressed form must parse under btcec as the same point.
		comp, err := p.SerializeCompressed()
		if err != nil {
			t.Fatalf("compress: %v", err)
		}
		bp, err := btcec.ParsePubKey(comp)
		if err != nil {
			t.Fatalf("btcec rejected our compressed encoding: %v", err)
		}
		if !bytes.Equal(bp.SerializeUncompressed(), enc) {
			t.Fatal("btcec decompressed to a different point")
		}
	}
}

func TestInfinityHasNoEncoding(t *testing.T) {
	inf := PointAtInfinity()
	if _, err := inf.SerializeCompressed(); !errors.Is(err, ErrInfinityEncoding) {
		t.Fatalf("expected ErrInfinityEncoding, got %v", err)
	}
	if _, err := inf.SerializeUncompressed(); !errors.Is(err, ErrInfinityEncoding) {
		t.Fatalf("expected ErrInfinityEncoding, got %v", err)
	}
}

func TestParsePointRejectsGarbage(t *testing.T) {
	g := Generator()
	comp, _ := g.SerializeCompressed()
	unc, _ := g.SerializeUncompressed()

	badPrefix := append([]byte{0x05}, comp[1:]...)
	cases := map[string][]byte{
		"empty":              {},
		"single zero byte":   {0x00},
		"bad prefix":         badPrefix,
		"truncated":          comp[:32],
		"overlong":           append(unc, 0x00),
		"uncompressed tag on compressed length": append([]byte{0x04}, comp[1:]...),
	}
	for name, b := range cases {
		if _, err := ParsePoint(b); err == nil {
			t.Fatalf("%s: parse must fail", name)
		}
	}

	// x = p is non-canonical even though p mod p = 0.
	pb := uint256FromBig(t, pBig).Bytes()
	bad := append([]byte{0x02}, pb[:]...)
	if _, err := ParsePoint(bad); err == nil {
		t.Fatal("non-canonical x must be rejected")
	}

	// Uncompressed (1,1) is well-formed bytes but not on the curve.
	one := fieldFromUint64(1).Bytes()
	offCurve := append([]byte{0x04}, one[:]...)
	offCurve = append(offCurve, one[:]...)
	if _, err := ParsePoint(offCurve); !errors.Is(err, ErrPointNotOnCurve) {
		t.Fatalf("(1,1) must fail with ErrPointNotOnCurve, got %v", err)
	}
}
