package secp256k1

import (
	"bytes"
	"math/big"
	mrand "math/rand"
	"testing"
)

// Shared test helpers. The arithmetic layers are cross-checked against
// math/big as the independent arbitrary-precision reference; fixed seeds
// keep failures reproducible.

var (
	pBig, _ = new(big.Int).SetString(PHex, 16)
	nBig, _ = new(big.Int).SetString(NHex, 16)
)

func newTestRand() *mrand.Rand {
	return mrand.New(mrand.NewSource(0x5ec9))
}

func randBytes32(rng *mrand.Rand) [32]byte {
	var b [32]byte
	for i := range b {
		b[i] = byte(rng.Intn(256))
	}
	return b
}

func randUint256(rng *mrand.Rand) Uint256 {
	b := randBytes32(rng)
	u, _ := NewUint256(b[:])
	return u
}

func bigFromUint256(u Uint256) *big.Int {
	b := u.Bytes()
	return new(big.Int).SetBytes(b[:])
}

func uint256FromBig(t *testing.T, v *big.Int) Uint256 {
	t.Helper()
	b := v.Bytes()
	if len(b) > 32 {
		t.Fatalf("value %v exceeds 256 bits", v)
	}
	var buf [32]byte
	copy(buf[32-len(b):], b)
	u, err := NewUint256(buf[:])
	if err != nil {
		t.Fatalf("NewUint256: %v", err)
	}
	return u
}

func fieldFromBig(t *testing.T, v *big.Int) FieldElement {
	t.Helper()
	reduced := new(big.Int).Mod(v, pBig)
	return FieldElement{n: uint256FromBig(t, reduced)}
}

func scalarFromBig(t *testing.T, v *big.Int) Scalar {
	t.Helper()
	reduced := new(big.Int).Mod(v, nBig)
	return Scalar{n: uint256FromBig(t, reduced)}
}

func TestUint256BytesRoundTrip(t *testing.T) {
	rng := newTestRand()
	for i := 0; i < 100; i++ {
		in := randBytes32(rng)
		u, err := NewUint256(in[:])
		if err != nil {
			t.Fatalf("NewUint256: %v", err)
		}
		out := u.Bytes()
		if !bytes.Equal(in[:], out[:]) {
			t.Fatalf("round trip mismatch: %x != %x", in, out)
		}
	}
}

func TestUint256RejectsWrongLength(t *testing.T) {
	for _, n := range []int{0, 1, 31, 33, 64} {
		if _, err := NewUint256(make([]byte, n)); err == nil {
			t.Fatalf("accepted %d-byte input", n)
		}
	}
}

func TestUint256AddCarry(t *testing.T) {
	rng := newTestRand()
	mod := new(big.Int).Lsh(big.NewInt(1), 256)
	for i := 0; i < 500; i++ {
		a, b := randUint256(rng), randUint256(rng)
		sum, carry := a.Add(b)

		want := new(big.Int).Add(bigFromUint256(a), bigFromUint256(b))
		wantCarry := uint64(0)
		if want.Cmp(mod) >= 0 {
			wantCarry = 1
			want.Sub(want, mod)
		}
		if carry != wantCarry {
			t.Fatalf("carry = %d, want %d for %v + %v", carry, wantCarry, a, b)
		}
		if bigFromUint256(sum).Cmp(want) != 0 {
			t.Fatalf("%v + %v = %v, want %v", a, b, sum, want.Text(16))
		}
	}
}

func TestUint256AddAllOnes(t *testing.T) {
	max := newUint256(^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0))
	sum, carry := max.Add(max)
	if carry != 1 {
		t.Fatalf("carry = %d, want 1", carry)
	}
	// 2*(2^256-1) mod 2^256 = 2^256-2
	want := newUint256(^uint64(0)-1, ^uint64(0), ^uint64(0), ^uint64(0))
	if !sum.Equal(want) {
		t.Fatalf("sum = %v, want %v", sum, want)
	}
}

func TestUint256SubBorrow(t *testing.T) {
	rng := newTestRand()
	mod := new(big.Int).Lsh(big.NewInt(1), 256)
	for i := 0; i < 500; i++ {
		a, b := randUint256(rng), randUint256(rng)
		diff, borrow := a.Sub(b)

		want := new(big.Int).Sub(bigFromUint256(a), bigFromUint256(b))
		wantBorrow := uint64(0)
		if want.Sign() < 0 {
			wantBorrow = 1
			want.Add(want, mod)
		}
		if borrow != wantBorrow {
			t.Fatalf("borrow = %d, want %d", borrow, wantBorrow)
		}
		if bigFromUint256(diff).Cmp(want) != 0 {
			t.Fatalf("%v - %v = %v, want %v", a, b, diff, want.Text(16))
		}
	}
}

func TestUint256MulExact(t *testing.T) {
	rng := newTestRand()
	for i := 0; i < 500; i++ {
		a, b := randUint256(rng), randUint256(rng)
		prod := a.Mul(b)

		got := new(big.Int).Lsh(bigFromUint256(prod.hi()), 256)
		got.Add(got, bigFromUint256(prod.lo()))
		want := new(big.Int).Mul(bigFromUint256(a), bigFromUint256(b))
		if got.Cmp(want) != 0 {
			t.Fatalf("%v * %v = %v, want %v", a, b, got.Text(16), want.Text(16))
		}
	}
}

func TestUint256MulAllOnes(t *testing.T) {
	// The extreme that stresses every carry path: (2^256-1)^2.
	max := newUint256(^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0))
	prod := max.Mul(max)

	maxBig := bigFromUint256(max)
	want := new(big.Int).Mul(maxBig, maxBig)
	got := new(big.Int).Lsh(bigFromUint256(prod.hi()), 256)
	got.Add(got, bigFromUint256(prod.lo()))
	if got.Cmp(want) != 0 {
		t.Fatalf("(2^256-1)^2 = %v, want %v", got.Text(16), want.Text(16))
	}
}

func TestUint256Shifts(t *testing.T) {
	rng := newTestRand()
	mod := new(big.Int).Lsh(big.NewInt(1), 256)
	shifts := []uint{0, 1, 7, 63, 64, 65, 127, 128, 200, 255, 256, 300}
	for i := 0; i < 50; i++ {
		u := randUint256(rng)
		ub := bigFromUint256(u)
		for _, n := range shifts {
			wantL := new(big.Int).Lsh(ub, n)
			wantL.Mod(wantL, mod)
			if got := bigFromUint256(u.ShiftLeft(n)); got.Cmp(wantL) != 0 {
				t.Fatalf("%v << %d = %v, want %v", u, n, got.Text(16), wantL.Text(16))
			}
			wantR := new(big.Int).Rsh(ub, n)
			if got := bigFromUint256(u.ShiftRight(n)); got.Cmp(wantR) != 0 {
				t.Fatalf("%v >> %d = %v, want %v", u, n, got.Text(16), wantR.Text(16))
			}
		}
	}
}

func TestUint256Bit(t *testing.T) {
	rng := newTestRand()
	for i := 0; i < 50; i++ {
		u := randUint256(rng)
		ub := bigFromUint256(u)
		for _, bit := range []uint{0, 1, 63, 64, 127, 128, 191, 192, 255} {
			if got, want := u.Bit(bit), uint64(ub.Bit(int(bit))); got != want {
				t.Fatalf("bit %d of %v = %d, want %d", bit, u, got, want)
			}
		}
		if u.Bit(256) != 0 || u.Bit(1000) != 0 {
			t.Fatal("bits beyond width must read as zero")
		}
	}
}

func TestUint256Cmp(t *testing.T) {
	rng := newTestRand()
	for i := 0; i < 200; i++ {
		a, b := randUint256(rng), randUint256(rng)
		if got, want := a.Cmp(b), bigFromUint256(a).Cmp(bigFromUint256(b)); got != want {
			t.Fatalf("Cmp(%v, %v) = %d, want %d", a, b, got, want)
		}
		if a.Cmp(a) != 0 {
			t.Fatal("Cmp(a, a) != 0")
		}
	}
}

func TestUint256CtSelect(t *testing.T) {
	rng := newTestRand()
	a, b := randUint256(rng), randUint256(rng)
	if got := ctSelect(a, b, 1); !got.Equal(a) {
		t.Fatal("choice 1 must select the first argument")
	}
	if got := ctSelect(a, b, 0); !got.Equal(b) {
		t.Fatal("choice 0 must select the second argument")
	}
}

func TestUint256IsZeroWord(t *testing.T) {
	if (Uint256{}).isZeroWord() != 1 {
		t.Fatal("zero must report 1")
	}
	if newUint256(1, 0, 0, 0).isZeroWord() != 0 {
		t.Fatal("one must report 0")
	}
	if newUint256(0, 0, 0, 1<<63).isZeroWord() != 0 {
		t.Fatal("high bit must report 0")
	}
}
