package secp256k1

import (
	"math/bits"
	"runtime"
)

// Scalar is a residue modulo the secp256k1 group order n. Scalars carry
// private keys, signing nonces and multipliers, so every comparison on them
// is constant-time and every value reachable through the public API is
// canonical (< n).
//
// Scalar is immutable except for Zeroize, which wipes secret material in
// place once it is no longer needed.
type Scalar struct {
	n Uint256
}

// NewScalar builds a scalar from a 32-byte big-endian slice. Values at or
// above the group order are rejected with ErrInvalidScalar; the caller is
// never "helped" by silent reduction.
func NewScalar(b []byte) (Scalar, error) {
	u, err := NewUint256(b)
	if err != nil {
		return Scalar{}, ErrInvalidScalar.WithCause(err)
	}
	if u.Cmp(curveN) >= 0 {
		return Scalar{}, ErrInvalidScalar
	}
	return Scalar{n: u}, nil
}

// NewScalarReduced builds a scalar from a 32-byte big-endian slice, reducing
// it modulo n. This is the import path for digest output, where the input is
// uniform and reduction is the documented contract.
func NewScalarReduced(b []byte) (Scalar, error) {
	u, err := NewUint256(b)
	if err != nil {
		return Scalar{}, ErrInvalidScalar.WithCause(err)
	}
	return scalarReduce512(Uint512{limbs: [8]uint64{
		u.limbs[0], u.limbs[1], u.limbs[2], u.limbs[3],
	}}), nil
}

func scalarFromUint64(v uint64) Scalar {
	return Scalar{n: newUint256(v, 0, 0, 0)}
}

// scalarFromField interprets a canonical field element modulo n. ECDSA uses
// this for r = R.x mod n.
func scalarFromField(f FieldElement) Scalar {
	return scalarReduce512(Uint512{limbs: [8]uint64{
		f.n.limbs[0], f.n.limbs[1], f.n.limbs[2], f.n.limbs[3],
	}})
}

// Bytes returns the canonical 32-byte big-endian encoding.
func (s Scalar) Bytes() [32]byte {
	return s.n.Bytes()
}

// String returns the canonical value as big-endian hex.
func (s Scalar) String() string {
	return s.n.String()
}

// IsZero reports whether the scalar is zero.
func (s Scalar) IsZero() bool {
	return s.n.IsZero()
}

// Equal reports whether two scalars are equal, in constant time.
func (s Scalar) Equal(t Scalar) bool {
	return s.n.Equal(t.n)
}

// Zeroize wipes the scalar in place. The only mutating method in the
// package; call it on private keys and nonces once they are dead.
func (s *Scalar) Zeroize() {
	for i := range s.n.limbs {
		s.n.limbs[i] = 0
	}
	runtime.KeepAlive(s)
}

// scalarCanonicalize performs the single conditional subtraction of n needed
// after a fold, without branching on the value.
func scalarCanonicalize(u Uint256) Uint256 {
	d, borrow := u.Sub(curveN)
	return ctSelect(d, u, 1-borrow)
}

// Add returns s+t mod n.
func (s Scalar) Add(t Scalar) Scalar {
	r, carry := s.n.Add(t.n)
	// On carry the true sum is r + 2^256 ≡ r + (2^256-n); both inputs are
	// below n, so the fold cannot carry again.
	r, _ = r.Add(ctSelect(orderFold, Uint256{}, carry))
	return Scalar{n: scalarCanonicalize(r)}
}

// Sub returns s-t mod n.
func (s Scalar) Sub(t Scalar) Scalar {
	d, borrow := s.n.Sub(t.n)
	d, _ = d.Sub(ctSelect(orderFold, Uint256{}, borrow))
	return Scalar{n: d}
}

// Negate returns -s mod n, with -0 = 0.
func (s Scalar) Negate() Scalar {
	d, _ := curveN.Sub(s.n)
	return Scalar{n: ctSelect(Uint256{}, d, s.n.isZeroWord())}
}

// Mul returns s*t mod n.
func (s Scalar) Mul(t Scalar) Scalar {
	return scalarReduce512(s.n.Mul(t.n))
}

// Square returns s² mod n.
func (s Scalar) Square() Scalar {
	return scalarReduce512(s.n.Mul(s.n))
}

// orderFoldAdd computes lo + hi*(2^256-n) into a full 512-bit accumulator.
// 2^256 ≡ 2^256-n (mod n), so this folds the high half of a product one
// step down.
func orderFoldAdd(lo, hi Uint256) Uint512 {
	w := hi.Mul(orderFold)
	var c uint64
	w.limbs[0], c = bits.Add64(w.limbs[0], lo.limbs[0], 0)
	w.limbs[1], c = bits.Add64(w.limbs[1], lo.limbs[1], c)
	w.limbs[2], c = bits.Add64(w.limbs[2], lo.limbs[2], c)
	w.limbs[3], c = bits.Add64(w.limbs[3], lo.limbs[3], c)
	w.limbs[4], c = bits.Add64(w.limbs[4], 0, c)
	w.limbs[5], c = bits.Add64(w.limbs[5], 0, c)
	w.limbs[6], c = bits.Add64(w.limbs[6], 0, c)
	w.limbs[7], _ = bits.Add64(w.limbs[7], 0, c)
	return w
}

// scalarReduce512 reduces a full 512-bit product modulo n. The fold constant
// 2^256-n is a 129-bit value, so each fold shrinks the high part by roughly
// 127 bits: 512 -> 385 -> 259 -> just past 256, after which one masked fold
// and a conditional subtraction canonicalize. The fold count is fixed, so
// the operation sequence does not depend on the value being reduced.
func scalarReduce512(w Uint512) Scalar {
	acc := orderFoldAdd(w.lo(), w.hi())
	acc = orderFoldAdd(acc.lo(), acc.hi())
	acc = orderFoldAdd(acc.lo(), acc.hi())

	// The remaining high part is 0 or 1; fold it as a masked add.
	r := acc.lo()
	carry := acc.limbs[4]
	fold := ctSelect(orderFold, Uint256{}, carry)
	var c uint64
	r.limbs[0], c = bits.Add64(r.limbs[0], fold.limbs[0], 0)
	r.limbs[1], c = bits.Add64(r.limbs[1], fold.limbs[1], c)
	r.limbs[2], c = bits.Add64(r.limbs[2], fold.limbs[2], c)
	r.limbs[3], _ = bits.Add64(r.limbs[3], fold.limbs[3], c)

	return Scalar{n: scalarCanonicalize(r)}
}

// pow returns s^e mod n by square-and-multiply over all 256 exponent bits.
// The exponent must be public; the only caller raises to the fixed constant
// n-2.
func (s Scalar) pow(e Uint256) Scalar {
	result := scalarOne
	for i := 255; i >= 0; i-- {
		result = result.Square()
		if e.Bit(uint(i)) == 1 {
			result = result.Mul(s)
		}
	}
	return result
}

// Invert returns s⁻¹ mod n via Fermat's little theorem (n is prime).
// Inverting zero fails with ErrZeroInverse.
func (s Scalar) Invert() (Scalar, error) {
	if s.IsZero() {
		return Scalar{}, ErrZeroInverse
	}
	return s.pow(orderExpInvert), nil
}
