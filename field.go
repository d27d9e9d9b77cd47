package secp256k1

import (
	"encoding/hex"
	"math/bits"
)

// FieldElement is a residue modulo the secp256k1 field prime
// p = 2^256 - 2^32 - 977. Every FieldElement reachable through the public
// API is canonical (< p); unreduced intermediates exist only inside the
// reduction routines in this file.
//
// FieldElement is immutable: all operations return a new value.
type FieldElement struct {
	n Uint256
}

// fieldFoldWord is 2^256 mod p = 2^32 + 977. Folding the bits at and above
// 2^256 back in with this multiplier is what makes the secp256k1-specific
// reduction cheap.
const fieldFoldWord uint64 = 0x1000003D1

// NewFieldElement builds a field element from a 32-byte big-endian slice.
// Only canonical encodings (value < p) are accepted.
func NewFieldElement(b []byte) (FieldElement, error) {
	u, err := NewUint256(b)
	if err != nil {
		return FieldElement{}, ErrInvalidFieldElement.WithCause(err)
	}
	if u.Cmp(curveP) >= 0 {
		return FieldElement{}, ErrInvalidFieldElement
	}
	return FieldElement{n: u}, nil
}

// mustFieldElement parses a big-endian hex constant; for package-level curve
// parameters only.
func mustFieldElement(s string) FieldElement {
	f, err := NewFieldElement(mustBytes32(s))
	if err != nil {
		panic(err)
	}
	return f
}

func mustBytes32(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func fieldFromUint64(v uint64) FieldElement {
	return FieldElement{n: newUint256(v, 0, 0, 0)}
}

// Bytes returns the canonical 32-byte big-endian encoding.
func (f FieldElement) Bytes() [32]byte {
	return f.n.Bytes()
}

// String returns the canonical value as big-endian hex.
func (f FieldElement) String() string {
	return f.n.String()
}

// IsZero reports whether the element is zero.
func (f FieldElement) IsZero() bool {
	return f.n.IsZero()
}

// IsOdd reports whether the canonical value is odd.
func (f FieldElement) IsOdd() bool {
	return f.n.limbs[0]&1 == 1
}

// Equal reports whether two field elements are equal. Both sides are
// canonical, so a constant-time limb comparison suffices.
func (f FieldElement) Equal(g FieldElement) bool {
	return f.n.Equal(g.n)
}

// fieldCanonicalize performs the single conditional subtraction of p needed
// after a fold, without branching on the value.
func fieldCanonicalize(u Uint256) Uint256 {
	d, borrow := u.Sub(curveP)
	// borrow == 0 means u >= p and the subtracted value is the one to keep.
	return ctSelect(d, u, 1-borrow)
}

// Add returns f+g mod p.
func (f FieldElement) Add(g FieldElement) FieldElement {
	r, carry := f.n.Add(g.n)
	// A carry means the true sum is r + 2^256 ≡ r + fieldFoldWord (mod p).
	// Both inputs are < p, so the folded value cannot carry again.
	r, _ = r.Add(newUint256(fieldFoldWord&-carry, 0, 0, 0))
	return FieldElement{n: fieldCanonicalize(r)}
}

// Sub returns f-g mod p.
func (f FieldElement) Sub(g FieldElement) FieldElement {
	d, borrow := f.n.Sub(g.n)
	// On borrow the limbs hold f-g+2^256; subtracting 2^256-p (the fold
	// word) lands on the canonical f-g+p.
	d, _ = d.Sub(newUint256(fieldFoldWord&-borrow, 0, 0, 0))
	return FieldElement{n: d}
}

// Negate returns -f mod p, with -0 = 0.
func (f FieldElement) Negate() FieldElement {
	d, _ := curveP.Sub(f.n)
	return FieldElement{n: ctSelect(Uint256{}, d, f.n.isZeroWord())}
}

// Mul returns f*g mod p.
func (f FieldElement) Mul(g FieldElement) FieldElement {
	return fieldReduce512(f.n.Mul(g.n))
}

// Square returns f² mod p.
func (f FieldElement) Square() FieldElement {
	return fieldReduce512(f.n.Mul(f.n))
}

// MulInt returns f*v mod p for a small word multiplier.
func (f FieldElement) MulInt(v uint64) FieldElement {
	return fieldReduce512(f.n.Mul(newUint256(v, 0, 0, 0)))
}

// fieldReduce512 reduces a full 512-bit product modulo p. Because
// 2^256 ≡ fieldFoldWord (mod p), the high half folds into the low half with
// one 4x1-limb multiply; the at-most-97-bit residue of that fold folds once
// more, and a final conditional subtraction canonicalizes. The operation
// sequence does not depend on the value being reduced.
func fieldReduce512(w Uint512) FieldElement {
	lo, hi := w.lo(), w.hi()

	// First fold: t = lo + hi*fieldFoldWord, a 320-bit value in t0..t3,t4.
	var t Uint256
	var t4, c, mc uint64
	h0, l0 := bits.Mul64(hi.limbs[0], fieldFoldWord)
	h1, l1 := bits.Mul64(hi.limbs[1], fieldFoldWord)
	h2, l2 := bits.Mul64(hi.limbs[2], fieldFoldWord)
	h3, l3 := bits.Mul64(hi.limbs[3], fieldFoldWord)

	t.limbs[0], c = bits.Add64(lo.limbs[0], l0, 0)
	t.limbs[1], c = bits.Add64(lo.limbs[1], l1, c)
	t.limbs[2], c = bits.Add64(lo.limbs[2], l2, c)
	t.limbs[3], c = bits.Add64(lo.limbs[3], l3, c)
	t4 = c

	t.limbs[1], c = bits.Add64(t.limbs[1], h0, 0)
	t.limbs[2], c = bits.Add64(t.limbs[2], h1, c)
	t.limbs[3], c = bits.Add64(t.limbs[3], h2, c)
	t4 += h3 + c

	// Second fold: t4*fieldFoldWord is below 2^97, so it lands in two limbs.
	fh, fl := bits.Mul64(t4, fieldFoldWord)
	var r Uint256
	r.limbs[0], c = bits.Add64(t.limbs[0], fl, 0)
	r.limbs[1], c = bits.Add64(t.limbs[1], fh, c)
	r.limbs[2], c = bits.Add64(t.limbs[2], 0, c)
	r.limbs[3], c = bits.Add64(t.limbs[3], 0, c)

	// A carry out here wraps past 2^256 with a tiny residue; folding once
	// more cannot carry again.
	mc = fieldFoldWord & -c
	r.limbs[0], c = bits.Add64(r.limbs[0], mc, 0)
	r.limbs[1], c = bits.Add64(r.limbs[1], 0, c)
	r.limbs[2], c = bits.Add64(r.limbs[2], 0, c)
	r.limbs[3], _ = bits.Add64(r.limbs[3], 0, c)

	return FieldElement{n: fieldCanonicalize(r)}
}

// pow returns f^e mod p by square-and-multiply over all 256 exponent bits.
// The exponent must be public: the only callers raise to the fixed curve
// constants p-2 and (p+1)/4.
func (f FieldElement) pow(e Uint256) FieldElement {
	result := fieldOne
	for i := 255; i >= 0; i-- {
		result = result.Square()
		if e.Bit(uint(i)) == 1 {
			result = result.Mul(f)
		}
	}
	return result
}

// Invert returns f⁻¹ mod p via Fermat's little theorem (f^(p-2)).
// Inverting zero fails with ErrZeroInverse; callers that divide by values
// which may be zero (point doubling divides by 2y) must special-case the
// zero denominator first.
func (f FieldElement) Invert() (FieldElement, error) {
	if f.IsZero() {
		return FieldElement{}, ErrZeroInverse
	}
	return f.pow(fieldExpInvert), nil
}

// Sqrt returns a square root of f when one exists. p ≡ 3 (mod 4), so the
// candidate is f^((p+1)/4); the boolean reports whether its square really is
// f. The root can come out with either parity; point decompression negates
// it to match the requested prefix.
func (f FieldElement) Sqrt() (FieldElement, bool) {
	root := f.pow(fieldExpSqrt)
	return root, root.Square().Equal(f)
}
