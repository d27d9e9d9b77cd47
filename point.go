package secp256k1

import (
	"encoding/hex"
)

// Point encoding prefixes per SEC 1.
const (
	prefixCompressedEven = 0x02
	prefixCompressedOdd  = 0x03
	prefixUncompressed   = 0x04

	// CompressedPointSize and UncompressedPointSize are the two wire sizes
	// a point can serialize to. The point at infinity has no wire form.
	CompressedPointSize   = 33
	UncompressedPointSize = 65
)

// Point is an element of the secp256k1 group: either an affine point (x, y)
// on y² = x³ + 7, or the point at infinity acting as the group identity.
// Every finite Point produced by this package satisfies the curve equation;
// points built from untrusted bytes are validated during parsing.
//
// Point is immutable: all group operations return a new value.
type Point struct {
	x, y     FieldElement
	infinity bool
}

// NewPoint builds a finite point from affine coordinates, rejecting
// coordinates that do not satisfy the curve equation.
func NewPoint(x, y FieldElement) (Point, error) {
	p := Point{x: x, y: y}
	if !p.IsOnCurve() {
		return Point{}, ErrPointNotOnCurve
	}
	return p, nil
}

// PointAtInfinity returns the group identity.
func PointAtInfinity() Point {
	return Point{infinity: true}
}

// IsInfinity reports whether the point is the identity.
func (p Point) IsInfinity() bool {
	return p.infinity
}

// X returns the affine x coordinate. Zero for the point at infinity.
func (p Point) X() FieldElement {
	return p.x
}

// Y returns the affine y coordinate. Zero for the point at infinity.
func (p Point) Y() FieldElement {
	return p.y
}

// IsOnCurve reports whether the point satisfies y² = x³ + 7. The identity
// is on the curve by definition.
func (p Point) IsOnCurve() bool {
	if p.infinity {
		return true
	}
	lhs := p.y.Square()
	rhs := p.x.Square().Mul(p.x).Add(curveBFE)
	return lhs.Equal(rhs)
}

// Equal reports whether two points are the same group element: both
// infinity, or equal canonical coordinates.
func (p Point) Equal(q Point) bool {
	if p.infinity || q.infinity {
		return p.infinity == q.infinity
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

// Negate returns -P: the identity for the identity, (x, p-y) otherwise.
func (p Point) Negate() Point {
	if p.infinity {
		return p
	}
	return Point{x: p.x, y: p.y.Negate()}
}

// Double returns 2P. Doubling the identity or a 2-torsion point (y = 0)
// yields the identity; otherwise the tangent slope is λ = 3x²/(2y) and
//
//	x' = λ² - 2x
//	y' = λ(x - x') - y
func (p Point) Double() Point {
	if p.infinity || p.y.IsZero() {
		return PointAtInfinity()
	}
	twoY := p.y.Add(p.y)
	inv, _ := twoY.Invert() // 2y ≠ 0 here
	lambda := p.x.Square().MulInt(3).Mul(inv)
	xr := lambda.Square().Sub(p.x).Sub(p.x)
	yr := lambda.Mul(p.x.Sub(xr)).Sub(p.y)
	return Point{x: xr, y: yr}
}

// Add returns P+Q under the affine chord rule. The identity is neutral,
// P+(-P) is the identity, and P+P delegates to Double.
func (p Point) Add(q Point) Point {
	if p.infinity {
		return q
	}
	if q.infinity {
		return p
	}
	if p.x.Equal(q.x) {
		if p.y.Equal(q.y) {
			return p.Double()
		}
		// Same x with different y means q = -p on a curve point.
		return PointAtInfinity()
	}
	dx := q.x.Sub(p.x)
	inv, _ := dx.Invert() // dx ≠ 0 here
	lambda := q.y.Sub(p.y).Mul(inv)
	xr := lambda.Square().Sub(p.x).Sub(q.x)
	yr := lambda.Mul(p.x.Sub(xr)).Sub(p.y)
	return Point{x: xr, y: yr}
}

// Sub returns P-Q.
func (p Point) Sub(q Point) Point {
	return p.Add(q.Negate())
}

// SerializeCompressed returns the 33-byte SEC 1 compressed encoding
// (0x02/0x03 prefix selected by y's parity, then big-endian x). The point
// at infinity has no wire encoding and fails with ErrInfinityEncoding.
func (p Point) SerializeCompressed() ([]byte, error) {
	if p.infinity {
		return nil, ErrInfinityEncoding
	}
	out := make([]byte, CompressedPointSize)
	out[0] = prefixCompressedEven
	if p.y.IsOdd() {
		out[0] = prefixCompressedOdd
	}
	xb := p.x.Bytes()
	copy(out[1:], xb[:])
	return out, nil
}

// SerializeUncompressed returns the 65-byte SEC 1 uncompressed encoding
// (0x04, then big-endian x and y). Infinity fails with ErrInfinityEncoding.
func (p Point) SerializeUncompressed() ([]byte, error) {
	if p.infinity {
		return nil, ErrInfinityEncoding
	}
	out := make([]byte, UncompressedPointSize)
	out[0] = prefixUncompressed
	xb := p.x.Bytes()
	yb := p.y.Bytes()
	copy(out[1:33], xb[:])
	copy(out[33:], yb[:])
	return out, nil
}

// String returns the compressed encoding as hex, or "infinity".
func (p Point) String() string {
	b, err := p.SerializeCompressed()
	if err != nil {
		return "infinity"
	}
	return hex.EncodeToString(b)
}

// ParsePoint decodes a compressed or uncompressed SEC 1 point encoding,
// validating fully before any group computation: coordinates must be
// canonical field elements and the result must satisfy the curve equation.
// Malformed bytes return an error; no input panics.
func ParsePoint(b []byte) (Point, error) {
	switch len(b) {
	case CompressedPointSize:
		if b[0] != prefixCompressedEven && b[0] != prefixCompressedOdd {
			return Point{}, ErrInvalidPointEncoding
		}
		x, err := NewFieldElement(b[1:])
		if err != nil {
			return Point{}, ErrInvalidPointEncoding.WithCause(err)
		}
		y, ok := x.Square().Mul(x).Add(curveBFE).Sqrt()
		if !ok {
			// x³+7 is not a quadratic residue: no curve point has this x.
			return Point{}, ErrPointNotOnCurve
		}
		wantOdd := b[0] == prefixCompressedOdd
		if y.IsOdd() != wantOdd {
			y = y.Negate()
		}
		return Point{x: x, y: y}, nil

	case UncompressedPointSize:
		if b[0] != prefixUncompressed {
			return Point{}, ErrInvalidPointEncoding
		}
		x, err := NewFieldElement(b[1:33])
		if err != nil {
			return Point{}, ErrInvalidPointEncoding.WithCause(err)
		}
		y, err := NewFieldElement(b[33:])
		if err != nil {
			return Point{}, ErrInvalidPointEncoding.WithCause(err)
		}
		return NewPoint(x, y)

	default:
		return Point{}, ErrInvalidPointEncoding
	}
}
