package secp256k1

// secp256k1 domain parameters per SEC 2, big-endian hex. The curve is
// y² = x³ + 7 over F_p with cofactor 1.
const (
	// PHex is the field prime p = 2^256 - 2^32 - 977.
	PHex = "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F"
	// NHex is the order n of the generator.
	NHex = "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141"
	// GxHex, GyHex are the affine coordinates of the generator G.
	GxHex = "79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798"
	GyHex = "483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8"
	// CurveB is the constant term of the curve equation; the x coefficient
	// a is zero.
	CurveB = 7
)

// Process-wide immutable curve constants, built once at startup. Value types
// are copied on every read, so nothing here can be mutated by callers.
var (
	curveP = mustUint256(PHex)
	curveN = mustUint256(NHex)

	// orderFold is 2^256 - n, the fold multiplier for reduction modulo n.
	orderFold, _ = Uint256{}.Sub(curveN)

	// Public exponents for Fermat inversion and square roots.
	fieldExpInvert, _ = curveP.Sub(newUint256(2, 0, 0, 0))
	orderExpInvert, _ = curveN.Sub(newUint256(2, 0, 0, 0))
	fieldExpSqrt      = sqrtExponent()

	fieldOne  = fieldFromUint64(1)
	curveBFE  = fieldFromUint64(CurveB)
	scalarOne = scalarFromUint64(1)

	// orderMinusOne is n-1 as a scalar, used by subgroup checks: n itself
	// is not representable modulo n, so n·Q is computed as (n-1)·Q + Q.
	orderMinusOne = Scalar{n: orderMinusOneValue()}

	generator = makeGenerator()
)

// sqrtExponent returns (p+1)/4. p ends in ...FC2F, so p+1 does not overflow
// and the division is an exact shift.
func sqrtExponent() Uint256 {
	s, _ := curveP.Add(newUint256(1, 0, 0, 0))
	return s.ShiftRight(2)
}

func orderMinusOneValue() Uint256 {
	u, _ := curveN.Sub(newUint256(1, 0, 0, 0))
	return u
}

func makeGenerator() Point {
	g := Point{
		x: mustFieldElement(GxHex),
		y: mustFieldElement(GyHex),
	}
	if !g.IsOnCurve() {
		panic("secp256k1: generator does not satisfy the curve equation")
	}
	return g
}

// Generator returns the base point G.
func Generator() Point {
	return generator
}
