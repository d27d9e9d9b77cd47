package secp256k1

// IsValidPrivateKey reports whether d is usable as a private key: 0 < d < n.
// Scalars are canonical by construction, so the upper bound holds for every
// Scalar and only zero is rejected.
func IsValidPrivateKey(d Scalar) bool {
	return !d.IsZero()
}

// IsValidPublicKey reports whether Q is acceptable as a peer public key: a
// finite curve point whose order divides n. secp256k1 has cofactor 1, so
// n·Q = ∞ holds for every finite curve point; the check still runs so that
// the acceptance rule matches the stated contract rather than relying on a
// curve-shape argument. Q is public, so the variable-time paths are fine.
func IsValidPublicKey(q Point) bool {
	if q.IsInfinity() {
		return false
	}
	if !q.IsOnCurve() {
		return false
	}
	// n is not representable as a Scalar (scalars live mod n), so n·Q is
	// evaluated as (n-1)·Q + Q.
	return ScalarMult(orderMinusOne, q).Add(q).IsInfinity()
}

// ValidatePublicKeyBytes parses an encoded public key and applies the full
// acceptance rule. Everything is validated before any computation depends on
// the point.
func ValidatePublicKeyBytes(b []byte) (Point, error) {
	q, err := ParsePoint(b)
	if err != nil {
		return Point{}, err
	}
	if !IsValidPublicKey(q) {
		return Point{}, ErrInvalidPublicKey
	}
	return q, nil
}
