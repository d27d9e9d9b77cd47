// Package secp256k1 implements finite-field and elliptic-curve arithmetic
// for the secp256k1 curve (y² = x³ + 7 over F_p) together with an ECDSA and
// ECDH layer built on top of it.
//
// The arithmetic core is self-contained: 256-bit integers are four 64-bit
// little-endian limbs with explicit carry and borrow propagation, field and
// scalar reduction exploit the special form of the secp256k1 modulus, and
// scalar multiplication offers both a variable-time double-and-add path for
// public data and a constant-time Montgomery ladder that is mandatory for
// secret scalars. Third-party curve implementations appear only in the test
// suite, where they serve as independent cross-check oracles.
//
// All value types (Uint256, FieldElement, Scalar, Point, Signature) are
// immutable: every operation returns a new value, so independent signing and
// verification calls are safe for concurrent use without synchronization.
// The single deliberate exception is Zeroize, which wipes secret key material
// in place.
package secp256k1
