package secp256k1

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// ECDH computes the Diffie-Hellman shared point d·Q for a local private key
// and a peer public key. Both keys are validated first, and the
// multiplication runs on the constant-time ladder because the private key is
// secret. The result cannot be infinity for valid inputs (0 < d < n and Q of
// order n), so an infinity output is reported as an invalid peer key.
func ECDH(priv Scalar, peer Point) (Point, error) {
	if !IsValidPrivateKey(priv) {
		return Point{}, ErrInvalidPrivateKey
	}
	if !IsValidPublicKey(peer) {
		return Point{}, ErrInvalidPublicKey
	}
	shared := ScalarMultConstTime(priv, peer)
	if shared.IsInfinity() {
		return Point{}, ErrInvalidPublicKey
	}
	return shared, nil
}

// SharedSecret runs ECDH and expands the shared point's x coordinate into a
// 32-byte symmetric key with HKDF-SHA256. The info parameter domain-
// separates independent uses of the same key pair; both sides must pass the
// same value.
func SharedSecret(priv Scalar, peer Point, info []byte) ([32]byte, error) {
	var key [32]byte
	shared, err := ECDH(priv, peer)
	if err != nil {
		return key, err
	}
	xb := shared.X().Bytes()
	kdf := hkdf.New(sha256.New, xb[:], nil, info)
	if _, err := io.ReadFull(kdf, key[:]); err != nil {
		return key, fmt.Errorf("failed to derive shared key: %w", err)
	}
	return key, nil
}
