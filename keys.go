package secp256k1

import (
	"crypto/rand"
	"io"
)

// GeneratePrivateKey returns a uniformly random scalar in (0, n) by
// rejection sampling over crypto/rand. A failing entropy source is a fatal
// error, never a silent fallback to something weaker.
func GeneratePrivateKey() (Scalar, error) {
	return randomScalar(rand.Reader)
}

func randomScalar(source io.Reader) (Scalar, error) {
	for {
		var buf [32]byte
		if _, err := io.ReadFull(source, buf[:]); err != nil {
			return Scalar{}, ErrInsufficientEntropy.WithCause(err)
		}
		s, err := NewScalar(buf[:])
		if err != nil {
			// Out of range: resample with fresh bytes.
			continue
		}
		if s.IsZero() {
			continue
		}
		return s, nil
	}
}

// NewPrivateKey imports a 32-byte big-endian private key, enforcing
// 0 < d < n. Out-of-range input is rejected, never reduced.
func NewPrivateKey(b []byte) (Scalar, error) {
	d, err := NewScalar(b)
	if err != nil {
		return Scalar{}, ErrInvalidPrivateKey.WithCause(err)
	}
	if d.IsZero() {
		return Scalar{}, ErrInvalidPrivateKey
	}
	return d, nil
}

// PublicKey derives the public point d·G for a valid private key, using the
// constant-time path since d is secret.
func PublicKey(priv Scalar) (Point, error) {
	if !IsValidPrivateKey(priv) {
		return Point{}, ErrInvalidPrivateKey
	}
	return ScalarBaseMultConstTime(priv), nil
}

// KeyPair bundles a private scalar with its public point.
type KeyPair struct {
	Private Scalar
	Public  Point
}

// GenerateKeyPair generates a fresh private key and derives its public
// point.
func GenerateKeyPair() (*KeyPair, error) {
	priv, err := GeneratePrivateKey()
	if err != nil {
		return nil, err
	}
	pub, err := PublicKey(priv)
	if err != nil {
		return nil, err
	}
	return &KeyPair{Private: priv, Public: pub}, nil
}

// Zeroize wipes the private half of the key pair.
func (kp *KeyPair) Zeroize() {
	kp.Private.Zeroize()
}
