package secp256k1

import (
	"fmt"
)

// maxSignAttempts bounds the nonce retry loop. A retry fires only when the
// derived r or s is zero, which for a 256-bit group is a once-per-universe
// event; hitting the bound means something is deeply wrong and surfaces as
// ErrSigningFailed rather than spinning forever.
const maxSignAttempts = 64

// SignatureSize is the length of the compact (r || s) wire form.
const SignatureSize = 64

// Signature is an ECDSA signature pair with 1 <= r, s < n.
type Signature struct {
	r, s Scalar
}

// NewSignature builds a signature from its components, enforcing the range
// invariant.
func NewSignature(r, s Scalar) (Signature, error) {
	if r.IsZero() || s.IsZero() {
		return Signature{}, ErrInvalidSignature
	}
	return Signature{r: r, s: s}, nil
}

// R returns the r component.
func (sig Signature) R() Scalar { return sig.r }

// S returns the s component.
func (sig Signature) S() Scalar { return sig.s }

// Serialize returns the compact 64-byte form: big-endian r then big-endian
// s.
func (sig Signature) Serialize() [SignatureSize]byte {
	var out [SignatureSize]byte
	rb := sig.r.Bytes()
	sb := sig.s.Bytes()
	copy(out[:32], rb[:])
	copy(out[32:], sb[:])
	return out
}

// ParseSignature decodes the compact 64-byte form, enforcing canonical
// components in range.
func ParseSignature(b []byte) (Signature, error) {
	if len(b) != SignatureSize {
		return Signature{}, ErrInvalidSignature.WithCause(
			fmt.Errorf("expected %d bytes, got %d", SignatureSize, len(b)))
	}
	r, err := NewScalar(b[:32])
	if err != nil {
		return Signature{}, ErrInvalidSignature.WithCause(err)
	}
	s, err := NewScalar(b[32:])
	if err != nil {
		return Signature{}, ErrInvalidSignature.WithCause(err)
	}
	return NewSignature(r, s)
}

// String returns the compact form as hex.
func (sig Signature) String() string {
	b := sig.Serialize()
	return fmt.Sprintf("%x", b[:])
}

// Sign produces an ECDSA signature over a message digest already reduced to
// a scalar (see MessageScalar). Nonces are derived deterministically per
// RFC 6979 from the key and digest; the nonce path and the k·G computation
// are constant-time because k and the key are secret. A zero r or s triggers
// a bounded retry with the next deterministic candidate.
func Sign(priv Scalar, digest Scalar) (Signature, error) {
	if !IsValidPrivateKey(priv) {
		return Signature{}, ErrInvalidPrivateKey
	}

	gen := newNonceGenerator(priv.Bytes(), digest.Bytes())
	for attempt := 0; attempt < maxSignAttempts; attempt++ {
		k := gen.next()
		if sig, ok := signAttempt(priv, digest, &k); ok {
			return sig, nil
		}
	}
	return Signature{}, ErrSigningFailed
}

// signAttempt consumes one ephemeral nonce, wiping it and its inverse before
// returning on every path. ok is false when r or s degenerates to zero and
// the caller should retry with a fresh nonce.
func signAttempt(priv, digest Scalar, k *Scalar) (Signature, bool) {
	R := ScalarBaseMultConstTime(*k)
	r := scalarFromField(R.X())
	kInv, err := k.Invert() // k ∈ (0, n) by construction
	s := kInv.Mul(digest.Add(r.Mul(priv)))
	k.Zeroize()
	kInv.Zeroize()
	if err != nil || r.IsZero() || s.IsZero() {
		return Signature{}, false
	}
	return Signature{r: r, s: s}, true
}

// SignWithNonce signs with a caller-supplied nonce in (0, n). It exists for
// randomized signing (pair with GenerateNonce) and for test vectors; the
// caller's copy of the nonce stays intact and its hygiene stays the caller's
// responsibility. No retry: a zero r or s fails.
func SignWithNonce(priv, digest, nonce Scalar) (Signature, error) {
	if !IsValidPrivateKey(priv) {
		return Signature{}, ErrInvalidPrivateKey
	}
	if nonce.IsZero() {
		return Signature{}, ErrInvalidScalar
	}
	sig, ok := signAttempt(priv, digest, &nonce)
	if !ok {
		return Signature{}, ErrSigningFailed
	}
	return sig, nil
}

// Verify checks an ECDSA signature against a public key and digest scalar.
// It rejects invalid public keys and out-of-range components, recomputes
// P = u1·G + u2·Q on the variable-time paths (all inputs are public), and
// accepts iff P is finite with P.x ≡ r (mod n).
func Verify(pub Point, digest Scalar, sig Signature) bool {
	if !IsValidPublicKey(pub) {
		return false
	}
	if sig.r.IsZero() || sig.s.IsZero() {
		return false
	}

	w, err := sig.s.Invert()
	if err != nil {
		return false
	}
	u1 := digest.Mul(w)
	u2 := sig.r.Mul(w)

	p := ScalarBaseMult(u1).Add(ScalarMult(u2, pub))
	if p.IsInfinity() {
		return false
	}
	return scalarFromField(p.X()).Equal(sig.r)
}
