package secp256k1

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
)

// nonceGenerator yields deterministic ECDSA nonces per RFC 6979 using the
// HMAC-SHA256 DRBG construction of section 3.2. Deterministic derivation
// removes the catastrophic failure mode of a repeated or biased random
// nonce and makes signatures reproducible on airgapped hosts; candidates
// outside (0, n) are skipped with the "try again" step of the RFC, which is
// also how the signing loop obtains its bounded retries.
type nonceGenerator struct {
	k []byte
	v []byte
}

func newNonceGenerator(priv, digest [32]byte) *nonceGenerator {
	g := &nonceGenerator{
		k: make([]byte, sha256.Size),
		v: make([]byte, sha256.Size),
	}
	for i := range g.v {
		g.v[i] = 0x01
	}

	// K = HMAC_K(V || 0x00 || key || digest); V = HMAC_K(V)
	g.k = g.mac(g.v, []byte{0x00}, priv[:], digest[:])
	g.v = g.mac(g.v)
	// K = HMAC_K(V || 0x01 || key || digest); V = HMAC_K(V)
	g.k = g.mac(g.v, []byte{0x01}, priv[:], digest[:])
	g.v = g.mac(g.v)
	return g
}

func (g *nonceGenerator) mac(chunks ...[]byte) []byte {
	m := hmac.New(sha256.New, g.k)
	for _, c := range chunks {
		m.Write(c)
	}
	return m.Sum(nil)
}

// next returns the next nonce candidate in (0, n). Candidates that fall out
// of range feed back into the DRBG state and are discarded.
func (g *nonceGenerator) next() Scalar {
	for {
		g.v = g.mac(g.v)
		candidate := g.v
		// Always advance the DRBG so a rejected candidate, or a retry after
		// r = 0 or s = 0 upstream, draws fresh output.
		g.k = g.mac(g.v, []byte{0x00})
		g.v = g.mac(g.v)
		if k, err := NewScalar(candidate); err == nil && !k.IsZero() {
			return k
		}
	}
}

// GenerateNonce returns a random nonce in (0, n) from crypto/rand, for
// callers that prefer randomized over deterministic signing.
func GenerateNonce() (Scalar, error) {
	return randomScalar(rand.Reader)
}
