package secp256k1

import (
	"crypto/sha256"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// hashToScalarDomain separates this package's hash-to-scalar use from any
// other SHA-256 use of the same inputs.
const hashToScalarDomain = "secp256k1_hash_to_scalar"

// HashToScalar hashes arbitrary data to a scalar with SHA-256 under a fixed
// domain separator, reducing the digest modulo n.
func HashToScalar(data ...[]byte) Scalar {
	h := sha256.New()
	h.Write([]byte(hashToScalarDomain))
	for _, d := range data {
		h.Write(d)
	}
	return MessageScalar([32]byte(h.Sum(nil)))
}

// MessageScalar reduces a 32-byte message digest modulo n, producing the
// scalar form Sign and Verify consume. The digest itself comes from
// whichever hash the application protocol mandates.
func MessageScalar(digest [32]byte) Scalar {
	s, _ := NewScalarReduced(digest[:]) // 32 bytes, cannot fail
	return s
}

// DigestSHA256 returns the SHA-256 digest of a message.
func DigestSHA256(msg []byte) [32]byte {
	return sha256.Sum256(msg)
}

// DigestKeccak256 returns the legacy Keccak-256 digest used by
// Ethereum-style protocols.
func DigestKeccak256(msg []byte) [32]byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(msg)
	return [32]byte(h.Sum(nil))
}

// DigestBLAKE2b returns the BLAKE2b-256 digest used by several newer chain
// protocols.
func DigestBLAKE2b(msg []byte) [32]byte {
	return blake2b.Sum256(msg)
}
