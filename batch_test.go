package secp256k1

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBatchScalarMultMatchesSequential(t *testing.T) {
	rng := newTestRand()
	g := Generator()

	pairs := make([]ScalarPointPair, 32)
	for i := range pairs {
		pairs[i] = ScalarPointPair{K: randScalar(t, rng), P: ScalarBaseMult(randScalar(t, rng))}
	}
	// Edge items mixed in with the random ones.
	pairs = append(pairs,
		ScalarPointPair{K: Scalar{}, P: g},
		ScalarPointPair{K: scalarFromUint64(1), P: g},
		ScalarPointPair{K: orderMinusOne, P: g},
		ScalarPointPair{K: randScalar(t, rng), P: PointAtInfinity()},
	)

	results := BatchScalarMult(pairs)
	require.Len(t, results, len(pairs))
	for i, pair := range pairs {
		require.True(t, results[i].Equal(ScalarMult(pair.K, pair.P)),
			"slot %d must match the sequential result", i)
	}
}

func TestBatchScalarMultEmpty(t *testing.T) {
	require.Empty(t, BatchScalarMult(nil))
	require.Empty(t, BatchVerify(nil))
}

func TestBatchVerify(t *testing.T) {
	kp := testKeyPair(t)

	items := make([]VerifyItem, 8)
	want := make([]bool, 8)
	for i := range items {
		digest := MessageScalar(DigestSHA256(fmt.Appendf(nil, "message %d", i)))
		sig, err := Sign(kp.Private, digest)
		require.NoError(t, err)
		items[i] = VerifyItem{Public: kp.Public, Digest: digest, Signature: sig}
		want[i] = true
	}

	// Corrupt two items; their slots alone must flip.
	items[2].Digest = items[2].Digest.Add(scalarOne)
	want[2] = false
	items[5].Signature.s = items[5].Signature.s.Add(scalarOne)
	want[5] = false

	require.Equal(t, want, BatchVerify(items))
}
