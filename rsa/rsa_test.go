package rsa_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/mprsa/bignum"
	"github.com/tuneinsight/mprsa/rsa"
	"github.com/tuneinsight/mprsa/sampling"
)

func parse(t *testing.T, s string) *bignum.Int[uint32] {
	t.Helper()
	v, err := bignum.Parse[uint32](s)
	require.NoError(t, err)
	return v
}

// TestTextbookRoundTrip uses the fixed toy key from spec.md §8 scenario 9
// (p=61, q=53, n=3233, phi=3120, e=17, d=2753) rather than GenerateKey, so
// the encode/decode primitives are checked against a known-correct vector
// independent of key generation and random search.
func TestTextbookRoundTrip(t *testing.T) {
	n := parse(t, "3233")
	e := parse(t, "17")
	d := parse(t, "2753")
	m := parse(t, "65")

	c, err := rsa.Encode(m, e, n)
	require.NoError(t, err)
	require.True(t, c.Equal(parse(t, "2790")))

	decoded, err := rsa.Decode(c, d, n)
	require.NoError(t, err)
	require.True(t, decoded.Equal(m))
}

func TestGenerateKeyRoundTrip(t *testing.T) {
	src, err := sampling.NewKeyedPRNG([]byte("rsa-generate-key-test-seed"))
	require.NoError(t, err)

	cfg := rsa.KeyConfig{PrimeDigits: 6, PrimalityRounds: 20, ExponentMaxDigits: 3}
	priv, err := rsa.GenerateKey[uint32](src, cfg)
	require.NoError(t, err)

	pub := priv.Public()

	m := parse(t, "42")
	require.True(t, m.Less(priv.N))

	c, err := rsa.Encode(m, pub.E, pub.N)
	require.NoError(t, err)

	decoded, err := rsa.Decode(c, priv.D, priv.N)
	require.NoError(t, err)
	require.True(t, decoded.Equal(m))
}

func TestEncodeRejectsMessageTooLarge(t *testing.T) {
	n := parse(t, "3233")
	e := parse(t, "17")
	m := parse(t, "3233")

	_, err := rsa.Encode(m, e, n)
	require.ErrorIs(t, err, rsa.ErrMessageTooLarge)
}
