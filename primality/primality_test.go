package primality_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/mprsa/bignum"
	"github.com/tuneinsight/mprsa/primality"
	"github.com/tuneinsight/mprsa/sampling"
)

func parse(t *testing.T, s string) *bignum.Int[uint32] {
	t.Helper()
	v, err := bignum.Parse[uint32](s)
	require.NoError(t, err)
	return v
}

func TestJacobiOfOne(t *testing.T) {
	one := parse(t, "1")
	n := parse(t, "7")
	require.Equal(t, 1, primality.Jacobi(one, n))
}

func TestJacobiMultiplicative(t *testing.T) {
	a := parse(t, "3")
	b := parse(t, "5")
	n := parse(t, "11")

	ab := new(bignum.Int[uint32]).Mul(a, b)
	ja := primality.Jacobi(a, n)
	jb := primality.Jacobi(b, n)
	jab := primality.Jacobi(ab, n)

	require.Equal(t, ja*jb, jab)
}

func TestJacobiMatchesEulerCriterionForPrime(t *testing.T) {
	p := parse(t, "13")
	for a := uint64(1); a < 13; a++ {
		aBig := new(bignum.Int[uint32]).FromUint64(a)
		j := primality.Jacobi(aBig, p)

		exp, _, err := bignum.DivMod(parse(t, "12"), parse(t, "2")) // (p-1)/2
		require.NoError(t, err)
		r := new(bignum.Int[uint32])
		require.NoError(t, r.ModPow(aBig, exp, p))

		want := 1
		if !r.Equal(new(bignum.Int[uint32]).FromWord(1)) {
			want = -1
		}
		require.Equal(t, want, j, "a=%d", a)
	}
}

func TestProbablePrimeKnownPrimes(t *testing.T) {
	for _, s := range []string{"2", "3", "5", "7", "11", "97"} {
		ok, err := primality.ProbablePrime(parse(t, s), 20)
		require.NoError(t, err)
		require.True(t, ok, "expected %s to be prime", s)
	}
}

func TestProbablePrimeRejectsCarmichael(t *testing.T) {
	// 561 = 3 * 11 * 17 is the smallest Carmichael number.
	ok, err := primality.ProbablePrime(parse(t, "561"), 20)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestProbablePrimeRejectsComposites(t *testing.T) {
	for _, s := range []string{"0", "1", "4", "9", "15", "100"} {
		ok, err := primality.ProbablePrime(parse(t, s), 20)
		require.NoError(t, err)
		require.False(t, ok, "expected %s to be composite", s)
	}
}

func TestRandPrimeProducesOddProbablePrime(t *testing.T) {
	src, err := sampling.NewKeyedPRNG([]byte("deterministic-test-seed"))
	require.NoError(t, err)

	result := new(bignum.Int[uint32])
	info, err := primality.RandPrime(src, 6, 20, result)
	require.NoError(t, err)
	require.Greater(t, info.CandidatesProbed, 0)
	require.Equal(t, uint(1), result.Bit(0))

	ok, err := primality.ProbablePrime(result, 20)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestRandPrimeRejectsInvalidDigitCount(t *testing.T) {
	src, err := sampling.NewKeyedPRNG(nil)
	require.NoError(t, err)
	_, err = primality.RandPrime(src, 0, 20, new(bignum.Int[uint32]))
	require.ErrorIs(t, err, primality.ErrInvalidDigitCount)
}

func TestSummarize(t *testing.T) {
	src, err := sampling.NewKeyedPRNG([]byte("stats-seed"))
	require.NoError(t, err)

	var results []*primality.SearchResult
	for i := 0; i < 5; i++ {
		r := new(bignum.Int[uint32])
		info, err := primality.RandPrime(src, 4, 20, r)
		require.NoError(t, err)
		results = append(results, info)
	}

	stats, err := primality.Summarize(results)
	require.NoError(t, err)
	require.GreaterOrEqual(t, stats.Mean, 1.0)
	require.GreaterOrEqual(t, stats.Max, 1)
}
