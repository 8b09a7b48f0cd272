package primality

import (
	"errors"

	"github.com/tuneinsight/mprsa/bignum"
	"github.com/tuneinsight/mprsa/sampling"
)

// ErrInvalidDigitCount is returned by RandPrime when asked for fewer than
// one decimal digit; the original implementation silently produced
// garbage in this case, which SPEC_FULL.md's error-handling discipline
// disallows.
var ErrInvalidDigitCount = errors.New("primality: numDigits must be >= 1")

// smallWitnesses are the candidate bases tried by ProbablePrime, in the
// small-a range [2, 254] spec.md §4.6 allows implementations to choose
// from. They are tried in order up to k of them per call.
var smallWitnesses = [...]uint32{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67,
	71, 73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127, 131, 137, 139,
	149, 151, 157, 163, 167, 173, 179, 181, 191, 193, 197, 199, 211, 223,
	227, 229, 233, 239, 241, 251, 252, 253, 254,
}

// ProbablePrime reports whether n is probably prime, running up to k
// rounds of the Solovay-Strassen test with small witnesses. n <= 1 is
// rejected, n == 2 is prime, even n is composite. Error probability is
// at most 2^-k by the standard Solovay-Strassen analysis.
func ProbablePrime[W bignum.Limb](n *bignum.Int[W], k int) (bool, error) {
	one := new(bignum.Int[W]).FromWord(1)
	two := new(bignum.Int[W]).FromWord(2)

	if n.Leq(one) {
		return false, nil
	}
	if n.Equal(two) {
		return true, nil
	}
	if n.Bit(0) == 0 {
		return false, nil
	}

	if k > len(smallWitnesses) {
		k = len(smallWitnesses)
	}
	for i := 0; i < k; i++ {
		a := smallWitnesses[i]
		aBig := new(bignum.Int[W]).FromUint64(uint64(a))
		if aBig.Geq(n) {
			continue
		}
		ok, err := solovayWitness(a, n)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// RandPrime generates a uniformly random base-10 digit string of the
// requested length (leading digit non-zero), parses it into a bignum,
// makes it odd, and searches upward by +2 until ProbablePrime accepts,
// writing the result into result.
func RandPrime[W bignum.Limb](src sampling.Source, numDigits int, rounds int, result *bignum.Int[W]) (*SearchResult, error) {
	if numDigits < 1 {
		return nil, ErrInvalidDigitCount
	}

	digits := make([]byte, numDigits)
	digits[0] = byte('1' + src.NextUint32()%9)
	for i := 1; i < numDigits; i++ {
		digits[i] = byte('0' + src.NextUint32()%10)
	}

	cand, err := new(bignum.Int[W]).Parse(string(digits))
	if err != nil {
		return nil, err
	}
	if cand.Bit(0) == 0 {
		cand.SetBit0(1)
	}

	two := new(bignum.Int[W]).FromWord(2)
	probed := 0
	for {
		probed++
		ok, err := ProbablePrime(cand, rounds)
		if err != nil {
			return nil, err
		}
		if ok {
			break
		}
		cand.AddInto(two)
	}

	result.Copy(cand)
	return &SearchResult{CandidatesProbed: probed}, nil
}

// SearchResult reports how many odd candidates RandPrime examined before
// accepting one, feeding the diagnostics in search_stats.go.
type SearchResult struct {
	CandidatesProbed int
}
