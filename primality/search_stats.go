package primality

import "github.com/montanaflynn/stats"

// SearchStats summarizes how many odd candidates a batch of RandPrime
// calls needed to probe before finding a probable prime: the
// number-theoretic layer's empirical counterpart to the Carmichael
// soundness property spec.md §8 asks tests to check directly. It is a
// diagnostic, not part of the cryptographic surface.
type SearchStats struct {
	Mean   float64
	StdDev float64
	Max    int
}

// Summarize computes SearchStats over a batch of RandPrime results.
func Summarize(results []*SearchResult) (SearchStats, error) {
	samples := make(stats.Float64Data, len(results))
	max := 0
	for i, r := range results {
		samples[i] = float64(r.CandidatesProbed)
		if r.CandidatesProbed > max {
			max = r.CandidatesProbed
		}
	}

	mean, err := samples.Mean()
	if err != nil {
		return SearchStats{}, err
	}
	stddev, err := samples.StandardDeviation()
	if err != nil {
		return SearchStats{}, err
	}
	return SearchStats{Mean: mean, StdDev: stddev, Max: max}, nil
}
