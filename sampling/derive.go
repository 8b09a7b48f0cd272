package sampling

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

// DeriveThreadSeed expands a single master seed into independent,
// reproducible per-goroutine seeds using HKDF-SHA256, keyed by an integer
// thread index. This is how concurrent callers honor spec.md §5's
// disjoint-bignums-only concurrency contract without sharing one PRNG's
// mutable state: each goroutine gets its own KeyedPRNG built from its own
// derived seed, rather than taking turns reading from a shared stream.
func DeriveThreadSeed(master []byte, threadIndex uint64, seedLen int) ([]byte, error) {
	var info [8]byte
	for i := range info {
		info[i] = byte(threadIndex >> (8 * i))
	}
	kdf := hkdf.New(sha256.New, master, nil, info[:])
	out := make([]byte, seedLen)
	if _, err := io.ReadFull(kdf, out); err != nil {
		return nil, err
	}
	return out, nil
}
