// Package sampling provides the injectable uniform-random-word source the
// primality and rsa packages consume for prime search and RSA key
// generation. The production source is a deterministic, seedable PRNG
// built on blake3's extendable output, so tests can supply a fixed seed
// and get a reproducible stream (spec.md's "abstract this as an
// injectable uniform random limb producer so tests can supply a
// deterministic sequence").
package sampling

import (
	"encoding/binary"
	"io"

	"github.com/zeebo/blake3"
)

// Source produces uniform random 32-bit words on demand. Seeding is the
// source's own responsibility; this package's KeyedPRNG is the reference
// implementation, but callers may supply any Source (e.g. one backed by
// crypto/rand for production use outside of tests).
type Source interface {
	NextUint32() uint32
}

// KeyedPRNG is a deterministic, seedable Source backed by blake3's
// extendable-output hash. It is the spiritual successor to the teacher
// repository's clock-reseeded blake2b-512 hash chain
// (dbfv.PRNG.Clock/Seed): blake3's XOF makes the clock-and-reseed dance
// unnecessary, since Digest.Read can be drawn from indefinitely.
//
// KeyedPRNG is not safe for concurrent use by multiple goroutines; give
// each goroutine its own instance, seeded via DeriveThreadSeed if the
// streams must be independent but reproducible.
type KeyedPRNG struct {
	seed   []byte
	digest *blake3.Digest
}

// NewKeyedPRNG creates a PRNG seeded with the given key. An empty or nil
// key is valid and produces a fixed, well-known stream; production
// callers should pass bytes drawn from crypto/rand.
func NewKeyedPRNG(seed []byte) (*KeyedPRNG, error) {
	p := &KeyedPRNG{seed: append([]byte(nil), seed...)}
	p.Reset()
	return p, nil
}

// Reset rewinds the PRNG back to the start of the stream produced by its
// seed.
func (p *KeyedPRNG) Reset() {
	h := blake3.NewDeriveKey("tuneinsight/mprsa sampling.KeyedPRNG v1")
	_, _ = h.Write(p.seed)
	p.digest = h.Digest()
}

// GetSeed returns the seed the PRNG was constructed with.
func (p *KeyedPRNG) GetSeed() []byte { return p.seed }

// Read draws len(buf) bytes from the PRNG's output stream, implementing
// io.Reader so KeyedPRNG can be used anywhere a byte stream is wanted.
func (p *KeyedPRNG) Read(buf []byte) (int, error) {
	return io.ReadFull(p.digest, buf)
}

// NextUint32 draws the next uniform random 32-bit word from the stream.
func (p *KeyedPRNG) NextUint32() uint32 {
	var buf [4]byte
	if _, err := p.Read(buf[:]); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint32(buf[:])
}
