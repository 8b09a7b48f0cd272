// Package rsa is a thin shell over bignum and primality implementing
// textbook RSA key generation and the modpow-based encode/decode
// primitives. It is not a production cryptographic library: side-channel
// resistance and constant-time operation are explicit non-goals
// (spec.md §1), and there is no padding scheme — callers are responsible
// for blocking messages to fit under the modulus and for any padding a
// real deployment would require.
package rsa

import (
	"errors"

	"github.com/tuneinsight/mprsa/bignum"
	"github.com/tuneinsight/mprsa/primality"
	"github.com/tuneinsight/mprsa/sampling"
)

// Errors returned by this package.
var (
	// ErrKeyTooSmall is returned by GenerateKey when KeyConfig.PrimeDigits
	// is too small to admit a usable public exponent.
	ErrKeyTooSmall = errors.New("rsa: prime size too small to generate a key")

	// ErrMessageTooLarge is returned by Encode/Decode when the message or
	// ciphertext is not smaller than the modulus.
	ErrMessageTooLarge = errors.New("rsa: message too large for modulus")
)

// KeyConfig holds the runtime parameters external to the arithmetic core:
// how many decimal digits each prime should have, how many
// Solovay-Strassen rounds to run when searching for primes, and how many
// decimal digits to allow when searching for a public exponent.
type KeyConfig struct {
	PrimeDigits       int
	PrimalityRounds   int
	ExponentMaxDigits int
}

// DefaultConfig returns a KeyConfig with reasonable defaults for
// demonstration-scale (not production-scale) keys.
func DefaultConfig() KeyConfig {
	return KeyConfig{
		PrimeDigits:       100,
		PrimalityRounds:   20,
		ExponentMaxDigits: 6,
	}
}

// PublicKey is an RSA public key: the modulus n and public exponent e.
type PublicKey[W bignum.Limb] struct {
	N *bignum.Int[W]
	E *bignum.Int[W]
}

// PrivateKey is an RSA private key: the modulus n and private exponent d,
// plus the public exponent for convenience.
type PrivateKey[W bignum.Limb] struct {
	N *bignum.Int[W]
	E *bignum.Int[W]
	D *bignum.Int[W]
}

// Public returns the public half of priv.
func (priv *PrivateKey[W]) Public() *PublicKey[W] {
	return &PublicKey[W]{N: priv.N, E: priv.E}
}

// GenerateKey picks two random primes p, q of cfg.PrimeDigits decimal
// digits each using src as the random source, computes n = p*q and
// φ = (p-1)*(q-1), searches for a public exponent e coprime to φ with
// 1 < e < φ, and computes d = e^-1 mod φ.
func GenerateKey[W bignum.Limb](src sampling.Source, cfg KeyConfig) (*PrivateKey[W], error) {
	p := new(bignum.Int[W])
	if _, err := primality.RandPrime(src, cfg.PrimeDigits, cfg.PrimalityRounds, p); err != nil {
		return nil, err
	}
	q := new(bignum.Int[W])
	if _, err := primality.RandPrime(src, cfg.PrimeDigits, cfg.PrimalityRounds, q); err != nil {
		return nil, err
	}

	n := new(bignum.Int[W]).Mul(p, q)

	one := new(bignum.Int[W]).FromWord(1)
	pMinus1, err := new(bignum.Int[W]).Sub(p, one)
	if err != nil {
		return nil, err
	}
	qMinus1, err := new(bignum.Int[W]).Sub(q, one)
	if err != nil {
		return nil, err
	}
	phi := new(bignum.Int[W]).Mul(pMinus1, qMinus1)

	e, err := randomExponent(src, phi, cfg.ExponentMaxDigits)
	if err != nil {
		return nil, err
	}

	d, err := bignum.Inverse(e, phi)
	if err != nil {
		return nil, err
	}

	return &PrivateKey[W]{N: n, E: e, D: d}, nil
}

// randomExponent searches for a random odd candidate e in [3, phi)
// coprime to phi, retrying on gcd(candidate, phi) != 1, matching
// original_source/multiple.h's randExponent contract. maxDigits bounds
// the number of decimal digits tried per candidate.
func randomExponent[W bignum.Limb](src sampling.Source, phi *bignum.Int[W], maxDigits int) (*bignum.Int[W], error) {
	one := new(bignum.Int[W]).FromWord(1)
	two := new(bignum.Int[W]).FromWord(2)

	for attempt := 0; attempt < 10000; attempt++ {
		digits := make([]byte, maxDigits)
		digits[0] = byte('1' + src.NextUint32()%9)
		for i := 1; i < maxDigits; i++ {
			digits[i] = byte('0' + src.NextUint32()%10)
		}
		cand, err := new(bignum.Int[W]).Parse(string(digits))
		if err != nil {
			return nil, err
		}
		if cand.Bit(0) == 0 {
			cand.AddInto(one)
		}
		if cand.Leq(two) || cand.Geq(phi) {
			continue
		}
		g := bignum.GCD(cand, phi)
		if g.Equal(one) {
			return cand, nil
		}
	}
	return nil, ErrKeyTooSmall
}

// Encode computes m^e mod n, the RSA encryption primitive.
func Encode[W bignum.Limb](m *bignum.Int[W], e, n *bignum.Int[W]) (*bignum.Int[W], error) {
	if m.Geq(n) {
		return nil, ErrMessageTooLarge
	}
	result := new(bignum.Int[W])
	if err := result.ModPow(m, e, n); err != nil {
		return nil, err
	}
	return result, nil
}

// Decode computes c^d mod n, the RSA decryption primitive.
func Decode[W bignum.Limb](c *bignum.Int[W], d, n *bignum.Int[W]) (*bignum.Int[W], error) {
	if c.Geq(n) {
		return nil, ErrMessageTooLarge
	}
	result := new(bignum.Int[W])
	if err := result.ModPow(c, d, n); err != nil {
		return nil, err
	}
	return result, nil
}
