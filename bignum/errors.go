package bignum

import "errors"

// Sentinel errors returned by this package's arithmetic operations. Check
// against these with errors.Is; the core performs no logging and carries
// no global error state.
var (
	// ErrDivideByZero is returned by DivMod, Mod, and ModPow when the
	// divisor or modulus is zero.
	ErrDivideByZero = errors.New("bignum: divide by zero")

	// ErrInvalidDigit is returned by Parse when the input is empty or
	// contains a non-digit byte.
	ErrInvalidDigit = errors.New("bignum: invalid digit")

	// ErrNotInvertible is returned by Inverse when gcd(a, m) != 1.
	ErrNotInvertible = errors.New("bignum: not invertible")

	// ErrUnderflow is returned by Sub and SubInto when the minuend is
	// smaller than the subtrahend.
	ErrUnderflow = errors.New("bignum: subtraction underflow")
)
