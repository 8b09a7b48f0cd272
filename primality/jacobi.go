// Package primality implements the number-theoretic layer stacked on top
// of bignum: the Jacobi symbol, the Solovay-Strassen witness test,
// probabilistic primality, and random prime search.
package primality

import "github.com/tuneinsight/mprsa/bignum"

// Jacobi computes the Jacobi symbol J(a, n) for odd positive n, returning
// -1, 0, or +1. It copies its inputs into local working values before
// mutating them, so a and n are never modified even though the recursion
// it implements is naturally expressed in terms of destructive updates
// (the header this was distilled from declares its Jacobi parameters
// non-const; the algorithm itself is pure, so this implementation copies
// on entry and preserves that purity at the API boundary).
func Jacobi[W bignum.Limb](a, n *bignum.Int[W]) int {
	return jacobi(a.Clone(), n.Clone())
}

// jacobi is the recursive worker. It is free to mutate a and n because
// both are already private working copies.
func jacobi[W bignum.Limb](a, n *bignum.Int[W]) int {
	one := new(bignum.Int[W]).FromWord(1)

	aMod, err := bignum.Mod(a, n)
	if err != nil {
		// n is always odd and non-zero by contract.
		panic(err)
	}
	a = aMod

	if a.IsZero() {
		return 0
	}
	if a.Equal(one) {
		return 1
	}

	// Factor out powers of two: a = 2^e * a1, a1 odd.
	e := 0
	a1 := a.Clone()
	for a1.Bit(0) == 0 {
		a1.Rsh1()
		e++
	}

	s := 1
	if e%2 != 0 {
		nMod8 := mod8(n)
		if nMod8 == 1 || nMod8 == 7 {
			s = 1
		} else {
			s = -1
		}
	}

	if mod4(a1) == 3 && mod4(n) == 3 {
		s = -s
	}

	if a1.Equal(one) {
		return s
	}

	nModA1, err := bignum.Mod(n, a1)
	if err != nil {
		// a1 is odd, hence non-zero.
		panic(err)
	}
	return s * jacobi(nModA1, a1)
}

// mod8 returns n mod 8 as a small int, for a non-negative n.
func mod8[W bignum.Limb](n *bignum.Int[W]) int {
	return int(n.Bit(0)) | int(n.Bit(1))<<1 | int(n.Bit(2))<<2
}

// mod4 returns n mod 4 as a small int, for a non-negative n.
func mod4[W bignum.Limb](n *bignum.Int[W]) int {
	return int(n.Bit(0)) | int(n.Bit(1))<<1
}
