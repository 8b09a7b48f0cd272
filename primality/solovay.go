package primality

import "github.com/tuneinsight/mprsa/bignum"

// solovayWitness reports whether n passes the Solovay-Strassen test for
// the small witness a: it returns false ("composite") when
// x != y (mod n) or when x == 0, and true ("no evidence of compositeness
// from this witness") otherwise, where x = J(a, n) (as an element of
// Z/nZ, taking -1 to mean n-1) and y = a^((n-1)/2) mod n.
func solovayWitness[W bignum.Limb](a uint32, n *bignum.Int[W]) (bool, error) {
	aBig := new(bignum.Int[W]).FromUint64(uint64(a))

	j := Jacobi(aBig, n)
	if j == 0 {
		return false, nil
	}

	nMinus1 := mustSub(n, 1)

	x := new(bignum.Int[W]).FromWord(1)
	if j != 1 {
		x = nMinus1
	}

	exp, _, err := bignum.DivMod(nMinus1, new(bignum.Int[W]).FromWord(2))
	if err != nil {
		return false, err
	}

	y := new(bignum.Int[W])
	if err := y.ModPow(aBig, exp, n); err != nil {
		return false, err
	}

	return x.Equal(y), nil
}

// mustSub returns n - k, where k is a small non-negative constant known
// to be <= n by the caller's contract (n is always an odd candidate > k
// here). Panics on underflow, which would indicate a caller bug.
func mustSub[W bignum.Limb](n *bignum.Int[W], k uint64) *bignum.Int[W] {
	r, err := new(bignum.Int[W]).Sub(n, new(bignum.Int[W]).FromUint64(k))
	if err != nil {
		panic(err)
	}
	return r
}
