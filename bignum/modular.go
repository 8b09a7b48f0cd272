package bignum

// ModPow sets z to base^exp mod mod using right-to-left square-and-multiply
// and returns z. mod must be non-zero; otherwise ErrDivideByZero is
// returned. Reduction happens after every multiplication to keep operand
// size bounded. Each product is formed in one reused scratch value; the
// multiplication and reduction still allocate new limb slices on every
// step of the bit loop.
func (z *Int[W]) ModPow(base, exp, mod *Int[W]) error {
	if mod.IsZero() {
		return ErrDivideByZero
	}
	if mod.Len() == 1 && mod.data[0] == 1 {
		z.data = z.data[:0]
		return nil
	}

	result := new(Int[W]).FromWord(1)
	b, err := Mod(base, mod)
	if err != nil {
		return err
	}

	scratch := new(Int[W])
	bitLen := exp.BitLen()
	for i := 0; i < bitLen; i++ {
		if exp.Bit(i) == 1 {
			scratch.Mul(result, b)
			r, err := Mod(scratch, mod)
			if err != nil {
				return err
			}
			result = r
		}
		scratch.Mul(b, b)
		sq, err := Mod(scratch, mod)
		if err != nil {
			return err
		}
		b = sq
	}
	z.data = result.data
	return nil
}

// GCD returns the greatest common divisor of a and b via the classical
// Euclidean algorithm. Either operand may be zero; gcd(0, 0) is 0.
func GCD[W Limb](a, b *Int[W]) *Int[W] {
	x := a.Clone()
	y := b.Clone()
	for !y.IsZero() {
		r, err := Mod(x, y)
		if err != nil {
			// y was just checked non-zero.
			panic(err)
		}
		x, y = y, r
	}
	return x
}

// Inverse computes a^-1 mod m via the extended Euclidean algorithm,
// maintaining the non-negative four-bignum recurrence from
// original_source/multiple.h rather than introducing a signed type:
// g0, g1 start at m, a; x0, x1 start at 0, 1. Each step divides
// g0 by g1, and updates x0, x1 := x1, (x0 - q*x1) mod m, adding m before
// subtracting whenever that would otherwise go negative.
//
// Inverse returns ErrNotInvertible if gcd(a, m) != 1.
func Inverse[W Limb](a, m *Int[W]) (*Int[W], error) {
	g0 := m.Clone()
	g1, err := Mod(a, m)
	if err != nil {
		return nil, err
	}
	x0 := new(Int[W])
	x1 := new(Int[W]).FromWord(1)

	for !g1.IsZero() {
		q, r, err := DivMod(g0, g1)
		if err != nil {
			return nil, err
		}
		g0, g1 = g1, r

		qx1 := new(Int[W]).Mul(q, x1)
		qx1Mod, err := Mod(qx1, m)
		if err != nil {
			return nil, err
		}

		var next *Int[W]
		if x0.Geq(qx1Mod) {
			next, err = new(Int[W]).Sub(x0, qx1Mod)
		} else {
			sum := new(Int[W]).Add(x0, m)
			next, err = new(Int[W]).Sub(sum, qx1Mod)
		}
		if err != nil {
			return nil, err
		}
		if next.Geq(m) {
			next, err = Mod(next, m)
			if err != nil {
				return nil, err
			}
		}
		x0, x1 = x1, next
	}

	if !g0.Equal(new(Int[W]).FromWord(1)) {
		return nil, ErrNotInvertible
	}
	result, err := Mod(x0, m)
	if err != nil {
		return nil, err
	}
	return result, nil
}
