package bignum

// Sub sets z to x - y and returns z, along with an error. Sub requires
// x >= y; spec.md leaves the behavior otherwise undefined at the
// arithmetic-core level, but this implementation surfaces ErrUnderflow
// instead of returning garbage, per the error-handling discipline in
// SPEC_FULL.md. On error z is left unmodified.
//
// Sub is out-of-place: z may alias x or y.
func (z *Int[W]) Sub(x, y *Int[W]) (*Int[W], error) {
	if x.Less(y) {
		return z, ErrUnderflow
	}
	n := len(x.data)
	out := make([]W, n)

	var borrow uint64
	for i := 0; i < n; i++ {
		var yi uint64
		if i < len(y.data) {
			yi = uint64(y.data[i])
		}
		xi := uint64(x.data[i])
		diff := xi - yi - borrow
		out[i] = W(diff)
		if xi < yi+borrow {
			borrow = 1
		} else {
			borrow = 0
		}
	}
	z.data = out
	z.normalize()
	return z, nil
}

// SubInto performs the in-place update z -= x, equivalent to
// z.Sub(z, x). It is safe to alias.
func (z *Int[W]) SubInto(x *Int[W]) error {
	_, err := z.Sub(z, x)
	return err
}
