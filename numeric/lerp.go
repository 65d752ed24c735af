package numeric

import "math/bits"

// Lerp returns from + off·(to-from)/span for 0 ≤ off ≤ span, span > 0.
//
// Floats are computed directly, always as larger minus smaller. Integers
// are computed on 64-bit magnitudes with a 128-bit intermediate product,
// so neither to-from nor off·(to-from) can overflow R; the quotient is
// truncated toward from. The result always lies between from and to.
//
// Complexity: O(1).
func Lerp[R Range](from, to, off, span R) R {
	if IsFloat[R]() {
		if to < from {
			return from - off*(from-to)/span
		}

		return from + off*(to-from)/span
	}

	// Both operands sign-extend into uint64, so the modular difference is
	// exact whenever hi ≥ lo.
	lo, hi := from, to
	if to < from {
		lo, hi = to, from
	}
	dy := uint64(hi) - uint64(lo)

	// off ≤ span keeps the quotient at most dy, so Div64 cannot overflow.
	prodHi, prodLo := bits.Mul64(uint64(off), dy)
	step, _ := bits.Div64(prodHi, prodLo, uint64(span))

	// The true result fits R; wrapping arithmetic lands on it.
	if to < from {
		return from - R(step)
	}

	return from + R(step)
}
