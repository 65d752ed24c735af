package numeric

import (
	"fmt"
	"math"
)

// Convert casts a domain value into the range type R.
//
// Policy:
//   - float → float: narrowing rounds to nearest (well defined); only a
//     finite value saturating to ±Inf is rejected with ErrOverflow.
//   - every other pair must be exact: a NaN never is (ErrLossyConversion),
//     the value keeps its sign (else ErrOverflow) and survives the round
//     trip D→R→D (else ErrLossyConversion).
//
// Complexity: O(1).
func Convert[R Range, D Domain](d D) (R, error) {
	r := R(d)
	if IsFloat[D]() && IsFloat[R]() {
		if math.IsInf(float64(r), 0) && !math.IsInf(float64(d), 0) {
			return r, fmt.Errorf("numeric: convert %v: %w", d, ErrOverflow)
		}

		return r, nil
	}
	if IsNaN(d) {
		return r, fmt.Errorf("numeric: convert %v: %w", d, ErrLossyConversion)
	}
	if (d < 0) != (r < 0) {
		return r, fmt.Errorf("numeric: convert %v: %w", d, ErrOverflow)
	}
	if D(r) != d {
		return r, fmt.Errorf("numeric: convert %v: %w", d, ErrLossyConversion)
	}

	return r, nil
}

// MustConvert is Convert that panics with the conversion error.
func MustConvert[R Range, D Domain](d D) R {
	r, err := Convert[R](d)
	if err != nil {
		panic(err)
	}

	return r
}

// Span returns hi-lo computed in D, panicking with ErrOverflow when the
// subtraction wraps. Callers guarantee lo < hi.
func Span[D Domain](lo, hi D) D {
	d := hi - lo
	if d <= 0 && !IsFloat[D]() {
		panic(fmt.Errorf("numeric: span [%v, %v]: %w", lo, hi, ErrOverflow))
	}

	return d
}
