// Package numeric defines the capability sets a piecewise-linear function is
// instantiated with, and the checked conversion that moves a domain
// difference into the range type.
//
// Capability sets:
//
//	Domain   ordered, subtractable, closed under "+1" (every Go integer and
//	         float type, including named types built on them)
//	Range    field-like arithmetic (+, −, ×, ÷) with a zero value; integer
//	         ranges follow Go's truncating division
//
// Conversions:
//
//	Convert[R](d)       exact (or well-defined float narrowing) or an error
//	MustConvert[R](d)   same, but panics; for evaluation paths where a silent
//	                    truncation would corrupt interpolation slopes
//
// Interpolation:
//
//	Lerp(from, to, off, span)   from + off·(to−from)/span; integers use a
//	                            128-bit product, so nothing overflows R
//
// Errors:
//
//	ErrLossyConversion  the value does not survive the round trip D→R→D
//	ErrOverflow         the value changes sign or saturates to ±Inf
package numeric
