package numeric

import "errors"

var (
	// ErrLossyConversion indicates a domain value cannot be represented in
	// the range type without losing information.
	ErrLossyConversion = errors.New("numeric: lossy conversion")

	// ErrOverflow indicates a domain value falls outside the range type's
	// representable interval.
	ErrOverflow = errors.New("numeric: overflow")
)
