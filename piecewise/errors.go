package piecewise

import "errors"

// Sentinel errors returned by EvalStrict. Eval itself never fails.
var (
	// ErrEmptyFunction indicates the function has no control points.
	ErrEmptyFunction = errors.New("piecewise: function has no control points")

	// ErrOutOfDomain indicates a query outside [first key, last key].
	ErrOutOfDomain = errors.New("piecewise: position outside function domain")
)

const (
	panicNegativeTake = "piecewise: Take: count must be >= 0"
)
