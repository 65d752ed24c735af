package piecewise

import (
	"github.com/katalvlaran/pwline/numeric"
	"github.com/katalvlaran/pwline/store"
	"github.com/sgostarter/i/l"
)

// Point is a control point of a Function.
type Point[D numeric.Domain, R numeric.Range] = store.Point[D, R]

// Function is a piecewise-linear function from D to R.
//
// The zero value is not usable; construct with New, NewConstant or
// FromPoints. A Function is not safe for concurrent mutation; see
// SyncFunction.
type Function[D numeric.Domain, R numeric.Range] struct {
	points *store.Store[D, R]
	logger l.Wrapper
}

// Segment is the line between two domain-adjacent control points,
// From.Key < To.Key.
type Segment[D numeric.Domain, R numeric.Range] struct {
	From Point[D, R]
	To   Point[D, R]
}

// Contains reports whether at lies in [From.Key, To.Key].
func (s Segment[D, R]) Contains(at D) bool {
	return s.From.Key <= at && at <= s.To.Key
}
