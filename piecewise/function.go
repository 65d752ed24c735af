package piecewise

import (
	"fmt"

	"github.com/katalvlaran/pwline/numeric"
	"github.com/katalvlaran/pwline/store"
	"github.com/sgostarter/i/l"
	"github.com/spf13/cast"
)

// New returns an empty Function. An empty Function evaluates to the zero
// value of R everywhere.
// Complexity: O(1).
func New[D numeric.Domain, R numeric.Range](opts ...Option) *Function[D, R] {
	o := gatherOptions(opts...)

	return &Function[D, R]{
		points: store.New[D, R](o.storeOpts...),
		logger: o.logger,
	}
}

// NewConstant returns a Function with a single control point (0, value).
// It is flat everywhere: clamping extends value in both directions.
func NewConstant[D numeric.Domain, R numeric.Range](value R, opts ...Option) *Function[D, R] {
	f := New[D, R](opts...)
	var zero D
	f.points.Insert(zero, value)

	return f
}

// FromPoints returns a Function seeded with points, inserted in order, so a
// repeated key keeps its last value.
// Complexity: O(m log m) for m points.
func FromPoints[D numeric.Domain, R numeric.Range](points []Point[D, R], opts ...Option) *Function[D, R] {
	f := New[D, R](opts...)
	f.AddPoints(points...)

	return f
}

// AddPoint sets the function to value at key, overwriting any existing
// control point at key. It reports whether a point was overwritten.
// Panics on a NaN key.
// Complexity: O(log n).
func (f *Function[D, R]) AddPoint(key D, value R) (replaced bool) {
	replaced = f.points.Insert(key, value)
	if replaced {
		f.logger.WithFields(l.StringField("key", keyString(key))).Debug("control point overwritten")
	}

	return replaced
}

// AddPoints inserts every point in order.
func (f *Function[D, R]) AddPoints(points ...Point[D, R]) {
	for _, p := range points {
		f.AddPoint(p.Key, p.Value)
	}
}

// Len returns the number of control points.
func (f *Function[D, R]) Len() int {
	return f.points.Len()
}

// Points returns a key-ordered copy of the control points.
func (f *Function[D, R]) Points() []Point[D, R] {
	return f.points.Points()
}

// Bounds returns the smallest and largest control-point keys; ok is false
// for an empty function.
func (f *Function[D, R]) Bounds() (lo, hi D, ok bool) {
	first, ok := f.points.Min()
	if !ok {
		return lo, hi, false
	}
	last, _ := f.points.Max()

	return first.Key, last.Key, true
}

// Clone returns an independent copy of f. Later inserts on either copy are
// invisible to the other. Clone counts as a write on f for locking purposes.
// Complexity: O(1).
func (f *Function[D, R]) Clone() *Function[D, R] {
	return &Function[D, R]{points: f.points.Clone(), logger: f.logger}
}

// Segment returns the segment whose closed interval holds at. ok is false
// when at is outside the domain or the function has fewer than two points.
//
// Behavior highlights:
//   - A control point shared by two segments belongs to the one it starts.
//   - The last control point belongs to the segment it ends.
//
// Complexity: O(log n).
func (f *Function[D, R]) Segment(at D) (Segment[D, R], bool) {
	left, ok := f.points.Floor(at)
	if !ok {
		return Segment[D, R]{}, false
	}
	if next, ok := f.points.Higher(left.Key); ok {
		return Segment[D, R]{From: left, To: next}, true
	}
	if left.Key != at {
		return Segment[D, R]{}, false
	}
	prev, ok := f.points.Lower(left.Key)
	if !ok {
		return Segment[D, R]{}, false
	}

	return Segment[D, R]{From: prev, To: left}, true
}

// Eval returns the value of the function at position at.
//
// Implementation:
//   - Stage 1: left = greatest point with Key ≤ at, right = least point with
//     Key ≥ at. A point exactly at `at` is both.
//   - Stage 2: resolve by case:
//     no points       → zero value of R
//     only left       → left.Value  (clamp right of the domain)
//     only right      → right.Value (clamp left of the domain)
//     left == right   → that value, no division
//     otherwise       → left.Value + (at-left.Key)·(right.Value-left.Value)/(right.Key-left.Key)
//
// Notes:
//   - Domain differences are computed in D and cast into R. An inexact cast
//     is logged and panics with an error wrapping numeric.ErrLossyConversion
//     or numeric.ErrOverflow.
//   - Integer ranges interpolate without intermediate overflow and
//     truncate toward the left value.
//   - A NaN position evaluates to the zero value of R.
//
// Limits: Eval is total only for spans that R represents exactly. An integer
// span above R's float mantissa (2^24 for float32, 2^53 for float64) is
// usually inexact and panics, as does a fractional span with an integer R.
// Pick R wide enough for the largest gap between neighbouring keys.
//
// Complexity: O(log n).
func (f *Function[D, R]) Eval(at D) R {
	var zero R
	if numeric.IsNaN(at) {
		return zero
	}
	left, hasLeft := f.points.Floor(at)
	right, hasRight := f.points.Ceil(at)
	switch {
	case !hasLeft && !hasRight:
		return zero
	case !hasRight:
		return left.Value
	case !hasLeft:
		return right.Value
	case left.Key == right.Key:
		return left.Value
	}

	return f.lerp(left, right, at)
}

// EvalStrict is Eval restricted to the closed domain [first key, last key].
// Outside it, or on an empty function, it returns ErrOutOfDomain or
// ErrEmptyFunction instead of a clamped or zero value.
// Complexity: O(log n).
func (f *Function[D, R]) EvalStrict(at D) (R, error) {
	var zero R
	lo, hi, ok := f.Bounds()
	if !ok {
		return zero, ErrEmptyFunction
	}
	if numeric.IsNaN(at) || at < lo || at > hi {
		return zero, fmt.Errorf("piecewise: eval at %v, domain [%v, %v]: %w", at, lo, hi, ErrOutOfDomain)
	}

	return f.Eval(at), nil
}

// lerp interpolates on the segment left→right at a position strictly
// between their keys.
func (f *Function[D, R]) lerp(left, right Point[D, R], at D) R {
	dx := f.toRange(numeric.Span(left.Key, right.Key))
	xOff := f.toRange(numeric.Span(left.Key, at))

	return numeric.Lerp(left.Value, right.Value, xOff, dx)
}

// keyString renders a key for log fields. cast only knows builtin types;
// named ones fall back to fmt.
func keyString[D numeric.Domain](key D) string {
	s, err := cast.ToStringE(key)
	if err != nil {
		return fmt.Sprint(key)
	}

	return s
}

// toRange casts a domain difference into R, failing loudly.
func (f *Function[D, R]) toRange(d D) R {
	r, err := numeric.Convert[R](d)
	if err != nil {
		f.logger.WithFields(l.ErrorField(err)).Error("domain difference does not fit range type")
		panic(err)
	}

	return r
}
