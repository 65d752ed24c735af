package piecewise

import (
	"iter"

	"github.com/katalvlaran/pwline/numeric"
)

// Cursor evaluates a Function at consecutive positions at, at+1, at+2, ...
//
// A Cursor owns only its position; it borrows the Function read-only and
// must not be used across a mutation of it. Every step is an independent
// Eval, so each value costs O(log n). Use Walker when the run is long.
//
// The sequence is unbounded. When the position reaches the largest value of
// D it wraps (integers) or stops advancing (floats past 2^mantissa), exactly
// like repeated "+1" on D.
type Cursor[D numeric.Domain, R numeric.Range] struct {
	fn *Function[D, R]
	at D
}

// Consec returns a Cursor positioned at at.
func (f *Function[D, R]) Consec(at D) *Cursor[D, R] {
	return &Cursor[D, R]{fn: f, at: at}
}

// Position returns the position the next call to Next evaluates.
func (c *Cursor[D, R]) Position() D {
	return c.at
}

// Next evaluates the function at the current position, then advances it
// by one.
// Complexity: O(log n).
func (c *Cursor[D, R]) Next() R {
	v := c.fn.Eval(c.at)
	c.at++

	return v
}

// Take returns the next k values. Panics if k < 0.
// Complexity: O(k log n).
func (c *Cursor[D, R]) Take(k int) []R {
	return take(k, c.Next)
}

// Values returns an unbounded sequence over Next. The caller stops it by
// breaking out of the range loop; the cursor keeps its position afterwards.
func (c *Cursor[D, R]) Values() iter.Seq[R] {
	return values(c.Next)
}

func take[R numeric.Range](k int, next func() R) []R {
	if k < 0 {
		panic(panicNegativeTake)
	}
	out := make([]R, k)
	for i := range out {
		out[i] = next()
	}

	return out
}

func values[R numeric.Range](next func() R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for yield(next()) {
		}
	}
}
