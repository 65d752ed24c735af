package piecewise

import (
	"iter"
	"sort"

	"github.com/katalvlaran/pwline/numeric"
)

// Walker is a Cursor that advances its bracket instead of searching for it.
//
// On the first call to Next it copies the control points (O(n)); every
// later step moves forward through that copy, so k values over n points
// cost O(n + k) in total. When an integer position wraps past the top of D
// the walk restarts from the first point. Values are identical to Cursor's
// for every position.
//
// A Walker reads the function once, on its first step; later inserts into
// the function are not observed. It must not start across a mutation.
type Walker[D numeric.Domain, R numeric.Range] struct {
	fn      *Function[D, R]
	at      D
	started bool
	pts     []Point[D, R]
	i       int // pts[i].Key <= at once at has reached pts[0].Key
}

// Walk returns a Walker positioned at at.
func (f *Function[D, R]) Walk(at D) *Walker[D, R] {
	return &Walker[D, R]{fn: f, at: at}
}

// Position returns the position the next call to Next evaluates.
func (w *Walker[D, R]) Position() D {
	return w.at
}

// Next evaluates at the current position, then advances it by one.
// Complexity: O(1) amortized.
func (w *Walker[D, R]) Next() R {
	if !w.started {
		w.start()
	}
	v := w.eval()
	prev := w.at
	w.at++
	if w.at < prev {
		w.i = 0 // wrapped
	}

	return v
}

// Take returns the next k values. Panics if k < 0.
func (w *Walker[D, R]) Take(k int) []R {
	return take(k, w.Next)
}

// Values returns an unbounded sequence over Next.
func (w *Walker[D, R]) Values() iter.Seq[R] {
	return values(w.Next)
}

// start copies every point and places the bracket on the floor of the
// start position.
func (w *Walker[D, R]) start() {
	w.started = true
	w.pts = w.fn.points.Points()
	if numeric.IsNaN(w.at) {
		return
	}
	w.i = sort.Search(len(w.pts), func(j int) bool { return w.pts[j].Key > w.at }) - 1
	if w.i < 0 {
		w.i = 0
	}
}

func (w *Walker[D, R]) eval() R {
	var zero R
	if len(w.pts) == 0 || numeric.IsNaN(w.at) {
		return zero
	}
	if w.at < w.pts[0].Key {
		return w.pts[0].Value
	}
	for w.i+1 < len(w.pts) && w.pts[w.i+1].Key <= w.at {
		w.i++
	}
	left := w.pts[w.i]
	if left.Key == w.at || w.i+1 == len(w.pts) {
		return left.Value
	}

	return w.fn.lerp(left, w.pts[w.i+1], w.at)
}
