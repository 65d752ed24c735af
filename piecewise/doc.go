// Package piecewise implements piecewise-linear functions y(x) defined by a set
// of (domain, range) control points.
//
// 🚀 What is a piecewise-linear function?
//
//	A lookup table with straight lines between its rows. Typical uses:
//	  • calibration tables (ADC count → volts)
//	  • rate and fee curves
//	  • cheap approximations of expensive continuous functions
//
// ✨ Behaviour:
//   - Eval is total: it never fails and always returns a value.
//   - Exactly on a control point → that point's value, bit for bit.
//   - Between two points → linear interpolation.
//   - Left of the first / right of the last point → clamped to that point.
//   - No points at all → the zero value of the range type.
//   - Inserting an existing key overwrites it (last-write-wins).
//
// Example curve with points (0,2) (20,4) (40,3):
//
//	y
//	4 ┤          ●
//	3 ┤      ╱       ╲ ●──── (clamped)
//	2 ●───╱
//	  └──────────┬───────┬──── x
//	  0         20      40
//
// ⚙️ Usage:
//
//	f := piecewise.New[uint32, float32]()
//	f.AddPoint(0, 2.0)
//	f.AddPoint(20, 4.0)
//	f.AddPoint(40, 3.0)
//
//	f.Eval(5)  // 2.5
//	f.Eval(25) // 3.75
//
//	c := f.Consec(1) // lazy run of f.Eval(1), f.Eval(2), ...
//	c.Take(4)
//
// Consecutive evaluation:
//
//	Cursor   re-searches the bracket on every step, O(log n) per value
//	Walker   searches once, then walks the bracket forward, O(n + k) for
//	         k values over n points
//	Both produce identical values and are unbounded; the caller decides
//	when to stop.
//
// Type parameters:
//
//	D (domain)   any numeric.Domain: Go integers and floats
//	R (range)    any numeric.Range: Go integers and floats
//
// Domain differences are cast into R with numeric.Convert; an inexact cast
// (e.g. a fractional float span into an int range) panics instead of
// silently bending the slope.
//
// Concurrency:
//
//	Function is not synchronized. Readers may share it while nobody writes.
//	Cursors and Walkers borrow the function and must not run across a
//	mutation. SyncFunction wraps a Function with an RWMutex and hands out
//	copy-on-write snapshots for long-running readers.
//
// Complexity:
//
//	AddPoint, Eval, EvalStrict, Segment   O(log n)
//	Clone, Snapshot                       O(1)
//	Cursor.Next                           O(log n)
//	Walker.Next                           O(1) amortized after an O(n) start
package piecewise
