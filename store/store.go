package store

import (
	"github.com/google/btree"
	"github.com/katalvlaran/pwline/numeric"
)

const panicNaNKey = "store: NaN key"

// New returns an empty Store.
// Complexity: O(1).
func New[D numeric.Domain, R numeric.Range](opts ...Option) *Store[D, R] {
	o := gatherOptions(opts...)

	return &Store[D, R]{
		tree:   btree.NewG[Point[D, R]](o.degree, lessPoint[D, R]),
		degree: o.degree,
	}
}

// Insert stores value at key, overwriting any value already there.
// It reports whether an existing point was replaced.
// Panics on a NaN key, which has no place in the key order.
// Complexity: O(log n).
func (s *Store[D, R]) Insert(key D, value R) (replaced bool) {
	if numeric.IsNaN(key) {
		panic(panicNaNKey)
	}
	_, replaced = s.tree.ReplaceOrInsert(Point[D, R]{Key: key, Value: value})

	return replaced
}

// Get returns the value stored exactly at key.
// Complexity: O(log n).
func (s *Store[D, R]) Get(key D) (R, bool) {
	p, ok := s.tree.Get(Point[D, R]{Key: key})

	return p.Value, ok
}

// Floor returns the greatest point with Key ≤ target.
// Complexity: O(log n).
func (s *Store[D, R]) Floor(target D) (p Point[D, R], ok bool) {
	s.tree.DescendLessOrEqual(Point[D, R]{Key: target}, func(item Point[D, R]) bool {
		p, ok = item, true

		return false
	})

	return p, ok
}

// Ceil returns the least point with Key ≥ target.
// Complexity: O(log n).
func (s *Store[D, R]) Ceil(target D) (p Point[D, R], ok bool) {
	s.tree.AscendGreaterOrEqual(Point[D, R]{Key: target}, func(item Point[D, R]) bool {
		p, ok = item, true

		return false
	})

	return p, ok
}

// Len returns the number of control points.
func (s *Store[D, R]) Len() int {
	return s.tree.Len()
}

// Min returns the point with the smallest key.
func (s *Store[D, R]) Min() (Point[D, R], bool) {
	return s.tree.Min()
}

// Max returns the point with the largest key.
func (s *Store[D, R]) Max() (Point[D, R], bool) {
	return s.tree.Max()
}

// Ascend calls fn for every point in key order until fn returns false.
// fn must not mutate the store.
func (s *Store[D, R]) Ascend(fn func(Point[D, R]) bool) {
	s.tree.Ascend(fn)
}

// AscendFrom calls fn for every point with Key ≥ pivot in key order until
// fn returns false. fn must not mutate the store.
func (s *Store[D, R]) AscendFrom(pivot D, fn func(Point[D, R]) bool) {
	s.tree.AscendGreaterOrEqual(Point[D, R]{Key: pivot}, fn)
}

// Points returns a key-ordered copy of all control points.
// Complexity: O(n).
func (s *Store[D, R]) Points() []Point[D, R] {
	out := make([]Point[D, R], 0, s.tree.Len())
	s.tree.Ascend(func(p Point[D, R]) bool {
		out = append(out, p)

		return true
	})

	return out
}

// Clone returns a copy-on-write copy of the store. Later inserts on either
// side are invisible to the other, and both may be used concurrently once
// Clone returns. Clone itself re-marks s and counts as a write on it.
// Complexity: O(1).
func (s *Store[D, R]) Clone() *Store[D, R] {
	return &Store[D, R]{tree: s.tree.Clone(), degree: s.degree}
}

// Degree returns the B-tree degree the store was built with.
func (s *Store[D, R]) Degree() int {
	return s.degree
}

// Lower returns the greatest point with Key < target.
// Complexity: O(log n).
func (s *Store[D, R]) Lower(target D) (p Point[D, R], ok bool) {
	s.tree.DescendLessOrEqual(Point[D, R]{Key: target}, func(item Point[D, R]) bool {
		if item.Key == target {
			return true
		}
		p, ok = item, true

		return false
	})

	return p, ok
}

// Higher returns the least point with Key > target.
// Complexity: O(log n).
func (s *Store[D, R]) Higher(target D) (p Point[D, R], ok bool) {
	s.tree.AscendGreaterOrEqual(Point[D, R]{Key: target}, func(item Point[D, R]) bool {
		if item.Key == target {
			return true
		}
		p, ok = item, true

		return false
	})

	return p, ok
}
