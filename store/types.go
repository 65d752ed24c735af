package store

import (
	"github.com/google/btree"
	"github.com/katalvlaran/pwline/numeric"
)

// Point is a control point: the function takes Value exactly at Key.
type Point[D numeric.Domain, R numeric.Range] struct {
	Key   D
	Value R
}

// Store is an ordered map of control points keyed by domain order.
// The zero value is not usable; construct with New.
type Store[D numeric.Domain, R numeric.Range] struct {
	tree   *btree.BTreeG[Point[D, R]]
	degree int
}

// lessPoint orders points by key only, so a probe Point{Key: x} finds the
// stored point at x regardless of its value.
func lessPoint[D numeric.Domain, R numeric.Range](a, b Point[D, R]) bool {
	return a.Key < b.Key
}
