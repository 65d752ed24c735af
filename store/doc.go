// Package store implements the Control-Point Store: an ordered associative
// container mapping unique domain keys to range values.
//
// The store is backed by a generic B-tree (github.com/google/btree), which
// gives O(log n) insertion and the two inclusive neighbour queries the
// evaluator is built on:
//
//	Floor(x)   greatest control point with Key ≤ x
//	Ceil(x)    least control point with Key ≥ x
//
// A control point sitting exactly on x is returned by both. Lower and Higher
// are the strict variants (< and >).
//
// Semantics:
//   - Keys are unique; Insert on an existing key overwrites (last-write-wins).
//   - There is no deletion.
//   - Clone is O(1) and copy-on-write: the clone and the original may be
//     mutated independently afterwards.
//
// Concurrency:
//
//	A Store is not synchronized. Any number of readers may run concurrently
//	only while no Insert is in flight.
//
// Complexity:
//
//	Insert, Get                  O(log n)
//	Floor, Ceil, Lower, Higher   O(log n)
//	Min, Max                     O(log n)
//	Points, Ascend               O(n)
//	Clone                        O(1), amortized copy on later writes
package store
