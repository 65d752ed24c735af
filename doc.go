// Package pwline is your in-memory toolkit for piecewise-linear functions,
// lookup tables with straight lines between their rows.
//
// 🚀 What is pwline?
//
//	A small, generic, dependency-light library that brings together:
//		• Control-point storage: an ordered B-tree map, O(log n) insert & lookup
//		• Evaluation: total, clamped, exact on control points
//		• Consecutive evaluation: a re-searching Cursor and a bracket-walking Walker
//		• Checked numeric casts: domain spans never silently truncate
//		• Lock discipline: SyncFunction with copy-on-write snapshots
//
// ✨ Why choose pwline?
//
//   - Generic – any Go integer or float for the domain and the range
//   - Total – Eval never fails: clamps outside the domain, zero when empty
//   - Predictable – last-write-wins inserts, inclusive boundaries
//   - Pure Go – no cgo
//
// Under the hood, everything is organized under three subpackages:
//
//	numeric/     Domain / Range capability sets and checked conversions
//	store/       Control-Point Store (github.com/google/btree)
//	piecewise/   Function, Cursor, Walker, SyncFunction
//
// Quick ASCII example:
//
//	    ●
//	   ╱ ╲
//	  ╱   ●────
//	●
//
// is three control points with both ends clamped.
//
//	go get github.com/katalvlaran/pwline/piecewise
package pwline
