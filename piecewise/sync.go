package piecewise

import (
	"sync"

	"github.com/katalvlaran/pwline/numeric"
)

// SyncFunction is a Function guarded by a sync.RWMutex.
//
// Writers (AddPoint, AddPoints) are serialized against each other and against
// readers (Eval, EvalStrict, Len, Bounds). Long-running readers such as
// Cursors and Walkers take a Snapshot, which is an independent Function and
// never observes later writes.
type SyncFunction[D numeric.Domain, R numeric.Range] struct {
	mu sync.RWMutex // guards fn
	fn *Function[D, R]
}

// NewSync returns an empty SyncFunction.
func NewSync[D numeric.Domain, R numeric.Range](opts ...Option) *SyncFunction[D, R] {
	return &SyncFunction[D, R]{fn: New[D, R](opts...)}
}

// Synchronized wraps f. The caller must stop using f directly.
func Synchronized[D numeric.Domain, R numeric.Range](f *Function[D, R]) *SyncFunction[D, R] {
	return &SyncFunction[D, R]{fn: f}
}

// AddPoint inserts or overwrites a control point under the write lock.
func (s *SyncFunction[D, R]) AddPoint(key D, value R) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.fn.AddPoint(key, value)
}

// AddPoints inserts points atomically: readers see all or none of them.
func (s *SyncFunction[D, R]) AddPoints(points ...Point[D, R]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fn.AddPoints(points...)
}

// Eval evaluates under the read lock.
func (s *SyncFunction[D, R]) Eval(at D) R {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.fn.Eval(at)
}

// EvalStrict evaluates under the read lock; see Function.EvalStrict.
func (s *SyncFunction[D, R]) EvalStrict(at D) (R, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.fn.EvalStrict(at)
}

// Len returns the number of control points.
func (s *SyncFunction[D, R]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.fn.Len()
}

// Bounds returns the smallest and largest keys; see Function.Bounds.
func (s *SyncFunction[D, R]) Bounds() (lo, hi D, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.fn.Bounds()
}

// Snapshot returns an immutable-by-convention copy of the current state.
// It takes the write lock because cloning re-marks the shared tree.
// Complexity: O(1).
func (s *SyncFunction[D, R]) Snapshot() *Function[D, R] {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.fn.Clone()
}
