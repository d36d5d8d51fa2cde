// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seal

import "sync/atomic"

// Lazy memoizes a value computed by a supplier on first read. The
// transition to the evaluated phase is triggered by Get rather than by
// an explicit write.
//
// Lazy is intentionally not single-invocation under contention: when
// several goroutines call Get before the first evaluation completes,
// the supplier may run more than once and the last writer's result
// wins. Publication of the result is atomic, so readers always observe
// a fully-evaluated value; only the number of supplier invocations is
// racy. Single-threaded use evaluates exactly once.
type Lazy[T any] struct {
	supplier func() T
	value    atomic.Pointer[T]
}

// NewLazy creates a Lazy backed by the supplier.
// Panics when the supplier is nil; a missing supplier is a construction
// contract violation, not a recoverable condition.
func NewLazy[T any](supplier func() T) *Lazy[T] {
	if supplier == nil {
		panic("seal: nil lazy supplier")
	}
	return &Lazy[T]{supplier: supplier}
}

// Get returns the memoized value, evaluating the supplier on first use.
// Returns ErrNilValue when the supplier yields an absent value; in that
// case nothing is cached and a later Get evaluates again.
func (l *Lazy[T]) Get() (T, error) {
	if p := l.value.Load(); p != nil {
		return *p, nil
	}
	v := l.supplier()
	if isNil(v) {
		var zero T
		return zero, nilValue("lazy supplier result")
	}
	l.value.Store(&v)
	return v, nil
}

// HasBeenEvaluated reports whether a value has been computed and cached.
func (l *Lazy[T]) HasBeenEvaluated() bool {
	return l.value.Load() != nil
}
