// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seal

import (
	"iter"
	"sync"
)

// AddOnceSet is a set whose elements can be added but never removed or
// replaced, and which can be frozen as a whole to forbid further
// additions. It preserves the exact inserted instance: Get returns the
// canonical stored value rather than the lookup argument, which matters
// for element types whose equality is wider than identity.
//
// The freeze check and the insertion happen under one lock, so no
// addition can land after Freeze returns. Reads take a shared lock
// (Go maps do not tolerate concurrent read-during-write) and reflect
// a snapshot of completed additions at call time.
type AddOnceSet[V comparable] struct {
	mu    sync.RWMutex
	latch Latch
	set   map[V]V
}

// NewAddOnceSet creates an empty, unfrozen set.
func NewAddOnceSet[V comparable]() *AddOnceSet[V] {
	return &AddOnceSet[V]{set: make(map[V]V)}
}

// Add inserts the element. Returns ErrNilValue when v is absent,
// ErrTransition when the set is frozen or already contains v.
func (s *AddOnceSet[V]) Add(v V) error {
	if isNil(v) {
		return nilValue("set element")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.latch.EnsureNotFrozen(); err != nil {
		return err
	}
	if _, ok := s.set[v]; ok {
		return transitionf("already decided on %v", v)
	}
	s.set[v] = v
	return nil
}

// Get returns the canonical stored instance equal to v.
// Returns ErrTransition when v is not in the set.
func (s *AddOnceSet[V]) Get(v V) (V, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored, ok := s.set[v]
	if !ok {
		var zero V
		return zero, transitionf("not yet decided on %v", v)
	}
	return stored, nil
}

// Contains reports whether v is in the set.
func (s *AddOnceSet[V]) Contains(v V) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.set[v]
	return ok
}

// IsEmpty reports whether the set has no elements.
func (s *AddOnceSet[V]) IsEmpty() bool {
	return s.Size() == 0
}

// Size returns the number of elements.
func (s *AddOnceSet[V]) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.set)
}

// ForEach calls fn for every element of a snapshot taken at call time.
// fn runs outside the set's lock and may safely touch the set, though
// additions it makes are not reflected in the ongoing iteration.
func (s *AddOnceSet[V]) ForEach(fn func(V)) {
	for _, v := range s.snapshot() {
		fn(v)
	}
}

// All returns an iterator over a snapshot of the elements.
func (s *AddOnceSet[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range s.snapshot() {
			if !yield(v) {
				return
			}
		}
	}
}

// ToSet returns an independent copy of the elements.
func (s *AddOnceSet[V]) ToSet() map[V]struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[V]struct{}, len(s.set))
	for v := range s.set {
		out[v] = struct{}{}
	}
	return out
}

// Freeze forbids all further additions. Taken under the same lock as
// Add, so a successful Freeze strictly orders after every completed
// addition. Returns ErrTransition when already frozen.
func (s *AddOnceSet[V]) Freeze() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latch.Freeze()
}

// IsFrozen reports whether the set has been frozen.
func (s *AddOnceSet[V]) IsFrozen() bool {
	return s.latch.IsFrozen()
}

func (s *AddOnceSet[V]) snapshot() []V {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]V, 0, len(s.set))
	for v := range s.set {
		out = append(out, v)
	}
	return out
}
