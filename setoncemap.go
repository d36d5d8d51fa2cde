// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seal

import (
	"iter"
	"sync"
)

// SetOnceMap is a map in which every key can be written at most once
// and never removed, and which can be frozen as a whole to forbid
// further writes. Each entry is individually eventually immutable; the
// freeze latch closes the collection itself.
//
// The freeze check and the write happen under one lock, so no write
// can land after Freeze returns. Reads take a shared lock and reflect
// a snapshot of completed writes at call time.
type SetOnceMap[K comparable, V any] struct {
	mu    sync.RWMutex
	latch Latch
	m     map[K]V
}

// NewSetOnceMap creates an empty, unfrozen map.
func NewSetOnceMap[K comparable, V any]() *SetOnceMap[K, V] {
	return &SetOnceMap[K, V]{m: make(map[K]V)}
}

// Put writes the value for the key. Returns ErrNilValue when either
// argument is absent, ErrTransition when the map is frozen or the key
// was already decided.
func (m *SetOnceMap[K, V]) Put(k K, v V) error {
	if isNil(k) {
		return nilValue("map key")
	}
	if isNil(v) {
		return nilValue("map value")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.latch.EnsureNotFrozen(); err != nil {
		return err
	}
	return m.put(k, v)
}

// put inserts without locking or nil checks; callers hold mu.
func (m *SetOnceMap[K, V]) put(k K, v V) error {
	if have, ok := m.m[k]; ok {
		return transitionf("already decided on %v: have %v, want to write %v", k, have, v)
	}
	m.m[k] = v
	return nil
}

// GetOrCreate returns the existing value for the key, or computes one
// via generator, stores it, and returns it. The generator runs while
// the map lock is held and must not mutate the map reentrantly. A
// generator panic propagates and leaves the map without the entry.
// Returns ErrNilValue when the key, the generator, or its result is
// absent; ErrTransition when the map is frozen.
func (m *SetOnceMap[K, V]) GetOrCreate(k K, generator func(K) V) (V, error) {
	var zero V
	if isNil(k) {
		return zero, nilValue("map key")
	}
	if generator == nil {
		return zero, nilValue("generator")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.latch.EnsureNotFrozen(); err != nil {
		return zero, err
	}
	if v, ok := m.m[k]; ok {
		return v, nil
	}
	v := generator(k)
	if isNil(v) {
		return zero, nilValue("generator result")
	}
	m.m[k] = v
	return v, nil
}

// Get returns the value for the key.
// Returns ErrTransition when the key has not been decided.
func (m *SetOnceMap[K, V]) Get(k K) (V, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.m[k]
	if !ok {
		var zero V
		return zero, transitionf("not yet decided on %v", k)
	}
	return v, nil
}

// GetOrZero returns the value for the key, or the zero value of V when
// the key has not been decided. Never fails.
func (m *SetOnceMap[K, V]) GetOrZero(k K) V {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.m[k]
}

// GetOr returns the value for the key, or def when the key has not
// been decided. The fallback must be present; GetOr panics when def
// is nil.
func (m *SetOnceMap[K, V]) GetOr(k K, def V) V {
	if isNil(def) {
		panic("seal: nil fallback value")
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.m[k]; ok {
		return v
	}
	return def
}

// IsSet reports whether the key has been decided.
func (m *SetOnceMap[K, V]) IsSet(k K) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.m[k]
	return ok
}

// Size returns the number of decided keys.
func (m *SetOnceMap[K, V]) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.m)
}

// IsEmpty reports whether no key has been decided.
func (m *SetOnceMap[K, V]) IsEmpty() bool {
	return m.Size() == 0
}

// Keys returns an iterator over a snapshot of the decided keys.
func (m *SetOnceMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		ks, _ := m.snapshot()
		for _, k := range ks {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over a snapshot of the decided values.
func (m *SetOnceMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		_, vs := m.snapshot()
		for _, v := range vs {
			if !yield(v) {
				return
			}
		}
	}
}

// All returns an iterator over a snapshot of the entries.
func (m *SetOnceMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		ks, vs := m.snapshot()
		for i, k := range ks {
			if !yield(k, vs[i]) {
				return
			}
		}
	}
}

// PutAll copies every entry of other into m, subject to the same
// once-only and not-frozen constraints. On a duplicate key it fails
// partway and leaves the entries copied so far in place — no rollback.
// other's entries are snapshot before m's lock is taken, so the two
// maps are never locked together.
func (m *SetOnceMap[K, V]) PutAll(other *SetOnceMap[K, V]) error {
	ks, vs := other.snapshot()
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.latch.EnsureNotFrozen(); err != nil {
		return err
	}
	for i, k := range ks {
		if err := m.put(k, vs[i]); err != nil {
			return err
		}
	}
	return nil
}

// ToMap returns an independent copy of the entries.
func (m *SetOnceMap[K, V]) ToMap() map[K]V {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[K]V, len(m.m))
	for k, v := range m.m {
		out[k] = v
	}
	return out
}

// Freeze forbids all further writes. Taken under the same lock as Put,
// so a successful Freeze strictly orders after every completed write.
// Returns ErrTransition when already frozen.
func (m *SetOnceMap[K, V]) Freeze() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.latch.Freeze()
}

// IsFrozen reports whether the map has been frozen.
func (m *SetOnceMap[K, V]) IsFrozen() bool {
	return m.latch.IsFrozen()
}

func (m *SetOnceMap[K, V]) snapshot() ([]K, []V) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ks := make([]K, 0, len(m.m))
	vs := make([]V, 0, len(m.m))
	for k, v := range m.m {
		ks = append(ks, k)
		vs = append(vs, v)
	}
	return ks, vs
}
