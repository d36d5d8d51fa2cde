// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seal

import (
	"fmt"
	"reflect"
	"sync"

	"code.hybscloud.com/atomix"
)

// FirstThen is a two-phase holder: it begins holding an initial value
// of type S and, through exactly one transition, ends holding a final
// value of type T. The phase is an explicit word, not payload nullness,
// so both zero values and nil-like values are unambiguous payloads.
//
// Set is mutually excluded, so of N concurrent transitions exactly one
// succeeds. Readers are lock-free: the phase word is published with
// release ordering after the final value is written. The initial value
// is written once at construction and never touched again — it stays
// reachable after the transition but is no longer observable through
// the API.
type FirstThen[S, T any] struct {
	mu    sync.Mutex
	set   atomix.Uint32
	first S
	then  T
}

// NewFirstThen creates a holder in its initial phase.
// Returns ErrNilValue when first is absent.
func NewFirstThen[S, T any](first S) (*FirstThen[S, T], error) {
	if isNil(first) {
		return nil, nilValue("first value")
	}
	return &FirstThen[S, T]{first: first}, nil
}

// Then creates a holder directly in its final phase.
// Returns ErrNilValue when then is absent.
func Then[S, T any](then T) (*FirstThen[S, T], error) {
	if isNil(then) {
		return nil, nilValue("then value")
	}
	ft := &FirstThen[S, T]{then: then}
	ft.set.Store(1)
	return ft, nil
}

// IsFirst reports whether the holder is still in its initial phase.
func (f *FirstThen[S, T]) IsFirst() bool {
	return f.set.Load() == 0
}

// IsSet reports whether the holder has transitioned to its final phase.
func (f *FirstThen[S, T]) IsSet() bool {
	return f.set.Load() != 0
}

// Set transitions the holder to its final phase, discarding the initial
// value forever. Returns ErrNilValue when then is absent, ErrTransition
// when the holder already transitioned.
func (f *FirstThen[S, T]) Set(then T) error {
	if isNil(then) {
		return nilValue("then value")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.set.Load() != 0 {
		return transitionf("already set: have %v, want to set %v", f.then, then)
	}
	f.then = then
	f.set.Store(1)
	return nil
}

// GetFirst returns the initial value.
// Returns ErrTransition when the holder already transitioned.
func (f *FirstThen[S, T]) GetFirst() (S, error) {
	if f.set.Load() != 0 {
		var zero S
		return zero, transitionf("already set")
	}
	return f.first, nil
}

// Get returns the final value.
// Returns ErrTransition when the holder has not transitioned yet.
func (f *FirstThen[S, T]) Get() (T, error) {
	if f.set.Load() == 0 {
		var zero T
		return zero, transitionf("not yet set")
	}
	return f.then, nil
}

// Equal reports whether both holders are in the same phase and hold
// equal values on the populated side.
func (f *FirstThen[S, T]) Equal(other *FirstThen[S, T]) bool {
	if f == other {
		return true
	}
	if other == nil {
		return false
	}
	if f.IsSet() != other.IsSet() {
		return false
	}
	if f.IsSet() {
		return reflect.DeepEqual(f.then, other.then)
	}
	return reflect.DeepEqual(f.first, other.first)
}

// String renders the value of the current phase.
func (f *FirstThen[S, T]) String() string {
	if f.set.Load() != 0 {
		return fmt.Sprintf("then: %v", f.then)
	}
	return fmt.Sprintf("first: %v", f.first)
}
