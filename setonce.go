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

// SetOnce is a scalar cell that accepts exactly one write over its
// lifetime. Before the write it is empty; after the write the stored
// value is immutable.
//
// Writers are mutually excluded, so of N concurrent Set calls exactly
// one succeeds and the rest observe ErrTransition. Readers are
// lock-free: the phase marker is published with release ordering after
// the payload write, so a reader that observes the set phase always
// sees the fully-written value.
//
// The zero value is an empty SetOnce ready for use.
type SetOnce[T any] struct {
	mu    sync.Mutex
	set   atomix.Uint32
	value T
}

// Set stores the value. It can be called successfully only once.
// Returns ErrNilValue when v is absent, ErrTransition when a value was
// already stored.
func (s *SetOnce[T]) Set(v T) error {
	if isNil(v) {
		return nilValue("set-once value")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.set.Load() != 0 {
		return transitionf("already set: have %v, want to set %v", s.value, v)
	}
	s.value = v
	s.set.Store(1)
	return nil
}

// Get returns the stored value.
// Returns ErrTransition when no value has been set yet.
func (s *SetOnce[T]) Get() (T, error) {
	if s.set.Load() == 0 {
		var zero T
		return zero, transitionf("not yet set")
	}
	return s.value, nil
}

// Getf is Get with extra diagnostic context appended to the error when
// the value has not been set yet.
func (s *SetOnce[T]) Getf(format string, args ...any) (T, error) {
	if s.set.Load() == 0 {
		var zero T
		return zero, transitionf("not yet set: %s", fmt.Sprintf(format, args...))
	}
	return s.value, nil
}

// GetOrZero returns the stored value, or the zero value of T when
// nothing has been set. Never fails.
func (s *SetOnce[T]) GetOrZero() T {
	if s.set.Load() == 0 {
		var zero T
		return zero
	}
	return s.value
}

// GetOr returns the stored value, or alt when nothing has been set.
// The fallback must be present; GetOr panics when alt is nil.
func (s *SetOnce[T]) GetOr(alt T) T {
	if isNil(alt) {
		panic("seal: nil fallback value")
	}
	if s.set.Load() == 0 {
		return alt
	}
	return s.value
}

// IsSet reports whether a value has been stored.
func (s *SetOnce[T]) IsSet() bool {
	return s.set.Load() != 0
}

// Copy stores the value of other, if other holds one. Fails exactly as
// Set would when s is already set; does nothing when other is empty.
func (s *SetOnce[T]) Copy(other *SetOnce[T]) error {
	if v, err := other.Get(); err == nil {
		return s.Set(v)
	}
	return nil
}

// Equal reports whether both cells are in the same phase and, when set,
// hold equal values.
func (s *SetOnce[T]) Equal(other *SetOnce[T]) bool {
	if s == other {
		return true
	}
	if other == nil {
		return false
	}
	sv, serr := s.Get()
	ov, oerr := other.Get()
	if (serr == nil) != (oerr == nil) {
		return false
	}
	if serr != nil {
		// both unset
		return true
	}
	return reflect.DeepEqual(sv, ov)
}

// String returns a representation of the cell's phase and value.
func (s *SetOnce[T]) String() string {
	if s.set.Load() == 0 {
		return "SetOnce[unset]"
	}
	return fmt.Sprintf("SetOnce[%v]", s.value)
}
