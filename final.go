// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seal

import "fmt"

// EventuallyFinal holds a value that may be rewritten any number of
// times until one final write locks it forever. Get is valid in both
// phases and returns the current value.
//
// Unlike SetOnce and FlipSwitch, EventuallyFinal is not internally
// synchronized: the caller must serialize access when instances are
// shared across goroutines. This mirrors its role as a building block
// inside larger structures that already hold a lock.
type EventuallyFinal[T any] struct {
	value T
	final bool
}

// Get returns the current value, variable or final.
func (e *EventuallyFinal[T]) Get() T {
	return e.value
}

// SetFinal writes the final value and transitions to the immutable
// phase. Returns ErrTransition when a final value was already written.
func (e *EventuallyFinal[T]) SetFinal(v T) error {
	if e.final {
		return transitionf("overwriting final value: have %v, want to set %v", e.value, v)
	}
	e.final = true
	e.value = v
	return nil
}

// SetVariable replaces the current value without transitioning.
// Returns ErrTransition when the value is already final.
func (e *EventuallyFinal[T]) SetVariable(v T) error {
	if e.final {
		return transitionf("value is already final: have %v, want to set %v", e.value, v)
	}
	e.value = v
	return nil
}

// IsFinal reports whether the final value has been written.
func (e *EventuallyFinal[T]) IsFinal() bool {
	return e.final
}

// IsVariable reports whether the value can still change.
func (e *EventuallyFinal[T]) IsVariable() bool {
	return !e.final
}

// String returns the phase and current value.
func (e *EventuallyFinal[T]) String() string {
	if e.final {
		return fmt.Sprintf("final: %v", e.value)
	}
	return fmt.Sprintf("variable: %v", e.value)
}
