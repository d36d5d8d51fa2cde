// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seal

import "sync/atomic"

// EventuallyFinalOnDemand is an [EventuallyFinal] whose final value can
// be computed lazily: a registered action is invoked on read, and its
// expected effect is to call SetFinal, which clears the action. No
// value is meaningful while an action is still pending.
//
// Only SetFinal may clear the action, and it does so atomically with
// marking the value final. SetVariable never touches the action.
//
// Like EventuallyFinal, this type is not internally synchronized; the
// caller must prevent SetFinal races. Get reads the action slot without
// a lock so the action itself can call back into SetFinal — the price
// is that two concurrent Get calls may each observe the pending action
// and invoke it twice. Callers that share instances across goroutines
// must serialize reads against the transition.
type EventuallyFinalOnDemand[T any] struct {
	value    T
	final    bool
	onDemand atomic.Pointer[func()]
}

// Get invokes the pending on-demand action, if any, then returns the
// current value. The action is expected to call SetFinal.
func (e *EventuallyFinalOnDemand[T]) Get() T {
	if fn := e.onDemand.Load(); fn != nil {
		(*fn)()
	}
	return e.value
}

// SetFinal writes the final value, transitions to the immutable phase,
// and clears any pending on-demand action in the same step.
// Returns ErrTransition when a final value was already written.
func (e *EventuallyFinalOnDemand[T]) SetFinal(v T) error {
	if e.final {
		return transitionf("overwriting final value: have %v, want to set %v", e.value, v)
	}
	e.final = true
	e.value = v
	e.onDemand.Store(nil)
	return nil
}

// SetVariable replaces the current value without transitioning and
// without touching the pending action.
// Returns ErrTransition when the value is already final.
func (e *EventuallyFinalOnDemand[T]) SetVariable(v T) error {
	if e.final {
		return transitionf("value is already final: have %v, want to set %v", e.value, v)
	}
	e.value = v
	return nil
}

// SetOnDemand registers the deferred action that computes the final
// value. Registering while a value is final, while another action is
// pending, or registering nil is a programming error and panics.
func (e *EventuallyFinalOnDemand[T]) SetOnDemand(action func()) {
	if action == nil {
		panic("seal: nil on-demand action")
	}
	if e.final {
		panic("seal: on-demand action registered on final value")
	}
	if e.onDemand.Load() != nil {
		panic("seal: on-demand action already registered")
	}
	e.onDemand.Store(&action)
}

// HasOnDemand reports whether an action is still pending.
func (e *EventuallyFinalOnDemand[T]) HasOnDemand() bool {
	return e.onDemand.Load() != nil
}

// IsFinal reports whether the final value has been written.
func (e *EventuallyFinalOnDemand[T]) IsFinal() bool {
	return e.final
}

// IsVariable reports whether the value can still change.
func (e *EventuallyFinalOnDemand[T]) IsVariable() bool {
	return !e.final
}
