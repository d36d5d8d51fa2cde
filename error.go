// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seal

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNilValue is returned when a required value, key, fallback, or
	// supplier result is absent. It is raised before any state change,
	// so the container is always left exactly as it was.
	ErrNilValue = errors.New("seal: nil value")

	// ErrTransition is returned when an operation that is only valid in
	// one phase is invoked in the other: a second write to a set-once
	// slot, a write after freeze, a read before the transition, or a
	// read of the side that the transition consumed. The failed call
	// never changes the container's phase or payload.
	ErrTransition = errors.New("seal: illegal transition")
)

// IsNilValue reports whether err is an [ErrNilValue] contract violation.
func IsNilValue(err error) bool { return errors.Is(err, ErrNilValue) }

// IsTransition reports whether err is an [ErrTransition] contract violation.
func IsTransition(err error) bool { return errors.Is(err, ErrTransition) }

// nilValue wraps ErrNilValue with the role of the rejected argument.
func nilValue(what string) error {
	return fmt.Errorf("%w: %s", ErrNilValue, what)
}

// transitionf wraps ErrTransition with a description of the conflict,
// naming the value or key involved. Callers match on the sentinel with
// errors.Is; the message is diagnostic only.
func transitionf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrTransition, fmt.Sprintf(format, args...))
}

// isNil reports whether v is absent: a nil interface, or a nil pointer,
// map, slice, func, or channel behind one. Zero values of non-nilable
// kinds are legal payloads; phase is tracked explicitly, never by a
// sentinel emptiness.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
