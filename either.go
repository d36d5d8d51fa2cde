// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seal

import (
	"fmt"
	"reflect"
)

// Either is a strict two-variant tagged union: exactly one of the left
// or right side is populated, fixed at construction, immutable forever.
// Construct through [Left] or [Right]; the zero value is not meaningful
// and accessors treat it as a left holding the zero value of A.
type Either[A, B any] struct {
	isRight bool
	left    A
	right   B
}

// Left creates an Either populated on the left side.
// Returns ErrNilValue when a is absent.
func Left[A, B any](a A) (Either[A, B], error) {
	if isNil(a) {
		return Either[A, B]{}, nilValue("left value")
	}
	return Either[A, B]{left: a}, nil
}

// Right creates an Either populated on the right side.
// Returns ErrNilValue when b is absent.
func Right[A, B any](b B) (Either[A, B], error) {
	if isNil(b) {
		return Either[A, B]{}, nilValue("right value")
	}
	return Either[A, B]{isRight: true, right: b}, nil
}

// IsLeft reports whether the left side is populated.
func (e Either[A, B]) IsLeft() bool {
	return !e.isRight
}

// IsRight reports whether the right side is populated.
func (e Either[A, B]) IsRight() bool {
	return e.isRight
}

// GetLeft returns the left value.
// Returns ErrNilValue when the right side is the populated one.
func (e Either[A, B]) GetLeft() (A, error) {
	if e.isRight {
		var zero A
		return zero, nilValue("left side not populated")
	}
	return e.left, nil
}

// GetRight returns the right value.
// Returns ErrNilValue when the left side is the populated one.
func (e Either[A, B]) GetRight() (B, error) {
	if !e.isRight {
		var zero B
		return zero, nilValue("right side not populated")
	}
	return e.right, nil
}

// LeftOr returns the left value, or alt when the right side is
// populated. The fallback must be present; LeftOr panics when alt
// is nil.
func (e Either[A, B]) LeftOr(alt A) A {
	if isNil(alt) {
		panic("seal: nil fallback value")
	}
	if e.isRight {
		return alt
	}
	return e.left
}

// RightOr returns the right value, or alt when the left side is
// populated. The fallback must be present; RightOr panics when alt
// is nil.
func (e Either[A, B]) RightOr(alt B) B {
	if isNil(alt) {
		panic("seal: nil fallback value")
	}
	if !e.isRight {
		return alt
	}
	return e.right
}

// Equal reports whether both unions populate the same side with equal
// values.
func (e Either[A, B]) Equal(other Either[A, B]) bool {
	if e.isRight != other.isRight {
		return false
	}
	if e.isRight {
		return reflect.DeepEqual(e.right, other.right)
	}
	return reflect.DeepEqual(e.left, other.left)
}

// String renders the union as [left|] or [|right].
func (e Either[A, B]) String() string {
	if e.isRight {
		return fmt.Sprintf("[|%v]", e.right)
	}
	return fmt.Sprintf("[%v|]", e.left)
}
