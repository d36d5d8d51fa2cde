// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seal_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/seal"
)

// TestErrorKindsDistinct: the two contract-violation kinds never match
// each other, so callers can branch on kind without parsing messages.
func TestErrorKindsDistinct(t *testing.T) {
	var s seal.SetOnce[*int]

	nilErr := s.Set(nil)
	if !errors.Is(nilErr, seal.ErrNilValue) {
		t.Fatalf("got %v, want ErrNilValue", nilErr)
	}
	if errors.Is(nilErr, seal.ErrTransition) {
		t.Fatal("nil-value error matches ErrTransition")
	}

	n := 1
	if err := s.Set(&n); err != nil {
		t.Fatalf("Set: %v", err)
	}
	stateErr := s.Set(&n)
	if !errors.Is(stateErr, seal.ErrTransition) {
		t.Fatalf("got %v, want ErrTransition", stateErr)
	}
	if errors.Is(stateErr, seal.ErrNilValue) {
		t.Fatal("transition error matches ErrNilValue")
	}
}

func TestErrorPredicates(t *testing.T) {
	var l seal.Latch
	if err := l.Freeze(); err != nil {
		t.Fatalf("Freeze: %v", err)
	}
	err := l.Freeze()
	if !seal.IsTransition(err) {
		t.Fatalf("IsTransition(%v) = false", err)
	}
	if seal.IsNilValue(err) {
		t.Fatalf("IsNilValue(%v) = true", err)
	}
	if seal.IsTransition(nil) || seal.IsNilValue(nil) {
		t.Fatal("predicates match nil error")
	}
}
