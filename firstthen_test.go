// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seal_test

import (
	"testing"

	"code.hybscloud.com/seal"
)

// TestFirstThenTransition walks the documented scenario: first "a",
// then 5, with the consumed side unreadable afterwards.
func TestFirstThenTransition(t *testing.T) {
	ft, err := seal.NewFirstThen[string, int]("a")
	if err != nil {
		t.Fatalf("NewFirstThen: %v", err)
	}
	if !ft.IsFirst() {
		t.Fatal("holder not in first phase after construction")
	}
	if ft.IsSet() {
		t.Fatal("holder already set after construction")
	}
	first, err := ft.GetFirst()
	if err != nil {
		t.Fatalf("GetFirst: %v", err)
	}
	if first != "a" {
		t.Fatalf("got %q, want %q", first, "a")
	}
	if _, err := ft.Get(); !seal.IsTransition(err) {
		t.Fatalf("Get before transition: got %v, want ErrTransition", err)
	}

	if err := ft.Set(5); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if !ft.IsSet() || ft.IsFirst() {
		t.Fatal("phase predicates inconsistent after transition")
	}
	if _, err := ft.GetFirst(); !seal.IsTransition(err) {
		t.Fatalf("GetFirst after transition: got %v, want ErrTransition", err)
	}
	v, err := ft.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v != 5 {
		t.Fatalf("got %d, want 5", v)
	}

	if err := ft.Set(6); !seal.IsTransition(err) {
		t.Fatalf("second Set: got %v, want ErrTransition", err)
	}
	v, _ = ft.Get()
	if v != 5 {
		t.Fatalf("got %d after failed Set, want 5", v)
	}
}

func TestFirstThenThenFactory(t *testing.T) {
	ft, err := seal.Then[string](9)
	if err != nil {
		t.Fatalf("Then: %v", err)
	}
	if ft.IsFirst() {
		t.Fatal("Then-built holder reports first phase")
	}
	v, err := ft.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v != 9 {
		t.Fatalf("got %d, want 9", v)
	}
	if err := ft.Set(10); !seal.IsTransition(err) {
		t.Fatalf("Set on Then-built holder: got %v, want ErrTransition", err)
	}
}

func TestFirstThenNilRejected(t *testing.T) {
	if _, err := seal.NewFirstThen[*int, int](nil); !seal.IsNilValue(err) {
		t.Fatalf("NewFirstThen(nil): got %v, want ErrNilValue", err)
	}
	if _, err := seal.Then[string, *int](nil); !seal.IsNilValue(err) {
		t.Fatalf("Then(nil): got %v, want ErrNilValue", err)
	}
	ft, err := seal.NewFirstThen[string, *int]("x")
	if err != nil {
		t.Fatalf("NewFirstThen: %v", err)
	}
	if err := ft.Set(nil); !seal.IsNilValue(err) {
		t.Fatalf("Set(nil): got %v, want ErrNilValue", err)
	}
	if !ft.IsFirst() {
		t.Fatal("rejected nil write transitioned the holder")
	}
}

func TestFirstThenEqual(t *testing.T) {
	a, _ := seal.NewFirstThen[string, int]("x")
	b, _ := seal.NewFirstThen[string, int]("x")
	c, _ := seal.NewFirstThen[string, int]("y")
	if !a.Equal(b) {
		t.Fatal("holders with equal first values not equal")
	}
	if a.Equal(c) {
		t.Fatal("holders with different first values equal")
	}
	if err := a.Set(1); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if a.Equal(b) {
		t.Fatal("transitioned holder equal to first-phase holder")
	}
	if err := b.Set(1); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if !a.Equal(b) {
		t.Fatal("holders with equal then values not equal")
	}
	if !a.Equal(a) {
		t.Fatal("holder not equal to itself")
	}
	if a.Equal(nil) {
		t.Fatal("holder equal to nil")
	}
}

func TestFirstThenString(t *testing.T) {
	f, _ := seal.NewFirstThen[string, int]("init")
	if got := f.String(); got != "first: init" {
		t.Fatalf("got %q, want %q", got, "first: init")
	}
	if err := f.Set(3); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := f.String(); got != "then: 3" {
		t.Fatalf("got %q, want %q", got, "then: 3")
	}
}
