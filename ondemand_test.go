// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seal_test

import (
	"testing"

	"code.hybscloud.com/seal"
)

// TestOnDemandComputesOnRead: the registered action runs on Get, calls
// SetFinal, and thereby clears itself.
func TestOnDemandComputesOnRead(t *testing.T) {
	var e seal.EventuallyFinalOnDemand[int]
	runs := 0
	e.SetOnDemand(func() {
		runs++
		if err := e.SetFinal(7); err != nil {
			t.Fatalf("SetFinal from action: %v", err)
		}
	})
	if !e.HasOnDemand() {
		t.Fatal("action not registered")
	}
	if e.IsFinal() {
		t.Fatal("registering an action transitioned the value")
	}
	if got := e.Get(); got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
	if runs != 1 {
		t.Fatalf("action ran %d times, want 1", runs)
	}
	if e.HasOnDemand() {
		t.Fatal("action still pending after SetFinal")
	}
	if !e.IsFinal() {
		t.Fatal("value not final after on-demand computation")
	}
	if got := e.Get(); got != 7 {
		t.Fatalf("second Get got %d, want 7", got)
	}
	if runs != 1 {
		t.Fatalf("action ran %d times after second Get, want 1", runs)
	}
}

func TestOnDemandSetFinalClearsAction(t *testing.T) {
	var e seal.EventuallyFinalOnDemand[string]
	e.SetOnDemand(func() { t.Fatal("cleared action was invoked") })
	if err := e.SetFinal("direct"); err != nil {
		t.Fatalf("SetFinal: %v", err)
	}
	if e.HasOnDemand() {
		t.Fatal("SetFinal did not clear the pending action")
	}
	if got := e.Get(); got != "direct" {
		t.Fatalf("got %q, want %q", got, "direct")
	}
}

func TestOnDemandSetVariableKeepsAction(t *testing.T) {
	var e seal.EventuallyFinalOnDemand[int]
	e.SetOnDemand(func() {
		if err := e.SetFinal(10); err != nil {
			t.Fatalf("SetFinal from action: %v", err)
		}
	})
	if err := e.SetVariable(3); err != nil {
		t.Fatalf("SetVariable: %v", err)
	}
	if !e.HasOnDemand() {
		t.Fatal("SetVariable cleared the pending action")
	}
	if got := e.Get(); got != 10 {
		t.Fatalf("got %d, want 10 (action result)", got)
	}
}

func TestOnDemandFinalTransitionGuards(t *testing.T) {
	var e seal.EventuallyFinalOnDemand[int]
	if err := e.SetFinal(1); err != nil {
		t.Fatalf("SetFinal: %v", err)
	}
	if err := e.SetFinal(2); !seal.IsTransition(err) {
		t.Fatalf("second SetFinal: got %v, want ErrTransition", err)
	}
	if err := e.SetVariable(3); !seal.IsTransition(err) {
		t.Fatalf("SetVariable after final: got %v, want ErrTransition", err)
	}
	if got := e.Get(); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
}

func TestOnDemandRegistrationMisusePanics(t *testing.T) {
	t.Run("nil action", func(t *testing.T) {
		var e seal.EventuallyFinalOnDemand[int]
		defer func() {
			if recover() == nil {
				t.Fatal("SetOnDemand(nil) did not panic")
			}
		}()
		e.SetOnDemand(nil)
	})
	t.Run("already registered", func(t *testing.T) {
		var e seal.EventuallyFinalOnDemand[int]
		e.SetOnDemand(func() {})
		defer func() {
			if recover() == nil {
				t.Fatal("second SetOnDemand did not panic")
			}
		}()
		e.SetOnDemand(func() {})
	})
	t.Run("already final", func(t *testing.T) {
		var e seal.EventuallyFinalOnDemand[int]
		if err := e.SetFinal(1); err != nil {
			t.Fatalf("SetFinal: %v", err)
		}
		defer func() {
			if recover() == nil {
				t.Fatal("SetOnDemand on final value did not panic")
			}
		}()
		e.SetOnDemand(func() {})
	})
}
