// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seal

import "code.hybscloud.com/atomix"

// Latch is the freeze-once capability shared by the eventually-immutable
// containers. Its life cycle has two phases, mutable and frozen, and the
// transition between them is irrevocable.
//
// Composite containers own a Latch and call [Latch.EnsureNotFrozen] as
// the first step of every mutating operation, and [Latch.EnsureFrozen]
// for reads that are only valid after the transition.
//
// The zero value is an unfrozen Latch ready for use. Freeze is
// self-synchronizing: out of N concurrent calls exactly one succeeds.
type Latch struct {
	frozen atomix.Uint32
}

// Freeze transitions the latch from mutable to frozen.
// Returns ErrTransition if the latch was already frozen.
func (l *Latch) Freeze() error {
	if !l.frozen.CompareAndSwap(0, 1) {
		return transitionf("already frozen")
	}
	return nil
}

// IsFrozen reports whether the latch has reached its frozen phase.
func (l *Latch) IsFrozen() bool {
	return l.frozen.Load() != 0
}

// EnsureNotFrozen returns ErrTransition when the latch is frozen.
// Mutating operations of an owning container call it first.
func (l *Latch) EnsureNotFrozen() error {
	if l.IsFrozen() {
		return transitionf("already frozen")
	}
	return nil
}

// EnsureFrozen returns ErrTransition when the latch is not yet frozen.
// Guard for reads that are only meaningful after the transition.
func (l *Latch) EnsureFrozen() error {
	if !l.IsFrozen() {
		return transitionf("not yet frozen")
	}
	return nil
}

// String renders the current phase.
func (l *Latch) String() string {
	if l.IsFrozen() {
		return "frozen"
	}
	return "mutable"
}
