// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seal

import (
	"fmt"

	"code.hybscloud.com/atomix"
)

// FlipSwitch is the minimal eventually-immutable container: a boolean
// latch with no payload. The flag only ever moves from off to on; the
// on state is the object's entire content.
//
// The zero value is an unset FlipSwitch ready for use. Set is
// self-synchronizing: out of N concurrent calls exactly one succeeds.
type FlipSwitch struct {
	isSet atomix.Uint32
}

// Set flips the switch on.
// Returns ErrTransition if the switch was already set.
func (f *FlipSwitch) Set() error {
	if !f.isSet.CompareAndSwap(0, 1) {
		return transitionf("flip switch already set")
	}
	return nil
}

// IsSet reports whether the switch has been flipped on.
func (f *FlipSwitch) IsSet() bool {
	return f.isSet.Load() != 0
}

// Copy propagates the on state of other onto f. A switch is never
// turned off: when other is unset, or f is already on, Copy does
// nothing. Losing a race to another setter leaves the switch on,
// which is the state Copy was propagating, so that is not an error.
func (f *FlipSwitch) Copy(other *FlipSwitch) {
	if other.IsSet() && !f.IsSet() {
		f.isSet.CompareAndSwap(0, 1)
	}
}

// String returns a representation of the switch state.
func (f *FlipSwitch) String() string {
	return fmt.Sprintf("FlipSwitch[%t]", f.IsSet())
}
