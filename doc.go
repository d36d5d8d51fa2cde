// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package seal provides eventually-immutable state containers: objects
// that begin mutable and, through exactly one irrevocable transition,
// become permanently immutable or permanently constrained. They allow
// one-time publication of computed values across goroutines without
// callers holding external locks after the transition.
//
// # Containers
//
//   - [Latch]: freeze-once capability, composed into the collections.
//   - [FlipSwitch]: boolean latch with no payload.
//   - [SetOnce]: scalar write-once cell.
//   - [Lazy]: memoized computation, transitioned by first read.
//   - [FirstThen]: two-phase holder switching from an S to a T.
//   - [EventuallyFinal]: many variable writes, then one final write.
//   - [EventuallyFinalOnDemand]: final value computed by a deferred action.
//   - [AddOnceSet], [SetOnceMap]: add-once collections with a freeze latch.
//   - [Either]: strict two-variant tagged union, fixed at construction.
//
// # Concurrency
//
// For every once-transition (Latch, FlipSwitch, SetOnce, FirstThen, and
// the collection writes) the transition is performed under mutual
// exclusion: of N concurrent attempts exactly one succeeds and the
// rest observe [ErrTransition]. Scalar reads are lock-free with
// acquire/release publication via [code.hybscloud.com/atomix] markers;
// collection reads take a brief shared lock.
//
// Two containers deliberately relax this. [Lazy] accepts duplicate
// supplier invocation under concurrent first access (last writer wins).
// [EventuallyFinal] and [EventuallyFinalOnDemand] are caller-synchronized.
//
// # Errors
//
// Two error kinds cover every contract violation and are matched with
// errors.Is (or [IsNilValue]/[IsTransition]): [ErrNilValue] for absent
// arguments and supplier results, [ErrTransition] for operations
// invoked in the wrong phase. Both leave the container unchanged.
// Construction misuse (nil supplier, re-registered on-demand action)
// panics instead: those are programming errors, not runtime conditions.
//
// # Example
//
//	var s seal.SetOnce[int]
//	_ = s.Set(42)
//	if err := s.Set(7); seal.IsTransition(err) {
//		// the cell keeps 42 forever
//	}
//	v, _ := s.Get() // 42
package seal
