// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lazyx provides thread-safe lazy initialization primitives built
// on a shared tri-state synchronization core.
//
// # Architecture
//
//   - Core: a tri-state flag (uninitialized → initializing → initialized)
//     on [code.hybscloud.com/atomix], read lock-free on the fast path.
//   - Slow path: the flag doubles as the lock — a CAS into the initializing
//     state acquires the critical section; contenders wait with
//     [code.hybscloud.com/iox.Backoff] (adaptive) instead of a mutex.
//   - Failure: an initializer that errors (or panics) rolls the primitive
//     back to uninitialized; retry is caller-driven. [GetOrInitEither] and
//     [CallEither] expose the outcome as [code.hybscloud.com/kont.Either].
//
// # Primitives
//
//   - [Once]: runs a side-effecting operation at most once successfully.
//   - [Cell]: holds a single value computed on first successful access.
//   - [Lazy] / [LazyAction]: relocatable handles binding a fixed
//     initializer to a heap-allocated Cell or Once; copies share the core.
//   - [Local]: the unsynchronized single-goroutine cell, one instance per
//     owning goroutine.
//   - [Group]: an index of independent per-key cells, created lazily.
//
// # Declarations
//
// A process-wide lazy value is a package-level handle; the expression runs
// on first access from any goroutine, and Go's package initialization rules
// leave no destruction-order concerns:
//
//	var config = lazyx.NewLazy(loadConfig)
//
// A deferred process-wide action is the same with [NewLazyAction]. Per-
// goroutine values keep one [Local] in each worker's own state; keyed
// process-wide values share a [Group].
//
// # Reset hazard
//
// Reset waits out an in-flight initialization but provides no ordering
// against a concurrent success: a Reset landing right after completion
// discards the fresh value, and pointers obtained earlier observe the
// cleared slot. Callers needing stronger ordering coordinate externally.
//
// # Example
//
//	var cell lazyx.Cell[int]
//	p, err := cell.GetOrInit(func() (int, error) { return expensive() })
//	if err != nil {
//		// cell is still empty; any caller may retry
//	}
package lazyx
