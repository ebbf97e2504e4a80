// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazyx

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// Initialization states. stateUninitialized is zero so the zero value of
// every primitive is empty and ready to use.
const (
	stateUninitialized uint32 = iota
	stateInitializing
	stateInitialized
)

// flag is the tri-state synchronization core shared by Once and Cell.
//
// The flag doubles as the lock: winning the CAS into stateInitializing
// acquires the initializing critical section, and storing stateInitialized
// or stateUninitialized releases it. Contenders wait with iox.Backoff
// (adaptive) rather than parking on a mutex, so the fast path stays a single
// atomic load and the slow path costs nothing beyond the unavoidable wait.
type flag struct {
	s atomix.Uint32
}

// initialized reports whether the flag reached stateInitialized.
// Lock-free; the answer may be stale by the time the caller acts on it.
func (f *flag) initialized() bool {
	return f.s.Load() == stateInitialized
}

// acquire wins the initializing critical section or observes completion.
// Returns true when the caller now owns the critical section and must
// release it via complete or rollback. Returns false when some other caller
// already completed initialization; the double check happens here, after
// any in-flight attempt has released.
func (f *flag) acquire() bool {
	var bo iox.Backoff
	for {
		switch f.s.Load() {
		case stateInitialized:
			return false
		case stateUninitialized:
			if f.s.CompareAndSwap(stateUninitialized, stateInitializing) {
				return true
			}
		}
		// Critical section held elsewhere, or the CAS raced. Callers that
		// waited out a failed attempt loop back and race to retry.
		bo.Wait()
	}
}

// complete releases the critical section publishing stateInitialized.
// The store orders after every write the owner made inside the critical
// section: any load observing stateInitialized observes the fully
// constructed value.
func (f *flag) complete() {
	f.s.Store(stateInitialized)
}

// rollback releases the critical section discarding the attempt, returning
// the flag to stateUninitialized so a later caller may retry.
func (f *flag) rollback() {
	f.s.Store(stateUninitialized)
}

// seize acquires the critical section from any state, waiting out an
// in-flight initialization. Reset uses it to gain exclusive slot access
// before wiping; a completed initialization seized immediately after it
// published is discarded, which Reset documents rather than prevents.
func (f *flag) seize() {
	var bo iox.Backoff
	for {
		if s := f.s.Load(); s != stateInitializing && f.s.CompareAndSwap(s, stateInitializing) {
			return
		}
		bo.Wait()
	}
}
