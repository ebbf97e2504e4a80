// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazyx

// Once executes a side-effecting operation at most once successfully.
//
// Unlike sync.Once, a failed operation does not count: if fn returns an
// error (or panics), the Once rolls back to the uninitialized state and a
// later Call — from the same or another goroutine — retries. Retry is
// entirely caller-driven; there is no retry count and no backoff policy.
//
// The zero value is ready to use. A Once must not be copied after first use.
type Once struct {
	f flag
}

// Call invokes fn unless some previous invocation already completed
// successfully. Callers that arrive while another goroutine is inside fn
// wait for that attempt to finish: on its success they return nil without
// invoking their own fn, on its failure they race to run theirs. The error
// of a failing fn is returned only to the caller whose Call invoked it.
//
// A fn that calls Call on the same Once deadlocks.
func (o *Once) Call(fn func() error) error {
	if o.f.initialized() {
		return nil
	}
	return o.callSlow(fn)
}

func (o *Once) callSlow(fn func() error) error {
	if !o.f.acquire() {
		return nil
	}
	ok := false
	defer func() {
		// Reached on success, error, and panic alike: the critical
		// section is always released.
		if ok {
			o.f.complete()
		} else {
			o.f.rollback()
		}
	}()
	if err := fn(); err != nil {
		return err
	}
	ok = true
	return nil
}

// Initialized reports whether some Call completed successfully.
// Lock-free and informational: the answer may be stale by the time the
// caller acts on it.
func (o *Once) Initialized() bool {
	return o.f.initialized()
}

// Reset returns the Once to the uninitialized state so the next Call runs
// its operation again. Reset waits out an in-flight Call's critical
// section, but a Reset landing immediately after a successful Call discards
// that just-completed initialization — no ordering is guaranteed between a
// concurrent Reset and a concurrent success. Callers that need that
// ordering must coordinate externally.
func (o *Once) Reset() {
	o.f.seize()
	o.f.rollback()
}
