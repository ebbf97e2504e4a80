// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazyx

// Cell is a thread-safe container holding a single value of type T,
// computed on the first successful GetOrInit and reused by every later
// access. The slot is an inline T; emptiness is tracked by the flag, and
// the slot holds a value exactly when the flag reads initialized.
//
// The zero value is an empty Cell ready to use. A Cell must not be copied
// after first use.
type Cell[T any] struct {
	f     flag
	value T
}

// GetOrInit returns a pointer to the stored value, invoking fn to produce
// it if no successful initialization happened yet. Once a value is stored,
// every later call returns it and ignores its own fn, even a different one.
// Concurrent callers racing into the slow path are serialized: exactly one
// invokes its fn, the rest wait and return the winner's value.
//
// On failure the cell rolls back to empty and the error is returned to the
// caller whose fn failed; callers that waited on that attempt race to retry
// with their own fn. The returned pointer stays valid until Reset.
//
// A fn that accesses the same Cell deadlocks.
func (c *Cell[T]) GetOrInit(fn func() (T, error)) (*T, error) {
	if c.f.initialized() {
		return &c.value, nil
	}
	return c.getOrInitSlow(fn)
}

func (c *Cell[T]) getOrInitSlow(fn func() (T, error)) (*T, error) {
	if !c.f.acquire() {
		return &c.value, nil
	}
	ok := false
	defer func() {
		// Reached on success, error, and panic alike: the critical
		// section is always released, and a failed attempt leaves the
		// slot untouched for the next one.
		if ok {
			c.f.complete()
		} else {
			c.f.rollback()
		}
	}()
	v, err := fn()
	if err != nil {
		return nil, err
	}
	c.value = v
	ok = true
	return &c.value, nil
}

// Get returns a pointer to the stored value, or nil if the cell is empty.
// It never triggers initialization.
func (c *Cell[T]) Get() *T {
	if c.f.initialized() {
		return &c.value
	}
	return nil
}

// TryGet is the read-only peek: a copy of the stored value and true, or the
// zero value and false if the cell is empty. Never triggers initialization.
func (c *Cell[T]) TryGet() (T, bool) {
	if c.f.initialized() {
		return c.value, true
	}
	var zero T
	return zero, false
}

// Initialized reports whether the cell holds a value. Lock-free and
// informational: the answer may be stale by the time the caller acts on it.
func (c *Cell[T]) Initialized() bool {
	return c.f.initialized()
}

// Reset clears the stored value and returns the cell to empty, so the next
// GetOrInit runs its initializer again. Reset waits out an in-flight
// initialization's critical section, but a Reset landing immediately after
// a successful initialization discards that result, and pointers obtained
// from earlier Get/GetOrInit calls observe the cleared slot — callers must
// not retain pointers across a Reset.
func (c *Cell[T]) Reset() {
	c.f.seize()
	var zero T
	c.value = zero
	c.f.rollback()
}
