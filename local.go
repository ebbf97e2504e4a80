// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazyx

// Local is the single-goroutine counterpart of Cell: same tri-state
// lifecycle, no synchronization. Each instance belongs to exactly one
// goroutine — keep one Local per worker (for example as a field of a
// per-goroutine struct) to get one independent lazily initialized value per
// goroutine, with no cross-goroutine contention because instances never
// alias.
//
// Not safe for concurrent use. The zero value is an empty Local.
type Local[T any] struct {
	s     uint32
	value T
}

// GetOrInit returns a pointer to the stored value, invoking fn to produce
// it if needed. A fn that re-enters the same Local panics rather than
// deadlocking, since there is no other goroutine to wait for.
func (l *Local[T]) GetOrInit(fn func() (T, error)) (*T, error) {
	switch l.s {
	case stateInitialized:
		return &l.value, nil
	case stateInitializing:
		panic("lazyx: recursive Local initialization")
	}
	l.s = stateInitializing
	ok := false
	defer func() {
		if !ok {
			l.s = stateUninitialized
		}
	}()
	v, err := fn()
	if err != nil {
		return nil, err
	}
	l.value = v
	l.s = stateInitialized
	ok = true
	return &l.value, nil
}

// Get returns a pointer to the stored value, or nil if empty. Never
// triggers initialization.
func (l *Local[T]) Get() *T {
	if l.s == stateInitialized {
		return &l.value
	}
	return nil
}

// TryGet is the read-only peek: a copy of the value and true, or the zero
// value and false.
func (l *Local[T]) TryGet() (T, bool) {
	if l.s == stateInitialized {
		return l.value, true
	}
	var zero T
	return zero, false
}

// Initialized reports whether the Local holds a value.
func (l *Local[T]) Initialized() bool {
	return l.s == stateInitialized
}

// Reset clears the stored value so the next GetOrInit runs its initializer
// again.
func (l *Local[T]) Reset() {
	var zero T
	l.value = zero
	l.s = stateUninitialized
}
