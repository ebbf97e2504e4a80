// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazyx

// Lazy binds a Cell to a fixed initializer captured at construction, so
// call sites access the value without supplying the initializer each time.
//
// The handle holds a pointer to its heap-allocated cell, so it is cheap to
// pass, store, and relocate by value. Copies of a Lazy share the cell:
// however many handles exist, the bound initializer runs at most once
// successfully.
type Lazy[T any] struct {
	cell *Cell[T]
	init func() (T, error)
}

// NewLazy binds init to a fresh empty cell. init does not run here; only
// the first Get invokes it.
func NewLazy[T any](init func() (T, error)) Lazy[T] {
	return Lazy[T]{cell: &Cell[T]{}, init: init}
}

// NewLazyValue binds an initializer that cannot fail.
func NewLazyValue[T any](init func() T) Lazy[T] {
	return NewLazy(func() (T, error) {
		return init(), nil
	})
}

// Get returns a pointer to the value, computing it via the bound
// initializer on the first successful call. After Reset, the next Get
// re-invokes the bound initializer.
func (l Lazy[T]) Get() (*T, error) {
	return l.cell.GetOrInit(l.init)
}

// MustGet is Get for call sites that treat initialization failure as fatal.
func (l Lazy[T]) MustGet() *T {
	p, err := l.cell.GetOrInit(l.init)
	if err != nil {
		panic(err)
	}
	return p
}

// TryGet is the read-only peek; it never triggers initialization.
func (l Lazy[T]) TryGet() (T, bool) {
	return l.cell.TryGet()
}

// Initialized reports whether the bound initializer completed successfully.
func (l Lazy[T]) Initialized() bool {
	return l.cell.Initialized()
}

// Reset clears the cell. Same hazards as Cell.Reset.
func (l Lazy[T]) Reset() {
	l.cell.Reset()
}
