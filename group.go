// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazyx

import "sync"

// Group is an index of independent cells, one per key, each created lazily
// on first use. It serves as an explicit registry for process-wide values
// shared by key across call sites, where a package-level Lazy variable is
// not workable. Cells under different keys never share synchronization
// state; concurrent GetOrInit calls on the same key follow Cell semantics.
//
// The zero value is an empty Group ready to use.
type Group[K comparable, T any] struct {
	cells sync.Map // K → *Cell[T]
}

func (g *Group[K, T]) cell(key K) *Cell[T] {
	if c, ok := g.cells.Load(key); ok {
		return c.(*Cell[T])
	}
	c, _ := g.cells.LoadOrStore(key, new(Cell[T]))
	return c.(*Cell[T])
}

// GetOrInit is Cell.GetOrInit on key's cell, registering the cell first if
// this is the key's first appearance.
func (g *Group[K, T]) GetOrInit(key K, fn func() (T, error)) (*T, error) {
	return g.cell(key).GetOrInit(fn)
}

// Get returns a pointer to key's value, or nil if key was never
// successfully initialized. Never triggers initialization.
func (g *Group[K, T]) Get(key K) *T {
	if c, ok := g.cells.Load(key); ok {
		return c.(*Cell[T]).Get()
	}
	return nil
}

// Initialized reports whether key's cell holds a value.
func (g *Group[K, T]) Initialized(key K) bool {
	c, ok := g.cells.Load(key)
	return ok && c.(*Cell[T]).Initialized()
}

// Reset clears key's cell if present. The cell stays registered; the next
// GetOrInit on key reuses it. Same hazards as Cell.Reset.
func (g *Group[K, T]) Reset(key K) {
	if c, ok := g.cells.Load(key); ok {
		c.(*Cell[T]).Reset()
	}
}

// Len counts registered cells, initialized or not.
func (g *Group[K, T]) Len() int {
	n := 0
	g.cells.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
