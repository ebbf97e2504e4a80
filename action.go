// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazyx

// LazyAction binds a Once to a fixed operation captured at construction —
// the no-value counterpart of Lazy.
//
// Like Lazy, the handle holds a pointer to its heap-allocated Once; copies
// share it, so the bound operation runs at most once successfully across
// all handles.
type LazyAction struct {
	once *Once
	init func() error
}

// NewLazyAction binds init to a fresh Once. init does not run here; only
// the first Get invokes it.
func NewLazyAction(init func() error) LazyAction {
	return LazyAction{once: &Once{}, init: init}
}

// Get runs the bound operation unless a previous Get already completed
// successfully. After Reset, the next Get re-invokes it.
func (a LazyAction) Get() error {
	return a.once.Call(a.init)
}

// Initialized reports whether the bound operation completed successfully.
func (a LazyAction) Initialized() bool {
	return a.once.Initialized()
}

// Reset allows the bound operation to run again. Same hazard as Once.Reset.
func (a LazyAction) Reset() {
	a.once.Reset()
}
