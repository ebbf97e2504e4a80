// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazyx

import (
	"errors"

	"code.hybscloud.com/kont"
)

// errLeft carries a Left outcome through the error-returning core so it can
// roll back without inventing an error value of its own. Never escapes.
var errLeft = errors.New("lazyx: initializer returned Left")

// GetOrInitEither is GetOrInit with the outcome as an explicit
// success/failure union: Right holds a pointer to the stored value, Left
// holds the typed failure of this caller's fn. A Left outcome rolls the
// cell back exactly like an error, leaving it retryable.
func GetOrInitEither[E, T any](c *Cell[T], fn func() kont.Either[E, T]) kont.Either[E, *T] {
	var left E
	p, err := c.GetOrInit(func() (T, error) {
		e := fn()
		if e.IsLeft() {
			left, _ = e.GetLeft()
			var zero T
			return zero, errLeft
		}
		v, _ := e.GetRight()
		return v, nil
	})
	if err != nil {
		// Only this caller's fn can produce err, so left is populated.
		return kont.Left[E, *T](left)
	}
	return kont.Right[E, *T](p)
}

// CallEither is Call with the outcome as an explicit success/failure union:
// Right on success (this caller's or a previous one's), Left with the typed
// failure of this caller's fn. A Left outcome leaves the Once retryable.
func CallEither[E any](o *Once, fn func() kont.Either[E, struct{}]) kont.Either[E, struct{}] {
	var left E
	err := o.Call(func() error {
		e := fn()
		if e.IsLeft() {
			left, _ = e.GetLeft()
			return errLeft
		}
		return nil
	})
	if err != nil {
		return kont.Left[E, struct{}](left)
	}
	return kont.Right[E, struct{}](struct{}{})
}
