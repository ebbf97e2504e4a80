// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazyx_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/lazyx"
)

func TestLazyDefersInitialization(t *testing.T) {
	var counter atomix.Uint32
	l := lazyx.NewLazy(func() (int, error) {
		return int(counter.Add(1)), nil
	})

	if got := counter.Load(); got != 0 {
		t.Fatalf("initializer ran %d times at construction, want 0", got)
	}
	if l.Initialized() {
		t.Fatalf("Initialized() = true before first Get")
	}

	p, err := l.Get()
	if err != nil || *p != 1 {
		t.Fatalf("Get = (%v, %v), want (1, nil)", p, err)
	}
	p, err = l.Get()
	if err != nil || *p != 1 {
		t.Fatalf("second Get = (%v, %v), want (1, nil)", p, err)
	}
	if got := counter.Load(); got != 1 {
		t.Fatalf("initializer ran %d times, want 1", got)
	}
}

func TestLazyValue(t *testing.T) {
	l := lazyx.NewLazyValue(func() string { return "ready" })
	if p := l.MustGet(); *p != "ready" {
		t.Fatalf("MustGet = %q, want %q", *p, "ready")
	}
	if v, ok := l.TryGet(); !ok || v != "ready" {
		t.Fatalf("TryGet = (%q, %v), want (\"ready\", true)", v, ok)
	}
}

func TestLazyMustGetPanicsOnError(t *testing.T) {
	boom := errors.New("boom")
	l := lazyx.NewLazy(func() (int, error) { return 0, boom })

	defer func() {
		if recover() == nil {
			t.Fatalf("MustGet did not panic on initializer error")
		}
		if l.Initialized() {
			t.Fatalf("Initialized() = true after failed MustGet")
		}
	}()
	l.MustGet()
}

func TestLazyResetReinvokes(t *testing.T) {
	var counter atomix.Uint32
	l := lazyx.NewLazy(func() (int, error) {
		return int(counter.Add(1)), nil
	})

	p, _ := l.Get()
	if *p != 1 {
		t.Fatalf("first Get = %d, want 1", *p)
	}
	l.Reset()
	p, _ = l.Get()
	if *p != 2 {
		t.Fatalf("Get after Reset = %d, want 2", *p)
	}
}

func TestLazyCopiesShareCore(t *testing.T) {
	var counter atomix.Uint32
	l := lazyx.NewLazy(func() (int, error) {
		return int(counter.Add(1)), nil
	})
	m := l // relocated handle, same pinned core

	p, _ := l.Get()
	q, _ := m.Get()
	if p != q {
		t.Fatalf("copied handle returned a different pointer")
	}
	if got := counter.Load(); got != 1 {
		t.Fatalf("initializer ran %d times across handles, want 1", got)
	}
	if !m.Initialized() {
		t.Fatalf("copy does not observe initialization")
	}
}

func TestLazyActionOnce(t *testing.T) {
	var counter atomix.Uint32
	a := lazyx.NewLazyAction(func() error {
		counter.Add(1)
		return nil
	})

	if got := counter.Load(); got != 0 {
		t.Fatalf("operation ran %d times at construction, want 0", got)
	}
	if err := a.Get(); err != nil {
		t.Fatalf("first Get error = %v", err)
	}
	if err := a.Get(); err != nil {
		t.Fatalf("second Get error = %v", err)
	}
	if got := counter.Load(); got != 1 {
		t.Fatalf("operation ran %d times, want 1", got)
	}
	if !a.Initialized() {
		t.Fatalf("Initialized() = false after successful Get")
	}
}

func TestLazyActionFailureEnablesRetry(t *testing.T) {
	var counter atomix.Uint32
	boom := errors.New("boom")
	a := lazyx.NewLazyAction(func() error {
		if counter.Add(1) == 1 {
			return boom
		}
		return nil
	})

	if err := a.Get(); err != boom {
		t.Fatalf("first Get error = %v, want %v", err, boom)
	}
	if a.Initialized() {
		t.Fatalf("Initialized() = true after failed Get")
	}
	if err := a.Get(); err != nil {
		t.Fatalf("retry Get error = %v, want nil", err)
	}
	if got := counter.Load(); got != 2 {
		t.Fatalf("operation ran %d times, want 2", got)
	}
}

func TestLazyActionReset(t *testing.T) {
	var counter atomix.Uint32
	a := lazyx.NewLazyAction(func() error {
		counter.Add(1)
		return nil
	})

	a.Get()
	a.Reset()
	if a.Initialized() {
		t.Fatalf("Initialized() = true after Reset")
	}
	a.Get()
	if got := counter.Load(); got != 2 {
		t.Fatalf("operation ran %d times across Reset, want 2", got)
	}
}
