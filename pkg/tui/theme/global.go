// ABOUTME: Lock-free global theme pointer using atomic.Pointer
// ABOUTME: Current() returns the active theme; Set() swaps it atomically

package theme

import (
	"fmt"
	"sync/atomic"
)

var current atomic.Pointer[Theme]

func init() {
	current.Store(Default())
}

// Current returns the active theme. Never returns nil.
func Current() *Theme {
	return current.Load()
}

// Set atomically replaces the active theme.
func Set(t *Theme) {
	if t == nil {
		return
	}
	current.Store(t)
}

// Use activates the named built-in theme.
func Use(name string) error {
	t, ok := Builtin(name)
	if !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", name, BuiltinNames())
	}
	Set(t)
	return nil
}
