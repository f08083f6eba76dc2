// ABOUTME: Tests for built-in theme lookup and the global theme pointer
// ABOUTME: Not parallel: Use and Set mutate process-wide state

package theme

import (
	"slices"
	"testing"
)

func TestBuiltinNames(t *testing.T) {
	t.Parallel()

	got := BuiltinNames()
	if !slices.Equal(got, []string{"default", "mono"}) {
		t.Errorf("BuiltinNames() = %v", got)
	}
}

func TestBuiltin_ReturnsFreshCopy(t *testing.T) {
	t.Parallel()

	a, ok := Builtin("default")
	if !ok {
		t.Fatal("default theme missing")
	}
	b, _ := Builtin("default")
	if a == b {
		t.Error("Builtin should return distinct values")
	}
	if _, ok := Builtin("neon"); ok {
		t.Error("unknown theme should not resolve")
	}
}

func TestUse(t *testing.T) {
	saved := Current()
	defer Set(saved)

	if err := Use("mono"); err != nil {
		t.Fatalf("Use(mono) error: %v", err)
	}
	if Current().Name != "mono" {
		t.Errorf("Current().Name = %q, want mono", Current().Name)
	}
	if err := Use("neon"); err == nil {
		t.Error("Use(neon) should fail")
	}
	if Current().Name != "mono" {
		t.Error("failed Use must not change the theme")
	}

	Set(nil)
	if Current() == nil {
		t.Error("Set(nil) must be ignored")
	}
}
