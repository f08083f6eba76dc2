// ABOUTME: Tests for the builtin registry and its implementations

package plugin

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestBuiltinNames(t *testing.T) {
	t.Parallel()

	if got, want := BuiltinNames(), []string{"echo", "shell"}; !slices.Equal(got, want) {
		t.Errorf("BuiltinNames() = %v, want %v", got, want)
	}
}

func TestLookupBuiltin_Unknown(t *testing.T) {
	t.Parallel()

	_, err := lookupBuiltin("zzz", nil)
	if err == nil || strings.Contains(err.Error(), "did you mean") {
		t.Errorf("err = %v, want plain unknown builtin", err)
	}
	_, err = lookupBuiltin("shl", nil)
	if err == nil || !strings.Contains(err.Error(), `"shell"`) {
		t.Errorf("err = %v, want suggestion for shell", err)
	}
}

func TestEcho(t *testing.T) {
	t.Parallel()

	out, err := newEcho(nil).invoke(context.Background(), "same")
	if err != nil || out != "same" {
		t.Errorf("echo = (%q, %v), want (\"same\", nil)", out, err)
	}
}

func TestShell(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prompt string
		want   string
	}{
		{name: "output", prompt: "echo hi; echo there", want: "hi\nthere"},
		{name: "stderr merged", prompt: "echo oops >&2", want: "oops"},
		{name: "non-zero exit", prompt: "echo out; exit 2", want: "out\nexit status 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, err := newShell(nil).invoke(context.Background(), tt.prompt)
			if err != nil {
				t.Fatalf("invoke: %v", err)
			}
			if out != tt.want {
				t.Errorf("invoke = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestShell_MissingInterpreter(t *testing.T) {
	t.Parallel()

	p := &Plugin{
		Descriptor: Descriptor{Name: "broken"},
		impl:       newShell(map[string]string{"interpreter": "no-such-shell-xyz"}),
	}
	_, err := p.Invoke(context.Background(), "true")

	var ie *InvocationError
	if !errors.As(err, &ie) {
		t.Fatalf("expected *InvocationError, got %T: %v", err, err)
	}
	if ie.Plugin != "broken" {
		t.Errorf("Plugin = %q, want broken", ie.Plugin)
	}
}
