// ABOUTME: Statically linked plugin implementations selected by name from a descriptor
// ABOUTME: echo returns the prompt; shell runs it with sh -c and returns combined output

package plugin

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"slices"
	"strings"

	"github.com/mauromedda/pichat/pkg/tui/fuzzy"
)

// builtinFactory builds an implementation from descriptor options.
type builtinFactory func(opts map[string]string) invoker

var builtins = map[string]builtinFactory{
	"echo":  newEcho,
	"shell": newShell,
}

// BuiltinNames returns the registered builtin names, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func lookupBuiltin(name string, opts map[string]string) (invoker, error) {
	factory, ok := builtins[name]
	if !ok {
		if guess, ok := fuzzy.Best(name, BuiltinNames()); ok {
			return nil, fmt.Errorf("unknown builtin %q (did you mean %q?)", name, guess)
		}
		return nil, fmt.Errorf("unknown builtin %q", name)
	}
	return factory(opts), nil
}

type echo struct {
	prefix string
}

func newEcho(opts map[string]string) invoker {
	return echo{prefix: opts["prefix"]}
}

func (e echo) invoke(_ context.Context, prompt string) (string, error) {
	return e.prefix + prompt, nil
}

type shell struct {
	interpreter string
}

func newShell(opts map[string]string) invoker {
	sh := opts["interpreter"]
	if sh == "" {
		sh = "sh"
	}
	return shell{interpreter: sh}
}

// invoke runs the prompt as a script. A non-zero exit is not a failure:
// the exit status is appended to the output, as a terminal would show it.
func (s shell) invoke(ctx context.Context, prompt string) (string, error) {
	path, err := exec.LookPath(s.interpreter)
	if err != nil {
		return "", fmt.Errorf("%s not found on PATH: %w", s.interpreter, err)
	}
	cmd := exec.CommandContext(ctx, path, "-c", prompt)

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	err = cmd.Run()
	out := strings.TrimRight(buf.String(), "\n")
	if err != nil {
		if ctx.Err() != nil {
			return out, fmt.Errorf("command interrupted: %w", ctx.Err())
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return out, fmt.Errorf("run %s: %w", s.interpreter, err)
		}
		return out + "\n" + err.Error(), nil
	}
	return out, nil
}
