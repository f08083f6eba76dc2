// ABOUTME: Typed errors for plugin loading and invocation
// ABOUTME: Both are recoverable; the caller reports them and keeps running

package plugin

import (
	"errors"
	"fmt"
	"io/fs"
)

// LoadError reports a descriptor that could not be found or evaluated.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if errors.Is(e.Err, fs.ErrNotExist) {
		return fmt.Sprintf("plugin file not found: %s", e.Path)
	}
	return fmt.Sprintf("could not load plugin from %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// InvocationError reports a failed call into a loaded plugin.
type InvocationError struct {
	Plugin string
	Err    error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("plugin %s: %v", e.Plugin, e.Err)
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}
