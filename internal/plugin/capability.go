// ABOUTME: Capability is the one operation a chat backend offers: prompt in, text out
// ABOUTME: Plugin binds a loaded descriptor to the implementation that serves it

package plugin

import (
	"context"
	"errors"
)

// Capability turns a prompt into a result. Implementations may block;
// callers run Invoke off the render goroutine.
type Capability interface {
	Name() string
	Invoke(ctx context.Context, prompt string) (string, error)
}

// invoker is the implementation side of a plugin, without naming.
type invoker interface {
	invoke(ctx context.Context, prompt string) (string, error)
}

// Plugin is a loaded descriptor. It satisfies Capability.
type Plugin struct {
	// Path is the resolved descriptor file.
	Path       string
	Descriptor Descriptor

	impl invoker
}

// Name returns the descriptor's display name.
func (p *Plugin) Name() string {
	return p.Descriptor.Name
}

// Invoke runs the plugin. Every failure is returned as *InvocationError.
func (p *Plugin) Invoke(ctx context.Context, prompt string) (string, error) {
	out, err := p.impl.invoke(ctx, prompt)
	if err == nil {
		return out, nil
	}
	var ie *InvocationError
	if errors.As(err, &ie) {
		return out, err
	}
	return out, &InvocationError{Plugin: p.Name(), Err: err}
}
