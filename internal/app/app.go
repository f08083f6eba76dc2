// ABOUTME: Controller: focus routing between editor and transcript, busy guard and deferred keys
// ABOUTME: HandleKey is a pure state transition; Run in run.go drives it from the terminal

package app

import (
	"context"

	"golang.org/x/sync/semaphore"

	"github.com/mauromedda/pichat/internal/commands"
	"github.com/mauromedda/pichat/internal/journal"
	"github.com/mauromedda/pichat/internal/log"
	"github.com/mauromedda/pichat/internal/plugin"
	"github.com/mauromedda/pichat/internal/render"
	"github.com/mauromedda/pichat/pkg/tui/component"
	"github.com/mauromedda/pichat/pkg/tui/key"
)

// ErrExit ends Run without an error. HandleKey returns it for /exit and Ctrl+C.
var ErrExit = commands.ErrExit

// Focus names the view that receives keys.
type Focus int

const (
	FocusEditor Focus = iota
	FocusTranscript
)

// String returns the focus display name.
func (f Focus) String() string {
	switch f {
	case FocusEditor:
		return "editor"
	case FocusTranscript:
		return "transcript"
	default:
		return "unknown"
	}
}

// Options bundles the controller's collaborators. Journal and Markdown
// are optional.
type Options struct {
	Loader      *plugin.Loader
	Journal     *journal.Journal
	Markdown    *render.Markdown
	LineNumbers bool
}

// result is what an invocation goroutine reports back.
type result struct {
	plugin string
	prompt string
	output string
	err    error
}

// Controller owns both views, the active plugin and the loading state.
// All methods must be called from one goroutine; invocations report back
// through the results channel and are applied by complete.
type Controller struct {
	editor     *component.Editor
	transcript *component.Transcript
	spinner    *component.Spinner
	cmds       *commands.Registry

	loader     *plugin.Loader
	journal    *journal.Journal
	markdown   *render.Markdown
	active     plugin.Capability
	activePath string

	focus    Focus
	loading  bool
	busy     *semaphore.Weighted
	results  chan result
	deferred []key.Key

	// baseCtx carries values into invocations; its cancellation does not.
	baseCtx context.Context
}

// New creates an idle, editor-focused controller with no active plugin.
func New(opts Options) *Controller {
	return &Controller{
		editor:     component.NewEditor(opts.LineNumbers),
		transcript: component.NewTranscript(),
		spinner:    component.NewSpinner(),
		cmds:       commands.NewRegistry(),
		loader:     opts.Loader,
		journal:    opts.Journal,
		markdown:   opts.Markdown,
		busy:       semaphore.NewWeighted(1),
		results:    make(chan result, 1),
		baseCtx:    context.Background(),
	}
}

// Editor returns the input view.
func (c *Controller) Editor() *component.Editor { return c.editor }

// Transcript returns the output view.
func (c *Controller) Transcript() *component.Transcript { return c.transcript }

// Focus returns the view receiving keys.
func (c *Controller) Focus() Focus { return c.focus }

// Loading reports whether an invocation is in flight.
func (c *Controller) Loading() bool { return c.loading }

// ActivePlugin returns the resolved path of the active plugin, or "".
func (c *Controller) ActivePlugin() string { return c.activePath }

// LoadPlugin replaces the active plugin. On failure the previous plugin
// stays active and the *plugin.LoadError is returned.
func (c *Controller) LoadPlugin(path string) error {
	if c.loader == nil {
		return &plugin.LoadError{Path: path, Err: errNoLoader}
	}
	p, err := c.loader.Load(path)
	if err != nil {
		log.Warn("plugin load failed: %v", err)
		return err
	}
	c.SetPlugin(p, p.Path)
	return nil
}

// SetPlugin installs capability as the active plugin.
func (c *Controller) SetPlugin(capability plugin.Capability, path string) {
	c.active = capability
	c.activePath = path
}

// Resize sets the width both views wrap and clip to.
func (c *Controller) Resize(width, _ int) {
	c.transcript.SetWidth(width)
	c.editor.View().SetWidth(width)
}

// HandleKey applies one key. It returns ErrExit when the user quits and
// never blocks on an invocation.
func (c *Controller) HandleKey(k key.Key) error {
	if k.Type == key.KeyCtrlC {
		return ErrExit
	}

	if c.loading {
		switch {
		case k.Type == key.Execute:
			log.Debug("execute ignored: invocation in flight")
		case k.Type == key.FocusToggle && len(c.deferred) == 0:
			c.toggleFocus()
		default:
			// Queued keys replay against the focus they were typed under,
			// so a toggle waits behind them.
			c.deferred = append(c.deferred, k)
		}
		return nil
	}

	if k.Type == key.FocusToggle {
		c.toggleFocus()
		return nil
	}

	if c.focus == FocusTranscript {
		c.transcript.HandleKey(k)
		return nil
	}
	if k.Type == key.Execute {
		return c.Execute()
	}
	c.editor.HandleKey(k)
	return nil
}

func (c *Controller) toggleFocus() {
	if c.focus == FocusEditor {
		c.focus = FocusTranscript
	} else {
		c.focus = FocusEditor
	}
}

// replayDeferred applies keys queued during the last invocation, in order.
func (c *Controller) replayDeferred() error {
	keys := c.deferred
	c.deferred = nil
	for i, k := range keys {
		if c.loading {
			c.deferred = append(c.deferred, keys[i:]...)
			return nil
		}
		if err := c.HandleKey(k); err != nil {
			return err
		}
	}
	return nil
}
