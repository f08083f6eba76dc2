// ABOUTME: Execute: slash commands run inline; prompts start one background invocation
// ABOUTME: complete applies the result on the control goroutine and replays deferred keys

package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/mauromedda/pichat/internal/commands"
	"github.com/mauromedda/pichat/internal/journal"
	"github.com/mauromedda/pichat/internal/log"
	"github.com/mauromedda/pichat/internal/plugin"
)

const noPluginMessage = "No plugin loaded."

var errNoLoader = errors.New("plugin loading not configured")

// Execute submits the editor text. Text starting with the command prefix
// clears the editor and runs the command. Anything else goes to the
// active plugin in the background; the call returns immediately.
func (c *Controller) Execute() error {
	text := c.editor.Text()
	if commands.IsCommand(text) {
		c.editor.Clear()
		return c.runCommand(text)
	}

	if c.active == nil {
		c.transcript.Append(noPluginMessage)
		return nil
	}
	if !c.busy.TryAcquire(1) {
		log.Debug("execute refused: invocation in flight")
		return nil
	}
	c.loading = true
	c.spinner.Reset()

	capability := c.active
	log.Debug("invoking %s with %d bytes", capability.Name(), len(text))
	go c.invoke(context.WithoutCancel(c.baseCtx), capability, text)
	return nil
}

// runCommand dispatches a slash command and shows its output or error.
func (c *Controller) runCommand(text string) error {
	ctx := &commands.Context{
		ClearTranscript: c.transcript.Clear,
		LoadPlugin:      c.LoadPlugin,
		ActivePlugin:    c.ActivePlugin,
	}
	out, err := c.cmds.Dispatch(ctx, text)
	switch {
	case errors.Is(err, ErrExit):
		return ErrExit
	case err != nil:
		c.transcript.Append(err.Error())
	case out != "":
		c.transcript.Append(out)
	}
	return nil
}

// invoke runs on its own goroutine. It never touches controller state
// except to send exactly one result.
func (c *Controller) invoke(ctx context.Context, capability plugin.Capability, prompt string) {
	res := result{plugin: capability.Name(), prompt: prompt}
	defer func() {
		if r := recover(); r != nil {
			res.output = ""
			res.err = &plugin.InvocationError{Plugin: res.plugin, Err: fmt.Errorf("panic: %v", r)}
		}
		c.results <- res
	}()
	res.output, res.err = capability.Invoke(ctx, prompt)
}

// complete applies a finished invocation.
func (c *Controller) complete(res result) error {
	c.loading = false
	c.busy.Release(1)

	raw := res.output
	if res.err != nil {
		log.Warn("invocation failed: %v", res.err)
		raw = errorBlock(res.err)
	}
	shown := raw
	if res.err == nil && c.markdown != nil {
		shown = c.markdown.Render(raw, c.transcript.TextWidth())
	}
	c.transcript.Append(shown)

	if c.journal != nil {
		entry := journal.Entry{Plugin: res.plugin, Input: res.prompt, Output: raw}
		if err := c.journal.Record(entry); err != nil {
			log.Error("journal: %v", err)
		}
	}
	return c.replayDeferred()
}

func errorBlock(err error) string {
	return "An error occurred while executing plugin:\n" + err.Error()
}
