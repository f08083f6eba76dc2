// ABOUTME: Run is the control loop: one goroutine owns the screen and all state
// ABOUTME: It selects over keys, invocation results, spinner ticks, resizes and cancellation

package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mauromedda/pichat/internal/log"
	"github.com/mauromedda/pichat/pkg/tui"
	"github.com/mauromedda/pichat/pkg/tui/input"
	"github.com/mauromedda/pichat/pkg/tui/terminal"
)

const (
	spinnerInterval = 100 * time.Millisecond
	fallbackWidth   = 80
	fallbackHeight  = 24
)

// Run takes over term until the user exits, input ends or ctx is
// cancelled. The terminal is restored on return.
func (c *Controller) Run(ctx context.Context, term terminal.Terminal) error {
	if err := term.EnterRawMode(); err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer terminal.Restore(term)

	w, h, err := term.Size()
	if err != nil {
		log.Warn("terminal size unavailable, using %dx%d: %v", fallbackWidth, fallbackHeight, err)
		w, h = fallbackWidth, fallbackHeight
	}
	scr := tui.NewScreen(term, w, h)
	if err := scr.EnterAltScreen(); err != nil {
		return fmt.Errorf("entering alt screen: %w", err)
	}
	defer func() { _ = scr.LeaveAltScreen() }()
	c.Resize(w, h)

	resized := make(chan struct{}, 1)
	term.OnResize(func(int, int) {
		select {
		case resized <- struct{}{}:
		default:
		}
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	c.baseCtx = ctx

	rd := input.NewReader(term)
	go func() {
		defer terminal.RecoverGoroutine(term)
		rd.Start(ctx)
	}()

	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()

	for {
		c.Render(scr)
		if err := scr.Flush(); err != nil {
			return fmt.Errorf("flushing screen: %w", err)
		}

		var tick <-chan time.Time
		if c.loading {
			tick = ticker.C
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case k, ok := <-rd.Keys():
			if !ok {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				log.Info("input closed")
				return nil
			}
			if err := c.HandleKey(k); err != nil {
				return exitErr(err)
			}
		case res := <-c.results:
			if err := c.complete(res); err != nil {
				return exitErr(err)
			}
		case <-tick:
			c.spinner.Tick()
		case <-resized:
			if w, h, err := term.Size(); err == nil {
				scr.Resize(w, h)
				c.Resize(w, h)
			}
		}
	}
}

// exitErr maps ErrExit to a clean return.
func exitErr(err error) error {
	if errors.Is(err, ErrExit) {
		return nil
	}
	return err
}

// Quit reports whether err from Run means the user or a signal ended the
// session rather than a failure.
func Quit(err error) bool {
	return err == nil || errors.Is(err, ErrExit) || errors.Is(err, context.Canceled)
}
