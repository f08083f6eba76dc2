// ABOUTME: Screen layout: status line, transcript, separator rule and editor
// ABOUTME: The rule weights flip with focus so the active pane is marked

package app

import (
	"strings"

	"github.com/mauromedda/pichat/pkg/tui"
	"github.com/mauromedda/pichat/pkg/tui/theme"
	"github.com/mauromedda/pichat/pkg/tui/width"
)

const (
	focusHint    = "Press TAB to switch between editor and transcript"
	loadingLabel = "Loading..."
)

// separatorRow is the row of the rule between transcript and editor.
func separatorRow(height int) int {
	return height * 3 / 4
}

// Render draws one frame into scr.
func (c *Controller) Render(scr *tui.Screen) {
	w, h := scr.Size()
	th := theme.Current()
	scr.Clear()

	top, mid := theme.RuleUnfocused, theme.RuleFocused
	if c.focus == FocusTranscript {
		top, mid = mid, top
	}

	msg := focusHint
	if c.loading {
		msg = loadingLabel + " " + th.Spinner.Render(c.spinner.Frame())
	}
	fill := max(0, w-width.VisibleWidth(msg))
	scr.SetLine(0, th.Status.Render(msg)+th.Rule.Render(strings.Repeat(top, fill)))

	sep := separatorRow(h)
	c.transcript.Render(scr, 1, max(0, sep-1))
	scr.SetLine(sep, th.Rule.Render(strings.Repeat(mid, w)))
	c.editor.Render(scr, sep+1, max(0, h-sep-1))

	if c.focus != FocusEditor {
		scr.HideCursor()
	}
}
