// ABOUTME: Transcript is the read-only output view: appended, scrolled, never edited
// ABOUTME: Incoming text is stripped of escape sequences and NFC-normalized before wrapping

package component

import (
	"golang.org/x/text/unicode/norm"

	"github.com/mauromedda/pichat/pkg/tui/key"
	"github.com/mauromedda/pichat/pkg/tui/width"
)

// Transcript holds the wrapped lines of every appended message.
type Transcript struct {
	*ScrollView
}

// NewTranscript creates an empty transcript without a line-number gutter.
func NewTranscript() *Transcript {
	return &Transcript{ScrollView: NewScrollView(false)}
}

// Append adds a message. Escape sequences from plugin output would fight
// with the view's own styling, so they are removed first.
func (t *Transcript) Append(text string) {
	t.ScrollView.Append(norm.NFC.String(width.StripANSI(text)))
}

// Clear removes every line and resets the viewport.
func (t *Transcript) Clear() {
	t.lines = nil
	t.cursorLine = 0
	t.scroll = 0
}

// HandleKey adds paging and jump-to-edge keys to the base navigation.
func (t *Transcript) HandleKey(k key.Key) {
	last := max(0, len(t.lines)-1)
	page := max(1, t.height-1)

	switch k.Type {
	case key.KeyPageUp:
		t.cursorLine = max(0, t.cursorLine-page)
	case key.KeyPageDown:
		t.cursorLine = min(last, t.cursorLine+page)
	case key.KeyHome:
		t.cursorLine = 0
	case key.KeyEnd:
		t.cursorLine = last
	default:
		t.ScrollView.HandleKey(k)
	}
}
