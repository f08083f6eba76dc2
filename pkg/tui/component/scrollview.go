// ABOUTME: ScrollView is a line buffer behind a viewport with a cursor line, gutter and scrollbar
// ABOUTME: Owns scroll bookkeeping; Editor and Transcript build on it

package component

import (
	"fmt"
	"math"
	"strings"

	"github.com/mauromedda/pichat/pkg/tui"
	"github.com/mauromedda/pichat/pkg/tui/key"
	"github.com/mauromedda/pichat/pkg/tui/theme"
	"github.com/mauromedda/pichat/pkg/tui/width"
)

const (
	// gutterWidth is "%4d" plus the separator.
	gutterWidth = 5
	// thumbHeight is the fixed scrollbar thumb size in rows.
	thumbHeight = 4
)

// ScrollView is an ordered list of lines shown through a window of
// height rows starting at scroll. It is not safe for concurrent use; the
// owning controller serializes all access.
type ScrollView struct {
	lines           []string
	scroll          int
	cursorLine      int
	height          int
	width           int
	showLineNumbers bool

	// renderLine fits one stored line into the text area.
	renderLine func(idx int, line string, textWidth int) string
}

// NewScrollView creates an empty view.
func NewScrollView(showLineNumbers bool) *ScrollView {
	v := &ScrollView{showLineNumbers: showLineNumbers}
	v.renderLine = func(_ int, line string, textWidth int) string {
		return width.Slice(line, 0, textWidth)
	}
	return v
}

// SetWidth sets the viewport width used for wrapping and rendering.
func (v *ScrollView) SetWidth(w int) {
	v.width = w
}

// Width returns the viewport width.
func (v *ScrollView) Width() int {
	return v.width
}

// Height returns the viewport height recorded by the last render.
func (v *ScrollView) Height() int {
	return v.height
}

// TextWidth is the number of columns available to line content: the
// viewport width minus the gutter and the scrollbar column.
func (v *ScrollView) TextWidth() int {
	reserved := 1
	if v.showLineNumbers {
		reserved = gutterWidth + 1
	}
	return max(1, v.width-reserved)
}

// Len returns the number of lines.
func (v *ScrollView) Len() int {
	return len(v.lines)
}

// Lines returns a copy of the lines.
func (v *ScrollView) Lines() []string {
	out := make([]string, len(v.lines))
	copy(out, v.lines)
	return out
}

// Scroll returns the index of the first visible line.
func (v *ScrollView) Scroll() int {
	return v.scroll
}

// CursorLine returns the index of the cursor line.
func (v *ScrollView) CursorLine() int {
	return v.cursorLine
}

// Append wraps text to TextWidth and appends the result. Explicit line
// breaks are hard boundaries and every blank line is kept as one empty
// line. The cursor line does not move.
func (v *ScrollView) Append(text string) {
	v.lines = append(v.lines, width.WrapPreservingNewlines(text, v.TextWidth())...)
}

// Text joins all lines with "\n".
func (v *ScrollView) Text() string {
	return strings.Join(v.lines, "\n")
}

// HandleKey moves the cursor line for Up and Down. Other keys are ignored.
func (v *ScrollView) HandleKey(k key.Key) {
	switch k.Type {
	case key.KeyUp:
		v.cursorLine = max(0, v.cursorLine-1)
	case key.KeyDown:
		v.cursorLine = min(v.cursorLine+1, max(0, len(v.lines)-1))
	}
}

// HandleScroll brings the cursor line back into the viewport.
func (v *ScrollView) HandleScroll() {
	if v.cursorLine-v.scroll < 0 {
		v.scroll = v.cursorLine
	} else if excess := v.cursorLine - v.scroll - max(0, v.height-1); excess > 0 {
		v.scroll += excess
	}
	v.scroll = max(0, v.scroll)
}

// Render draws height rows starting at screen row y.
func (v *ScrollView) Render(scr *tui.Screen, y, height int) {
	w, _ := scr.Size()
	v.width = w
	for i, row := range v.RenderRows(height) {
		scr.SetLine(y+i, row)
	}
}

// RenderRows records height as the viewport height, restores the scroll
// invariant and returns the styled rows for the viewport.
func (v *ScrollView) RenderRows(height int) []string {
	v.height = max(0, height)
	v.HandleScroll()

	th := theme.Current()
	tw := v.TextWidth()
	scrollbar := len(v.lines) > v.height
	top := v.thumbTop(v.height)

	rows := make([]string, v.height)
	for i := range rows {
		var b strings.Builder
		idx := v.scroll + i
		exists := idx < len(v.lines)

		if v.showLineNumbers {
			if exists {
				b.WriteString(th.LineNumber.Render(fmt.Sprintf("%4d", idx+1)))
			} else {
				b.WriteString("    ")
			}
			b.WriteString(th.Separator.Render(theme.GutterSeparator))
		}

		line := ""
		if exists {
			line = v.renderLine(idx, v.lines[idx], tw)
		}
		if scrollbar {
			b.WriteString(width.PadRight(line, tw))
			if i >= top && i < top+thumbHeight {
				b.WriteString(th.Thumb.Render(theme.ThumbGlyph))
			} else {
				b.WriteString(th.Track.Render(theme.TrackGlyph))
			}
		} else {
			b.WriteString(line)
		}
		rows[i] = b.String()
	}
	return rows
}

// thumbTop returns the first row of the scrollbar thumb.
func (v *ScrollView) thumbTop(height int) int {
	last := height - thumbHeight
	maxScroll := len(v.lines) - height
	if maxScroll <= 0 || v.scroll >= maxScroll {
		return last
	}
	top := int(math.Round(float64(v.scroll) / float64(maxScroll) * float64(last)))
	return min(last, top)
}
