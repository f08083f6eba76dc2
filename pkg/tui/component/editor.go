// ABOUTME: Multi-line text editor built on ScrollView with a per-line cursor column
// ABOUTME: Lines are stored verbatim; long lines scroll horizontally around the caret

package component

import (
	"github.com/mauromedda/pichat/pkg/tui"
	"github.com/mauromedda/pichat/pkg/tui/key"
	"github.com/mauromedda/pichat/pkg/tui/width"
)

// Editor is a line editor over a ScrollView. The column counts runes and
// always satisfies 0 <= column <= len(current line).
type Editor struct {
	view   *ScrollView
	column int
}

// NewEditor creates an editor holding a single empty line.
func NewEditor(showLineNumbers bool) *Editor {
	ed := &Editor{view: NewScrollView(showLineNumbers)}
	ed.view.lines = []string{""}
	ed.view.renderLine = ed.clipLine
	return ed
}

// View exposes the underlying ScrollView for layout queries.
func (ed *Editor) View() *ScrollView {
	return ed.view
}

// Text returns the unwrapped buffer with "\n" between lines.
func (ed *Editor) Text() string {
	return ed.view.Text()
}

// Lines returns a copy of the buffer lines.
func (ed *Editor) Lines() []string {
	return ed.view.Lines()
}

// CursorPos returns the cursor as (line, column).
func (ed *Editor) CursorPos() (int, int) {
	return ed.view.cursorLine, ed.column
}

// Clear resets the buffer to one empty line with the cursor at the origin.
func (ed *Editor) Clear() {
	ed.view.lines = []string{""}
	ed.view.cursorLine = 0
	ed.view.scroll = 0
	ed.column = 0
}

// HandleInput parses raw terminal input and applies it.
func (ed *Editor) HandleInput(data string) {
	ed.HandleKey(key.ParseKey(data))
}

// HandleKey applies one editing or navigation key.
func (ed *Editor) HandleKey(k key.Key) {
	v := ed.view
	line := []rune(v.lines[v.cursorLine])

	switch k.Type {
	case key.KeyRight:
		ed.column = min(len(line), ed.column+1)
	case key.KeyLeft:
		ed.column = max(0, ed.column-1)
	case key.KeyUp, key.KeyDown:
		v.HandleKey(k)
		ed.column = min(ed.column, runeLen(v.lines[v.cursorLine]))
	case key.KeyHome:
		ed.column = 0
	case key.KeyEnd:
		ed.column = len(line)
	case key.KeyEnter:
		ed.splitLine(line)
	case key.KeyBackspace:
		ed.backspace(line)
	case key.KeyRune:
		if !k.Printable() {
			return
		}
		out := make([]rune, 0, len(line)+1)
		out = append(out, line[:ed.column]...)
		out = append(out, k.Rune)
		out = append(out, line[ed.column:]...)
		v.lines[v.cursorLine] = string(out)
		ed.column++
	}
}

// splitLine breaks the current line at the column; the suffix becomes a
// new line below and the cursor moves to its start.
func (ed *Editor) splitLine(line []rune) {
	v := ed.view
	i := v.cursorLine
	prefix, suffix := string(line[:ed.column]), string(line[ed.column:])

	v.lines = append(v.lines, "")
	copy(v.lines[i+2:], v.lines[i+1:])
	v.lines[i] = prefix
	v.lines[i+1] = suffix

	v.cursorLine++
	ed.column = 0
}

func (ed *Editor) backspace(line []rune) {
	v := ed.view
	if ed.column > 0 {
		v.lines[v.cursorLine] = string(line[:ed.column-1]) + string(line[ed.column:])
		ed.column--
		return
	}
	if v.cursorLine == 0 {
		return
	}

	i := v.cursorLine
	prevLen := runeLen(v.lines[i-1])
	v.lines[i-1] += v.lines[i]
	v.lines = append(v.lines[:i], v.lines[i+1:]...)
	v.cursorLine--
	ed.column = prevLen
	v.scroll = max(0, v.scroll-1)
}

// Render draws the buffer and places the terminal caret on the cursor.
func (ed *Editor) Render(scr *tui.Screen, y, height int) {
	ed.view.Render(scr, y, height)

	x := ed.column - ed.hscroll()
	if ed.view.showLineNumbers {
		x += gutterWidth
	}
	scr.SetCursor(x, y+ed.view.cursorLine-ed.view.scroll)
}

// hscroll is how far the cursor line is shifted left so the caret fits
// inside the text area.
func (ed *Editor) hscroll() int {
	return max(0, ed.column-ed.view.TextWidth()+1)
}

// clipLine shows the cursor line from hscroll and every other line from
// its first column, both cut to the text width.
func (ed *Editor) clipLine(idx int, line string, textWidth int) string {
	if idx == ed.view.cursorLine {
		return width.Slice(line, ed.hscroll(), textWidth)
	}
	return width.Slice(line, 0, textWidth)
}

func runeLen(s string) int {
	return len([]rune(s))
}
