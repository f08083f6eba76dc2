// ABOUTME: Screen is the frame buffer every view renders rows into before a flush.
// ABOUTME: Flush repaints only rows that changed since the last frame, inside CSI 2026 synchronized output.

package tui

import (
	"io"
	"slices"
	"strconv"
	"strings"
)

const (
	syncBegin     = "\x1b[?2026h"
	syncEnd       = "\x1b[?2026l"
	hideCursor    = "\x1b[?25l"
	showCursor    = "\x1b[?25h"
	clearScreen   = "\x1b[2J"
	resetEraseEOL = "\x1b[0m\x1b[K"
	altScreenOn   = "\x1b[?1049h"
	altScreenOff  = "\x1b[?1049l"
)

// Screen collects one frame of rows and a caret position, then writes
// the difference against the previous frame to w.
type Screen struct {
	w      io.Writer
	width  int
	height int

	rows    []string
	prev    []string // nil forces a full repaint
	cursorX int
	cursorY int
	caret   bool
}

// NewScreen creates a Screen of the given size drawing to w.
func NewScreen(w io.Writer, width, height int) *Screen {
	s := &Screen{w: w}
	s.Resize(width, height)
	return s
}

// Size returns the screen dimensions in cells.
func (s *Screen) Size() (width, height int) {
	return s.width, s.height
}

// Resize changes the dimensions and forces a full repaint on the next flush.
func (s *Screen) Resize(width, height int) {
	s.width = max(width, 0)
	s.height = max(height, 0)
	s.rows = make([]string, s.height)
	s.prev = nil
}

// Invalidate forces a full repaint on the next flush.
func (s *Screen) Invalidate() {
	s.prev = nil
}

// Clear starts a new blank frame with the caret hidden.
func (s *Screen) Clear() {
	for i := range s.rows {
		s.rows[i] = ""
	}
	s.caret = false
}

// SetLine sets the content of row y. Rows outside the screen are ignored.
// The caller is responsible for keeping content within the screen width.
func (s *Screen) SetLine(y int, content string) {
	if y < 0 || y >= len(s.rows) {
		return
	}
	s.rows[y] = content
}

// Line returns the content of row y in the frame under construction.
func (s *Screen) Line(y int) string {
	if y < 0 || y >= len(s.rows) {
		return ""
	}
	return s.rows[y]
}

// SetCursor shows the terminal caret at (x, y) after the next flush.
func (s *Screen) SetCursor(x, y int) {
	s.cursorX = x
	s.cursorY = y
	s.caret = true
}

// HideCursor keeps the caret hidden after the next flush.
func (s *Screen) HideCursor() {
	s.caret = false
}

// Cursor returns the caret position and whether it is visible.
func (s *Screen) Cursor() (x, y int, visible bool) {
	return s.cursorX, s.cursorY, s.caret
}

// Flush writes the frame to the terminal.
func (s *Screen) Flush() error {
	var b strings.Builder
	b.WriteString(syncBegin)
	b.WriteString(hideCursor)

	full := s.prev == nil
	if full {
		b.WriteString(clearScreen)
	}
	for y, row := range s.rows {
		if !full && s.prev[y] == row {
			continue
		}
		moveTo(&b, 0, y)
		b.WriteString(row)
		b.WriteString(resetEraseEOL)
	}

	if s.caret {
		moveTo(&b, s.cursorX, s.cursorY)
		b.WriteString(showCursor)
	}
	b.WriteString(syncEnd)

	s.prev = slices.Clone(s.rows)
	_, err := io.WriteString(s.w, b.String())
	return err
}

// EnterAltScreen switches to the alternate screen buffer.
func (s *Screen) EnterAltScreen() error {
	s.prev = nil
	_, err := io.WriteString(s.w, altScreenOn)
	return err
}

// LeaveAltScreen restores the main screen buffer and shows the caret.
func (s *Screen) LeaveAltScreen() error {
	_, err := io.WriteString(s.w, altScreenOff+showCursor)
	return err
}

// moveTo emits an absolute CUP sequence for the 0-based cell (x, y).
func moveTo(b *strings.Builder, x, y int) {
	var num [20]byte
	b.WriteString("\x1b[")
	b.Write(strconv.AppendInt(num[:0], int64(y+1), 10))
	b.WriteByte(';')
	b.Write(strconv.AppendInt(num[:0], int64(x+1), 10))
	b.WriteByte('H')
}
