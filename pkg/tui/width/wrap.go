// ABOUTME: Word wrapping that treats explicit line breaks as hard boundaries
// ABOUTME: Blank input lines survive as exactly one empty output line each

package width

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

const tabWidth = 4

// SplitLines splits text on \r\n, \r and \n. A trailing break does not
// produce an extra empty segment, and empty text yields no segments.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// WrapPreservingNewlines wraps every segment of text to maxWidth cells.
// Whitespace-only segments become a single "" line.
func WrapPreservingNewlines(text string, maxWidth int) []string {
	var out []string
	for _, line := range SplitLines(text) {
		if strings.TrimSpace(line) == "" {
			out = append(out, "")
			continue
		}
		out = append(out, Wrap(line, maxWidth)...)
	}
	return out
}

// Wrap greedily fills lines of at most maxWidth cells from the words of
// a single line. Whitespace inside a line is kept, whitespace at a break
// is dropped, and a word wider than maxWidth is split across lines.
// A blank line wraps to nothing.
func Wrap(line string, maxWidth int) []string {
	if maxWidth < 1 {
		maxWidth = 1
	}
	line = strings.ReplaceAll(line, "\t", strings.Repeat(" ", tabWidth))

	var lines []string
	var cur strings.Builder
	curWidth := 0
	flush := func() {
		lines = append(lines, strings.TrimRightFunc(cur.String(), unicode.IsSpace))
		cur.Reset()
		curWidth = 0
	}

	for _, chunk := range chunks(line) {
		cw := VisibleWidth(chunk)
		if isSpaceChunk(chunk) {
			switch {
			case curWidth == 0:
				// leading whitespace on a line is dropped
			case curWidth+cw > maxWidth:
				flush()
			default:
				cur.WriteString(chunk)
				curWidth += cw
			}
			continue
		}

		if curWidth+cw <= maxWidth {
			cur.WriteString(chunk)
			curWidth += cw
			continue
		}
		if curWidth > 0 {
			flush()
		}
		for cw > maxWidth {
			head := Slice(chunk, 0, maxWidth)
			if head == "" {
				// A single grapheme wider than maxWidth; emit it alone.
				head, _, _, _ = uniseg.FirstGraphemeClusterInString(chunk, -1)
			}
			lines = append(lines, head)
			chunk = chunk[len(head):]
			cw = VisibleWidth(chunk)
		}
		cur.WriteString(chunk)
		curWidth = cw
	}
	if curWidth > 0 {
		flush()
	}
	return lines
}

// chunks splits s into alternating runs of whitespace and non-whitespace.
func chunks(s string) []string {
	var out []string
	start := 0
	prevSpace := false
	for i, r := range s {
		sp := unicode.IsSpace(r)
		if i > start && sp != prevSpace {
			out = append(out, s[start:i])
			start = i
		}
		prevSpace = sp
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}

func isSpaceChunk(c string) bool {
	return strings.TrimSpace(c) == ""
}
