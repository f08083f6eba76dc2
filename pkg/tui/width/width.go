// ABOUTME: VisibleWidth computes the display width of strings with grapheme-aware segmentation
// ABOUTME: Fast path for plain ASCII; ANSI escape sequences contribute zero width

package width

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// VisibleWidth returns the number of terminal cells s occupies.
func VisibleWidth(s string) int {
	if isPlainASCII(s) {
		return len(s)
	}
	stripped := StripANSI(s)
	w := 0
	state := -1
	for len(stripped) > 0 {
		var cluster string
		cluster, stripped, _, state = uniseg.FirstGraphemeClusterInString(stripped, state)
		w += graphemeWidth(cluster)
	}
	return w
}

// isPlainASCII reports whether s holds only printable ASCII (0x20-0x7E).
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}

// graphemeWidth returns the display width of one grapheme cluster,
// taken from its first rune.
func graphemeWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}

// Slice returns the plain-text substring covering display columns
// [start, start+n). A grapheme straddling either edge is dropped.
func Slice(s string, start, n int) string {
	if n <= 0 {
		return ""
	}
	if isPlainASCII(s) {
		if start >= len(s) {
			return ""
		}
		return s[start:min(len(s), start+n)]
	}

	var b strings.Builder
	col := 0
	state := -1
	for len(s) > 0 && col < start+n {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		cw := graphemeWidth(cluster)
		if col >= start && col+cw <= start+n {
			b.WriteString(cluster)
		}
		col += cw
	}
	return b.String()
}

// PadRight appends spaces to s until it is w cells wide.
func PadRight(s string, w int) string {
	if pad := w - VisibleWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
