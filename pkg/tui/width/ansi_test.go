// ABOUTME: Tests for ANSI stripping
// ABOUTME: Covers SGR, cursor movement, OSC and truncated sequences

package width

import "testing"

func TestStripANSI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", "hello"},
		{"sgr", "\x1b[1;31mred\x1b[0m", "red"},
		{"cursor move", "a\x1b[3;4Hb", "ab"},
		{"osc bel", "\x1b]0;title\x07text", "text"},
		{"osc st", "\x1b]8;;x\x1b\\link", "link"},
		{"two byte", "\x1b7saved", "saved"},
		{"truncated csi", "ok\x1b[12", "ok"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := StripANSI(tt.in); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
