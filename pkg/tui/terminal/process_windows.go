// ABOUTME: Windows stub for ProcessTerminal resize handling.
// ABOUTME: Windows has no SIGWINCH; size is re-read on every frame instead.

//go:build windows

package terminal

func (t *ProcessTerminal) startResizeListener() {}
