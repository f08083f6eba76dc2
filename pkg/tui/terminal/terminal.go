// ABOUTME: Terminal interface for raw mode, size queries, key input, and output.
// ABOUTME: Implemented by ProcessTerminal (real TTY) and VirtualTerminal (tests).

package terminal

import "io"

// Terminal abstracts the low-level driver the engine renders through:
// raw mode toggling, size queries, the raw byte streams in both
// directions, and resize notifications.
type Terminal interface {
	io.ReadWriter
	EnterRawMode() error
	ExitRawMode() error
	Size() (width, height int, err error)
	OnResize(fn func(width, height int))
}
