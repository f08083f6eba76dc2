// ABOUTME: Panic recovery helpers that put the terminal back into cooked mode.
// ABOUTME: RestoreOnPanic exits the process; RecoverGoroutine only restores and reports.

package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
)

// resetSequence shows the cursor and leaves the alternate screen.
const resetSequence = "\x1b[?25h\x1b[?1049l"

// Restore is the best-effort cleanup shared by the panic handlers.
func Restore(t Terminal) {
	_, _ = t.Write([]byte(resetSequence))
	_ = t.ExitRawMode()
}

// RestoreOnPanic should be deferred at the top of main. On panic it
// restores the terminal, prints the stack trace and exits with code 1.
func RestoreOnPanic(t Terminal) {
	r := recover()
	if r == nil {
		return
	}

	Restore(t)
	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	os.Exit(1)
}

// RecoverGoroutine should be deferred at the top of background goroutines
// that run while the terminal is in raw mode. It does not exit; the main
// goroutine handles shutdown.
func RecoverGoroutine(t Terminal) {
	r := recover()
	if r == nil {
		return
	}

	Restore(t)
	fmt.Fprintf(os.Stderr, "\ngoroutine panic: %v\n\n%s\n", r, debug.Stack())
}
