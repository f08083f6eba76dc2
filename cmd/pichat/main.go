// ABOUTME: CLI entry point for pichat with terminal crash recovery
// ABOUTME: Builds the cobra root command and exits non-zero on error

package main

import (
	"fmt"
	"os"

	// termfix must run its init before anything renders with lipgloss.
	_ "github.com/mauromedda/pichat/internal/termfix"

	"github.com/mauromedda/pichat/pkg/tui/terminal"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	term := terminal.NewProcessTerminal()
	defer terminal.RestoreOnPanic(term)

	root := newRootCmd(term)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
