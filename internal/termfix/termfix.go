// ABOUTME: Fixes the lipgloss background to dark so no OSC 10/11 query is written to the terminal
// ABOUTME: Import with _ from main; replies to such a query would arrive as keys in the editor

package termfix

import "github.com/charmbracelet/lipgloss"

func init() {
	// With an explicit background lipgloss skips its detection query.
	lipgloss.SetHasDarkBackground(true)
}
