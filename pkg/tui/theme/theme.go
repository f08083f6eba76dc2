// ABOUTME: Semantic styles for the engine chrome: gutter, scrollbar, status bar and rules
// ABOUTME: Built on lipgloss so color output adapts to the terminal's profile

package theme

import "github.com/charmbracelet/lipgloss"

// Glyphs used by the scrollbar and the focus rules.
const (
	ThumbGlyph      = "█"
	TrackGlyph      = "│"
	GutterSeparator = "│"
	RuleFocused     = "━"
	RuleUnfocused   = "─"
)

// Theme maps each chrome element to a style.
type Theme struct {
	Name string

	LineNumber lipgloss.Style
	Separator  lipgloss.Style
	Thumb      lipgloss.Style
	Track      lipgloss.Style
	Status     lipgloss.Style
	Rule       lipgloss.Style
	Error      lipgloss.Style
	Spinner    lipgloss.Style
}

// Default is the theme used when no other is selected.
func Default() *Theme {
	return &Theme{
		Name:       "default",
		LineNumber: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Separator:  lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
		Thumb:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		Track:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Faint(true),
		Status:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Rule:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Spinner:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	}
}

// Mono uses attributes only, for terminals with unreadable palettes.
func Mono() *Theme {
	plain := lipgloss.NewStyle()
	return &Theme{
		Name:       "mono",
		LineNumber: plain.Faint(true),
		Separator:  plain.Faint(true),
		Thumb:      plain.Bold(true),
		Track:      plain.Faint(true),
		Status:     plain.Faint(true),
		Rule:       plain.Faint(true),
		Error:      plain.Bold(true),
		Spinner:    plain.Bold(true),
	}
}
