// ABOUTME: Markdown renderer wrapper around glamour for plugin results
// ABOUTME: Uses the plain "notty" style because the transcript strips escape sequences

package render

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// Markdown lays out markdown as plain text wrapped to a width. Results are
// cached by content hash and width. Not safe for concurrent use.
type Markdown struct {
	cache map[string]string // "hash:width" -> rendered
}

// NewMarkdown creates a renderer with an empty cache.
func NewMarkdown() *Markdown {
	return &Markdown{cache: make(map[string]string)}
}

// Render returns md laid out for width columns. On any glamour failure
// the source is returned unchanged.
func (r *Markdown) Render(md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return md
	}

	key := cacheKey(md, width)
	if cached, ok := r.cache[key]; ok {
		return cached
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styles.NoTTYStyle),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}

	// glamour pads with blank lines and trailing spaces.
	rendered = trimLines(strings.Trim(rendered, "\n"))

	r.cache[key] = rendered
	return rendered
}

func trimLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}

// cacheKey produces a string key from content hash and width.
func cacheKey(content string, width int) string {
	h := sha256.Sum256([]byte(content))
	return fmt.Sprintf("%x:%d", h[:8], width)
}
