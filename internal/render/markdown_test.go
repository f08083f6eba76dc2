// ABOUTME: Tests for the markdown renderer wrapper around glamour
// ABOUTME: Verifies plain-text layout, width bound, caching and passthrough of blank input

package render

import (
	"strings"
	"testing"

	"github.com/mauromedda/pichat/pkg/tui/width"
)

func TestMarkdown_Render(t *testing.T) {
	t.Parallel()

	r := NewMarkdown()
	result := r.Render("# Hello World\n\nSome **bold** text.\n\n- one\n- two", 80)

	for _, want := range []string{"Hello World", "bold", "one", "two"} {
		if !strings.Contains(result, want) {
			t.Errorf("rendered output missing %q:\n%s", want, result)
		}
	}
	if strings.HasPrefix(result, "\n") || strings.HasSuffix(result, "\n") {
		t.Errorf("output should be trimmed: %q", result)
	}
}

func TestMarkdown_RenderCodeBlock(t *testing.T) {
	t.Parallel()

	result := NewMarkdown().Render("```go\nfunc main() {}\n```", 80)
	if !strings.Contains(result, "func main()") {
		t.Errorf("rendered output missing code content:\n%s", result)
	}
}

func TestMarkdown_WidthBound(t *testing.T) {
	t.Parallel()

	md := "A paragraph with enough words in it that it has to wrap more than once at a narrow width."
	result := NewMarkdown().Render(md, 30)
	for i, line := range strings.Split(result, "\n") {
		if w := width.VisibleWidth(width.StripANSI(line)); w > 30 {
			t.Errorf("line %d is %d wide: %q", i, w, line)
		}
	}
}

func TestMarkdown_Caches(t *testing.T) {
	t.Parallel()

	r := NewMarkdown()
	first := r.Render("**bold text**", 80)
	if len(r.cache) != 1 {
		t.Fatalf("cache size = %d, want 1", len(r.cache))
	}
	if second := r.Render("**bold text**", 80); second != first {
		t.Error("cached render should return identical results")
	}
	r.Render("**bold text**", 40)
	if len(r.cache) != 2 {
		t.Errorf("cache size = %d, want 2 after new width", len(r.cache))
	}
}

func TestMarkdown_BlankPassthrough(t *testing.T) {
	t.Parallel()

	r := NewMarkdown()
	for _, in := range []string{"", "  \n "} {
		if got := r.Render(in, 80); got != in {
			t.Errorf("Render(%q) = %q", in, got)
		}
	}
}
