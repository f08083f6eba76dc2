// ABOUTME: Tests for Controller key routing, execution, busy guard, commands and completion
// ABOUTME: Drives HandleKey directly and applies results from the invocation channel

package app

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mauromedda/pichat/internal/journal"
	"github.com/mauromedda/pichat/internal/plugin"
	"github.com/mauromedda/pichat/internal/render"
	"github.com/mauromedda/pichat/pkg/tui/key"
)

type fakeCapability struct {
	name  string
	calls atomic.Int32
	fn    func(ctx context.Context, prompt string) (string, error)
}

func (f *fakeCapability) Name() string { return f.name }

func (f *fakeCapability) Invoke(ctx context.Context, prompt string) (string, error) {
	f.calls.Add(1)
	return f.fn(ctx, prompt)
}

func echoFake() *fakeCapability {
	return &fakeCapability{name: "fake", fn: func(_ context.Context, p string) (string, error) {
		return "echo: " + p, nil
	}}
}

func newController(t *testing.T, opts Options) *Controller {
	t.Helper()
	if opts.Loader == nil {
		dir := filepath.Join(t.TempDir(), "plugins")
		if err := plugin.EnsureDefaults(dir); err != nil {
			t.Fatalf("EnsureDefaults: %v", err)
		}
		opts.Loader = plugin.NewLoader(dir)
	}
	c := New(opts)
	c.Resize(80, 24)
	return c
}

func typeText(t *testing.T, c *Controller, s string) {
	t.Helper()
	for _, r := range s {
		k := key.Rune(r)
		if r == '\n' {
			k = key.Of(key.KeyEnter)
		}
		if err := c.HandleKey(k); err != nil {
			t.Fatalf("HandleKey(%q): %v", r, err)
		}
	}
}

func execute(t *testing.T, c *Controller) {
	t.Helper()
	if err := c.HandleKey(key.Of(key.Execute)); err != nil {
		t.Fatalf("execute: %v", err)
	}
}

// awaitResult applies the next invocation result.
func awaitResult(t *testing.T, c *Controller) {
	t.Helper()
	select {
	case res := <-c.results:
		if err := c.complete(res); err != nil {
			t.Fatalf("complete: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for invocation")
	}
}

func TestController_Initial(t *testing.T) {
	t.Parallel()

	c := newController(t, Options{})
	if c.Focus() != FocusEditor || c.Loading() || c.ActivePlugin() != "" {
		t.Errorf("initial state: focus=%v loading=%v plugin=%q", c.Focus(), c.Loading(), c.ActivePlugin())
	}
}

func TestController_EditorScenario(t *testing.T) {
	t.Parallel()

	c := newController(t, Options{})
	typeText(t, c, "ab\nc")

	if got := c.Editor().Lines(); !slices.Equal(got, []string{"ab", "c"}) {
		t.Errorf("Lines() = %q", got)
	}
	if l, col := c.Editor().CursorPos(); l != 1 || col != 1 {
		t.Errorf("CursorPos() = (%d,%d), want (1,1)", l, col)
	}
}

func TestController_FocusToggle(t *testing.T) {
	t.Parallel()

	c := newController(t, Options{})
	c.Transcript().Append("one\ntwo\nthree")

	_ = c.HandleKey(key.Of(key.FocusToggle))
	if c.Focus() != FocusTranscript {
		t.Fatalf("Focus() = %v, want transcript", c.Focus())
	}
	_ = c.HandleKey(key.Of(key.KeyDown))
	_ = c.HandleKey(key.Rune('z'))
	if c.Transcript().CursorLine() != 1 {
		t.Errorf("transcript cursor = %d, want 1", c.Transcript().CursorLine())
	}
	if c.Editor().Text() != "" {
		t.Errorf("editor received keys: %q", c.Editor().Text())
	}

	_ = c.HandleKey(key.Of(key.FocusToggle))
	if c.Focus() != FocusEditor {
		t.Errorf("Focus() = %v, want editor", c.Focus())
	}
}

func TestController_ExecuteWithLoadedPlugin(t *testing.T) {
	t.Parallel()

	c := newController(t, Options{})
	if err := c.LoadPlugin("echo"); err != nil {
		t.Fatalf("LoadPlugin: %v", err)
	}
	typeText(t, c, "hello world")
	execute(t, c)
	if !c.Loading() {
		t.Fatal("expected loading after execute")
	}
	awaitResult(t, c)

	if c.Loading() {
		t.Error("still loading after completion")
	}
	if got := c.Transcript().Lines(); !slices.Equal(got, []string{"hello world"}) {
		t.Errorf("transcript = %q", got)
	}
	if c.Editor().Text() != "hello world" {
		t.Errorf("editor text = %q, want prompt kept", c.Editor().Text())
	}
}

func TestController_BusyGuard(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	fake := &fakeCapability{name: "slow", fn: func(_ context.Context, p string) (string, error) {
		<-release
		return "done " + p, nil
	}}
	c := newController(t, Options{})
	c.SetPlugin(fake, "slow")

	typeText(t, c, "q")
	execute(t, c)
	execute(t, c)
	_ = c.HandleKey(key.Of(key.FocusToggle))
	if c.Focus() != FocusTranscript {
		t.Error("focus toggle must apply at once while nothing is queued")
	}
	_ = c.HandleKey(key.Of(key.FocusToggle))
	typeText(t, c, "xy")

	if c.Editor().Text() != "q" {
		t.Errorf("editor changed while loading: %q", c.Editor().Text())
	}
	if err := c.HandleKey(key.Of(key.KeyCtrlC)); !errors.Is(err, ErrExit) {
		t.Errorf("Ctrl+C while loading = %v, want ErrExit", err)
	}

	close(release)
	awaitResult(t, c)

	if n := fake.calls.Load(); n != 1 {
		t.Errorf("invocations = %d, want 1", n)
	}
	if c.Editor().Text() != "qxy" {
		t.Errorf("deferred keys not replayed: %q", c.Editor().Text())
	}
	if got := c.Transcript().Text(); got != "done q" {
		t.Errorf("transcript = %q", got)
	}

	// The guard is released: a new execute starts another invocation.
	execute(t, c)
	if !c.Loading() {
		t.Error("expected a second invocation to start")
	}
	awaitResult(t, c)
}

func TestController_FocusToggleQueuedBehindKeys(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	c := newController(t, Options{})
	c.SetPlugin(&fakeCapability{name: "slow", fn: func(context.Context, string) (string, error) {
		<-release
		return "ok", nil
	}}, "slow")

	typeText(t, c, "q")
	execute(t, c)
	typeText(t, c, "x")
	_ = c.HandleKey(key.Of(key.FocusToggle))
	_ = c.HandleKey(key.Of(key.KeyDown))

	if c.Focus() != FocusEditor {
		t.Error("toggle behind a queued key must wait for the replay")
	}

	close(release)
	awaitResult(t, c)

	if got := c.Editor().Text(); got != "qx" {
		t.Errorf("editor = %q, want %q", got, "qx")
	}
	if c.Focus() != FocusTranscript {
		t.Errorf("focus = %v, want transcript", c.Focus())
	}
	if got := c.Transcript().CursorLine(); got != 0 {
		t.Errorf("transcript cursor = %d, want 0 (one line only)", got)
	}
}

func TestController_ExecuteGuardedBySemaphore(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	fake := &fakeCapability{name: "slow", fn: func(context.Context, string) (string, error) {
		<-release
		return "ok", nil
	}}
	c := newController(t, Options{})
	c.SetPlugin(fake, "slow")
	typeText(t, c, "p")

	if err := c.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if err := c.Execute(); err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !c.Loading() {
		t.Error("expected loading after the first call")
	}

	close(release)
	awaitResult(t, c)

	select {
	case res := <-c.results:
		t.Fatalf("unexpected second result: %+v", res)
	case <-time.After(50 * time.Millisecond):
	}
	if n := fake.calls.Load(); n != 1 {
		t.Errorf("invocations = %d, want 1", n)
	}
	if c.Loading() {
		t.Error("still loading after completion")
	}
}

func TestController_InvocationFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func(context.Context, string) (string, error)
		want string
	}{
		{
			name: "error",
			fn:   func(context.Context, string) (string, error) { return "", errors.New("quota exceeded") },
			want: "quota exceeded",
		},
		{
			name: "panic",
			fn:   func(context.Context, string) (string, error) { panic("kaboom") },
			want: "panic: kaboom",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := newController(t, Options{})
			c.SetPlugin(&fakeCapability{name: "bad", fn: tt.fn}, "bad")

			typeText(t, c, "go")
			execute(t, c)
			awaitResult(t, c)

			got := c.Transcript().Text()
			if !strings.HasPrefix(got, "An error occurred while executing plugin:") {
				t.Errorf("transcript = %q, want error block", got)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("transcript = %q, want %q", got, tt.want)
			}
			if c.Loading() {
				t.Error("still loading after failure")
			}
		})
	}
}

func TestController_PanicIsInvocationError(t *testing.T) {
	t.Parallel()

	c := newController(t, Options{})
	fake := &fakeCapability{name: "bad", fn: func(context.Context, string) (string, error) { panic("x") }}
	go c.invoke(context.Background(), fake, "p")

	res := <-c.results
	var ie *plugin.InvocationError
	if !errors.As(res.err, &ie) || ie.Plugin != "bad" {
		t.Errorf("err = %v, want *InvocationError for bad", res.err)
	}
}

func TestController_NoPlugin(t *testing.T) {
	t.Parallel()

	c := newController(t, Options{})
	typeText(t, c, "hi")
	execute(t, c)

	if c.Loading() {
		t.Error("should not load without a plugin")
	}
	if got := c.Transcript().Text(); got != noPluginMessage {
		t.Errorf("transcript = %q", got)
	}
}

func TestController_Commands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		wantErr error
		cleared bool
	}{
		{input: "/clear", cleared: true},
		{input: "/cls", cleared: true},
		{input: "/exit", wantErr: ErrExit},
		{input: "/quit", wantErr: ErrExit},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			c := newController(t, Options{})
			c.Transcript().Append("old output")
			typeText(t, c, tt.input)

			err := c.HandleKey(key.Of(key.Execute))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if c.Editor().Text() != "" {
				t.Errorf("editor = %q, want cleared", c.Editor().Text())
			}
			if tt.cleared && c.Transcript().Len() != 0 {
				t.Errorf("transcript = %q, want empty", c.Transcript().Lines())
			}
			if c.Loading() {
				t.Error("commands must not start an invocation")
			}
		})
	}
}

func TestController_PluginCommand(t *testing.T) {
	t.Parallel()

	c := newController(t, Options{})
	if err := c.LoadPlugin("echo"); err != nil {
		t.Fatalf("LoadPlugin: %v", err)
	}
	before := c.ActivePlugin()

	typeText(t, c, "/plugin does-not-exist")
	execute(t, c)
	if got := c.Transcript().Text(); !strings.HasPrefix(got, "plugin file not found:") {
		t.Errorf("transcript = %q, want load error", got)
	}
	if c.ActivePlugin() != before {
		t.Errorf("ActivePlugin() = %q, want %q unchanged", c.ActivePlugin(), before)
	}

	typeText(t, c, "/plugin shell")
	execute(t, c)
	if !strings.HasSuffix(c.ActivePlugin(), "shell.yaml") {
		t.Errorf("ActivePlugin() = %q, want shell", c.ActivePlugin())
	}

	typeText(t, c, "/plugn")
	execute(t, c)
	if got := c.Transcript().Text(); !strings.Contains(got, "did you mean /plugin") {
		t.Errorf("transcript = %q, want suggestion", got)
	}
}

func TestController_LoadPluginWithoutLoader(t *testing.T) {
	t.Parallel()

	c := New(Options{})
	var le *plugin.LoadError
	if err := c.LoadPlugin("echo"); !errors.As(err, &le) {
		t.Errorf("err = %v, want *LoadError", err)
	}
}

func TestController_Journal(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	c := newController(t, Options{Journal: journal.New(&buf)})
	c.SetPlugin(echoFake(), "fake")

	typeText(t, c, "ping")
	execute(t, c)
	awaitResult(t, c)

	out := buf.String()
	for _, want := range []string{"using fake", "input:\nping", "output:\necho: ping"} {
		if !strings.Contains(out, want) {
			t.Errorf("journal missing %q:\n%s", want, out)
		}
	}
}

func TestController_JournalKeepsRawOutput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func(context.Context, string) (string, error)
		want string
	}{
		{
			name: "markdown source",
			fn: func(context.Context, string) (string, error) {
				return "# Title\n\n**bold**", nil
			},
			want: "output:\n# Title\n\n**bold**\n",
		},
		{
			name: "error block",
			fn: func(context.Context, string) (string, error) {
				return "", errors.New("boom")
			},
			want: "output:\nAn error occurred while executing plugin:\nboom\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf strings.Builder
			c := newController(t, Options{Journal: journal.New(&buf), Markdown: render.NewMarkdown()})
			c.SetPlugin(&fakeCapability{name: "md", fn: tt.fn}, "md")

			typeText(t, c, "x")
			execute(t, c)
			awaitResult(t, c)

			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("journal missing %q:\n%s", tt.want, buf.String())
			}
		})
	}
}

func TestController_Markdown(t *testing.T) {
	t.Parallel()

	c := newController(t, Options{Markdown: render.NewMarkdown()})
	c.SetPlugin(&fakeCapability{name: "md", fn: func(context.Context, string) (string, error) {
		return "# Title\n\nSome *text* here.", nil
	}}, "md")

	typeText(t, c, "x")
	execute(t, c)
	awaitResult(t, c)

	got := c.Transcript().Text()
	if !strings.Contains(got, "Title") || !strings.Contains(got, "here.") {
		t.Errorf("transcript = %q", got)
	}
}
