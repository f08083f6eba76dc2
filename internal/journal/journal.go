// ABOUTME: Journal appends each completed exchange to a human-readable log file
// ABOUTME: Entry: a rule, a timestamp with the plugin name, then input and output blocks

package journal

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const (
	ruleWidth  = 87
	timeLayout = "January 02, 2006 at 03:04:05 PM"
)

// Entry is one prompt and its result.
type Entry struct {
	Time   time.Time
	Plugin string
	Input  string
	Output string
}

// Journal writes entries to w. Safe for concurrent use.
type Journal struct {
	mu sync.Mutex
	w  io.Writer
	c  io.Closer
}

// New writes entries to w.
func New(w io.Writer) *Journal {
	return &Journal{w: w}
}

// Open appends to the file at path, creating it and its directory.
func Open(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create journal dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	return &Journal{w: f, c: f}, nil
}

// Record appends e. A zero Time means now.
func (j *Journal) Record(e Entry) error {
	if e.Time.IsZero() {
		e.Time = time.Now()
	}

	var b strings.Builder
	b.WriteString(strings.Repeat("─", ruleWidth))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "%s using %s\n\n", e.Time.Format(timeLayout), e.Plugin)
	fmt.Fprintf(&b, "input:\n%s\n\n", e.Input)
	fmt.Fprintf(&b, "output:\n%s\n", e.Output)

	j.mu.Lock()
	defer j.mu.Unlock()
	if _, err := io.WriteString(j.w, b.String()); err != nil {
		return fmt.Errorf("write journal entry: %w", err)
	}
	return nil
}

// Close closes the underlying file when the journal owns one.
func (j *Journal) Close() error {
	if j.c == nil {
		return nil
	}
	return j.c.Close()
}
