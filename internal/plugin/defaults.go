// ABOUTME: Seeds a fresh plugins directory with descriptors for the builtins

package plugin

import (
	"fmt"
	"os"
	"path/filepath"
)

var defaultDescriptors = map[string]string{
	"echo.yaml": `# Returns the prompt unchanged.
name: echo
builtin: echo
`,
	"shell.yaml": `# Runs the prompt with sh -c and returns its output.
name: shell
builtin: shell
`,
}

// EnsureDefaults creates dir and writes the default descriptors that are
// missing. Existing files are left untouched.
func EnsureDefaults(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create plugins dir: %w", err)
	}
	for name, body := range defaultDescriptors {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}
