// ABOUTME: Loader resolves plugin paths under a plugins directory and evaluates descriptors
// ABOUTME: Every failure is a *LoadError; nothing is cached, so a load always reads the file

package plugin

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mauromedda/pichat/internal/log"
)

// Ext is the default descriptor extension.
const Ext = ".yaml"

// Loader loads descriptors relative to Dir.
type Loader struct {
	Dir string
}

// NewLoader creates a loader rooted at dir.
func NewLoader(dir string) *Loader {
	return &Loader{Dir: dir}
}

// Resolve maps a user-supplied path to a descriptor file: "~" expands to
// the home directory, relative paths resolve under Dir and the default
// extension is appended when missing.
func (l *Loader) Resolve(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("empty plugin path")
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.Dir, path)
	}
	if filepath.Ext(path) != Ext {
		path += Ext
	}
	return filepath.Clean(path), nil
}

// Load resolves path and builds the plugin it describes.
func (l *Loader) Load(path string) (*Plugin, error) {
	resolved, err := l.Resolve(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, &LoadError{Path: resolved, Err: err}
	}
	desc, err := ParseDescriptor(resolved, data)
	if err != nil {
		return nil, &LoadError{Path: resolved, Err: err}
	}

	var impl invoker
	if desc.Builtin != "" {
		impl, err = lookupBuiltin(desc.Builtin, desc.Options)
		if err != nil {
			return nil, &LoadError{Path: resolved, Err: err}
		}
	} else {
		impl = newExec(desc.Command, filepath.Dir(resolved), desc.Options)
	}

	log.Info("loaded plugin %s from %s", desc.Name, resolved)
	return &Plugin{Path: resolved, Descriptor: desc, impl: impl}, nil
}

// List returns the descriptor names in Dir without extension, sorted.
// A missing directory yields an empty list.
func (l *Loader) List() ([]string, error) {
	files, err := filepath.Glob(filepath.Join(l.Dir, "*"+Ext))
	if err != nil {
		return nil, fmt.Errorf("list plugins: %w", err)
	}
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, strings.TrimSuffix(filepath.Base(f), Ext))
	}
	slices.Sort(names)
	return names, nil
}
