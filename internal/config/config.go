// ABOUTME: Settings loading: defaults, then ~/.pichat/config.yaml, then ${VAR} expansion
// ABOUTME: and PICHAT_* environment overrides; CLI flags are applied by the caller

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds the effective configuration.
type Settings struct {
	// Plugin is the descriptor loaded at startup.
	Plugin     string `yaml:"plugin"`
	PluginsDir string `yaml:"plugins_dir"`
	// Journal is the exchange log; empty disables it.
	Journal     string `yaml:"journal"`
	DebugLog    string `yaml:"debug_log"`
	LineNumbers bool   `yaml:"line_numbers"`
	Markdown    bool   `yaml:"markdown"`
	Theme       string `yaml:"theme"`
}

// Defaults returns the settings used when nothing is configured.
func Defaults() *Settings {
	return &Settings{
		Plugin:      "echo",
		PluginsDir:  PluginsDir(),
		Journal:     JournalFile(),
		LineNumbers: true,
		Theme:       "default",
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Settings, error) {
	s := Defaults()
	if err := loadFile(path, s); err != nil {
		return nil, err
	}
	ResolveEnvVars(s)
	if err := ApplyEnv(s, os.LookupEnv); err != nil {
		return nil, err
	}
	s.expandPaths()
	return s, nil
}

// loadFile decodes path into s; keys absent from the file keep their value.
func loadFile(path string, s *Settings) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

func (s *Settings) expandPaths() {
	s.PluginsDir = ExpandHome(s.PluginsDir)
	s.Journal = ExpandHome(s.Journal)
	s.DebugLog = ExpandHome(s.DebugLog)
}
