// ABOUTME: Environment handling for settings: ${VAR} expansion in string fields
// ABOUTME: and PICHAT_* variables that override the file

package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// ResolveEnvVars expands ${VAR} patterns in string fields of Settings.
func ResolveEnvVars(s *Settings) {
	s.Plugin = expandEnv(s.Plugin)
	s.PluginsDir = expandEnv(s.PluginsDir)
	s.Journal = expandEnv(s.Journal)
	s.DebugLog = expandEnv(s.DebugLog)
	s.Theme = expandEnv(s.Theme)
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

// ApplyEnv overrides settings from PICHAT_* variables found by lookup.
func ApplyEnv(s *Settings, lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"PICHAT_PLUGIN":      &s.Plugin,
		"PICHAT_PLUGINS_DIR": &s.PluginsDir,
		"PICHAT_JOURNAL":     &s.Journal,
		"PICHAT_DEBUG_LOG":   &s.DebugLog,
		"PICHAT_THEME":       &s.Theme,
	}
	for name, dst := range strs {
		if v, ok := lookup(name); ok {
			*dst = v
		}
	}

	bools := map[string]*bool{
		"PICHAT_LINE_NUMBERS": &s.LineNumbers,
		"PICHAT_MARKDOWN":     &s.Markdown,
	}
	for name, dst := range bools {
		v, ok := lookup(name)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*dst = b
	}
	return nil
}
