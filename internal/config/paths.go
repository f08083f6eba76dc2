// ABOUTME: Standard filesystem paths for pichat configuration and data
// ABOUTME: Everything lives under ~/.pichat/ unless overridden

package config

import (
	"os"
	"path/filepath"
	"strings"
)

const globalDirName = ".pichat"

// GlobalDir returns the user-global config directory (~/.pichat/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ConfigFile returns the path to the config file.
func ConfigFile() string {
	return filepath.Join(GlobalDir(), "config.yaml")
}

// PluginsDir returns the default plugin descriptor directory.
func PluginsDir() string {
	return filepath.Join(GlobalDir(), "plugins")
}

// JournalFile returns the default exchange journal.
func JournalFile() string {
	return filepath.Join(GlobalDir(), "chat_log.txt")
}

// ExpandHome replaces a leading "~" with the home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
