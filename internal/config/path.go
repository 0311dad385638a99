// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}

// DefaultRulesPath is the fallback location of the keyword rule file.
func DefaultRulesPath() string {
	return ExpandPath("~/.config/reroute/rules.yaml")
}

// DefaultDatabasePath is the fallback location of the audit database.
func DefaultDatabasePath() string {
	return ExpandPath("~/.local/share/reroute/reroute.db")
}
