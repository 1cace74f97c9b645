package config

import (
	"os"
	"path/filepath"
)

// HomeEnv overrides the directory holding config.yaml.
const HomeEnv = "NOTECTX_HOME"

// Home returns the notectx configuration directory for dir.
// Priority order:
//  1. NOTECTX_HOME environment variable (if set)
//  2. dir/.notectx
func Home(dir string) string {
	if home := os.Getenv(HomeEnv); home != "" {
		return home
	}
	return filepath.Join(dir, ".notectx")
}

// ConfigPath returns the config file location for dir.
func ConfigPath(dir string) string {
	return filepath.Join(Home(dir), "config.yaml")
}
