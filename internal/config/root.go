package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// FileName is the configuration file looked up under the config root.
const FileName = "config.toml"

// GetConfigRoot returns the per-user configuration directory.
func GetConfigRoot() string {
	return configRoot(runtime.GOOS, os.Getenv)
}

func configRoot(goos string, getenv func(string) string) string {
	// Use platform-specific defaults
	switch goos {
	case "darwin":
		if home := getenv("HOME"); home != "" {
			return filepath.Join(home, "Library", "Application Support", "troybin")
		}
	case "windows":
		if appData := getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "troybin")
		}
	default:
		if xdg := getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "troybin")
		}
		if home := getenv("HOME"); home != "" {
			return filepath.Join(home, ".config", "troybin")
		}
	}

	// Fallback to temp directory
	return filepath.Join(os.TempDir(), "troybin")
}

// DefaultPath returns the config file path under the config root.
func DefaultPath() string {
	return filepath.Join(GetConfigRoot(), FileName)
}
