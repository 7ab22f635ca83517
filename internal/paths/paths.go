// Package paths resolves configuration and data directory locations.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// CWD-relative directory names used when no override is given.
const (
	DefaultConfigDirName = ".seqmine"
	DefaultDataDirName   = ".seqmine-db"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "SEQMINE_CONFIG_DIR"
	EnvDataDir   = "SEQMINE_DATA_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/seqmine (fallback ~/.config/seqmine)
// macOS:   ~/Library/Application Support/seqmine
// Windows: %APPDATA%/seqmine
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "seqmine"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "seqmine"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "seqmine"), nil
	}
}

// ResolveConfigDir picks the configuration directory: the flag value if
// non-empty, then the environment override, then the CWD-relative default.
func ResolveConfigDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(EnvConfigDir); v != "" {
		return v
	}
	return DefaultConfigDirName
}

// ResolveDataDir picks the data directory: the flag value if non-empty,
// then the environment override, then the value from configuration
// (possibly empty, in which case the CWD-relative default applies).
func ResolveDataDir(flagValue, configValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(EnvDataDir); v != "" {
		return v
	}
	if configValue != "" {
		return configValue
	}
	return DefaultDataDirName
}
