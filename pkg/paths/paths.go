// Package paths provides centralized path handling for cupidconf.
// It implements XDG Base Directory specification compliance for locating
// the default configuration file, and resolves the home directory used
// for tilde expansion at load time.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigFile overrides the configuration file location
	EnvConfigFile = "CUPIDCONF_FILE"
)

// Default directories and files
const (
	// AppDirName is the directory name for cupidconf files under XDG paths
	AppDirName = "cupidconf"

	// DefaultConfigName is the default configuration file name
	DefaultConfigName = "config.conf"
)

// HomeDir returns the user's home directory, or "" when it cannot be
// determined. An empty result disables tilde expansion rather than
// failing the load.
func HomeDir() string {
	if xdg.Home != "" {
		return xdg.Home
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}

// DefaultConfigPath returns the configuration file to read when the
// caller does not name one explicitly.
//
// Resolution order: the CUPIDCONF_FILE environment variable, then an
// existing cupidconf/config.conf in any XDG config directory, then the
// conventional $XDG_CONFIG_HOME/cupidconf/config.conf location whether
// or not it exists yet.
func DefaultConfigPath() string {
	if path := os.Getenv(EnvConfigFile); path != "" {
		return path
	}

	rel := filepath.Join(AppDirName, DefaultConfigName)
	if path, err := xdg.SearchConfigFile(rel); err == nil {
		return path
	}

	return filepath.Join(xdg.ConfigHome, rel)
}
