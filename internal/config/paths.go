package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// ConfigEnvVar overrides the config file location.
const ConfigEnvVar = "RINKADAPTER_CONFIG"

// AppName is the directory name under the XDG config home.
const AppName = "rinkadapter"

// DefaultConfigPath returns the config file location.
// Priority order:
//  1. RINKADAPTER_CONFIG environment variable (if set)
//  2. $XDG_CONFIG_HOME/rinkadapter/config.yaml
//
// Nothing is created on disk; a missing file means defaults.
func DefaultConfigPath() string {
	if path := os.Getenv(ConfigEnvVar); path != "" {
		return path
	}
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}
