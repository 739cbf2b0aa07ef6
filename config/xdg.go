package config

import (
	"os"
	"path/filepath"

	"github.com/fulmenhq/levfind/errors"
)

// XDGBaseDirs provides XDG Base Directory paths
type XDGBaseDirs struct {
	ConfigHome string
	DataHome   string
	CacheHome  string
}

// GetXDGBaseDirs returns the XDG Base Directory paths
func GetXDGBaseDirs() XDGBaseDirs {
	return XDGBaseDirs{
		ConfigHome: getXDGConfigHome(),
		DataHome:   getXDGDataHome(),
		CacheHome:  getXDGCacheHome(),
	}
}

// GetXDGBaseDirsWithEnvelope returns the XDG Base Directory paths with structured error reporting.
// Returns an error envelope if HOME environment variable is not set.
func GetXDGBaseDirsWithEnvelope(correlationID string) (XDGBaseDirs, error) {
	home := os.Getenv("HOME")
	if home == "" {
		envelope := errors.NewErrorEnvelope("CONFIG_XDG_ERROR", "HOME environment variable not set")
		envelope = errors.SafeWithSeverity(envelope, errors.SeverityHigh)
		envelope = envelope.WithCorrelationID(correlationID)
		envelope = errors.SafeWithContext(envelope, map[string]interface{}{
			"component":  "config",
			"operation":  "get_xdg_dirs",
			"error_type": "missing_home_env",
		})
		return XDGBaseDirs{}, envelope
	}

	return GetXDGBaseDirs(), nil
}

func getXDGConfigHome() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return configHome
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".config")
	}
	return ""
}

func getXDGDataHome() string {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return dataHome
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".local", "share")
	}
	return ""
}

func getXDGCacheHome() string {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return cacheHome
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".cache")
	}
	return ""
}

// GetAppConfigDir returns the config directory for a given app name
// Uses XDG Base Directory specification: $XDG_CONFIG_HOME/appName or ~/.config/appName
func GetAppConfigDir(appName string) string {
	xdg := GetXDGBaseDirs()
	return filepath.Join(xdg.ConfigHome, appName)
}

// GetAppDataDir returns the data directory for a given app name
// Uses XDG Base Directory specification: $XDG_DATA_HOME/appName or ~/.local/share/appName
func GetAppDataDir(appName string) string {
	xdg := GetXDGBaseDirs()
	return filepath.Join(xdg.DataHome, appName)
}

// GetAppCacheDir returns the cache directory for a given app name
// Uses XDG Base Directory specification: $XDG_CACHE_HOME/appName or ~/.cache/appName
func GetAppCacheDir(appName string) string {
	xdg := GetXDGBaseDirs()
	return filepath.Join(xdg.CacheHome, appName)
}

// appName is the directory name the finder CLI uses under each XDG base
// directory: ~/.config/levfind, ~/.local/share/levfind, ~/.cache/levfind.
const appName = "levfind"

// GetLevfindConfigDir returns ~/.config/levfind (or $XDG_CONFIG_HOME/levfind).
func GetLevfindConfigDir() string {
	return GetAppConfigDir(appName)
}

// GetLevfindDataDir returns ~/.local/share/levfind (or $XDG_DATA_HOME/levfind).
func GetLevfindDataDir() string {
	return GetAppDataDir(appName)
}

// GetLevfindCacheDir returns ~/.cache/levfind (or $XDG_CACHE_HOME/levfind).
func GetLevfindCacheDir() string {
	return GetAppCacheDir(appName)
}
