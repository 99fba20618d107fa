package config

import (
	"os"
	"path/filepath"
)

const (
	appName        = "lightbox"
	configFileName = "config.toml"
	schemaFileName = "config.schema.json"
)

// File permission constants
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// XDGDirs holds the XDG Base Directory paths for the application.
type XDGDirs struct {
	ConfigHome string
	StateHome  string
}

// GetXDGDirs returns the XDG Base Directory paths for lightbox:
// - $XDG_CONFIG_HOME/lightbox (default: ~/.config/lightbox)
// - $XDG_STATE_HOME/lightbox (default: ~/.local/state/lightbox)
func GetXDGDirs() (*XDGDirs, error) {
	// Development mode: use .dev directory in current working directory
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		devDir := filepath.Join(cwd, ".dev", appName)
		return &XDGDirs{ConfigHome: devDir, StateHome: devDir}, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(homeDir, ".config")
	}

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		stateHome = filepath.Join(homeDir, ".local", "state")
	}

	return &XDGDirs{
		ConfigHome: filepath.Join(configHome, appName),
		StateHome:  filepath.Join(stateHome, appName),
	}, nil
}

// GetConfigDir returns the XDG config directory for lightbox.
func GetConfigDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetStateDir returns the XDG state directory for lightbox.
func GetStateDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.StateHome, nil
}

// GetLogDir returns the log directory. Logs live in XDG_STATE_HOME.
func GetLogDir() (string, error) {
	stateDir, err := GetStateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(stateDir, "logs"), nil
}

// GetConfigFile returns the path to the main configuration file.
func GetConfigFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFileName), nil
}

// GetManDir returns the user man page directory, $XDG_DATA_HOME/man/man1.
func GetManDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(homeDir, ".local", "share")
	}
	return filepath.Join(dataHome, "man", "man1"), nil
}
