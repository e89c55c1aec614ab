package google

import (
	"os"
	"path/filepath"
)

const (
	appName            = "drivetoken"
	defaultCredentials = "credentials.json"
	defaultToken       = "token.json"
)

// CredentialsPath returns the path to credentials.json.
// Priority: DRIVETOKEN_CREDENTIALS_PATH > XDG_CONFIG_HOME > ~/.config.
// Empty env vars are treated as unset; relative XDG paths are ignored
// per the XDG spec.
func CredentialsPath() string {
	if override := os.Getenv("DRIVETOKEN_CREDENTIALS_PATH"); override != "" {
		return filepath.Clean(override)
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" || !filepath.IsAbs(configHome) {
		home, err := os.UserHomeDir()
		if err != nil {
			return defaultCredentials
		}
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, appName, defaultCredentials)
}

// TokenPath returns the path to token.json.
// Priority: DRIVETOKEN_TOKEN_PATH > XDG_DATA_HOME > ~/.local/share.
func TokenPath() string {
	if override := os.Getenv("DRIVETOKEN_TOKEN_PATH"); override != "" {
		return filepath.Clean(override)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" || !filepath.IsAbs(dataHome) {
		home, err := os.UserHomeDir()
		if err != nil {
			return defaultToken
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, appName, defaultToken)
}
