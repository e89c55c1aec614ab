package google

import (
	"path/filepath"
	"testing"
)

func TestCredentialsPath(t *testing.T) {
	t.Run("env override wins", func(t *testing.T) {
		t.Setenv("DRIVETOKEN_CREDENTIALS_PATH", "/etc/drivetoken/creds.json")
		t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
		if got := CredentialsPath(); got != "/etc/drivetoken/creds.json" {
			t.Errorf("CredentialsPath() = %v", got)
		}
	})

	t.Run("xdg config home", func(t *testing.T) {
		t.Setenv("DRIVETOKEN_CREDENTIALS_PATH", "")
		t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
		want := filepath.Join("/xdg/config", "drivetoken", "credentials.json")
		if got := CredentialsPath(); got != want {
			t.Errorf("CredentialsPath() = %v, want %v", got, want)
		}
	})

	t.Run("relative xdg ignored", func(t *testing.T) {
		t.Setenv("DRIVETOKEN_CREDENTIALS_PATH", "")
		t.Setenv("XDG_CONFIG_HOME", "relative/path")
		t.Setenv("HOME", "/home/user")
		want := filepath.Join("/home/user", ".config", "drivetoken", "credentials.json")
		if got := CredentialsPath(); got != want {
			t.Errorf("CredentialsPath() = %v, want %v", got, want)
		}
	})
}

func TestTokenPath(t *testing.T) {
	t.Run("env override wins", func(t *testing.T) {
		t.Setenv("DRIVETOKEN_TOKEN_PATH", "/var/lib/drivetoken/token.json")
		if got := TokenPath(); got != "/var/lib/drivetoken/token.json" {
			t.Errorf("TokenPath() = %v", got)
		}
	})

	t.Run("xdg data home", func(t *testing.T) {
		t.Setenv("DRIVETOKEN_TOKEN_PATH", "")
		t.Setenv("XDG_DATA_HOME", "/xdg/data")
		want := filepath.Join("/xdg/data", "drivetoken", "token.json")
		if got := TokenPath(); got != want {
			t.Errorf("TokenPath() = %v, want %v", got, want)
		}
	})
}
