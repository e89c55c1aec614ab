package google

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Identity is the registered application's OAuth2 client configuration,
// loaded once per run from credentials.json and never mutated.
type Identity struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string

	// Pass-through metadata from the credentials file. Forwarded to the
	// OAuth2 client unmodified when present.
	ProjectID string
	AuthURI   string
	TokenURI  string
}

// Validate reports whether the identity is structurally complete.
// Pure check, no I/O.
func (id *Identity) Validate() error {
	if id.ClientID == "" {
		return errors.New("identity: client_id is required")
	}
	if id.ClientSecret == "" {
		return errors.New("identity: client_secret is required")
	}
	if id.RedirectURI == "" {
		return errors.New("identity: no redirect URI configured")
	}
	return nil
}

// installedCredentials mirrors the Google Cloud console's download format
// for an "installed application" OAuth client.
type installedCredentials struct {
	Installed *struct {
		ClientID     string   `json:"client_id"`
		ClientSecret string   `json:"client_secret"`
		ProjectID    string   `json:"project_id"`
		AuthURI      string   `json:"auth_uri"`
		TokenURI     string   `json:"token_uri"`
		RedirectURIs []string `json:"redirect_uris"`
	} `json:"installed"`
}

// ParseIdentity parses an installed-application credentials.json document
// and validates the result. The first configured redirect URI is selected;
// having none is an error.
func ParseIdentity(data []byte) (*Identity, error) {
	var creds installedCredentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("failed to parse credentials: %w", err)
	}
	if creds.Installed == nil {
		return nil, errors.New("credentials are not for an installed application")
	}

	id := &Identity{
		ClientID:     creds.Installed.ClientID,
		ClientSecret: creds.Installed.ClientSecret,
		ProjectID:    creds.Installed.ProjectID,
		AuthURI:      creds.Installed.AuthURI,
		TokenURI:     creds.Installed.TokenURI,
	}
	if len(creds.Installed.RedirectURIs) > 0 {
		id.RedirectURI = creds.Installed.RedirectURIs[0]
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	return id, nil
}

// CredentialFile loads the application identity from a file on disk.
type CredentialFile struct {
	Path string
}

// Load reads and validates the identity. Any failure means the
// application is misconfigured and the run cannot proceed.
func (f *CredentialFile) Load() (*Identity, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file %s: %w", f.Path, err)
	}
	id, err := ParseIdentity(data)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials file %s: %w", f.Path, err)
	}
	return id, nil
}
