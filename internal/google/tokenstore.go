package google

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrTokenAbsent is returned by TokenFile.Load when no token file exists.
var ErrTokenAbsent = errors.New("no token file")

// ErrTokenMalformed is returned when a token file exists but cannot be
// parsed or fails validation. Callers treat it like absence for
// transition purposes but report it differently.
var ErrTokenMalformed = errors.New("token file malformed")

// TokenFile persists the token record to a single JSON file.
type TokenFile struct {
	Path string
}

// Load reads and validates the stored token. The three outcomes callers
// must distinguish are a usable record, ErrTokenAbsent, and
// ErrTokenMalformed wrapping the parse or validation cause.
func (f *TokenFile) Load() (*TokenRecord, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrTokenAbsent
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read token file %s: %w", f.Path, err)
	}

	var rec TokenRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}
	return &rec, nil
}

// Save replaces the stored token with rec. The record is written
// pretty-printed for human inspection, to a temp file in the same
// directory and renamed into place so a failed write never leaves a
// half-written token behind.
func (f *TokenFile) Save(rec *TokenRecord) error {
	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(dir, ".token-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp token file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set token file mode: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write token file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}

	if err := os.Rename(tmpName, f.Path); err != nil {
		return fmt.Errorf("failed to replace token file: %w", err)
	}
	return nil
}

// QuarantineMalformed moves a corrupt token file aside to
// <path>.invalid so re-authorization does not destroy evidence of what
// went wrong. Missing files and rename failures are ignored; the next
// Save overwrites whatever is left.
func (f *TokenFile) QuarantineMalformed() {
	_ = os.Rename(f.Path, f.Path+".invalid")
}
