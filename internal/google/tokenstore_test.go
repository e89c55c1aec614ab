package google

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	store := &TokenFile{Path: path}

	rec := &TokenRecord{
		AccessToken:  "a1",
		TokenType:    "Bearer",
		RefreshToken: "r1",
		Expiry:       time.Now().Add(time.Hour).Round(time.Second),
		Scope:        "https://www.googleapis.com/auth/drive.readonly",
	}
	require.NoError(t, store.Save(rec))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, rec.AccessToken, loaded.AccessToken)
	assert.Equal(t, rec.RefreshToken, loaded.RefreshToken)
	assert.Equal(t, rec.Scope, loaded.Scope)
	assert.True(t, rec.Expiry.Equal(loaded.Expiry))
}

func TestTokenFileSaveIsHumanReadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	store := &TokenFile{Path: path}

	require.NoError(t, store.Save(&TokenRecord{AccessToken: "a1", RefreshToken: "r1"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"access_token\"", "token file should be indented")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestTokenFileSaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "token.json")
	store := &TokenFile{Path: path}

	require.NoError(t, store.Save(&TokenRecord{AccessToken: "a1"}))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestTokenFileSaveReplacesWholeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	store := &TokenFile{Path: path}

	require.NoError(t, store.Save(&TokenRecord{AccessToken: "a1", RefreshToken: "r1", Scope: "s1"}))
	require.NoError(t, store.Save(&TokenRecord{AccessToken: "a2"}))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "a2", loaded.AccessToken)
	assert.Empty(t, loaded.RefreshToken, "save is full replacement, not merge")
	assert.Empty(t, loaded.Scope)

	// No temp file left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestTokenFileLoadAbsent(t *testing.T) {
	store := &TokenFile{Path: filepath.Join(t.TempDir(), "token.json")}

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrTokenAbsent)
}

func TestTokenFileLoadMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid json", `{not json`},
		{"valid json failing validation", `{"refresh_token": "r1"}`},
		{"wrong shape", `[1, 2, 3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "token.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0600))

			_, err := (&TokenFile{Path: path}).Load()
			assert.ErrorIs(t, err, ErrTokenMalformed)
			assert.NotErrorIs(t, err, ErrTokenAbsent)
		})
	}
}

func TestTokenFileQuarantineMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	require.NoError(t, os.WriteFile(path, []byte(`{broken`), 0600))

	store := &TokenFile{Path: path}
	store.QuarantineMalformed()

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "original file should be moved aside")
	data, err := os.ReadFile(path + ".invalid")
	require.NoError(t, err)
	assert.Equal(t, `{broken`, string(data))

	// Quarantining a missing file is a no-op.
	store.QuarantineMalformed()
}

func TestTokenRecordHeadlessUsable(t *testing.T) {
	tests := []struct {
		name string
		rec  TokenRecord
		want bool
	}{
		{"with refresh token", TokenRecord{AccessToken: "a", RefreshToken: "r"}, true},
		{"without refresh token", TokenRecord{AccessToken: "a"}, false},
		{"unexpired but no refresh token", TokenRecord{AccessToken: "a", Expiry: time.Now().Add(time.Hour)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.HeadlessUsable(); got != tt.want {
				t.Errorf("HeadlessUsable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTokenRecordValidate(t *testing.T) {
	if err := (&TokenRecord{AccessToken: "a"}).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	err := (&TokenRecord{RefreshToken: "r"}).Validate()
	if err == nil || !strings.Contains(err.Error(), "access_token") {
		t.Errorf("Validate() = %v, want access_token error", err)
	}
}
