package identity

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/kwanchai/cleanbook/internal/dependencies/clock"
	"github.com/kwanchai/cleanbook/internal/model"
)

// FileStore persists the identity record as a JSON file for the CLI.
// Semantics match CookieStore: writes stamp a fresh expiry window and
// reads treat missing, malformed, and expired files as absent.
type FileStore struct {
	path  string
	clock clock.Clock
}

// NewFileStore creates a FileStore at the given path
func NewFileStore(path string, clk clock.Clock) *FileStore {
	if clk == nil {
		clk = clock.New()
	}
	return &FileStore{path: path, clock: clk}
}

// DefaultIdentityFile returns the default identity file location
func DefaultIdentityFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".cleanbook", "identity.json")
	}
	return filepath.Join(home, ".cleanbook", "identity.json")
}

// Write persists the identity. A nil identity, or one without a
// credential, removes the file instead.
func (s *FileStore) Write(id *model.Identity) error {
	if !id.Authenticated() {
		return s.Clear()
	}

	rec := NewRecord(id, s.clock.Now())
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}

// Read returns the stored identity, or nil if the record is missing,
// malformed, or expired
func (s *FileStore) Read() *model.Identity {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil
	}
	if rec.Credential == "" || rec.Expired(s.clock.Now()) {
		return nil
	}

	return rec.Identity()
}

// ReadCredential returns the stored credential, or "" if absent
func (s *FileStore) ReadCredential() string {
	if id := s.Read(); id != nil {
		return id.Credential
	}
	return ""
}

// Clear removes the record unconditionally
func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
