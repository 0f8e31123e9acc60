// Package session persists the user's local preferences: the signed-in user
// ID, the last selected constituency and tier, and the last entered PIN
// code. The file carries a schema version; unknown versions are discarded
// rather than migrated.
package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/achantasri/JanAwaaz/internal/directory"
)

const SchemaVersion = 1

type Preferences struct {
	SchemaVersion  int    `json:"schemaVersion"`
	UID            string `json:"uid,omitempty"`
	ConstituencyID string `json:"constituencyId,omitempty"`
	Tier           string `json:"tier,omitempty"`
	Pincode        string `json:"pincode,omitempty"`
}

type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath resolves to the per-user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "janawaaz", "prefs.json"), nil
}

// Load reads the preference file. A missing file or an unreadable or
// version-mismatched one yields fresh preferences, never an error the caller
// has to handle specially.
func (s *Store) Load() Preferences {
	fresh := Preferences{SchemaVersion: SchemaVersion}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return fresh
	}
	var p Preferences
	if err := json.Unmarshal(raw, &p); err != nil {
		return fresh
	}
	if p.SchemaVersion != SchemaVersion {
		return fresh
	}
	return p
}

// Save writes the preferences atomically (temp file + rename).
func (s *Store) Save(p Preferences) error {
	p.SchemaVersion = SchemaVersion
	raw, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// SelectConstituency records a constituency choice and the PIN code that
// produced it.
func (s *Store) SelectConstituency(id string, tier directory.Tier, pincode string) error {
	p := s.Load()
	p.ConstituencyID = id
	p.Tier = tier.String()
	p.Pincode = pincode
	return s.Save(p)
}

// SwitchTier clears the saved constituency and PIN code; a tier switch
// invalidates any previously resolved selection.
func (s *Store) SwitchTier(tier directory.Tier) error {
	p := s.Load()
	p.Tier = tier.String()
	p.ConstituencyID = ""
	p.Pincode = ""
	return s.Save(p)
}

// SetUser records the signed-in user; an empty uid signs out.
func (s *Store) SetUser(uid string) error {
	p := s.Load()
	p.UID = uid
	return s.Save(p)
}

// Clear removes the preference file.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
