// Package sessionfile provides a JSON file-based session store.
package sessionfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"catalogctl/internal/core/session"
)

// Store implements session.Store using a JSON file for persistence.
type Store struct {
	path string
}

// New creates a new JSON file store at the given path.
func New(path string) *Store {
	return &Store{path: path}
}

// Load returns the persisted session. Returns session.ErrNoSession if the
// file does not exist or is empty.
func (s *Store) Load() (session.Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return session.Session{}, session.ErrNoSession
		}
		return session.Session{}, fmt.Errorf("read session file: %w", err)
	}

	if len(data) == 0 {
		return session.Session{}, session.ErrNoSession
	}

	var sess session.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return session.Session{}, fmt.Errorf("parse session file: %w", err)
	}

	if !sess.Authenticated() {
		return session.Session{}, session.ErrNoSession
	}

	return sess, nil
}

// Save writes the session to disk atomically.
// Uses write-to-temp-then-rename to prevent corruption from interrupted writes.
func (s *Store) Save(sess session.Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Clear removes the persisted session. Clearing an absent session is a no-op.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
