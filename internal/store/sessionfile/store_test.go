package sessionfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogctl/internal/core/session"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "nested", "session.json"))
}

func TestStore_LoadMissingFile(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Load()
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestStore_SaveAndLoad(t *testing.T) {
	s := newTestStore(t)

	want := session.Session{
		Token:     "tok-123",
		Email:     "a@b.co",
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.Save(want))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStore_SaveCreatesDirAndRestrictsPermissions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "session.json")
	s := New(path)

	require.NoError(t, s.Save(session.Session{Token: "tok", Email: "a@b.co"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStore_LoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	_, err := New(path).Load()
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestStore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	_, err := New(path).Load()
	assert.Error(t, err)
	assert.NotErrorIs(t, err, session.ErrNoSession)
}

func TestStore_LoadTokenlessSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"email": "a@b.co"}`), 0o600))

	_, err := New(path).Load()
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestStore_Clear(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(session.Session{Token: "tok", Email: "a@b.co"}))

	require.NoError(t, s.Clear())
	_, err := s.Load()
	assert.ErrorIs(t, err, session.ErrNoSession)

	// Clearing again is a no-op.
	assert.NoError(t, s.Clear())
}
