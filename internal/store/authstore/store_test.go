package authstore

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogctl/internal/core/lifecycle"
	"catalogctl/internal/core/session"
	"catalogctl/internal/gateway"
)

func TestStore_LoginSuccess(t *testing.T) {
	s := New(session.Session{})
	assert.False(t, s.Authenticated())

	seq := s.BeginLogin()
	assert.Equal(t, lifecycle.StatePending, s.State())

	ok := s.ResolveLogin(seq, gateway.Credentials{Token: "abc", Email: "a@b.co"}, nil)
	require.True(t, ok)

	assert.True(t, s.Authenticated())
	assert.Equal(t, "abc", s.Session().Token)
	assert.Equal(t, "a@b.co", s.Session().Email)
	assert.False(t, s.Session().CreatedAt.IsZero())
	assert.Equal(t, lifecycle.StateSucceeded, s.State())
	assert.NoError(t, s.Err())
}

func TestStore_FailedReloginPreservesSession(t *testing.T) {
	s := New(session.Session{Token: "old", Email: "a@b.co"})

	seq := s.BeginLogin()
	require.True(t, s.ResolveLogin(seq, gateway.Credentials{}, errors.New("invalid email")))

	assert.Equal(t, lifecycle.StateFailed, s.State())
	assert.EqualError(t, s.Err(), "invalid email")
	assert.True(t, s.Authenticated(), "a failed re-login must not destroy a working session")
	assert.Equal(t, "old", s.Session().Token)
}

func TestStore_StaleLoginIsDiscarded(t *testing.T) {
	s := New(session.Session{})

	first := s.BeginLogin()
	second := s.BeginLogin()

	require.True(t, s.ResolveLogin(second, gateway.Credentials{Token: "new"}, nil))
	assert.False(t, s.ResolveLogin(first, gateway.Credentials{Token: "stale"}, nil))

	assert.Equal(t, "new", s.Session().Token)
}

func TestStore_Logout(t *testing.T) {
	s := New(session.Session{Token: "abc", Email: "a@b.co"})

	s.Logout()

	assert.False(t, s.Authenticated())
	assert.Equal(t, session.Session{}, s.Session())
	assert.Equal(t, lifecycle.StateIdle, s.State())

	// Idempotent.
	s.Logout()
	assert.False(t, s.Authenticated())
}

func TestStore_LogoutWhilePendingSupersedesAttempt(t *testing.T) {
	s := New(session.Session{})

	seq := s.BeginLogin()
	s.Logout()

	// The in-flight outcome lands after logout and must be discarded.
	assert.False(t, s.ResolveLogin(seq, gateway.Credentials{Token: "late"}, nil))
	assert.False(t, s.Authenticated())
	assert.Equal(t, lifecycle.StateIdle, s.State())
}

func TestStore_Credentials(t *testing.T) {
	s := New(session.Session{Token: "abc", Email: "a@b.co"})

	creds := s.Credentials()
	assert.Equal(t, gateway.Credentials{Token: "abc", Email: "a@b.co"}, creds)
}
