// Package authstore owns the Session entity and its login lifecycle.
package authstore

import (
	"time"

	"catalogctl/internal/core/lifecycle"
	"catalogctl/internal/core/session"
	"catalogctl/internal/gateway"
)

// Store holds the current session and the login operation's lifecycle.
// Mutations are reconciliation steps: begin marks the operation pending,
// resolve applies the outcome. Not safe for concurrent use; all calls
// must happen on the event loop that owns the store.
type Store struct {
	sess  session.Session
	login lifecycle.Tracker
}

// New creates an auth store, optionally seeded with a restored session.
func New(seed session.Session) *Store {
	return &Store{sess: seed}
}

// BeginLogin marks a login attempt as pending and returns its sequence.
func (s *Store) BeginLogin() uint64 {
	return s.login.Begin()
}

// ResolveLogin applies a login outcome. On success the session is
// replaced. On failure the error is recorded and any prior session is
// preserved: a failed re-login must not destroy a working session.
// Returns false if the attempt was superseded by a newer BeginLogin.
func (s *Store) ResolveLogin(seq uint64, creds gateway.Credentials, err error) bool {
	if err != nil {
		return s.login.Fail(seq, err)
	}
	if !s.login.Succeed(seq) {
		return false
	}
	s.sess = session.Session{
		Token:     creds.Token,
		Email:     creds.Email,
		CreatedAt: time.Now(),
	}
	return true
}

// Logout resets the session to empty and the login lifecycle to idle.
// It is synchronous, unconditional, and idempotent; no network call is
// involved.
func (s *Store) Logout() {
	s.sess = session.Session{}
	s.login.Reset()
}

// Session returns the current session entity.
func (s *Store) Session() session.Session {
	return s.sess
}

// Credentials returns the session as gateway credentials.
func (s *Store) Credentials() gateway.Credentials {
	return gateway.Credentials{Token: s.sess.Token, Email: s.sess.Email}
}

// Authenticated returns true if a token is present.
func (s *Store) Authenticated() bool {
	return s.sess.Authenticated()
}

// State returns the login operation's lifecycle state.
func (s *Store) State() lifecycle.State {
	return s.login.State()
}

// Err returns the error from the last failed login, or nil.
func (s *Store) Err() error {
	return s.login.Err()
}
