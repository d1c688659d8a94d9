// Package session defines the authenticated session entity.
package session

import (
	"errors"
	"time"
)

// ErrNoSession indicates no persisted session exists.
var ErrNoSession = errors.New("no session found")

// Session represents the authenticated identity. The token is opaque:
// it is attached to requests verbatim and never parsed or verified
// client-side.
type Session struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Authenticated returns true if the session carries a token.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Store defines persistence operations for the session.
type Store interface {
	// Load returns the persisted session. Returns ErrNoSession if absent.
	Load() (Session, error)
	// Save persists the session.
	Save(s Session) error
	// Clear removes the persisted session. Clearing an absent session
	// is a no-op.
	Clear() error
}
