package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
)

// LoginForm wraps a huh.Form for the email-only login screen.
type LoginForm struct {
	form  *huh.Form
	email string
}

// ValidateEmail checks the minimal shape of an email address. Anything
// deeper is the server's call.
func ValidateEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("email is required")
	}
	at := strings.Index(s, "@")
	if at < 1 || at == len(s)-1 {
		return errors.New("enter a valid email address")
	}
	return nil
}

// NewLoginForm creates the login form, optionally pre-filled with the
// last used email.
func NewLoginForm(email string) *LoginForm {
	f := &LoginForm{email: email}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Description("Sign in to the product catalog").
				Value(&f.email).
				Validate(ValidateEmail),
		),
	)

	return f
}

// Form returns the underlying huh.Form for tea.Model integration.
func (f *LoginForm) Form() *huh.Form {
	return f.form
}

// Email returns the entered email. Only valid once the form completes.
func (f *LoginForm) Email() string {
	return strings.TrimSpace(f.email)
}

// View renders the form.
func (f *LoginForm) View() string {
	return f.form.View()
}
