package commands

import (
	"errors"
	"os"
	"path/filepath"

	"catalogctl/internal/core/config"
	"catalogctl/internal/core/session"
	"catalogctl/internal/gateway"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string
	APIURL     string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Gateway is the API client, constructed from the loaded config
	Gateway *gateway.Client

	// Sessions persists the auth session between invocations
	Sessions session.Store
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "catalogctl", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "catalogctl")
}

// credentials loads the persisted session and returns its gateway
// credentials. Commands that talk to the API call this first.
func (f *Flags) credentials() (gateway.Credentials, error) {
	sess, err := f.Sessions.Load()
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return gateway.Credentials{}, errors.New("not logged in, run 'catalogctl login' first")
		}
		return gateway.Credentials{}, err
	}
	return gateway.Credentials{Token: sess.Token, Email: sess.Email}, nil
}
