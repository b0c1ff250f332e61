// Package config resolves the clinic service endpoint.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"

	"github.com/inovacc/frontdesk/internal/application"
)

const (
	// DefaultBaseURL is used when neither the config file nor the
	// environment names a server.
	DefaultBaseURL = "http://localhost:3000"

	// EnvServer overrides the config file when set.
	EnvServer = "FRONTDESK_SERVER"

	configFileName = "frontdesk.ini"
)

// ServerSection maps the [server] section of frontdesk.ini.
type ServerSection struct {
	BaseURL string `ini:"base_url"`
}

// Config holds the resolved client configuration.
type Config struct {
	Server ServerSection `ini:"server"`
}

// Path returns the location of the config file.
func Path() (string, error) {
	dir, err := application.DataDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, configFileName), nil
}

// Load resolves the configuration from the default location.
// Precedence, highest first: the FRONTDESK_SERVER environment
// variable, the [server] base_url key in frontdesk.ini, the built-in
// default. A missing config file is not an error.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	return LoadFrom(path)
}

// LoadFrom resolves the configuration from a specific ini file.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{Server: ServerSection{BaseURL: DefaultBaseURL}}

	if _, err := os.Stat(path); err == nil {
		file, err := ini.Load(path)
		if err != nil {
			return nil, err
		}

		if err := file.Section("server").MapTo(&cfg.Server); err != nil {
			return nil, err
		}

		if cfg.Server.BaseURL == "" {
			cfg.Server.BaseURL = DefaultBaseURL
		}
	}

	if env := os.Getenv(EnvServer); env != "" {
		cfg.Server.BaseURL = env
	}

	return cfg, nil
}

// Save writes the configuration back to frontdesk.ini.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}

	file := ini.Empty()

	if err := file.Section("server").ReflectFrom(&c.Server); err != nil {
		return err
	}

	return file.SaveTo(path)
}
