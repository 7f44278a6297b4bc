package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFile is the config file name under the user's home directory.
const DefaultFile = ".hue.json"

// Config is the persisted CLI state: where the bridge is, the credential
// obtained by registration, and the user's color and light-group aliases.
type Config struct {
	Host     string            `json:"host,omitempty"`
	Username string            `json:"username,omitempty"`
	Colors   map[string]string `json:"colors,omitempty"`
	Alias    map[string]string `json:"alias,omitempty"`
}

// DefaultPath returns ~/.hue.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot locate home directory: %w", err)
	}
	return filepath.Join(home, DefaultFile), nil
}

// Load reads and parses the config file. A missing file is only an error
// when the path was explicitly requested; the default path is expected to
// be absent on first run.
func Load(path string, explicit bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("cannot parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes the config with stable 2-space indentation and a trailing
// newline, overwriting any existing file.
func Save(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}

// SetAlias records a light-group alias.
func (c *Config) SetAlias(name, ids string) {
	if c.Alias == nil {
		c.Alias = map[string]string{}
	}
	c.Alias[name] = ids
}
