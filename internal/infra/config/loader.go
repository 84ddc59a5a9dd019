// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/pulsemed/worklist/internal/domain"
)

// fileConfig mirrors the TOML layout. Durations are strings ("15m", "5s")
// parsed with time.ParseDuration during conversion.
type fileConfig struct {
	Lease struct {
		Duration      string `toml:"duration,omitempty"`
		Extension     string `toml:"extension,omitempty"`
		SweepInterval string `toml:"sweep_interval,omitempty"`
	} `toml:"lease"`
	Store struct {
		Type string `toml:"type,omitempty"`
		Path string `toml:"path,omitempty"`
	} `toml:"store"`
	Server struct {
		Addr string `toml:"addr,omitempty"`
	} `toml:"server"`
	Notify struct {
		WebhookURL string `toml:"webhook_url,omitempty"`
	} `toml:"notify"`
	Log struct {
		Level string `toml:"level,omitempty"`
		Dir   string `toml:"dir,omitempty"`
	} `toml:"log"`
}

// Loader loads configuration from a TOML file.
type Loader struct {
	path string
}

// NewLoader creates a new Loader for the given config file path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load returns the configuration merged over defaults.
// A missing file yields the defaults; a malformed file is an error.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	content, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(content, &fc); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := applyFileConfig(cfg, &fc); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// applyFileConfig overlays non-empty file values onto cfg.
func applyFileConfig(cfg *domain.Config, fc *fileConfig) error {
	if fc.Lease.Duration != "" {
		d, err := time.ParseDuration(fc.Lease.Duration)
		if err != nil {
			return fmt.Errorf("parse lease.duration: %w", err)
		}
		cfg.Lease.Duration = d
	}
	if fc.Lease.Extension != "" {
		d, err := time.ParseDuration(fc.Lease.Extension)
		if err != nil {
			return fmt.Errorf("parse lease.extension: %w", err)
		}
		cfg.Lease.Extension = d
	}
	if fc.Lease.SweepInterval != "" {
		d, err := time.ParseDuration(fc.Lease.SweepInterval)
		if err != nil {
			return fmt.Errorf("parse lease.sweep_interval: %w", err)
		}
		cfg.Lease.SweepInterval = d
	}
	if fc.Store.Type != "" {
		cfg.Store.Type = fc.Store.Type
	}
	if fc.Store.Path != "" {
		cfg.Store.Path = fc.Store.Path
	}
	if fc.Server.Addr != "" {
		cfg.Server.Addr = fc.Server.Addr
	}
	if fc.Notify.WebhookURL != "" {
		cfg.Notify.WebhookURL = fc.Notify.WebhookURL
	}
	if fc.Log.Level != "" {
		cfg.Log.Level = fc.Log.Level
	}
	if fc.Log.Dir != "" {
		cfg.Log.Dir = fc.Log.Dir
	}
	return nil
}
