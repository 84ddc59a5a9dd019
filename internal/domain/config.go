package domain

import (
	"fmt"
	"time"
)

// Default operational policy values.
const (
	DefaultLeaseDuration     = 15 * time.Minute
	DefaultExtensionDuration = 10 * time.Minute
	DefaultSweepInterval     = 5 * time.Second
)

// Config represents the engine configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Store  StoreConfig
	Server ServerConfig
	Notify NotifyConfig
	Log    LogConfig
	Lease  LeaseConfig
}

// LeaseConfig holds the lease timing policy from the [lease] section.
type LeaseConfig struct {
	Duration      time.Duration // Exclusive ownership window on acquire
	Extension     time.Duration // Added to the current deadline per extension
	SweepInterval time.Duration // Cadence of the expiry sweeper
}

// StoreConfig holds task storage settings from the [store] section.
type StoreConfig struct {
	Type string // "memory" (default for serve) or "json"
	Path string // Store file path when Type is "json"
}

// ServerConfig holds HTTP server settings from the [server] section.
type ServerConfig struct {
	Addr string // Listen address, e.g. ":8470"
}

// NotifyConfig holds completion notification settings from the [notify] section.
type NotifyConfig struct {
	WebhookURL string // Completion events are POSTed here; empty = log only
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string // Log level: debug, info, warn, error
	Dir   string // Audit log directory; empty disables audit files
}

// NewDefaultConfig returns the configuration defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Lease: LeaseConfig{
			Duration:      DefaultLeaseDuration,
			Extension:     DefaultExtensionDuration,
			SweepInterval: DefaultSweepInterval,
		},
		Store:  StoreConfig{Type: "memory"},
		Server: ServerConfig{Addr: ":8470"},
		Log:    LogConfig{Level: "info"},
	}
}

// Validate checks the configuration for operational soundness.
// The sweep interval must be at most a third of the lease duration so the
// staleness bound on reclaimed leases stays meaningful.
func (c *Config) Validate() error {
	if c.Lease.Duration <= 0 {
		return fmt.Errorf("lease duration must be positive, got %s", c.Lease.Duration)
	}
	if c.Lease.Extension <= 0 {
		return fmt.Errorf("lease extension must be positive, got %s", c.Lease.Extension)
	}
	if c.Lease.SweepInterval <= 0 {
		return fmt.Errorf("sweep interval must be positive, got %s", c.Lease.SweepInterval)
	}
	if c.Lease.SweepInterval > c.Lease.Duration/3 {
		return fmt.Errorf("sweep interval %s exceeds a third of lease duration %s",
			c.Lease.SweepInterval, c.Lease.Duration)
	}
	switch c.Store.Type {
	case "memory", "json":
	default:
		return fmt.Errorf("unknown store type %q", c.Store.Type)
	}
	if c.Store.Type == "json" && c.Store.Path == "" {
		return fmt.Errorf("store path is required for the json store")
	}
	return nil
}
