package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvDevPort      = "DEV_PORT"
	EnvDevOpen      = "DEV_OPEN"
	EnvDevSourceDir = "DEV_SOURCE_DIR"
	EnvDevPublicDir = "DEV_PUBLIC_DIR"
	EnvDevDebounce  = "DEV_DEBOUNCE"
)

// DevConfig holds development server options: the port, whether to open a
// browser on start, and where view sources are read from disk.
type DevConfig struct {
	Port      int    `toml:"port"`
	Open      *bool  `toml:"open"`
	SourceDir string `toml:"source_dir"`
	PublicDir string `toml:"public_dir"`
	Debounce  string `toml:"debounce"`
}

// OpenBrowser reports whether the browser should be opened on start.
func (c *DevConfig) OpenBrowser() bool {
	return c.Open != nil && *c.Open
}

// DebounceDuration returns the parsed reload debounce.
func (c *DevConfig) DebounceDuration() time.Duration {
	d, _ := time.ParseDuration(c.Debounce)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the dev configuration.
func (c *DevConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *DevConfig) Merge(overlay *DevConfig) {
	if overlay.Port != 0 {
		c.Port = overlay.Port
	}
	if overlay.Open != nil {
		open := *overlay.Open
		c.Open = &open
	}
	if overlay.SourceDir != "" {
		c.SourceDir = overlay.SourceDir
	}
	if overlay.PublicDir != "" {
		c.PublicDir = overlay.PublicDir
	}
	if overlay.Debounce != "" {
		c.Debounce = overlay.Debounce
	}
}

func (c *DevConfig) loadDefaults() {
	if c.Port == 0 {
		c.Port = 3000
	}
	if c.Open == nil {
		open := true
		c.Open = &open
	}
	if c.SourceDir == "" {
		c.SourceDir = "web/app"
	}
	if c.PublicDir == "" {
		c.PublicDir = "public"
	}
	if c.Debounce == "" {
		c.Debounce = "100ms"
	}
}

func (c *DevConfig) loadEnv() {
	if v := os.Getenv(EnvDevPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv(EnvDevOpen); v != "" {
		if open, err := strconv.ParseBool(v); err == nil {
			c.Open = &open
		}
	}
	if v := os.Getenv(EnvDevSourceDir); v != "" {
		c.SourceDir = v
	}
	if v := os.Getenv(EnvDevPublicDir); v != "" {
		c.PublicDir = v
	}
	if v := os.Getenv(EnvDevDebounce); v != "" {
		c.Debounce = v
	}
}

func (c *DevConfig) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	d, err := time.ParseDuration(c.Debounce)
	if err != nil {
		return fmt.Errorf("invalid debounce: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("debounce must be positive")
	}
	return nil
}
