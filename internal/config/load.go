package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded config cannot be used.
var ErrInvalidConfig = errors.New("invalid config")

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that areas are non-empty, fit the 16-bit coordinate range
// and the dump record extent, and that the image format is known.
func (c *Config) Validate() error {
	areas := []struct {
		name string
		min  int
		max  int
	}{
		{"building x", c.Building.MinX, c.Building.MaxX},
		{"building z", c.Building.MinZ, c.Building.MaxZ},
		{"perimeter x", c.Perimeter.MinX, c.Perimeter.MaxX},
		{"perimeter z", c.Perimeter.MinZ, c.Perimeter.MaxZ},
	}
	for _, a := range areas {
		if a.min >= a.max {
			return fmt.Errorf("%w: %s range [%d,%d) is empty", ErrInvalidConfig, a.name, a.min, a.max)
		}
		if a.min < -32768 || a.max > 32768 {
			return fmt.Errorf("%w: %s range [%d,%d) exceeds 16-bit coordinates", ErrInvalidConfig, a.name, a.min, a.max)
		}
		// dump records store the extent as a uint16
		if a.max-a.min > math.MaxUint16 {
			return fmt.Errorf("%w: %s range [%d,%d) is wider than %d", ErrInvalidConfig, a.name, a.min, a.max, math.MaxUint16)
		}
	}

	switch c.Render.Format {
	case "png", "bmp", "tiff":
	default:
		return fmt.Errorf("%w: unknown image format %q", ErrInvalidConfig, c.Render.Format)
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./naronbenh.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "naronbenh")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "naronbenh")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "naronbenh")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "naronbenh")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
