// Package config handles naronbenh configuration loading and management.
package config

import (
	"github.com/wurstmineberg/naronbenh/pkg/naronbenh"
	"github.com/wurstmineberg/naronbenh/pkg/raster"
)

// Config holds all tool settings.
type Config struct {
	Render    RenderConfig  `yaml:"render"`
	Building  raster.Area   `yaml:"building"`
	Perimeter raster.Area   `yaml:"perimeter"`
	Logging   LoggingConfig `yaml:"logging"`
}

// RenderConfig holds output settings.
type RenderConfig struct {
	Workers   int    `yaml:"workers"`    // 0 = one per CPU
	OutputDir string `yaml:"output_dir"` // Where images and dumps are written
	Format    string `yaml:"format"`     // png, bmp or tiff
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Workers:   0,
			OutputDir: "assets",
			Format:    "png",
		},
		Building:  naronbenh.DefaultBuildingArea,
		Perimeter: naronbenh.DefaultPerimeterArea,
		Logging: LoggingConfig{
			Level:   "warn",
			LogFile: "",
		},
	}
}
