// Package config loads the application configuration from a TOML file and
// can watch it for rewrites, posting a config-changed event through the
// dispatcher when it happens.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Application is the window and logging configuration of the engine.
type Application struct {
	// The application name used in windowing.
	Name string `toml:"name"`
	// Window starting position, if applicable.
	StartPosX uint32 `toml:"start_pos_x"`
	StartPosY uint32 `toml:"start_pos_y"`
	// Window starting size.
	StartWidth  uint32 `toml:"start_width"`
	StartHeight uint32 `toml:"start_height"`
	// Minimum log severity: "debug", "info", "warn", "error".
	LogLevel string `toml:"log_level"`
}

type Config struct {
	Application Application `toml:"application"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Application: Application{
			Name:        "Ombra",
			StartPosX:   100,
			StartPosY:   100,
			StartWidth:  1280,
			StartHeight: 720,
			LogLevel:    "debug",
		},
	}
}

// Load reads and decodes a TOML configuration file. Fields absent from
// the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decoding config %s: %w", path, err)
	}
	return cfg, nil
}
