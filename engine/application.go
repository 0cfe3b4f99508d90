package engine

import (
	"github.com/ombralabs/ombra/engine/config"
	"github.com/ombralabs/ombra/engine/core"
)

type ApplicationConfig struct {
	// Window starting position x axis, if applicable.
	StartPosX uint32
	// Window starting position y axis, if applicable.
	StartPosY uint32
	// Window starting width, if applicable.
	StartWidth uint32
	// Window starting height, if applicable.
	StartHeight uint32
	// The application name used in windowing, if applicable.
	Name     string
	LogLevel core.LogLevel
	// Path of the TOML file this configuration was loaded from. When set,
	// the engine watches it and posts a config-changed event on rewrite.
	ConfigPath string
}

// ApplicationConfigFromFile loads a TOML configuration file into an
// ApplicationConfig.
func ApplicationConfigFromFile(path string) (*ApplicationConfig, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return &ApplicationConfig{
		StartPosX:   cfg.Application.StartPosX,
		StartPosY:   cfg.Application.StartPosY,
		StartWidth:  cfg.Application.StartWidth,
		StartHeight: cfg.Application.StartHeight,
		Name:        cfg.Application.Name,
		LogLevel:    logLevel(cfg.Application.LogLevel),
		ConfigPath:  path,
	}, nil
}

func logLevel(name string) core.LogLevel {
	switch name {
	case "info":
		return core.InfoLevel
	case "warn":
		return core.WarnLevel
	case "error":
		return core.ErrorLevel
	default:
		return core.DebugLevel
	}
}
