// Package config provides configuration management for mcpadd using Viper.
package config

import (
	"github.com/spf13/viper"

	"github.com/thoreinstein/mcpadd/internal/errors"
	"github.com/thoreinstein/mcpadd/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = "mcpadd"

// Config represents the top-level configuration structure.
// Every value is a default; command-line flags take precedence.
type Config struct {
	// DefaultTarget is the target used when no target flag is given.
	DefaultTarget string `mapstructure:"default_target"`

	// DefaultScope is the scope used when no --scope flag is given.
	DefaultScope string `mapstructure:"default_scope"`

	// Editor overrides the $EDITOR detection for the edit command.
	Editor string `mapstructure:"editor"`
}

// Init initializes Viper with defaults and search paths.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ToolConfigDir())

	// Environment variable support: MCPADD_DEFAULT_TARGET etc.
	viper.SetEnvPrefix("MCPADD")
	viper.AutomaticEnv()

	viper.SetDefault("default_target", paths.TargetClaude)
	viper.SetDefault("default_scope", paths.ScopeUser)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back to
// defaults when no file exists.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// An explicitly requested file must exist.
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	return &cfg, nil
}
