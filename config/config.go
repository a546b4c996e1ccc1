package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Load loads the configuration. Values resolve in precedence order: config
// file, then environment (TLY_API_TOKEN, TLY_BASE_URL), then defaults; the
// CLI applies its flag overrides on top of the returned Config. A missing
// config file is not an error unless an explicit path was given.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// Environment fallbacks for the two connection inputs.
	v.BindEnv("tly.token", "TLY_API_TOKEN")
	v.BindEnv("tly.base_url", "TLY_BASE_URL")

	if configPath != "" {
		v.SetConfigFile(configPath)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	} else {
		v.SetConfigName(".tly")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "tly"))
			v.AddConfigPath(home)
		}

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config: %w", err)
			}
			// No config file: flags and environment can cover everything.
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// API defaults
	v.SetDefault("tly.base_url", "https://api.t.ly")
	v.SetDefault("tly.timeout", "30s")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid. The API token is not
// required here: commands that never touch the network run without one,
// and the CLI reports a missing token itself when a network command needs
// it.
func validate(cfg *Config) error {
	if cfg.Tly.BaseURL == "" {
		return fmt.Errorf("tly.base_url is required")
	}

	if cfg.Tly.Timeout <= 0 {
		return fmt.Errorf("tly.timeout must be positive")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
