package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Tly     TlyConfig     `mapstructure:"tly"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TlyConfig holds T.LY API connection details
type TlyConfig struct {
	Token   string        `mapstructure:"token"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
