package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	errwhile "github.com/xgx-io/xgx-errwhile"
)

// Config holds the CLI configuration
type Config struct {
	// Logging
	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"`

	// Rendering
	Verbose bool `mapstructure:"verbose"`
	NoColor bool `mapstructure:"no-color"`
}

// Load reads configuration from environment, config file, and defaults
func Load() (*Config, error) {
	viper.SetDefault("log-level", "info")
	viper.SetDefault("log-format", "console")
	viper.SetDefault("verbose", false)
	viper.SetDefault("no-color", false)

	// Environment variables (ERRWHILE_LOG_LEVEL, etc.)
	viper.SetEnvPrefix("ERRWHILE")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Config file (optional)
	viper.SetConfigName("errwhile")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.errwhile")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errwhile.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errwhile.Wrap(err, "decoding config")
	}

	return &cfg, nil
}

// Level returns the parsed log level.
func (c *Config) Level() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.LogLevel)
}

// Validate checks configuration for errors
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return errwhile.Wrap(err, "checking log-level")
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return errwhile.Wrap(errors.Errorf("unknown format %q", c.LogFormat), "checking log-format")
	}
	return nil
}
