// Package config loads the CLI configuration from the environment and the
// user config file.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvLogLevel is the environment log level
	EnvLogLevel = "CIDIFF_LOG_LEVEL"
	// EnvFallbackToken is consulted for a code-host token when neither the
	// environment nor the user config file carries one.
	EnvFallbackToken = "GITHUB_OAUTH_TOKEN"
)

// Config is a struct that contains user inputs and our logger
type Config struct {
	Logger hclog.Logger

	// Code-host API token. No current operation calls out to a code host,
	// but the token is resolved and threaded through so hosted lookups can
	// adopt it.
	Token string
	// NoColor suppresses colored output
	NoColor bool
	// CLI version baked in at build time
	Version string
}

type envConfig struct {
	Token    string `envconfig:"token"`
	NoColor  bool   `envconfig:"no_color"`
	LogLevel string `envconfig:"log_level"`
}

// New resolves a Config. Users can set env vars with the prefix 'CIDIFF_'.
// Token precedence is CIDIFF_TOKEN, then the user config file, then
// GITHUB_OAUTH_TOKEN.
func New(version string) (*Config, error) {
	var fromEnv envConfig
	if err := envconfig.Process("cidiff", &fromEnv); err != nil {
		return nil, fmt.Errorf("invalid environment variable: %w", err)
	}

	token := fromEnv.Token
	if token == "" {
		if userConfig, err := ReadUserConfigFile(DefaultUserConfigPath()); err == nil {
			token = userConfig.Token()
		}
	}
	if token == "" {
		token = os.Getenv(EnvFallbackToken)
	}

	logger, err := newLogger(fromEnv.LogLevel)
	if err != nil {
		return nil, err
	}

	return &Config{
		Logger:  logger,
		Token:   token,
		NoColor: fromEnv.NoColor,
		Version: version,
	}, nil
}

// newLogger builds the shared logger. Default output is nowhere unless a
// level is requested, so that command output stays parseable.
func newLogger(levelName string) (hclog.Logger, error) {
	level := hclog.NoLevel
	if levelName != "" {
		level = hclog.LevelFromString(levelName)
		if level == hclog.NoLevel {
			return nil, fmt.Errorf("%s value %q is not a valid log level", EnvLogLevel, levelName)
		}
	}

	var output io.Writer = io.Discard
	color := hclog.ColorOff
	if level != hclog.NoLevel {
		output = os.Stderr
		color = hclog.AutoColor
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "cidiff",
		Level:  level,
		Color:  color,
		Output: output,
	}), nil
}
