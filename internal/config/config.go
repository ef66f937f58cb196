// Package config loads govec settings from a config file and GOVEC_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the settings shared by every govec command.
type Config struct {
	// Output is the default output format (table, json, yaml).
	Output string `mapstructure:"output" yaml:"output"`

	// Timeout bounds a single command run.
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`

	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	Growth GrowthConfig `mapstructure:"growth" yaml:"growth"`
	Replay ReplayConfig `mapstructure:"replay" yaml:"replay"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// GrowthConfig holds defaults for the growth command.
type GrowthConfig struct {
	Count int `mapstructure:"count" yaml:"count"`
}

// ReplayConfig holds limits for the replay command.
type ReplayConfig struct {
	MaxSteps int `mapstructure:"max_steps" yaml:"max_steps"`
}

// Load reads configuration. An explicit path must exist; without one the
// standard search paths are tried and a missing file falls back to defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("govec")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.govec")
		v.AddConfigPath("/etc/govec")
	}

	setDefaults(v)

	v.SetEnvPrefix("GOVEC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Output:  "table",
		Timeout: 30 * time.Second,
		Log:     LogConfig{Level: "info"},
		Growth:  GrowthConfig{Count: 1024},
		Replay:  ReplayConfig{MaxSteps: 10000},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("output", d.Output)
	v.SetDefault("timeout", d.Timeout)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("growth.count", d.Growth.Count)
	v.SetDefault("replay.max_steps", d.Replay.MaxSteps)
}
