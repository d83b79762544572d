// Package config loads runtime configuration for the dasha CLI from
// .dasha.yaml, DASHA_* environment variables, and CLI flags, with built-in
// defaults for everything else.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/navagraha/dasha/internal/dasha"
)

// Output format names accepted by the CLI.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds all runtime configuration for a dasha invocation.
type Config struct {
	TimelinePeriods int    `mapstructure:"timeline_periods"`
	FuturePeriods   int    `mapstructure:"future_periods"`
	Format          string `mapstructure:"format"`
	SequenceFile    string `mapstructure:"sequence_file"`
	TraceFile       string `mapstructure:"trace_file"`
	Verbose         bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("timeline_periods", dasha.DefaultTimelinePeriods)
	viper.SetDefault("future_periods", 5)
	viper.SetDefault("format", FormatText)
	viper.SetDefault("sequence_file", "")
	viper.SetDefault("trace_file", "")
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.TimelinePeriods < 1 {
		return fmt.Errorf("timeline_periods must be at least 1, got %d", c.TimelinePeriods)
	}
	if c.FuturePeriods < 0 {
		return fmt.Errorf("future_periods cannot be negative, got %d", c.FuturePeriods)
	}
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown format %q: want text, json, or yaml", c.Format)
	}
	return nil
}
