package config

import (
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "ADAMSPATCH"

// EnvConfig holds all environment-based configuration.
// Field names map to environment variables with the ADAMSPATCH_ prefix.
type EnvConfig struct {
	// LogLevel is the log verbosity level.
	// Env: ADAMSPATCH_LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (text or json).
	// Env: ADAMSPATCH_LOG_FORMAT (default: text)
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`

	// ProblemFile is a YAML file describing the problem. Values in the file
	// take precedence over the problem variables below.
	// Env: ADAMSPATCH_PROBLEM_FILE
	ProblemFile string `envconfig:"PROBLEM_FILE"`

	// XMin is the left end of the region.
	// Env: ADAMSPATCH_XMIN (default: 0)
	XMin float64 `envconfig:"XMIN" default:"0"`

	// XMax is the right end of the region.
	// Env: ADAMSPATCH_XMAX (default: 3)
	XMax float64 `envconfig:"XMAX" default:"3"`

	// Patches is the number of patches.
	// Env: ADAMSPATCH_PATCHES (default: 3)
	Patches int `envconfig:"PATCHES" default:"3"`

	// SeparatorWidth is the width of each separator.
	// Env: ADAMSPATCH_SEPARATOR_WIDTH (default: 0.3)
	SeparatorWidth float64 `envconfig:"SEPARATOR_WIDTH" default:"0.3"`

	// Upper holds the comma-separated coefficients of the upper boundary,
	// constant term first.
	// Env: ADAMSPATCH_UPPER (default: 1,0,1)
	Upper []float64 `envconfig:"UPPER" default:"1,0,1"`

	// Lower holds the comma-separated coefficients of the lower boundary,
	// constant term first.
	// Env: ADAMSPATCH_LOWER (default: 0)
	Lower []float64 `envconfig:"LOWER" default:"0"`

	// Accuracy is the absolute accuracy of all computed areas and positions.
	// Env: ADAMSPATCH_ACCURACY (default: 1e-9)
	Accuracy float64 `envconfig:"ACCURACY" default:"1e-9"`
}

// LoadFromEnv loads configuration from ADAMSPATCH_ environment variables.
func LoadFromEnv() (EnvConfig, error) {
	return LoadFromEnvWithPrefix(EnvPrefix)
}

// LoadFromEnvWithPrefix loads configuration from environment variables with a
// custom prefix.
func LoadFromEnvWithPrefix(prefix string) (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// ToAppConfig converts EnvConfig to AppConfig.
func (e EnvConfig) ToAppConfig() AppConfig {
	cfg := NewAppConfig()

	if e.LogLevel != "" {
		cfg = applyOption(cfg, WithLogLevel(e.LogLevel))
	}
	if e.LogFormat != "" {
		cfg = applyOption(cfg, WithLogFormat(parseLogFormat(e.LogFormat)))
	}

	problem := cfg.Problem()
	problem.XMin = e.XMin
	problem.XMax = e.XMax
	problem.Patches = e.Patches
	problem.SeparatorWidth = e.SeparatorWidth
	if len(e.Upper) > 0 {
		problem.Upper = e.Upper
	}
	if len(e.Lower) > 0 {
		problem.Lower = e.Lower
	}
	if e.Accuracy > 0 {
		problem.Accuracy = e.Accuracy
	}
	return applyOption(cfg, WithProblem(problem))
}
