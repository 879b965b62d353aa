// Package config provides application configuration.
package config

import (
	"strings"

	"github.com/adamspatch/patch"
)

// Default configuration values. The problem defaults describe a strip under
// x² + 1 on [0, 3], split into three patches by paths of width 0.3.
const (
	DefaultLogLevel       = "INFO"
	DefaultXMin           = 0.0
	DefaultXMax           = 3.0
	DefaultPatches        = 3
	DefaultSeparatorWidth = 0.3
	DefaultAccuracy       = patch.DefaultAccuracy
)

// DefaultUpper returns the coefficients of the default upper boundary, 1 + x².
func DefaultUpper() []float64 { return []float64{1, 0, 1} }

// DefaultLower returns the coefficients of the default lower boundary, 0.
func DefaultLower() []float64 { return []float64{0} }

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

func parseLogFormat(s string) LogFormat {
	if strings.EqualFold(s, string(LogFormatJSON)) {
		return LogFormatJSON
	}
	return LogFormatText
}

// ProblemConfig describes a patch placement problem in terms of polynomial
// boundary curves. Coefficients are ordered from the constant term up.
type ProblemConfig struct {
	XMin           float64   `yaml:"xmin"`
	XMax           float64   `yaml:"xmax"`
	Patches        int       `yaml:"patches"`
	SeparatorWidth float64   `yaml:"separator_width"`
	Upper          []float64 `yaml:"upper"`
	Lower          []float64 `yaml:"lower"`
	Accuracy       float64   `yaml:"accuracy"`
}

// NewProblemConfig returns the default problem.
func NewProblemConfig() ProblemConfig {
	return ProblemConfig{
		XMin:           DefaultXMin,
		XMax:           DefaultXMax,
		Patches:        DefaultPatches,
		SeparatorWidth: DefaultSeparatorWidth,
		Upper:          DefaultUpper(),
		Lower:          DefaultLower(),
		Accuracy:       DefaultAccuracy,
	}
}

// Band returns the region between the lower and upper curves.
func (c ProblemConfig) Band() patch.Band {
	return patch.Band{
		Lower: patch.Poly(c.Lower).Eval,
		Upper: patch.Poly(c.Upper).Eval,
	}
}

// Problem converts the configuration into a [patch.Problem].
func (c ProblemConfig) Problem() patch.Problem {
	return patch.Problem{
		Width:          c.Band().Width,
		XMin:           c.XMin,
		XMax:           c.XMax,
		SeparatorWidth: c.SeparatorWidth,
		Accuracy:       c.Accuracy,
	}
}

// AppConfig holds the application configuration.
type AppConfig struct {
	logLevel  string
	logFormat LogFormat
	problem   ProblemConfig
}

// NewAppConfig creates a new AppConfig with default values.
func NewAppConfig() AppConfig {
	return AppConfig{
		logLevel:  DefaultLogLevel,
		logFormat: LogFormatText,
		problem:   NewProblemConfig(),
	}
}

// NewAppConfigWithOptions creates an AppConfig with functional options.
func NewAppConfigWithOptions(opts ...AppConfigOption) AppConfig {
	cfg := NewAppConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// LogLevel returns the log level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// Problem returns the configured problem.
func (c AppConfig) Problem() ProblemConfig { return c.problem }

// AppConfigOption is a functional option for AppConfig.
type AppConfigOption func(*AppConfig)

// WithLogLevel sets the log level.
func WithLogLevel(level string) AppConfigOption {
	return func(c *AppConfig) { c.logLevel = level }
}

// WithLogFormat sets the log format.
func WithLogFormat(format LogFormat) AppConfigOption {
	return func(c *AppConfig) { c.logFormat = format }
}

// WithProblem replaces the problem.
func WithProblem(p ProblemConfig) AppConfigOption {
	return func(c *AppConfig) { c.problem = p }
}

func applyOption(cfg AppConfig, opt AppConfigOption) AppConfig {
	opt(&cfg)
	return cfg
}
