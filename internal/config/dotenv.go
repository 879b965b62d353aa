package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LoadDotEnv loads environment variables from a .env file.
// If path is empty, it loads from ".env" in the current directory.
// If the file does not exist, it silently returns nil (not an error).
// Variables that are already set are not overridden.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	return godotenv.Load(path)
}

// LoadProblemFile reads a YAML problem description. Keys missing from the
// file keep the values of base; unknown keys are an error. An empty file
// returns base unchanged.
func LoadProblemFile(path string, base ProblemConfig) (ProblemConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ProblemConfig{}, err
	}
	return ParseProblem(data, base)
}

// ParseProblem is [LoadProblemFile] for YAML that is already in memory.
func ParseProblem(data []byte, base ProblemConfig) (ProblemConfig, error) {
	cfg := base
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return ProblemConfig{}, fmt.Errorf("parse problem: %w", err)
	}
	return cfg, nil
}

// LoadConfig loads configuration from a .env file, the environment, and, if
// one is named by problemPath or ADAMSPATCH_PROBLEM_FILE, a YAML problem
// file. problemPath takes precedence over the environment variable.
func LoadConfig(envPath, problemPath string) (AppConfig, error) {
	if err := LoadDotEnv(envPath); err != nil {
		return AppConfig{}, err
	}

	envCfg, err := LoadFromEnv()
	if err != nil {
		return AppConfig{}, err
	}
	cfg := envCfg.ToAppConfig()

	if problemPath == "" {
		problemPath = envCfg.ProblemFile
	}
	if problemPath == "" {
		return cfg, nil
	}
	problem, err := LoadProblemFile(problemPath, cfg.Problem())
	if err != nil {
		return AppConfig{}, err
	}
	return applyOption(cfg, WithProblem(problem)), nil
}
