// Package config holds runtime configuration: defaults, optional YAML config
// file loading, and validation.
package config

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/go-playground/validator/v10"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid from a YAML file by [LoadFile], then mutated by the CLI
// layer before being passed (by pointer) to packages that need it.
type Config struct {
	// Paths.
	InputDir  string `yaml:"input_dir"`
	OutputDir string `yaml:"output_dir"` // Defaults to InputDir when empty.

	// Scheduling.
	Workers int `yaml:"workers" validate:"gt=0"` // Worker pool size. Default: runtime.NumCPU().

	// Display and logging.
	Verbose   bool      `yaml:"verbose"`
	ColorMode ColorMode `yaml:"color" validate:"oneof=auto always never"`
	LogFile   string    `yaml:"log_file"` // Optional log file path.
}

// DefaultConfig returns a Config with all defaults applied. Used as the base
// before config file and CLI overrides.
func DefaultConfig() Config {
	return Config{
		Workers:   runtime.NumCPU(),
		ColorMode: ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	for len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}
	return path
}

// Validate checks required fields and struct tags, and resolves the
// output-directory default. InputDir gets an explicit check first so the
// common mistake yields a readable message instead of a validator dump.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return errors.New("input_dir must be provided")
	}
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.OutputDir == "" {
		c.OutputDir = c.InputDir
	}
	return nil
}
