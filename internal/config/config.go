// Package config loads and validates CLI configuration from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2rtf/internal/fileutil"
	"github.com/alnah/go-md2rtf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxOutputNameLength = 255 // Common filesystem limit
	MaxFontNameLength   = 100 // "Times New Roman" and friends
)

// Config holds all configuration for combined document generation.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Fonts   FontsConfig   `yaml:"fonts"`
	Convert ConvertConfig `yaml:"convert"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Name string `yaml:"name"` // Output file name (sanitized; empty = combined.rtf)
}

// FontsConfig defines the two RTF font slots.
type FontsConfig struct {
	Serif string `yaml:"serif"` // Body font, slot 0 (empty = Times New Roman)
	Mono  string `yaml:"mono"`  // Code font, slot 1 (empty = Courier New)
}

// ConvertConfig defines pipeline options.
type ConvertConfig struct {
	Optimize *bool `yaml:"optimize"` // Dedupe+normalize+optimize toggle (nil = enabled)
	Workers  int   `yaml:"workers"`  // Parallel render workers (0 = auto)
}

// OptimizeEnabled resolves the optimize toggle; it defaults to on.
func (c ConvertConfig) OptimizeEnabled() bool {
	return c.Optimize == nil || *c.Optimize
}

// Validate checks field lengths and worker bounds.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("output.name", c.Output.Name, MaxOutputNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("fonts.serif", c.Fonts.Serif, MaxFontNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("fonts.mono", c.Fonts.Mono, MaxFontNameLength); err != nil {
		return err
	}
	if c.Convert.Workers < 0 {
		return fmt.Errorf("convert.workers: must be >= 0, got %d", c.Convert.Workers)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths returns the candidate file paths LoadConfig checks for a
// config name, in search order: current directory first, then the user
// config directory (~/.config/go-md2rtf/ on Linux), each with the .yaml
// extension tried before .yml. Callers use it to tell the user where a
// missing config could be created.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-md2rtf", name+ext))
		}
	}

	return paths
}

// resolveConfigPath finds the first existing candidate for a config name.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, path := range paths {
		if fileutil.FileExists(path) {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
