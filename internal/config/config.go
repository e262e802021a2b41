// Package config loads and validates YAML configuration for term2html.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-term2html/internal/fileutil"
	"github.com/alnah/go-term2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound      = errors.New("config file not found")
	ErrEmptyConfigName     = errors.New("config name cannot be empty")
	ErrConfigParse         = errors.New("failed to parse config")
	ErrFieldTooLong        = errors.New("field exceeds maximum length")
	ErrInvalidSpacingModel = errors.New("invalid spacing model")
	ErrInvalidCellWidth    = errors.New("invalid cell width")
	ErrInvalidTightening   = errors.New("invalid tightening value")
)

// Field length limits.
const (
	MaxFontNameLength = 100  // Font family name
	MaxFontPathLength = 2048 // URL or filesystem path
	MaxDirLength      = 4096 // Default input/output directories
)

// Spacing bounds in em units. Tightening beyond half a cell or cell widths
// outside this range collapse or explode the grid.
const (
	MaxTightening = 0.5
	MinCellWidth  = 0.5
	MaxCellWidth  = 2.0
)

// Config holds all configuration for HTML compilation.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Render RenderConfig `yaml:"render"`
	Font   FontConfig   `yaml:"font"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default source directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default destination directory (empty = must specify)
}

// RenderConfig defines grid rendering options.
type RenderConfig struct {
	SpacingModel string  `yaml:"spacingModel"` // "offset", "cellwidth" (empty = offset)
	Tightening   float64 `yaml:"tightening"`   // em units, offset model (0 = default)
	CellWidth    float64 `yaml:"cellWidth"`    // em units, cellwidth model (0 = default)
	Braille      bool    `yaml:"braille"`      // space -> U+2800 on Braille lines
}

// FontConfig defines the font fallback chain and optional embedded font.
type FontConfig struct {
	Stack    []string           `yaml:"stack"`    // Ordered fallback list (empty = built-in default)
	Embedded EmbeddedFontConfig `yaml:"embedded"` // Optional @font-face declaration
}

// EmbeddedFontConfig declares a web font loaded via @font-face.
type EmbeddedFontConfig struct {
	Disabled bool   `yaml:"disabled"` // Skip @font-face entirely
	Name     string `yaml:"name"`     // font-family name (empty = built-in default)
	Path     string `yaml:"path"`     // WOFF2 URL or relative path
}

// Spacing model names accepted in config files.
const (
	SpacingModelOffset    = "offset"
	SpacingModelCellWidth = "cellwidth"
)

// Validate checks field lengths and value ranges.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxDirLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxDirLength); err != nil {
		return err
	}

	switch strings.ToLower(c.Render.SpacingModel) {
	case "", SpacingModelOffset, SpacingModelCellWidth:
		// valid
	default:
		return fmt.Errorf("%w: %q (must be offset or cellwidth)", ErrInvalidSpacingModel, c.Render.SpacingModel)
	}

	if c.Render.Tightening < 0 || c.Render.Tightening > MaxTightening {
		return fmt.Errorf("%w: %.2f (must be between 0 and %.2f)", ErrInvalidTightening, c.Render.Tightening, MaxTightening)
	}

	if c.Render.CellWidth != 0 {
		if c.Render.CellWidth < MinCellWidth || c.Render.CellWidth > MaxCellWidth {
			return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidCellWidth, c.Render.CellWidth, MinCellWidth, MaxCellWidth)
		}
	}

	for i, font := range c.Font.Stack {
		if err := validateFieldLength(fmt.Sprintf("font.stack[%d]", i), font, MaxFontNameLength); err != nil {
			return err
		}
	}
	if err := validateFieldLength("font.embedded.name", c.Font.Embedded.Name, MaxFontNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("font.embedded.path", c.Font.Embedded.Path, MaxFontPathLength); err != nil {
		return err
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

// DefaultConfig returns a neutral configuration: offset spacing model,
// Braille alignment off, built-in font stack.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{DefaultDir: ""},
		Output: OutputConfig{DefaultDir: ""},
		Render: RenderConfig{SpacingModel: ""},
		Font:   FontConfig{},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns error if the file is not found (no silent fallback).
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
	if err := yamlutil.DecodeStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-term2html/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-term2html", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
