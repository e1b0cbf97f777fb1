package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/havlicek/easybook/internal/fileutil"
	"github.com/havlicek/easybook/internal/labels"
	"github.com/havlicek/easybook/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound   = errors.New("config file not found")
	ErrEmptyConfigName  = errors.New("config name cannot be empty")
	ErrConfigParse      = errors.New("failed to parse config")
	ErrFieldTooLong     = errors.New("field exceeds maximum length")
	ErrInvalidLabelKind = errors.New("invalid label kind")
)

// Field length limits.
const (
	MaxTitleLength       = 200  // Book title
	MaxAuthorLength      = 100  // Author name
	MaxEditionLength     = 50   // "print", "web", "ebook"
	MaxLabelFormatLength = 200  // Label template
	MaxPathLength        = 4096 // Filesystem paths
	MaxVersionLength     = 50   // Package version
	MaxPatternLength     = 256  // Include/exclude glob
)

// LabelKinds lists the element kinds an edition can label.
var LabelKinds = []string{"table", "figure", "chapter", "appendix"}

// configDirName is the directory searched under the user config dir.
const configDirName = "easybook"

// Config holds all configuration for publishing and packaging a book.
type Config struct {
	Book    BookConfig    `yaml:"book"`
	Edition EditionConfig `yaml:"edition"`
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Assets  AssetsConfig  `yaml:"assets"`
	Package PackageConfig `yaml:"package"`
}

// BookConfig holds book metadata.
type BookConfig struct {
	Title   string `yaml:"title"`
	Author  string `yaml:"author"`
	Edition string `yaml:"edition"` // Edition being published (informational)
}

// EditionConfig defines per-edition publishing options.
type EditionConfig struct {
	Labels       []string          `yaml:"labels"`       // Element kinds to label, e.g. [table]
	LabelFormats map[string]string `yaml:"labelFormats"` // Kind -> text/template format
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default content directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir   string `yaml:"defaultDir"`   // Default output directory (empty = ./Output)
	ListOfTables bool   `yaml:"listOfTables"` // Write list-of-tables.html and tables.yaml
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath    string `yaml:"basePath"`    // Empty = use embedded assets
	TemplateSet string `yaml:"templateSet"` // Empty = "default"
}

// PackageConfig defines the distributable archive.
type PackageConfig struct {
	RootDir string   `yaml:"rootDir"` // Application root (empty = current directory)
	Output  string   `yaml:"output"`  // Archive path (empty = {rootDir}/easybook-{version}.zip)
	Version string   `yaml:"version"` // Empty = build version
	Include []string `yaml:"include"` // Extra files or directories, relative to rootDir
	Exclude []string `yaml:"exclude"` // Extra base-name globs to skip
}

// Validate checks field lengths, label kinds and label formats.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("book.title", c.Book.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("book.author", c.Book.Author, MaxAuthorLength); err != nil {
		return err
	}
	if err := validateFieldLength("book.edition", c.Book.Edition, MaxEditionLength); err != nil {
		return err
	}

	for i, kind := range c.Edition.Labels {
		if !isLabelKind(kind) {
			return fmt.Errorf("%w: edition.labels[%d] %q (must be one of %s)",
				ErrInvalidLabelKind, i, kind, strings.Join(LabelKinds, ", "))
		}
	}
	for kind, format := range c.Edition.LabelFormats {
		field := "edition.labelFormats." + kind
		if !isLabelKind(kind) {
			return fmt.Errorf("%w: %s", ErrInvalidLabelKind, field)
		}
		if err := validateFieldLength(field, format, MaxLabelFormatLength); err != nil {
			return err
		}
		if err := labels.Validate(format); err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
	}

	paths := []struct{ field, value string }{
		{"input.defaultDir", c.Input.DefaultDir},
		{"output.defaultDir", c.Output.DefaultDir},
		{"assets.basePath", c.Assets.BasePath},
		{"package.rootDir", c.Package.RootDir},
		{"package.output", c.Package.Output},
	}
	for _, p := range paths {
		if err := validateFieldLength(p.field, p.value, MaxPathLength); err != nil {
			return err
		}
	}
	if err := validateFieldLength("assets.templateSet", c.Assets.TemplateSet, MaxEditionLength); err != nil {
		return err
	}

	if err := validateFieldLength("package.version", c.Package.Version, MaxVersionLength); err != nil {
		return err
	}
	for i, inc := range c.Package.Include {
		if err := validateFieldLength(fmt.Sprintf("package.include[%d]", i), inc, MaxPathLength); err != nil {
			return err
		}
	}
	for i, exc := range c.Package.Exclude {
		if err := validateFieldLength(fmt.Sprintf("package.exclude[%d]", i), exc, MaxPatternLength); err != nil {
			return err
		}
		if _, err := filepath.Match(exc, ""); err != nil {
			return fmt.Errorf("package.exclude[%d]: invalid pattern %q: %w", i, exc, err)
		}
	}

	return nil
}

func isLabelKind(kind string) bool {
	for _, k := range LabelKinds {
		if strings.EqualFold(kind, k) {
			return true
		}
	}
	return false
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration: no labels, embedded assets,
// no list of tables.
func DefaultConfig() *Config {
	return &Config{
		Edition: EditionConfig{Labels: nil},
		Assets:  AssetsConfig{TemplateSet: ""},
		Output:  OutputConfig{ListOfTables: false},
	}
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

	cfg := DefaultConfig()
	if err := yamlutil.DecodeFile(configPath, cfg, yamlutil.Strict()); err != nil {
		switch {
		case errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		case errors.Is(err, yamlutil.ErrRead):
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the files tried for a config name, in lookup order:
// {name}.yaml and {name}.yml in the current directory, then the same under
// the user config directory.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, configDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file of SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
