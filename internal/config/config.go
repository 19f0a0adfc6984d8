package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-wiki2md/internal/fileutil"
	"github.com/alnah/go-wiki2md/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidTemplate = errors.New("invalid infobox template name")
	ErrInvalidBucket   = errors.New("invalid category bucket")
	ErrInvalidWorkers  = errors.New("invalid worker count")
)

// Field length limits.
const (
	MaxPathLength     = 4096 // PATH_MAX on Linux
	MaxTemplateLength = 64   // "Faginfo"
	MaxBucketLength   = 64   // "fag", "studentliv"
	MaxStyleLength    = 4096 // name, path or inline CSS
	MaxWorkers        = 64
)

// configDirName is the directory searched under os.UserConfigDir.
const configDirName = "go-wiki2md"

// Config holds all configuration for wikitext conversion.
type Config struct {
	Input      InputConfig      `yaml:"input"`
	Output     OutputConfig     `yaml:"output"`
	Templates  TemplatesConfig  `yaml:"templates"`
	Categories CategoriesConfig `yaml:"categories"`
	Preview    PreviewConfig    `yaml:"preview"`
	Assets     AssetsConfig     `yaml:"assets"`
	Workers    int              `yaml:"workers"` // 0 = auto
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"`
	Normalize  bool   `yaml:"normalize"` // CRLF to LF and Unicode NFC
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir  string `yaml:"defaultDir"`
	FrontMatter bool   `yaml:"frontMatter"`
}

// TemplatesConfig names the templates rendered as info tables.
type TemplatesConfig struct {
	Infobox []string `yaml:"infobox"`
}

// CategoriesConfig configures page routing by category.
type CategoriesConfig struct {
	Default string   `yaml:"default"`
	Buckets []string `yaml:"buckets"`
}

// PreviewConfig configures the HTML preview written next to each page.
type PreviewConfig struct {
	Enabled bool   `yaml:"enabled"`
	Style   string `yaml:"style"` // name, file path, or inline CSS
}

// AssetsConfig configures custom style lookup.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"`
}

// Validate checks field lengths and value formats.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("preview.style", c.Preview.Style, MaxStyleLength); err != nil {
		return err
	}

	for i, name := range c.Templates.Infobox {
		if err := ValidateTemplateName(name); err != nil {
			return fmt.Errorf("templates.infobox[%d]: %w", i, err)
		}
	}

	if err := validateBucket("categories.default", c.Categories.Default); err != nil {
		return err
	}
	for i, bucket := range c.Categories.Buckets {
		if bucket == "" {
			return fmt.Errorf("%w: categories.buckets[%d] is empty", ErrInvalidBucket, i)
		}
		if err := validateBucket(fmt.Sprintf("categories.buckets[%d]", i), bucket); err != nil {
			return err
		}
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidWorkers, MaxWorkers, c.Workers)
	}

	return nil
}

// ValidateTemplateName checks an infobox template name: non-empty, short,
// without braces, pipes or whitespace.
func ValidateTemplateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidTemplate)
	}
	if err := validateFieldLength("template", name, MaxTemplateLength); err != nil {
		return err
	}
	if strings.ContainsAny(name, "{}| \t\n") {
		return fmt.Errorf("%w: %q", ErrInvalidTemplate, name)
	}
	return nil
}

// validateBucket checks a category bucket. Buckets are slug-like: lowercase
// letters, digits and underscores.
func validateBucket(fieldName, bucket string) error {
	if err := validateFieldLength(fieldName, bucket, MaxBucketLength); err != nil {
		return err
	}
	for _, r := range bucket {
		if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_') {
			return fmt.Errorf("%w: %s: %q", ErrInvalidBucket, fieldName, bucket)
		}
	}
	return nil
}

// validateFieldLength returns ErrFieldTooLong if value exceeds maxLength.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given:
// the Faginfo infobox, input normalization on, front matter and preview off.
func DefaultConfig() *Config {
	return &Config{
		Input:     InputConfig{Normalize: true},
		Templates: TemplatesConfig{Infobox: []string{"Faginfo"}},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, string, error) {
	if nameOrPath == "" {
		return nil, "", ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, "", err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, "", fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, "", fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	return cfg, configPath, nil
}

// SearchPaths returns the locations LoadConfig tries for a config name.
// Extensions .yaml then .yml, in the current directory then in the user
// config directory.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, configDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing search path for name.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
