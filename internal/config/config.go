package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"github.com/stoewer/go-strcase"
)

// ErrConfigValidation wraps config validation failures
// (as opposed to TOML syntax or filesystem errors).
var ErrConfigValidation = errors.New("config validation failed")

// DefaultPath is the config file read when no path is given.
const DefaultPath = "~/.easydata.toml"

// Input formats.
const (
	FormatAuto      = "auto"
	FormatJSON      = "json"
	FormatYAML      = "yaml"
	FormatTOML      = "toml"
	FormatProtoJSON = "protojson"
)

// Field cases.
const (
	CaseNone  = ""
	CaseSnake = "snake"
	CaseCamel = "camel"
	CaseKebab = "kebab"
)

var validFormats = map[string]struct{}{
	FormatAuto:      {},
	FormatJSON:      {},
	FormatYAML:      {},
	FormatTOML:      {},
	FormatProtoJSON: {},
}

var fieldNamers = map[string]func(string) string{
	CaseNone:  nil,
	CaseSnake: strcase.SnakeCase,
	CaseCamel: strcase.LowerCamelCase,
	CaseKebab: strcase.KebabCase,
}

// Config holds the CLI settings.
type Config struct {
	Format    string `toml:"format"`
	TagName   string `toml:"tag_name"`
	FieldCase string `toml:"field_case"`
	Color     *bool  `toml:"color"`
	Depth     int    `toml:"depth"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Format:  FormatAuto,
		TagName: "json",
	}
}

// Load reads the config at path. A missing file at the default path is not an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path %s: %w", path, err)
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config %s: %w", expanded, err)
	}
	return Parse(data, expanded)
}

// Parse parses and validates config TOML data. source is used in error messages.
func Parse(data []byte, source string) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", source, err)
	}
	if err := cfg.Validate(source); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate ensures the config values are known.
func (c *Config) Validate(source string) error {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if c.Format == "" {
		c.Format = FormatAuto
	}
	if _, ok := validFormats[c.Format]; !ok {
		return fmt.Errorf("%w: %s: unknown format %q", ErrConfigValidation, source, c.Format)
	}
	c.FieldCase = strings.ToLower(strings.TrimSpace(c.FieldCase))
	if _, ok := fieldNamers[c.FieldCase]; !ok {
		return fmt.Errorf("%w: %s: unknown field_case %q", ErrConfigValidation, source, c.FieldCase)
	}
	if c.Depth < 0 {
		return fmt.Errorf("%w: %s: depth must not be negative", ErrConfigValidation, source)
	}
	return nil
}

// FieldNamer returns the namer for the configured field case, nil for none.
func (c *Config) FieldNamer() func(string) string {
	return fieldNamers[c.FieldCase]
}

// ColorEnabled reports whether colored output is requested. Unset means enabled.
func (c *Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}
