package loader

import (
	"errors"
	"fmt"

	"sl10n/core/document"
	"sl10n/core/locale"
)

// ErrNoFields is returned by Config.Schema when no field is declared.
var ErrNoFields = errors.New("loader: no locale fields configured")

// Config holds the locale settings of the application.
type Config struct {
	// Path is the translation directory.
	Path string `mapstructure:"path" default:"lang"`
	// DefaultLang is the fallback language and the name of the bootstrapped file.
	DefaultLang string `mapstructure:"default_lang" default:"en"`
	// Ignore lists file names (with or without extension) to skip.
	Ignore []string `mapstructure:"ignore"`
	// Format is the document format: json, yaml or toml.
	Format string `mapstructure:"format" default:"json"`
	// Indent is the indentation width used when files are rewritten.
	Indent int `mapstructure:"indent" default:"2"`
	// Fields declares the schema keys.
	Fields []string `mapstructure:"fields"`
	// Strict turns diagnostics into errors.
	Strict bool `mapstructure:"strict" default:"false"`
	// WarnUnfilled reports keys still holding a placeholder.
	WarnUnfilled bool `mapstructure:"warn_unfilled" default:"false"`
}

// Schema builds the schema declared by Fields.
func (c Config) Schema() (*locale.Schema, error) {
	if len(c.Fields) == 0 {
		return nil, ErrNoFields
	}
	return locale.NewSchema(c.Fields...)
}

// Options converts the settings into loader options.
func (c Config) Options() ([]Option, error) {
	backend, err := document.ForFormat(c.Format, c.Indent)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	return []Option{
		WithPath(c.Path),
		WithDefaultLang(c.DefaultLang),
		WithIgnoreFilenames(c.Ignore...),
		WithBackend(backend),
		WithStrict(c.Strict),
		WithWarnUnfilled(c.WarnUnfilled),
	}, nil
}
