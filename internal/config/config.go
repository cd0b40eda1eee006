// Package config defines the immutable run configuration for the
// md2epub CLI and its YAML loading.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-md2epub/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Config holds every knob of a packaging run. It is assembled once
// (defaults, then config file, then flags) and passed read-only to the
// pipeline.
type Config struct {
	// Title is the book title. Empty = source directory base name.
	Title string `yaml:"title"`

	// Author is the dc:creator value.
	Author string `yaml:"author"`

	// Language is a BCP 47 language tag.
	Language string `yaml:"language"`

	// Output is the EPUB destination. Empty = ./output/<dir-name>.epub.
	Output string `yaml:"output"`

	// Cover is an explicit cover image path. Empty = <dir>/cover.png
	// when that file exists.
	Cover string `yaml:"cover"`

	// Pattern selects the Markdown files; *.markdown is always included.
	Pattern string `yaml:"pattern"`

	// Style is a CSS file path replacing the built-in stylesheet.
	Style string `yaml:"style"`
}

// Default returns the configuration used when nothing is specified.
func Default() Config {
	return Config{
		Author:   "Unknown",
		Language: "en",
		Pattern:  "*.md",
	}
}

// Resolve fills the source-directory dependent fields: title from the
// directory base name, output under ./output, and the conventional
// cover.png when present and no cover was given.
func (c Config) Resolve(sourceDir string) Config {
	base := filepath.Base(filepath.Clean(sourceDir))
	if c.Title == "" {
		c.Title = base
	}
	if c.Output == "" {
		c.Output = filepath.Join("output", base+".epub")
	}
	if c.Cover == "" {
		conventional := filepath.Join(sourceDir, "cover.png")
		if info, err := os.Stat(conventional); err == nil && !info.IsDir() {
			c.Cover = conventional
		}
	}
	return c
}

// Load reads a YAML config file and merges it over the defaults.
// Unknown keys are rejected so typos surface instead of being dropped.
func Load(path string) (Config, error) {
	if path == "" {
		return Config{}, ErrEmptyConfigName
	}

	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return cfg, nil
}
