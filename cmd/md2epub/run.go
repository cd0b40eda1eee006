package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	md2epub "github.com/alnah/go-md2epub"
	"github.com/alnah/go-md2epub/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrTooManyArgs = errors.New("expected at most one source directory")
	ErrReadCSS     = errors.New("failed to read CSS file")
	ErrNotADir     = errors.New("source is not a directory")
)

// run assembles the configuration, drives the pipeline, and reports the
// outcome on stdout/stderr.
func run(f *cliFlags, args []string, stdout, stderr io.Writer) error {
	cfg, err := buildConfig(f)
	if err != nil {
		return err
	}

	sourceDir := "."
	switch len(args) {
	case 0:
	case 1:
		sourceDir = args[0]
	default:
		return fmt.Errorf("%w: got %d", ErrTooManyArgs, len(args))
	}

	info, err := os.Stat(sourceDir)
	if err != nil {
		return fmt.Errorf("source directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotADir, sourceDir)
	}

	cfg = cfg.Resolve(sourceDir)

	logw := io.Writer(io.Discard)
	if f.verbose {
		logw = stderr
	}

	opts := []md2epub.Option{md2epub.WithLogWriter(logw)}
	if cfg.Style != "" {
		css, err := os.ReadFile(cfg.Style) // #nosec G304 -- style path is user-provided
		if err != nil {
			return fmt.Errorf("%w: %v", ErrReadCSS, err)
		}
		opts = append(opts, md2epub.WithStylesheet(string(css)))
	}

	book, err := md2epub.New(md2epub.Metadata{
		Title:    cfg.Title,
		Author:   cfg.Author,
		Language: cfg.Language,
	}, opts...)
	if err != nil {
		return err
	}

	report, err := book.AddMarkdownDirectory(sourceDir, cfg.Pattern)
	if err != nil {
		return err
	}

	if cfg.Cover != "" {
		// A broken cover is a per-resource failure: report and continue.
		if err := book.SetCoverFile(cfg.Cover); err != nil {
			fmt.Fprintf(stderr, "cover skipped: %v\n", err)
		}
	}

	if err := book.WriteFile(cfg.Output); err != nil {
		return err
	}

	if !f.quiet {
		fmt.Fprintf(stdout, "Created %s (%d chapters, %d images, title %q, author %q)\n",
			cfg.Output, report.Chapters, report.Images, cfg.Title, cfg.Author)
		for _, s := range report.Skipped {
			fmt.Fprintf(stderr, "skipped %s: %v\n", s.Path, s.Err)
		}
	}
	return nil
}

// buildConfig layers defaults, the optional config file, and flags.
func buildConfig(f *cliFlags) (config.Config, error) {
	cfg := config.Default()
	if f.config != "" {
		loaded, err := config.Load(f.config)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	if f.title != "" {
		cfg.Title = f.title
	}
	if f.author != "" {
		cfg.Author = f.author
	}
	if f.language != "" {
		cfg.Language = f.language
	}
	if f.output != "" {
		cfg.Output = f.output
	}
	if f.cover != "" {
		cfg.Cover = f.cover
	}
	if f.pattern != "" {
		cfg.Pattern = f.pattern
	}
	if f.style != "" {
		cfg.Style = f.style
	}

	return cfg, nil
}
