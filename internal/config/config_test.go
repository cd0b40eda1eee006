package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-md2epub/internal/config"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := config.Default()

	if cfg.Author != "Unknown" {
		t.Errorf("Author = %q, want %q", cfg.Author, "Unknown")
	}
	if cfg.Language != "en" {
		t.Errorf("Language = %q, want %q", cfg.Language, "en")
	}
	if cfg.Pattern != "*.md" {
		t.Errorf("Pattern = %q, want %q", cfg.Pattern, "*.md")
	}
	if cfg.Title != "" || cfg.Output != "" || cfg.Cover != "" {
		t.Errorf("Default() = %+v, want empty source-dependent fields", cfg)
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("fills title and output from directory name", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "my-book")
		if err := os.Mkdir(dir, 0o750); err != nil {
			t.Fatal(err)
		}

		cfg := config.Default().Resolve(dir)

		if cfg.Title != "my-book" {
			t.Errorf("Title = %q, want %q", cfg.Title, "my-book")
		}
		want := filepath.Join("output", "my-book.epub")
		if cfg.Output != want {
			t.Errorf("Output = %q, want %q", cfg.Output, want)
		}
		if cfg.Cover != "" {
			t.Errorf("Cover = %q, want empty (no conventional cover)", cfg.Cover)
		}
	})

	t.Run("picks up conventional cover.png", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		cover := filepath.Join(dir, "cover.png")
		if err := os.WriteFile(cover, []byte("png"), 0o600); err != nil {
			t.Fatal(err)
		}

		cfg := config.Default().Resolve(dir)

		if cfg.Cover != cover {
			t.Errorf("Cover = %q, want %q", cfg.Cover, cover)
		}
	})

	t.Run("explicit values are preserved", func(t *testing.T) {
		t.Parallel()

		cfg := config.Config{
			Title:  "Explicit",
			Output: "dist/book.epub",
			Cover:  "art/front.jpg",
		}.Resolve(t.TempDir())

		if cfg.Title != "Explicit" {
			t.Errorf("Title = %q, want %q", cfg.Title, "Explicit")
		}
		if cfg.Output != "dist/book.epub" {
			t.Errorf("Output = %q, want %q", cfg.Output, "dist/book.epub")
		}
		if cfg.Cover != "art/front.jpg" {
			t.Errorf("Cover = %q, want %q", cfg.Cover, "art/front.jpg")
		}
	})

	t.Run("trailing separator is cleaned", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "notes")
		if err := os.Mkdir(dir, 0o750); err != nil {
			t.Fatal(err)
		}

		cfg := config.Default().Resolve(dir + string(filepath.Separator))

		if cfg.Title != "notes" {
			t.Errorf("Title = %q, want %q", cfg.Title, "notes")
		}
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	writeConfig := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "md2epub.yaml")
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
		return path
	}

	t.Run("valid config merges over defaults", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "title: Loaded\nauthor: Jane Doe\n")

		cfg, err := config.Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Title != "Loaded" {
			t.Errorf("Title = %q, want %q", cfg.Title, "Loaded")
		}
		if cfg.Author != "Jane Doe" {
			t.Errorf("Author = %q, want %q", cfg.Author, "Jane Doe")
		}
		if cfg.Language != "en" {
			t.Errorf("Language = %q, want default %q", cfg.Language, "en")
		}
	})

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()

		_, err := config.Load("")
		if !errors.Is(err, config.ErrEmptyConfigName) {
			t.Errorf("Load(\"\") error = %v, want %v", err, config.ErrEmptyConfigName)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Errorf("Load() error = %v, want %v", err, config.ErrConfigNotFound)
		}
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "title: x\ntitel: typo\n")

		_, err := config.Load(path)
		if !errors.Is(err, config.ErrConfigParse) {
			t.Errorf("Load() error = %v, want %v", err, config.ErrConfigParse)
		}
	})

	t.Run("malformed YAML", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "title: [unclosed\n")

		_, err := config.Load(path)
		if !errors.Is(err, config.ErrConfigParse) {
			t.Errorf("Load() error = %v, want %v", err, config.ErrConfigParse)
		}
	})
}
