package md2epub

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestSetCoverFile(t *testing.T) {
	t.Parallel()

	t.Run("extension derived from source path", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := filepath.Join(dir, "artwork.JPG")
		writeFile(t, path, []byte("jpg-bytes"))

		b := newTestBook(t)
		if err := b.SetCoverFile(path); err != nil {
			t.Fatalf("SetCoverFile: %v", err)
		}

		cover := b.Cover()
		if cover == nil {
			t.Fatal("cover not set")
		}
		if cover.FileName != "cover.jpg" {
			t.Errorf("FileName = %q, want cover.jpg", cover.FileName)
		}
		if cover.MediaType != "image/jpeg" {
			t.Errorf("MediaType = %q, want image/jpeg", cover.MediaType)
		}
		if string(cover.Data) != "jpg-bytes" {
			t.Errorf("Data = %q", cover.Data)
		}
	})

	t.Run("missing file is an error and a no-op", func(t *testing.T) {
		t.Parallel()
		b := newTestBook(t)
		err := b.SetCoverFile(filepath.Join(t.TempDir(), "cover.png"))
		if !errors.Is(err, ErrCoverNotFound) {
			t.Errorf("err = %v, want ErrCoverNotFound", err)
		}
		if b.Cover() != nil {
			t.Error("cover set despite missing file")
		}
	})

	t.Run("unsupported format rejected", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := filepath.Join(dir, "cover.pdf")
		writeFile(t, path, []byte("%PDF"))

		b := newTestBook(t)
		if err := b.SetCoverFile(path); err == nil {
			t.Error("expected error for unsupported cover format")
		}
	})

	t.Run("cover stays outside the image collection", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := filepath.Join(dir, "cover.png")
		writeFile(t, path, []byte("png"))

		b := newTestBook(t)
		if err := b.SetCoverFile(path); err != nil {
			t.Fatal(err)
		}
		if len(b.Images()) != 0 {
			t.Error("cover must not join the image assets")
		}
	})
}
