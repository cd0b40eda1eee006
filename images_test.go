package md2epub

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestImageMediaType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{"a.jpg", "image/jpeg", true},
		{"a.JPEG", "image/jpeg", true},
		{"a.png", "image/png", true},
		{"a.PNG", "image/png", true},
		{"a.gif", "image/gif", true},
		{"a.bmp", "image/bmp", true},
		{"a.tiff", "image/tiff", true},
		{"a.webp", "image/webp", true},
		{"diagram.svg", "image/svg+xml", true},
		{"a.txt", "", false},
		{"noext", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			got, ok := imageMediaType(tt.path)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("imageMediaType(%q) = %q, %v; want %q, %v", tt.path, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFindImages(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.PNG"), []byte("png-bytes"))
	writeFile(t, filepath.Join(dir, "sub", "b.jpg"), []byte("jpg-bytes"))
	writeFile(t, filepath.Join(dir, "notes.txt"), []byte("not an image"))
	writeFile(t, filepath.Join(dir, "chapter.md"), []byte("# md"))

	paths, err := findImages(dir)
	if err != nil {
		t.Fatalf("findImages: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("found %d images, want 2: %v", len(paths), paths)
	}
	// Sorted by path: a.PNG before sub/b.jpg.
	if filepath.Base(paths[0]) != "a.PNG" || filepath.Base(paths[1]) != "b.jpg" {
		t.Errorf("unexpected order: %v", paths)
	}
}

func TestLoadImage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "b.jpg")
	writeFile(t, path, []byte("jpg-bytes"))

	img, err := loadImage(path, dir)
	if err != nil {
		t.Fatalf("loadImage: %v", err)
	}
	if img.Path != "sub/b.jpg" {
		t.Errorf("Path = %q, want %q (root prefix stripped, slash separated)", img.Path, "sub/b.jpg")
	}
	if img.MediaType != "image/jpeg" {
		t.Errorf("MediaType = %q, want image/jpeg", img.MediaType)
	}
	if img.ID != "b.jpg" {
		t.Errorf("ID = %q, want basename", img.ID)
	}
	if string(img.Data) != "jpg-bytes" {
		t.Errorf("Data = %q", img.Data)
	}
}

func TestLoadImageUnreadable(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if _, err := loadImage(filepath.Join(dir, "missing.png"), dir); err == nil {
		t.Error("expected error for missing file")
	}
}
