package md2epub

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2epub/internal/fileutil"
)

// SetCoverFile reads an image file and sets it as the book's single
// cover. The cover lives outside the image collection and is referenced
// by the package metadata; its container name is "cover" plus the
// extension of the source path.
func (b *Book) SetCoverFile(path string) error {
	if !fileutil.FileExists(path) {
		return fmt.Errorf("%w: %s", ErrCoverNotFound, path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	mediaType, ok := imageMediaType(path)
	if !ok {
		return fmt.Errorf("unsupported cover format: %q", ext)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- cover path is user-provided
	if err != nil {
		return fmt.Errorf("reading cover: %w", err)
	}

	b.cover = &CoverImage{
		FileName:  "cover" + ext,
		MediaType: mediaType,
		Data:      data,
	}
	b.logf("cover set: %s", filepath.Base(path))
	return nil
}
