package md2epub

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// imageMediaTypes maps recognized image extensions to their MIME types.
// Files with any other extension are not bundled.
var imageMediaTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
	".tiff": "image/tiff",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
}

// imageMediaType classifies a path's media type by extension,
// case-insensitively. ok is false for unrecognized extensions.
func imageMediaType(path string) (string, bool) {
	mt, ok := imageMediaTypes[strings.ToLower(filepath.Ext(path))]
	return mt, ok
}

// findImages recursively enumerates image files under root, deduplicated
// and sorted by path for deterministic registration order.
func findImages(root string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := imageMediaType(path); !ok {
			return nil
		}
		if !seen[path] {
			seen[path] = true
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return paths, nil
}

// loadImage reads an image file and builds its asset entry. The
// container-relative path is the source path with the root prefix
// stripped, always slash separated.
func loadImage(path, root string) (ImageAsset, error) {
	mediaType, ok := imageMediaType(path)
	if !ok {
		return ImageAsset{}, fmt.Errorf("unsupported image format: %s", filepath.Ext(path))
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from walking the user's source directory
	if err != nil {
		return ImageAsset{}, fmt.Errorf("reading image: %w", err)
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return ImageAsset{}, fmt.Errorf("relativizing image path: %w", err)
	}

	return ImageAsset{
		ID:        filepath.Base(path),
		Path:      filepath.ToSlash(rel),
		MediaType: mediaType,
		Data:      data,
	}, nil
}
