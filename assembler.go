package md2epub

import (
	"fmt"
	"os"
	"path/filepath"
)

// markdownPattern is always searched in addition to the configured glob.
const markdownPattern = "*.markdown"

// AddChapterFile reads one Markdown file and appends it as the next
// chapter: front matter is parsed and stripped, the body converted to
// HTML, the title resolved through the fallback chain (unless explicit),
// and the result normalized into an embeddable fragment.
func (b *Book) AddChapterFile(path, explicitTitle string) error {
	raw, err := os.ReadFile(path) // #nosec G304 -- path comes from the user's source directory
	if err != nil {
		return fmt.Errorf("reading markdown file: %w", err)
	}
	content := string(raw)

	fm, body := parseFrontMatter(content)

	htmlContent, err := b.converter.ToHTML(body)
	if err != nil {
		return err
	}
	// Clear converter state so footnote and heading ID registries do not
	// leak into the next chapter.
	b.converter.Reset()

	title := explicitTitle
	if title == "" {
		title = resolveTitle(content, path)
	}

	normalized, err := normalizeContent(htmlContent)
	if err != nil {
		return err
	}

	ch := b.appendChapter(title, normalized, fm)
	b.logf("added chapter %s: %s (%s)", ch.ID, ch.Title, filepath.Base(path))
	return nil
}

// AddMarkdownDirectory discovers Markdown files in dir matching pattern
// plus "*.markdown", deduplicated and in natural filename order, and adds
// each as a chapter. A file that cannot be processed is reported and
// skipped; it never becomes a chapter and never consumes an identifier.
// Afterwards all images under dir are bundled. The returned error is
// non-nil only for batch-level failures: an unreadable directory, no
// candidate files, or zero chapters added.
func (b *Book) AddMarkdownDirectory(dir, pattern string) (*Report, error) {
	if pattern == "" {
		pattern = "*.md"
	}

	files, err := discoverMarkdownFiles(dir, pattern)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoMarkdownFiles, dir)
	}
	b.logf("found %d markdown files in %s", len(files), dir)

	report := &Report{}
	for _, f := range files {
		if err := b.AddChapterFile(f, ""); err != nil {
			b.logf("skipping %s: %v", f, err)
			report.Skipped = append(report.Skipped, SkippedFile{Path: f, Err: err})
			continue
		}
		report.Chapters++
	}

	if report.Chapters == 0 {
		return report, fmt.Errorf("%w: all %d files failed", ErrNoMarkdownFiles, len(files))
	}

	report.Images = b.addImagesFromDirectory(dir, report)
	return report, nil
}

// discoverMarkdownFiles globs dir for the configured pattern and
// "*.markdown", deduplicates, and orders the result naturally.
func discoverMarkdownFiles(dir, pattern string) ([]string, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("source directory: %w", err)
	}

	seen := make(map[string]bool)
	var files []string
	for _, p := range []string{pattern, markdownPattern} {
		matches, err := filepath.Glob(filepath.Join(dir, p))
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", p, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}

	sortNatural(files)
	return files, nil
}

// addImagesFromDirectory bundles every image under dir. A single
// unreadable image is reported and skipped. Returns the number of assets
// registered.
func (b *Book) addImagesFromDirectory(dir string, report *Report) int {
	paths, err := findImages(dir)
	if err != nil {
		b.logf("image discovery failed: %v", err)
		return 0
	}
	b.logf("found %d image files", len(paths))

	added := 0
	for _, p := range paths {
		img, err := loadImage(p, dir)
		if err != nil {
			b.logf("skipping image %s: %v", p, err)
			if report != nil {
				report.Skipped = append(report.Skipped, SkippedFile{Path: p, Err: err})
			}
			continue
		}
		if b.addImage(img) {
			added++
		}
	}
	return added
}
