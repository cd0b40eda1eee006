package md2epub

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/alnah/go-md2epub/internal/assets"
)

// Book is the aggregate owning the growing document model: chapters in
// insertion order (= spine order), image assets, an optional stylesheet
// and an optional cover. Construct with New, populate, then emit with
// WriteFile.
//
// A Book is not safe for concurrent use by multiple goroutines.
type Book struct {
	meta       Metadata
	chapters   []*Chapter
	images     []ImageAsset
	imagePaths map[string]bool
	stylesheet string
	cover      *CoverImage
	converter  Converter
	logw       io.Writer
	nextID     int
}

// Option customizes Book construction.
type Option func(*Book)

// WithConverter replaces the default goldmark Markdown converter.
func WithConverter(c Converter) Option {
	return func(b *Book) { b.converter = c }
}

// WithLogWriter sets the destination for per-resource progress and skip
// diagnostics. Defaults to os.Stderr; use io.Discard to silence.
func WithLogWriter(w io.Writer) Option {
	return func(b *Book) { b.logw = w }
}

// WithStylesheet sets the CSS attached to every chapter page, replacing
// the built-in default.
func WithStylesheet(css string) Option {
	return func(b *Book) { b.stylesheet = css }
}

// New creates a Book with the given metadata. The metadata is immutable
// after construction. An empty Identifier is replaced with a random UUID,
// an empty Language defaults to "en"; an empty Title is an error.
func New(meta Metadata, opts ...Option) (*Book, error) {
	if meta.Title == "" {
		return nil, ErrEmptyTitle
	}
	if meta.Identifier == "" {
		meta.Identifier = uuid.NewString()
	}
	if meta.Language == "" {
		meta.Language = "en"
	}

	b := &Book{
		meta:       meta,
		imagePaths: make(map[string]bool),
		logw:       os.Stderr,
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.converter == nil {
		b.converter = newGoldmarkConverter()
	}

	return b, nil
}

// Metadata returns the book-level metadata.
func (b *Book) Metadata() Metadata {
	return b.meta
}

// Chapters returns the chapters in spine order.
func (b *Book) Chapters() []*Chapter {
	return append([]*Chapter(nil), b.chapters...)
}

// Images returns the registered image assets in registration order.
func (b *Book) Images() []ImageAsset {
	return append([]ImageAsset(nil), b.images...)
}

// Cover returns the cover image, or nil when none is set.
func (b *Book) Cover() *CoverImage {
	return b.cover
}

// SetStylesheet sets the CSS attached to every chapter page.
func (b *Book) SetStylesheet(css string) {
	b.stylesheet = css
}

// appendChapter assigns the next sequential identifier and adds the
// chapter to the spine. Identifiers are dense among successful files:
// a failed file never consumes one.
func (b *Book) appendChapter(title, body string, fm *FrontMatter) *Chapter {
	b.nextID++
	ch := &Chapter{
		ID:       fmt.Sprintf("chapter_%d", b.nextID),
		Title:    title,
		Body:     body,
		FileName: fmt.Sprintf("chapter_%d.xhtml", b.nextID),
		Meta:     fm,
	}
	b.chapters = append(b.chapters, ch)
	return ch
}

// addImage registers an asset, ignoring duplicates by relative path.
func (b *Book) addImage(img ImageAsset) bool {
	if b.imagePaths[img.Path] {
		return false
	}
	b.imagePaths[img.Path] = true
	b.images = append(b.images, img)
	return true
}

// ensureStylesheet attaches the built-in default stylesheet when none
// was supplied.
func (b *Book) ensureStylesheet() {
	if b.stylesheet == "" {
		b.stylesheet = assets.DefaultStylesheet()
	}
}

// logf writes a progress diagnostic to the configured log writer.
func (b *Book) logf(format string, args ...any) {
	if b.logw != nil {
		fmt.Fprintf(b.logw, format+"\n", args...)
	}
}
