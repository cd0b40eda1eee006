package md2epub

import (
	"bytes"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Converter abstracts Markdown to HTML conversion. Reset clears any
// converter-internal state (footnote and heading ID registries) so
// chapters do not leak state into one another.
type Converter interface {
	ToHTML(content string) (string, error)
	Reset()
}

// goldmarkConverter converts Markdown to HTML using goldmark (pure Go).
type goldmarkConverter struct {
	md goldmark.Markdown
}

// newGoldmarkConverter creates a goldmarkConverter with GFM extensions
// and syntax highlighting.
func newGoldmarkConverter() *goldmarkConverter {
	c := &goldmarkConverter{}
	c.Reset()
	return c
}

// ToHTML converts Markdown content to an HTML fragment.
func (c *goldmarkConverter) ToHTML(content string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return buf.String(), nil
}

// Reset rebuilds the goldmark instance. Goldmark keeps per-conversion
// parser state internal, but auto heading IDs and footnote numbering are
// seeded from the instance; a fresh one guarantees chapter isolation.
func (c *goldmarkConverter) Reset() {
	c.md = goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes instead of inline styles
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(), // EPUB pages are XHTML; self-closing tags required
		),
	)
}

// Compile-time interface check.
var _ Converter = (*goldmarkConverter)(nil)
