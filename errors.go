package md2epub

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyBook       = errors.New("book has no chapters")
	ErrNoMarkdownFiles = errors.New("no markdown files found")
	ErrHTMLConversion  = errors.New("HTML conversion failed")
	ErrNormalizeHTML   = errors.New("HTML normalization failed")
	ErrCoverNotFound   = errors.New("cover image file not found")
	ErrPackageWrite    = errors.New("failed to write EPUB package")

	// Metadata validation errors.
	ErrEmptyTitle = errors.New("book title cannot be empty")
)
