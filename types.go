package md2epub

// Metadata holds book-level metadata. It is set once at Book construction
// and immutable thereafter.
type Metadata struct {
	// Identifier is the package's unique identifier. Empty = random UUID.
	Identifier string

	// Title is the book title shown in reading systems.
	Title string

	// Author is the dc:creator value.
	Author string

	// Language is a BCP 47 language tag (e.g., "en", "zh-CN").
	Language string
}

// Chapter is one source document mapped to one output page.
type Chapter struct {
	// ID is the sequential chapter identifier ("chapter_1", "chapter_2", ...).
	// Assignment is monotonic in discovery order and never reused.
	ID string

	// Title is the resolved display title.
	Title string

	// Body is the normalized XHTML fragment embedded in the chapter page.
	Body string

	// FileName is the output page name, derived from ID ("chapter_1.xhtml").
	FileName string

	// Meta holds the front matter parsed from the source document, if any.
	Meta *FrontMatter
}

// ImageAsset is a binary resource bundled into the package.
type ImageAsset struct {
	// ID is a stable identifier, the file's base name.
	ID string

	// Path is the container-relative path (source root prefix stripped,
	// slash separated). Chapter bodies reference images by this path.
	Path string

	// MediaType is the MIME type classified from the file extension.
	MediaType string

	// Data holds the raw file bytes.
	Data []byte
}

// CoverImage is the book's single cover, distinct from the image
// collection; it is referenced by the package metadata, not by URL.
type CoverImage struct {
	// FileName is the container name ("cover.png", "cover.jpg", ...),
	// with the extension derived from the source path.
	FileName string

	// MediaType is the MIME type classified from the file extension.
	MediaType string

	// Data holds the raw file bytes.
	Data []byte
}

// FrontMatter is the typed metadata block parsed from the top of a
// Markdown document. Only Title participates in title resolution; the
// rest is exposed for callers.
type FrontMatter struct {
	Title       string `yaml:"title"`
	Author      string `yaml:"author"`
	Date        string `yaml:"date"`
	Description string `yaml:"description"`
}

// SkippedFile records a per-file failure during directory assembly.
// Skipped files never become chapters; processing continues without them.
type SkippedFile struct {
	Path string
	Err  error
}

// Report summarizes a directory assembly run.
type Report struct {
	// Chapters is the number of chapters successfully added.
	Chapters int

	// Images is the number of image assets registered.
	Images int

	// Skipped lists files that failed and were left out.
	Skipped []SkippedFile
}
