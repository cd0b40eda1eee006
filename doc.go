// Package md2epub assembles a directory of Markdown documents into a
// single EPUB package.
//
// # Quick Start
//
// Create a book, add a directory of chapters, and write the package:
//
//	book, err := md2epub.New(md2epub.Metadata{
//	    Title:    "My Book",
//	    Author:   "Jane Doe",
//	    Language: "en",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if _, err := book.AddMarkdownDirectory("./chapters", "*.md"); err != nil {
//	    log.Fatal(err)
//	}
//	if err := book.WriteFile("out/my-book.epub"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Assembly Pipeline
//
// Each discovered file goes through these stages:
//
//  1. Natural-order discovery (numeric runs compare by value, so
//     chapter2.md sorts before chapter10.md)
//  2. Front matter parsing (typed, YAML) and stripping
//  3. Markdown to HTML conversion via Goldmark (GFM, footnotes,
//     syntax highlighting)
//  4. Title resolution: front matter title, first "# " heading, setext
//     heading, then a title-cased filename fallback
//  5. Normalization: the first <h1> is dropped because the chapter
//     title is tracked in the package navigation
//
// Images found under the source directory are bundled with their
// directory-relative paths, so relative URLs in the Markdown keep
// working inside the package. A cover.png next to the chapters (or any
// image passed to SetCoverFile) becomes the package cover.
//
// # Error Handling
//
// A file that cannot be read or converted is reported and skipped; the
// run fails only when no chapter at all could be added, or when the
// final package cannot be written. Per-file skips are listed in the
// Report returned by AddMarkdownDirectory.
//
// A Book is not safe for concurrent use by multiple goroutines.
package md2epub
