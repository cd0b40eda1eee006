// Package assets provides the built-in stylesheet bundled into
// generated EPUB packages.
package assets

import (
	"embed"
)

//go:embed styles/*
var styles embed.FS

// DefaultStylesheet returns the built-in CSS linked to every chapter
// page when no custom stylesheet is supplied.
func DefaultStylesheet() string {
	content, err := styles.ReadFile("styles/default.css")
	if err != nil {
		// The file is embedded at compile time; a read failure here is a
		// packaging bug, not a runtime condition.
		panic("assets: embedded default stylesheet missing: " + err.Error())
	}
	return string(content)
}
