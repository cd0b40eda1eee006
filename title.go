package md2epub

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alnah/go-md2epub/internal/yamlutil"
)

// titleStrategy derives a display title from raw Markdown content.
// It returns false when the strategy does not apply; the resolver then
// tries the next one in order.
type titleStrategy func(content string) (string, bool)

// titleStrategies is the resolution order: front matter wins over an ATX
// heading, which wins over a setext heading. The filename fallback is not
// part of the chain because it needs the path, not the content.
var titleStrategies = []titleStrategy{
	titleFromFrontMatter,
	titleFromATXHeading,
	titleFromSetextHeading,
}

// resolveTitle returns a non-empty display title for a document, trying
// each content strategy in order and falling back to the filename.
func resolveTitle(content, path string) string {
	for _, strategy := range titleStrategies {
		if title, ok := strategy(content); ok {
			return title
		}
	}
	return titleFromFilename(path)
}

// titleFromFrontMatter returns the front matter "title" value if the
// document begins with a well-formed block that carries one. A malformed
// block never aborts resolution; the next strategy gets its turn.
func titleFromFrontMatter(content string) (string, bool) {
	block, _, ok := splitFrontMatter(content)
	if !ok {
		return "", false
	}
	var fm FrontMatter
	if err := yamlutil.Unmarshal([]byte(block), &fm); err != nil {
		return "", false
	}
	if fm.Title == "" {
		return "", false
	}
	return fm.Title, true
}

// titleFromATXHeading returns the text of the first "# " level-1 heading.
func titleFromATXHeading(content string) (string, bool) {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			if title := strings.TrimSpace(line[2:]); title != "" {
				return title, true
			}
		}
	}
	return "", false
}

// titleFromSetextHeading recognizes a non-blank line underlined by a run
// of "=" characters as a level-1 heading and returns the line above.
func titleFromSetextHeading(content string) (string, bool) {
	lines := strings.Split(content, "\n")
	for i := 0; i+1 < len(lines); i++ {
		text := strings.TrimSpace(lines[i])
		underline := strings.TrimSpace(lines[i+1])
		if text == "" || underline == "" {
			continue
		}
		if strings.Trim(underline, "=") == "" {
			return text, true
		}
	}
	return "", false
}

// englishTitleCaser title-cases the filename fallback. The caser is not
// language aware beyond this; titles from content are never recased.
var englishTitleCaser = cases.Title(language.English)

// titleFromFilename derives a title from a file path: extension dropped,
// underscores and hyphens replaced by spaces, words title-cased.
func titleFromFilename(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	stem = strings.NewReplacer("_", " ", "-", " ").Replace(stem)
	return englishTitleCaser.String(stem)
}

// splitFrontMatter splits a document that begins with a "---" delimited
// block into the block body and the rest. ok is false when no complete
// block is present, in which case the content is returned unchanged.
func splitFrontMatter(content string) (block, rest string, ok bool) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return "", content, false
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			block = strings.Join(lines[1:i], "\n")
			rest = strings.Join(lines[i+1:], "\n")
			return block, rest, true
		}
	}
	return "", content, false
}

// parseFrontMatter extracts the typed front matter from a document and
// returns the body with the block stripped. A missing or malformed block
// yields a nil FrontMatter and the original content.
func parseFrontMatter(content string) (*FrontMatter, string) {
	block, rest, ok := splitFrontMatter(content)
	if !ok {
		return nil, content
	}
	if strings.TrimSpace(block) == "" {
		// Empty but well-formed block: nothing to parse, still stripped.
		return nil, rest
	}
	var fm FrontMatter
	if err := yamlutil.Unmarshal([]byte(block), &fm); err != nil {
		return nil, content
	}
	return &fm, rest
}
