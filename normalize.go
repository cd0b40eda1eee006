package md2epub

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// normalizeContent prepares converted HTML for embedding as a chapter
// page body. The first <h1> duplicates the externally tracked chapter
// title and is removed; any later <h1> is preserved as content.
func normalizeContent(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNormalizeHTML, err)
	}

	doc.Find("h1").First().Remove()

	// goquery parses fragments into a full document tree; render only
	// the body children so the result stays an embeddable fragment.
	body, err := doc.Find("body").Html()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNormalizeHTML, err)
	}

	return strings.TrimSpace(body), nil
}
