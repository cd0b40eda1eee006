package md2epub

import (
	"encoding/xml"
	"fmt"
	"regexp"
)

// Container-internal resource locations, relative to the OEBPS root.
const (
	navHref   = "nav.xhtml"
	ncxHref   = "toc.ncx"
	styleHref = "style/default.css"
)

// Fixed manifest identifiers.
const (
	navID   = "nav"
	ncxID   = "ncx"
	styleID = "style_default"
	coverID = "cover-image"
)

// opfPackage is the root <package> element of the OPF document.
type opfPackage struct {
	XMLName          xml.Name    `xml:"package"`
	Xmlns            string      `xml:"xmlns,attr"`
	Version          string      `xml:"version,attr"`
	UniqueIdentifier string      `xml:"unique-identifier,attr"`
	Metadata         opfMetadata `xml:"metadata"`
	Manifest         opfManifest `xml:"manifest"`
	Spine            opfSpine    `xml:"spine"`
}

// opfMetadata holds the Dublin Core metadata block.
type opfMetadata struct {
	XmlnsDC    string        `xml:"xmlns:dc,attr"`
	Identifier opfIdentifier `xml:"dc:identifier"`
	Title      string        `xml:"dc:title"`
	Language   string        `xml:"dc:language"`
	Creator    string        `xml:"dc:creator,omitempty"`
	Metas      []opfMeta     `xml:"meta"`
}

// opfIdentifier is the dc:identifier element referenced by the package's
// unique-identifier attribute.
type opfIdentifier struct {
	ID    string `xml:"id,attr"`
	Value string `xml:",chardata"`
}

// opfMeta covers both meta flavors: ePub 2 name/content pairs and
// ePub 3 property elements.
type opfMeta struct {
	Name     string `xml:"name,attr,omitempty"`
	Content  string `xml:"content,attr,omitempty"`
	Property string `xml:"property,attr,omitempty"`
	Value    string `xml:",chardata"`
}

// opfManifest wraps the <manifest> element.
type opfManifest struct {
	Items []opfItem `xml:"item"`
}

// opfItem is a single manifest <item>.
type opfItem struct {
	ID         string `xml:"id,attr"`
	Href       string `xml:"href,attr"`
	MediaType  string `xml:"media-type,attr"`
	Properties string `xml:"properties,attr,omitempty"`
}

// opfSpine wraps the <spine> element defining reading order.
type opfSpine struct {
	Toc      string       `xml:"toc,attr"`
	ItemRefs []opfItemRef `xml:"itemref"`
}

// opfItemRef is a single spine <itemref>.
type opfItemRef struct {
	IDRef string `xml:"idref,attr"`
}

// buildOPF serializes the package document: manifest entries for every
// chapter, image, the stylesheet, the navigation documents and the cover
// if present; the spine (navigation entry first, then chapters in
// insertion order); and the book-level metadata.
func (b *Book) buildOPF(modified string) ([]byte, error) {
	pkg := opfPackage{
		Xmlns:            "http://www.idpf.org/2007/opf",
		Version:          "3.0",
		UniqueIdentifier: "BookID",
		Metadata: opfMetadata{
			XmlnsDC:    "http://purl.org/dc/elements/1.1/",
			Identifier: opfIdentifier{ID: "BookID", Value: b.meta.Identifier},
			Title:      b.meta.Title,
			Language:   b.meta.Language,
			Creator:    b.meta.Author,
			Metas: []opfMeta{
				{Property: "dcterms:modified", Value: modified},
			},
		},
		Spine: opfSpine{Toc: ncxID},
	}

	pkg.Manifest.Items = append(pkg.Manifest.Items,
		opfItem{ID: navID, Href: navHref, MediaType: "application/xhtml+xml", Properties: "nav"},
		opfItem{ID: ncxID, Href: ncxHref, MediaType: "application/x-dtbncx+xml"},
		opfItem{ID: styleID, Href: styleHref, MediaType: "text/css"},
	)

	pkg.Spine.ItemRefs = append(pkg.Spine.ItemRefs, opfItemRef{IDRef: navID})
	for _, ch := range b.chapters {
		pkg.Manifest.Items = append(pkg.Manifest.Items, opfItem{
			ID:        ch.ID,
			Href:      ch.FileName,
			MediaType: "application/xhtml+xml",
		})
		pkg.Spine.ItemRefs = append(pkg.Spine.ItemRefs, opfItemRef{IDRef: ch.ID})
	}

	usedIDs := map[string]bool{navID: true, ncxID: true, styleID: true, coverID: true}
	for _, ch := range b.chapters {
		usedIDs[ch.ID] = true
	}
	for _, img := range b.images {
		if b.cover != nil && img.Path == b.cover.FileName {
			// The cover manifest item below already claims this href.
			continue
		}
		pkg.Manifest.Items = append(pkg.Manifest.Items, opfItem{
			ID:        uniqueManifestID(img.ID, usedIDs),
			Href:      img.Path,
			MediaType: img.MediaType,
		})
	}

	if b.cover != nil {
		pkg.Manifest.Items = append(pkg.Manifest.Items, opfItem{
			ID:         coverID,
			Href:       b.cover.FileName,
			MediaType:  b.cover.MediaType,
			Properties: "cover-image",
		})
		// ePub 2 readers find the cover through this meta pair.
		pkg.Metadata.Metas = append(pkg.Metadata.Metas, opfMeta{Name: "cover", Content: coverID})
	}

	out, err := xml.MarshalIndent(pkg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling OPF: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

// invalidIDChars matches characters not allowed in manifest identifiers.
var invalidIDChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// uniqueManifestID turns an asset identifier (typically a file base name)
// into a valid, unused XML id, suffixing a counter on collision.
func uniqueManifestID(name string, used map[string]bool) string {
	id := invalidIDChars.ReplaceAllString(name, "_")
	if id == "" || !isIDStart(id[0]) {
		id = "id_" + id
	}
	candidate := id
	for n := 2; used[candidate]; n++ {
		candidate = fmt.Sprintf("%s_%d", id, n)
	}
	used[candidate] = true
	return candidate
}

// isIDStart reports whether c may begin an XML identifier.
func isIDStart(c byte) bool {
	return c == '_' || ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}
