package md2epub

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"html/template"
)

// tocEntry is one entry of the flat table of contents: every chapter in
// reading order, no nesting.
type tocEntry struct {
	ID    string
	Title string
	Href  string
}

// tocEntries builds the flat table of contents from the chapters in
// spine order.
func (b *Book) tocEntries() []tocEntry {
	entries := make([]tocEntry, 0, len(b.chapters))
	for _, ch := range b.chapters {
		entries = append(entries, tocEntry{ID: ch.ID, Title: ch.Title, Href: ch.FileName})
	}
	return entries
}

// navTemplate renders the ePub 3 navigation document.
var navTemplate = template.Must(template.New("nav").Parse(`<?xml version="1.0" encoding="utf-8"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml" xmlns:epub="http://www.idpf.org/2007/ops" lang="{{.Lang}}" xml:lang="{{.Lang}}">
<head>
<title>{{.Title}}</title>
</head>
<body>
<nav epub:type="toc" id="toc">
<ol>
{{range .Entries}}<li id="{{.ID}}"><a href="{{.Href}}">{{.Title}}</a></li>
{{end}}</ol>
</nav>
</body>
</html>
`))

// buildNav serializes the navigation document for the flat TOC.
func (b *Book) buildNav() ([]byte, error) {
	var buf bytes.Buffer
	err := navTemplate.Execute(&buf, struct {
		Lang    string
		Title   string
		Entries []tocEntry
	}{
		Lang:    b.meta.Language,
		Title:   b.meta.Title,
		Entries: b.tocEntries(),
	})
	if err != nil {
		return nil, fmt.Errorf("rendering nav document: %w", err)
	}
	return buf.Bytes(), nil
}

// ncxRoot is the root element of the legacy NCX navigation file, kept
// for ePub 2 reader compatibility.
type ncxRoot struct {
	XMLName  xml.Name  `xml:"ncx"`
	Xmlns    string    `xml:"xmlns,attr"`
	Version  string    `xml:"version,attr"`
	Head     ncxHead   `xml:"head"`
	DocTitle ncxText   `xml:"docTitle"`
	NavMap   ncxNavMap `xml:"navMap"`
}

type ncxHead struct {
	Metas []ncxMeta `xml:"meta"`
}

type ncxMeta struct {
	Name    string `xml:"name,attr"`
	Content string `xml:"content,attr"`
}

type ncxText struct {
	Text string `xml:"text"`
}

type ncxNavMap struct {
	Points []ncxNavPoint `xml:"navPoint"`
}

type ncxNavPoint struct {
	ID        string     `xml:"id,attr"`
	PlayOrder int        `xml:"playOrder,attr"`
	Label     ncxText    `xml:"navLabel"`
	Content   ncxContent `xml:"content"`
}

type ncxContent struct {
	Src string `xml:"src,attr"`
}

// buildNCX serializes the NCX file mirroring the flat TOC.
func (b *Book) buildNCX() ([]byte, error) {
	ncx := ncxRoot{
		Xmlns:   "http://www.daisy.org/z3986/2005/ncx/",
		Version: "2005-1",
		Head: ncxHead{Metas: []ncxMeta{
			{Name: "dtb:uid", Content: b.meta.Identifier},
			{Name: "dtb:depth", Content: "1"},
		}},
		DocTitle: ncxText{Text: b.meta.Title},
	}

	for i, entry := range b.tocEntries() {
		ncx.NavMap.Points = append(ncx.NavMap.Points, ncxNavPoint{
			ID:        entry.ID,
			PlayOrder: i + 1,
			Label:     ncxText{Text: entry.Title},
			Content:   ncxContent{Src: entry.Href},
		})
	}

	out, err := xml.MarshalIndent(ncx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling NCX: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}
