package md2epub

import (
	"archive/zip"
	"bytes"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/alnah/go-md2epub/internal/fileutil"
)

// epubMimetype is the required content of the "mimetype" entry; it must
// be the first entry and stored uncompressed.
const epubMimetype = "application/epub+zip"

// contentRoot is the directory inside the archive holding all content
// documents, referenced from META-INF/container.xml.
const contentRoot = "OEBPS"

// containerXML is the fixed META-INF/container.xml pointing readers at
// the package document.
const containerXML = `<?xml version="1.0" encoding="utf-8"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>
`

// pageTemplate renders one chapter as an XHTML content document with the
// stylesheet linked. Body is pre-normalized markup and inserted raw.
var pageTemplate = template.Must(template.New("page").Parse(`<?xml version="1.0" encoding="utf-8"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml" xmlns:epub="http://www.idpf.org/2007/ops" lang="{{.Lang}}" xml:lang="{{.Lang}}">
<head>
<title>{{.Title}}</title>
<link rel="stylesheet" type="text/css" href="{{.Style}}"/>
</head>
<body>
{{.Body}}
</body>
</html>
`))

// WriteFile emits the packaged book at outputPath, creating missing
// parent directories first. The archive is written to a temporary file
// and renamed into place, so a failure leaves any previously existing
// artifact untouched. Prints a short summary on success.
func (b *Book) WriteFile(outputPath string) error {
	if len(b.chapters) == 0 {
		return ErrEmptyBook
	}
	b.ensureStylesheet()

	if err := fileutil.EnsureParentDir(outputPath); err != nil {
		return fmt.Errorf("%w: %v", ErrPackageWrite, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(outputPath), ".md2epub-*.epub")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPackageWrite, err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if err := b.Write(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrPackageWrite, err)
	}
	if err := os.Rename(tmpPath, outputPath); err != nil {
		return fmt.Errorf("%w: %v", ErrPackageWrite, err)
	}

	b.logf("wrote %s: %d chapters, title %q, author %q",
		outputPath, len(b.chapters), b.meta.Title, b.meta.Author)
	return nil
}

// zipEntry is one named file inside the archive.
type zipEntry struct {
	name string
	data []byte
}

// Write serializes the package container to w.
func (b *Book) Write(w io.Writer) error {
	if len(b.chapters) == 0 {
		return ErrEmptyBook
	}
	b.ensureStylesheet()

	zw := zip.NewWriter(w)

	// The mimetype entry must come first and be stored, not deflated,
	// so reading systems can sniff it at a fixed offset.
	mw, err := zw.CreateHeader(&zip.FileHeader{Name: "mimetype", Method: zip.Store})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPackageWrite, err)
	}
	if _, err := mw.Write([]byte(epubMimetype)); err != nil {
		return fmt.Errorf("%w: %v", ErrPackageWrite, err)
	}

	modified := time.Now().UTC().Format("2006-01-02T15:04:05Z")

	opf, err := b.buildOPF(modified)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPackageWrite, err)
	}
	nav, err := b.buildNav()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPackageWrite, err)
	}
	ncx, err := b.buildNCX()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPackageWrite, err)
	}

	entries := []zipEntry{
		{"META-INF/container.xml", []byte(containerXML)},
		{contentRoot + "/content.opf", opf},
		{contentRoot + "/" + navHref, nav},
		{contentRoot + "/" + ncxHref, ncx},
		{contentRoot + "/" + styleHref, []byte(b.stylesheet)},
	}

	for _, ch := range b.chapters {
		page, err := b.renderPage(ch)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrPackageWrite, err)
		}
		entries = append(entries, zipEntry{contentRoot + "/" + ch.FileName, page})
	}
	for _, img := range b.images {
		entries = append(entries, zipEntry{contentRoot + "/" + img.Path, img.Data})
	}
	if b.cover != nil {
		entries = append(entries, zipEntry{contentRoot + "/" + b.cover.FileName, b.cover.Data})
	}

	// A cover picked from inside the source directory is also discovered
	// as a regular asset under the same name; the first entry wins.
	written := make(map[string]bool)
	for _, e := range entries {
		if written[e.name] {
			continue
		}
		written[e.name] = true
		f, err := zw.Create(e.name)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrPackageWrite, e.name, err)
		}
		if _, err := f.Write(e.data); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrPackageWrite, e.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrPackageWrite, err)
	}
	return nil
}

// renderPage wraps a chapter's normalized body in an XHTML content
// document.
func (b *Book) renderPage(ch *Chapter) ([]byte, error) {
	var buf bytes.Buffer
	err := pageTemplate.Execute(&buf, struct {
		Lang  string
		Title string
		Style string
		Body  template.HTML
	}{
		Lang:  b.meta.Language,
		Title: ch.Title,
		Style: styleHref,
		Body:  template.HTML(ch.Body), // #nosec G203 -- body is output of our own normalizer
	})
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", ch.FileName, err)
	}
	return buf.Bytes(), nil
}
