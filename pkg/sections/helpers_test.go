package sections

import (
	"archive/zip"
	"bytes"
	"testing"
)

const testNamespaces = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"`

type pkgPart struct {
	name    string
	content string
}

// buildPackage assembles a DOCX zip from parts in the given order.
func buildPackage(t *testing.T, parts []pkgPart) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)
	for _, p := range parts {
		f, err := w.Create(p.name)
		if err != nil {
			t.Fatalf("failed to create %s: %v", p.name, err)
		}
		if _, err := f.Write([]byte(p.content)); err != nil {
			t.Fatalf("failed to write %s: %v", p.name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close zip: %v", err)
	}
	return buf.Bytes()
}

func testContentTypesXML() string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`
}

// testRelsXML builds word/_rels/document.xml.rels with a styles
// relationship plus any extra Relationship elements.
func testRelsXML(extra string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
` + extra + `</Relationships>`
}

// testDocXML builds word/document.xml from sectPr bodies: every body
// but the last is wrapped in a section-break paragraph, the last
// becomes the body-level trailing sectPr.
func testDocXML(sectPrBodies ...string) string {
	body := ""
	for i, inner := range sectPrBodies {
		sectPr := "<w:sectPr>" + inner + "</w:sectPr>"
		if i == len(sectPrBodies)-1 {
			body += sectPr
		} else {
			body += "<w:p><w:pPr>" + sectPr + "</w:pPr></w:p>"
		}
	}
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document ` + testNamespaces + `><w:body>` + body + `</w:body></w:document>`
}

func testHeaderXML(text string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:hdr ` + testNamespaces + `><w:p><w:r><w:t>` + text + `</w:t></w:r></w:p></w:hdr>`
}

// openTestDocument builds a package around the given document.xml and
// extra parts/relationships and opens it.
func openTestDocument(t *testing.T, docXML, extraRels string, extra ...pkgPart) *Document {
	t.Helper()
	parts := []pkgPart{
		{"[Content_Types].xml", testContentTypesXML()},
		{"word/document.xml", docXML},
		{"word/_rels/document.xml.rels", testRelsXML(extraRels)},
		{"word/styles.xml", `<?xml version="1.0"?><w:styles ` + testNamespaces + `/>`},
	}
	parts = append(parts, extra...)
	content := buildPackage(t, parts)

	doc, err := OpenBytes(content)
	if err != nil {
		t.Fatalf("failed to open test document: %v", err)
	}
	return doc
}
