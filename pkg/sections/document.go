package sections

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"

	sxml "github.com/benjaminschreck/go-sections/pkg/sections/xml"
)

// Document is an open DOCX package with its main document parsed,
// providing access to the section layer and the ability to write the
// possibly-modified package back out.
type Document struct {
	pkg  *PackageReader
	doc  *sxml.Document
	part *DocumentPart
}

// Open reads a DOCX package from zip content.
func Open(r io.ReaderAt, size int64) (*Document, error) {
	pkg, err := NewPackageReader(r, size)
	if err != nil {
		return nil, NewDocumentError("open", "", err)
	}
	return newDocument(pkg)
}

// OpenFile reads a DOCX package from a file path.
func OpenFile(path string) (*Document, error) {
	pkg, err := PackageReaderFromFile(path)
	if err != nil {
		return nil, NewDocumentError("open", path, err)
	}
	return newDocument(pkg)
}

// OpenBytes reads a DOCX package from a byte slice.
func OpenBytes(content []byte) (*Document, error) {
	return Open(bytes.NewReader(content), int64(len(content)))
}

func newDocument(pkg *PackageReader) (*Document, error) {
	docXML, err := pkg.DocumentXML()
	if err != nil {
		return nil, NewDocumentError("open", documentPartName, err)
	}
	doc, err := sxml.ParseDocument(bytes.NewReader(docXML))
	if err != nil {
		return nil, NewDocumentError("parse", documentPartName, err)
	}
	part, err := newDocumentPart(pkg)
	if err != nil {
		return nil, err
	}

	GetLogger().Debug("opened package with %d parts", len(pkg.PartNames()))
	return &Document{pkg: pkg, doc: doc, part: part}, nil
}

// Sections returns the document's section sequence.
func (d *Document) Sections() *Sections {
	return &Sections{doc: d.doc, part: d.part}
}

// WriteTo writes the package, with any section and header changes
// applied, as a new DOCX zip.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	content, err := d.Bytes()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(content)
	return int64(n), err
}

// Save writes the package to a file.
func (d *Document) Save(path string) error {
	content, err := d.Bytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return NewDocumentError("save", path, err)
	}
	return nil
}

// Bytes serializes the package to DOCX bytes. The main document, the
// document relationships, the content types and every loaded or created
// header part are re-marshaled; all other parts are copied verbatim in
// their original order, dropped parts are skipped and new parts are
// appended.
func (d *Document) Bytes() ([]byte, error) {
	docXML, err := d.doc.Marshal()
	if err != nil {
		return nil, NewDocumentError("marshal", documentPartName, err)
	}
	relsXML, err := d.part.marshalRelationships()
	if err != nil {
		return nil, NewDocumentError("marshal", documentRelsPartName, err)
	}
	typesXML, err := d.part.marshalContentTypes()
	if err != nil {
		return nil, NewDocumentError("marshal", contentTypesPartName, err)
	}

	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)

	for _, name := range d.pkg.PartNames() {
		if d.part.isDropped(name) {
			continue
		}

		var content []byte
		switch {
		case name == documentPartName:
			content = docXML
		case name == documentRelsPartName:
			content = relsXML
		case name == contentTypesPartName:
			content = typesXML
		default:
			if part, ok := d.part.headerPartByName(name); ok {
				content, err = part.Element().Marshal()
				if err != nil {
					return nil, NewPartError("marshal", name, err)
				}
			} else {
				content, _ = d.pkg.Part(name)
			}
		}

		fw, err := w.Create(name)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", name, err)
		}
		if _, err := fw.Write(content); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", name, err)
		}
	}

	// Packages normally carry these two; create them when absent so
	// added header parts stay reachable
	if !d.pkg.HasPart(documentRelsPartName) {
		fw, err := w.Create(documentRelsPartName)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", documentRelsPartName, err)
		}
		if _, err := fw.Write(relsXML); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", documentRelsPartName, err)
		}
	}
	if !d.pkg.HasPart(contentTypesPartName) {
		fw, err := w.Create(contentTypesPartName)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", contentTypesPartName, err)
		}
		if _, err := fw.Write(typesXML); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", contentTypesPartName, err)
		}
	}

	// Newly created header parts are not in the original part list
	for _, name := range d.part.addedParts() {
		part, ok := d.part.headerPartByName(name)
		if !ok {
			continue
		}
		content, err := part.Element().Marshal()
		if err != nil {
			return nil, NewPartError("marshal", name, err)
		}
		fw, err := w.Create(name)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", name, err)
		}
		if _, err := fw.Write(content); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize package: %w", err)
	}

	GetLogger().Debug("serialized package, %d bytes", buf.Len())
	return buf.Bytes(), nil
}
