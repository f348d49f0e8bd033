package xml

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

const xmlDeclaration = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// Document represents the word/document.xml part: the root element's
// attributes (namespace declarations) and the body.
type Document struct {
	Attrs []xml.Attr
	Body  *Body
}

// Body represents the w:body element. Elements holds paragraphs (typed,
// because section breaks live inside them) and everything else raw, in
// source order. SectPr is the body-level trailing sectPr that defines
// the last section.
type Body struct {
	Attrs    []xml.Attr
	Elements []BodyElement
	SectPr   *SectPr
}

// ParseDocument parses a word/document.xml stream.
func ParseDocument(r io.Reader) (*Document, error) {
	d := xml.NewDecoder(r)

	for {
		tok, err := d.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to parse document: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != "document" {
			return nil, fmt.Errorf("failed to parse document: unexpected root element %q", start.Name.Local)
		}
		doc := &Document{Attrs: start.Attr}
		if err := doc.parseChildren(d); err != nil {
			return nil, fmt.Errorf("failed to parse document: %w", err)
		}
		return doc, nil
	}
}

func (doc *Document) parseChildren(d *xml.Decoder) error {
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "body" {
				body, err := parseBody(d, t)
				if err != nil {
					return err
				}
				doc.Body = body
				continue
			}
			if err := d.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			if t.Name.Local == "document" {
				return nil
			}
		}
	}
}

func parseBody(d *xml.Decoder, start xml.StartElement) (*Body, error) {
	body := &Body{Attrs: start.Attr}

	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				var para Paragraph
				if err := para.UnmarshalXML(d, t); err != nil {
					return nil, err
				}
				body.Elements = append(body.Elements, &para)
			case "sectPr":
				var sectPr SectPr
				if err := sectPr.UnmarshalXML(d, t); err != nil {
					return nil, err
				}
				body.SectPr = &sectPr
			default:
				raw, err := captureElement(d, t)
				if err != nil {
					return nil, err
				}
				body.Elements = append(body.Elements, raw)
			}
		case xml.EndElement:
			if t.Name.Local == "body" {
				return body, nil
			}
		}
	}
}

// Marshal serializes the document back to word/document.xml bytes.
func (doc *Document) Marshal() ([]byte, error) {
	if doc.Body == nil {
		return nil, fmt.Errorf("failed to marshal document: no body")
	}

	var b strings.Builder
	b.WriteString(xmlDeclaration)
	b.WriteString("<w:document")
	writeAttrs(&b, doc.Attrs)
	b.WriteString(">")

	b.WriteString("<w:body")
	writeAttrs(&b, doc.Body.Attrs)
	b.WriteString(">")
	for _, el := range doc.Body.Elements {
		el.writeXML(&b)
	}
	if doc.Body.SectPr != nil {
		doc.Body.SectPr.writeXML(&b)
	}
	b.WriteString("</w:body>")

	b.WriteString("</w:document>")
	return []byte(b.String()), nil
}

// SectionProperties returns every sectPr in document order: one per
// paragraph-level section break, then the body-level trailing sectPr.
// Preceding pointers are wired strictly backward along that order.
func (doc *Document) SectionProperties() []*SectPr {
	var list []*SectPr
	if doc.Body == nil {
		return list
	}
	for _, el := range doc.Body.Elements {
		para, ok := el.(*Paragraph)
		if !ok || para.Properties == nil || para.Properties.SectPr == nil {
			continue
		}
		list = append(list, para.Properties.SectPr)
	}
	if doc.Body.SectPr != nil {
		list = append(list, doc.Body.SectPr)
	}
	for i, sectPr := range list {
		if i == 0 {
			sectPr.prev = nil
			continue
		}
		sectPr.prev = list[i-1]
	}
	return list
}
