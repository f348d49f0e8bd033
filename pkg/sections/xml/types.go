package xml

import (
	"encoding/xml"
	"strings"
)

// BodyElement represents any element that can appear in a document body
// or in a header/footer content root.
type BodyElement interface {
	isBodyElement()
	writeXML(b *strings.Builder)
}

// RawXMLElement is an element we preserve but do not model. Markup holds
// the complete element, prefixes restored, exactly as it will be written
// back out.
type RawXMLElement struct {
	Name   xml.Name
	Attrs  []xml.Attr
	Markup string
}

func (r *RawXMLElement) isBodyElement() {}

func (r *RawXMLElement) writeXML(b *strings.Builder) {
	b.WriteString(r.Markup)
}

// captureElement consumes an element the decoder has just opened and
// records its full markup, translating resolved namespace URIs back to
// their prefixes.
func captureElement(d *xml.Decoder, start xml.StartElement) (*RawXMLElement, error) {
	var b strings.Builder
	writeStartTag(&b, start.Name, start.Attr)

	depth := 1
	for depth > 0 {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			writeStartTag(&b, t.Name, t.Attr)
		case xml.EndElement:
			depth--
			b.WriteString("</")
			b.WriteString(prefixedName(t.Name))
			b.WriteString(">")
		case xml.CharData:
			b.WriteString(escapeText(string(t)))
		}
	}

	return &RawXMLElement{
		Name:   start.Name,
		Attrs:  start.Attr,
		Markup: b.String(),
	}, nil
}

func writeStartTag(b *strings.Builder, name xml.Name, attrs []xml.Attr) {
	b.WriteString("<")
	b.WriteString(prefixedName(name))
	writeAttrs(b, attrs)
	b.WriteString(">")
}

func writeAttrs(b *strings.Builder, attrs []xml.Attr) {
	for _, attr := range attrs {
		b.WriteString(" ")
		b.WriteString(attrName(attr.Name))
		b.WriteString(`="`)
		b.WriteString(escapeAttr(attr.Value))
		b.WriteString(`"`)
	}
}

// attrValue returns the value of the attribute with the given local name,
// ignoring its namespace, or "" when absent.
func attrValue(attrs []xml.Attr, local string) string {
	for _, attr := range attrs {
		if attr.Name.Local == local {
			return attr.Value
		}
	}
	return ""
}
