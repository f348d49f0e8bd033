package xml

import (
	"encoding/xml"
	"io"
	"strings"
)

// Paragraph represents a w:p element. Only the paragraph properties are
// modeled (a section break lives in w:pPr/w:sectPr); runs and all other
// content are preserved raw.
type Paragraph struct {
	Attrs      []xml.Attr
	Properties *ParagraphProperties
	Content    []*RawXMLElement
}

// ParagraphProperties represents a w:pPr element.
type ParagraphProperties struct {
	Attrs  []xml.Attr
	SectPr *SectPr
	Others []*RawXMLElement
}

func (p *Paragraph) isBodyElement() {}

// UnmarshalXML implements custom XML unmarshaling to pull out the
// paragraph-level sectPr and keep the rest of the content verbatim.
func (p *Paragraph) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	p.Attrs = start.Attr

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
			if t.Name.Local == "pPr" {
				props, err := parseParagraphProperties(d, t)
				if err != nil {
					return err
				}
				p.Properties = props
				continue
			}
			raw, err := captureElement(d, t)
			if err != nil {
				return err
			}
			p.Content = append(p.Content, raw)
		case xml.EndElement:
			if t.Name.Local == "p" {
				return nil
			}
		}
	}
}

func parseParagraphProperties(d *xml.Decoder, start xml.StartElement) (*ParagraphProperties, error) {
	props := &ParagraphProperties{Attrs: start.Attr}

	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "sectPr" {
				var sectPr SectPr
				if err := sectPr.UnmarshalXML(d, t); err != nil {
					return nil, err
				}
				props.SectPr = &sectPr
				continue
			}
			raw, err := captureElement(d, t)
			if err != nil {
				return nil, err
			}
			props.Others = append(props.Others, raw)
		case xml.EndElement:
			if t.Name.Local == "pPr" {
				return props, nil
			}
		}
	}
}

func (p *Paragraph) writeXML(b *strings.Builder) {
	b.WriteString("<w:p")
	writeAttrs(b, p.Attrs)
	if p.Properties == nil && len(p.Content) == 0 {
		b.WriteString("/>")
		return
	}
	b.WriteString(">")
	if p.Properties != nil {
		p.Properties.writeXML(b)
	}
	for _, raw := range p.Content {
		raw.writeXML(b)
	}
	b.WriteString("</w:p>")
}

func (pp *ParagraphProperties) writeXML(b *strings.Builder) {
	b.WriteString("<w:pPr")
	writeAttrs(b, pp.Attrs)
	b.WriteString(">")
	for _, raw := range pp.Others {
		raw.writeXML(b)
	}
	if pp.SectPr != nil {
		pp.SectPr.writeXML(b)
	}
	b.WriteString("</w:pPr>")
}

// Text returns the concatenated w:t content of the paragraph's runs.
func (p *Paragraph) Text() string {
	var b strings.Builder
	for _, raw := range p.Content {
		extractText(&b, raw.Markup)
	}
	return b.String()
}

// extractText appends the character data inside w:t elements of the
// given markup. The markup carries unbound w: prefixes, which
// encoding/xml tolerates by leaving the prefix in Name.Space.
func extractText(b *strings.Builder, markup string) {
	d := xml.NewDecoder(strings.NewReader(markup))
	inText := 0
	for {
		tok, err := d.Token()
		if err != nil {
			return
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText++
			}
		case xml.EndElement:
			if t.Name.Local == "t" {
				inText--
			}
		case xml.CharData:
			if inText > 0 {
				b.Write(t)
			}
		}
	}
}
