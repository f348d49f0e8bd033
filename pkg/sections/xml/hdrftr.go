package xml

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// HdrFtr is the root content node of a header or footer part: a w:hdr
// or w:ftr element holding block-level content.
type HdrFtr struct {
	Tag      string // "hdr" or "ftr"
	Attrs    []xml.Attr
	Elements []BodyElement
}

// hdrFtrNamespaces are the declarations written on newly created header
// and footer parts. Parts read from an existing package keep whatever
// declarations they came with.
var hdrFtrNamespaces = []xml.Attr{
	{Name: xml.Name{Local: "xmlns:w"}, Value: "http://schemas.openxmlformats.org/wordprocessingml/2006/main"},
	{Name: xml.Name{Local: "xmlns:r"}, Value: "http://schemas.openxmlformats.org/officeDocument/2006/relationships"},
}

// NewHeader returns an empty header root containing a single empty
// paragraph, the minimal content Word expects in a header part.
func NewHeader() *HdrFtr {
	return &HdrFtr{
		Tag:      "hdr",
		Attrs:    hdrFtrNamespaces,
		Elements: []BodyElement{&Paragraph{}},
	}
}

// ParseHdrFtr parses a header or footer part stream.
func ParseHdrFtr(r io.Reader) (*HdrFtr, error) {
	d := xml.NewDecoder(r)

	for {
		tok, err := d.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to parse header/footer part: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != "hdr" && start.Name.Local != "ftr" {
			return nil, fmt.Errorf("failed to parse header/footer part: unexpected root element %q", start.Name.Local)
		}
		hf := &HdrFtr{Tag: start.Name.Local, Attrs: start.Attr}
		if err := hf.parseChildren(d, start.Name.Local); err != nil {
			return nil, fmt.Errorf("failed to parse header/footer part: %w", err)
		}
		return hf, nil
	}
}

func (hf *HdrFtr) parseChildren(d *xml.Decoder, rootLocal string) error {
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
			if t.Name.Local == "p" {
				var para Paragraph
				if err := para.UnmarshalXML(d, t); err != nil {
					return err
				}
				hf.Elements = append(hf.Elements, &para)
				continue
			}
			raw, err := captureElement(d, t)
			if err != nil {
				return err
			}
			hf.Elements = append(hf.Elements, raw)
		case xml.EndElement:
			if t.Name.Local == rootLocal {
				return nil
			}
		}
	}
}

// Marshal serializes the part back to XML bytes.
func (hf *HdrFtr) Marshal() ([]byte, error) {
	if hf.Tag != "hdr" && hf.Tag != "ftr" {
		return nil, fmt.Errorf("failed to marshal header/footer part: bad root tag %q", hf.Tag)
	}

	var b strings.Builder
	b.WriteString(xmlDeclaration)
	b.WriteString("<w:" + hf.Tag)
	writeAttrs(&b, hf.Attrs)
	b.WriteString(">")
	for _, el := range hf.Elements {
		el.writeXML(&b)
	}
	b.WriteString("</w:" + hf.Tag + ">")
	return []byte(b.String()), nil
}

// Paragraphs returns the typed paragraphs of the part in order.
func (hf *HdrFtr) Paragraphs() []*Paragraph {
	var paras []*Paragraph
	for _, el := range hf.Elements {
		if para, ok := el.(*Paragraph); ok {
			paras = append(paras, para)
		}
	}
	return paras
}

// Text returns the part's paragraph text, one line per paragraph.
func (hf *HdrFtr) Text() string {
	var lines []string
	for _, para := range hf.Paragraphs() {
		lines = append(lines, para.Text())
	}
	return strings.Join(lines, "\n")
}

// AddParagraph appends a paragraph with a single run of the given text
// and returns it.
func (hf *HdrFtr) AddParagraph(text string) *Paragraph {
	para := &Paragraph{}
	if text != "" {
		para.Content = append(para.Content, &RawXMLElement{
			Name:   xml.Name{Local: "r"},
			Markup: "<w:r><w:t>" + escapeText(text) + "</w:t></w:r>",
		})
	}
	hf.Elements = append(hf.Elements, para)
	return para
}
