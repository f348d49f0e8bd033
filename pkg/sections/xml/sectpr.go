package xml

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/benjaminschreck/go-sections/pkg/sections/units"
)

// HdrFtrRef is a w:headerReference or w:footerReference child of
// w:sectPr, linking the section to a header or footer part by
// relationship id.
type HdrFtrRef struct {
	Type HdrFtrType // w:type attribute
	ID   string     // r:id attribute
}

// SectType is the w:type child of w:sectPr.
type SectType struct {
	Val SectionStart
}

// PageSize is the w:pgSz child of w:sectPr. W and H are twips; nil when
// the attribute is absent.
type PageSize struct {
	W      *int64
	H      *int64
	Orient Orientation // "" when absent
}

// PageMargins is the w:pgMar child of w:sectPr. All values are twips;
// nil when the attribute is absent. Top and bottom may be negative.
type PageMargins struct {
	Top    *int64
	Right  *int64
	Bottom *int64
	Left   *int64
	Header *int64
	Footer *int64
	Gutter *int64
}

// SectPr is the w:sectPr section-properties element. Children the
// section layer manages are typed; everything else is preserved in
// Others in source order.
type SectPr struct {
	Attrs []xml.Attr

	HeaderReferences []HdrFtrRef
	FooterReferences []HdrFtrRef
	Type             *SectType
	PgSz             *PageSize
	PgMar            *PageMargins
	Others           []*RawXMLElement

	// prev is the document-order predecessor, wired by
	// Document.SectionProperties. Always nil for the first section.
	prev *SectPr
}

// Preceding returns the sectPr of the document-order predecessor
// section, or nil if this is the first section.
func (s *SectPr) Preceding() *SectPr {
	return s.prev
}

// UnmarshalXML implements custom XML unmarshaling, typing the children
// the section layer needs and capturing the rest verbatim.
func (s *SectPr) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	s.Attrs = start.Attr

	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "headerReference":
				s.HeaderReferences = append(s.HeaderReferences, parseHdrFtrRef(t))
				if err := d.Skip(); err != nil {
					return err
				}
			case "footerReference":
				s.FooterReferences = append(s.FooterReferences, parseHdrFtrRef(t))
				if err := d.Skip(); err != nil {
					return err
				}
			case "type":
				s.Type = &SectType{Val: SectionStart(attrValue(t.Attr, "val"))}
				if err := d.Skip(); err != nil {
					return err
				}
			case "pgSz":
				pgSz, err := parsePageSize(t)
				if err != nil {
					return err
				}
				s.PgSz = pgSz
				if err := d.Skip(); err != nil {
					return err
				}
			case "pgMar":
				pgMar, err := parsePageMargins(t)
				if err != nil {
					return err
				}
				s.PgMar = pgMar
				if err := d.Skip(); err != nil {
					return err
				}
			default:
				raw, err := captureElement(d, t)
				if err != nil {
					return err
				}
				s.Others = append(s.Others, raw)
			}
		case xml.EndElement:
			if t.Name.Local == "sectPr" {
				return nil
			}
		}
	}
}

func parseHdrFtrRef(start xml.StartElement) HdrFtrRef {
	return HdrFtrRef{
		Type: HdrFtrType(attrValue(start.Attr, "type")),
		ID:   attrValue(start.Attr, "id"),
	}
}

func parsePageSize(start xml.StartElement) (*PageSize, error) {
	pgSz := &PageSize{Orient: Orientation(attrValue(start.Attr, "orient"))}
	var err error
	if pgSz.W, err = twipsAttr(start.Attr, "w"); err != nil {
		return nil, err
	}
	if pgSz.H, err = twipsAttr(start.Attr, "h"); err != nil {
		return nil, err
	}
	return pgSz, nil
}

func parsePageMargins(start xml.StartElement) (*PageMargins, error) {
	pgMar := &PageMargins{}
	fields := []struct {
		local string
		dst   **int64
	}{
		{"top", &pgMar.Top},
		{"right", &pgMar.Right},
		{"bottom", &pgMar.Bottom},
		{"left", &pgMar.Left},
		{"header", &pgMar.Header},
		{"footer", &pgMar.Footer},
		{"gutter", &pgMar.Gutter},
	}
	for _, f := range fields {
		val, err := twipsAttr(start.Attr, f.local)
		if err != nil {
			return nil, err
		}
		*f.dst = val
	}
	return pgMar, nil
}

func twipsAttr(attrs []xml.Attr, local string) (*int64, error) {
	str := attrValue(attrs, local)
	if str == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(str, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s attribute %q: %w", local, str, err)
	}
	return &n, nil
}

// writeXML serializes the sectPr element. References come first, then
// the typed page-setup children, then the preserved children; Word
// accepts this ordering for the elements involved.
func (s *SectPr) writeXML(b *strings.Builder) {
	b.WriteString("<w:sectPr")
	writeAttrs(b, s.Attrs)
	b.WriteString(">")

	for _, ref := range s.HeaderReferences {
		writeHdrFtrRef(b, "w:headerReference", ref)
	}
	for _, ref := range s.FooterReferences {
		writeHdrFtrRef(b, "w:footerReference", ref)
	}
	if s.Type != nil {
		b.WriteString(`<w:type w:val="` + escapeAttr(string(s.Type.Val)) + `"/>`)
	}
	if s.PgSz != nil {
		b.WriteString("<w:pgSz")
		writeTwipsAttr(b, "w:w", s.PgSz.W)
		writeTwipsAttr(b, "w:h", s.PgSz.H)
		if s.PgSz.Orient != "" {
			b.WriteString(` w:orient="` + escapeAttr(string(s.PgSz.Orient)) + `"`)
		}
		b.WriteString("/>")
	}
	if s.PgMar != nil {
		b.WriteString("<w:pgMar")
		writeTwipsAttr(b, "w:top", s.PgMar.Top)
		writeTwipsAttr(b, "w:right", s.PgMar.Right)
		writeTwipsAttr(b, "w:bottom", s.PgMar.Bottom)
		writeTwipsAttr(b, "w:left", s.PgMar.Left)
		writeTwipsAttr(b, "w:header", s.PgMar.Header)
		writeTwipsAttr(b, "w:footer", s.PgMar.Footer)
		writeTwipsAttr(b, "w:gutter", s.PgMar.Gutter)
		b.WriteString("/>")
	}
	for _, raw := range s.Others {
		raw.writeXML(b)
	}

	b.WriteString("</w:sectPr>")
}

func writeHdrFtrRef(b *strings.Builder, tag string, ref HdrFtrRef) {
	b.WriteString("<" + tag)
	if ref.Type != "" {
		b.WriteString(` w:type="` + escapeAttr(string(ref.Type)) + `"`)
	}
	b.WriteString(` r:id="` + escapeAttr(ref.ID) + `"/>`)
}

func writeTwipsAttr(b *strings.Builder, name string, val *int64) {
	if val == nil {
		return
	}
	b.WriteString(" " + name + `="` + strconv.FormatInt(*val, 10) + `"`)
}

// GetHeaderReference returns the header reference of the given type, or
// nil when this section has none.
func (s *SectPr) GetHeaderReference(hdrFtrType HdrFtrType) *HdrFtrRef {
	for i := range s.HeaderReferences {
		if s.HeaderReferences[i].Type == hdrFtrType {
			return &s.HeaderReferences[i]
		}
	}
	return nil
}

// AddHeaderReference records a header reference of the given type,
// replacing any existing reference of the same type.
func (s *SectPr) AddHeaderReference(hdrFtrType HdrFtrType, rID string) {
	if ref := s.GetHeaderReference(hdrFtrType); ref != nil {
		ref.ID = rID
		return
	}
	s.HeaderReferences = append(s.HeaderReferences, HdrFtrRef{Type: hdrFtrType, ID: rID})
}

// RemoveHeaderReference removes the header reference of the given type
// and returns its relationship id, or "" when none was present.
func (s *SectPr) RemoveHeaderReference(hdrFtrType HdrFtrType) string {
	for i := range s.HeaderReferences {
		if s.HeaderReferences[i].Type == hdrFtrType {
			rID := s.HeaderReferences[i].ID
			s.HeaderReferences = append(s.HeaderReferences[:i], s.HeaderReferences[i+1:]...)
			return rID
		}
	}
	return ""
}

// GetFooterReference returns the footer reference of the given type, or
// nil when this section has none.
func (s *SectPr) GetFooterReference(hdrFtrType HdrFtrType) *HdrFtrRef {
	for i := range s.FooterReferences {
		if s.FooterReferences[i].Type == hdrFtrType {
			return &s.FooterReferences[i]
		}
	}
	return nil
}

// AddFooterReference records a footer reference of the given type,
// replacing any existing reference of the same type.
func (s *SectPr) AddFooterReference(hdrFtrType HdrFtrType, rID string) {
	if ref := s.GetFooterReference(hdrFtrType); ref != nil {
		ref.ID = rID
		return
	}
	s.FooterReferences = append(s.FooterReferences, HdrFtrRef{Type: hdrFtrType, ID: rID})
}

// RemoveFooterReference removes the footer reference of the given type
// and returns its relationship id, or "" when none was present.
func (s *SectPr) RemoveFooterReference(hdrFtrType HdrFtrType) string {
	for i := range s.FooterReferences {
		if s.FooterReferences[i].Type == hdrFtrType {
			rID := s.FooterReferences[i].ID
			s.FooterReferences = append(s.FooterReferences[:i], s.FooterReferences[i+1:]...)
			return rID
		}
	}
	return ""
}

// BottomMargin returns the bottom page margin, and false when the
// underlying attribute is absent.
func (s *SectPr) BottomMargin() (units.Length, bool) {
	if s.PgMar == nil || s.PgMar.Bottom == nil {
		return 0, false
	}
	return units.Twips(*s.PgMar.Bottom), true
}

// SetBottomMargin sets the bottom page margin.
func (s *SectPr) SetBottomMargin(l units.Length) {
	s.ensurePgMar().Bottom = twipsPtr(l)
}

// TopMargin returns the top page margin, and false when the underlying
// attribute is absent.
func (s *SectPr) TopMargin() (units.Length, bool) {
	if s.PgMar == nil || s.PgMar.Top == nil {
		return 0, false
	}
	return units.Twips(*s.PgMar.Top), true
}

// SetTopMargin sets the top page margin.
func (s *SectPr) SetTopMargin(l units.Length) {
	s.ensurePgMar().Top = twipsPtr(l)
}

// LeftMargin returns the left page margin, and false when the underlying
// attribute is absent.
func (s *SectPr) LeftMargin() (units.Length, bool) {
	if s.PgMar == nil || s.PgMar.Left == nil {
		return 0, false
	}
	return units.Twips(*s.PgMar.Left), true
}

// SetLeftMargin sets the left page margin.
func (s *SectPr) SetLeftMargin(l units.Length) {
	s.ensurePgMar().Left = twipsPtr(l)
}

// RightMargin returns the right page margin, and false when the
// underlying attribute is absent.
func (s *SectPr) RightMargin() (units.Length, bool) {
	if s.PgMar == nil || s.PgMar.Right == nil {
		return 0, false
	}
	return units.Twips(*s.PgMar.Right), true
}

// SetRightMargin sets the right page margin.
func (s *SectPr) SetRightMargin(l units.Length) {
	s.ensurePgMar().Right = twipsPtr(l)
}

// Gutter returns the page gutter size, and false when the underlying
// attribute is absent.
func (s *SectPr) Gutter() (units.Length, bool) {
	if s.PgMar == nil || s.PgMar.Gutter == nil {
		return 0, false
	}
	return units.Twips(*s.PgMar.Gutter), true
}

// SetGutter sets the page gutter size.
func (s *SectPr) SetGutter(l units.Length) {
	s.ensurePgMar().Gutter = twipsPtr(l)
}

// HeaderDistance returns the distance from the page's top edge to the
// header, and false when the underlying attribute is absent.
func (s *SectPr) HeaderDistance() (units.Length, bool) {
	if s.PgMar == nil || s.PgMar.Header == nil {
		return 0, false
	}
	return units.Twips(*s.PgMar.Header), true
}

// SetHeaderDistance sets the distance from the page's top edge to the
// header.
func (s *SectPr) SetHeaderDistance(l units.Length) {
	s.ensurePgMar().Header = twipsPtr(l)
}

// FooterDistance returns the distance from the page's bottom edge to the
// footer, and false when the underlying attribute is absent.
func (s *SectPr) FooterDistance() (units.Length, bool) {
	if s.PgMar == nil || s.PgMar.Footer == nil {
		return 0, false
	}
	return units.Twips(*s.PgMar.Footer), true
}

// SetFooterDistance sets the distance from the page's bottom edge to the
// footer.
func (s *SectPr) SetFooterDistance(l units.Length) {
	s.ensurePgMar().Footer = twipsPtr(l)
}

// PageHeight returns the total page height, and false when the
// underlying attribute is absent.
func (s *SectPr) PageHeight() (units.Length, bool) {
	if s.PgSz == nil || s.PgSz.H == nil {
		return 0, false
	}
	return units.Twips(*s.PgSz.H), true
}

// SetPageHeight sets the total page height.
func (s *SectPr) SetPageHeight(l units.Length) {
	s.ensurePgSz().H = twipsPtr(l)
}

// PageWidth returns the total page width, and false when the underlying
// attribute is absent.
func (s *SectPr) PageWidth() (units.Length, bool) {
	if s.PgSz == nil || s.PgSz.W == nil {
		return 0, false
	}
	return units.Twips(*s.PgSz.W), true
}

// SetPageWidth sets the total page width.
func (s *SectPr) SetPageWidth(l units.Length) {
	s.ensurePgSz().W = twipsPtr(l)
}

// Orientation returns the page orientation. A missing w:pgSz or w:orient
// means portrait.
func (s *SectPr) Orientation() Orientation {
	if s.PgSz == nil || s.PgSz.Orient == "" {
		return OrientationPortrait
	}
	return s.PgSz.Orient
}

// SetOrientation sets the page orientation.
func (s *SectPr) SetOrientation(o Orientation) {
	s.ensurePgSz().Orient = o
}

// StartType returns the section's break behavior. A missing w:type means
// a new-page break.
func (s *SectPr) StartType() SectionStart {
	if s.Type == nil || s.Type.Val == "" {
		return SectionStartNextPage
	}
	return s.Type.Val
}

// SetStartType sets the section's break behavior.
func (s *SectPr) SetStartType(v SectionStart) {
	if s.Type == nil {
		s.Type = &SectType{}
	}
	s.Type.Val = v
}

func (s *SectPr) ensurePgMar() *PageMargins {
	if s.PgMar == nil {
		s.PgMar = &PageMargins{}
	}
	return s.PgMar
}

func (s *SectPr) ensurePgSz() *PageSize {
	if s.PgSz == nil {
		s.PgSz = &PageSize{}
	}
	return s.PgSz
}

func twipsPtr(l units.Length) *int64 {
	n := l.Twips()
	return &n
}
