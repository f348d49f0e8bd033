package sections

import (
	"iter"

	sxml "github.com/benjaminschreck/go-sections/pkg/sections/xml"
	"github.com/benjaminschreck/go-sections/pkg/sections/units"
)

// Sections is a read-only, order-preserving view over the sections of a
// document. It never reorders or resizes the underlying section list;
// Section values are built transiently on each access.
type Sections struct {
	doc  *sxml.Document
	part *DocumentPart
}

// Count returns the number of sections in the document.
func (s *Sections) Count() int {
	return len(s.doc.SectionProperties())
}

// At returns the section at the given 0-based position.
func (s *Sections) At(index int) (*Section, error) {
	list := s.doc.SectionProperties()
	if index < 0 || index >= len(list) {
		return nil, NewOutOfRangeError(index, len(list))
	}
	return newSection(list[index], s.part), nil
}

// Slice returns the sections in the half-open range [from, to) in
// document order.
func (s *Sections) Slice(from, to int) ([]*Section, error) {
	list := s.doc.SectionProperties()
	if from < 0 || from > len(list) {
		return nil, NewOutOfRangeError(from, len(list))
	}
	if to < from || to > len(list) {
		return nil, NewOutOfRangeError(to, len(list))
	}
	result := make([]*Section, 0, to-from)
	for _, sectPr := range list[from:to] {
		result = append(result, newSection(sectPr, s.part))
	}
	return result, nil
}

// All returns an iterator over the sections in document order. The
// iterator is restartable; each pass observes the section list as of
// the call.
func (s *Sections) All() iter.Seq[*Section] {
	return func(yield func(*Section) bool) {
		for _, sectPr := range s.doc.SectionProperties() {
			if !yield(newSection(sectPr, s.part)) {
				return
			}
		}
	}
}

// Section is one document section: a thin view over its w:sectPr
// element plus access to the section's header and footer. Two Section
// values wrapping the same sectPr are interchangeable.
type Section struct {
	sectPr *sxml.SectPr
	part   *DocumentPart
	header *Header
	footer *Footer
}

func newSection(sectPr *sxml.SectPr, part *DocumentPart) *Section {
	return &Section{sectPr: sectPr, part: part}
}

// Header returns the section's page header proxy, built on first access
// and cached for the lifetime of this Section value.
func (s *Section) Header() *Header {
	if s.header == nil {
		s.header = newHeader(s.sectPr, s.part)
	}
	return s.header
}

// Footer returns the section's page footer proxy, built on first access
// and cached for the lifetime of this Section value.
func (s *Section) Footer() *Footer {
	if s.footer == nil {
		s.footer = newFooter(s.sectPr, s.part)
	}
	return s.footer
}

// BottomMargin returns the bottom margin for all pages in this section,
// and false when no setting is present in the XML.
func (s *Section) BottomMargin() (units.Length, bool) {
	return s.sectPr.BottomMargin()
}

// SetBottomMargin sets the bottom page margin.
func (s *Section) SetBottomMargin(l units.Length) {
	s.sectPr.SetBottomMargin(l)
}

// TopMargin returns the top margin for all pages in this section, and
// false when no setting is present in the XML.
func (s *Section) TopMargin() (units.Length, bool) {
	return s.sectPr.TopMargin()
}

// SetTopMargin sets the top page margin.
func (s *Section) SetTopMargin(l units.Length) {
	s.sectPr.SetTopMargin(l)
}

// LeftMargin returns the left margin for all pages in this section, and
// false when no setting is present in the XML.
func (s *Section) LeftMargin() (units.Length, bool) {
	return s.sectPr.LeftMargin()
}

// SetLeftMargin sets the left page margin.
func (s *Section) SetLeftMargin(l units.Length) {
	s.sectPr.SetLeftMargin(l)
}

// RightMargin returns the right margin for all pages in this section,
// and false when no setting is present in the XML.
func (s *Section) RightMargin() (units.Length, bool) {
	return s.sectPr.RightMargin()
}

// SetRightMargin sets the right page margin.
func (s *Section) SetRightMargin(l units.Length) {
	s.sectPr.SetRightMargin(l)
}

// Gutter returns the page gutter size for all pages in this section,
// and false when no setting is present in the XML. The gutter is extra
// spacing added to the inner margin for page binding.
func (s *Section) Gutter() (units.Length, bool) {
	return s.sectPr.Gutter()
}

// SetGutter sets the page gutter size.
func (s *Section) SetGutter(l units.Length) {
	s.sectPr.SetGutter(l)
}

// HeaderDistance returns the distance from the top edge of the page to
// the top edge of the header, and false when no setting is present.
func (s *Section) HeaderDistance() (units.Length, bool) {
	return s.sectPr.HeaderDistance()
}

// SetHeaderDistance sets the header distance.
func (s *Section) SetHeaderDistance(l units.Length) {
	s.sectPr.SetHeaderDistance(l)
}

// FooterDistance returns the distance from the bottom edge of the page
// to the bottom edge of the footer, and false when no setting is
// present.
func (s *Section) FooterDistance() (units.Length, bool) {
	return s.sectPr.FooterDistance()
}

// SetFooterDistance sets the footer distance.
func (s *Section) SetFooterDistance(l units.Length) {
	s.sectPr.SetFooterDistance(l)
}

// PageHeight returns the total page height used for this section,
// inclusive of margins, and false when no setting is present.
func (s *Section) PageHeight() (units.Length, bool) {
	return s.sectPr.PageHeight()
}

// SetPageHeight sets the total page height.
func (s *Section) SetPageHeight(l units.Length) {
	s.sectPr.SetPageHeight(l)
}

// PageWidth returns the total page width used for this section,
// inclusive of margins, and false when no setting is present.
func (s *Section) PageWidth() (units.Length, bool) {
	return s.sectPr.PageWidth()
}

// SetPageWidth sets the total page width.
func (s *Section) SetPageWidth(l units.Length) {
	s.sectPr.SetPageWidth(l)
}

// Orientation returns the page orientation for this section.
func (s *Section) Orientation() sxml.Orientation {
	return s.sectPr.Orientation()
}

// SetOrientation sets the page orientation.
func (s *Section) SetOrientation(o sxml.Orientation) {
	s.sectPr.SetOrientation(o)
}

// StartType returns the break behavior that begins this section.
func (s *Section) StartType() sxml.SectionStart {
	return s.sectPr.StartType()
}

// SetStartType sets the break behavior that begins this section.
func (s *Section) SetStartType(v sxml.SectionStart) {
	s.sectPr.SetStartType(v)
}
