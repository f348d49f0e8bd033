package sections

import (
	sxml "github.com/benjaminschreck/go-sections/pkg/sections/xml"
)

// definitionQuery is the one capability a concrete header or footer
// proxy must supply: whether an explicit definition exists for its
// section.
type definitionQuery interface {
	HasDefinition() bool
}

// headerFooter is the shared base of Header and Footer. Linked state is
// never stored; it is derived from the presence of a reference, through
// the definition query the concrete type provides.
type headerFooter struct {
	sectPr *sxml.SectPr
	part   *DocumentPart
	query  definitionQuery
}

// IsLinkedToPrevious reports whether this header/footer has no explicit
// definition for its section, so its content is inherited from the
// nearest preceding section that has one.
func (hf *headerFooter) IsLinkedToPrevious() bool {
	return !hf.query.HasDefinition()
}

// HasDefinition must be implemented by the concrete header or footer
// type. Reaching this method means a proxy was constructed without one,
// which is a programming error, not a data condition.
func (hf *headerFooter) HasDefinition() bool {
	panic("sections: HasDefinition must be implemented by Header or Footer")
}

// Footer is the page footer of a section. Footers are exposed for
// introspection only: linked state can be read but not changed, and no
// content resolution is provided.
type Footer struct {
	headerFooter
}

func newFooter(sectPr *sxml.SectPr, part *DocumentPart) *Footer {
	f := &Footer{headerFooter{sectPr: sectPr, part: part}}
	f.query = f
	return f
}

// HasDefinition reports whether a primary footer is explicitly defined
// for this section.
func (f *Footer) HasDefinition() bool {
	return f.sectPr.GetFooterReference(sxml.HdrFtrDefault) != nil
}

// Header is the page header of a section.
type Header struct {
	headerFooter
}

func newHeader(sectPr *sxml.SectPr, part *DocumentPart) *Header {
	h := &Header{headerFooter{sectPr: sectPr, part: part}}
	h.query = h
	return h
}

// HasDefinition reports whether a primary header is explicitly defined
// for this section.
func (h *Header) HasDefinition() bool {
	return h.sectPr.GetHeaderReference(sxml.HdrFtrDefault) != nil
}

// SetLinkedToPrevious changes the header's linked state. Linking
// removes this section's header definition and discards its part, so
// the section inherits the prior section's header. Unlinking adds a
// new, empty header definition, but only if none is present. Setting
// the current value is a no-op.
func (h *Header) SetLinkedToPrevious(linked bool) error {
	if linked == h.IsLinkedToPrevious() {
		return nil
	}
	if linked {
		return h.dropHeaderPart()
	}
	_, err := h.addHeaderPart()
	return err
}

// Content returns the header part whose content this section displays,
// resolving inheritance. A linked header walks backward through
// preceding sections until one with a definition is found. When the
// walk reaches the first section and it has no definition either, a
// new, empty part is created for that first section: nothing precedes
// it, so it can never truly inherit.
func (h *Header) Content() (*HeaderPart, error) {
	sectPr := h.sectPr
	for sectPr.GetHeaderReference(sxml.HdrFtrDefault) == nil && sectPr.Preceding() != nil {
		sectPr = sectPr.Preceding()
	}

	if ref := sectPr.GetHeaderReference(sxml.HdrFtrDefault); ref != nil {
		return h.part.HeaderPart(ref.ID)
	}

	// First section, no definition anywhere on the chain: materialize.
	first := newHeader(sectPr, h.part)
	return first.addHeaderPart()
}

// addHeaderPart creates a new, empty header part and records its
// reference on this section.
func (h *Header) addHeaderPart() (*HeaderPart, error) {
	part, rID, err := h.part.AddHeaderPart()
	if err != nil {
		return nil, err
	}
	h.sectPr.AddHeaderReference(sxml.HdrFtrDefault, rID)
	return part, nil
}

// dropHeaderPart removes this section's header reference and discards
// the now-orphaned part.
func (h *Header) dropHeaderPart() error {
	rID := h.sectPr.RemoveHeaderReference(sxml.HdrFtrDefault)
	return h.part.DropHeaderPart(rID)
}
