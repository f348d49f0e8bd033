// Package sections reads and edits the section layer of Microsoft Word
// documents (DOCX): page geometry, section breaks, and the header and
// footer definitions sections carry or inherit.
//
// # Quick Start
//
//	doc, err := sections.OpenFile("report.docx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	secs := doc.Sections()
//	for sec := range secs.All() {
//	    if w, ok := sec.PageWidth(); ok {
//	        fmt.Println(w.Inches())
//	    }
//	}
//
//	first, _ := secs.At(0)
//	first.SetTopMargin(units.Inches(1))
//	first.SetOrientation(xml.OrientationLandscape)
//
//	doc.Save("report-edited.docx")
//
// # Sections
//
// A section is a contiguous run of pages sharing one page-setup
// definition. In WordprocessingML each section is described by a
// w:sectPr element: one inside the paragraph properties of the
// paragraph that ends the section, plus a trailing body-level element
// for the last section. Sections() exposes them in document order with
// indexed access, slicing and iteration; Section values are cheap views
// over the underlying element and carry no state of their own beyond
// memoized header/footer proxies.
//
// # Headers, footers and inheritance
//
// A section either defines its own header or inherits the header of the
// nearest preceding section that defines one. The format represents
// "inherits" purely by the absence of a w:headerReference (there is no
// flag), and this package keeps that representation: linked state is
// always derived, never stored.
//
//	h := sec.Header()
//	h.IsLinkedToPrevious()      // no definition present?
//	h.SetLinkedToPrevious(false) // give this section its own empty header
//	part, err := h.Content()     // resolve inheritance to the real part
//
// Content() walks backward through preceding sections until it finds a
// definition. The first section has nothing to inherit from: if the
// walk ends there without a definition, an empty header part is created
// for it on the spot. Footers are currently exposed for introspection
// only (linked state and definition presence).
//
// # Packages
//
// The package is organized into sub-packages:
//
//   - xml: WordprocessingML element model (sectPr, header/footer roots,
//     document skeleton) with raw passthrough for unmodeled content
//   - units: the Length type (EMU) with inch/cm/mm/pt/twip conversions
//
// Opening a document keeps every package part in memory; saving copies
// untouched parts verbatim, so content this library does not model
// (styles, numbering, images, tables) survives a round trip unchanged.
//
// # Error Handling
//
// Failures surface synchronously as typed errors: OutOfRangeError for
// bad sequence indices, PartError for package-part problems such as a
// reference to a missing header part, DocumentError for open/save
// failures. There is no local recovery or retry.
//
// # Thread Safety
//
// A Document and everything reached through it is shared mutable state
// with no internal locking; use external synchronization when editing
// from multiple goroutines. The global logger and configuration are
// safe for concurrent use.
package sections
