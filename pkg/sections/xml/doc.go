// Package xml defines the WordprocessingML element model used by
// go-sections: the document skeleton (document, body, paragraphs), the
// w:sectPr section-properties element with its typed page-setup children,
// and the w:hdr/w:ftr roots of header and footer parts.
//
// Only the elements the section layer operates on are modeled as typed
// structs. Everything else (runs, tables, drawing content, unknown
// sectPr children) is captured verbatim as RawXMLElement and written
// back byte-for-byte on serialization, so opening and saving a document
// does not disturb content this package does not understand.
//
// Serialization is done with an explicit writer rather than xml.Encoder
// because encoding/xml cannot emit namespace prefixes the way Word
// expects them (w:p, r:id, ...). Prefixes resolved to namespace URIs
// during decoding are mapped back via the table in names.go.
package xml
