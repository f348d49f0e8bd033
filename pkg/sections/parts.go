package sections

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	sxml "github.com/benjaminschreck/go-sections/pkg/sections/xml"
)

const (
	headerRelationType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/header"
	headerContentType  = "application/vnd.openxmlformats-officedocument.wordprocessingml.header+xml"

	relationshipsNamespace = "http://schemas.openxmlformats.org/package/2006/relationships"
	contentTypesNamespace  = "http://schemas.openxmlformats.org/package/2006/content-types"

	contentTypesPartName = "[Content_Types].xml"
	documentPartName     = "word/document.xml"
	documentRelsPartName = "word/_rels/document.xml.rels"
)

// HeaderPart is a header part of the package: its part name and the
// parsed w:hdr root content node.
type HeaderPart struct {
	name string
	root *sxml.HdrFtr
}

// Name returns the part name, e.g. "word/header1.xml".
func (hp *HeaderPart) Name() string {
	return hp.name
}

// Element returns the w:hdr root content node of the part.
func (hp *HeaderPart) Element() *sxml.HdrFtr {
	return hp.root
}

// Text returns the part's paragraph text, one line per paragraph.
func (hp *HeaderPart) Text() string {
	return hp.root.Text()
}

// ContentTypeDefault is a Default entry of [Content_Types].xml
type ContentTypeDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// ContentTypeOverride is an Override entry of [Content_Types].xml
type ContentTypeOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// ContentTypes represents the [Content_Types].xml part
type ContentTypes struct {
	XMLName   xml.Name              `xml:"Types"`
	Namespace string                `xml:"xmlns,attr"`
	Defaults  []ContentTypeDefault  `xml:"Default"`
	Overrides []ContentTypeOverride `xml:"Override"`
}

// AddOverride registers a content type for a part, replacing any
// existing entry for the same part name. partName carries a leading
// slash per the packaging spec.
func (ct *ContentTypes) AddOverride(partName, contentType string) {
	for i := range ct.Overrides {
		if ct.Overrides[i].PartName == partName {
			ct.Overrides[i].ContentType = contentType
			return
		}
	}
	ct.Overrides = append(ct.Overrides, ContentTypeOverride{PartName: partName, ContentType: contentType})
}

// RemoveOverride drops the content type entry for a part, if present.
func (ct *ContentTypes) RemoveOverride(partName string) {
	for i := range ct.Overrides {
		if ct.Overrides[i].PartName == partName {
			ct.Overrides = append(ct.Overrides[:i], ct.Overrides[i+1:]...)
			return
		}
	}
}

// DocumentPart is the main document part of the package. It owns the
// document's relationships and content types, and stores, creates and
// drops the header parts that section headers link to.
type DocumentPart struct {
	pkg           *PackageReader
	rels          []Relationship
	contentTypes  *ContentTypes
	headers       map[string]*HeaderPart // keyed by relationship id
	headersByName map[string]*HeaderPart
	added         []string // newly created part names, creation order
	dropped       map[string]bool
}

func newDocumentPart(pkg *PackageReader) (*DocumentPart, error) {
	rels, err := pkg.Relationships(documentPartName)
	if err != nil {
		return nil, NewPartError("load", documentRelsPartName, err)
	}

	contentTypes := &ContentTypes{Namespace: contentTypesNamespace}
	if pkg.HasPart(contentTypesPartName) {
		content, _ := pkg.Part(contentTypesPartName)
		if err := xml.Unmarshal(content, contentTypes); err != nil {
			return nil, NewPartError("parse", contentTypesPartName, err)
		}
		if contentTypes.Namespace == "" {
			contentTypes.Namespace = contentTypesNamespace
		}
	}

	return &DocumentPart{
		pkg:           pkg,
		rels:          rels,
		contentTypes:  contentTypes,
		headers:       make(map[string]*HeaderPart),
		headersByName: make(map[string]*HeaderPart),
		dropped:       make(map[string]bool),
	}, nil
}

// AddHeaderPart creates a new, empty header part, registers its
// relationship and content type, and returns the part together with its
// freshly minted relationship id.
func (dp *DocumentPart) AddHeaderPart() (*HeaderPart, string, error) {
	name := dp.nextHeaderPartName()
	rID := dp.nextRelationshipID()

	part := &HeaderPart{name: name, root: sxml.NewHeader()}
	dp.rels = append(dp.rels, Relationship{
		ID:     rID,
		Type:   headerRelationType,
		Target: strings.TrimPrefix(name, "word/"),
	})
	dp.contentTypes.AddOverride("/"+name, headerContentType)
	dp.headers[rID] = part
	dp.headersByName[name] = part
	dp.added = append(dp.added, name)
	delete(dp.dropped, name)

	GetLogger().Debug("added header part %s as %s", name, rID)
	return part, rID, nil
}

// HeaderPart returns the header part the given relationship id points
// to, parsing and caching it on first access.
func (dp *DocumentPart) HeaderPart(rID string) (*HeaderPart, error) {
	if part, ok := dp.headers[rID]; ok {
		return part, nil
	}

	rel := dp.relationship(rID)
	if rel == nil {
		return nil, NewPartError("resolve", rID, fmt.Errorf("no relationship with id %s", rID))
	}
	name := dp.resolveTarget(rel.Target)

	content, err := dp.pkg.Part(name)
	if err != nil {
		return nil, NewPartError("read", name, err)
	}
	root, err := sxml.ParseHdrFtr(bytes.NewReader(content))
	if err != nil {
		return nil, NewPartError("parse", name, err)
	}

	part := &HeaderPart{name: name, root: root}
	dp.headers[rID] = part
	dp.headersByName[name] = part
	return part, nil
}

// DropHeaderPart discards the header part the given relationship id
// points to, removing the relationship and the content type entry.
func (dp *DocumentPart) DropHeaderPart(rID string) error {
	rel := dp.relationship(rID)
	if rel == nil {
		return NewPartError("drop", rID, fmt.Errorf("no relationship with id %s", rID))
	}
	name := dp.resolveTarget(rel.Target)

	for i := range dp.rels {
		if dp.rels[i].ID == rID {
			dp.rels = append(dp.rels[:i], dp.rels[i+1:]...)
			break
		}
	}
	dp.contentTypes.RemoveOverride("/" + name)
	delete(dp.headers, rID)
	delete(dp.headersByName, name)
	for i := range dp.added {
		if dp.added[i] == name {
			dp.added = append(dp.added[:i], dp.added[i+1:]...)
			break
		}
	}
	dp.dropped[name] = true

	GetLogger().Debug("dropped header part %s (%s)", name, rID)
	return nil
}

func (dp *DocumentPart) relationship(rID string) *Relationship {
	for i := range dp.rels {
		if dp.rels[i].ID == rID {
			return &dp.rels[i]
		}
	}
	return nil
}

// resolveTarget converts a document-relationship target into a package
// part name. Targets of the document part are relative to word/.
func (dp *DocumentPart) resolveTarget(target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return "word/" + target
}

// nextRelationshipID mints an id one past the highest numeric rId in use
func (dp *DocumentPart) nextRelationshipID() string {
	maxID := 0
	for _, rel := range dp.rels {
		if strings.HasPrefix(rel.ID, "rId") {
			numStr := strings.TrimPrefix(rel.ID, "rId")
			if num, err := strconv.Atoi(numStr); err == nil && num > maxID {
				maxID = num
			}
		}
	}
	return fmt.Sprintf("rId%d", maxID+1)
}

// nextHeaderPartName returns the first free word/headerN.xml name.
// Dropped names stay reserved so saved packages never resurrect them.
func (dp *DocumentPart) nextHeaderPartName() string {
	for n := 1; ; n++ {
		name := fmt.Sprintf("word/header%d.xml", n)
		if dp.pkg.HasPart(name) {
			continue
		}
		if _, ok := dp.headersByName[name]; ok {
			continue
		}
		return name
	}
}

func (dp *DocumentPart) headerPartByName(name string) (*HeaderPart, bool) {
	part, ok := dp.headersByName[name]
	return part, ok
}

func (dp *DocumentPart) isDropped(name string) bool {
	return dp.dropped[name]
}

func (dp *DocumentPart) addedParts() []string {
	return dp.added
}

func (dp *DocumentPart) marshalRelationships() ([]byte, error) {
	rels := Relationships{
		Namespace:    relationshipsNamespace,
		Relationship: dp.rels,
	}
	output, err := xml.Marshal(rels)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal relationships: %w", err)
	}
	return append([]byte(xml.Header), output...), nil
}

func (dp *DocumentPart) marshalContentTypes() ([]byte, error) {
	output, err := xml.Marshal(dp.contentTypes)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal content types: %w", err)
	}
	return append([]byte(xml.Header), output...), nil
}
