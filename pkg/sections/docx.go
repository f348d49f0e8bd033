package sections

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

// PackageReader handles reading a DOCX package into memory
type PackageReader struct {
	// names preserves the original part order of the package
	names []string
	parts map[string][]byte
}

// Relationship represents a relationship in the DOCX package
type Relationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr,omitempty"`
}

// Relationships represents the collection of relationships
type Relationships struct {
	XMLName      xml.Name       `xml:"Relationships"`
	Namespace    string         `xml:"xmlns,attr"`
	Relationship []Relationship `xml:"Relationship"`
}

// NewPackageReader creates a new package reader from zip content
func NewPackageReader(r io.ReaderAt, size int64) (*PackageReader, error) {
	zipReader, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to read zip file: %w", err)
	}

	pr := &PackageReader{
		parts: make(map[string][]byte),
	}

	// Read all parts into memory, keeping the original order
	for _, file := range zipReader.File {
		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open part %s: %w", file.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read part %s: %w", file.Name, err)
		}
		pr.names = append(pr.names, file.Name)
		pr.parts[file.Name] = content
	}

	// Check if this is a valid DOCX file by looking for required parts
	if _, ok := pr.parts["word/document.xml"]; !ok {
		return nil, fmt.Errorf("not a valid DOCX file: missing word/document.xml")
	}

	return pr, nil
}

// PackageReaderFromFile creates a PackageReader from a file path
func PackageReaderFromFile(path string) (*PackageReader, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	reader := bytes.NewReader(content)
	return NewPackageReader(reader, int64(len(content)))
}

// Part retrieves the content of a specific part
func (pr *PackageReader) Part(name string) ([]byte, error) {
	content, ok := pr.parts[name]
	if !ok {
		return nil, fmt.Errorf("part %s not found", name)
	}
	return content, nil
}

// HasPart reports whether the package contains a part with this name
func (pr *PackageReader) HasPart(name string) bool {
	_, ok := pr.parts[name]
	return ok
}

// PartNames returns all part names in the package's original order
func (pr *PackageReader) PartNames() []string {
	names := make([]string, len(pr.names))
	copy(names, pr.names)
	return names
}

// DocumentXML retrieves the content of word/document.xml
func (pr *PackageReader) DocumentXML() ([]byte, error) {
	return pr.Part("word/document.xml")
}

// Relationships retrieves relationships for a given part
func (pr *PackageReader) Relationships(partName string) ([]Relationship, error) {
	// Convert part name to its relationships file name
	// e.g., "word/document.xml" -> "word/_rels/document.xml.rels"
	dir := ""
	base := partName
	if idx := strings.LastIndex(partName, "/"); idx != -1 {
		dir = partName[:idx]
		base = partName[idx+1:]
	}

	relPath := fmt.Sprintf("%s/_rels/%s.rels", dir, base)
	if dir == "" {
		relPath = fmt.Sprintf("_rels/%s.rels", base)
	}

	content, ok := pr.parts[relPath]
	if !ok {
		if GetGlobalConfig().StrictMode {
			return nil, fmt.Errorf("relationships part %s not found", relPath)
		}
		// Missing relationships file is not an error, just return empty
		return []Relationship{}, nil
	}

	var rels Relationships
	if err := xml.Unmarshal(content, &rels); err != nil {
		return nil, fmt.Errorf("failed to parse relationships: %w", err)
	}

	return rels.Relationship, nil
}
