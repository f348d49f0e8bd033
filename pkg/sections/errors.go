// Package sections provides custom error types for better error handling and reporting.
package sections

import "fmt"

// OutOfRangeError reports an index outside a section sequence's bounds.
type OutOfRangeError struct {
	Index  int
	Length int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("section index %d out of range [0, %d)", e.Index, e.Length)
}

// NewOutOfRangeError creates a new out-of-range error
func NewOutOfRangeError(index, length int) error {
	return &OutOfRangeError{
		Index:  index,
		Length: length,
	}
}

// PartError represents an error during a package-part operation
type PartError struct {
	Operation string
	Part      string
	Cause     error
}

func (e *PartError) Error() string {
	if e.Part != "" && e.Cause != nil {
		return fmt.Sprintf("part error during %s of '%s': %v", e.Operation, e.Part, e.Cause)
	} else if e.Part != "" {
		return fmt.Sprintf("part error during %s of '%s'", e.Operation, e.Part)
	} else if e.Cause != nil {
		return fmt.Sprintf("part error during %s: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("part error during %s", e.Operation)
}

func (e *PartError) Unwrap() error {
	return e.Cause
}

// NewPartError creates a new part error
func NewPartError(operation, part string, cause error) error {
	return &PartError{
		Operation: operation,
		Part:      part,
		Cause:     cause,
	}
}

// DocumentError represents an error during document operations
type DocumentError struct {
	Operation string
	Path      string
	Cause     error
}

func (e *DocumentError) Error() string {
	if e.Path != "" && e.Cause != nil {
		return fmt.Sprintf("document error during %s of '%s': %v", e.Operation, e.Path, e.Cause)
	} else if e.Path != "" {
		return fmt.Sprintf("document error during %s of '%s'", e.Operation, e.Path)
	} else if e.Cause != nil {
		return fmt.Sprintf("document error during %s: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("document error during %s", e.Operation)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// NewDocumentError creates a new document error
func NewDocumentError(operation, path string, cause error) error {
	return &DocumentError{
		Operation: operation,
		Path:      path,
		Cause:     cause,
	}
}

// IsOutOfRangeError checks if an error is an out-of-range error
func IsOutOfRangeError(err error) bool {
	_, ok := err.(*OutOfRangeError)
	return ok
}

// IsPartError checks if an error is a part error
func IsPartError(err error) bool {
	_, ok := err.(*PartError)
	return ok
}

// IsDocumentError checks if an error is a document error
func IsDocumentError(err error) bool {
	_, ok := err.(*DocumentError)
	return ok
}
