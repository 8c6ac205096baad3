package keyfile

import (
	"errors"
	"fmt"
)

// Errors returned by key file accessors.
var (
	// ErrGroupNotFound indicates the named group doesn't exist.
	ErrGroupNotFound = errors.New("group not found")

	// ErrKeyNotFound indicates the key is absent from the group.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidValue indicates the value cannot be converted to the
	// requested type.
	ErrInvalidValue = errors.New("invalid value")
)

// ParseError represents an error while parsing a key file.
type ParseError struct {
	// Path is the file path that failed to parse (may be empty for readers).
	Path string
	// Line is the 1-based line number where the error occurred.
	Line int
	// Message describes the parse error.
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error at line %d: %s", e.Line, e.Message)
}
