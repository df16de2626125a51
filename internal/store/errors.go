package store

import (
	"errors"
	"fmt"
)

// Kinds of malformed entries. A *ParseError unwraps to one of these.
var (
	ErrMissingMarker   = errors.New("missing marker")
	ErrInvalidMarker   = errors.New("invalid marker")
	ErrMissingName     = errors.New("missing name")
	ErrMissingLink     = errors.New("missing link")
	ErrMissingUsername = errors.New("missing username")
	ErrMissingPassword = errors.New("missing password")
)

// ErrRead is returned when the password file cannot be read.
var ErrRead = errors.New("could not read password file")

// ParseError locates a malformed entry in the store.
type ParseError struct {
	Line   int    // 1-based, counting blank and comment lines
	Kind   error  // one of the ErrMissing*/ErrInvalidMarker values
	Marker string // offending token, set for ErrInvalidMarker only
}

func (e *ParseError) Error() string {
	if e.Kind == ErrInvalidMarker {
		return fmt.Sprintf("invalid entry at line %d, invalid marker %q", e.Line, e.Marker)
	}
	return fmt.Sprintf("invalid entry at line %d, %v", e.Line, e.Kind)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}
