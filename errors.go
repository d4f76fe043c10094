package decision

import (
	"errors"
	"fmt"
)

// Sentinel errors for the load phase, matched with errors.Is.
var (
	ErrNotFound = errors.New("decision: file not found")
	ErrParse    = errors.New("decision: invalid JSON")
	ErrIO       = errors.New("decision: read failure")
)

// NotFoundError reports a path that does not resolve to a file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("File not found: %s", e.Path)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ParseError reports content that is not syntactically valid JSON.
// Line and Column are 1-based; both are zero when the parser gave no offset.
type ParseError struct {
	Msg    string
	Offset int64
	Line   int
	Column int
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("Invalid JSON syntax: %s", e.Msg)
	}
	return fmt.Sprintf("Invalid JSON syntax: %s: line %d column %d (char %d)", e.Msg, e.Line, e.Column, e.Offset)
}

func (e *ParseError) Unwrap() error { return ErrParse }

// IOError reports any other failure to read the document.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("Error reading file: %v", e.Err)
}

func (e *IOError) Unwrap() []error { return []error{ErrIO, e.Err} }
