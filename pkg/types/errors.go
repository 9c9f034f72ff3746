package types

import (
	"errors"
	"fmt"
)

// Domain errors for type validation
var (
	// ErrEmptyParameterName is returned for parameters with no name
	ErrEmptyParameterName = errors.New("parameter name cannot be empty")
	// ErrDuplicateParameter is returned when a signature declares the same name twice
	ErrDuplicateParameter = errors.New("duplicate parameter name")
	// ErrTypeTooDeep is returned when a type expression exceeds the nesting bound
	ErrTypeTooDeep = errors.New("type expression nesting too deep")
)

// ParseError represents an error that occurred while parsing a parameter list
// or an Args block. It is local to one function and never aborts a batch.
type ParseError struct {
	File    string
	Line    int
	Column  int
	Message string
}

// Error implements the error interface
func (pe *ParseError) Error() string {
	if pe.File != "" {
		return fmt.Sprintf("%s:%d:%d: %s", pe.File, pe.Line, pe.Column, pe.Message)
	}
	return pe.Message
}

// NewParseError creates a ParseError at the given location
func NewParseError(file string, line, col int, format string, args ...interface{}) *ParseError {
	return &ParseError{
		File:    file,
		Line:    line,
		Column:  col,
		Message: fmt.Sprintf(format, args...),
	}
}
