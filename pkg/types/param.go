package types

import "errors"

// ParameterSignature is one parameter as declared in a function definition
type ParameterSignature struct {
	Name         string
	DeclaredType string // Raw type-hint expression text; empty means no annotation
	HasDefault   bool
}

// Validate checks the invariants of a parameter signature
func (p *ParameterSignature) Validate() error {
	if p.Name == "" {
		return errors.New("parameter name is required")
	}
	return nil
}

// DocumentedParameter is one entry of a docstring's Args section
type DocumentedParameter struct {
	Name           string
	DocumentedType string // Type text inside the parentheses; empty means none written
	Optional       bool   // True when the type carried a trailing ", optional" qualifier
}

// Validate checks the invariants of a documented parameter
func (d *DocumentedParameter) Validate() error {
	if d.Name == "" {
		return errors.New("parameter name is required")
	}
	return nil
}

// FunctionUnit is the unit of analysis: one function's parameter list plus its
// docstring, owned exclusively by the check run that parsed it. No state is
// shared across functions or files.
type FunctionUnit struct {
	Name     string
	File     string
	Start    Position
	IsMethod bool // Defined inside a class body

	Parameters []ParameterSignature
	Docstring  string // Raw docstring body, empty if the function has none

	// ParseErr is set when the parameter list could not be extracted; the
	// checker converts it into an unparseable-function finding.
	ParseErr *ParseError
}
