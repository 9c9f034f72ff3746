package types

import (
	"errors"
	"fmt"
)

// FindingKind classifies a discrepancy between a function signature and its docstring
type FindingKind string

const (
	// KindMissingInDoc means a signature parameter has no docstring entry
	KindMissingInDoc FindingKind = "missing_in_doc"
	// KindMissingInSignature means a documented parameter does not exist in the signature
	KindMissingInSignature FindingKind = "missing_in_signature"
	// KindTypeMismatch means declared and documented types differ after normalization
	KindTypeMismatch FindingKind = "type_mismatch"
	// KindNameOrderMismatch means the docstring documents parameters in a different order
	KindNameOrderMismatch FindingKind = "name_order_mismatch"
	// KindUnparseableFunction means the signature or docstring could not be parsed
	KindUnparseableFunction FindingKind = "unparseable_function"
	// KindMissingDocstring means the function has no docstring at all
	KindMissingDocstring FindingKind = "missing_docstring"
)

// Position represents a location in source code
type Position struct {
	Line   int
	Column int
}

// Finding is a single discrepancy reported for one parameter of one function.
// Findings are immutable once created; they are produced fresh per check run.
type Finding struct {
	// Identification
	FunctionName  string
	ParameterName string // Empty for function-level kinds (unparseable, missing docstring)
	Kind          FindingKind

	// The two sides of the comparison, normalized. Empty means "no type".
	DeclaredType   string
	DocumentedType string

	// Location
	File     string
	Location Position

	// Detail carries extra context, e.g. the parse error for unparseable functions
	Detail string
}

// ValidateKind checks if the finding kind is valid
func (f *Finding) ValidateKind() error {
	switch f.Kind {
	case KindMissingInDoc, KindMissingInSignature, KindTypeMismatch,
		KindNameOrderMismatch, KindUnparseableFunction, KindMissingDocstring:
		return nil
	default:
		return errors.New("invalid finding kind")
	}
}

// Validate performs comprehensive validation of the finding
func (f *Finding) Validate() error {
	if f.FunctionName == "" {
		return errors.New("function name is required")
	}

	if err := f.ValidateKind(); err != nil {
		return err
	}

	// Parameter-level kinds must name a parameter
	switch f.Kind {
	case KindMissingInDoc, KindMissingInSignature, KindTypeMismatch, KindNameOrderMismatch:
		if f.ParameterName == "" {
			return errors.New("parameter name is required")
		}
	}

	if f.Location.Line < 0 {
		return errors.New("invalid position: line must not be negative")
	}

	return nil
}

// Message renders a one-line human-readable description of the finding
func (f *Finding) Message() string {
	switch f.Kind {
	case KindMissingInDoc:
		return fmt.Sprintf("parameter %q of %q is not documented in the Args section", f.ParameterName, f.FunctionName)
	case KindMissingInSignature:
		return fmt.Sprintf("docstring of %q documents %q, which is not a parameter", f.FunctionName, f.ParameterName)
	case KindTypeMismatch:
		return fmt.Sprintf("parameter %q of %q: declared type %q but documented as %q",
			f.ParameterName, f.FunctionName, orNone(f.DeclaredType), orNone(f.DocumentedType))
	case KindNameOrderMismatch:
		return fmt.Sprintf("docstring of %q documents %q out of signature order", f.FunctionName, f.ParameterName)
	case KindUnparseableFunction:
		return fmt.Sprintf("could not check %q: %s", f.FunctionName, f.Detail)
	case KindMissingDocstring:
		return fmt.Sprintf("function %q has no docstring", f.FunctionName)
	default:
		return fmt.Sprintf("unknown finding for %q", f.FunctionName)
	}
}

func orNone(typ string) string {
	if typ == "" {
		return "none"
	}
	return typ
}
