// Package types provides shared type definitions for the pydoccheck checker.
//
// This package defines the domain types passed between the parsing, reconciling,
// and reporting components: parameter records, function units, findings, and
// per-file check results.
//
// # Core Types
//
// Finding represents one discrepancy between a function's signature and its
// docstring:
//
//	finding := types.Finding{
//	    FunctionName:   "load",
//	    ParameterName:  "path",
//	    Kind:           types.KindTypeMismatch,
//	    DeclaredType:   "str",
//	    DocumentedType: "int",
//	}
//
// ParameterSignature and DocumentedParameter are the two sides of the
// comparison: what the def line declares and what the Args section documents.
// FunctionUnit bundles one function's parameters and docstring for a single
// check run.
//
// # Lifecycle
//
// All types here are plain immutable records. They are created during a single
// linear pass over a source file and discarded once their findings have been
// emitted; nothing is cached or mutated across functions or files.
//
// # Validation
//
// Domain types implement validation methods to ensure data integrity:
//
//	if err := finding.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package types
