// Package checker reconciles Python function signatures against their
// Google-style docstrings.
//
// # Overview
//
// The checker aligns the parameter list declared in a def with the entries of
// the docstring's Args section, by name, and reports every discrepancy as a
// Finding:
//
//   - a signature parameter with no Args entry (missing_in_doc)
//   - an Args entry naming no signature parameter (missing_in_signature)
//   - declared and documented types that differ after normalization, or a
//     type written on only one side (type_mismatch)
//   - optionally, Args entries listed out of signature order
//     (name_order_mismatch)
//
// Type texts are canonicalized by the typeexpr package before comparison, so
// Optional[int], int | None, and "int, optional" all compare equal to int.
// Comparison is textual: union member order is significant.
//
// # Error confinement
//
// A parse failure in one function's parameter list or Args block produces a
// single unparseable_function finding for that function and never aborts the
// rest of the file. Functions whose docstring is a single line are exempt
// from argument checks.
//
// # Entry points
//
// CheckFunction checks one signature/docstring pair handed over as text.
// CheckSource and CheckFile enumerate every def in a module and concatenate
// the per-function findings.
package checker
