// Package pyparse extracts function signatures and docstrings from Python
// source.
//
// Two entry points cover the two input granularities:
//
//   - Parser.ParseSource / Parser.ParseFile use tree-sitter to walk a whole
//     module, yielding one FunctionUnit per def (methods included, with
//     nesting and decorators handled). Syntax errors are confined to the
//     function that contains them.
//
//   - ExtractParams splits a raw parameter-list string into parameter
//     signatures without a full parse. The checker uses it when a caller
//     hands over a bare signature rather than a source file.
//
// Both paths skip the self/cls receiver and the "/" and "*" markers, and
// strip the star prefixes from *args/**kwargs so names compare directly
// against the documented ones.
package pyparse
