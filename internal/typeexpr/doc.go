// Package typeexpr canonicalizes Python type-hint expressions for textual
// comparison.
//
// The normalizer parses a hint with a small recursive-descent tokenizer over
// bracket, pipe, and comma delimiters, then re-renders it in a canonical form:
// whitespace collapsed, forward-reference quotes stripped, and the three
// spellings of optionality (Optional[X], Union[X, None], X | None) folded into
// X plus an optional flag.
//
// # Basic Usage
//
//	n, err := typeexpr.Normalize("Optional[ Dict[str,int] ]")
//	// n.Text == "Dict[str, int]", n.Optional == true
//
//	typeexpr.Equal("Optional[int]", "int | None") // true
//
// # Limitations
//
// Comparison is purely textual on the canonical form. Union member order is
// preserved, so "int | str" does not equal "str | int", and type aliases are
// never resolved. Nesting is bounded by MaxNestingDepth; deeper expressions
// are rejected.
package typeexpr
