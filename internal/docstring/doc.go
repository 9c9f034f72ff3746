// Package docstring parses Google-style docstrings for the documented
// parameter list that the checker reconciles against function signatures.
//
// Only the "Args:" (or "Arguments:") section is interpreted. The section runs
// from the header line to the first blank line, dedented line, or sibling
// section header. Each entry occupies one line at the first entry's
// indentation, in one of two forms:
//
//	name (type): description
//	name: description
//
// Lines indented deeper than the entry level continue the previous entry's
// description and carry no type information. A trailing ", optional"
// qualifier inside the parenthesized type marks the parameter optional and is
// stripped from the type text. Star prefixes on *args/**kwargs style names
// are stripped so they compare equal to their signature counterparts.
package docstring
