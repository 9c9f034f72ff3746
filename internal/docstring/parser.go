package docstring

import (
	"regexp"
	"strings"

	"github.com/ShivMunagala/pydoccheck/pkg/types"
)

// Section headers that terminate an Args block even without a blank line
var sectionHeaders = map[string]bool{
	"Args:":       true,
	"Arguments:":  true,
	"Returns:":    true,
	"Return:":     true,
	"Yields:":     true,
	"Raises:":     true,
	"Attributes:": true,
	"Example:":    true,
	"Examples:":   true,
	"Note:":       true,
	"Notes:":      true,
	"Warning:":    true,
	"Warnings:":   true,
	"References:": true,
	"Todo:":       true,
}

// entryPattern matches one Args entry: "name (type): desc" or "name: desc".
// Each line introduces exactly one parameter; a shared description block for
// several names is not supported.
var entryPattern = regexp.MustCompile(`^([*]{0,2}[A-Za-z_][A-Za-z0-9_]*)(?:\s*\(([^)]*)\))?\s*:\s*(.*)$`)

// optionalSuffix strips the trailing ", optional" qualifier from a type
var optionalSuffix = regexp.MustCompile(`(?i),\s*optional\s*$`)

// ParseArgs extracts the documented parameters from a Google-style docstring
// body. It returns them in the order written.
//
// A docstring without an "Args:"/"Arguments:" section yields an empty
// sequence. Single-line docstrings are exempt from argument documentation and
// also yield an empty sequence; the reconciler skips such functions entirely.
// A line inside the Args block that sits at entry indentation but matches no
// entry pattern is a parse error.
func ParseArgs(doc string) ([]types.DocumentedParameter, error) {
	if IsSingleLine(doc) {
		return nil, nil
	}

	lines := strings.Split(doc, "\n")

	headerIdx := -1
	headerIndent := 0
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "Args:" || trimmed == "Arguments:" {
			headerIdx = i
			headerIndent = indentOf(line)
			break
		}
	}
	if headerIdx == -1 {
		return nil, nil
	}

	params := make([]types.DocumentedParameter, 0, 4)
	entryIndent := -1

	for i := headerIdx + 1; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		// A blank line ends the Args section
		if trimmed == "" {
			break
		}

		indent := indentOf(line)

		// A dedented line (or a sibling section header) ends the section
		if indent <= headerIndent || sectionHeaders[trimmed] {
			break
		}

		if entryIndent == -1 {
			entryIndent = indent
		}

		// Deeper-indented lines continue the previous entry's description
		if indent > entryIndent {
			if len(params) == 0 {
				return nil, types.NewParseError("", i+1, indent+1,
					"continuation line before any Args entry: %q", trimmed)
			}
			continue
		}

		m := entryPattern.FindStringSubmatch(trimmed)
		if m == nil {
			return nil, types.NewParseError("", i+1, indent+1,
				"malformed Args entry: %q", trimmed)
		}

		name := strings.TrimLeft(m[1], "*")
		typeText := strings.TrimSpace(m[2])

		optional := false
		if stripped := optionalSuffix.ReplaceAllString(typeText, ""); stripped != typeText {
			optional = true
			typeText = strings.TrimSpace(stripped)
		}

		params = append(params, types.DocumentedParameter{
			Name:           name,
			DocumentedType: typeText,
			Optional:       optional,
		})
	}

	return params, nil
}

// IsSingleLine reports whether a docstring body fits on one line
func IsSingleLine(doc string) bool {
	trimmed := strings.TrimSpace(doc)
	return !strings.ContainsAny(trimmed, "\n\r")
}

func indentOf(line string) int {
	n := 0
	for _, r := range line {
		switch r {
		case ' ':
			n++
		case '\t':
			n += 8
		default:
			return n
		}
	}
	return n
}
