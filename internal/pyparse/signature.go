package pyparse

import (
	"regexp"
	"strings"

	"github.com/ShivMunagala/pydoccheck/pkg/types"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ExtractParams splits the text between a def's parentheses into parameter
// signatures. The split is depth-aware: commas inside brackets, parentheses,
// braces, or string literals do not separate parameters.
//
// Positional-only and keyword-only markers ("/" and a bare "*") are skipped,
// as is a leading self or cls receiver without an annotation. Star prefixes
// on *args/**kwargs are stripped from the stored name.
func ExtractParams(paramList string) ([]types.ParameterSignature, error) {
	parts, err := splitTopLevel(paramList)
	if err != nil {
		return nil, err
	}

	params := make([]types.ParameterSignature, 0, len(parts))
	seen := make(map[string]bool)

	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if part == "*" || part == "/" {
			continue
		}

		name, annotation, hasDefault, err := splitParam(part)
		if err != nil {
			return nil, err
		}

		stars := len(name) - len(strings.TrimLeft(name, "*"))
		name = name[stars:]

		if !identifierPattern.MatchString(name) {
			return nil, types.NewParseError("", 0, 0, "invalid parameter name %q", name)
		}

		// The receiver carries no documentation obligation
		if i == 0 && stars == 0 && annotation == "" && (name == "self" || name == "cls") {
			continue
		}

		if seen[name] {
			return nil, types.NewParseError("", 0, 0, "%v: %s", types.ErrDuplicateParameter, name)
		}
		seen[name] = true

		params = append(params, types.ParameterSignature{
			Name:         name,
			DeclaredType: annotation,
			HasDefault:   hasDefault,
		})
	}

	return params, nil
}

// splitParam divides one parameter fragment into name, annotation, and
// default presence. The annotation starts at the first depth-0 colon; the
// default at the first depth-0 equals sign after it.
func splitParam(part string) (name, annotation string, hasDefault bool, err error) {
	depth := 0
	colonAt := -1
	eqAt := -1

	for i := 0; i < len(part); i++ {
		c := part[i]
		switch c {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case '\'', '"':
			end, serr := skipString(part, i)
			if serr != nil {
				return "", "", false, serr
			}
			i = end
		case ':':
			// A colon after the equals sign belongs to the default
			// expression (a lambda body), not the annotation
			if depth == 0 && colonAt == -1 && eqAt == -1 {
				colonAt = i
			}
		case '=':
			if depth == 0 && eqAt == -1 {
				// Skip comparison operators inside default expressions
				if i+1 < len(part) && part[i+1] == '=' {
					i++
					continue
				}
				if i > 0 && (part[i-1] == '!' || part[i-1] == '<' || part[i-1] == '>') {
					continue
				}
				eqAt = i
			}
		}
	}
	if depth != 0 {
		return "", "", false, types.NewParseError("", 0, 0, "unbalanced brackets in parameter %q", part)
	}

	switch {
	case colonAt >= 0 && eqAt > colonAt:
		name = part[:colonAt]
		annotation = part[colonAt+1 : eqAt]
		hasDefault = true
	case colonAt >= 0:
		name = part[:colonAt]
		annotation = part[colonAt+1:]
	case eqAt >= 0:
		name = part[:eqAt]
		hasDefault = true
	default:
		name = part
	}

	return strings.TrimSpace(name), strings.TrimSpace(annotation), hasDefault, nil
}

// splitTopLevel splits on commas outside any bracket or string literal
func splitTopLevel(s string) ([]string, error) {
	var parts []string
	depth := 0
	start := 0

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
			if depth < 0 {
				return nil, types.NewParseError("", 0, 0, "unbalanced brackets in parameter list")
			}
		case '\'', '"':
			end, err := skipString(s, i)
			if err != nil {
				return nil, err
			}
			i = end
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, types.NewParseError("", 0, 0, "unbalanced brackets in parameter list")
	}
	parts = append(parts, s[start:])
	return parts, nil
}

// skipString advances past a quoted literal starting at s[i], returning the
// index of the closing quote
func skipString(s string, i int) (int, error) {
	quote := s[i]
	for j := i + 1; j < len(s); j++ {
		if s[j] == '\\' {
			j++
			continue
		}
		if s[j] == quote {
			return j, nil
		}
	}
	return 0, types.NewParseError("", 0, 0, "unterminated string literal in parameter list")
}
