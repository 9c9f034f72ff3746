package typeexpr

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ShivMunagala/pydoccheck/pkg/types"
)

// MaxNestingDepth bounds bracket nesting in a type expression. Deeper input is
// rejected rather than parsed, guarding against pathological hints.
const MaxNestingDepth = 32

// Normalized is the canonical form of a type-hint expression
type Normalized struct {
	// Text is the canonical rendering used for equality comparison.
	// Empty means the expression reduced to nothing.
	Text string

	// Optional is true when the expression carried an Optional[...] wrapper
	// or a None union member at the top level. Informational only: it is not
	// compared between signature and docstring.
	Optional bool
}

// Normalize canonicalizes a raw type-hint expression so that structurally
// identical types compare equal regardless of incidental formatting:
//
//   - internal whitespace is collapsed ("Dict[ str,int ]" -> "Dict[str, int]")
//   - surrounding quotes from forward references are stripped
//   - top-level Optional[X], Union[X, None] and X | None become X with the
//     Optional flag set
//
// Comparison of two normalized texts is exact string equality. Union member
// order is preserved, so "int | str" and "str | int" stay distinct.
func Normalize(expr string) (Normalized, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return Normalized{}, nil
	}

	p := &parser{input: []rune(trimmed)}
	n, err := p.parseUnion(0)
	if err != nil {
		return Normalized{}, err
	}
	p.skipSpace()
	if p.pos < len(p.input) {
		return Normalized{}, fmt.Errorf("unexpected %q at offset %d in type expression %q",
			string(p.input[p.pos]), p.pos, trimmed)
	}

	members := unionMembers(n)

	// Top-level Optional[X] unwraps to X.
	optional := false
	wrapped := false
	if len(members) == 1 {
		if inner, ok := unwrapOptional(members[0]); ok {
			optional = true
			wrapped = true
			members = unionMembers(inner)
		}
	}

	// A None union member marks the type optional and is dropped.
	kept := members[:0]
	for _, m := range members {
		if m.kind == atomNode && m.text == "None" {
			optional = true
			continue
		}
		kept = append(kept, m)
	}

	if len(kept) == 0 {
		// Nothing left but None itself. A bare None is just the type None;
		// an Optional wrapper or a multi-member union keeps the flag.
		return Normalized{Text: "None", Optional: wrapped || len(members) > 1}, nil
	}

	parts := make([]string, len(kept))
	for i, m := range kept {
		parts[i] = m.render()
	}
	return Normalized{Text: strings.Join(parts, " | "), Optional: optional}, nil
}

// Equal reports whether two raw type expressions normalize to the same text.
// Unparseable input never compares equal to anything.
func Equal(a, b string) bool {
	na, err := Normalize(a)
	if err != nil {
		return false
	}
	nb, err := Normalize(b)
	if err != nil {
		return false
	}
	return na.Text == nb.Text
}

type nodeKind int

const (
	atomNode nodeKind = iota
	subscriptNode
	listNode
	unionNode
)

// node is a parsed type expression fragment. Only enough structure is kept to
// re-render canonically; no semantic type resolution happens here.
type node struct {
	kind nodeKind
	text string  // atom text, or subscript base name
	args []*node // subscript arguments, list elements, or union members
}

func (n *node) render() string {
	switch n.kind {
	case atomNode:
		return n.text
	case subscriptNode:
		return n.text + "[" + renderList(n.args) + "]"
	case listNode:
		return "[" + renderList(n.args) + "]"
	case unionNode:
		parts := make([]string, len(n.args))
		for i, m := range n.args {
			parts[i] = m.render()
		}
		return strings.Join(parts, " | ")
	}
	return ""
}

func renderList(args []*node) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.render()
	}
	return strings.Join(parts, ", ")
}

func unionMembers(n *node) []*node {
	if n.kind == unionNode {
		return n.args
	}
	return []*node{n}
}

// unwrapOptional returns the single argument of Optional[X] or Union[..., ...]
// collapsed to a union node. Union is treated here rather than during parsing
// so that nested occurrences stay verbatim.
func unwrapOptional(n *node) (*node, bool) {
	if n.kind != subscriptNode {
		return nil, false
	}
	switch n.text {
	case "Optional", "typing.Optional":
		if len(n.args) == 1 {
			return n.args[0], true
		}
	case "Union", "typing.Union":
		return &node{kind: unionNode, args: n.args}, true
	}
	return nil, false
}

// parser is a small recursive-descent parser over bracket/pipe/comma
// delimiters. Regular expressions alone cannot bound nesting depth.
type parser struct {
	input []rune
	pos   int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && unicode.IsSpace(p.input[p.pos]) {
		p.pos++
	}
}

func (p *parser) peek() (rune, bool) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return 0, false
	}
	return p.input[p.pos], true
}

// parseUnion parses term { "|" term }
func (p *parser) parseUnion(depth int) (*node, error) {
	first, err := p.parseTerm(depth)
	if err != nil {
		return nil, err
	}

	members := []*node{first}
	for {
		c, ok := p.peek()
		if !ok || c != '|' {
			break
		}
		p.pos++
		next, err := p.parseTerm(depth)
		if err != nil {
			return nil, err
		}
		members = append(members, next)
	}

	if len(members) == 1 {
		return first, nil
	}
	return &node{kind: unionNode, args: members}, nil
}

// parseTerm parses an atom, a quoted forward reference, or a bracketed list,
// optionally followed by a subscript.
func (p *parser) parseTerm(depth int) (*node, error) {
	if depth > MaxNestingDepth {
		return nil, fmt.Errorf("%w: more than %d levels", types.ErrTypeTooDeep, MaxNestingDepth)
	}

	c, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("unexpected end of type expression")
	}

	var term *node
	switch {
	case c == '\'' || c == '"':
		// Forward reference: parse the quoted content as a sub-expression
		// and splice it in without the quotes.
		inner, err := p.readQuoted(c)
		if err != nil {
			return nil, err
		}
		sub := &parser{input: []rune(strings.TrimSpace(inner))}
		term, err = sub.parseUnion(depth + 1)
		if err != nil {
			return nil, err
		}
		sub.skipSpace()
		if sub.pos < len(sub.input) {
			return nil, fmt.Errorf("unexpected %q inside quoted type %q", string(sub.input[sub.pos]), inner)
		}
	case c == '[':
		// Bracketed element list, e.g. the argument list of Callable[[int, str], bool]
		args, err := p.parseBracketed(depth+1, '[', ']')
		if err != nil {
			return nil, err
		}
		term = &node{kind: listNode, args: args}
	default:
		atom, err := p.readAtom()
		if err != nil {
			return nil, err
		}
		term = &node{kind: atomNode, text: atom}
	}

	// Subscript suffix: Name[...]
	if c, ok := p.peek(); ok && c == '[' && term.kind == atomNode {
		args, err := p.parseBracketed(depth+1, '[', ']')
		if err != nil {
			return nil, err
		}
		term = &node{kind: subscriptNode, text: term.text, args: args}
	}

	return term, nil
}

// parseBracketed consumes open, a comma-separated expression list, and close
func (p *parser) parseBracketed(depth int, open, close rune) ([]*node, error) {
	if depth > MaxNestingDepth {
		return nil, fmt.Errorf("%w: more than %d levels", types.ErrTypeTooDeep, MaxNestingDepth)
	}

	p.skipSpace()
	p.pos++ // consume open

	args := make([]*node, 0, 2)
	if c, ok := p.peek(); ok && c == close {
		// Empty subscript like Tuple[] is not valid Python, reject it.
		return nil, fmt.Errorf("empty brackets in type expression")
	}

	for {
		arg, err := p.parseUnion(depth)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		c, ok := p.peek()
		if !ok {
			return nil, fmt.Errorf("unterminated %q in type expression", string(open))
		}
		switch c {
		case ',':
			p.pos++
		case close:
			p.pos++
			return args, nil
		default:
			return nil, fmt.Errorf("unexpected %q in type expression", string(c))
		}
	}
}

// readAtom consumes a run of non-delimiter characters: identifiers, dotted
// names, literals, Ellipsis dots, and parenthesized groups like Tuple[()]
func (p *parser) readAtom() (string, error) {
	p.skipSpace()
	start := p.pos
	parens := 0
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if parens == 0 && (c == '[' || c == ']' || c == ',' || c == '|' || unicode.IsSpace(c)) {
			break
		}
		switch c {
		case '(':
			parens++
		case ')':
			if parens == 0 {
				return "", fmt.Errorf("unbalanced ')' in type expression")
			}
			parens--
		case '\'', '"':
			return "", fmt.Errorf("unexpected quote inside type expression")
		}
		p.pos++
	}
	if parens != 0 {
		return "", fmt.Errorf("unbalanced '(' in type expression")
	}
	if p.pos == start {
		return "", fmt.Errorf("unexpected %q in type expression", string(p.input[p.pos]))
	}
	return string(p.input[start:p.pos]), nil
}

// readQuoted consumes a quoted string and returns its content
func (p *parser) readQuoted(quote rune) (string, error) {
	p.skipSpace()
	p.pos++ // consume opening quote
	start := p.pos
	for p.pos < len(p.input) {
		if p.input[p.pos] == quote {
			content := string(p.input[start:p.pos])
			p.pos++
			return content, nil
		}
		p.pos++
	}
	return "", fmt.Errorf("unterminated quote in type expression")
}
