package pyparse

import (
	"context"
	"fmt"
	"os"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/ShivMunagala/pydoccheck/pkg/types"
)

// Parser extracts function units from Python source files. Each Parse call
// creates its own tree-sitter parser internally, so a Parser is safe for
// concurrent use.
type Parser struct{}

// New creates a new Parser
func New() *Parser {
	return &Parser{}
}

// ParseFile reads and parses a Python source file
func (p *Parser) ParseFile(ctx context.Context, filePath string) ([]types.FunctionUnit, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return p.ParseSource(ctx, content, filePath)
}

// ParseSource parses Python source content and returns every function and
// method definition it contains, in source order. Functions whose definitions
// contain syntax errors are still returned, carrying a ParseErr so the caller
// can report them without aborting the rest of the file.
func (p *Parser) ParseSource(ctx context.Context, content []byte, filePath string) ([]types.FunctionUnit, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("parser returned no syntax tree for %s", filePath)
	}

	var units []types.FunctionUnit
	p.collectFunctions(root, content, filePath, false, &units)
	return units, nil
}

// collectFunctions walks the tree gathering function_definition nodes.
// inClass is true while descending through a class body, marking methods.
func (p *Parser) collectFunctions(node *sitter.Node, content []byte, filePath string, inClass bool, units *[]types.FunctionUnit) {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "function_definition":
			*units = append(*units, p.extractFunction(child, content, filePath, inClass))
			// Nested defs inside the body are plain functions
			if body := child.ChildByFieldName("body"); body != nil {
				p.collectFunctions(body, content, filePath, false, units)
			}
		case "class_definition":
			if body := child.ChildByFieldName("body"); body != nil {
				p.collectFunctions(body, content, filePath, true, units)
			}
		case "decorated_definition":
			p.collectFunctions(child, content, filePath, inClass, units)
		default:
			p.collectFunctions(child, content, filePath, inClass, units)
		}
	}
}

func (p *Parser) extractFunction(node *sitter.Node, content []byte, filePath string, inClass bool) types.FunctionUnit {
	unit := types.FunctionUnit{
		File:     filePath,
		IsMethod: inClass,
		Start: types.Position{
			Line:   int(node.StartPoint().Row) + 1,
			Column: int(node.StartPoint().Column) + 1,
		},
	}

	if nameNode := node.ChildByFieldName("name"); nameNode != nil {
		unit.Name = nodeText(nameNode, content)
	}

	if node.HasError() {
		unit.ParseErr = types.NewParseError(filePath, unit.Start.Line, unit.Start.Column,
			"syntax error in definition of %s", unit.Name)
		return unit
	}

	if paramsNode := node.ChildByFieldName("parameters"); paramsNode != nil {
		params, err := p.extractParameters(paramsNode, content, inClass)
		if err != nil {
			perr := asParseError(err, filePath, unit.Start)
			unit.ParseErr = perr
			return unit
		}
		unit.Parameters = params
	}

	if body := node.ChildByFieldName("body"); body != nil {
		unit.Docstring = extractDocstring(body, content)
	}

	return unit
}

// extractParameters converts a parameters node into parameter signatures,
// skipping the receiver and the positional/keyword-only markers.
func (p *Parser) extractParameters(node *sitter.Node, content []byte, inClass bool) ([]types.ParameterSignature, error) {
	params := make([]types.ParameterSignature, 0, int(node.NamedChildCount()))
	seen := make(map[string]bool)

	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)

		var sig types.ParameterSignature
		starred := false

		switch child.Type() {
		case "identifier":
			sig.Name = nodeText(child, content)

		case "typed_parameter":
			sig.Name = parameterName(child, content)
			if typeNode := child.ChildByFieldName("type"); typeNode != nil {
				sig.DeclaredType = nodeText(typeNode, content)
			}
			starred = hasSplatChild(child)

		case "default_parameter":
			sig.HasDefault = true
			if nameNode := child.ChildByFieldName("name"); nameNode != nil {
				sig.Name = nodeText(nameNode, content)
			}

		case "typed_default_parameter":
			sig.HasDefault = true
			if nameNode := child.ChildByFieldName("name"); nameNode != nil {
				sig.Name = nodeText(nameNode, content)
			}
			if typeNode := child.ChildByFieldName("type"); typeNode != nil {
				sig.DeclaredType = nodeText(typeNode, content)
			}

		case "list_splat_pattern", "dictionary_splat_pattern":
			sig.Name = parameterName(child, content)
			starred = true

		case "positional_separator", "keyword_separator":
			continue

		default:
			continue
		}

		sig.Name = strings.TrimLeft(sig.Name, "*")
		if sig.Name == "" {
			continue
		}

		if len(params) == 0 && !starred && sig.DeclaredType == "" && inClass &&
			(sig.Name == "self" || sig.Name == "cls") {
			continue
		}

		if seen[sig.Name] {
			return nil, fmt.Errorf("%w: %s", types.ErrDuplicateParameter, sig.Name)
		}
		seen[sig.Name] = true
		params = append(params, sig)
	}

	return params, nil
}

// parameterName finds the identifier naming a parameter, descending through
// splat patterns when present
func parameterName(node *sitter.Node, content []byte) string {
	if nameNode := node.ChildByFieldName("name"); nameNode != nil {
		return nodeText(nameNode, content)
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "identifier":
			return nodeText(child, content)
		case "list_splat_pattern", "dictionary_splat_pattern":
			return parameterName(child, content)
		}
	}
	return ""
}

func hasSplatChild(node *sitter.Node) bool {
	for i := 0; i < int(node.ChildCount()); i++ {
		t := node.Child(i).Type()
		if t == "list_splat_pattern" || t == "dictionary_splat_pattern" {
			return true
		}
	}
	return false
}

// extractDocstring returns the docstring body when the first statement of a
// block is a bare string literal
func extractDocstring(block *sitter.Node, content []byte) string {
	if block.NamedChildCount() == 0 {
		return ""
	}
	first := block.NamedChild(0)
	if first.Type() != "expression_statement" || first.ChildCount() == 0 {
		return ""
	}
	strNode := first.Child(0)
	if strNode.Type() != "string" {
		return ""
	}
	return stripQuotes(nodeText(strNode, content))
}

// stripQuotes removes the string prefix and quote delimiters from a Python
// string literal
func stripQuotes(raw string) string {
	// Drop prefixes like r, b, f, u in either case
	for len(raw) > 0 && raw[0] != '"' && raw[0] != '\'' {
		raw = raw[1:]
	}
	for _, delim := range []string{`"""`, `'''`, `"`, `'`} {
		if strings.HasPrefix(raw, delim) {
			raw = strings.TrimPrefix(raw, delim)
			raw = strings.TrimSuffix(raw, delim)
			return raw
		}
	}
	return raw
}

func nodeText(node *sitter.Node, content []byte) string {
	return string(content[node.StartByte():node.EndByte()])
}

func asParseError(err error, file string, pos types.Position) *types.ParseError {
	if perr, ok := err.(*types.ParseError); ok {
		if perr.File == "" {
			perr.File = file
		}
		if perr.Line == 0 {
			perr.Line = pos.Line
			perr.Column = pos.Column
		}
		return perr
	}
	return types.NewParseError(file, pos.Line, pos.Column, "%v", err)
}
