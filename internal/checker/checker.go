package checker

import (
	"context"
	"fmt"
	"strings"

	"github.com/ShivMunagala/pydoccheck/internal/docstring"
	"github.com/ShivMunagala/pydoccheck/internal/pyparse"
	"github.com/ShivMunagala/pydoccheck/pkg/types"
)

// Config controls optional checks
type Config struct {
	// CheckOrder reports documented parameters listed out of signature order
	CheckOrder bool
	// RequireDocstring reports functions that have no docstring at all
	RequireDocstring bool
}

// DefaultConfig returns the default checker configuration
func DefaultConfig() Config {
	return Config{}
}

// Checker reconciles function signatures against their docstrings. A Checker
// holds no per-run state and is safe for concurrent use.
type Checker struct {
	cfg    Config
	parser *pyparse.Parser
}

// New creates a new Checker with the given configuration
func New(cfg Config) *Checker {
	return &Checker{
		cfg:    cfg,
		parser: pyparse.New(),
	}
}

// CheckFunction checks a single function given its signature text and
// docstring text. The signature may be a full "def name(...)" header or a
// bare parameter list. Parse failures on either side yield a single
// UnparseableFunction finding rather than an error.
func (c *Checker) CheckFunction(signatureText, docstringText string) []types.Finding {
	name, paramList := splitSignature(signatureText)

	unit := types.FunctionUnit{Name: name}

	params, err := pyparse.ExtractParams(paramList)
	if err != nil {
		return []types.Finding{unparseable(&unit, err)}
	}
	unit.Parameters = params
	unit.Docstring = docstringText

	findings, _ := c.checkUnit(&unit)
	return findings
}

// CheckSource parses Python source content and checks every function in it.
// Per-function failures become unparseable findings; only a whole-file parse
// failure returns an error.
func (c *Checker) CheckSource(ctx context.Context, content []byte, filePath string) (*types.CheckResult, error) {
	units, err := c.parser.ParseSource(ctx, content, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s: %w", filePath, err)
	}
	return c.checkUnits(units, filePath), nil
}

// CheckFile reads and checks one Python source file
func (c *Checker) CheckFile(ctx context.Context, filePath string) (*types.CheckResult, error) {
	units, err := c.parser.ParseFile(ctx, filePath)
	if err != nil {
		return nil, err
	}
	return c.checkUnits(units, filePath), nil
}

func (c *Checker) checkUnits(units []types.FunctionUnit, filePath string) *types.CheckResult {
	result := &types.CheckResult{FilePath: filePath}
	for i := range units {
		unit := &units[i]

		if unit.ParseErr != nil {
			result.Findings = append(result.Findings, unparseable(unit, unit.ParseErr))
			result.FunctionsSkipped++
			continue
		}

		findings, skipped := c.checkUnit(unit)
		result.Findings = append(result.Findings, findings...)
		if skipped {
			result.FunctionsSkipped++
		} else {
			result.FunctionsChecked++
		}
	}
	return result
}

// checkUnit runs the docstring parse and reconciliation for one function.
// skipped is true when the function is exempt from argument checks.
func (c *Checker) checkUnit(unit *types.FunctionUnit) (findings []types.Finding, skipped bool) {
	if strings.TrimSpace(unit.Docstring) == "" {
		if c.cfg.RequireDocstring && len(unit.Parameters) > 0 {
			return []types.Finding{{
				FunctionName: unit.Name,
				Kind:         types.KindMissingDocstring,
				File:         unit.File,
				Location:     unit.Start,
			}}, false
		}
		return nil, true
	}

	// One-line docstrings carry no Args section and are exempt
	if docstring.IsSingleLine(unit.Docstring) {
		return nil, true
	}

	documented, err := docstring.ParseArgs(unit.Docstring)
	if err != nil {
		return []types.Finding{unparseable(unit, err)}, false
	}

	findings, err = c.reconcile(unit, documented)
	if err != nil {
		return []types.Finding{unparseable(unit, err)}, false
	}
	return findings, false
}

// splitSignature separates a function name and parameter list from signature
// text. A bare parameter list is accepted as-is with an empty name.
func splitSignature(text string) (name, paramList string) {
	text = strings.TrimSpace(text)

	open := strings.IndexByte(text, '(')
	if open == -1 {
		return "", text
	}

	head := strings.TrimSpace(text[:open])
	head = strings.TrimSpace(strings.TrimPrefix(head, "async "))
	head = strings.TrimSpace(strings.TrimPrefix(head, "def "))
	name = head

	depth := 0
	for i := open; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return name, text[open+1 : i]
			}
		}
	}
	// No matching close paren; take everything after the open
	return name, text[open+1:]
}

func unparseable(unit *types.FunctionUnit, err error) types.Finding {
	return types.Finding{
		FunctionName: unit.Name,
		Kind:         types.KindUnparseableFunction,
		File:         unit.File,
		Location:     unit.Start,
		Detail:       err.Error(),
	}
}
