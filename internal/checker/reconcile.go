package checker

import (
	"fmt"

	"github.com/ShivMunagala/pydoccheck/internal/typeexpr"
	"github.com/ShivMunagala/pydoccheck/pkg/types"
)

// reconcile compares a function's signature parameters against its documented
// parameters and emits one finding per discrepancy, in signature order first,
// then docstring order for documented names the signature lacks.
func (c *Checker) reconcile(fn *types.FunctionUnit, documented []types.DocumentedParameter) ([]types.Finding, error) {
	docByName := make(map[string]types.DocumentedParameter, len(documented))
	docIndex := make(map[string]int, len(documented))
	for i, d := range documented {
		docByName[d.Name] = d
		docIndex[d.Name] = i
	}

	var findings []types.Finding
	emit := func(param string, kind types.FindingKind, declared, documented string) {
		findings = append(findings, types.Finding{
			FunctionName:   fn.Name,
			ParameterName:  param,
			Kind:           kind,
			DeclaredType:   declared,
			DocumentedType: documented,
			File:           fn.File,
			Location:       fn.Start,
		})
	}

	for _, sig := range fn.Parameters {
		doc, ok := docByName[sig.Name]
		if !ok {
			emit(sig.Name, types.KindMissingInDoc, sig.DeclaredType, "")
			continue
		}

		declared, err := normalizeType(sig.DeclaredType)
		if err != nil {
			return nil, fmt.Errorf("declared type of %s: %w", sig.Name, err)
		}
		docType, err := normalizeType(doc.DocumentedType)
		if err != nil {
			return nil, fmt.Errorf("documented type of %s: %w", sig.Name, err)
		}

		// Both untyped is consistent; a type on exactly one side, or two
		// differing types, is a mismatch. The optional flag is informational
		// and never compared.
		if declared.Text != docType.Text {
			emit(sig.Name, types.KindTypeMismatch, declared.Text, docType.Text)
		}
	}

	for _, doc := range documented {
		if !inSignature(fn.Parameters, doc.Name) {
			docType, err := normalizeType(doc.DocumentedType)
			if err != nil {
				return nil, fmt.Errorf("documented type of %s: %w", doc.Name, err)
			}
			emit(doc.Name, types.KindMissingInSignature, "", docType.Text)
		}
	}

	if c.cfg.CheckOrder {
		if name := firstOrderDeviation(fn.Parameters, docIndex); name != "" {
			doc := docByName[name]
			emit(name, types.KindNameOrderMismatch, "", doc.DocumentedType)
		}
	}

	return findings, nil
}

// firstOrderDeviation returns the first documented parameter whose position
// among the documented names differs from the signature's ordering. Only
// names present on both sides participate.
func firstOrderDeviation(sig []types.ParameterSignature, docIndex map[string]int) string {
	prev := -1
	for _, p := range sig {
		idx, ok := docIndex[p.Name]
		if !ok {
			continue
		}
		if idx < prev {
			return p.Name
		}
		prev = idx
	}
	return ""
}

func inSignature(params []types.ParameterSignature, name string) bool {
	for _, p := range params {
		if p.Name == name {
			return true
		}
	}
	return false
}

// normalizeType canonicalizes a type expression, passing absence through
func normalizeType(expr string) (typeexpr.Normalized, error) {
	if expr == "" {
		return typeexpr.Normalized{}, nil
	}
	return typeexpr.Normalize(expr)
}
