package report

import (
	"encoding/json"
	"io"

	"github.com/ShivMunagala/pydoccheck/pkg/types"
)

// jsonReporter renders the full result set as a JSON document
type jsonReporter struct{}

type jsonDocument struct {
	Files         []jsonFile `json:"files"`
	TotalFindings int        `json:"total_findings"`
}

type jsonFile struct {
	Path             string        `json:"path"`
	FunctionsChecked int           `json:"functions_checked"`
	FunctionsSkipped int           `json:"functions_skipped,omitempty"`
	Findings         []jsonFinding `json:"findings"`
}

type jsonFinding struct {
	Function       string `json:"function"`
	Parameter      string `json:"parameter,omitempty"`
	Kind           string `json:"kind"`
	DeclaredType   string `json:"declared_type,omitempty"`
	DocumentedType string `json:"documented_type,omitempty"`
	Line           int    `json:"line"`
	Column         int    `json:"column,omitempty"`
	Message        string `json:"message"`
}

func (r *jsonReporter) Write(w io.Writer, results []*types.CheckResult) error {
	doc := jsonDocument{Files: make([]jsonFile, 0, len(results))}

	for _, res := range results {
		file := jsonFile{
			Path:             res.FilePath,
			FunctionsChecked: res.FunctionsChecked,
			FunctionsSkipped: res.FunctionsSkipped,
			Findings:         make([]jsonFinding, 0, len(res.Findings)),
		}
		for _, f := range res.Findings {
			file.Findings = append(file.Findings, jsonFinding{
				Function:       f.FunctionName,
				Parameter:      f.ParameterName,
				Kind:           string(f.Kind),
				DeclaredType:   f.DeclaredType,
				DocumentedType: f.DocumentedType,
				Line:           f.Location.Line,
				Column:         f.Location.Column,
				Message:        f.Message(),
			})
			doc.TotalFindings++
		}
		doc.Files = append(doc.Files, file)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
