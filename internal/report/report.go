package report

import (
	"fmt"
	"io"

	"github.com/ShivMunagala/pydoccheck/pkg/types"
)

// Format selects the output rendering of check results
type Format string

const (
	// FormatText renders one line per finding for terminals
	FormatText Format = "text"
	// FormatJSON renders the full results as a JSON document
	FormatJSON Format = "json"
	// FormatSARIF renders SARIF 2.1.0 for code-scanning integrations
	FormatSARIF Format = "sarif"
)

// Reporter renders check results to a writer
type Reporter interface {
	Write(w io.Writer, results []*types.CheckResult) error
}

// NewReporter returns the reporter for a format
func NewReporter(format Format) (Reporter, error) {
	switch format {
	case FormatText, "":
		return &textReporter{}, nil
	case FormatJSON:
		return &jsonReporter{}, nil
	case FormatSARIF:
		return &sarifReporter{}, nil
	default:
		return nil, fmt.Errorf("unknown report format: %s", format)
	}
}

// ExitCode returns the process exit status for a set of results: non-zero
// if any finding exists
func ExitCode(results []*types.CheckResult) int {
	for _, res := range results {
		if res.HasFindings() {
			return 1
		}
	}
	return 0
}
