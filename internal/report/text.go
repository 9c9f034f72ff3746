package report

import (
	"fmt"
	"io"

	"github.com/ShivMunagala/pydoccheck/pkg/types"
)

// textReporter renders one line per finding, grouped by file
type textReporter struct{}

func (r *textReporter) Write(w io.Writer, results []*types.CheckResult) error {
	total := 0
	for _, res := range results {
		if !res.HasFindings() {
			continue
		}
		for _, f := range res.Findings {
			if _, err := fmt.Fprintf(w, "%s:%d: %s\n", res.FilePath, f.Location.Line, f.Message()); err != nil {
				return err
			}
			total++
		}
	}

	if total > 0 {
		if _, err := fmt.Fprintf(w, "\n%d finding(s) in %d file(s)\n", total, countFailing(results)); err != nil {
			return err
		}
	}
	return nil
}

func countFailing(results []*types.CheckResult) int {
	n := 0
	for _, res := range results {
		if res.HasFindings() {
			n++
		}
	}
	return n
}
