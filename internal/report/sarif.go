package report

import (
	"fmt"
	"io"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/ShivMunagala/pydoccheck/pkg/types"
)

// sarifReporter renders findings as SARIF 2.1.0, one rule per finding kind
type sarifReporter struct{}

// ruleDescriptions maps finding kinds to their SARIF rule metadata
var ruleDescriptions = map[types.FindingKind]string{
	types.KindMissingInDoc:        "Signature parameter is not documented in the Args section",
	types.KindMissingInSignature:  "Docstring documents a parameter that does not exist in the signature",
	types.KindTypeMismatch:        "Declared type hint and documented type disagree",
	types.KindNameOrderMismatch:   "Docstring documents parameters out of signature order",
	types.KindUnparseableFunction: "Function signature or docstring could not be parsed",
	types.KindMissingDocstring:    "Function with parameters has no docstring",
}

func (r *sarifReporter) Write(w io.Writer, results []*types.CheckResult) error {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return fmt.Errorf("failed to create SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI("pydoccheck", "https://github.com/ShivMunagala/pydoccheck")

	for _, res := range results {
		for _, f := range res.Findings {
			rule := run.AddRule(string(f.Kind)).
				WithDescription(ruleDescriptions[f.Kind]).
				WithDefaultConfiguration(&sarif.ReportingConfiguration{
					Level: toSarifLevel(f.Kind),
				})

			location := sarif.NewLocation().WithPhysicalLocation(
				sarif.NewPhysicalLocation().
					WithArtifactLocation(sarif.NewArtifactLocation().WithUri(res.FilePath)).
					WithRegion(sarif.NewRegion().WithStartLine(f.Location.Line)),
			)

			result := sarif.NewRuleResult(rule.ID).
				WithMessage(sarif.NewTextMessage(f.Message())).
				WithLevel(toSarifLevel(f.Kind)).
				WithLocations([]*sarif.Location{location})
			run.AddResult(result)
		}
	}
	report.AddRun(run)

	return report.PrettyWrite(w)
}

func toSarifLevel(kind types.FindingKind) string {
	switch kind {
	case types.KindTypeMismatch, types.KindMissingInSignature:
		return "error"
	case types.KindMissingInDoc, types.KindUnparseableFunction, types.KindMissingDocstring:
		return "warning"
	case types.KindNameOrderMismatch:
		return "note"
	default:
		return "none"
	}
}
