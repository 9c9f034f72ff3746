package types

// CheckResult represents the outcome of checking one Python source file
type CheckResult struct {
	// FilePath is the path the source was read from, as given by the caller
	FilePath string

	// Findings across all functions in the file, in source order
	Findings []Finding

	// FunctionsChecked counts function units that were reconciled
	FunctionsChecked int

	// FunctionsSkipped counts functions that were not reconciled: exempt from
	// checking (no docstring in lenient mode, a single-line docstring) or
	// unparseable
	FunctionsSkipped int

	// Errors encountered while enumerating functions. These are file-level
	// problems; per-function parse failures become unparseable findings.
	Errors []ParseError
}

// HasFindings returns true if any discrepancy was found
func (cr *CheckResult) HasFindings() bool {
	return len(cr.Findings) > 0
}

// HasErrors returns true if any file-level parsing errors occurred
func (cr *CheckResult) HasErrors() bool {
	return len(cr.Errors) > 0
}

// AddError adds a file-level parsing error to the result
func (cr *CheckResult) AddError(file string, line, col int, msg string) {
	cr.Errors = append(cr.Errors, ParseError{
		File:    file,
		Line:    line,
		Column:  col,
		Message: msg,
	})
}
