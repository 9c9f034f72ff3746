// Package report renders check results for consumption by humans and tools.
//
// Three formats are supported: text (one line per finding, for terminals and
// pre-commit output), json (a stable machine-readable document), and sarif
// (SARIF 2.1.0 with one rule per finding kind, for code-scanning uploads).
// ExitCode maps a result set to the process exit status: non-zero whenever
// any finding exists.
package report
