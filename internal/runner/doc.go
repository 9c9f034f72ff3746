// Package runner drives batch checks over files and directories.
//
// The runner expands its targets into a list of Python files (hidden
// directories, __pycache__, venv, and node_modules are never descended into),
// checks them concurrently with a bounded worker pool, and aggregates the
// per-file results into run statistics.
//
// When a storage backend is attached, each result is cached keyed by the
// SHA-256 hash of the file content. Unchanged files on later runs are
// answered from the cache without parsing. Cache write failures are logged
// and otherwise ignored; per-file check failures are collected into the run
// statistics and never abort the batch.
package runner
