// Package storage provides SQLite-based persistence for check results.
//
// The storage layer caches one record per checked file, keyed by path, with
// the SHA-256 hash of the content it was checked against and the findings
// produced. Unchanged files can then be answered from the cache instead of
// being re-parsed.
//
// # Database Schema
//
// Tables:
//   - files: File paths, SHA-256 content hashes, per-file counters
//   - findings: Findings of the last check, cascading on file deletion
//   - schema_version: Applied migration versions
//
// # Basic Usage
//
//	db, err := storage.NewSQLiteStorage("~/.pydoccheck/cache.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Close()
//
//	file := &storage.File{
//	    FilePath:    "pkg/api.py",
//	    ContentHash: sha256.Sum256(content),
//	}
//	if err := db.UpsertFile(ctx, file); err != nil {
//	    return err
//	}
//	if err := db.ReplaceFindings(ctx, file.ID, findings); err != nil {
//	    return err
//	}
//
// # Transactions
//
// Use a transaction to store a file and its findings atomically:
//
//	tx, err := db.BeginTx(ctx)
//	if err != nil {
//	    return err
//	}
//	defer tx.Rollback()
//
//	if err := tx.UpsertFile(ctx, file); err != nil {
//	    return err
//	}
//	if err := tx.ReplaceFindings(ctx, file.ID, findings); err != nil {
//	    return err
//	}
//	return tx.Commit()
//
// # Incremental Checking
//
// Compare stored hashes to skip unchanged files:
//
//	stored, err := db.GetFileByPath(ctx, path)
//	if err == nil && stored.ContentHash == sha256.Sum256(content) {
//	    findings, err := db.ListFindingsByFile(ctx, stored.ID)
//	    // Replay cached findings without re-parsing
//	}
//
// # Drivers
//
// Two SQLite drivers are supported, selected at build time. The default pure
// Go driver (modernc.org/sqlite) needs no C toolchain; the cgo_sqlite build
// tag switches to github.com/mattn/go-sqlite3. DriverName and BuildMode
// report the active configuration.
package storage
