package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ShivMunagala/pydoccheck/pkg/types"
)

var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = errors.New("not found")
)

// SQLiteStorage implements the Storage interface using SQLite
type SQLiteStorage struct {
	db *sql.DB
}

// openDatabase opens a SQLite database with appropriate settings
func openDatabase(dbPath string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dbPath)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(1) // SQLite benefits from single writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// NewSQLiteStorage creates a new SQLite storage instance
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	db, err := openDatabase(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Apply migrations
	if err := ApplyMigrations(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// BeginTx starts a new transaction
func (s *SQLiteStorage) BeginTx(ctx context.Context) (Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &sqliteTx{tx: tx, storage: s}, nil
}

// querier is an interface that both *sql.DB and *sql.Tx implement
type querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// sqliteTx wraps a SQL transaction
type sqliteTx struct {
	tx      *sql.Tx
	storage *SQLiteStorage
}

func (t *sqliteTx) Commit() error {
	return t.tx.Commit()
}

func (t *sqliteTx) Rollback() error {
	return t.tx.Rollback()
}

// querier returns the transaction querier
func (t *sqliteTx) querier() querier {
	return t.tx
}

// querier returns the DB querier
func (s *SQLiteStorage) querier() querier {
	return s.db
}

// File operations

// upsertFileWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) upsertFileWithQuerier(ctx context.Context, q querier, file *File) error {
	query := `
		INSERT INTO files (file_path, content_hash, functions_checked, functions_skipped, checked_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(file_path) DO UPDATE SET
			content_hash = excluded.content_hash,
			functions_checked = excluded.functions_checked,
			functions_skipped = excluded.functions_skipped,
			checked_at = excluded.checked_at,
			updated_at = excluded.updated_at
		RETURNING id
	`
	now := time.Now()
	err := q.QueryRowContext(ctx, query,
		file.FilePath, file.ContentHash[:], file.FunctionsChecked,
		file.FunctionsSkipped, now, now, now).Scan(&file.ID)
	if err != nil {
		return fmt.Errorf("failed to upsert file: %w", err)
	}

	file.CheckedAt = now
	file.UpdatedAt = now
	return nil
}

func (s *SQLiteStorage) UpsertFile(ctx context.Context, file *File) error {
	return s.upsertFileWithQuerier(ctx, s.querier(), file)
}

// getFileByPathWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) getFileByPathWithQuerier(ctx context.Context, q querier, filePath string) (*File, error) {
	query := `
		SELECT id, file_path, content_hash, functions_checked, functions_skipped,
		       checked_at, created_at, updated_at
		FROM files
		WHERE file_path = ?
	`
	var file File
	var hash []byte
	err := q.QueryRowContext(ctx, query, filePath).Scan(
		&file.ID, &file.FilePath, &hash, &file.FunctionsChecked,
		&file.FunctionsSkipped, &file.CheckedAt, &file.CreatedAt, &file.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	copy(file.ContentHash[:], hash)
	return &file, nil
}

func (s *SQLiteStorage) GetFileByPath(ctx context.Context, filePath string) (*File, error) {
	return s.getFileByPathWithQuerier(ctx, s.querier(), filePath)
}

// listFilesWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) listFilesWithQuerier(ctx context.Context, q querier) ([]*File, error) {
	query := `
		SELECT id, file_path, content_hash, functions_checked, functions_skipped,
		       checked_at, created_at, updated_at
		FROM files
		ORDER BY file_path
	`
	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	files := make([]*File, 0)
	for rows.Next() {
		var file File
		var hash []byte
		if err := rows.Scan(
			&file.ID, &file.FilePath, &hash, &file.FunctionsChecked,
			&file.FunctionsSkipped, &file.CheckedAt, &file.CreatedAt, &file.UpdatedAt,
		); err != nil {
			return nil, err
		}
		copy(file.ContentHash[:], hash)
		files = append(files, &file)
	}
	return files, rows.Err()
}

func (s *SQLiteStorage) ListFiles(ctx context.Context) ([]*File, error) {
	return s.listFilesWithQuerier(ctx, s.querier())
}

// deleteFileWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) deleteFileWithQuerier(ctx context.Context, q querier, fileID int64) error {
	query := `DELETE FROM files WHERE id = ?`
	_, err := q.ExecContext(ctx, query, fileID)
	return err
}

func (s *SQLiteStorage) DeleteFile(ctx context.Context, fileID int64) error {
	return s.deleteFileWithQuerier(ctx, s.querier(), fileID)
}

// Finding operations

// replaceFindingsWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) replaceFindingsWithQuerier(ctx context.Context, q querier, fileID int64, findings []types.Finding) error {
	if _, err := q.ExecContext(ctx, `DELETE FROM findings WHERE file_id = ?`, fileID); err != nil {
		return fmt.Errorf("failed to clear findings: %w", err)
	}

	query := `
		INSERT INTO findings (file_id, function_name, parameter_name, kind,
		                      declared_type, documented_type, line, col, detail, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	now := time.Now()
	for _, f := range findings {
		rec := FromFinding(f, fileID)
		if _, err := q.ExecContext(ctx, query,
			rec.FileID, rec.FunctionName, rec.ParameterName, rec.Kind,
			rec.DeclaredType, rec.DocumentedType, rec.Line, rec.Col, rec.Detail, now,
		); err != nil {
			return fmt.Errorf("failed to insert finding: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStorage) ReplaceFindings(ctx context.Context, fileID int64, findings []types.Finding) error {
	return s.replaceFindingsWithQuerier(ctx, s.querier(), fileID, findings)
}

// listFindingsByFileWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) listFindingsByFileWithQuerier(ctx context.Context, q querier, fileID int64) ([]types.Finding, error) {
	var filePath string
	err := q.QueryRowContext(ctx, `SELECT file_path FROM files WHERE id = ?`, fileID).Scan(&filePath)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, file_id, function_name, parameter_name, kind,
		       declared_type, documented_type, line, col, detail, created_at
		FROM findings
		WHERE file_id = ?
		ORDER BY line, id
	`
	rows, err := q.QueryContext(ctx, query, fileID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	findings := make([]types.Finding, 0)
	for rows.Next() {
		var rec FindingRecord
		if err := rows.Scan(
			&rec.ID, &rec.FileID, &rec.FunctionName, &rec.ParameterName, &rec.Kind,
			&rec.DeclaredType, &rec.DocumentedType, &rec.Line, &rec.Col, &rec.Detail,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		findings = append(findings, rec.ToFinding(filePath))
	}
	return findings, rows.Err()
}

func (s *SQLiteStorage) ListFindingsByFile(ctx context.Context, fileID int64) ([]types.Finding, error) {
	return s.listFindingsByFileWithQuerier(ctx, s.querier(), fileID)
}

// Status operations

// getStatusWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) getStatusWithQuerier(ctx context.Context, q querier) (*CacheStatus, error) {
	status := &CacheStatus{SchemaVersion: CurrentSchemaVersion}

	if err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM files`).Scan(&status.FilesCount); err != nil {
		return nil, fmt.Errorf("failed to count files: %w", err)
	}
	if err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM findings`).Scan(&status.FindingsCount); err != nil {
		return nil, fmt.Errorf("failed to count findings: %w", err)
	}

	var lastChecked sql.NullTime
	if err := q.QueryRowContext(ctx, `SELECT MAX(checked_at) FROM files`).Scan(&lastChecked); err != nil {
		return nil, fmt.Errorf("failed to read last checked time: %w", err)
	}
	if lastChecked.Valid {
		status.LastCheckedAt = lastChecked.Time
	}

	var pageCount, pageSize int64
	if err := q.QueryRowContext(ctx, `PRAGMA page_count`).Scan(&pageCount); err == nil {
		if err := q.QueryRowContext(ctx, `PRAGMA page_size`).Scan(&pageSize); err == nil {
			status.CacheSizeMB = float64(pageCount*pageSize) / (1024 * 1024)
		}
	}

	return status, nil
}

func (s *SQLiteStorage) GetStatus(ctx context.Context) (*CacheStatus, error) {
	return s.getStatusWithQuerier(ctx, s.querier())
}

// Transaction delegation

func (t *sqliteTx) UpsertFile(ctx context.Context, file *File) error {
	return t.storage.upsertFileWithQuerier(ctx, t.querier(), file)
}

func (t *sqliteTx) GetFileByPath(ctx context.Context, filePath string) (*File, error) {
	return t.storage.getFileByPathWithQuerier(ctx, t.querier(), filePath)
}

func (t *sqliteTx) ListFiles(ctx context.Context) ([]*File, error) {
	return t.storage.listFilesWithQuerier(ctx, t.querier())
}

func (t *sqliteTx) DeleteFile(ctx context.Context, fileID int64) error {
	return t.storage.deleteFileWithQuerier(ctx, t.querier(), fileID)
}

func (t *sqliteTx) ReplaceFindings(ctx context.Context, fileID int64, findings []types.Finding) error {
	return t.storage.replaceFindingsWithQuerier(ctx, t.querier(), fileID, findings)
}

func (t *sqliteTx) ListFindingsByFile(ctx context.Context, fileID int64) ([]types.Finding, error) {
	return t.storage.listFindingsByFileWithQuerier(ctx, t.querier(), fileID)
}

func (t *sqliteTx) GetStatus(ctx context.Context) (*CacheStatus, error) {
	return t.storage.getStatusWithQuerier(ctx, t.querier())
}

func (t *sqliteTx) Close() error {
	return errors.New("cannot close storage from within a transaction")
}

func (t *sqliteTx) BeginTx(ctx context.Context) (Tx, error) {
	return nil, errors.New("nested transactions are not supported")
}
