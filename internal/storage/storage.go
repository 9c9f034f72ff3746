package storage

import (
	"context"
	"time"

	"github.com/ShivMunagala/pydoccheck/pkg/types"
)

// Storage defines the interface for persisting check results between runs
type Storage interface {
	// File operations
	UpsertFile(ctx context.Context, file *File) error
	GetFileByPath(ctx context.Context, filePath string) (*File, error)
	ListFiles(ctx context.Context) ([]*File, error)
	DeleteFile(ctx context.Context, fileID int64) error

	// Finding operations
	ReplaceFindings(ctx context.Context, fileID int64, findings []types.Finding) error
	ListFindingsByFile(ctx context.Context, fileID int64) ([]types.Finding, error)

	// Status operations
	GetStatus(ctx context.Context) (*CacheStatus, error)

	// Database operations
	Close() error
	BeginTx(ctx context.Context) (Tx, error)
}

// Tx represents a database transaction
type Tx interface {
	Commit() error
	Rollback() error
	Storage // Embed Storage interface for transaction operations
}

// File represents one checked Python source file
type File struct {
	ID               int64
	FilePath         string
	ContentHash      [32]byte
	FunctionsChecked int
	FunctionsSkipped int
	CheckedAt        time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// FindingRecord is the persisted form of a finding
type FindingRecord struct {
	ID             int64
	FileID         int64
	FunctionName   string
	ParameterName  string
	Kind           string
	DeclaredType   string
	DocumentedType string
	Line           int
	Col            int
	Detail         string
	CreatedAt      time.Time
}

// CacheStatus contains statistics about the result cache
type CacheStatus struct {
	FilesCount    int
	FindingsCount int
	CacheSizeMB   float64
	LastCheckedAt time.Time
	SchemaVersion string
}

// ToFinding converts a persisted record back to a finding
func (r *FindingRecord) ToFinding(filePath string) types.Finding {
	return types.Finding{
		FunctionName:   r.FunctionName,
		ParameterName:  r.ParameterName,
		Kind:           types.FindingKind(r.Kind),
		DeclaredType:   r.DeclaredType,
		DocumentedType: r.DocumentedType,
		File:           filePath,
		Location: types.Position{
			Line:   r.Line,
			Column: r.Col,
		},
		Detail: r.Detail,
	}
}

// FromFinding converts a finding to its persisted form
func FromFinding(f types.Finding, fileID int64) *FindingRecord {
	return &FindingRecord{
		FileID:         fileID,
		FunctionName:   f.FunctionName,
		ParameterName:  f.ParameterName,
		Kind:           string(f.Kind),
		DeclaredType:   f.DeclaredType,
		DocumentedType: f.DocumentedType,
		Line:           f.Location.Line,
		Col:            f.Location.Column,
		Detail:         f.Detail,
	}
}
