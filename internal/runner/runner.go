package runner

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"github.com/ShivMunagala/pydoccheck/internal/checker"
	"github.com/ShivMunagala/pydoccheck/internal/storage"
	"github.com/ShivMunagala/pydoccheck/pkg/types"
)

// Runner coordinates the checking pipeline: discover -> check -> cache
type Runner struct {
	checker *checker.Checker
	storage storage.Storage // nil disables the result cache
	logger  hclog.Logger

	workers int
}

// Config contains configuration for a check run
type Config struct {
	Workers int      // Number of concurrent workers (default: runtime.NumCPU())
	NoCache bool     // Skip cache lookups even when storage is available
	Exclude []string // Glob patterns matched against relative paths
}

// Statistics contains statistics about one check run
type Statistics struct {
	FilesChecked     int
	FilesCached      int
	FilesFailed      int
	FunctionsChecked int
	FindingsTotal    int
	Duration         time.Duration
	ErrorMessages    []string
}

// New creates a new Runner. Storage may be nil to run without a cache.
func New(chk *checker.Checker, store storage.Storage, logger hclog.Logger) *Runner {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Runner{
		checker: chk,
		storage: store,
		logger:  logger,
		workers: runtime.NumCPU(),
	}
}

// Run checks every Python file under the given targets. A target may be a
// file or a directory. Results are returned per file in discovery order.
func (r *Runner) Run(ctx context.Context, targets []string, config *Config) ([]*types.CheckResult, *Statistics, error) {
	if config == nil {
		config = &Config{}
	}
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	r.workers = config.Workers

	startTime := time.Now()
	stats := &Statistics{
		ErrorMessages: make([]string, 0),
	}

	files, err := r.discoverFiles(targets, config)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to discover files: %w", err)
	}
	r.logger.Debug("discovered files", "count", len(files), "workers", config.Workers)

	results, err := r.checkFiles(ctx, files, config, stats)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check files: %w", err)
	}

	for _, res := range results {
		if res == nil {
			continue
		}
		stats.FunctionsChecked += res.FunctionsChecked
		stats.FindingsTotal += len(res.Findings)
	}

	stats.Duration = time.Since(startTime)
	return compact(results), stats, nil
}

// discoverFiles expands targets into the list of Python files to check
func (r *Runner) discoverFiles(targets []string, config *Config) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, target := range targets {
		info, err := os.Stat(target)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			add(target)
			continue
		}

		err = filepath.Walk(target, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				if skipDir(info.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if !strings.HasSuffix(path, ".py") {
				return nil
			}
			if excluded(path, target, config.Exclude) {
				return nil
			}
			add(path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// skipDir reports whether a directory should not be descended into
func skipDir(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	switch name {
	case "__pycache__", "venv", "node_modules":
		return true
	}
	return false
}

// excluded matches a path against the configured exclude globs
func excluded(path, root string, patterns []string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	for _, pattern := range patterns {
		if ok, _ := filepath.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, filepath.Base(path)); ok {
			return true
		}
	}
	return false
}

// checkFiles checks files concurrently, one goroutine per file gated by a
// semaphore
func (r *Runner) checkFiles(ctx context.Context, files []string, config *Config, stats *Statistics) ([]*types.CheckResult, error) {
	semaphore := make(chan struct{}, r.workers)

	var (
		checked int32
		cached  int32
		failed  int32
	)

	results := make([]*types.CheckResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	var mu sync.Mutex // Protect stats.ErrorMessages

	for i, filePath := range files {
		i, filePath := i, filePath

		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			result, err := r.checkFile(gctx, filePath, config, &checked, &cached)
			if err != nil {
				atomic.AddInt32(&failed, 1)
				mu.Lock()
				stats.ErrorMessages = append(stats.ErrorMessages, fmt.Sprintf("%s: %v", filePath, err))
				mu.Unlock()
				r.logger.Warn("failed to check file", "file", filePath, "error", err)
				// Continue with other files
				return nil
			}

			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats.FilesChecked = int(checked)
	stats.FilesCached = int(cached)
	stats.FilesFailed = int(failed)

	return results, nil
}

// checkFile checks one file, replaying cached findings when the content hash
// is unchanged
func (r *Runner) checkFile(ctx context.Context, filePath string, config *Config, checked, cached *int32) (*types.CheckResult, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	hash := sha256.Sum256(content)

	if r.storage != nil && !config.NoCache {
		if result, ok := r.replayCached(ctx, filePath, hash); ok {
			atomic.AddInt32(cached, 1)
			return result, nil
		}
	}

	result, err := r.checker.CheckSource(ctx, content, filePath)
	if err != nil {
		return nil, err
	}
	atomic.AddInt32(checked, 1)

	if r.storage != nil {
		if err := r.storeResult(ctx, filePath, hash, result); err != nil {
			// Cache failures degrade to a slower run, not a failed one
			r.logger.Warn("failed to cache result", "file", filePath, "error", err)
		}
	}

	return result, nil
}

// replayCached returns the stored result when the file is unchanged
func (r *Runner) replayCached(ctx context.Context, filePath string, hash [32]byte) (*types.CheckResult, bool) {
	file, err := r.storage.GetFileByPath(ctx, filePath)
	if err != nil {
		return nil, false
	}
	if file.ContentHash != hash {
		return nil, false
	}

	findings, err := r.storage.ListFindingsByFile(ctx, file.ID)
	if err != nil {
		return nil, false
	}

	return &types.CheckResult{
		FilePath:         filePath,
		Findings:         findings,
		FunctionsChecked: file.FunctionsChecked,
		FunctionsSkipped: file.FunctionsSkipped,
	}, true
}

// storeResult persists a file record and its findings atomically
func (r *Runner) storeResult(ctx context.Context, filePath string, hash [32]byte, result *types.CheckResult) error {
	tx, err := r.storage.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	file := &storage.File{
		FilePath:         filePath,
		ContentHash:      hash,
		FunctionsChecked: result.FunctionsChecked,
		FunctionsSkipped: result.FunctionsSkipped,
	}
	if err := tx.UpsertFile(ctx, file); err != nil {
		return err
	}
	if err := tx.ReplaceFindings(ctx, file.ID, result.Findings); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func compact(results []*types.CheckResult) []*types.CheckResult {
	out := make([]*types.CheckResult, 0, len(results))
	for _, res := range results {
		if res != nil {
			out = append(out, res)
		}
	}
	return out
}
