package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ShivMunagala/pydoccheck/internal/runner"
	"github.com/ShivMunagala/pydoccheck/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams = -32602 // Invalid method parameters
	ErrorCodeInternalError = -32603 // Internal JSON-RPC error
	ErrorCodeEmptySource   = -32001 // Source parameter is empty
	ErrorCodeNoCache       = -32002 // Result cache is disabled
)

// handleCheckPath handles the check_path tool invocation
func (s *Server) handleCheckPath(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	path, ok := args["path"].(string)
	if !ok || path == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "path parameter is required", map[string]interface{}{
			"param":  "path",
			"reason": "missing or empty",
		})
	}

	if err := validatePath(path); err != nil {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid path", map[string]interface{}{
			"param":  "path",
			"reason": err.Error(),
		})
	}

	noCache := getBoolDefault(args, "no_cache", false)
	workers := getIntDefault(args, "workers", 0)

	cfg := &runner.Config{
		Workers: workers,
		NoCache: noCache,
		Exclude: s.cfg.Exclude,
	}

	results, stats, err := s.runner.Run(ctx, []string{path}, cfg)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "check failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"files_checked":     stats.FilesChecked,
		"files_cached":      stats.FilesCached,
		"files_failed":      stats.FilesFailed,
		"functions_checked": stats.FunctionsChecked,
		"findings_total":    stats.FindingsTotal,
		"duration_ms":       stats.Duration.Milliseconds(),
		"findings":          findingsPayload(results),
	}

	if len(stats.ErrorMessages) > 0 {
		// Include first few errors
		errorCount := len(stats.ErrorMessages)
		if errorCount > 5 {
			response["errors"] = stats.ErrorMessages[:5]
			response["error_count"] = errorCount
		} else {
			response["errors"] = stats.ErrorMessages
		}
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleCheckSource handles the check_source tool invocation
func (s *Server) handleCheckSource(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	source, ok := args["source"].(string)
	if !ok || source == "" {
		return nil, newMCPError(ErrorCodeEmptySource, "source parameter is required and cannot be empty", map[string]interface{}{
			"param":  "source",
			"reason": "missing or empty",
		})
	}

	fileName := getStringDefault(args, "file_name", "<source>")

	result, err := s.checker.CheckSource(ctx, []byte(source), fileName)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "check failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"functions_checked": result.FunctionsChecked,
		"functions_skipped": result.FunctionsSkipped,
		"findings_total":    len(result.Findings),
		"findings":          findingsPayload([]*types.CheckResult{result}),
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleCacheStatus handles the cache_status tool invocation
func (s *Server) handleCacheStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.storage == nil {
		return nil, newMCPError(ErrorCodeNoCache, "result cache is disabled", nil)
	}

	status, err := s.storage.GetStatus(ctx)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to get cache status", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"cache_path":     s.cfg.Cache.Path,
		"files_count":    status.FilesCount,
		"findings_count": status.FindingsCount,
		"cache_size_mb":  fmt.Sprintf("%.2f", status.CacheSizeMB),
		"schema_version": status.SchemaVersion,
	}
	if !status.LastCheckedAt.IsZero() {
		response["last_checked_at"] = status.LastCheckedAt.Format("2006-01-02T15:04:05Z07:00")
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// findingsPayload flattens results into the wire representation
func findingsPayload(results []*types.CheckResult) []map[string]interface{} {
	findings := make([]map[string]interface{}, 0)
	for _, res := range results {
		for _, f := range res.Findings {
			entry := map[string]interface{}{
				"file":     res.FilePath,
				"function": f.FunctionName,
				"kind":     string(f.Kind),
				"line":     f.Location.Line,
				"message":  f.Message(),
			}
			if f.ParameterName != "" {
				entry["parameter"] = f.ParameterName
			}
			if f.DeclaredType != "" {
				entry["declared_type"] = f.DeclaredType
			}
			if f.DocumentedType != "" {
				entry["documented_type"] = f.DocumentedType
			}
			findings = append(findings, entry)
		}
	}
	return findings
}

// Helper functions

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// validatePath checks if a path exists and contains Python source
func validatePath(path string) error {
	if path == "" {
		return ErrPathRequired
	}

	// Check if path is absolute
	if !filepath.IsAbs(path) {
		return ErrPathNotAbsolute
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return ErrPathNotFound
	}
	if err != nil {
		return ErrPathNotReadable
	}

	// A single Python file is a valid target
	if !info.IsDir() {
		if strings.HasSuffix(path, ".py") {
			return nil
		}
		return ErrNotPythonFile
	}

	// Check for Python files
	hasPyFiles := false
	_ = filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() && strings.HasSuffix(p, ".py") {
			hasPyFiles = true
		}
		return nil
	})

	if !hasPyFiles {
		return ErrNoPythonFiles
	}

	return nil
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getBoolDefault extracts a boolean parameter with a default value
func getBoolDefault(args map[string]interface{}, key string, defaultValue bool) bool {
	if val, ok := args[key].(bool); ok {
		return val
	}
	return defaultValue
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}

// Validation helpers

var (
	ErrPathRequired    = errors.New("path is required")
	ErrPathNotAbsolute = errors.New("path must be absolute")
	ErrPathNotFound    = errors.New("path does not exist")
	ErrPathNotReadable = errors.New("path is not readable")
	ErrNotPythonFile   = errors.New("file is not a Python source file")
	ErrNoPythonFiles   = errors.New("directory does not contain Python files")
)
