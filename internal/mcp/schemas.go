package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// checkPathTool returns the tool definition for check_path
func checkPathTool() mcp.Tool {
	return mcp.Tool{
		Name:        "check_path",
		Description: "Check Python files under a path for docstring type-hint drift",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Absolute path to a Python file or a directory containing Python files",
				},
				"no_cache": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, re-check all files ignoring cached results",
					"default":     false,
				},
				"workers": map[string]interface{}{
					"type":        "integer",
					"description": "Number of concurrent workers (0 uses the CPU count)",
					"default":     0,
				},
			},
			Required: []string{"path"},
		},
	}
}

// checkSourceTool returns the tool definition for check_source
func checkSourceTool() mcp.Tool {
	return mcp.Tool{
		Name:        "check_source",
		Description: "Check an inline Python source snippet for docstring type-hint drift",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"source": map[string]interface{}{
					"type":        "string",
					"description": "Python source text to check",
				},
				"file_name": map[string]interface{}{
					"type":        "string",
					"description": "File name to attribute findings to",
					"default":     "<source>",
				},
			},
			Required: []string{"source"},
		},
	}
}

// cacheStatusTool returns the tool definition for cache_status
func cacheStatusTool() mcp.Tool {
	return mcp.Tool{
		Name:        "cache_status",
		Description: "Query result cache statistics",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}
