// Package mcp implements the Model Context Protocol (MCP) server for pydoccheck.
//
// The MCP server exposes three tools to AI coding assistants:
//   - check_path: Check Python files under a path for docstring drift
//   - check_source: Check an inline Python source snippet
//   - cache_status: Query result cache statistics
//
// # Protocol Overview
//
// MCP is a JSON-RPC 2.0 protocol over stdio transport:
//
//	Client → Server: {"method": "tools/call", "params": {...}}
//	Server → Client: {"result": {...}}
//
// The server communicates with MCP clients via standard input/output,
// making it simple to integrate with any MCP-compatible client.
//
// # Basic Usage
//
// The MCP server is typically started via the serve command:
//
//	pydoccheck serve
//
// It then listens on stdin for MCP protocol messages and writes responses to stdout.
//
// # Tool: check_path
//
// Check every Python file under a path:
//
//	Request:
//	{
//	  "name": "check_path",
//	  "arguments": {
//	    "path": "/path/to/project",
//	    "no_cache": false,
//	    "workers": 0
//	  }
//	}
//
//	Response:
//	{
//	  "files_checked": 42,
//	  "files_cached": 190,
//	  "functions_checked": 812,
//	  "findings_total": 3,
//	  "findings": [
//	    {
//	      "file": "pkg/api.py",
//	      "function": "write",
//	      "parameter": "path",
//	      "kind": "type_mismatch",
//	      "declared_type": "str",
//	      "documented_type": "int",
//	      "line": 12,
//	      "message": "..."
//	    }
//	  ]
//	}
//
// # Tool: check_source
//
// Check source text without touching the filesystem:
//
//	Request:
//	{
//	  "name": "check_source",
//	  "arguments": {
//	    "source": "def f(x: int):\n    ...",
//	    "file_name": "snippet.py"
//	  }
//	}
//
// # Tool: cache_status
//
// Report the cache location, file and finding counts, size, and schema
// version. Fails with a dedicated error code when the cache is disabled.
//
// # Error Handling
//
// Tool failures are returned as MCPError values carrying a JSON-RPC error
// code: -32602 for invalid parameters, -32603 for internal failures, and
// server-specific codes for an empty source parameter (-32001) and a
// disabled cache (-32002).
package mcp
