// Package cli wires the command-line interface: the check command for batch
// runs and pre-commit use, and the serve command for the MCP server.
package cli
