package mcp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ShivMunagala/pydoccheck/internal/checker"
	"github.com/ShivMunagala/pydoccheck/internal/config"
	"github.com/ShivMunagala/pydoccheck/internal/runner"
	"github.com/ShivMunagala/pydoccheck/internal/storage"
)

const (
	// ServerName is the MCP server name
	ServerName = "pydoccheck"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp     *server.MCPServer
	storage storage.Storage
	checker *checker.Checker
	runner  *runner.Runner
	cfg     *config.Config
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, logger hclog.Logger) (*Server, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	var store storage.Storage
	if cfg.Cache.Enabled {
		if err := os.MkdirAll(filepath.Dir(cfg.Cache.Path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
		st, err := storage.NewSQLiteStorage(cfg.Cache.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		store = st
	}

	chk := checker.New(checker.Config{
		CheckOrder:       cfg.Checks.CheckOrder,
		RequireDocstring: cfg.Checks.RequireDocstring,
	})

	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
	)

	s := &Server{
		mcp:     mcpServer,
		storage: store,
		checker: chk,
		runner:  runner.New(chk, store, logger),
		cfg:     cfg,
	}

	if err := s.registerTools(); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	return s, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	defer func() {
		if s.storage != nil {
			_ = s.storage.Close()
		}
	}()
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() error {
	// Register check_path tool
	s.mcp.AddTool(checkPathTool(), s.handleCheckPath)

	// Register check_source tool
	s.mcp.AddTool(checkSourceTool(), s.handleCheckSource)

	// Register cache_status tool
	s.mcp.AddTool(cacheStatusTool(), s.handleCacheStatus)

	return nil
}
