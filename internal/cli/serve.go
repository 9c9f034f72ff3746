package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ShivMunagala/pydoccheck/internal/mcp"
	"github.com/ShivMunagala/pydoccheck/internal/storage"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdio",
		Long: `Serve starts a Model Context Protocol server exposing the checker to AI
coding assistants. The server reads JSON-RPC messages from stdin and writes
responses to stdout; logs go to stderr.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	// Log startup info to stderr (stdout reserved for MCP protocol)
	logger.Info("starting MCP server",
		"version", version,
		"build_mode", storage.BuildMode,
		"driver", storage.DriverName)

	server, err := mcp.NewServer(appConfig, logger)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		logger.Info("MCP server ready, listening on stdio")
		errChan <- server.Serve(ctx)
	}()

	select {
	case sig := <-sigChan:
		logger.Info("received signal, shutting down", "signal", sig)
		cancel()
		return nil
	case err := <-errChan:
		return err
	}
}
