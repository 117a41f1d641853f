package main

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/honeycarbs/staffing-intel/internal/config"
	"github.com/honeycarbs/staffing-intel/internal/server"
	"github.com/honeycarbs/staffing-intel/pkg/logging"
	"github.com/honeycarbs/staffing-intel/pkg/shutdown"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  "Serve /intelligence, the legacy /jobs, /news and /search routes, and the MCP stream at /mcp/stream.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if servePort != "" {
		cfg.Port = servePort
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	if cfg.SerpAPI.APIKey == "" {
		logger.Warn("SERP_API_KEY is not set; every provider search will fail")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	srv, err := server.InitializeServer(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	go shutdown.Graceful(
		ctx,
		[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
		srv,
		cfg.ShutdownTimeout,
		logger,
	)

	logger.Info("server initialized and starting", "addr", cfg.Addr())

	if err := srv.Run(); err != nil {
		logger.Error("server exited with error", "err", err)
		return err
	}

	logger.Info("server stopped")
	return nil
}
