//go:build wireinject
// +build wireinject

package server

import (
	"context"

	"github.com/google/wire"

	"github.com/honeycarbs/staffing-intel/internal/config"
	"github.com/honeycarbs/staffing-intel/internal/domain/intel"
	"github.com/honeycarbs/staffing-intel/internal/mcp"
	"github.com/honeycarbs/staffing-intel/pkg/logging"
	"github.com/honeycarbs/staffing-intel/pkg/serpapi"
)

// InitializeResources creates Resources with all dependencies wired up
func InitializeResources(ctx context.Context, cfg config.Config, logger *logging.Logger) (*mcp.Resources, error) {
	wire.Build(
		// Infrastructure - SerpApi
		provideSerpAPIConfig,
		serpapi.NewClient,

		// Providers
		provideSerpAPIProvider,

		// Services
		intel.NewServiceWithDeps,

		// Export
		provideExporter,

		newResources,
	)

	return &mcp.Resources{}, nil
}

// InitializeServer builds the HTTP server over wired resources
func InitializeServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Server, error) {
	wire.Build(
		InitializeResources,
		NewServer,
	)

	return &Server{}, nil
}
