package mcp

import (
	"net/http"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/staffing-intel/internal/domain/intel"
	"github.com/honeycarbs/staffing-intel/internal/mcp/tools"
	"github.com/honeycarbs/staffing-intel/pkg/logging"
)

const (
	implementationName    = "staffing-intel"
	implementationVersion = "0.1.0"
)

type ToolRegistry struct {
	logger *logging.Logger
}

// Resources are the services exposed as MCP tools
type Resources struct {
	IntelService intel.Service
	Exporter     tools.ReportExporter
}

func NewToolRegistry(logger *logging.Logger) *ToolRegistry {
	return &ToolRegistry{logger: logger.Named("mcp")}
}

func (r *ToolRegistry) RegisterAll(server *sdkmcp.Server, res Resources) []string {
	names := tools.Register(server, r.logger,
		tools.WithCompanyIntelligence(res.IntelService),
		tools.WithIntelligenceExport(res.IntelService, res.Exporter),
	)
	r.logger.Info("mcp tools registered", "tools", names)
	return names
}

// NewServer builds the MCP server with every tool registered
func (r *ToolRegistry) NewServer(res Resources) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    implementationName,
		Version: implementationVersion,
	}, nil)
	r.RegisterAll(server, res)
	return server
}

// NewStreamHandler serves the MCP server over streamable HTTP
func NewStreamHandler(server *sdkmcp.Server) http.Handler {
	return sdkmcp.NewStreamableHTTPHandler(func(*http.Request) *sdkmcp.Server {
		return server
	}, nil)
}
