package server

import (
	"context"

	"github.com/honeycarbs/staffing-intel/internal/config"
	"github.com/honeycarbs/staffing-intel/internal/domain/intel"
	serpapiProvider "github.com/honeycarbs/staffing-intel/internal/domain/intel/providers/serpapi"
	"github.com/honeycarbs/staffing-intel/internal/export"
	"github.com/honeycarbs/staffing-intel/internal/mcp"
	"github.com/honeycarbs/staffing-intel/internal/mcp/tools"
	"github.com/honeycarbs/staffing-intel/pkg/logging"
	"github.com/honeycarbs/staffing-intel/pkg/serpapi"
	"github.com/honeycarbs/staffing-intel/pkg/sheets"
)

// provideSerpAPIConfig extracts SerpApi config from main config
func provideSerpAPIConfig(cfg config.Config) serpapi.Config {
	return serpapi.Config{
		APIKey:  cfg.SerpAPI.APIKey,
		BaseURL: cfg.SerpAPI.BaseURL,
		Timeout: cfg.SerpAPI.Timeout,
	}
}

// provideSerpAPIProvider creates the gateway from the client
func provideSerpAPIProvider(client *serpapi.Client) (intel.Gateway, error) {
	return serpapiProvider.NewProvider(client)
}

// provideExporter connects to Google Sheets when credentials are configured.
// Without them the exporter reports export.ErrNotConfigured per call.
func provideExporter(ctx context.Context, cfg config.Config, logger *logging.Logger) tools.ReportExporter {
	if cfg.Sheets.CredentialsPath == "" {
		logger.Warn("Google Sheets export disabled", "reason", "GOOGLE_SHEETS_CREDENTIALS_PATH not set")
		return export.NewSheetsExporter(nil, cfg.Sheets.DefaultTab)
	}

	client, err := sheets.NewClient(ctx, sheets.Config{CredentialsPath: cfg.Sheets.CredentialsPath})
	if err != nil {
		logger.Warn("failed to initialize Google Sheets client", "err", err)
		return export.NewSheetsExporter(nil, cfg.Sheets.DefaultTab)
	}

	logger.Info("Google Sheets client initialized", "default_tab", cfg.Sheets.DefaultTab)
	return export.NewSheetsExporter(client, cfg.Sheets.DefaultTab)
}

// newResources creates Resources struct
func newResources(svc intel.Service, exporter tools.ReportExporter) *mcp.Resources {
	return &mcp.Resources{
		IntelService: svc,
		Exporter:     exporter,
	}
}
