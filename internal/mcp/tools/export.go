package tools

import (
	"context"
	"fmt"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/staffing-intel/internal/domain"
	"github.com/honeycarbs/staffing-intel/internal/domain/intel"
	"github.com/honeycarbs/staffing-intel/internal/export"
	"github.com/honeycarbs/staffing-intel/pkg/logging"
)

const intelligenceExportName = "intelligence_export"

// ReportExporter writes a report summary to an external sink
type ReportExporter interface {
	Export(ctx context.Context, report domain.Report, dest export.Destination) (export.Result, error)
}

// IntelligenceExportParams defines the arguments for the intelligence_export tool
type IntelligenceExportParams struct {
	Company       string `json:"company" jsonschema:"Healthcare organization to research"`
	Location      string `json:"location,omitempty" jsonschema:"Optional city or state to narrow searches"`
	SpreadsheetID string `json:"spreadsheet_id" jsonschema:"Google Sheets document ID"`
	Tab           string `json:"tab,omitempty" jsonschema:"Tab name to append the summary row to"`
}

// IntelligenceExportResult describes the summary returned after export
type IntelligenceExportResult struct {
	ReportID      string          `json:"report_id" jsonschema:"Identifier of the generated report"`
	Company       string          `json:"company"`
	OverallScore  int             `json:"overall_score"`
	PriorityLevel domain.Priority `json:"priority_level"`
	SpreadsheetID string          `json:"spreadsheet_id" jsonschema:"Target spreadsheet ID"`
	Tab           string          `json:"tab" jsonschema:"Target tab name"`
	WrittenRows   int             `json:"written_rows" jsonschema:"How many rows were written"`
	CompletedAt   time.Time       `json:"completed_at" jsonschema:"Timestamp when export finished"`
	Message       string          `json:"message,omitempty" jsonschema:"Optional status message"`
}

type intelligenceExportTool struct {
	service  intel.Service
	exporter ReportExporter
	logger   *logging.Logger
}

// WithIntelligenceExport registers the intelligence_export tool
func WithIntelligenceExport(service intel.Service, exporter ReportExporter) Option {
	return func(reg *registry) {
		handler := intelligenceExportTool{service: service, exporter: exporter, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        intelligenceExportName,
			Description: "Generate a company intelligence report and append its summary row to Google Sheets",
		}, handler.handle)
		reg.add(intelligenceExportName)
	}
}

func (t intelligenceExportTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *IntelligenceExportParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil {
		params = &IntelligenceExportParams{}
	}
	if params.SpreadsheetID == "" {
		return nil, nil, fmt.Errorf("spreadsheet_id is required")
	}
	if t.service == nil || t.exporter == nil {
		return nil, nil, fmt.Errorf("intelligence export not configured")
	}

	report, err := t.service.Report(ctx, domain.QueryContext{Company: params.Company, Location: params.Location})
	if err != nil {
		return nil, nil, err
	}

	written, err := t.exporter.Export(ctx, report, export.Destination{
		SpreadsheetID: params.SpreadsheetID,
		Tab:           params.Tab,
	})
	if err != nil {
		t.logger.Error("intelligence_export failed",
			"report_id", report.ID.String(),
			"spreadsheet_id", params.SpreadsheetID,
			"err", err,
		)
		return nil, nil, fmt.Errorf("export failed: %w", err)
	}

	result := IntelligenceExportResult{
		ReportID:      report.ID.String(),
		Company:       report.Company,
		OverallScore:  report.OverallScore,
		PriorityLevel: report.PriorityLevel,
		SpreadsheetID: written.SpreadsheetID,
		Tab:           written.Tab,
		WrittenRows:   written.WrittenRows,
		CompletedAt:   written.CompletedAt,
		Message:       written.Message,
	}

	t.logger.Info("intelligence_export completed",
		"report_id", result.ReportID,
		"spreadsheet_id", result.SpreadsheetID,
		"tab", result.Tab,
	)

	return textResult(result.Message), result, nil
}
