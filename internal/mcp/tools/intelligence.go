package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/staffing-intel/internal/domain"
	"github.com/honeycarbs/staffing-intel/internal/domain/intel"
	"github.com/honeycarbs/staffing-intel/pkg/logging"
)

const companyIntelligenceName = "company_intelligence"

// CompanyIntelligenceParams defines the arguments for the company_intelligence tool
type CompanyIntelligenceParams struct {
	Company  string `json:"company" jsonschema:"Healthcare organization to research, e.g. HCA or Mayo Clinic"`
	Location string `json:"location,omitempty" jsonschema:"Optional city or state to narrow searches"`
}

type companyIntelligenceTool struct {
	service intel.Service
	logger  *logging.Logger
}

// WithCompanyIntelligence registers the company_intelligence tool
func WithCompanyIntelligence(service intel.Service) Option {
	return func(reg *registry) {
		handler := companyIntelligenceTool{service: service, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        companyIntelligenceName,
			Description: "Score a healthcare company's staffing demand from recent jobs, leadership and expansion news",
		}, handler.handle)
		reg.add(companyIntelligenceName)
	}
}

func (t companyIntelligenceTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *CompanyIntelligenceParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil {
		params = &CompanyIntelligenceParams{}
	}

	if t.service == nil {
		return nil, nil, fmt.Errorf("intelligence service not configured")
	}

	report, err := t.service.Report(ctx, domain.QueryContext{Company: params.Company, Location: params.Location})
	if err != nil {
		t.logger.Warn("company_intelligence failed", "company", params.Company, "err", err)
		return nil, nil, err
	}

	t.logger.Info("company_intelligence completed",
		"company", report.Company,
		"report_id", report.ID.String(),
		"score", report.OverallScore,
	)

	return jsonResult(report), report, nil
}
