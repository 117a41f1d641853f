package mcp

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/staffing-intel/internal/domain"
	"github.com/honeycarbs/staffing-intel/internal/domain/intel"
	"github.com/honeycarbs/staffing-intel/internal/export"
	"github.com/honeycarbs/staffing-intel/pkg/logging"
)

type staticGateway struct{}

func (staticGateway) Name() string { return "static" }

func (staticGateway) Search(_ context.Context, req domain.SearchRequest) (domain.SearchResult, error) {
	if req.Engine != domain.EngineJobs {
		return domain.SearchResult{}, nil
	}
	return domain.SearchResult{Jobs: []domain.RawJob{
		{Title: "Travel MRI Technologist", Description: "urgent, immediate start"},
	}}, nil
}

type fakeExporter struct {
	got  domain.Report
	dest export.Destination
}

func (f *fakeExporter) Export(_ context.Context, report domain.Report, dest export.Destination) (export.Result, error) {
	f.got = report
	f.dest = dest
	return export.Result{
		SpreadsheetID: dest.SpreadsheetID,
		Tab:           dest.Tab,
		WrittenRows:   1,
		CompletedAt:   time.Now().UTC(),
		Message:       "successfully exported 1 row(s)",
	}, nil
}

func connect(t *testing.T, res Resources) *sdkmcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	server := NewToolRegistry(logging.NewNop()).NewServer(res)
	clientTransport, serverTransport := sdkmcp.NewInMemoryTransports()

	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	return session
}

func textOf(t *testing.T, res *sdkmcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	txt, ok := res.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok)
	return txt.Text
}

func TestToolsAreListed(t *testing.T) {
	svc, err := intel.NewServiceWithDeps(staticGateway{}, logging.NewNop())
	require.NoError(t, err)
	session := connect(t, Resources{IntelService: svc, Exporter: &fakeExporter{}})

	list, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	var names []string
	for _, tool := range list.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"company_intelligence", "intelligence_export"}, names)
}

func TestCompanyIntelligenceTool(t *testing.T) {
	svc, err := intel.NewServiceWithDeps(staticGateway{}, logging.NewNop())
	require.NoError(t, err)
	session := connect(t, Resources{IntelService: svc})

	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      "company_intelligence",
		Arguments: map[string]any{"company": "Acme Health", "location": "Texas"},
	})
	require.NoError(t, err)
	require.False(t, res.IsError, textOf(t, res))

	var report domain.Report
	require.NoError(t, json.Unmarshal([]byte(textOf(t, res)), &report))
	assert.Equal(t, "Acme Health", report.Company)
	assert.Equal(t, 1, report.HiringActivity.RecentPostingsCount)
	assert.Equal(t, 1, report.HiringActivity.UrgentNeeds)
	assert.Equal(t, []string{"mri"}, report.HiringActivity.ModalitiesHiring)
}

func TestIntelligenceExportTool(t *testing.T) {
	svc, err := intel.NewServiceWithDeps(staticGateway{}, logging.NewNop())
	require.NoError(t, err)
	exp := &fakeExporter{}
	session := connect(t, Resources{IntelService: svc, Exporter: exp})

	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name: "intelligence_export",
		Arguments: map[string]any{
			"company":        "Acme Health",
			"spreadsheet_id": "sheet-1",
			"tab":            "Leads",
		},
	})
	require.NoError(t, err)
	require.False(t, res.IsError, textOf(t, res))

	assert.Equal(t, "successfully exported 1 row(s)", textOf(t, res))
	assert.Equal(t, "Acme Health", exp.got.Company)
	assert.Equal(t, export.Destination{SpreadsheetID: "sheet-1", Tab: "Leads"}, exp.dest)
}

func TestIntelligenceExportRequiresSpreadsheet(t *testing.T) {
	svc, err := intel.NewServiceWithDeps(staticGateway{}, logging.NewNop())
	require.NoError(t, err)
	exp := &fakeExporter{}
	session := connect(t, Resources{IntelService: svc, Exporter: exp})

	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      "intelligence_export",
		Arguments: map[string]any{"company": "Acme Health", "spreadsheet_id": ""},
	})
	if err == nil {
		assert.True(t, res.IsError)
	}
	assert.Empty(t, exp.got.Company)
}
