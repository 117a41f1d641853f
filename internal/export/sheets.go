// Package export writes intelligence report summaries to external sinks.
package export

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/honeycarbs/staffing-intel/internal/domain"
)

// ErrNotConfigured is returned when no Sheets credentials were provided
var ErrNotConfigured = errors.New("export: Google Sheets client not configured (GOOGLE_SHEETS_CREDENTIALS_PATH not set)")

// Destination identifies a spreadsheet tab
type Destination struct {
	SpreadsheetID string
	Tab           string
}

// Result summarizes one export
type Result struct {
	SpreadsheetID string
	Tab           string
	WrittenRows   int
	CompletedAt   time.Time
	Message       string
}

// rowAppender describes the subset of the Sheets client used by the exporter.
type rowAppender interface {
	AppendRows(ctx context.Context, spreadsheetID, tab string, values [][]interface{}) (int, error)
}

// SheetsExporter appends one summary row per report
type SheetsExporter struct {
	client     rowAppender
	defaultTab string
	clock      func() time.Time
}

// NewSheetsExporter builds an exporter; a nil client yields ErrNotConfigured on export
func NewSheetsExporter(client rowAppender, defaultTab string) *SheetsExporter {
	return &SheetsExporter{
		client:     client,
		defaultTab: defaultTab,
		clock:      time.Now,
	}
}

// Export appends the report summary row to dest
func (e *SheetsExporter) Export(ctx context.Context, report domain.Report, dest Destination) (Result, error) {
	if e == nil || e.client == nil {
		return Result{SpreadsheetID: dest.SpreadsheetID, Tab: dest.Tab}, ErrNotConfigured
	}

	tab := dest.Tab
	if tab == "" {
		tab = e.defaultTab
	}

	result := Result{
		SpreadsheetID: dest.SpreadsheetID,
		Tab:           tab,
	}

	written, err := e.client.AppendRows(ctx, dest.SpreadsheetID, tab, [][]interface{}{SummaryRow(report)})
	if err != nil {
		return result, fmt.Errorf("export: %w", err)
	}

	result.WrittenRows = written
	result.CompletedAt = e.clock().UTC()
	result.Message = fmt.Sprintf("successfully exported %d row(s)", written)
	return result, nil
}

// SummaryHeader names the SummaryRow columns
var SummaryHeader = []string{
	"report_id", "search_timestamp", "company", "location", "overall_score", "priority_level",
	"actionable_timeline", "recent_postings", "urgent_needs", "modalities", "contract_types",
	"executive_changes", "expansion_activity", "fda_activity", "reasoning", "next_actions",
	"latest_headline",
}

// SummaryRow flattens a report into one spreadsheet row
func SummaryRow(r domain.Report) []interface{} {
	location := ""
	if r.Location != nil {
		location = *r.Location
	}

	return []interface{}{
		r.ID.String(),
		r.SearchTimestamp.UTC().Format(time.RFC3339),
		r.Company,
		location,
		r.OverallScore,
		string(r.PriorityLevel),
		string(r.ActionableTimeline),
		r.HiringActivity.RecentPostingsCount,
		r.HiringActivity.UrgentNeeds,
		strings.Join(r.HiringActivity.ModalitiesHiring, ", "),
		strings.Join(r.HiringActivity.ContractTypes, ", "),
		len(r.SupplementarySignals.ExecutiveChanges),
		len(r.SupplementarySignals.ExpansionActivity),
		len(r.SupplementarySignals.FDAActivity),
		r.Recommendations.Reasoning,
		strings.Join(r.Recommendations.NextActions, "; "),
		latestHeadline(r),
	}
}

func latestHeadline(r domain.Report) string {
	if len(r.RecentNews) == 0 {
		return ""
	}
	return plainText(r.RecentNews[0].Headline)
}
