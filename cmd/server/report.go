package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/honeycarbs/staffing-intel/internal/config"
	"github.com/honeycarbs/staffing-intel/internal/domain"
	"github.com/honeycarbs/staffing-intel/internal/server"
	"github.com/honeycarbs/staffing-intel/pkg/logging"
)

var (
	reportCompany  string
	reportLocation string
	reportOutput   string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print one company intelligence report as JSON",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportCompany, "company", "c", "", "Company to research (required)")
	reportCmd.Flags().StringVarP(&reportLocation, "location", "l", "", "Optional city or state")
	reportCmd.Flags().StringVarP(&reportOutput, "out", "o", "", "Write the report to a file instead of stdout")
	_ = reportCmd.MarkFlagRequired("company")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// stdout carries the report
	logger := logging.New("error")
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	res, err := server.InitializeResources(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	report, err := res.IntelService.Report(ctx, domain.QueryContext{Company: reportCompany, Location: reportLocation})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if reportOutput != "" {
		f, err := os.Create(reportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
