package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	intconfig "tripboard/internal/config"
	"tripboard/internal/metrics"
	"tripboard/internal/services"
)

var (
	reportMonth string
	reportOut   string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write the monthly dashboard PDF",
	RunE:  writeReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportMonth, "month", "m", "", "month to report (YYYY-MM), defaults to the current month")
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", ".", "output file or directory")
	rootCmd.AddCommand(reportCmd)
}

func writeReport(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := setup()
	if err != nil {
		return err
	}
	defer intconfig.CloseDB()

	svc, err := newDashboardService(cfg, metrics.Nop{})
	if err != nil {
		return err
	}
	ref, err := monthFlag(reportMonth, svc.Now())
	if err != nil {
		return err
	}

	report := services.ReportService{Dashboard: svc, MaxPerCell: cfg.Calendar.TripLimit()}
	pdf, filename, err := report.MonthReport(ctx, ref)
	if err != nil {
		return err
	}

	path := reportPath(reportOut, filename)
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	log.Info().Str("path", path).Int("bytes", len(pdf)).Msg("report written")
	return nil
}

// reportPath places filename inside out when out is an existing directory.
func reportPath(out, filename string) string {
	if out == "" {
		return filename
	}
	if fi, err := os.Stat(out); err == nil && fi.IsDir() {
		return filepath.Join(out, filename)
	}
	return out
}
