package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	intconfig "tripboard/internal/config"
	"tripboard/internal/dashboard"
	"tripboard/internal/metrics"
	"tripboard/internal/services"
	"tripboard/internal/utils"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:          "tripboard",
	Short:        "Trip dashboard service",
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// setup loads config, configures logging and opens the shared DB connection.
// Callers must call intconfig.CloseDB.
func setup() (*intconfig.Config, error) {
	cfg, err := intconfig.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	utils.InitLogger(cfg.Logging.Level, cfg.Logging.Format)

	if _, err := intconfig.ConnectDB(cfg.Database.DSN); err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	return cfg, nil
}

func newDashboardService(cfg *intconfig.Config, rec metrics.Recorder) (services.DashboardService, error) {
	weekStart, err := dashboard.ParseWeekStart(cfg.Calendar.WeekStart)
	if err != nil {
		return services.DashboardService{}, err
	}
	return services.DashboardService{Metrics: rec, WeekStart: weekStart}, nil
}
