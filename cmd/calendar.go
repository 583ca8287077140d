package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	intconfig "tripboard/internal/config"
	"tripboard/internal/metrics"
	"tripboard/internal/utils"
	"tripboard/internal/view"
)

var (
	calendarMonth string
	calendarMax   int
	calendarWidth int
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Print a month grid of trips",
	RunE:  printCalendar,
}

func init() {
	calendarCmd.Flags().StringVarP(&calendarMonth, "month", "m", "", "month to show (YYYY-MM), defaults to the current month")
	calendarCmd.Flags().IntVar(&calendarMax, "max", 0, "trips shown per day, negative = all (defaults to config)")
	calendarCmd.Flags().IntVar(&calendarWidth, "width", 14, "cell width in columns")
	rootCmd.AddCommand(calendarCmd)
}

// monthFlag resolves a --month value against now.
func monthFlag(raw string, now time.Time) (time.Time, error) {
	if raw == "" {
		y, m, _ := now.Date()
		return time.Date(y, m, 1, 0, 0, 0, 0, now.Location()), nil
	}
	ref, err := utils.ParseMonth(raw, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --month %q: want YYYY-MM", raw)
	}
	return ref, nil
}

func printCalendar(cmd *cobra.Command, args []string) error {
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
	ref, err := monthFlag(calendarMonth, svc.Now())
	if err != nil {
		return err
	}
	maxPerCell := cfg.Calendar.TripLimit()
	if cmd.Flags().Changed("max") {
		maxPerCell = calendarMax
	}

	weeks, err := svc.Calendar(ctx, ref, maxPerCell)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), view.RenderMonth(weeks, svc.WeekStart, calendarWidth))
	return nil
}
