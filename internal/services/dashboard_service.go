package services

import (
	"context"
	"fmt"
	"time"

	"tripboard/internal/dashboard"
	"tripboard/internal/domain"
	"tripboard/internal/domain/models"
	"tripboard/internal/metrics"
	"tripboard/internal/repositories"
	"tripboard/internal/utils"
)

// TripLister is the read side of the groups API.
type TripLister interface {
	ListTrips(ctx context.Context) ([]models.Trip, error)
}

// ActionItemLister is the read side of the action items API.
type ActionItemLister interface {
	ListActionItems(ctx context.Context) ([]models.ActionItem, error)
}

// DashboardService fetches snapshots and hands them to the dashboard package.
// Clock is the only place the current time is read.
type DashboardService struct {
	Groups    TripLister
	Items     ActionItemLister
	Metrics   metrics.Recorder
	Clock     func() time.Time
	WeekStart time.Weekday
	RequestID string
}

// Snapshot is one consistent read of the dashboard: every figure in it was
// derived from the same trip load and the same instant.
type Snapshot struct {
	GeneratedAt time.Time
	Stats       dashboard.Stats
	Weeks       []dashboard.Week
}

func (s DashboardService) groups() TripLister {
	if s.Groups != nil {
		return s.Groups
	}
	return repositories.GroupsRepository{}
}

func (s DashboardService) items() ActionItemLister {
	if s.Items != nil {
		return s.Items
	}
	return repositories.ActionItemsRepository{}
}

func (s DashboardService) metrics() metrics.Recorder {
	if s.Metrics != nil {
		return s.Metrics
	}
	return metrics.Nop{}
}

// Now returns the current instant from Clock, falling back to time.Now.
func (s DashboardService) Now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

// WithRequestID returns a copy of s that tags its log events with id.
func (s DashboardService) WithRequestID(id string) DashboardService {
	s.RequestID = id
	return s
}

func (s DashboardService) loadTrips(ctx context.Context) ([]models.Trip, error) {
	trips, err := s.groups().ListTrips(ctx)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to load groups", Err: err}
	}
	return trips, nil
}

func (s DashboardService) logSummary(action string, st dashboard.Stats) {
	utils.LogEvent(s.RequestID, "dashboard", action,
		fmt.Sprintf("trips=%d active=%d pending=%d urgent=%d", st.TotalTrips, len(st.ActiveTrips), len(st.PendingContracts), len(st.UrgentPendingContracts)))
}

// Summary computes the aggregate figures as of Now.
func (s DashboardService) Summary(ctx context.Context) (Snapshot, error) {
	trips, err := s.loadTrips(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	now := s.Now()
	st := dashboard.ComputeStats(trips, now)

	rec := s.metrics()
	rec.RecordView("summary")
	rec.RecordSummary(st)
	s.logSummary("summary", st)
	return Snapshot{GeneratedAt: now, Stats: st}, nil
}

// Calendar builds the month grid around ref. A negative maxPerCell disables
// truncation.
func (s DashboardService) Calendar(ctx context.Context, ref time.Time, maxPerCell int) ([]dashboard.Week, error) {
	trips, err := s.loadTrips(ctx)
	if err != nil {
		return nil, err
	}
	weeks := dashboard.BuildMonthGrid(ref, trips, maxPerCell, s.WeekStart)

	s.metrics().RecordView("calendar")
	utils.LogEvent(s.RequestID, "dashboard", "calendar",
		fmt.Sprintf("month=%s trips=%d weeks=%d", utils.FormatMonth(ref), len(trips), len(weeks)))
	return weeks, nil
}

// MonthSnapshot loads trips once and derives both the summary and the month
// grid around ref from that load.
func (s DashboardService) MonthSnapshot(ctx context.Context, ref time.Time, maxPerCell int) (Snapshot, error) {
	trips, err := s.loadTrips(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	now := s.Now()
	snap := Snapshot{
		GeneratedAt: now,
		Stats:       dashboard.ComputeStats(trips, now),
		Weeks:       dashboard.BuildMonthGrid(ref, trips, maxPerCell, s.WeekStart),
	}

	s.metrics().RecordView("report")
	s.logSummary("month_snapshot", snap.Stats)
	return snap, nil
}

// ActionItems returns the ranked action items. Done items are dropped unless
// includeDone is set.
func (s DashboardService) ActionItems(ctx context.Context, includeDone bool) ([]models.ActionItem, error) {
	items, err := s.items().ListActionItems(ctx)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to load action items", Err: err}
	}
	if !includeDone {
		open := make([]models.ActionItem, 0, len(items))
		for _, it := range items {
			if it.Status != models.ActionItemDone {
				open = append(open, it)
			}
		}
		items = open
	}
	ranked := dashboard.RankActionItems(items)

	s.metrics().RecordView("action_items")
	utils.LogEvent(s.RequestID, "dashboard", "action_items", fmt.Sprintf("items=%d include_done=%t", len(ranked), includeDone))
	return ranked, nil
}
