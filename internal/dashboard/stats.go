package dashboard

import (
	"sort"
	"time"

	"tripboard/internal/domain/models"
)

// ContractUrgencyWindowDays is how far ahead an unsigned contract counts as urgent.
// Fixed today; a candidate for configuration.
const ContractUrgencyWindowDays = 7

// Stats holds the dashboard summary figures. It is recomputed on every call.
type Stats struct {
	TotalTrips             int                       `json:"totalTrips"`
	ActiveTrips            []models.Trip             `json:"activeTrips"`
	TotalTravelers         int                       `json:"totalTravelers"`
	UpcomingDepartures     []models.Trip             `json:"upcomingDepartures"`
	PendingContracts       []models.Trip             `json:"pendingContracts"`
	UrgentPendingContracts []models.Trip             `json:"urgentPendingContracts"`
	StatusCounts           map[models.TripStatus]int `json:"statusCounts"`
}

// SignedContractPercent is the share of trips with a signed contract.
func (s Stats) SignedContractPercent() float64 {
	return Percent(s.TotalTrips-len(s.PendingContracts), s.TotalTrips)
}

// PendingContractPercent is the share of trips still waiting on a contract.
func (s Stats) PendingContractPercent() float64 {
	return Percent(len(s.PendingContracts), s.TotalTrips)
}

// Percent returns part/total*100, using max(total, 1) as the denominator.
func Percent(part, total int) float64 {
	if total < 1 {
		total = 1
	}
	return float64(part) * 100 / float64(total)
}

// ComputeStats derives the summary figures for trips as of now. Comparisons are
// made on calendar days in now's location.
func ComputeStats(trips []models.Trip, now time.Time) Stats {
	today := dayKey(now)
	urgentUntil := dayKey(addDays(now, ContractUrgencyWindowDays))

	st := Stats{
		TotalTrips:             len(trips),
		ActiveTrips:            []models.Trip{},
		UpcomingDepartures:     []models.Trip{},
		PendingContracts:       []models.Trip{},
		UrgentPendingContracts: []models.Trip{},
		StatusCounts:           make(map[models.TripStatus]int, len(models.KnownTripStatuses)+1),
	}

	for _, t := range trips {
		start := dayKey(t.StartDate)

		if TripOnDate(t, now) {
			st.ActiveTrips = append(st.ActiveTrips, t)
		}
		if start > today {
			st.UpcomingDepartures = append(st.UpcomingDepartures, t)
		}
		if !t.ContractSigned {
			st.PendingContracts = append(st.PendingContracts, t)
			if start <= urgentUntil {
				st.UrgentPendingContracts = append(st.UrgentPendingContracts, t)
			}
		}
		st.TotalTravelers += t.Travelers()
		st.StatusCounts[t.Status.Normalize()]++
	}

	sort.SliceStable(st.UpcomingDepartures, func(i, j int) bool {
		return dayKey(st.UpcomingDepartures[i].StartDate) < dayKey(st.UpcomingDepartures[j].StartDate)
	})
	return st
}
