package dashboard

import (
	"time"

	"tripboard/internal/domain/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int { return &v }

func trip(id int64, start, end time.Time, travelers *int, signed bool) models.Trip {
	return models.Trip{
		ID:             id,
		GroupName:      "group",
		StartDate:      start,
		EndDate:        end,
		TotalTravelers: travelers,
		ContractSigned: signed,
		Status:         models.TripStatusConfirmed,
	}
}

func tripIDs(trips []models.Trip) []int64 {
	out := make([]int64, 0, len(trips))
	for _, t := range trips {
		out = append(out, t.ID)
	}
	return out
}

func itemIDs(items []models.ActionItem) []int64 {
	out := make([]int64, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}
