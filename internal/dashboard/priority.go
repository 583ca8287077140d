package dashboard

import (
	"sort"
	"strings"

	"tripboard/internal/domain/models"
)

const unknownPriorityRank = 4

var priorityRanks = map[models.Priority]int{
	models.PriorityUrgent: 0,
	models.PriorityHigh:   1,
	models.PriorityNormal: 2,
	models.PriorityLow:    3,
}

// PriorityRank maps a priority tier to its sort rank. Unknown values rank last.
func PriorityRank(p models.Priority) int {
	if r, ok := priorityRanks[models.Priority(strings.ToLower(strings.TrimSpace(string(p))))]; ok {
		return r
	}
	return unknownPriorityRank
}

// compareActionItems orders by priority rank, then earlier due day, then dated
// before undated. Anything else compares equal.
func compareActionItems(a, b models.ActionItem) int {
	if ra, rb := PriorityRank(a.Priority), PriorityRank(b.Priority); ra != rb {
		return ra - rb
	}
	switch {
	case a.DueDate != nil && b.DueDate != nil:
		return dayKey(*a.DueDate) - dayKey(*b.DueDate)
	case a.DueDate != nil:
		return -1
	case b.DueDate != nil:
		return 1
	}
	return 0
}

// RankActionItems returns a new slice with items in priority order. Items with
// equal keys keep their input order; the input slice is left untouched.
func RankActionItems(items []models.ActionItem) []models.ActionItem {
	out := make([]models.ActionItem, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return compareActionItems(out[i], out[j]) < 0
	})
	return out
}
