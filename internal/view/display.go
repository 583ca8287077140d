// Package view maps dashboard values onto display metadata and renders the
// month grid for terminals. It holds no ranking or aggregation logic.
package view

import (
	"strings"

	"tripboard/internal/domain/models"
)

// Meta is the display metadata for one enumerated value.
type Meta struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Color string `json:"color"`
}

const neutralColor = "#9CA3AF"

var priorityMeta = map[models.Priority]Meta{
	models.PriorityUrgent: {Key: "urgent", Label: "Urgent", Color: "#DC2626"},
	models.PriorityHigh:   {Key: "high", Label: "High", Color: "#EA580C"},
	models.PriorityNormal: {Key: "normal", Label: "Normal", Color: "#2563EB"},
	models.PriorityLow:    {Key: "low", Label: "Low", Color: "#6B7280"},
}

var statusMeta = map[models.TripStatus]Meta{
	models.TripStatusActive:    {Key: "active", Label: "Active", Color: "#16A34A"},
	models.TripStatusConfirmed: {Key: "confirmed", Label: "Confirmed", Color: "#2563EB"},
	models.TripStatusPending:   {Key: "pending", Label: "Pending", Color: "#D97706"},
	models.TripStatusCompleted: {Key: "completed", Label: "Completed", Color: "#6B7280"},
	models.TripStatusOther:     {Key: "other", Label: "Other", Color: neutralColor},
}

// PriorityMeta returns display metadata for p. Unknown tiers get a neutral entry
// labelled with the raw value.
func PriorityMeta(p models.Priority) Meta {
	key := models.Priority(strings.ToLower(strings.TrimSpace(string(p))))
	if m, ok := priorityMeta[key]; ok {
		return m
	}
	label := strings.TrimSpace(string(p))
	if label == "" {
		label = "None"
	}
	return Meta{Key: string(key), Label: label, Color: neutralColor}
}

// StatusMeta returns display metadata for s, bucketing unknown statuses as "other".
func StatusMeta(s models.TripStatus) Meta {
	return statusMeta[s.Normalize()]
}
