package models

import "time"

// Priority is the tier of an action item. Values outside the known set are kept
// as-is and rank below every known tier.
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
)

// ActionItemStatus is only consulted by callers (for filtering), never by ranking.
type ActionItemStatus string

const (
	ActionItemPending ActionItemStatus = "pending"
	ActionItemDone    ActionItemStatus = "done"
)

// ActionItem is an outstanding task attached to the dashboard, optionally tied to a group.
type ActionItem struct {
	ID       int64            `json:"id"`
	Title    string           `json:"title"`
	GroupID  *int64           `json:"groupId,omitempty"`
	Priority Priority         `json:"priority"`
	DueDate  *time.Time       `json:"dueDate,omitempty"`
	Status   ActionItemStatus `json:"status"`
}
