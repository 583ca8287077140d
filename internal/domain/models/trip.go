package models

import (
	"strings"
	"time"
)

// TripStatus is the lifecycle state of a group trip as stored by the groups API.
type TripStatus string

const (
	TripStatusActive    TripStatus = "active"
	TripStatusConfirmed TripStatus = "confirmed"
	TripStatusPending   TripStatus = "pending"
	TripStatusCompleted TripStatus = "completed"
	// TripStatusOther buckets any status the dashboard does not recognise.
	TripStatusOther TripStatus = "other"
)

// KnownTripStatuses lists the recognised statuses in display order.
var KnownTripStatuses = []TripStatus{
	TripStatusActive,
	TripStatusConfirmed,
	TripStatusPending,
	TripStatusCompleted,
}

// Normalize maps s onto a known status, or TripStatusOther.
func (s TripStatus) Normalize() TripStatus {
	v := TripStatus(strings.ToLower(strings.TrimSpace(string(s))))
	for _, k := range KnownTripStatuses {
		if v == k {
			return k
		}
	}
	return TripStatusOther
}

// Trip is one group travel program (a "group" in the admin UI).
// StartDate and EndDate are calendar dates; only year/month/day are meaningful.
type Trip struct {
	ID             int64      `json:"id"`
	GroupName      string     `json:"groupName"`
	SchoolName     string     `json:"schoolName"`
	Location       string     `json:"location"`
	StartDate      time.Time  `json:"startDate"`
	EndDate        time.Time  `json:"endDate"`
	TotalTravelers *int       `json:"totalTravelers,omitempty"`
	ContractSigned bool       `json:"contractSigned"`
	Status         TripStatus `json:"status"`
}

// Travelers returns the traveler count, treating a missing value as zero.
func (t Trip) Travelers() int {
	if t.TotalTravelers == nil {
		return 0
	}
	return *t.TotalTravelers
}

// DisplayName prefers the group name and falls back to the school name.
func (t Trip) DisplayName() string {
	if n := strings.TrimSpace(t.GroupName); n != "" {
		return n
	}
	return strings.TrimSpace(t.SchoolName)
}
