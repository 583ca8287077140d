package handlers

import (
	"time"

	"tripboard/internal/dashboard"
	"tripboard/internal/domain/models"
	"tripboard/internal/utils"
	"tripboard/internal/view"
)

type TripDTO struct {
	ID             int64     `json:"id"`
	GroupName      string    `json:"groupName"`
	SchoolName     string    `json:"schoolName"`
	Location       string    `json:"location"`
	StartDate      string    `json:"startDate"`
	EndDate        string    `json:"endDate"`
	TotalTravelers *int      `json:"totalTravelers"`
	ContractSigned bool      `json:"contractSigned"`
	Status         view.Meta `json:"status"`
}

type StatusCountDTO struct {
	Status view.Meta `json:"status"`
	Count  int       `json:"count"`
}

type SummaryDTO struct {
	GeneratedAt            string           `json:"generatedAt"`
	TotalTrips             int              `json:"totalTrips"`
	TotalTravelers         int              `json:"totalTravelers"`
	ActiveTrips            []TripDTO        `json:"activeTrips"`
	UpcomingDepartures     []TripDTO        `json:"upcomingDepartures"`
	PendingContracts       []TripDTO        `json:"pendingContracts"`
	UrgentPendingContracts []TripDTO        `json:"urgentPendingContracts"`
	SignedContractPercent  float64          `json:"signedContractPercent"`
	PendingContractPercent float64          `json:"pendingContractPercent"`
	UrgencyWindowDays      int              `json:"urgencyWindowDays"`
	StatusCounts           []StatusCountDTO `json:"statusCounts"`
}

type CalendarCellDTO struct {
	Date           string    `json:"date"`
	Day            int       `json:"day"`
	InCurrentMonth bool      `json:"inCurrentMonth"`
	Trips          []TripDTO `json:"trips"`
	Overflow       int       `json:"overflow"`
}

type CalendarDTO struct {
	Month           string              `json:"month"`
	WeekStart       string              `json:"weekStart"`
	MaxTripsPerCell int                 `json:"maxTripsPerCell"`
	Weeks           [][]CalendarCellDTO `json:"weeks"`
}

type ActionItemDTO struct {
	ID       int64     `json:"id"`
	Title    string    `json:"title"`
	GroupID  *int64    `json:"groupId"`
	Priority view.Meta `json:"priority"`
	DueDate  *string   `json:"dueDate"`
	Status   string    `json:"status"`
}

func toTripDTO(t models.Trip) TripDTO {
	return TripDTO{
		ID:             t.ID,
		GroupName:      t.GroupName,
		SchoolName:     t.SchoolName,
		Location:       t.Location,
		StartDate:      utils.FormatDate(t.StartDate),
		EndDate:        utils.FormatDate(t.EndDate),
		TotalTravelers: t.TotalTravelers,
		ContractSigned: t.ContractSigned,
		Status:         view.StatusMeta(t.Status),
	}
}

func toTripDTOs(trips []models.Trip) []TripDTO {
	out := make([]TripDTO, 0, len(trips))
	for _, t := range trips {
		out = append(out, toTripDTO(t))
	}
	return out
}

func toSummaryDTO(st dashboard.Stats, now time.Time) SummaryDTO {
	statuses := append(append([]models.TripStatus{}, models.KnownTripStatuses...), models.TripStatusOther)
	counts := make([]StatusCountDTO, 0, len(statuses))
	for _, s := range statuses {
		counts = append(counts, StatusCountDTO{Status: view.StatusMeta(s), Count: st.StatusCounts[s]})
	}
	return SummaryDTO{
		GeneratedAt:            now.Format(time.RFC3339),
		TotalTrips:             st.TotalTrips,
		TotalTravelers:         st.TotalTravelers,
		ActiveTrips:            toTripDTOs(st.ActiveTrips),
		UpcomingDepartures:     toTripDTOs(st.UpcomingDepartures),
		PendingContracts:       toTripDTOs(st.PendingContracts),
		UrgentPendingContracts: toTripDTOs(st.UrgentPendingContracts),
		SignedContractPercent:  st.SignedContractPercent(),
		PendingContractPercent: st.PendingContractPercent(),
		UrgencyWindowDays:      dashboard.ContractUrgencyWindowDays,
		StatusCounts:           counts,
	}
}

func toCalendarDTO(ref time.Time, weekStart time.Weekday, maxPerCell int, weeks []dashboard.Week) CalendarDTO {
	out := CalendarDTO{
		Month:           utils.FormatMonth(ref),
		WeekStart:       weekStart.String(),
		MaxTripsPerCell: maxPerCell,
		Weeks:           make([][]CalendarCellDTO, 0, len(weeks)),
	}
	for _, w := range weeks {
		row := make([]CalendarCellDTO, 0, len(w))
		for _, c := range w {
			row = append(row, CalendarCellDTO{
				Date:           utils.FormatDate(c.Date),
				Day:            c.Date.Day(),
				InCurrentMonth: c.InCurrentMonth,
				Trips:          toTripDTOs(c.Trips),
				Overflow:       c.Overflow,
			})
		}
		out.Weeks = append(out.Weeks, row)
	}
	return out
}

func toActionItemDTOs(items []models.ActionItem) []ActionItemDTO {
	out := make([]ActionItemDTO, 0, len(items))
	for _, it := range items {
		dto := ActionItemDTO{
			ID:       it.ID,
			Title:    it.Title,
			GroupID:  it.GroupID,
			Priority: view.PriorityMeta(it.Priority),
			Status:   string(it.Status),
		}
		if it.DueDate != nil {
			d := utils.FormatDate(*it.DueDate)
			dto.DueDate = &d
		}
		out = append(out, dto)
	}
	return out
}
