package dashboard

import (
	"fmt"
	"strings"
	"time"

	"tripboard/internal/domain/models"
)

// CalendarCell is one day slot of the month grid.
type CalendarCell struct {
	Date           time.Time     `json:"date"`
	InCurrentMonth bool          `json:"inCurrentMonth"`
	Trips          []models.Trip `json:"trips"`
	// Overflow counts matching trips that were cut by the per-cell limit.
	Overflow int `json:"overflow"`
}

// TotalTrips is the number of trips on this day before truncation.
func (c CalendarCell) TotalTrips() int {
	return len(c.Trips) + c.Overflow
}

// NoTripLimit keeps every matching trip in a cell. Any negative limit does the same.
const NoTripLimit = -1

// Week is one row of the grid, starting on the configured first weekday.
type Week [7]CalendarCell

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// BuildMonthGrid lays out the month containing ref as whole weeks beginning on
// weekStart, padding with days of the neighbouring months. Each cell keeps at
// most maxPerCell matching trips (in input order) and counts the rest in
// Overflow. maxPerCell == 0 stores none and counts every match as overflow;
// a negative maxPerCell (NoTripLimit) keeps every match.
//
// The grid always holds 7 * ceil((leading pad + days in month) / 7) cells.
// Cell dates are midnight in ref's location.
func BuildMonthGrid(ref time.Time, trips []models.Trip, maxPerCell int, weekStart time.Weekday) []Week {
	y, m, _ := ref.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, ref.Location())
	days := DaysInMonth(y, m)

	start := (int(weekStart)%7 + 7) % 7
	lead := (int(first.Weekday()) - start + 7) % 7

	total := lead + days
	if rem := total % 7; rem != 0 {
		total += 7 - rem
	}

	weeks := make([]Week, total/7)
	for i := 0; i < total; i++ {
		offset := i - lead
		date := addDays(first, offset)
		weeks[i/7][i%7] = buildCell(date, offset >= 0 && offset < days, trips, maxPerCell)
	}
	return weeks
}

func buildCell(date time.Time, inMonth bool, trips []models.Trip, maxPerCell int) CalendarCell {
	cell := CalendarCell{
		Date:           date,
		InCurrentMonth: inMonth,
		Trips:          []models.Trip{},
	}
	matched := 0
	for _, t := range trips {
		if !TripOnDate(t, date) {
			continue
		}
		matched++
		if maxPerCell < 0 || len(cell.Trips) < maxPerCell {
			cell.Trips = append(cell.Trips, t)
		}
	}
	cell.Overflow = matched - len(cell.Trips)
	return cell
}

// ParseWeekStart accepts an English weekday name ("sunday", "Mon", ...).
// An empty string selects Sunday.
func ParseWeekStart(s string) (time.Weekday, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return time.Sunday, nil
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if v == name || v == name[:3] {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", s)
}
