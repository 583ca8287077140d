package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripboard/internal/domain/models"
	"tripboard/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubGroups struct {
	trips []models.Trip
	err   error
}

func (s stubGroups) ListTrips(context.Context) ([]models.Trip, error) { return s.trips, s.err }

type stubActionItems struct {
	items []models.ActionItem
	err   error
}

func (s stubActionItems) ListActionItems(context.Context) ([]models.ActionItem, error) {
	return s.items, s.err
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testHandler(groups stubGroups, items stubActionItems) DashboardHandler {
	now := time.Date(2025, time.January, 3, 9, 0, 0, 0, time.UTC)
	return DashboardHandler{
		Service: services.DashboardService{
			Groups:    groups,
			Items:     items,
			Clock:     func() time.Time { return now },
			WeekStart: time.Sunday,
		},
		MaxTripsPerCell: 3,
	}
}

func sampleGroups() stubGroups {
	ten, five := 10, 5
	return stubGroups{trips: []models.Trip{
		{ID: 1, GroupName: "A", StartDate: day(2025, time.January, 1), EndDate: day(2025, time.January, 5), TotalTravelers: &ten, Status: models.TripStatusActive},
		{ID: 2, GroupName: "B", StartDate: day(2025, time.January, 10), EndDate: day(2025, time.January, 12), TotalTravelers: &five, ContractSigned: true, Status: models.TripStatusConfirmed},
	}}
}

func serve(t *testing.T, h DashboardHandler, method, target string, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	r := gin.New()
	r.Handle(method, strings.SplitN(target, "?", 2)[0], handler)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestSummaryReturnsStatsAndPercentages(t *testing.T) {
	h := testHandler(sampleGroups(), stubActionItems{})
	w := serve(t, h, http.MethodGet, "/summary", h.Summary)
	require.Equal(t, http.StatusOK, w.Code)

	var body SummaryDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.TotalTrips)
	assert.Equal(t, 15, body.TotalTravelers)
	require.Len(t, body.ActiveTrips, 1)
	assert.Equal(t, int64(1), body.ActiveTrips[0].ID)
	assert.Equal(t, "2025-01-01", body.ActiveTrips[0].StartDate)
	require.Len(t, body.UpcomingDepartures, 1)
	assert.Equal(t, int64(2), body.UpcomingDepartures[0].ID)
	require.Len(t, body.PendingContracts, 1)
	assert.Equal(t, int64(1), body.PendingContracts[0].ID)
	require.Len(t, body.UrgentPendingContracts, 1)
	assert.Equal(t, int64(1), body.UrgentPendingContracts[0].ID)
	assert.InDelta(t, 50.0, body.SignedContractPercent, 0.001)
	assert.InDelta(t, 50.0, body.PendingContractPercent, 0.001)
	assert.Equal(t, 7, body.UrgencyWindowDays)
	assert.Len(t, body.StatusCounts, 5)
}

func TestSummaryGeneratedAtMatchesComputation(t *testing.T) {
	ticks := 0
	h := testHandler(sampleGroups(), stubActionItems{})
	h.Service.Clock = func() time.Time {
		ticks++
		return time.Date(2025, time.January, 3, 9, ticks, 0, 0, time.UTC)
	}

	w := serve(t, h, http.MethodGet, "/summary", h.Summary)
	require.Equal(t, http.StatusOK, w.Code)

	var body SummaryDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, ticks)
	assert.Equal(t, "2025-01-03T09:01:00Z", body.GeneratedAt)
}

func TestSummaryLoadFailureIs500(t *testing.T) {
	h := testHandler(stubGroups{err: errors.New("db down")}, stubActionItems{})
	w := serve(t, h, http.MethodGet, "/summary", h.Summary)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal_error")
	assert.Contains(t, w.Body.String(), "failed to load groups")
	assert.NotContains(t, w.Body.String(), "db down")
}

func TestCalendarDefaultsToCurrentMonth(t *testing.T) {
	h := testHandler(sampleGroups(), stubActionItems{})
	w := serve(t, h, http.MethodGet, "/calendar", h.Calendar)
	require.Equal(t, http.StatusOK, w.Code)

	var body CalendarDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "2025-01", body.Month)
	assert.Equal(t, "Sunday", body.WeekStart)
	assert.Equal(t, 3, body.MaxTripsPerCell)
	require.Len(t, body.Weeks, 5)

	first := body.Weeks[0][3]
	assert.Equal(t, "2025-01-01", first.Date)
	assert.True(t, first.InCurrentMonth)
	require.Len(t, first.Trips, 1)
	assert.Equal(t, int64(1), first.Trips[0].ID)
	assert.False(t, body.Weeks[0][0].InCurrentMonth)
	assert.NotNil(t, body.Weeks[0][0].Trips)
}

func TestCalendarMonthAndMaxParams(t *testing.T) {
	h := testHandler(sampleGroups(), stubActionItems{})
	w := serve(t, h, http.MethodGet, "/calendar?month=2025-02&max=0", h.Calendar)
	require.Equal(t, http.StatusOK, w.Code)

	var body CalendarDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "2025-02", body.Month)
	assert.Equal(t, 0, body.MaxTripsPerCell)
}

func TestCalendarZeroAndNegativeMax(t *testing.T) {
	h := testHandler(sampleGroups(), stubActionItems{})

	w := serve(t, h, http.MethodGet, "/calendar?month=2025-01&max=0", h.Calendar)
	require.Equal(t, http.StatusOK, w.Code)
	var zero CalendarDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &zero))
	jan1 := zero.Weeks[0][3]
	assert.Equal(t, "2025-01-01", jan1.Date)
	assert.Empty(t, jan1.Trips)
	assert.Equal(t, 1, jan1.Overflow)

	w = serve(t, h, http.MethodGet, "/calendar?month=2025-01&max=-1", h.Calendar)
	require.Equal(t, http.StatusOK, w.Code)
	var all CalendarDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Equal(t, -1, all.MaxTripsPerCell)
	assert.Len(t, all.Weeks[0][3].Trips, 1)
	assert.Equal(t, 0, all.Weeks[0][3].Overflow)
}

func TestCalendarRejectsBadParams(t *testing.T) {
	h := testHandler(sampleGroups(), stubActionItems{})
	for _, target := range []string{
		"/calendar?month=2025-13",
		"/calendar?month=jan",
		"/calendar?max=abc",
		"/calendar?max=1.5",
	} {
		w := serve(t, h, http.MethodGet, target, h.Calendar)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Contains(t, w.Body.String(), "validation_error", target)
	}
}

func TestActionItemsRankedAndFiltered(t *testing.T) {
	items := stubActionItems{items: []models.ActionItem{
		{ID: 1, Title: "low", Priority: models.PriorityLow, Status: models.ActionItemPending},
		{ID: 2, Title: "done", Priority: models.PriorityHigh, Status: models.ActionItemDone},
		{ID: 3, Title: "urgent", Priority: models.PriorityUrgent, Status: models.ActionItemPending},
	}}
	h := testHandler(sampleGroups(), items)

	w := serve(t, h, http.MethodGet, "/action-items", h.ActionItems)
	require.Equal(t, http.StatusOK, w.Code)
	var open []ActionItemDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &open))
	require.Len(t, open, 2)
	assert.Equal(t, int64(3), open[0].ID)
	assert.Equal(t, "Urgent", open[0].Priority.Label)
	assert.Equal(t, int64(1), open[1].ID)

	w = serve(t, h, http.MethodGet, "/action-items?include_done=true", h.ActionItems)
	require.Equal(t, http.StatusOK, w.Code)
	var all []ActionItemDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	require.Len(t, all, 3)
	assert.Equal(t, []int64{3, 2, 1}, []int64{all[0].ID, all[1].ID, all[2].ID})

	w = serve(t, h, http.MethodGet, "/action-items?include_done=maybe", h.ActionItems)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReportPDFAttachment(t *testing.T) {
	h := testHandler(sampleGroups(), stubActionItems{})
	w := serve(t, h, http.MethodGet, "/report.pdf?month=2025-01", h.ReportPDF)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "TRIP_DASHBOARD_2025-01.pdf")
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}
