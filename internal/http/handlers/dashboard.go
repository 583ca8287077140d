package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tripboard/internal/domain"
	"tripboard/internal/http/middleware"
	"tripboard/internal/services"
	"tripboard/internal/utils"
)

// DashboardHandler serves the derived dashboard views.
type DashboardHandler struct {
	Service         services.DashboardService
	MaxTripsPerCell int
}

func (h DashboardHandler) service(c *gin.Context) services.DashboardService {
	return h.Service.WithRequestID(middleware.GetRequestID(c))
}

// GET /api/dashboard/summary
func (h DashboardHandler) Summary(c *gin.Context) {
	svc := h.service(c)
	snap, err := svc.Summary(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSummaryDTO(snap.Stats, snap.GeneratedAt))
}

// GET /api/dashboard/calendar?month=YYYY-MM&max=N
func (h DashboardHandler) Calendar(c *gin.Context) {
	svc := h.service(c)
	ref, err := monthParam(c, svc.Now())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	maxPerCell, err := maxParam(c, h.MaxTripsPerCell)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	weeks, err := svc.Calendar(c.Request.Context(), ref, maxPerCell)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCalendarDTO(ref, svc.WeekStart, maxPerCell, weeks))
}

// GET /api/dashboard/action-items?include_done=true
func (h DashboardHandler) ActionItems(c *gin.Context) {
	includeDone := false
	if raw := strings.TrimSpace(c.Query("include_done")); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			RespondDomainError(c, domain.ValidationError{Field: "include_done", Msg: "must be true or false", Err: err})
			return
		}
		includeDone = v
	}

	items, err := h.service(c).ActionItems(c.Request.Context(), includeDone)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toActionItemDTOs(items))
}

// GET /api/dashboard/report.pdf?month=YYYY-MM
func (h DashboardHandler) ReportPDF(c *gin.Context) {
	svc := h.service(c)
	ref, err := monthParam(c, svc.Now())
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	report := services.ReportService{Dashboard: svc, MaxPerCell: h.MaxTripsPerCell}
	pdf, filename, err := report.MonthReport(c.Request.Context(), ref)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// monthParam reads ?month=YYYY-MM, defaulting to the month of now.
func monthParam(c *gin.Context, now time.Time) (time.Time, error) {
	raw := strings.TrimSpace(c.Query("month"))
	if raw == "" {
		y, m, _ := now.Date()
		return time.Date(y, m, 1, 0, 0, 0, 0, now.Location()), nil
	}
	ref, err := utils.ParseMonth(raw, now.Location())
	if err != nil {
		return time.Time{}, domain.ValidationError{Field: "month", Msg: "month must be YYYY-MM", Err: err}
	}
	return ref, nil
}

// maxParam reads ?max=N, defaulting to def. 0 stores no trips per cell and a
// negative value keeps them all.
func maxParam(c *gin.Context, def int) (int, error) {
	raw := strings.TrimSpace(c.Query("max"))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.ValidationError{Field: "max", Msg: "max must be an integer", Err: err}
	}
	return n, nil
}
