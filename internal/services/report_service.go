package services

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/phpdave11/gofpdf"

	"tripboard/internal/dashboard"
	"tripboard/internal/domain/models"
	"tripboard/internal/utils"
	"tripboard/internal/view"
)

// ReportService renders printable dashboard exports.
type ReportService struct {
	Dashboard  DashboardService
	MaxPerCell int
}

// MonthReport renders the summary as of now plus the month grid around ref,
// both taken from one snapshot.
func (s ReportService) MonthReport(ctx context.Context, ref time.Time) ([]byte, string, error) {
	snap, err := s.Dashboard.MonthSnapshot(ctx, ref, s.MaxPerCell)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.Dashboard.RequestID, "report", "month_pdf", "month="+utils.FormatMonth(ref))
	return buildMonthReportPDF(ref, snap.GeneratedAt, snap.Stats, snap.Weeks, s.Dashboard.WeekStart)
}

const (
	gridCellHeight float64 = 18.0
	gridLineHeight float64 = 3.6
	// day number line plus trip lines that fit in one grid cell
	gridCellLines = 4
)

func buildMonthReportPDF(ref, now time.Time, st dashboard.Stats, weeks []dashboard.Week, weekStart time.Weekday) ([]byte, string, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Trip Dashboard "+ref.Format("January 2006"), false)
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(false, 10)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr("Trip Dashboard - "+ref.Format("January 2006")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.Cell(0, 5, "Generated "+now.Format("2006-01-02 15:04"))
	pdf.Ln(8)
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont("Helvetica", "", 11)
	lines := []string{
		fmt.Sprintf("Trips           : %d", st.TotalTrips),
		fmt.Sprintf("Active trips    : %d", len(st.ActiveTrips)),
		fmt.Sprintf("Total travelers : %d", st.TotalTravelers),
		fmt.Sprintf("Upcoming        : %d", len(st.UpcomingDepartures)),
		fmt.Sprintf("Pending contract: %d (%.0f%%), %d departing within %d days",
			len(st.PendingContracts), st.PendingContractPercent(), len(st.UrgentPendingContracts), dashboard.ContractUrgencyWindowDays),
	}
	for _, s := range lines {
		pdf.Cell(0, 6, s)
		pdf.Ln(6)
	}
	writeStatusLegend(pdf, st)
	pdf.Ln(4)

	writeGrid(pdf, tr, weeks, weekStart)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("TRIP_DASHBOARD_%s.pdf", utils.FormatMonth(ref))
	return buf.Bytes(), filename, nil
}

func writeStatusLegend(pdf *gofpdf.Fpdf, st dashboard.Stats) {
	statuses := append(append([]models.TripStatus{}, models.KnownTripStatuses...), models.TripStatusOther)
	for _, status := range statuses {
		meta := view.StatusMeta(status)
		r, g, b := hexRGB(meta.Color)
		x, y := pdf.GetXY()
		pdf.SetFillColor(r, g, b)
		pdf.Rect(x, y+1.5, 3, 3, "F")
		pdf.SetX(x + 4)
		pdf.Cell(36, 6, fmt.Sprintf("%s: %d", meta.Label, st.StatusCounts[status]))
	}
	pdf.Ln(6)
}

func writeGrid(pdf *gofpdf.Fpdf, tr func(string) string, weeks []dashboard.Week, weekStart time.Weekday) {
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colW := (pageW - left - right) / 7

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 236, 245)
	for i := 0; i < 7; i++ {
		d := time.Weekday((int(weekStart) + i) % 7)
		pdf.CellFormat(colW, 7, d.String()[:3], "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, w := range weeks {
		y := pdf.GetY()
		for i, c := range w {
			x := left + float64(i)*colW
			if c.InCurrentMonth {
				pdf.SetFillColor(255, 255, 255)
			} else {
				pdf.SetFillColor(242, 242, 242)
			}
			pdf.Rect(x, y, colW, gridCellHeight, "FD")
			writeCell(pdf, tr, c, x, y, colW)
		}
		pdf.SetXY(left, y+gridCellHeight)
	}
}

func writeCell(pdf *gofpdf.Fpdf, tr func(string) string, c dashboard.CalendarCell, x, y, w float64) {
	if c.InCurrentMonth {
		pdf.SetTextColor(0, 0, 0)
	} else {
		pdf.SetTextColor(150, 150, 150)
	}
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetXY(x+1, y+1)
	pdf.Cell(w-2, gridLineHeight, strconv.Itoa(c.Date.Day()))

	pdf.SetFont("Helvetica", "", 7)
	maxLines := gridCellLines - 1
	shown := len(c.Trips)
	if shown > maxLines || (c.Overflow > 0 && shown == maxLines) {
		shown = maxLines - 1
	}
	for i, t := range c.Trips[:shown] {
		pdf.SetXY(x+1, y+1+float64(i+1)*gridLineHeight)
		pdf.Cell(w-2, gridLineHeight, fitText(pdf, tr(t.DisplayName()), w-2))
	}
	if hidden := c.TotalTrips() - shown; hidden > 0 {
		pdf.SetTextColor(217, 119, 6)
		pdf.SetXY(x+1, y+1+float64(shown+1)*gridLineHeight)
		pdf.Cell(w-2, gridLineHeight, fmt.Sprintf("+%d more", hidden))
	}
	pdf.SetTextColor(0, 0, 0)
}

// fitText shortens s until it fits in width at the current font.
func fitText(pdf *gofpdf.Fpdf, s string, width float64) string {
	s = strings.TrimSpace(s)
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && pdf.GetStringWidth(string(r)+"...") > width {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}

// hexRGB parses "#RRGGBB"; anything else yields mid grey.
func hexRGB(hex string) (int, int, int) {
	c, err := colorful.Hex(strings.TrimSpace(hex))
	if err != nil {
		return 128, 128, 128
	}
	r, g, b := c.RGB255()
	return int(r), int(g), int(b)
}
