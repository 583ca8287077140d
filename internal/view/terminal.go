package view

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"tripboard/internal/dashboard"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dayStyle     = lipgloss.NewStyle().Bold(true)
	outsideStyle = lipgloss.NewStyle().Faint(true)
	tripStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	moreStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	cellStyle    = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

const minCellWidth = 8

// RenderMonth draws the grid as bordered day boxes, one row per week.
// width is the inner width of each day box.
func RenderMonth(weeks []dashboard.Week, weekStart time.Weekday, width int) string {
	if len(weeks) == 0 {
		return ""
	}
	if width < minCellWidth {
		width = minCellWidth
	}

	title := weeks[0][0].Date
	for _, c := range weeks[0] {
		if c.InCurrentMonth {
			title = c.Date
			break
		}
	}

	rows := []string{
		headerStyle.Render(title.Format("January 2006")),
		renderWeekdays(weekStart, width),
	}
	for _, w := range weeks {
		rows = append(rows, renderWeek(w, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderWeekdays(weekStart time.Weekday, width int) string {
	names := make([]string, 0, 7)
	// border + padding on each side of a cell
	box := lipgloss.NewStyle().Width(width + 4).Align(lipgloss.Center)
	for i := 0; i < 7; i++ {
		d := time.Weekday((int(weekStart) + i) % 7)
		names = append(names, box.Render(headerStyle.Render(d.String()[:3])))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, names...)
}

func renderWeek(w dashboard.Week, width int) string {
	height := 1
	for _, c := range w {
		if h := len(cellLines(c, width)); h > height {
			height = h
		}
	}
	cells := make([]string, 0, len(w))
	for _, c := range w {
		style := cellStyle.Width(width + 2).Height(height)
		cells = append(cells, style.Render(strings.Join(cellLines(c, width), "\n")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func cellLines(c dashboard.CalendarCell, width int) []string {
	num := strconv.Itoa(c.Date.Day())
	if !c.InCurrentMonth {
		return []string{outsideStyle.Render(num)}
	}
	lines := []string{dayStyle.Render(num)}
	for _, t := range c.Trips {
		lines = append(lines, tripStyle.Render(truncate(t.DisplayName(), width)))
	}
	if c.Overflow > 0 {
		lines = append(lines, moreStyle.Render("+"+strconv.Itoa(c.Overflow)+" more"))
	}
	return lines
}

func truncate(s string, width int) string {
	return ansi.Truncate(strings.TrimSpace(s), width, "…")
}
