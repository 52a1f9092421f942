package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/cwarden/monthcal/internal/calendar"
)

var weekdayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func (m *Model) viewMonth() string {
	gridWidth := m.width - sidebarWidth - 1
	if gridWidth < 7*6 {
		gridWidth = 7 * 6
	}

	main := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderMonthGrid(gridWidth),
		" ",
		m.renderSidebar(sidebarWidth),
	)

	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderStatusBar())
}

// renderMonthGrid draws the header, the weekday row and the six weeks.
func (m *Model) renderMonthGrid(width int) string {
	grid, err := m.grids.Get(m.nav.Year, m.nav.Month)
	if err != nil {
		return m.styles.Conflict.Render(err.Error())
	}

	cellWidth := width / 7
	var lines []string

	title := fmt.Sprintf("%s %d", m.nav.Month, m.nav.Year)
	count := calendar.EventsInMonth(m.events, m.nav.Year, m.nav.Month)
	summary := fmt.Sprintf("%d events this month", count)
	if count == 1 {
		summary = "1 event this month"
	}
	gap := width - lipgloss.Width(title) - lipgloss.Width(summary)
	if gap < 1 {
		gap = 1
	}
	lines = append(lines, m.styles.Header.Render(title)+strings.Repeat(" ", gap)+m.styles.Help.Render(summary))
	lines = append(lines, "")

	var header []string
	for d, name := range weekdayNames {
		style := m.styles.Normal
		if d == int(time.Sunday) || d == int(time.Saturday) {
			style = m.styles.Weekend
		}
		header = append(header, style.Width(cellWidth).Render(name))
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, header...))

	for _, week := range grid.Weeks() {
		var cells []string
		for _, day := range week {
			cells = append(cells, m.renderCell(day, cellWidth))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderCell draws one day: its number, a conflict marker and as many event
// titles as max_cell_events allows.
func (m *Model) renderCell(day calendar.CalendarDay, width int) string {
	inner := width - 1
	if inner < 3 {
		inner = 3
	}
	dayEvents := calendar.EventsOnDate(m.events, day.Date)

	number := fmt.Sprintf("%2d", day.DayNumber)
	selected, hasSelection := m.nav.SelectedDate()
	switch {
	case hasSelection && selected == day.Date:
		number = m.styles.Selected.Render(number)
	case day.Date == m.nav.Today():
		number = m.styles.Today.Render(number)
	case !day.IsCurrentMonth:
		number = m.styles.Dim.Render(number)
	default:
		number = m.styles.Normal.Render(number)
	}
	if calendar.HasConflict(dayEvents) {
		number += " " + m.styles.Conflict.Render("!")
	}

	lines := []string{number}
	limit := m.config.MaxCellEvents
	for i, e := range dayEvents {
		if i == limit {
			break
		}
		if i == limit-1 && len(dayEvents) > limit {
			lines = append(lines, m.styles.Help.Render(fmt.Sprintf("+%d more", len(dayEvents)-i)))
			break
		}
		lines = append(lines, m.eventLabel(e, inner, day.IsCurrentMonth))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(1 + limit).
		Render(strings.Join(lines, "\n"))
}

func (m *Model) eventLabel(e calendar.Event, width int, inMonth bool) string {
	label := truncate.StringWithTail(e.Title, uint(width), "…")
	if !inMonth {
		return m.styles.Dim.Render(label)
	}
	return eventStyle(e).Render(label)
}

// eventStyle colors an event with its own color tag when it has one.
func eventStyle(e calendar.Event) lipgloss.Style {
	if e.Color == "" {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(e.Color))
}

func (m *Model) renderSidebar(width int) string {
	inner := width - 4
	var lines []string

	selected, ok := m.nav.SelectedDate()
	if !ok {
		lines = append(lines,
			m.styles.Header.Render("Select a Date"),
			"",
			m.styles.Help.Render(wordwrap.String("Move with h/j/k/l or the arrow keys to see a day's events.", inner)),
		)
	} else {
		lines = append(lines, m.renderDayDetail(selected, inner)...)
	}

	if m.showLegend {
		if legend := m.renderLegend(inner); legend != "" {
			lines = append(lines, "", legend)
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return m.styles.Border.Width(width - 2).Render(content)
}

func (m *Model) renderDayDetail(d calendar.Date, width int) []string {
	heading := d.Time(time.UTC).Format(m.config.DateFormat)
	lines := []string{m.styles.Header.Render(wordwrap.String(heading, width))}

	dayEvents := calendar.EventsOnDate(m.events, d)
	if len(dayEvents) == 0 {
		return append(lines, "", m.styles.Help.Render("No events"))
	}

	marks := calendar.Conflicted(dayEvents)
	if calendar.HasConflict(dayEvents) {
		lines = append(lines, "", m.styles.Conflict.Render("⚠ Time Conflict!"))
	}

	for i, e := range dayEvents {
		lines = append(lines, "")

		when := fmt.Sprintf("%s (%d min)", e.StartTime(time.UTC).Format(m.config.TimeFormat), e.DurationMinutes)
		if marks[i] {
			when += " " + m.styles.Conflict.Render("✗ overlaps")
		}
		lines = append(lines, m.styles.Normal.Render(when))

		bar := eventStyle(e).Render("▌")
		for _, line := range strings.Split(wordwrap.String(e.Title, width-2), "\n") {
			lines = append(lines, bar+" "+line)
		}
	}
	return lines
}

func (m *Model) renderLegend(width int) string {
	cats := calendar.Categories(m.events)
	if len(cats) == 0 {
		return ""
	}

	lines := []string{m.styles.Header.Render("Categories")}
	for _, c := range cats {
		label := c.Label
		if label == "" {
			label = "(untitled)"
		}
		count := fmt.Sprintf(" %d", c.Count)
		label = truncate.StringWithTail(label, uint(max(1, width-2-len(count))), "…")
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color)).Render("■")
		lines = append(lines, swatch+" "+label+m.styles.Help.Render(count))
	}
	return strings.Join(lines, "\n")
}
