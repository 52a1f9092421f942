package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var helpEntries = []struct {
	action string
	text   string
}{
	{"prev_day", "Previous day"},
	{"next_day", "Next day"},
	{"prev_week", "Previous week"},
	{"next_week", "Next week"},
	{"prev_month", "Previous month"},
	{"next_month", "Next month"},
	{"today", "Go to today"},
	{"goto_date", "Go to date or month"},
	{"clear_selection", "Clear selection"},
	{"refresh", "Reload events"},
	{"legend", "Toggle legend"},
	{"help", "Toggle help"},
	{"quit", "Quit"},
}

func (m *Model) viewHelp() string {
	help := []string{
		m.styles.Header.Render("monthcal Help"),
		"",
	}

	for _, entry := range helpEntries {
		keys := strings.Join(m.config.KeysFor(entry.action), "/")
		if keys == "" {
			continue
		}
		help = append(help, m.styles.Help.Render(fmt.Sprintf("  %-16s - %s", keys, entry.text)))
	}

	help = append(help,
		"",
		m.styles.Normal.Render("Days marked ! have overlapping events."),
		"",
		m.styles.Help.Render("Press any key to return..."),
	)

	return lipgloss.JoinVertical(lipgloss.Left, help...)
}

func (m *Model) viewGoto() string {
	var sections []string

	sections = append(sections, m.styles.Header.Render("Go To Date"))
	sections = append(sections, "")
	sections = append(sections, m.styles.Normal.Render("Enter a date or month (e.g. 'tomorrow', '2025-10-15', 'Oct 2025'):"))

	input := m.inputBuffer
	if m.cursorPos < len(input) {
		input = input[:m.cursorPos] + "█" + input[m.cursorPos:]
	} else {
		input = input + "█"
	}
	sections = append(sections, m.styles.Selected.Render(input))
	sections = append(sections, "")
	sections = append(sections, m.styles.Help.Render("Enter to jump, Esc to cancel"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderStatusBar() string {
	focus := m.nav.Today()
	if d, ok := m.nav.SelectedDate(); ok {
		focus = d
	}
	left := fmt.Sprintf(" %s | Events: %d",
		focus.Time(time.UTC).Format("Jan 2, 2006"),
		len(m.events))

	right := "? for help | q to quit"

	if m.message != "" {
		right = m.styles.Message.Render(m.message)
	}

	width := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if width < 0 {
		width = 0
	}

	middle := strings.Repeat(" ", width)

	return m.styles.Help.Render(left + middle + right)
}
