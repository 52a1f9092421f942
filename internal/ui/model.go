package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cwarden/monthcal/internal/calendar"
	"github.com/cwarden/monthcal/internal/config"
	"github.com/cwarden/monthcal/internal/events"
	"github.com/cwarden/monthcal/internal/log"
	"github.com/cwarden/monthcal/internal/parser"
)

type ViewMode int

const (
	ViewMonth ViewMode = iota
	ViewHelp
	ViewGoto
)

const (
	sidebarWidth   = 34
	messageTimeout = 3 * time.Second

	outOfRange = "Calendar covers years 1 to 9999 only"
)

type Model struct {
	// Core components
	config *config.Config
	source events.Source
	nav    *calendar.Navigation
	grids  *calendar.GridCache
	parser *parser.DateParser

	// View state
	mode       ViewMode
	events     []calendar.Event
	showLegend bool

	// Goto prompt
	inputBuffer string
	cursorPos   int

	// UI state
	width   int
	height  int
	message string
	msgSeq  int

	// Styles
	styles Styles
}

type Styles struct {
	Normal   lipgloss.Style
	Selected lipgloss.Style
	Today    lipgloss.Style
	Dim      lipgloss.Style
	Weekend  lipgloss.Style
	Header   lipgloss.Style
	Conflict lipgloss.Style
	Help     lipgloss.Style
	Message  lipgloss.Style
	Border   lipgloss.Style
}

// Options tune a Model beyond what the config file carries.
type Options struct {
	// Now is the clock; time.Now when nil.
	Now func() time.Time
	// Start, when non-zero, is the first month shown instead of today's.
	Start calendar.Date
}

func NewModel(cfg *config.Config, source events.Source, opts Options) *Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	p := parser.NewDateParser()
	p.SetNow(now())

	m := &Model{
		config:     cfg,
		source:     source,
		nav:        calendar.NewNavigation(now),
		grids:      calendar.NewGridCache(),
		parser:     p,
		mode:       ViewMonth,
		showLegend: cfg.ShowLegend,
		styles:     StylesFromConfig(cfg.Colors),
	}

	if !opts.Start.IsZero() {
		m.nav.GoToDate(opts.Start)
		m.nav.ClearSelection()
	}

	evs, err := source.Events()
	m.applyEvents(evs, err)

	return m
}

func DefaultStyles() Styles {
	return Styles{
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("235")).
			Background(lipgloss.Color("220")).
			Bold(true),
		Today: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true),
		Dim: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Weekend: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true).
			Underline(true),
		Conflict: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Message: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Background(lipgloss.Color("235")).
			Padding(0, 1),
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")),
	}
}

// StylesFromConfig layers `color` lines from the rc file over the defaults.
func StylesFromConfig(colors map[string]string) Styles {
	s := DefaultStyles()
	for element, spec := range colors {
		switch element {
		case "header":
			s.Header = applyColor(s.Header, spec)
		case "today":
			s.Today = applyColor(s.Today, spec)
		case "selected":
			s.Selected = applyColor(s.Selected, spec)
		case "dim":
			s.Dim = applyColor(s.Dim, spec)
			s.Help = applyColor(s.Help, spec)
		case "conflict":
			s.Conflict = applyColor(s.Conflict, spec)
		case "weekend":
			s.Weekend = applyColor(s.Weekend, spec)
		case "normal":
			s.Normal = applyColor(s.Normal, spec)
		}
	}
	return s
}

func applyColor(style lipgloss.Style, spec string) lipgloss.Style {
	switch spec {
	case "default", "":
		return style
	case "reverse":
		return style.UnsetForeground().UnsetBackground().Reverse(true)
	case "bold":
		return style.Bold(true)
	case "underline":
		return style.Underline(true)
	default:
		return style.Foreground(lipgloss.Color(spec))
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.tickCmd(),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tickMsg:
		if m.config.AutoRefresh {
			return m, tea.Batch(m.loadEventsCmd(), m.tickCmd())
		}
		return m, nil

	case EventsChangedMsg:
		log.Debug("reloading after file change", "file", msg.Path)
		return m, m.loadEventsCmd()

	case eventsLoadedMsg:
		m.applyEvents(msg.events, msg.err)
		if msg.err != nil {
			return m, m.showMessage(fmt.Sprintf("Error loading events: %v", msg.err))
		}
		if msg.manual {
			return m, m.showMessage(fmt.Sprintf("Reloaded %d events", len(m.events)))
		}
		return m, nil

	case messageTimeoutMsg:
		if msg.seq == m.msgSeq {
			m.message = ""
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	switch m.mode {
	case ViewHelp:
		return m.viewHelp()
	case ViewGoto:
		return m.viewGoto()
	default:
		return m.viewMonth()
	}
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ViewGoto:
		return m.handleGotoKeys(msg)
	case ViewHelp:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.mode = ViewMonth
		return m, nil
	}

	action := m.config.KeyBindings[msg.String()]
	switch action {
	case "quit":
		return m, tea.Quit

	case "help":
		m.mode = ViewHelp

	case "refresh":
		return m, m.reloadCmd()

	case "legend":
		m.showLegend = !m.showLegend

	case "goto_date":
		m.mode = ViewGoto
		m.inputBuffer = ""
		m.cursorPos = 0

	case "today":
		m.nav.GoToToday()

	case "clear_selection":
		m.nav.ClearSelection()

	case "next_month":
		if !m.nav.GoToNextMonth() {
			return m, m.showMessage(outOfRange)
		}

	case "prev_month":
		if !m.nav.GoToPreviousMonth() {
			return m, m.showMessage(outOfRange)
		}

	case "next_day":
		return m, m.moveCursor(1)

	case "prev_day":
		return m, m.moveCursor(-1)

	case "next_week":
		return m, m.moveCursor(7)

	case "prev_week":
		return m, m.moveCursor(-7)
	}

	return m, nil
}

// moveCursor shifts the selection by days. With nothing selected the move
// starts from today when it is on screen, otherwise from day 1. Dates in the
// leading and trailing weeks are selected in place; leaving the grid
// altogether brings the new date's month on screen. Dates outside years
// 1-9999 are refused with a status message.
func (m *Model) moveCursor(days int) tea.Cmd {
	anchor, ok := m.nav.SelectedDate()
	if !ok {
		anchor = calendar.NewDate(m.nav.Year, m.nav.Month, 1)
		if today := m.nav.Today(); today.Year == m.nav.Year && today.Month == m.nav.Month {
			anchor = today
		}
	}

	target := anchor.AddDays(days)
	if !target.Valid() {
		return m.showMessage(outOfRange)
	}
	grid, err := m.grids.Get(m.nav.Year, m.nav.Month)
	if err == nil && grid.Index(target) >= 0 {
		m.nav.SelectDate(target)
		return nil
	}
	m.nav.GoToDate(target)
	return nil
}

func (m *Model) handleGotoKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEscape:
		m.mode = ViewMonth
		return m, nil

	case tea.KeyEnter:
		m.mode = ViewMonth
		return m, m.gotoInput(m.inputBuffer)

	case tea.KeyBackspace:
		if m.cursorPos > 0 {
			m.inputBuffer = m.inputBuffer[:m.cursorPos-1] + m.inputBuffer[m.cursorPos:]
			m.cursorPos--
		}

	case tea.KeyLeft:
		if m.cursorPos > 0 {
			m.cursorPos--
		}

	case tea.KeyRight:
		if m.cursorPos < len(m.inputBuffer) {
			m.cursorPos++
		}

	case tea.KeySpace:
		m.insert(" ")

	case tea.KeyRunes:
		m.insert(string(msg.Runes))
	}

	return m, nil
}

func (m *Model) insert(s string) {
	m.inputBuffer = m.inputBuffer[:m.cursorPos] + s + m.inputBuffer[m.cursorPos:]
	m.cursorPos += len(s)
}

// gotoInput jumps to a typed date, or failing that to a typed month.
func (m *Model) gotoInput(input string) tea.Cmd {
	if input == "" {
		return nil
	}
	m.parser.SetNow(m.nowTime())

	if d, err := m.parser.ParseDate(input); err == nil {
		m.nav.GoToDate(d)
		return nil
	}

	year, month, err := m.parser.ParseMonth(input)
	if err != nil {
		return m.showMessage(fmt.Sprintf("Cannot parse %q", input))
	}
	if _, err := m.grids.Get(year, month); err != nil {
		return m.showMessage(err.Error())
	}
	m.nav.GoToDate(calendar.NewDate(year, month, 1))
	m.nav.ClearSelection()
	return nil
}

func (m *Model) nowTime() time.Time {
	if m.nav.Now != nil {
		return m.nav.Now()
	}
	return time.Now()
}

func (m *Model) applyEvents(evs []calendar.Event, err error) {
	if err != nil {
		log.Error("loading events", err)
		if len(evs) == 0 {
			return
		}
	}
	m.events = evs
}

func (m *Model) loadEventsCmd() tea.Cmd {
	source := m.source
	return func() tea.Msg {
		evs, err := source.Events()
		return eventsLoadedMsg{events: evs, err: err}
	}
}

func (m *Model) reloadCmd() tea.Cmd {
	source := m.source
	return func() tea.Msg {
		evs, err := source.Events()
		return eventsLoadedMsg{events: evs, err: err, manual: true}
	}
}

func (m *Model) showMessage(msg string) tea.Cmd {
	m.message = msg
	m.msgSeq++
	seq := m.msgSeq
	return tea.Tick(messageTimeout, func(time.Time) tea.Msg {
		return messageTimeoutMsg{seq: seq}
	})
}

func (m *Model) tickCmd() tea.Cmd {
	if !m.config.AutoRefresh {
		return nil
	}
	return tea.Tick(m.config.RefreshRate, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// Events returns the working set currently displayed.
func (m *Model) Events() []calendar.Event {
	return m.events
}

// Navigation exposes the displayed month and selection.
func (m *Model) Navigation() *calendar.Navigation {
	return m.nav
}

// EventsChangedMsg tells the model an event file changed on disk.
type EventsChangedMsg struct {
	Path string
}

// Message types
type tickMsg struct{}
type messageTimeoutMsg struct{ seq int }
type eventsLoadedMsg struct {
	events []calendar.Event
	err    error
	manual bool
}
