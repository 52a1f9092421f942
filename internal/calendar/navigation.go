package calendar

import "time"

// Navigation holds the displayed month and the optional selected date.
// Only the methods below change it.
type Navigation struct {
	Year     int
	Month    time.Month
	selected *Date

	// Now is the clock used by GoToToday; time.Now when nil.
	Now func() time.Time
}

// NewNavigation starts on the month containing today.
func NewNavigation(now func() time.Time) *Navigation {
	n := &Navigation{Now: now}
	n.GoToToday()
	return n
}

func (n *Navigation) Today() Date {
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}
	return DateOf(now())
}

// GoToPreviousMonth steps back one month and clears the selection. It
// reports false, changing nothing, when that would leave years 1-9999.
func (n *Navigation) GoToPreviousMonth() bool {
	return n.step(PrevMonth(n.Year, n.Month))
}

// GoToNextMonth is the forward counterpart of GoToPreviousMonth.
func (n *Navigation) GoToNextMonth() bool {
	return n.step(NextMonth(n.Year, n.Month))
}

func (n *Navigation) step(year int, month time.Month) bool {
	if year < MinYear || year > MaxYear {
		return false
	}
	n.Year, n.Month = year, month
	n.selected = nil
	return true
}

func (n *Navigation) GoToToday() {
	today := n.Today()
	n.Year, n.Month = today.Year, today.Month
	n.selected = nil
}

// SelectDate never moves the displayed month, even when d lies in the
// leading or trailing weeks of the grid.
func (n *Navigation) SelectDate(d Date) {
	n.selected = &d
}

// GoToDate shows the month containing d and selects d.
func (n *Navigation) GoToDate(d Date) {
	n.Year, n.Month = d.Year, d.Month
	n.SelectDate(d)
}

func (n *Navigation) ClearSelection() {
	n.selected = nil
}

func (n *Navigation) SelectedDate() (Date, bool) {
	if n.selected == nil {
		return Date{}, false
	}
	return *n.selected, true
}
