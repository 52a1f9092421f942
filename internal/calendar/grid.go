package calendar

import (
	"fmt"
	"time"
)

// GridSize is six Sunday-first weeks, regardless of how many weeks the
// month actually touches.
const GridSize = 42

// CalendarDay is one cell of the month view.
type CalendarDay struct {
	DayNumber      int
	IsCurrentMonth bool
	Date           Date
}

// Grid is the fixed 42-cell month view.
type Grid [GridSize]CalendarDay

// BuildGrid lays out year/month as six Sunday-first weeks: the tail of the
// previous month, every day of the month, then the head of the next month.
func BuildGrid(year int, month time.Month) (Grid, error) {
	var g Grid

	if month < time.January || month > time.December || year < MinYear || year > MaxYear {
		return g, &InvalidCalendarPeriodError{Year: year, Month: month}
	}

	firstWeekday := int(Weekday(year, month, 1))
	daysInMonth := DaysInMonth(year, month)
	prevYear, prevMonth := PrevMonth(year, month)
	nextYear, nextMonth := NextMonth(year, month)
	daysInPrevMonth := DaysInMonth(prevYear, prevMonth)

	trailing := GridSize - firstWeekday - daysInMonth
	if trailing < 0 {
		panic(fmt.Sprintf("calendar: %04d-%02d does not fit a %d-cell grid (first weekday %d, %d days)",
			year, int(month), GridSize, firstWeekday, daysInMonth))
	}

	i := 0
	for day := daysInPrevMonth - firstWeekday + 1; day <= daysInPrevMonth; day++ {
		g[i] = CalendarDay{DayNumber: day, Date: Date{prevYear, prevMonth, day}}
		i++
	}
	for day := 1; day <= daysInMonth; day++ {
		g[i] = CalendarDay{DayNumber: day, IsCurrentMonth: true, Date: Date{year, month, day}}
		i++
	}
	for day := 1; day <= trailing; day++ {
		g[i] = CalendarDay{DayNumber: day, Date: Date{nextYear, nextMonth, day}}
		i++
	}

	return g, nil
}

// CurrentMonth returns the cells that belong to the displayed month.
func (g Grid) CurrentMonth() []CalendarDay {
	var days []CalendarDay
	for _, day := range g {
		if day.IsCurrentMonth {
			days = append(days, day)
		}
	}
	return days
}

// Index returns the cell position of d, or -1 if d is not on the grid.
func (g Grid) Index(d Date) int {
	for i, day := range g {
		if day.Date == d {
			return i
		}
	}
	return -1
}

func (g Grid) Weeks() [6][7]CalendarDay {
	var weeks [6][7]CalendarDay
	for i, day := range g {
		weeks[i/7][i%7] = day
	}
	return weeks
}

type gridKey struct {
	year  int
	month time.Month
}

// GridCache memoizes BuildGrid per year/month. It is not safe for
// concurrent use; the UI only touches it from Update/View.
type GridCache struct {
	grids map[gridKey]Grid
}

func NewGridCache() *GridCache {
	return &GridCache{grids: make(map[gridKey]Grid)}
}

func (c *GridCache) Get(year int, month time.Month) (Grid, error) {
	key := gridKey{year, month}
	if g, ok := c.grids[key]; ok {
		return g, nil
	}
	g, err := BuildGrid(year, month)
	if err != nil {
		return g, err
	}
	c.grids[key] = g
	return g, nil
}
