package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Event is a single fixed, same-day event. Values are never mutated once
// they enter the working set.
type Event struct {
	ID              string
	Title           string
	Date            Date
	Start           TimeOfDay
	DurationMinutes int
	Color           string
}

// NewEvent validates its inputs before returning an Event.
func NewEvent(id, title string, date Date, start TimeOfDay, durationMinutes int, color string) (Event, error) {
	e := Event{
		ID:              id,
		Title:           title,
		Date:            date,
		Start:           start,
		DurationMinutes: durationMinutes,
		Color:           color,
	}
	if err := e.Validate(); err != nil {
		return Event{}, err
	}
	return e, nil
}

func (e Event) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return &ValidationError{Field: "id", Value: e.ID, Reason: "must not be empty"}
	}
	if !e.Date.Valid() {
		return &ValidationError{EventID: e.ID, Field: "date", Value: e.Date.String(), Reason: "no such calendar day"}
	}
	if !e.Start.Valid() {
		return &ValidationError{EventID: e.ID, Field: "time", Value: e.Start.String(), Reason: "outside 00:00-23:59"}
	}
	if e.DurationMinutes < 0 {
		return &ValidationError{EventID: e.ID, Field: "duration", Value: strconv.Itoa(e.DurationMinutes), Reason: "must not be negative"}
	}
	return nil
}

// Interval returns the half-open minute interval [start, start+duration).
func (e Event) Interval() Interval {
	start := e.Start.Minutes()
	return Interval{Start: start, End: start + e.DurationMinutes}
}

// StartTime places the event on the wall clock of loc. Formatting in
// time.UTC prints the stored digits; zones with DST gaps can shift them.
func (e Event) StartTime(loc *time.Location) time.Time {
	return time.Date(e.Date.Year, e.Date.Month, e.Date.Day, e.Start.Hour, e.Start.Minute, 0, 0, loc)
}

func (e Event) Equals(other Event) bool {
	return e == other
}

func (e Event) String() string {
	return e.GoString()
}

func (e Event) GoString() string {
	return fmt.Sprintf("<[%s] %s @ %s %s//%dm>", e.ID, e.Title, e.Date, e.Start, e.DurationMinutes)
}

// Interval is a half-open range of minutes since midnight.
type Interval struct {
	Start int
	End   int
}

// Overlaps reports whether a and o share at least one minute. Touching
// endpoints do not overlap.
func (a Interval) Overlaps(o Interval) bool {
	return a.Start < o.End && a.End > o.Start
}
