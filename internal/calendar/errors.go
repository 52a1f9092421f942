package calendar

import (
	"fmt"
	"time"
)

// ValidationError reports a malformed event field at the point it is read
// into the working set.
type ValidationError struct {
	EventID string
	Field   string
	Value   string
	Reason  string
}

func (e *ValidationError) Error() string {
	if e.EventID != "" {
		return fmt.Sprintf("invalid event %s: %s %q: %s", e.EventID, e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// InvalidCalendarPeriodError is returned when a grid is requested for a
// year/month pair outside the supported range.
type InvalidCalendarPeriodError struct {
	Year  int
	Month time.Month
}

func (e *InvalidCalendarPeriodError) Error() string {
	return fmt.Sprintf("invalid calendar period: year %d month %d", e.Year, int(e.Month))
}
