package calendar

import "time"

// EventsOnDate returns the events scheduled on d, keeping their relative order.
func EventsOnDate(events []Event, d Date) []Event {
	var out []Event
	for _, e := range events {
		if e.Date == d {
			out = append(out, e)
		}
	}
	return out
}

// EventsInMonth counts the events falling anywhere in year/month.
func EventsInMonth(events []Event, year int, month time.Month) int {
	n := 0
	for _, e := range events {
		if e.Date.Year == year && e.Date.Month == month {
			n++
		}
	}
	return n
}
