package events

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/cwarden/monthcal/internal/calendar"
	"github.com/cwarden/monthcal/internal/log"
)

const (
	propDuration = ical.ComponentProperty("DURATION")
	propColor    = ical.ComponentProperty("COLOR")

	productID = "-//monthcal//monthcal//EN"

	minutesPerDay = 24 * 60
)

// DecodeICS reads the VEVENTs of an iCalendar stream. DTSTART is taken as
// wall-clock digits; TZID and the UTC suffix are ignored. All-day entries
// are skipped. Entries that end on a later day are rejected.
func DecodeICS(r io.Reader) ([]calendar.Event, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse iCalendar: %w", err)
	}

	var out []calendar.Event
	for _, ve := range cal.Events() {
		e, skip, err := eventFromVEvent(ve)
		if err != nil {
			return nil, err
		}
		if skip {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func eventFromVEvent(ve *ical.VEvent) (calendar.Event, bool, error) {
	var id, title, color string
	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil {
		id = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		title = p.Value
	}
	if p := ve.GetProperty(propColor); p != nil {
		color = p.Value
	}

	dtStart := ve.GetProperty(ical.ComponentPropertyDtStart)
	if dtStart == nil {
		return calendar.Event{}, false, &calendar.ValidationError{EventID: id, Field: "DTSTART", Reason: "missing"}
	}
	if isDateOnly(dtStart.Value, dtStart.ICalParameters) {
		log.Info("skipping all-day event", "uid", id, "summary", title)
		return calendar.Event{}, true, nil
	}

	date, start, err := parseICSDateTime(dtStart.Value)
	if err != nil {
		return calendar.Event{}, false, &calendar.ValidationError{EventID: id, Field: "DTSTART", Value: dtStart.Value, Reason: err.Error()}
	}

	duration := 0
	if p := ve.GetProperty(ical.ComponentPropertyDtEnd); p != nil {
		duration, err = minutesUntil(date, start, p.Value)
		if err != nil {
			return calendar.Event{}, false, &calendar.ValidationError{EventID: id, Field: "DTEND", Value: p.Value, Reason: err.Error()}
		}
	} else if p := ve.GetProperty(propDuration); p != nil {
		duration, err = parseICSDuration(p.Value)
		if err != nil {
			return calendar.Event{}, false, &calendar.ValidationError{EventID: id, Field: "DURATION", Value: p.Value, Reason: err.Error()}
		}
		if start.Minutes()+duration > minutesPerDay {
			return calendar.Event{}, false, &calendar.ValidationError{EventID: id, Field: "DURATION", Value: p.Value, Reason: "multi-day events are not supported"}
		}
	}

	e, err := calendar.NewEvent(id, title, date, start, duration, color)
	return e, false, err
}

func isDateOnly(value string, params map[string][]string) bool {
	if vs, ok := params["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
		return true
	}
	return !strings.Contains(value, "T")
}

// parseICSDateTime accepts YYYYMMDDTHHMMSS with an optional Z suffix.
func parseICSDateTime(v string) (calendar.Date, calendar.TimeOfDay, error) {
	v = strings.TrimSuffix(strings.TrimSpace(v), "Z")
	t, err := time.Parse("20060102T150405", v)
	if err != nil {
		return calendar.Date{}, calendar.TimeOfDay{}, fmt.Errorf("expected YYYYMMDDTHHMMSS")
	}
	return calendar.DateOf(t), calendar.TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// minutesUntil measures from date/start to the DTEND value. An end at
// midnight of the following day still counts as the same day.
func minutesUntil(date calendar.Date, start calendar.TimeOfDay, end string) (int, error) {
	endDate, endTime, err := parseICSDateTime(end)
	if err != nil {
		return 0, err
	}

	endMinutes := endTime.Minutes()
	switch {
	case endDate == date:
	case endDate == date.AddDays(1) && endMinutes == 0:
		endMinutes = minutesPerDay
	default:
		return 0, fmt.Errorf("multi-day events are not supported")
	}

	if endMinutes < start.Minutes() {
		return 0, fmt.Errorf("ends before it starts")
	}
	return endMinutes - start.Minutes(), nil
}

// parseICSDuration reads an RFC 5545 duration such as PT1H30M or P1W into
// whole minutes. Seconds are truncated.
func parseICSDuration(v string) (int, error) {
	v = strings.ToUpper(strings.TrimSpace(v))
	v = strings.TrimPrefix(v, "+")
	if strings.HasPrefix(v, "-") {
		return 0, fmt.Errorf("negative duration")
	}
	if !strings.HasPrefix(v, "P") || len(v) < 3 {
		return 0, fmt.Errorf("expected an ISO 8601 duration")
	}

	seconds := 0
	inTime := false
	num := ""
	for _, r := range v[1:] {
		switch {
		case r >= '0' && r <= '9':
			num += string(r)
			continue
		case r == 'T':
			if inTime || num != "" {
				return 0, fmt.Errorf("misplaced T")
			}
			inTime = true
			continue
		}

		if num == "" {
			return 0, fmt.Errorf("missing number before %c", r)
		}
		n, err := strconv.Atoi(num)
		if err != nil {
			return 0, err
		}
		num = ""

		switch {
		case r == 'W' && !inTime:
			seconds += n * 7 * 24 * 3600
		case r == 'D' && !inTime:
			seconds += n * 24 * 3600
		case r == 'H' && inTime:
			seconds += n * 3600
		case r == 'M' && inTime:
			seconds += n * 60
		case r == 'S' && inTime:
			seconds += n
		default:
			return 0, fmt.Errorf("unexpected designator %c", r)
		}
	}
	if num != "" {
		return 0, fmt.Errorf("trailing number without designator")
	}
	return seconds / 60, nil
}

// WriteICS exports events as an iCalendar document with floating
// (zone-less) start times.
func WriteICS(w io.Writer, evs []calendar.Event, stamp time.Time) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	for _, e := range evs {
		ve := cal.AddEvent(e.ID)
		ve.SetDtStampTime(stamp)
		ve.SetSummary(e.Title)
		ve.SetProperty(ical.ComponentPropertyDtStart, e.StartTime(time.UTC).Format("20060102T150405"))
		ve.SetProperty(propDuration, fmt.Sprintf("PT%dM", e.DurationMinutes))
		if e.Color != "" {
			ve.SetProperty(propColor, e.Color)
		}
	}

	_, err := io.WriteString(w, cal.Serialize())
	return err
}
