package events

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/cwarden/monthcal/internal/calendar"
)

// ID is an event identifier as found in event files. Files may spell it as
// a number or a string; both decode to the same text.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("event id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id *ID) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: event id must be a scalar", value.Line)
	}
	*id = ID(value.Value)
	return nil
}

// Record is the on-disk shape of one event.
type Record struct {
	ID       ID     `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Date     string `json:"date" yaml:"date"`
	Time     string `json:"time" yaml:"time"`
	Duration int    `json:"duration" yaml:"duration"`
	Color    string `json:"color" yaml:"color"`
}

// Event validates r and converts it into a calendar.Event. Errors are
// *calendar.ValidationError carrying the record's ID.
func (r Record) Event() (calendar.Event, error) {
	id := string(r.ID)

	date, err := calendar.ParseDate(r.Date)
	if err != nil {
		return calendar.Event{}, withEventID(err, id)
	}

	start, err := calendar.ParseTimeOfDay(r.Time)
	if err != nil {
		return calendar.Event{}, withEventID(err, id)
	}

	return calendar.NewEvent(id, r.Title, date, start, r.Duration, r.Color)
}

// RecordOf is the inverse of Record.Event.
func RecordOf(e calendar.Event) Record {
	return Record{
		ID:       ID(e.ID),
		Title:    e.Title,
		Date:     e.Date.String(),
		Time:     e.Start.String(),
		Duration: e.DurationMinutes,
		Color:    e.Color,
	}
}

func withEventID(err error, id string) error {
	var verr *calendar.ValidationError
	if errors.As(err, &verr) && verr.EventID == "" {
		verr.EventID = id
	}
	return err
}

// convert turns records into events, stopping at the first invalid one.
func convert(records []Record) ([]calendar.Event, error) {
	out := make([]calendar.Event, 0, len(records))
	for i, r := range records {
		e, err := r.Event()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		out = append(out, e)
	}
	return out, nil
}
