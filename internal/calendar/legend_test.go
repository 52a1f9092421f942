package calendar

import (
	"reflect"
	"testing"
)

func TestCategories(t *testing.T) {
	mk := func(title, color string) Event {
		e := at("x", 9, 0, 30)
		e.Title = title
		e.Color = color
		return e
	}

	tests := []struct {
		name     string
		events   []Event
		expected []Category
	}{
		{
			name:     "empty",
			events:   nil,
			expected: nil,
		},
		{
			name: "groups by first word and color",
			events: []Event{
				mk("Team Meeting", "#3b82f6"),
				mk("Code Review", "#06b6d4"),
				mk("Team Offsite", "#3b82f6"),
				mk("Team Lunch", "#14b8a6"),
			},
			expected: []Category{
				{Label: "Team", Color: "#3b82f6", Count: 2},
				{Label: "Code", Color: "#06b6d4", Count: 1},
				{Label: "Team", Color: "#14b8a6", Count: 1},
			},
		},
		{
			name:     "blank title",
			events:   []Event{mk("   ", ""), mk("", "")},
			expected: []Category{{Label: "", Color: "", Count: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Categories(tt.events); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Categories() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}
