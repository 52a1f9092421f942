package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year     int
		month    time.Month
		expected int
	}{
		{2025, time.January, 31},
		{2025, time.February, 28},
		{2024, time.February, 29},
		{2000, time.February, 29},
		{1900, time.February, 28},
		{2100, time.February, 28},
		{2025, time.April, 30},
		{2025, time.September, 30},
		{2025, time.December, 31},
		{2025, 13, 0},
	}

	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.expected {
			t.Errorf("DaysInMonth(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.expected)
		}
	}
}

func TestWeekdayMatchesTimePackage(t *testing.T) {
	d := NewDate(1600, time.January, 1)
	for i := 0; i < 200000; i += 13 {
		day := d.AddDays(13)
		ref := time.Date(day.Year, day.Month, day.Day, 0, 0, 0, 0, time.UTC)
		if got := day.Weekday(); got != ref.Weekday() {
			t.Fatalf("Weekday(%s) = %v, want %v", day, got, ref.Weekday())
		}
		d = day
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		wantErr  bool
	}{
		{input: "2025-10-15", expected: NewDate(2025, time.October, 15)},
		{input: " 2024-02-29 ", expected: NewDate(2024, time.February, 29)},
		{input: "2025-02-29", wantErr: true},
		{input: "2025-13-01", wantErr: true},
		{input: "2025-00-10", wantErr: true},
		{input: "2025-1-5", wantErr: true},
		{input: "10/15/2025", wantErr: true},
		{input: "", wantErr: true},
		{input: "yyyy-mm-dd", wantErr: true},
		{input: "+202-10-05", wantErr: true},
		{input: "2025-+1-05", wantErr: true},
		{input: "2025-10--5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("ParseDate(%q) error = %v, want ValidationError", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseDate(%q) = %s, want %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input    string
		expected TimeOfDay
		wantErr  bool
	}{
		{input: "00:00", expected: TimeOfDay{0, 0}},
		{input: "10:30", expected: TimeOfDay{10, 30}},
		{input: "23:59", expected: TimeOfDay{23, 59}},
		{input: "24:00", wantErr: true},
		{input: "12:60", wantErr: true},
		{input: "9:30", wantErr: true},
		{input: "noon", wantErr: true},
		{input: "+1:30", wantErr: true},
		{input: "10:-5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseTimeOfDay(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTimeOfDay(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseTimeOfDay(%q) = %v, want %v", tt.input, got, tt.expected)
			}
			if got.String() != tt.input {
				t.Errorf("String() = %q, want %q", got.String(), tt.input)
			}
		})
	}
}

func TestDateAddDaysAcrossYears(t *testing.T) {
	tests := []struct {
		start    Date
		n        int
		expected Date
	}{
		{NewDate(2025, time.December, 31), 1, NewDate(2026, time.January, 1)},
		{NewDate(2026, time.January, 1), -1, NewDate(2025, time.December, 31)},
		{NewDate(2024, time.February, 28), 1, NewDate(2024, time.February, 29)},
		{NewDate(2025, time.February, 28), 1, NewDate(2025, time.March, 1)},
		{NewDate(2025, time.March, 1), -1, NewDate(2025, time.February, 28)},
		{NewDate(2025, time.October, 15), 0, NewDate(2025, time.October, 15)},
		{NewDate(2025, time.October, 15), 30, NewDate(2025, time.November, 14)},
	}

	for _, tt := range tests {
		if got := tt.start.AddDays(tt.n); got != tt.expected {
			t.Errorf("%s.AddDays(%d) = %s, want %s", tt.start, tt.n, got, tt.expected)
		}
	}
}

func TestDateBefore(t *testing.T) {
	a := NewDate(2025, time.October, 15)
	if !a.Before(NewDate(2025, time.October, 16)) || !a.Before(NewDate(2025, time.November, 1)) || !a.Before(NewDate(2026, time.January, 1)) {
		t.Error("Before() should be true for later dates")
	}
	if a.Before(a) || a.Before(NewDate(2024, time.December, 31)) {
		t.Error("Before() should be false for equal or earlier dates")
	}
}

func TestDateString(t *testing.T) {
	if got := NewDate(987, time.March, 4).String(); got != "0987-03-04" {
		t.Errorf("String() = %q, want %q", got, "0987-03-04")
	}
}
