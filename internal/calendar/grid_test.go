package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestBuildGridLengthAndContiguity(t *testing.T) {
	for year := 1999; year <= 2026; year++ {
		for month := time.January; month <= time.December; month++ {
			g, err := BuildGrid(year, month)
			if err != nil {
				t.Fatalf("BuildGrid(%d, %v) unexpected error: %v", year, month, err)
			}

			if len(g) != GridSize {
				t.Fatalf("BuildGrid(%d, %v) has %d cells, want %d", year, month, len(g), GridSize)
			}

			for i := 1; i < len(g); i++ {
				if want := g[i-1].Date.AddDays(1); g[i].Date != want {
					t.Fatalf("BuildGrid(%d, %v) cell %d = %s, want %s", year, month, i, g[i].Date, want)
				}
			}

			if g[0].Date.Weekday() != time.Sunday {
				t.Errorf("BuildGrid(%d, %v) starts on %v, want Sunday", year, month, g[0].Date.Weekday())
			}

			current := g.CurrentMonth()
			if len(current) != DaysInMonth(year, month) {
				t.Errorf("BuildGrid(%d, %v) has %d current-month cells, want %d",
					year, month, len(current), DaysInMonth(year, month))
			}
			for i, day := range current {
				if day.DayNumber != i+1 || day.Date != NewDate(year, month, i+1) {
					t.Errorf("BuildGrid(%d, %v) current cell %d = %+v", year, month, i, day)
				}
			}

			for _, day := range g {
				if day.DayNumber != day.Date.Day {
					t.Errorf("cell %s has DayNumber %d", day.Date, day.DayNumber)
				}
				inMonth := day.Date.Year == year && day.Date.Month == month
				if day.IsCurrentMonth != inMonth {
					t.Errorf("cell %s IsCurrentMonth = %v, want %v", day.Date, day.IsCurrentMonth, inMonth)
				}
			}
		}
	}
}

func TestBuildGridMatchesTimePackage(t *testing.T) {
	for year := 1900; year <= 2100; year += 7 {
		for month := time.January; month <= time.December; month++ {
			g, err := BuildGrid(year, month)
			if err != nil {
				t.Fatalf("BuildGrid(%d, %v) unexpected error: %v", year, month, err)
			}
			first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
			start := first.AddDate(0, 0, -int(first.Weekday()))
			for i, day := range g {
				want := DateOf(start.AddDate(0, 0, i))
				if day.Date != want {
					t.Fatalf("BuildGrid(%d, %v)[%d] = %s, want %s", year, month, i, day.Date, want)
				}
			}
		}
	}
}

func TestBuildGridEdges(t *testing.T) {
	tests := []struct {
		name       string
		year       int
		month      time.Month
		first      Date
		last       Date
		leading    int
		currentLen int
	}{
		{
			name:       "February 2015 starts on Sunday with 28 days",
			year:       2015,
			month:      time.February,
			first:      NewDate(2015, time.February, 1),
			last:       NewDate(2015, time.March, 14),
			leading:    0,
			currentLen: 28,
		},
		{
			name:       "leap February 2024",
			year:       2024,
			month:      time.February,
			first:      NewDate(2024, time.January, 28),
			last:       NewDate(2024, time.March, 9),
			leading:    4,
			currentLen: 29,
		},
		{
			name:       "January wraps back to December",
			year:       2025,
			month:      time.January,
			first:      NewDate(2024, time.December, 29),
			last:       NewDate(2025, time.February, 8),
			leading:    3,
			currentLen: 31,
		},
		{
			name:       "December wraps forward to January",
			year:       2025,
			month:      time.December,
			first:      NewDate(2025, time.November, 30),
			last:       NewDate(2026, time.January, 10),
			leading:    1,
			currentLen: 31,
		},
		{
			name:       "31-day month starting Saturday uses all six weeks",
			year:       2025,
			month:      time.March,
			first:      NewDate(2025, time.February, 23),
			last:       NewDate(2025, time.April, 5),
			leading:    6,
			currentLen: 31,
		},
		{
			name:       "30-day month",
			year:       2025,
			month:      time.November,
			first:      NewDate(2025, time.October, 26),
			last:       NewDate(2025, time.December, 6),
			leading:    6,
			currentLen: 30,
		},
		{
			name:       "October 2025",
			year:       2025,
			month:      time.October,
			first:      NewDate(2025, time.September, 28),
			last:       NewDate(2025, time.November, 8),
			leading:    3,
			currentLen: 31,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := BuildGrid(tt.year, tt.month)
			if err != nil {
				t.Fatalf("BuildGrid() unexpected error: %v", err)
			}
			if g[0].Date != tt.first {
				t.Errorf("first cell = %s, want %s", g[0].Date, tt.first)
			}
			if g[GridSize-1].Date != tt.last {
				t.Errorf("last cell = %s, want %s", g[GridSize-1].Date, tt.last)
			}
			if got := g.Index(NewDate(tt.year, tt.month, 1)); got != tt.leading {
				t.Errorf("day 1 at index %d, want %d", got, tt.leading)
			}
			if got := len(g.CurrentMonth()); got != tt.currentLen {
				t.Errorf("current month cells = %d, want %d", got, tt.currentLen)
			}
			if tt.leading > 0 {
				prevY, prevM := PrevMonth(tt.year, tt.month)
				wantLast := NewDate(prevY, prevM, DaysInMonth(prevY, prevM))
				if got := g[tt.leading-1].Date; got != wantLast {
					t.Errorf("cell before day 1 = %s, want %s", got, wantLast)
				}
			}
		})
	}
}

func TestBuildGridInvalidPeriod(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
	}{
		{"month zero", 2025, 0},
		{"month thirteen", 2025, 13},
		{"negative month", 2025, -1},
		{"year zero", 0, time.January},
		{"year too large", 10000, time.January},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildGrid(tt.year, tt.month)
			var perr *InvalidCalendarPeriodError
			if !errors.As(err, &perr) {
				t.Fatalf("BuildGrid(%d, %d) error = %v, want InvalidCalendarPeriodError", tt.year, tt.month, err)
			}
			if perr.Year != tt.year || perr.Month != tt.month {
				t.Errorf("error carries %d/%d, want %d/%d", perr.Year, perr.Month, tt.year, tt.month)
			}
		})
	}
}

func TestGridWeeks(t *testing.T) {
	g, err := BuildGrid(2025, time.October)
	if err != nil {
		t.Fatal(err)
	}
	weeks := g.Weeks()
	for w, week := range weeks {
		for d, day := range week {
			if day != g[w*7+d] {
				t.Errorf("weeks[%d][%d] = %+v, want %+v", w, d, day, g[w*7+d])
			}
			if day.Date.Weekday() != time.Weekday(d) {
				t.Errorf("weeks[%d][%d] falls on %v", w, d, day.Date.Weekday())
			}
		}
	}
}

func TestGridIndexMissing(t *testing.T) {
	g, err := BuildGrid(2025, time.October)
	if err != nil {
		t.Fatal(err)
	}
	if got := g.Index(NewDate(2025, time.December, 25)); got != -1 {
		t.Errorf("Index() = %d, want -1", got)
	}
}

func TestGridCache(t *testing.T) {
	cache := NewGridCache()

	for i := 0; i < 2; i++ {
		got, err := cache.Get(2024, time.February)
		if err != nil {
			t.Fatalf("Get() unexpected error: %v", err)
		}
		want, _ := BuildGrid(2024, time.February)
		if got != want {
			t.Errorf("cached grid differs from BuildGrid on call %d", i)
		}
	}

	if len(cache.grids) != 1 {
		t.Errorf("cache holds %d grids, want 1", len(cache.grids))
	}

	if _, err := cache.Get(2024, 13); err == nil {
		t.Error("Get() with invalid month expected error")
	}
	if len(cache.grids) != 1 {
		t.Errorf("invalid period was cached")
	}
}
