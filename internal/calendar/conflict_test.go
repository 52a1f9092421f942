package calendar

import (
	"fmt"
	"math/rand"
	"reflect"
	"testing"
	"time"
)

func at(id string, hour, minute, duration int) Event {
	return Event{
		ID:              id,
		Title:           "Event " + id,
		Date:            NewDate(2025, time.October, 5),
		Start:           TimeOfDay{Hour: hour, Minute: minute},
		DurationMinutes: duration,
	}
}

func TestHasConflict(t *testing.T) {
	tests := []struct {
		name     string
		events   []Event
		expected bool
	}{
		{
			name:     "no events",
			events:   nil,
			expected: false,
		},
		{
			name:     "single event",
			events:   []Event{at("1", 10, 0, 60)},
			expected: false,
		},
		{
			name:     "contained overlap",
			events:   []Event{at("1", 10, 0, 60), at("2", 10, 30, 30)},
			expected: true,
		},
		{
			name:     "touching boundary",
			events:   []Event{at("1", 10, 0, 30), at("2", 10, 30, 30)},
			expected: false,
		},
		{
			name:     "partial overlap in reverse order",
			events:   []Event{at("1", 11, 30, 120), at("2", 11, 0, 45)},
			expected: true,
		},
		{
			name:     "identical intervals",
			events:   []Event{at("1", 9, 0, 15), at("2", 9, 0, 15)},
			expected: true,
		},
		{
			name:     "disjoint",
			events:   []Event{at("1", 8, 0, 60), at("2", 12, 0, 60), at("3", 15, 0, 30)},
			expected: false,
		},
		{
			name:     "only last pair overlaps",
			events:   []Event{at("1", 8, 0, 30), at("2", 9, 0, 30), at("3", 9, 15, 5)},
			expected: true,
		},
		{
			name:     "zero duration inside another",
			events:   []Event{at("1", 10, 0, 60), at("2", 10, 15, 0)},
			expected: true,
		},
		{
			name:     "zero duration at start of another",
			events:   []Event{at("1", 10, 0, 60), at("2", 10, 0, 0)},
			expected: false,
		},
		{
			name:     "two zero duration events at the same minute",
			events:   []Event{at("1", 10, 0, 0), at("2", 10, 0, 0)},
			expected: false,
		},
		{
			name:     "runs past midnight",
			events:   []Event{at("1", 23, 30, 90), at("2", 23, 59, 1)},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasConflict(tt.events); got != tt.expected {
				t.Errorf("HasConflict() = %v, want %v", got, tt.expected)
			}
			if len(tt.events) >= 2 {
				if got := hasConflictSweep(tt.events); got != tt.expected {
					t.Errorf("hasConflictSweep() = %v, want %v", got, tt.expected)
				}
			}
		})
	}
}

func TestHasConflictDoesNotReorder(t *testing.T) {
	events := []Event{at("b", 12, 0, 10), at("a", 8, 0, 10)}
	for i := 0; i < sweepThreshold; i++ {
		events = append(events, at(fmt.Sprintf("x%d", i), 13+i/6, (i%6)*10, 5))
	}
	before := append([]Event(nil), events...)

	HasConflict(events)

	if !reflect.DeepEqual(events, before) {
		t.Error("HasConflict() reordered its input")
	}
}

func TestSweepMatchesPairwise(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 500; round++ {
		n := 2 + rng.Intn(30)
		events := make([]Event, n)
		for i := range events {
			events[i] = at(fmt.Sprintf("%d", i), rng.Intn(24), rng.Intn(60), rng.Intn(4)*rng.Intn(60))
		}

		pairwise := hasConflictPairwise(events)
		sweep := hasConflictSweep(events)
		if pairwise != sweep {
			t.Fatalf("round %d: pairwise = %v, sweep = %v for %v", round, pairwise, sweep, events)
		}
		if got := HasConflict(events); got != pairwise {
			t.Fatalf("round %d: HasConflict() = %v, want %v", round, got, pairwise)
		}
	}
}

func TestConflictingPairs(t *testing.T) {
	events := []Event{
		at("1", 10, 0, 60),
		at("2", 10, 30, 30),
		at("3", 11, 0, 30),
		at("4", 10, 45, 30),
	}

	want := [][2]int{{0, 1}, {0, 3}, {1, 3}, {2, 3}}
	if got := ConflictingPairs(events); !reflect.DeepEqual(got, want) {
		t.Errorf("ConflictingPairs() = %v, want %v", got, want)
	}

	marks := Conflicted(events)
	for i, m := range marks {
		if !m {
			t.Errorf("Conflicted()[%d] = false, want true", i)
		}
	}

	if got := ConflictingPairs(events[:1]); got != nil {
		t.Errorf("ConflictingPairs() of one event = %v, want nil", got)
	}
}

func TestConflictedMarksOnlyClashes(t *testing.T) {
	events := []Event{at("1", 9, 0, 30), at("2", 10, 0, 60), at("3", 10, 30, 10)}
	want := []bool{false, true, true}
	if got := Conflicted(events); !reflect.DeepEqual(got, want) {
		t.Errorf("Conflicted() = %v, want %v", got, want)
	}
}
