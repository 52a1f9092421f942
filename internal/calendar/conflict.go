package calendar

import "sort"

// sweepThreshold is the event count above which HasConflict switches from
// the pairwise scan to sort-and-sweep. Both give the same answer.
const sweepThreshold = 16

// HasConflict reports whether any two events overlap in time. The events
// are assumed to share a date; only their minute intervals are compared.
func HasConflict(events []Event) bool {
	if len(events) < 2 {
		return false
	}
	if len(events) > sweepThreshold {
		return hasConflictSweep(events)
	}
	return hasConflictPairwise(events)
}

func hasConflictPairwise(events []Event) bool {
	for i := 0; i < len(events); i++ {
		for j := i + 1; j < len(events); j++ {
			if events[i].Interval().Overlaps(events[j].Interval()) {
				return true
			}
		}
	}
	return false
}

// hasConflictSweep sorts a copy of the non-empty intervals by start and
// checks each against the furthest end seen so far. A zero-length event
// overlaps only an interval that strictly contains its start minute, so
// those are looked up once the non-empty intervals are known to be disjoint.
func hasConflictSweep(events []Event) bool {
	var intervals []Interval
	var points []int
	for _, e := range events {
		iv := e.Interval()
		if iv.End > iv.Start {
			intervals = append(intervals, iv)
		} else {
			points = append(points, iv.Start)
		}
	}
	sort.Slice(intervals, func(i, j int) bool {
		return intervals[i].Start < intervals[j].Start
	})

	for i := 1; i < len(intervals); i++ {
		if intervals[i].Start < intervals[i-1].End {
			return true
		}
	}

	// Disjoint and sorted: the only candidate for p is the last interval
	// starting before it.
	for _, p := range points {
		k := sort.Search(len(intervals), func(i int) bool {
			return intervals[i].Start >= p
		})
		if k > 0 && p < intervals[k-1].End {
			return true
		}
	}
	return false
}

// ConflictingPairs lists every overlapping pair as indexes into events,
// with i < j, in scan order.
func ConflictingPairs(events []Event) [][2]int {
	var pairs [][2]int
	for i := 0; i < len(events); i++ {
		for j := i + 1; j < len(events); j++ {
			if events[i].Interval().Overlaps(events[j].Interval()) {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs
}

// Conflicted marks which events take part in at least one overlap.
func Conflicted(events []Event) []bool {
	marks := make([]bool, len(events))
	for _, p := range ConflictingPairs(events) {
		marks[p[0]] = true
		marks[p[1]] = true
	}
	return marks
}
