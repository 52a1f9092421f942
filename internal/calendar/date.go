package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Years outside MinYear..MaxYear have no grid.
const (
	MinYear = 1
	MaxYear = 9999
)

// Date is a calendar date with no time-of-day or timezone component.
// Two dates are equal iff year, month and day match, so Date is usable with ==
// and as a map key.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf drops the clock and location of t.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate parses a strict YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 ||
		!digits(parts[0]) || !digits(parts[1]) || !digits(parts[2]) {
		return Date{}, &ValidationError{Field: "date", Value: s, Reason: "expected YYYY-MM-DD"}
	}

	year, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	day, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return Date{}, &ValidationError{Field: "date", Value: s, Reason: "expected YYYY-MM-DD"}
	}

	d := Date{Year: year, Month: time.Month(month), Day: day}
	if !d.Valid() {
		return Date{}, &ValidationError{Field: "date", Value: s, Reason: "no such calendar day"}
	}
	return d, nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// Valid reports whether d names a real day of the proleptic Gregorian calendar.
func (d Date) Valid() bool {
	if d.Year < MinYear || d.Year > MaxYear || d.Month < time.January || d.Month > time.December {
		return false
	}
	return d.Day >= 1 && d.Day <= DaysInMonth(d.Year, d.Month)
}

func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

func (d Date) Weekday() time.Weekday {
	return Weekday(d.Year, d.Month, d.Day)
}

// AddDays walks the calendar one day at a time; n is expected to be small
// (grid and cursor movement).
func (d Date) AddDays(n int) Date {
	for n > 0 {
		d = d.next()
		n--
	}
	for n < 0 {
		d = d.prev()
		n++
	}
	return d
}

func (d Date) next() Date {
	if d.Day < DaysInMonth(d.Year, d.Month) {
		return Date{d.Year, d.Month, d.Day + 1}
	}
	y, m := NextMonth(d.Year, d.Month)
	return Date{y, m, 1}
}

func (d Date) prev() Date {
	if d.Day > 1 {
		return Date{d.Year, d.Month, d.Day - 1}
	}
	y, m := PrevMonth(d.Year, d.Month)
	return Date{y, m, DaysInMonth(y, m)}
}

// Time returns midnight of d in loc.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// IsLeapYear applies the Gregorian rule: divisible by 4, except centuries
// unless divisible by 400.
func IsLeapYear(year int) bool {
	if year%400 == 0 {
		return true
	}
	if year%100 == 0 {
		return false
	}
	return year%4 == 0
}

// DaysInMonth returns 0 for an out-of-range month.
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.January, time.March, time.May, time.July, time.August, time.October, time.December:
		return 31
	case time.April, time.June, time.September, time.November:
		return 30
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// Weekday uses Sakamoto's method: 0=Sunday..6=Saturday.
func Weekday(year int, month time.Month, day int) time.Weekday {
	tbl := [...]int{0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}
	y := year
	if month < time.March {
		y--
	}
	w := (y + y/4 - y/100 + y/400 + tbl[month-1] + day) % 7
	return time.Weekday(w)
}

func PrevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

// TimeOfDay is a wall-clock time within a single day.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses a strict 24-hour HH:MM string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	if len(s) != 5 || s[2] != ':' || !digits(s[0:2]) || !digits(s[3:5]) {
		return TimeOfDay{}, &ValidationError{Field: "time", Value: s, Reason: "expected HH:MM"}
	}
	hh, err1 := strconv.Atoi(s[0:2])
	mm, err2 := strconv.Atoi(s[3:5])
	if err1 != nil || err2 != nil {
		return TimeOfDay{}, &ValidationError{Field: "time", Value: s, Reason: "expected HH:MM"}
	}
	t := TimeOfDay{Hour: hh, Minute: mm}
	if !t.Valid() {
		return TimeOfDay{}, &ValidationError{Field: "time", Value: s, Reason: "outside 00:00-23:59"}
	}
	return t, nil
}

// digits reports whether s is non-empty and all ASCII digits. strconv.Atoi
// alone would let a sign through.
func digits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (t TimeOfDay) Valid() bool {
	return t.Hour >= 0 && t.Hour < 24 && t.Minute >= 0 && t.Minute < 60
}

// Minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}
