package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cwarden/monthcal/internal/calendar"
)

const monthNames = `jan|january|feb|february|mar|march|apr|april|may|jun|june|jul|july|aug|august|sep|sept|september|oct|october|nov|november|dec|december`

var (
	weekdayRe   = regexp.MustCompile(`^(next|this)\s+(mon|monday|tue|tuesday|wed|wednesday|thu|thursday|fri|friday|sat|saturday|sun|sunday)$`)
	inRe        = regexp.MustCompile(`^in\s+(\d+)\s+(day|days|week|weeks|month|months)$`)
	fromNowRe   = regexp.MustCompile(`^(\d+)\s+(day|days|week|weeks|month|months)\s+(from now|from today|ago)$`)
	isoDateRe   = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	usDateRe    = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{4})$`)
	shortDateRe = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})$`)
	monthDayRe  = regexp.MustCompile(`^(` + monthNames + `)\.?\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s+(\d{4}))?$`)
	isoMonthRe  = regexp.MustCompile(`^(\d{4})-(\d{1,2})$`)
	monthYearRe = regexp.MustCompile(`^(` + monthNames + `)\.?(?:,?\s+(\d{4}))?$`)
	relMonthRe  = regexp.MustCompile(`^(this|next|last|previous)\s+month$`)
)

// DateParser turns user-typed date expressions into calendar dates relative
// to a fixed "now".
type DateParser struct {
	now time.Time
}

func NewDateParser() *DateParser {
	return &DateParser{now: time.Now()}
}

func (p *DateParser) SetNow(now time.Time) {
	p.now = now
}

// ParseDate accepts relative forms (today, tomorrow, yesterday, next friday,
// in 3 days, 2 weeks from now) and absolute ones (2025-10-15, 10/15/2025,
// 10/15, Oct 15, October 15, 2025). The whole input must match.
func (p *DateParser) ParseDate(input string) (calendar.Date, error) {
	lower := strings.ToLower(strings.TrimSpace(input))
	if lower == "" {
		return calendar.Date{}, fmt.Errorf("empty input")
	}

	if d, ok := p.parseRelativeDate(lower); ok {
		return d, nil
	}

	d, ok := p.parseAbsoluteDate(lower)
	if !ok {
		return calendar.Date{}, fmt.Errorf("unrecognized date: %q", input)
	}
	if !d.Valid() {
		return calendar.Date{}, &calendar.ValidationError{Field: "date", Value: input, Reason: "no such calendar day"}
	}
	return d, nil
}

// ParseMonth accepts 2025-10, October 2025, Oct (current year) and
// this/next/last month.
func (p *DateParser) ParseMonth(input string) (int, time.Month, error) {
	lower := strings.ToLower(strings.TrimSpace(input))
	today := p.today()

	if matches := relMonthRe.FindStringSubmatch(lower); matches != nil {
		switch matches[1] {
		case "next":
			y, m := calendar.NextMonth(today.Year, today.Month)
			return y, m, nil
		case "last", "previous":
			y, m := calendar.PrevMonth(today.Year, today.Month)
			return y, m, nil
		default:
			return today.Year, today.Month, nil
		}
	}

	if matches := isoMonthRe.FindStringSubmatch(lower); matches != nil {
		year, _ := strconv.Atoi(matches[1])
		month, _ := strconv.Atoi(matches[2])
		if month < 1 || month > 12 {
			return 0, 0, &calendar.InvalidCalendarPeriodError{Year: year, Month: time.Month(month)}
		}
		return year, time.Month(month), nil
	}

	if matches := monthYearRe.FindStringSubmatch(lower); matches != nil {
		year := today.Year
		if matches[2] != "" {
			year, _ = strconv.Atoi(matches[2])
		}
		return year, parseMonthName(matches[1]), nil
	}

	// Any full date names its month too.
	if d, err := p.ParseDate(input); err == nil {
		return d.Year, d.Month, nil
	}

	return 0, 0, fmt.Errorf("unrecognized month: %q", input)
}

func (p *DateParser) parseRelativeDate(lower string) (calendar.Date, bool) {
	today := p.today()

	switch lower {
	case "today", "now":
		return today, true
	case "tomorrow", "tmrw":
		return today.AddDays(1), true
	case "yesterday":
		return today.AddDays(-1), true
	}

	if matches := weekdayRe.FindStringSubmatch(lower); matches != nil {
		return p.findNextWeekday(parseWeekday(matches[2]), matches[1] == "next"), true
	}

	if matches := inRe.FindStringSubmatch(lower); matches != nil {
		n, _ := strconv.Atoi(matches[1])
		return shift(today, n, matches[2]), true
	}

	if matches := fromNowRe.FindStringSubmatch(lower); matches != nil {
		n, _ := strconv.Atoi(matches[1])
		if matches[3] == "ago" {
			n = -n
		}
		return shift(today, n, matches[2]), true
	}

	return calendar.Date{}, false
}

func (p *DateParser) parseAbsoluteDate(lower string) (calendar.Date, bool) {
	// YYYY-MM-DD
	if matches := isoDateRe.FindStringSubmatch(lower); matches != nil {
		year, _ := strconv.Atoi(matches[1])
		month, _ := strconv.Atoi(matches[2])
		day, _ := strconv.Atoi(matches[3])
		return calendar.NewDate(year, time.Month(month), day), true
	}

	// MM/DD/YYYY or MM-DD-YYYY
	if matches := usDateRe.FindStringSubmatch(lower); matches != nil {
		month, _ := strconv.Atoi(matches[1])
		day, _ := strconv.Atoi(matches[2])
		year, _ := strconv.Atoi(matches[3])
		return calendar.NewDate(year, time.Month(month), day), true
	}

	// MM/DD (assume current year)
	if matches := shortDateRe.FindStringSubmatch(lower); matches != nil {
		month, _ := strconv.Atoi(matches[1])
		day, _ := strconv.Atoi(matches[2])
		return calendar.NewDate(p.now.Year(), time.Month(month), day), true
	}

	// Month DD, YYYY or Month DD
	if matches := monthDayRe.FindStringSubmatch(lower); matches != nil {
		day, _ := strconv.Atoi(matches[2])
		year := p.now.Year()
		if matches[3] != "" {
			year, _ = strconv.Atoi(matches[3])
		}
		return calendar.NewDate(year, parseMonthName(matches[1]), day), true
	}

	return calendar.Date{}, false
}

func (p *DateParser) findNextWeekday(target time.Weekday, skipThisWeek bool) calendar.Date {
	today := p.today()
	daysUntilTarget := int(target - today.Weekday())

	if daysUntilTarget <= 0 || skipThisWeek {
		daysUntilTarget += 7
	}

	return today.AddDays(daysUntilTarget)
}

func (p *DateParser) today() calendar.Date {
	return calendar.DateOf(p.now)
}

// shift moves d by n units. Month steps clamp to the last day of the target
// month rather than spilling into the next one.
func shift(d calendar.Date, n int, unit string) calendar.Date {
	switch {
	case strings.HasPrefix(unit, "day"):
		return d.AddDays(n)
	case strings.HasPrefix(unit, "week"):
		return d.AddDays(n * 7)
	default:
		total := d.Year*12 + int(d.Month-1) + n
		year, month := total/12, time.Month(total%12+1)
		day := d.Day
		if last := calendar.DaysInMonth(year, month); day > last {
			day = last
		}
		return calendar.NewDate(year, month, day)
	}
}

func parseWeekday(s string) time.Weekday {
	switch s {
	case "sun", "sunday":
		return time.Sunday
	case "mon", "monday":
		return time.Monday
	case "tue", "tuesday":
		return time.Tuesday
	case "wed", "wednesday":
		return time.Wednesday
	case "thu", "thursday":
		return time.Thursday
	case "fri", "friday":
		return time.Friday
	default:
		return time.Saturday
	}
}

func parseMonthName(s string) time.Month {
	switch s {
	case "jan", "january":
		return time.January
	case "feb", "february":
		return time.February
	case "mar", "march":
		return time.March
	case "apr", "april":
		return time.April
	case "may":
		return time.May
	case "jun", "june":
		return time.June
	case "jul", "july":
		return time.July
	case "aug", "august":
		return time.August
	case "sep", "sept", "september":
		return time.September
	case "oct", "october":
		return time.October
	case "nov", "november":
		return time.November
	default:
		return time.December
	}
}
