package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	inAmountRe = regexp.MustCompile(`^in (\d+|a|an|one|two|three) (days?|weeks?|months?)$`)
	weekdayRe  = regexp.MustCompile(`^(?:(next|this|on) )?(monday|tuesday|wednesday|thursday|friday|saturday|sunday)$`)
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

var smallNumbers = map[string]int{"a": 1, "an": 1, "one": 1, "two": 2, "three": 3}

// fixedDays are day phrases with a constant offset from today.
var fixedDays = map[string]int{
	"today":                  0,
	"tonight":                0,
	"tomorrow":               1,
	"day after tomorrow":     2,
	"the day after tomorrow": 2,
	"yesterday":              -1,
	"next week":              7,
}

// Parser resolves spoken day phrases to dates in one timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for an IANA timezone such as "Europe/London".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location is the timezone every result is expressed in.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse returns the start of the day named by a relative phrase, counted from baseTime.
//
// Accepted: today, tonight, tomorrow, (the) day after tomorrow, yesterday, next week,
// "in N days|weeks|months", and weekdays with an optional next/this/on.
// A bare or "this" weekday that is today means today; "next" always moves forward.
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	phrase := strings.Join(strings.Fields(strings.ToLower(relative)), " ")
	today := p.startOfDay(baseTime)

	if offset, ok := fixedDays[phrase]; ok {
		return today.AddDate(0, 0, offset), nil
	}
	if m := inAmountRe.FindStringSubmatch(phrase); m != nil {
		return addAmount(today, m[1], m[2])
	}
	if m := weekdayRe.FindStringSubmatch(phrase); m != nil {
		return nextWeekday(today, weekdays[m[2]], m[1] == "next"), nil
	}
	return time.Time{}, fmt.Errorf("unknown day phrase %q", relative)
}

func addAmount(day time.Time, amount, unit string) (time.Time, error) {
	n, ok := smallNumbers[amount]
	if !ok {
		var err error
		if n, err = strconv.Atoi(amount); err != nil {
			return time.Time{}, fmt.Errorf("invalid amount %q", amount)
		}
	}

	switch strings.TrimSuffix(unit, "s") {
	case "day":
		return day.AddDate(0, 0, n), nil
	case "week":
		return day.AddDate(0, 0, 7*n), nil
	case "month":
		return day.AddDate(0, n, 0), nil
	}
	return time.Time{}, fmt.Errorf("unknown time unit %q", unit)
}

// nextWeekday returns the first target weekday on or after day, or strictly after it when strict.
func nextWeekday(day time.Time, target time.Weekday, strict bool) time.Time {
	ahead := (int(target) - int(day.Weekday()) + 7) % 7
	if ahead == 0 && strict {
		ahead = 7
	}
	return day.AddDate(0, 0, ahead)
}

func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
