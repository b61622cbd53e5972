package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrNoDate is returned when a date phrase carries no resolvable date.
// Callers are expected to drop the offending item and continue.
var ErrNoDate = errors.New("no resolvable date in phrase")

var (
	dmyRe   = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})`)
	dayRe   = regexp.MustCompile(`\b(\d{1,2})\b`)
	yearRe  = regexp.MustCompile(`\b(\d{4})\b`)
	clockRe = regexp.MustCompile(`(\d{1,2})(?::(\d{2}))?\s*(am|pm)?`)
)

// Parser resolves natural-language date and time phrases to absolute
// time.Time values in a fixed IANA timezone. All arithmetic is wall-clock:
// "tomorrow" means tomorrow on the local calendar, not tomorrow UTC.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string,
// e.g. "Europe/Berlin".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Resolve converts a date phrase plus a time phrase into an absolute
// wall-clock instant, using now as the reference point. It returns ErrNoDate
// when the date phrase is empty, "n/a", or matches none of the known forms.
//
// The date phrase is tested against an ordered chain of matchers. The order
// is significant because the phrases overlap: "day after tomorrow" must win
// over "tomorrow", "next week" over "next <weekday>".
func (p *Parser) Resolve(datePhrase, timePhrase string, now time.Time) (time.Time, error) {
	date := strings.ToLower(strings.TrimSpace(datePhrase))
	if date == "" || date == "n/a" {
		return time.Time{}, ErrNoDate
	}

	now = now.In(p.location)

	target, err := p.resolveDate(date, now)
	if err != nil {
		return time.Time{}, err
	}

	return p.mergeTime(target, timePhrase), nil
}

func (p *Parser) resolveDate(date string, now time.Time) (time.Time, error) {
	switch {
	// "after tomorrow" also covers "day after tomorrow"; both must be
	// tested before the bare "tomorrow" substring.
	case strings.Contains(date, "after tomorrow"):
		return p.startOfDay(now.AddDate(0, 0, 2)), nil

	case strings.Contains(date, "today"):
		return p.startOfDay(now), nil

	case strings.Contains(date, "tomorrow"):
		return p.startOfDay(now.AddDate(0, 0, 1)), nil

	case strings.Contains(date, "next week"):
		return p.startOfDay(now.AddDate(0, 0, 7)), nil

	case strings.Contains(date, "next"):
		target, ok := matchWeekday(date)
		if !ok {
			return time.Time{}, ErrNoDate
		}
		// Offset 0 when today already is the named weekday, so
		// "next wednesday" on a Wednesday resolves to today.
		daysToAdd := (int(target) - int(now.Weekday()) + 7) % 7
		return p.startOfDay(now.AddDate(0, 0, daysToAdd)), nil
	}

	// Explicit DD/MM/YYYY.
	if m := dmyRe.FindStringSubmatch(date); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location), nil
	}

	// Month name, optionally with a day and a year.
	if month, ok := matchMonth(date); ok {
		day := 1
		if m := dayRe.FindStringSubmatch(date); m != nil {
			day, _ = strconv.Atoi(m[1])
		}
		year := now.Year()
		if m := yearRe.FindStringSubmatch(date); m != nil {
			year, _ = strconv.Atoi(m[1])
		}
		return time.Date(year, month, day, 0, 0, 0, 0, p.location), nil
	}

	return time.Time{}, ErrNoDate
}

// mergeTime overlays the clock from the time phrase onto the resolved date.
// The date components stay authoritative; only hour and minute change. An
// unparseable or absent time phrase leaves the date step's clock (midnight).
func (p *Parser) mergeTime(target time.Time, timePhrase string) time.Time {
	clock := strings.ToLower(strings.TrimSpace(timePhrase))
	if clock == "" || clock == "n/a" {
		return target
	}

	m := clockRe.FindStringSubmatch(clock)
	if m == nil {
		return target
	}

	hours, _ := strconv.Atoi(m[1])
	minutes := 0
	if m[2] != "" {
		minutes, _ = strconv.Atoi(m[2])
	}

	switch m[3] {
	case "pm":
		if hours < 12 {
			hours += 12
		}
	case "am":
		if hours == 12 {
			hours = 0
		}
	}

	return time.Date(target.Year(), target.Month(), target.Day(), hours, minutes, 0, 0, p.location)
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
