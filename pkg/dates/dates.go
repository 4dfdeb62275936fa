// Package dates interprets the loosely formatted date strings that listing
// sites publish ("Tuesday", "this Friday", "Nov 15", "tomorrow") relative to
// an injected reference time. Interpretation is best-effort: unparseable
// input reports ok=false, never an error.
package dates

import (
	"math"
	"regexp"
	"strings"
	"time"
)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"sun":       time.Sunday,
	"monday":    time.Monday,
	"mon":       time.Monday,
	"tuesday":   time.Tuesday,
	"tue":       time.Tuesday,
	"tues":      time.Tuesday,
	"wednesday": time.Wednesday,
	"wed":       time.Wednesday,
	"thursday":  time.Thursday,
	"thu":       time.Thursday,
	"thur":      time.Thursday,
	"thurs":     time.Thursday,
	"friday":    time.Friday,
	"fri":       time.Friday,
	"saturday":  time.Saturday,
	"sat":       time.Saturday,
}

// monthDayLayouts are tried in order for absolute month+day strings.
// Year-less layouts parse to year 0 and are completed against now.
var monthDayLayouts = []string{
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2006-01-02",
	"01/02/2006",
	"January 2",
	"Jan 2",
	"1/2",
}

var ordinalSuffix = regexp.MustCompile(`(\d+)(st|nd|rd|th)\b`)

// Midnight truncates t to day granularity in its own location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Parse resolves a free-text date string to a concrete calendar date
// (midnight, in now's location). It is a pure function of (s, now).
//
// Weekday names resolve to the next future occurrence of that weekday; when
// now already falls on the named weekday the result is seven days out, since
// a listing naming today's weekday means next week.
func Parse(s string, now time.Time) (time.Time, bool) {
	today := Midnight(now)

	text := strings.ToLower(strings.TrimSpace(s))
	text = strings.TrimSuffix(text, ".")
	if text == "" {
		return time.Time{}, false
	}

	switch text {
	case "today", "tonight", "this week":
		return today, true
	case "tomorrow":
		return today.AddDate(0, 0, 1), true
	case "next week":
		return today.AddDate(0, 0, 7), true
	}

	// "this friday" / "next friday" / bare weekday name
	wd := text
	wd = strings.TrimPrefix(wd, "this ")
	wd = strings.TrimPrefix(wd, "next ")
	if day, ok := weekdays[wd]; ok {
		delta := int(day-today.Weekday()+7) % 7
		if delta == 0 {
			delta = 7
		}
		return today.AddDate(0, 0, delta), true
	}

	return parseMonthDay(s, today)
}

// parseMonthDay handles absolute forms like "Nov 15", "November 15th" or
// "2024-11-15". Year-less dates assume the current year, rolling forward to
// next year when the result would already be past relative to today.
func parseMonthDay(s string, today time.Time) (time.Time, bool) {
	text := strings.TrimSpace(s)
	text = ordinalSuffix.ReplaceAllString(text, "$1")

	for _, layout := range monthDayLayouts {
		parsed, err := time.Parse(layout, text)
		if err != nil {
			continue
		}

		if parsed.Year() == 0 {
			candidate := time.Date(today.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, today.Location())
			if candidate.Before(today) {
				candidate = candidate.AddDate(1, 0, 0)
			}
			return candidate, true
		}
		return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, today.Location()), true
	}

	return time.Time{}, false
}

// DaysUntil reports the whole-day distance from now to the resolved date.
// Negative results mean the date is past; ok=false means unparseable.
func DaysUntil(s string, now time.Time) (int, bool) {
	date, ok := Parse(s, now)
	if !ok {
		return 0, false
	}
	// Round rather than truncate so DST-shortened days still count whole.
	hours := date.Sub(Midnight(now)).Hours()
	return int(math.Round(hours / 24)), true
}
