package config

import (
	"time"
)

// Theater holds per-venue configuration.
type Theater struct {
	URL      string
	Location string
	Priority int // lower = higher priority
}

// DefaultTheaters maps theater names to their configuration.
// Priorities reflect venue prestige: 1 for premier arthouse venues.
var DefaultTheaters = map[string]Theater{
	"Film at Lincoln Center":           {URL: "https://www.filmlinc.org/", Location: "Manhattan", Priority: 1},
	"AMC Lincoln Square":               {URL: "https://www.amctheatres.com/movie-theatres/new-york-city/amc-lincoln-square-13", Location: "Manhattan", Priority: 1},
	"AMC 84th Street":                  {URL: "https://www.amctheatres.com/movie-theatres/new-york-city/amc-84th-street-6", Location: "Manhattan", Priority: 1},
	"Paris Theater":                    {URL: "https://www.paristheatrenyc.com/", Location: "Manhattan", Priority: 1},
	"Angelika Film Center":             {URL: "https://www.angelikafilmcenter.com/nyc", Location: "Manhattan", Priority: 1},
	"Alamo Drafthouse Lower Manhattan": {URL: "https://drafthouse.com/nyc", Location: "Manhattan", Priority: 1},
	"Film Forum":                       {URL: "https://filmforum.org/", Location: "Manhattan", Priority: 2},
	"Metrograph":                       {URL: "https://metrograph.com/", Location: "Manhattan", Priority: 2},
	"The Roxy Cinema":                  {URL: "https://www.roxycinemanewyork.com/", Location: "Manhattan", Priority: 2},
	"IFC Center":                       {URL: "https://www.ifccenter.com/", Location: "Manhattan", Priority: 3},
	"MoMA":                             {URL: "https://www.moma.org/calendar/film", Location: "Manhattan", Priority: 3},
}

// TheaterURL returns the configured base URL for a theater, or "" if unknown.
func TheaterURL(name string) string {
	return DefaultTheaters[name].URL
}

// TheaterPriority returns the configured priority for a theater.
// Unknown theaters get the lowest default priority.
func TheaterPriority(name string) int {
	if t, ok := DefaultTheaters[name]; ok {
		return t.Priority
	}
	return 5
}

// FilterConfig holds the tunable tables driving the inclusion filter.
// These are maintained configuration, not an algorithm: operators retune
// them without code changes.
type FilterConfig struct {
	// SpecialKeywords are matched case-insensitively against title+description.
	SpecialKeywords []string

	// RepertoryTheaters are name fragments matched case-insensitively
	// against the theater name.
	RepertoryTheaters []string

	// PriorityTheaters always appear in the grouped output, even when empty.
	PriorityTheaters []string

	// SaleWindowDays is the urgency window for upcoming ticket sales.
	SaleWindowDays int
}

// DefaultFilter returns the stock filter configuration.
func DefaultFilter() FilterConfig {
	return FilterConfig{
		SpecialKeywords: []string{
			"q&a", "q & a", "q and a", "question and answer",
			"director", "with director", "director in person", "director present",
			"filmmaker", "filmmakers", "with filmmaker", "filmmaker in person",
			"cast", "actor", "actress", "in person", "guest appearance", "special guest",
			"premiere", "world premiere", "us premiere", "nyc premiere",
			"opening night", "closing night",
			"advance screening", "early access", "pre-release",
			"sneak preview", "sneak peek", "preview screening",
			"imax", "dolby", "dolby atmos", "dolby cinema",
			"70mm", "35mm", "16mm",
			"restoration", "restored", "4k restoration", "4k", "remastered",
			"anniversary", "celebrating",
			"festival", "film festival", "nyff", "new york film festival",
			"series", "retrospective", "tribute", "special program",
			"repertory", "revival", "classic screening", "classics", "cult",
			"exclusive", "limited release", "limited engagement",
			"fan event", "marathon", "double feature",
			"special screening", "special event", "gala", "benefit",
			"midnight", "late night", "rare",
		},
		RepertoryTheaters: []string{
			"film at lincoln center", "lincoln center", "film forum",
			"ifc center", "metrograph", "anthology", "paris theater",
			"angelika", "quad", "roxy",
		},
		PriorityTheaters: []string{
			"Angelika Film Center",
			"AMC Lincoln Square",
			"AMC 84th Street",
			"Paris Theater",
		},
		SaleWindowDays: 14,
	}
}

// WeekRange returns the upcoming Monday through Sunday relative to now.
// If now is a Monday the range starts next Monday.
func WeekRange(now time.Time) (time.Time, time.Time) {
	daysAhead := int(time.Monday - now.Weekday())
	if daysAhead <= 0 {
		daysAhead += 7
	}
	monday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, daysAhead)
	return monday, monday.AddDate(0, 0, 6)
}
