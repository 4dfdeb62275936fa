// Package classifier detects what makes a screening special based on
// keywords in its title and description, producing short tags suitable for
// the special-note field ("Q&A | 35mm | Restoration").
package classifier

import (
	"sort"
	"strings"
)

// Category maps a tag to the keywords that trigger it.
type Category struct {
	Tag      string
	Keywords []string
}

// DefaultCategories is the stock keyword table.
var DefaultCategories = []Category{
	{Tag: "Q&A", Keywords: []string{"q&a", "q & a", "q and a", "question and answer"}},
	{Tag: "Director Appearance", Keywords: []string{
		"with director", "director in person", "director present",
		"director appearance", "director attending", "director will be",
		"followed by director", "introduced by director",
	}},
	{Tag: "Filmmaker Appearance", Keywords: []string{
		"filmmaker", "filmmakers", "with filmmaker", "filmmaker in person",
		"filmmaker present", "filmmaker appearance", "filmmaker attending",
	}},
	{Tag: "Special Guest", Keywords: []string{
		"cast", "actor", "actress", "producer", "cinematographer",
		"in person", "guest appearance", "special guest", "guests in attendance",
	}},
	{Tag: "Premiere", Keywords: []string{
		"premiere", "world premiere", "us premiere", "nyc premiere",
		"new york premiere", "theatrical premiere",
	}},
	{Tag: "Opening Night", Keywords: []string{"opening night", "opening film"}},
	{Tag: "Closing Night", Keywords: []string{"closing night", "closing film"}},
	{Tag: "Advance Screening", Keywords: []string{
		"advance screening", "early screening", "early access",
		"pre-release", "before release", "first look",
	}},
	{Tag: "Sneak Preview", Keywords: []string{
		"sneak preview", "sneak peek", "preview screening", "special preview",
	}},
	{Tag: "IMAX", Keywords: []string{"imax"}},
	{Tag: "Dolby", Keywords: []string{"dolby", "dolby cinema", "dolby atmos", "dolby vision"}},
	{Tag: "70mm", Keywords: []string{"70mm", "70 mm"}},
	{Tag: "35mm", Keywords: []string{"35mm", "35 mm"}},
	{Tag: "16mm", Keywords: []string{"16mm", "16 mm"}},
	{Tag: "Restoration", Keywords: []string{
		"restoration", "restored", "newly restored", "new restoration",
		"4k restoration", "4k", "2k restoration", "remastered",
	}},
	{Tag: "Anniversary", Keywords: []string{
		"anniversary", "th anniversary", "year anniversary", "celebrating",
	}},
	{Tag: "Festival", Keywords: []string{
		"festival", "film festival", "nyff", "new york film festival",
		"tribeca", "sundance",
	}},
	{Tag: "Special Series", Keywords: []string{
		"retrospective", "tribute", "homage", "special program", "curated by",
	}},
	{Tag: "Repertory", Keywords: []string{
		"repertory", "revival", "classic screening", "classics",
		"cult classic", "midnight movie",
	}},
	{Tag: "Exclusive", Keywords: []string{"exclusive", "only at", "exclusive engagement"}},
	{Tag: "Limited Release", Keywords: []string{"limited release", "limited engagement", "limited run"}},
	{Tag: "Fan Event", Keywords: []string{
		"fan event", "fan screening", "marathon", "double feature",
		"triple feature", "all night", "all-night",
	}},
	{Tag: "Special Event", Keywords: []string{
		"special screening", "special event", "special presentation",
		"gala", "benefit", "fundraiser",
	}},
}

// specificEventTags are the tags that make the generic "Special Event"
// redundant when present alongside it.
var specificEventTags = map[string]bool{
	"Q&A":                  true,
	"Director Appearance":  true,
	"Filmmaker Appearance": true,
	"Premiere":             true,
	"Opening Night":        true,
	"Closing Night":        true,
	"Advance Screening":    true,
	"Sneak Preview":        true,
	"Festival":             true,
	"Fan Event":            true,
}

// Classifier tags screenings from an injectable keyword table.
type Classifier struct {
	categories []Category
}

// New creates a classifier with the given categories; nil means the defaults.
func New(categories []Category) *Classifier {
	if categories == nil {
		categories = DefaultCategories
	}
	return &Classifier{categories: categories}
}

// Classify returns the sorted tags detected in title+description.
func (c *Classifier) Classify(title, description string) []string {
	text := strings.ToLower(title + " " + description)

	var tags []string
	seen := make(map[string]bool)
	for _, cat := range c.categories {
		if seen[cat.Tag] {
			continue
		}
		for _, kw := range cat.Keywords {
			if strings.Contains(text, kw) {
				tags = append(tags, cat.Tag)
				seen[cat.Tag] = true
				break
			}
		}
	}

	tags = refine(tags)
	sort.Strings(tags)
	return tags
}

// IsSpecial reports whether any special characteristic was detected.
func (c *Classifier) IsSpecial(title, description string) bool {
	return len(c.Classify(title, description)) > 0
}

// refine drops the generic "Special Event" tag when a more specific
// event tag is present.
func refine(tags []string) []string {
	hasSpecific := false
	for _, t := range tags {
		if specificEventTags[t] {
			hasSpecific = true
			break
		}
	}
	if !hasSpecific {
		return tags
	}

	out := tags[:0]
	for _, t := range tags {
		if t != "Special Event" {
			out = append(out, t)
		}
	}
	return out
}

// FormatTags joins tags into the pipe-separated special-note form.
func FormatTags(tags []string) string {
	return strings.Join(tags, " | ")
}

// Note is a convenience that classifies and formats in one step.
func (c *Classifier) Note(title, description string) string {
	return FormatTags(c.Classify(title, description))
}
