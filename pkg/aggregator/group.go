package aggregator

import (
	"sort"

	"screening-digest/pkg/domain"
)

// GroupOptions controls grouping behavior.
type GroupOptions struct {
	// AlwaysInclude lists theaters that must appear in the output even with
	// zero surviving screenings (rendered as an empty section).
	AlwaysInclude []string
}

// Group partitions ranked screenings into per-theater buckets, preserving
// the per-theater order of the input. Theater names match exactly and
// case-sensitively: they are adapter-controlled, not user input. Buckets are
// ordered by the minimum priority of their screenings, ties broken by
// theater name.
func Group(screenings []domain.Screening, opts GroupOptions) []domain.TheaterGroup {
	byTheater := make(map[string][]domain.Screening)
	for _, s := range screenings {
		byTheater[s.Theater] = append(byTheater[s.Theater], s)
	}

	for _, name := range opts.AlwaysInclude {
		if _, ok := byTheater[name]; !ok {
			byTheater[name] = nil
		}
	}

	groups := make([]domain.TheaterGroup, 0, len(byTheater))
	for theater, list := range byTheater {
		groups = append(groups, domain.TheaterGroup{Theater: theater, Screenings: list})
	}

	sort.Slice(groups, func(i, j int) bool {
		pi, pj := minPriority(groups[i].Screenings), minPriority(groups[j].Screenings)
		if pi != pj {
			return pi < pj
		}
		return groups[i].Theater < groups[j].Theater
	})

	return groups
}

// minPriority of an empty bucket sorts after every populated one.
func minPriority(screenings []domain.Screening) int {
	if len(screenings) == 0 {
		return 1 << 20
	}
	min := screenings[0].Priority
	for _, s := range screenings[1:] {
		if s.Priority < min {
			min = s.Priority
		}
	}
	return min
}
