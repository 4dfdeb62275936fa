package aggregator

import (
	"context"
	"log"
	"time"

	"screening-digest/pkg/config"
	"screening-digest/pkg/domain"
	"screening-digest/pkg/scrapers"
)

// Stats summarizes one pipeline run for logging and operational visibility.
type Stats struct {
	Collected  int
	Duplicates int
	Kept       int
	Failures   []SourceFailure
}

// AllSourcesFailed reports the warning-level condition where every adapter
// failed. The run still completes with an empty result.
func (s Stats) AllSourcesFailed() bool {
	return s.Collected == 0 && len(s.Failures) > 0
}

// Aggregator wires the full pipeline: collect from all sources, then
// dedupe, filter, sort and group the in-memory record list.
type Aggregator struct {
	sources       []scrapers.Scraper
	filterCfg     config.FilterConfig
	scrapeTimeout time.Duration
	groupOpts     GroupOptions
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithScrapeTimeout bounds each adapter's worst-case latency.
func WithScrapeTimeout(d time.Duration) Option {
	return func(a *Aggregator) { a.scrapeTimeout = d }
}

// WithGroupOptions sets grouping behavior, e.g. always-present theaters.
func WithGroupOptions(opts GroupOptions) Option {
	return func(a *Aggregator) { a.groupOpts = opts }
}

// New creates an aggregator over the given sources and filter tables.
func New(sources []scrapers.Scraper, filterCfg config.FilterConfig, opts ...Option) *Aggregator {
	a := &Aggregator{
		sources:       sources,
		filterCfg:     filterCfg,
		scrapeTimeout: 60 * time.Second,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run executes collect -> dedupe -> filter -> sort -> group for one digest.
// It always returns a well-formed (possibly empty) grouping: source
// failures, an empty scrape and an everything-filtered-out run are all
// ordinary outcomes, not errors.
func (a *Aggregator) Run(ctx context.Context, now time.Time) ([]domain.TheaterGroup, Stats) {
	collected, failures := Collect(ctx, a.sources, a.scrapeTimeout)

	unique, dropped := Deduplicate(collected)

	filter := NewFilter(a.filterCfg, now)
	kept, _ := filter.Apply(unique)

	sorted := Sort(kept, now)
	groups := Group(sorted, a.groupOpts)

	stats := Stats{
		Collected:  len(collected),
		Duplicates: len(dropped),
		Kept:       len(kept),
		Failures:   failures,
	}
	log.Printf("Pipeline: %d collected, %d duplicates, %d kept, %d theaters",
		stats.Collected, stats.Duplicates, stats.Kept, len(groups))
	return groups, stats
}
