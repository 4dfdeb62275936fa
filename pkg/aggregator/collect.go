// Package aggregator merges adapter outputs into the grouped, ranked
// structure the presentation layer consumes: collect, deduplicate, filter,
// sort, group. Everything after collection is a pure in-memory transform.
package aggregator

import (
	"context"
	"log"
	"sync"
	"time"

	"screening-digest/pkg/domain"
	"screening-digest/pkg/scrapers"
)

// SourceFailure records one adapter that contributed nothing.
type SourceFailure struct {
	Source string
	Err    error
}

// Collect runs every adapter in parallel and concatenates the successful
// results. Each adapter gets its own goroutine, result slot and timeout;
// slots are merged only after all adapters have finished, so no shared
// structure is written concurrently. An adapter failure is non-fatal: it is
// logged, recorded and contributes zero records.
func Collect(ctx context.Context, sources []scrapers.Scraper, timeout time.Duration) ([]domain.Screening, []SourceFailure) {
	type slot struct {
		screenings []domain.Screening
		err        error
	}

	slots := make([]slot, len(sources))
	var wg sync.WaitGroup

	for i, source := range sources {
		wg.Add(1)
		go func(i int, source scrapers.Scraper) {
			defer wg.Done()

			scrapeCtx := ctx
			if timeout > 0 {
				var cancel context.CancelFunc
				scrapeCtx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			log.Printf("Scraping %s...", source.Name())
			screenings, err := source.Scrape(scrapeCtx)
			if err != nil {
				slots[i] = slot{err: err}
				return
			}
			log.Printf("  Found %d screenings from %s", len(screenings), source.Name())
			slots[i] = slot{screenings: screenings}
		}(i, source)
	}

	wg.Wait()

	var all []domain.Screening
	var failures []SourceFailure
	for i, s := range slots {
		if s.err != nil {
			log.Printf("  Error scraping %s: %v", sources[i].Name(), s.err)
			failures = append(failures, SourceFailure{Source: sources[i].Name(), Err: s.err})
			continue
		}
		all = append(all, s.screenings...)
	}

	if len(failures) == len(sources) && len(sources) > 0 {
		log.Printf("WARNING: all %d sources failed; continuing with empty result", len(sources))
	}

	log.Printf("Total screenings collected: %d (%d sources failed)", len(all), len(failures))
	return all, failures
}
