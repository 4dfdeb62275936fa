package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"screening-digest/pkg/classifier"
	"screening-digest/pkg/scrapers"
)

// Debug helper: scrape one source and print what it found.
func main() {
	sourceName := "Film Forum"
	if len(os.Args) > 1 {
		sourceName = os.Args[1]
	}

	cls := classifier.New(nil)
	var source scrapers.Scraper
	for _, s := range scrapers.Default(30*time.Second, cls) {
		if s.Name() == sourceName {
			source = s
			break
		}
	}
	if source == nil {
		log.Fatalf("Unknown source %q", sourceName)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	screenings, err := source.Scrape(ctx)
	if err != nil {
		log.Fatalf("Failed to scrape %s: %v", sourceName, err)
	}

	fmt.Printf("Found %d screenings from %s:\n\n", len(screenings), sourceName)
	for i, s := range screenings {
		fmt.Printf("Screening %d:\n", i+1)
		fmt.Printf("  Title: %s\n", s.Title)
		fmt.Printf("  Theater: %s\n", s.Theater)
		if s.Date != "" {
			fmt.Printf("  Date: %s\n", s.Date)
		}
		if s.SpecialNote != "" {
			fmt.Printf("  Special: %s\n", s.SpecialNote)
		}
		if s.TicketStatus != "" {
			fmt.Printf("  Tickets: %s\n", s.TicketStatus)
		}
		if s.URL != "" {
			fmt.Printf("  URL: %s\n", s.URL)
		}
		fmt.Println()
	}
}
