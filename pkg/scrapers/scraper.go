// Package scrapers extracts movie screenings from external NYC listings
// sites. Each source gets its own adapter behind the Scraper interface; the
// aggregation pipeline depends only on that interface, so adapters are
// independent and swappable.
package scrapers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"screening-digest/pkg/httpclient"

	"github.com/PuerkitoBio/goquery"

	"screening-digest/pkg/domain"
)

// Scraper extracts screenings from one external listings site.
type Scraper interface {
	// Name identifies the source in logs and failure reports.
	Name() string

	// Scrape fetches and parses the source. Records with an empty title or
	// theater are never returned.
	Scrape(ctx context.Context) ([]domain.Screening, error)
}

// fetchDocument GETs a URL and parses it into a goquery document, retrying
// transient failures with exponential backoff.
func fetchDocument(ctx context.Context, client *httpclient.HTTPClient, url string) (*goquery.Document, error) {
	const retries = 3

	var lastErr error
	for attempt := 0; attempt < retries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(time.Duration(1<<attempt) * time.Second):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		doc, err := fetchOnce(ctx, client, url)
		if err == nil {
			return doc, nil
		}
		lastErr = err
	}

	return nil, fmt.Errorf("fetch %s: %w", url, lastErr)
}

func fetchOnce(ctx context.Context, client *httpclient.HTTPClient, url string) (*goquery.Document, error) {
	resp, err := client.GetContext(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}

// fetchBody GETs a URL and returns the raw response body.
func fetchBody(ctx context.Context, client *httpclient.HTTPClient, url string) ([]byte, error) {
	resp, err := client.GetContext(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

// resolveURL joins a possibly relative href against the site base URL.
func resolveURL(base, href string) string {
	if href == "" || strings.HasPrefix(href, "http") {
		return href
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(href, "/")
}

// extractTicketAvailability scans page text for on-sale/sold-out wording and
// an optional "tickets on sale <date>" announcement.
func extractTicketAvailability(text string) (domain.TicketStatus, string) {
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, "sold out") || strings.Contains(lower, "standby only"):
		return domain.TicketsSoldOut, ""
	case strings.Contains(lower, "tickets on sale") || strings.Contains(lower, "on sale"):
		if date := saleDateAfter(lower, "on sale"); date != "" {
			return domain.TicketsNotYet, date
		}
		return domain.TicketsOnSale, ""
	case strings.Contains(lower, "buy tickets") || strings.Contains(lower, "get tickets"):
		return domain.TicketsOnSale, ""
	case strings.Contains(lower, "coming soon"):
		return domain.TicketsNotYet, ""
	}
	return domain.TicketsUnknown, ""
}

// saleDateAfter pulls the short date phrase following a marker like
// "on sale", e.g. "tickets on sale friday" or "on sale nov 15".
func saleDateAfter(lower, marker string) string {
	idx := strings.LastIndex(lower, marker)
	if idx < 0 {
		return ""
	}
	rest := strings.TrimSpace(lower[idx+len(marker):])
	if rest == "" || strings.HasPrefix(rest, "now") {
		return ""
	}

	// Keep at most the first three words: enough for "november 15" or
	// "this friday" without swallowing unrelated copy.
	words := strings.Fields(rest)
	if len(words) > 3 {
		words = words[:3]
	}
	return strings.Trim(strings.Join(words, " "), ".,!:;")
}

// cleanText collapses whitespace in scraped text nodes.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate caps description length; listing blurbs can run long. The cut
// lands on a rune boundary so multibyte characters never get split.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
