package scrapers

import (
	"time"

	"screening-digest/pkg/classifier"
	"screening-digest/pkg/httpclient"
)

// Default returns the full adapter set with per-site client profiles.
// Metrograph needs curl-style headers; the rest want browser headers.
func Default(timeout time.Duration, cls *classifier.Classifier) []Scraper {
	browser := httpclient.NewClientWithTimeout(httpclient.BrowserClient, timeout)
	cloudflare := httpclient.NewClientWithTimeout(httpclient.CloudflareClient, timeout)

	return []Scraper{
		NewFilmForum(browser, cls),
		NewFilmLinc(browser, cls),
		NewMetrograph(cloudflare, cls),
		NewIFCCenter(browser, cls),
		NewScreenSlate(browser, cls),
		NewReddit(cloudflare, cls),
	}
}
