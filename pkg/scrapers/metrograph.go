package scrapers

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"screening-digest/pkg/classifier"
	"screening-digest/pkg/config"
	"screening-digest/pkg/domain"
	"screening-digest/pkg/httpclient"
)

const metrographName = "Metrograph"

// Metrograph scrapes metrograph.com's calendar. The site sits behind
// Cloudflare, so the adapter expects a CloudflareClient.
type Metrograph struct {
	client     *httpclient.HTTPClient
	classifier *classifier.Classifier
	baseURL    string
}

// NewMetrograph creates the Metrograph adapter.
func NewMetrograph(client *httpclient.HTTPClient, cls *classifier.Classifier) *Metrograph {
	return &Metrograph{
		client:     client,
		classifier: cls,
		baseURL:    "https://metrograph.com",
	}
}

func (m *Metrograph) Name() string { return metrographName }

// Scrape fetches the calendar and parses one screening per item block.
// Metrograph announces upcoming ticket sales inline ("tickets on sale
// friday"), which feeds the availability heuristics.
func (m *Metrograph) Scrape(ctx context.Context) ([]domain.Screening, error) {
	doc, err := fetchDocument(ctx, m.client, m.baseURL+"/calendar")
	if err != nil {
		return nil, fmt.Errorf("metrograph: %w", err)
	}

	var screenings []domain.Screening
	doc.Find("div.calendar-list-item, div.film-item, article").Each(func(i int, sel *goquery.Selection) {
		if i >= 50 {
			return
		}
		if s, ok := m.parseItem(sel); ok {
			screenings = append(screenings, s)
		}
	})

	return screenings, nil
}

func (m *Metrograph) parseItem(sel *goquery.Selection) (domain.Screening, bool) {
	title := cleanText(sel.Find("h3, h4, a.title").First().Text())
	if title == "" {
		return domain.Screening{}, false
	}

	fullText := sel.Text()
	status, saleDate := extractTicketAvailability(fullText)

	ticketInfo := ""
	if info := sel.Find(".ticket-info, .availability").First(); info.Length() > 0 {
		ticketInfo = cleanText(info.Text())
	}

	url := ""
	if href, ok := sel.Find("a[href]").First().Attr("href"); ok {
		url = resolveURL(m.baseURL, href)
	}
	if url == "" {
		url = config.TheaterURL(metrographName)
	}

	return domain.Screening{
		Title:          title,
		Theater:        metrographName,
		Date:           cleanText(sel.Find(".date, time").First().Text()),
		TimeSlot:       cleanText(sel.Find(".time, .showtime").First().Text()),
		Description:    truncate(cleanText(sel.Find(".description, .synopsis, p").First().Text()), 200),
		SpecialNote:    m.classifier.Note(title, fullText),
		Director:       cleanText(sel.Find(".director").First().Text()),
		TicketInfo:     ticketInfo,
		TicketSaleDate: saleDate,
		TicketStatus:   status,
		URL:            url,
		Priority:       config.TheaterPriority(metrographName),
	}, true
}
