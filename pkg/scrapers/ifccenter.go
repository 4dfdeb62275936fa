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

const ifcCenterName = "IFC Center"

// IFCCenter scrapes the IFC Center coming-soon listings.
type IFCCenter struct {
	client     *httpclient.HTTPClient
	classifier *classifier.Classifier
	baseURL    string
}

// NewIFCCenter creates the IFC Center adapter.
func NewIFCCenter(client *httpclient.HTTPClient, cls *classifier.Classifier) *IFCCenter {
	return &IFCCenter{
		client:     client,
		classifier: cls,
		baseURL:    "https://www.ifccenter.com",
	}
}

func (f *IFCCenter) Name() string { return ifcCenterName }

// Scrape fetches the coming-soon page; each film sits in a details block.
func (f *IFCCenter) Scrape(ctx context.Context) ([]domain.Screening, error) {
	doc, err := fetchDocument(ctx, f.client, f.baseURL+"/coming-soon/")
	if err != nil {
		return nil, fmt.Errorf("ifc center: %w", err)
	}

	var screenings []domain.Screening
	doc.Find("div.details, li.film, article").Each(func(i int, sel *goquery.Selection) {
		if i >= 40 {
			return
		}
		if s, ok := f.parseFilm(sel); ok {
			screenings = append(screenings, s)
		}
	})

	return screenings, nil
}

func (f *IFCCenter) parseFilm(sel *goquery.Selection) (domain.Screening, bool) {
	title := cleanText(sel.Find("h3 a, h3, h2").First().Text())
	if title == "" {
		return domain.Screening{}, false
	}

	url := ""
	if href, ok := sel.Find("a[href]").First().Attr("href"); ok {
		url = resolveURL(f.baseURL, href)
	}
	if url == "" {
		url = config.TheaterURL(ifcCenterName)
	}

	status, saleDate := extractTicketAvailability(sel.Text())

	return domain.Screening{
		Title:          title,
		Theater:        ifcCenterName,
		Date:           cleanText(sel.Find(".date, time, .opens").First().Text()),
		Description:    truncate(cleanText(sel.Find("p, .synopsis").First().Text()), 200),
		SpecialNote:    f.classifier.Note(title, sel.Text()),
		Director:       cleanText(sel.Find(".director").First().Text()),
		TicketSaleDate: saleDate,
		TicketStatus:   status,
		URL:            url,
		Priority:       config.TheaterPriority(ifcCenterName),
	}, true
}
