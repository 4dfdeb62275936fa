package scrapers

import (
	"fmt"
	"strings"

	"github.com/go-shiori/go-readability"
)

// extractSynopsis pulls the readable body text from a film detail page,
// trimmed to blurb length. Detail pages are article-shaped, so readability
// does better here than hand-picked selectors.
func extractSynopsis(htmlContent string) (string, error) {
	article, err := readability.FromReader(strings.NewReader(htmlContent), nil)
	if err != nil {
		return "", fmt.Errorf("failed to extract synopsis: %w", err)
	}

	text := cleanText(article.TextContent)
	if text == "" {
		return "", fmt.Errorf("no readable text found")
	}
	return truncate(text, 300), nil
}
