package email

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"google.golang.org/genai"

	"screening-digest/pkg/domain"
)

// LLMFormatter asks Gemini to turn the grouped screenings into editorial
// prose. It wraps a template Formatter and falls back to it whenever the API
// call fails: the run must always produce a digest.
type LLMFormatter struct {
	client   *genai.Client
	model    string
	fallback *Formatter
}

// NewLLMFormatter creates a Gemini-backed formatter.
func NewLLMFormatter(ctx context.Context, apiKey string, now time.Time) (*LLMFormatter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &LLMFormatter{
		client:   client,
		model:    "gemini-flash-latest",
		fallback: NewFormatter(now),
	}, nil
}

// Format generates the digest body with Gemini; on any failure it logs and
// falls back to the template formatter.
func (f *LLMFormatter) Format(ctx context.Context, groups []domain.TheaterGroup) (string, string, error) {
	if !hasScreenings(groups) {
		// Nothing for the model to write about.
		return f.fallback.Format(groups)
	}

	prompt, err := f.buildPrompt(groups)
	if err != nil {
		log.Printf("LLM formatter: prompt build failed, using template: %v", err)
		return f.fallback.Format(groups)
	}

	result, err := f.client.Models.GenerateContent(ctx, f.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.7),
		MaxOutputTokens: 8000,
	})
	if err != nil {
		log.Printf("LLM formatter: generation failed, using template: %v", err)
		return f.fallback.Format(groups)
	}

	body := stripCodeFence(result.Text())
	if !strings.Contains(strings.ToLower(body), "<html") {
		log.Printf("LLM formatter: response is not an HTML document, using template")
		return f.fallback.Format(groups)
	}

	return f.fallback.Subject(), f.verify(ctx, body, prompt), nil
}

// verify runs a second model pass that checks the generated digest against
// the screening data: completeness, hallucinated entries, malformed HTML.
// Any failure keeps the unverified body; verification refines, never blocks.
func (f *LLMFormatter) verify(ctx context.Context, body, generationPrompt string) string {
	result, err := f.client.Models.GenerateContent(ctx, f.model,
		genai.Text(verificationPrompt(body, generationPrompt)),
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr[float32](0.3),
			MaxOutputTokens: 8000,
		})
	if err != nil {
		log.Printf("LLM formatter: verification failed, keeping unverified digest: %v", err)
		return body
	}

	verified := stripCodeFence(result.Text())
	if !strings.Contains(strings.ToLower(verified), "<html") {
		log.Printf("LLM formatter: verification returned non-HTML, keeping unverified digest")
		return body
	}
	return verified
}

// verificationPrompt frames the second pass as a QA edit of the first.
func verificationPrompt(body, generationPrompt string) string {
	var b strings.Builder
	b.WriteString("You are a quality assurance editor reviewing an HTML email newsletter about NYC movie screenings.\n")
	b.WriteString("Below is the writing task another system was given, and the HTML email it produced.\n\n")
	b.WriteString("Check that every screening from the data is included, that nothing was invented,\n")
	b.WriteString("that dates, times and URLs match the data exactly, and that the HTML is well-formed.\n")
	b.WriteString("Do not remove screenings unless they were invented, and preserve the writing style.\n")
	b.WriteString("Return the complete, corrected HTML email and nothing else.\n\n")
	b.WriteString("ORIGINAL TASK AND DATA:\n")
	b.WriteString(generationPrompt)
	b.WriteString("\n\nGENERATED HTML EMAIL TO VERIFY:\n")
	b.WriteString(body)
	return b.String()
}

// buildPrompt serializes the screening data and frames the writing task.
func (f *LLMFormatter) buildPrompt(groups []domain.TheaterGroup) (string, error) {
	data, err := json.MarshalIndent(groups, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal screenings: %w", err)
	}

	var b strings.Builder
	b.WriteString("You are writing a weekly email digest of special movie screenings in NYC.\n")
	b.WriteString("Write an enthusiastic but concise HTML email (complete <html> document, inline CSS)\n")
	b.WriteString("presenting these screenings grouped by theater, in the given order.\n")
	b.WriteString("Keep every title, date, ticket note and URL exactly as provided; do not invent screenings.\n\n")
	b.WriteString("Screening data (JSON):\n")
	b.Write(data)
	return b.String(), nil
}

// stripCodeFence removes a ```html ... ``` wrapper if the model added one.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```html")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
