package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiAdvisor implements Advisor using Google's Gemini models.
type GeminiAdvisor struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiAdvisor initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiAdvisor(ctx context.Context, apiKey string) (*GeminiAdvisor, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Flash keeps latency and cost low; the output is three plain sentences.
	model := client.GenerativeModel("gemini-2.0-flash")
	model.SetTemperature(0.4)

	return &GeminiAdvisor{client: client, model: model}, nil
}

// Close cleans up the Gemini client resources.
func (a *GeminiAdvisor) Close() {
	a.client.Close()
}

// AnalyzeRoute asks the model for a short logistics read on the trip.
func (a *GeminiAdvisor) AnalyzeRoute(ctx context.Context, q RouteQuery) (string, error) {
	prompt := buildRoutePrompt(q)

	resp, err := a.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response candidates from Gemini")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			out.WriteString(string(txt))
		}
	}
	text := strings.TrimSpace(out.String())
	if text == "" {
		return "", fmt.Errorf("empty response from Gemini")
	}
	return text, nil
}

func buildRoutePrompt(q RouteQuery) string {
	return fmt.Sprintf(`Act as a logistics expert for a trucking platform.
Analyze a trip from "%s" to "%s" with a distance of %.0fkm using a %s.

Provide a concise 3-sentence summary covering:
1. Expected traffic or terrain challenges (highway vs city).
2. Hidden costs to consider (tolls, wait times).
3. A recommended competitive price range per km.

Do not use markdown formatting. Keep it plain text.`,
		q.Pickup, q.Drop, q.DistanceKm, q.TruckType)
}
