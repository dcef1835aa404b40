package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"app/models"
)

const (
	geminiModel   = "gemini-2.5-pro"
	geminiTimeout = 30 * time.Second

	systemInstruction = "You are a professional sales analyst. " +
		"Always stay factual. " +
		"Summarize or compare sales metrics precisely. " +
		"If the question asks for comparison, describe differences in percentages and state whether performance improved or declined. " +
		"For 'top' or 'best-selling' questions, list top 5 products. " +
		"For 'trend' or 'growth', explain daily changes clearly. " +
		"For totals, summarize overall orders, revenue, and AOV."
)

// Explainer turns an analysis bundle into a natural-language answer,
// via Gemini when an API key is configured and via the deterministic
// fallback otherwise. A missing key is a normal state, not an error.
type Explainer struct {
	apiKey string
}

// NewExplainer creates an Explainer. apiKey may be empty.
func NewExplainer(apiKey string) *Explainer {
	return &Explainer{apiKey: apiKey}
}

// Explain produces the answer text. Failures from the Gemini API are
// never propagated; they route to the fallback with a diagnostic note
// appended.
func (e *Explainer) Explain(ctx context.Context, analysis models.Analysis) string {
	if e.apiKey == "" {
		return FallbackExplanation(analysis)
	}

	answer, err := e.generate(ctx, analysis)
	if err != nil {
		log.Printf("⚠️  [AGENT] Gemini call failed, using fallback: %v", err)
		return FallbackExplanation(analysis) + fmt.Sprintf("\n\n(Note: LLM fallback due to: %v)", err)
	}
	return answer
}

func (e *Explainer) generate(ctx context.Context, analysis models.Analysis) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, geminiTimeout)
	defer cancel()

	client, err := genai.NewClient(ctx, option.WithAPIKey(e.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create AI client: %w", err)
	}
	defer client.Close()

	prompt, err := constructAnalysisPrompt(analysis)
	if err != nil {
		return "", err
	}

	model := client.GenerativeModel(geminiModel)
	resp, err := model.GenerateContent(ctx, genai.Text(systemInstruction), genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate analysis: %w", err)
	}

	text, err := extractText(resp)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// constructAnalysisPrompt lays out the analysis bundle for the model.
func constructAnalysisPrompt(analysis models.Analysis) (string, error) {
	totalsJSON, err := json.Marshal(analysis.Totals)
	if err != nil {
		return "", fmt.Errorf("failed to serialize totals: %w", err)
	}

	topItems := analysis.TopItems
	if len(topItems) > 10 {
		topItems = topItems[:10]
	}
	topJSON, err := json.Marshal(topItems)
	if err != nil {
		return "", fmt.Errorf("failed to serialize top items: %w", err)
	}

	trendJSON, err := json.Marshal(analysis.Trend)
	if err != nil {
		return "", fmt.Errorf("failed to serialize trend: %w", err)
	}

	comparisonJSON := []byte("{}")
	if analysis.Comparison != nil {
		comparisonJSON, err = json.Marshal(analysis.Comparison)
		if err != nil {
			return "", fmt.Errorf("failed to serialize comparison: %w", err)
		}
	}

	conversation := ""
	if len(analysis.Conversation) > 0 {
		var b strings.Builder
		b.WriteString("\nRecent conversation:\n")
		for _, turn := range analysis.Conversation {
			fmt.Fprintf(&b, "User: %s\nAnalyst: %s\n", turn.User, turn.Bot)
		}
		conversation = b.String()
	}

	return fmt.Sprintf(`
User Question: %s

Date Range: %s (%s → %s)

Totals: %s

Top Items: %s

Trend (daily revenue & orders): %s

Comparison: %s
%s
Now provide a clear, concise, data-based answer suitable for a business report.
`,
		analysis.Question,
		analysis.DateRange.Label,
		analysis.DateRange.Start.Format(time.RFC3339),
		analysis.DateRange.End.Format(time.RFC3339),
		totalsJSON,
		topJSON,
		trendJSON,
		comparisonJSON,
		conversation,
	), nil
}

// extractText collects the text parts of a Gemini response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content received from AI")
	}

	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text += string(txt)
		}
	}
	if text == "" {
		return "", fmt.Errorf("no text content received from AI")
	}
	return text, nil
}
