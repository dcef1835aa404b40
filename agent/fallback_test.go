package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"app/models"
)

func baseAnalysis(question string) models.Analysis {
	return models.Analysis{
		Question: question,
		DateRange: models.DateRange{
			Label: "Today (2024-03-01)",
		},
		Totals: models.Totals{
			RevenueCents:       150000,
			CalcRevenueCents:   149000,
			Orders:             42,
			AvgOrderValueCents: 3571,
		},
		TopItems: []models.TopItem{
			{Name: "Latte", Qty: 30, RevenueCents: 15000},
			{Name: "Espresso", Qty: 25, RevenueCents: 7500},
			{Name: "Mocha", Qty: 20, RevenueCents: 11000},
			{Name: "Flat White", Qty: 15, RevenueCents: 6750},
			{Name: "Drip", Qty: 10, RevenueCents: 2500},
			{Name: "Cortado", Qty: 5, RevenueCents: 2250},
		},
		Trend: []models.TrendPoint{
			{Date: "2024-03-01", RevenueCents: 150000, Orders: 42},
		},
		TrendInsight: "Sales appear consistent for the selected period.",
	}
}

func TestFallbackSummary(t *testing.T) {
	out := FallbackExplanation(baseAnalysis("how did we do"))

	assert.Contains(t, out, "Here's what I found for Today (2024-03-01):")
	assert.Contains(t, out, "- Orders: 42")
	assert.Contains(t, out, "- Revenue: $1500.00")
	assert.Contains(t, out, "- Average order value: $35.71")
	assert.Contains(t, out, "Top items:")
	assert.Contains(t, out, "Trend insight: Sales appear consistent")
	// the summary lists at most 3 items
	assert.NotContains(t, out, "Flat White")
}

func TestFallbackTopBranch(t *testing.T) {
	out := FallbackExplanation(baseAnalysis("top products please"))

	assert.Contains(t, out, "Top 5 best-selling products:")
	assert.Contains(t, out, "1. Latte — 30 sold ($150.00)")
	assert.Contains(t, out, "5. Drip — 10 sold ($25.00)")
	assert.NotContains(t, out, "Cortado")
}

func TestFallbackTrendBranch(t *testing.T) {
	out := FallbackExplanation(baseAnalysis("show me the growth pattern"))

	assert.Contains(t, out, "Here's the sales trend for Today (2024-03-01):")
	assert.Contains(t, out, "• 2024-03-01: $1500.00 (42 orders)")
	assert.Contains(t, out, "Trend insight:")
}

func TestFallbackComparisonWithoutData(t *testing.T) {
	out := FallbackExplanation(baseAnalysis("compare this week to last week"))

	assert.Contains(t, out, "Here's the comparison summary for Today (2024-03-01):")
	assert.Contains(t, out, "No comparison data available for the requested periods.")
}

func TestFallbackComparisonWithData(t *testing.T) {
	a := baseAnalysis("did we improve versus last week")
	a.Comparison = &models.Comparison{
		RevCurrent:     1200.50,
		RevPrevious:    1000.00,
		OrdersCurrent:  40,
		OrdersPrevious: 35,
		RevGrowthPct:   20.1,
		OrderGrowthPct: 14.3,
	}
	out := FallbackExplanation(a)

	assert.Contains(t, out, "Current period revenue: $1200.50")
	assert.Contains(t, out, "Previous period revenue: $1000.00")
	assert.Contains(t, out, "Revenue change: +20.1%")
	assert.Contains(t, out, "Orders change: +14.3%")
	assert.Contains(t, out, "Sales performance improved compared to the previous period.")
}

func TestFallbackComparisonBeatsTop(t *testing.T) {
	// "compare" outranks the "top" keyword also present in the question
	out := FallbackExplanation(baseAnalysis("compare our top products"))
	assert.Contains(t, out, "comparison summary")
	assert.NotContains(t, out, "Top 5 best-selling products:")
}

func TestFallbackNeverEmptyOnBareAnalysis(t *testing.T) {
	questions := []string{
		"compare periods",
		"top items",
		"what's the trend",
		"summary please",
	}
	for _, q := range questions {
		out := FallbackExplanation(models.Analysis{
			Question:  q,
			DateRange: models.DateRange{Label: "Today (2024-03-01)"},
		})
		assert.NotEmpty(t, out, "empty fallback for %q", q)
		assert.True(t, strings.HasPrefix(out, "Here's"), "unexpected opener for %q: %s", q, out)
	}
}

func TestDetectIntentPriority(t *testing.T) {
	assert.Equal(t, intentCompare, detectIntent("compare top trend"))
	assert.Equal(t, intentTop, detectIntent("best trend item"))
	assert.Equal(t, intentTrend, detectIntent("growth pattern"))
	assert.Equal(t, intentSummary, detectIntent("how are sales"))
}

func TestExplainWithoutAPIKeyUsesFallback(t *testing.T) {
	e := NewExplainer("")
	out := e.Explain(context.Background(), baseAnalysis("how did we do"))
	assert.Contains(t, out, "Here's what I found for Today (2024-03-01):")
	assert.NotContains(t, out, "LLM fallback due to")
}
