package agent

import "strings"

// intent is the detected question category driving prompt formatting
// and fallback template selection.
type intent int

const (
	intentSummary intent = iota
	intentCompare
	intentTop
	intentTrend
)

var (
	compareKeywords = []string{"compare", "versus", "vs", "difference", "improve"}
	topKeywords     = []string{"top", "best", "product", "item"}
	trendKeywords   = []string{"trend", "growth", "increase", "decrease", "pattern"}
)

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// detectIntent classifies a question by keyword presence. Comparison
// questions win over top-item questions, which win over trend
// questions; anything else is a general summary.
func detectIntent(question string) intent {
	q := strings.ToLower(question)
	switch {
	case containsAny(q, compareKeywords):
		return intentCompare
	case containsAny(q, topKeywords):
		return intentTop
	case containsAny(q, trendKeywords):
		return intentTrend
	default:
		return intentSummary
	}
}
