package agent

import (
	"fmt"
	"strings"

	"app/models"
	"app/utils"
)

// FallbackExplanation builds a deterministic answer from the analysis
// bundle, used whenever the Gemini API is unavailable or fails. It
// never errors, even on empty data.
func FallbackExplanation(analysis models.Analysis) string {
	label := analysis.DateRange.Label
	lines := []string{}

	switch detectIntent(analysis.Question) {
	case intentCompare:
		lines = append(lines, fmt.Sprintf("Here's the comparison summary for %s:", label))
		comp := analysis.Comparison
		if comp == nil {
			lines = append(lines, "No comparison data available for the requested periods.")
			break
		}
		lines = append(lines, fmt.Sprintf("Current period revenue: $%.2f", comp.RevCurrent))
		lines = append(lines, fmt.Sprintf("Previous period revenue: $%.2f", comp.RevPrevious))
		lines = append(lines, fmt.Sprintf("Revenue change: %+.1f%%", comp.RevGrowthPct))
		lines = append(lines, fmt.Sprintf("Orders change: %+.1f%%", comp.OrderGrowthPct))
		switch {
		case comp.RevGrowthPct > 0:
			lines = append(lines, "\nSales performance improved compared to the previous period.")
		case comp.RevGrowthPct < 0:
			lines = append(lines, "\nSales performance declined compared to the previous period.")
		default:
			lines = append(lines, "\nSales performance remained flat.")
		}

	case intentTop:
		lines = append(lines, fmt.Sprintf("Here's what I found for %s:", label))
		if len(analysis.TopItems) == 0 {
			lines = append(lines, "No product sales data found for this period.")
			break
		}
		lines = append(lines, "Top 5 best-selling products:")
		lines = append(lines, itemLines(analysis.TopItems, 5)...)

	case intentTrend:
		lines = append(lines, fmt.Sprintf("Here's the sales trend for %s:", label))
		if len(analysis.Trend) == 0 {
			lines = append(lines, "No trend data available.")
		} else {
			for _, p := range analysis.Trend {
				lines = append(lines, fmt.Sprintf("• %s: %s (%d orders)", p.Date, utils.FriendlyCurrency(p.RevenueCents), p.Orders))
			}
		}
		if analysis.TrendInsight != "" {
			lines = append(lines, fmt.Sprintf("\nTrend insight: %s", analysis.TrendInsight))
		}

	default:
		lines = append(lines, fmt.Sprintf("Here's what I found for %s:", label))
		lines = append(lines, fmt.Sprintf("- Orders: %d", analysis.Totals.Orders))
		lines = append(lines, fmt.Sprintf("- Revenue: %s", utils.FriendlyCurrency(analysis.Totals.RevenueCents)))
		lines = append(lines, fmt.Sprintf("- Average order value: %s", utils.FriendlyCurrency(analysis.Totals.AvgOrderValueCents)))
		if len(analysis.TopItems) > 0 {
			lines = append(lines, "\nTop items:")
			lines = append(lines, itemLines(analysis.TopItems, 3)...)
		}
		if analysis.TrendInsight != "" {
			lines = append(lines, fmt.Sprintf("\nTrend insight: %s", analysis.TrendInsight))
		}
	}

	return strings.Join(lines, "\n")
}

// itemLines renders up to limit ranked product lines.
func itemLines(items []models.TopItem, limit int) []string {
	if len(items) > limit {
		items = items[:limit]
	}
	lines := make([]string, 0, len(items))
	for i, item := range items {
		lines = append(lines, fmt.Sprintf("%d. %s — %d sold (%s)", i+1, item.Name, item.Qty, utils.FriendlyCurrency(item.RevenueCents)))
	}
	return lines
}
