package utils

import (
	"fmt"
	"math"

	"app/models"
)

// AnalyzeTrend generates a human-readable insight about a daily revenue
// series. The series must be sorted ascending by date, as produced by
// AggregateMetrics.
func AnalyzeTrend(trend []models.TrendPoint) string {
	if len(trend) == 0 {
		return "No sales data available for the selected period."
	}
	if len(trend) < 2 {
		return "Sales appear consistent for the selected period."
	}

	startRev := trend[0].RevenueCents
	endRev := trend[len(trend)-1].RevenueCents
	var pct float64
	if startRev > 0 {
		pct = float64(endRev-startRev) / float64(startRev) * 100
	}

	maxDay, minDay := trend[0].Date, trend[0].Date
	maxRev, minRev := trend[0].RevenueCents, trend[0].RevenueCents
	for _, p := range trend[1:] {
		if p.RevenueCents > maxRev {
			maxRev, maxDay = p.RevenueCents, p.Date
		}
		if p.RevenueCents < minRev {
			minRev, minDay = p.RevenueCents, p.Date
		}
	}

	var direction string
	switch {
	case pct > 10:
		direction = fmt.Sprintf("Sales increased %.0f%% from %s to %s.", pct, trend[0].Date, trend[len(trend)-1].Date)
	case pct < -10:
		direction = fmt.Sprintf("Sales decreased %.0f%% from %s to %s.", math.Abs(pct), trend[0].Date, trend[len(trend)-1].Date)
	default:
		direction = "Sales remained fairly steady during this period."
	}

	return fmt.Sprintf("%s %s had the highest revenue, while %s was the lowest.", direction, maxDay, minDay)
}
