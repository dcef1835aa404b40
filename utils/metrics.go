package utils

import (
	"sort"

	"app/models"
)

const topItemLimit = 10

// AggregateMetrics computes both recorded and calculated revenue, AOV,
// top items, and the daily trend for an already-filtered order set.
// The daily trend uses a hybrid figure per order: the recorded total
// when positive, otherwise the summed line items, so days stay accurate
// even when some orders are missing a total. Inputs are not mutated.
func AggregateMetrics(orders []models.Order) models.Metrics {
	var totalRevenue, calcRevenue int64

	type dayAgg struct {
		revenue int64
		orders  int
	}
	trendByDay := make(map[string]*dayAgg)

	itemQty := make(map[string]float64)
	itemRevenue := make(map[string]float64)
	itemOrder := make([]string, 0) // names in first-seen order, for stable ranking

	for _, o := range orders {
		orderTotal := o.TotalCents()
		lineTotal := o.LineTotalCents()
		day := o.CreatedDate()

		totalRevenue += orderTotal
		calcRevenue += lineTotal

		agg, ok := trendByDay[day]
		if !ok {
			agg = &dayAgg{}
			trendByDay[day] = agg
		}
		if orderTotal > 0 {
			agg.revenue += orderTotal
		} else {
			agg.revenue += lineTotal
		}
		agg.orders++

		for _, li := range o.LineItems {
			name := li.DisplayName()
			if _, seen := itemQty[name]; !seen {
				itemOrder = append(itemOrder, name)
			}
			itemQty[name] += li.Quantity()
			itemRevenue[name] += float64(li.PriceCents()) * li.Quantity()
		}
	}

	// Rank by quantity, ties kept in first-seen order.
	ranked := make([]string, len(itemOrder))
	copy(ranked, itemOrder)
	sort.SliceStable(ranked, func(i, j int) bool {
		return itemQty[ranked[i]] > itemQty[ranked[j]]
	})
	if len(ranked) > topItemLimit {
		ranked = ranked[:topItemLimit]
	}
	topItems := make([]models.TopItem, 0, len(ranked))
	for _, name := range ranked {
		topItems = append(topItems, models.TopItem{
			Name:         name,
			Qty:          int(itemQty[name]),
			RevenueCents: int64(itemRevenue[name]),
		})
	}

	var aov int64
	if len(orders) > 0 {
		aov = totalRevenue / int64(len(orders))
	}

	days := make([]string, 0, len(trendByDay))
	for day := range trendByDay {
		days = append(days, day)
	}
	sort.Strings(days)
	trend := make([]models.TrendPoint, 0, len(days))
	for _, day := range days {
		trend = append(trend, models.TrendPoint{
			Date:         day,
			RevenueCents: trendByDay[day].revenue,
			Orders:       trendByDay[day].orders,
		})
	}

	return models.Metrics{
		OrderCount:        len(orders),
		TotalRevenueCents: totalRevenue,
		CalcRevenueCents:  calcRevenue,
		AOVCents:          aov,
		TopItems:          topItems,
		TrendDaily:        trend,
	}
}
