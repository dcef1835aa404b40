package models

import "time"

// DateRange is a resolved reporting window with a display label.
// Start and End are inclusive bounds; they are compared against order
// timestamps with timezone information stripped.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

// TopItem is an aggregated per-product row, ranked by quantity sold.
type TopItem struct {
	Name         string `json:"name"`
	Qty          int    `json:"qty"`
	RevenueCents int64  `json:"revenue_cents"`
}

// TrendPoint is one calendar day of the revenue/order-count series.
// The series is always kept sorted ascending by Date.
type TrendPoint struct {
	Date         string `json:"date"`
	RevenueCents int64  `json:"revenue_cents"`
	Orders       int    `json:"orders"`
}

// Metrics holds the aggregate statistics for a filtered order set.
// TotalRevenueCents comes from recorded order totals and
// CalcRevenueCents from summed line items; the two may legitimately
// diverge and both are always reported.
type Metrics struct {
	OrderCount        int          `json:"order_count"`
	TotalRevenueCents int64        `json:"total_revenue_cents"`
	CalcRevenueCents  int64        `json:"calc_revenue_cents"`
	AOVCents          int64        `json:"aov_cents"`
	TopItems          []TopItem    `json:"top_items"`
	TrendDaily        []TrendPoint `json:"trend_daily"`
}
