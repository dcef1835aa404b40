package models

// Totals carries the headline figures included in the analysis bundle.
type Totals struct {
	RevenueCents       int64 `json:"revenue_cents"`
	CalcRevenueCents   int64 `json:"calc_revenue_cents"`
	Orders             int   `json:"orders"`
	AvgOrderValueCents int64 `json:"avg_order_value_cents"`
}

// Comparison holds period-over-period figures for comparison questions.
// Nothing in the pipeline populates it yet; the explanation layer
// handles its absence explicitly.
type Comparison struct {
	RevCurrent     float64 `json:"rev_current"`
	RevPrevious    float64 `json:"rev_previous"`
	OrdersCurrent  int     `json:"orders_current"`
	OrdersPrevious int     `json:"orders_previous"`
	RevGrowthPct   float64 `json:"rev_growth_pct"`
	OrderGrowthPct float64 `json:"order_growth_pct"`
}

// ConversationTurn is one question/answer pair of the session history.
type ConversationTurn struct {
	User string `json:"user"`
	Bot  string `json:"bot"`
}

// Analysis is the full bundle handed to the explanation generator.
type Analysis struct {
	Question     string             `json:"question"`
	DateRange    DateRange          `json:"date_range"`
	Totals       Totals             `json:"totals"`
	TopItems     []TopItem          `json:"top_items"`
	Trend        []TrendPoint       `json:"trend"`
	TrendInsight string             `json:"trend_insight"`
	Comparison   *Comparison        `json:"comparison,omitempty"`
	Conversation []ConversationTurn `json:"conversation_context,omitempty"`
}

// AskRequest is the POST /ask body.
type AskRequest struct {
	Question string `json:"question" form:"question"`
}

// TopItemView is a top item with its revenue pre-formatted for display.
type TopItemView struct {
	Name    string `json:"name"`
	Qty     int    `json:"qty"`
	Revenue string `json:"revenue"`
}

// TrendView is one trend day with revenue in display dollars.
type TrendView struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// AskResponse is the POST /ask success payload.
type AskResponse struct {
	Label        string        `json:"label"`
	LLMAnswer    string        `json:"llm_answer"`
	ShowTop      bool          `json:"show_top"`
	ShowRevenue  bool          `json:"show_revenue"`
	ShowTrend    bool          `json:"show_trend"`
	ShowGeneral  bool          `json:"show_general"`
	Orders       int           `json:"orders"`
	Revenue      string        `json:"revenue"`
	CalcRevenue  string        `json:"calc_revenue"`
	AOV          string        `json:"aov"`
	TrendInsight string        `json:"trend_insight"`
	TopItems     []TopItemView `json:"top_items"`
	Trend        []TrendView   `json:"trend"`
}
