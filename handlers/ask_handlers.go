package handlers

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"app/agent"
	"app/middleware"
	"app/models"
	"app/salesapi"
	"app/utils"
)

var (
	ordersClient *salesapi.Client
	explainer    *agent.Explainer
)

// Setup wires the handlers to their collaborators.
func Setup(client *salesapi.Client, exp *agent.Explainer) {
	ordersClient = client
	explainer = exp
}

var (
	showTopKeywords     = []string{"top", "best", "selling", "item", "product"}
	showRevenueKeywords = []string{"revenue", "income", "sales total"}
	showTrendKeywords   = []string{"trend", "compare", "growth", "week", "day", "month"}
)

func matchesAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// HandleAsk answers a natural-language sales question.
// POST /ask
func HandleAsk(c *fiber.Ctx) error {
	var req models.AskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Please provide a question."})
	}

	q := strings.TrimSpace(req.Question)
	if q == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Please provide a question."})
	}

	history := middleware.GetConversation(c)

	now := time.Now().UTC()
	rng := utils.ParseDateRange(q, now)
	log.Printf("📊 [ASK] Question: %q, Range: %s", q, rng.Label)

	orders, err := ordersClient.FetchRecentOrders(c.Context())
	if err != nil {
		log.Printf("❌ [ASK] Orders fetch failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Something went wrong: " + err.Error(),
		})
	}

	filtered := utils.FilterOrders(orders, rng)
	metrics := utils.AggregateMetrics(filtered)
	trendInsight := utils.AnalyzeTrend(metrics.TrendDaily)

	analysis := models.Analysis{
		Question:  q,
		DateRange: rng,
		Totals: models.Totals{
			RevenueCents:       metrics.TotalRevenueCents,
			CalcRevenueCents:   metrics.CalcRevenueCents,
			Orders:             metrics.OrderCount,
			AvgOrderValueCents: metrics.AOVCents,
		},
		TopItems:     metrics.TopItems,
		Trend:        metrics.TrendDaily,
		TrendInsight: trendInsight,
		Conversation: middleware.RecentTurns(history),
	}

	answer := explainer.Explain(c.Context(), analysis)

	middleware.AppendConversation(c, history, models.ConversationTurn{User: q, Bot: answer})

	qLower := strings.ToLower(q)
	showTop := matchesAny(qLower, showTopKeywords)
	showRevenue := matchesAny(qLower, showRevenueKeywords)
	showTrend := matchesAny(qLower, showTrendKeywords)

	topItems := make([]models.TopItemView, 0, len(metrics.TopItems))
	for _, item := range metrics.TopItems {
		topItems = append(topItems, models.TopItemView{
			Name:    item.Name,
			Qty:     item.Qty,
			Revenue: utils.FriendlyCurrency(item.RevenueCents),
		})
	}

	trend := make([]models.TrendView, 0, len(metrics.TrendDaily))
	for _, p := range metrics.TrendDaily {
		trend = append(trend, models.TrendView{
			Date:    p.Date,
			Revenue: float64(p.RevenueCents) / 100.0,
			Orders:  p.Orders,
		})
	}

	log.Printf("✅ [ASK] Answered with %d orders over %d trend days", metrics.OrderCount, len(metrics.TrendDaily))
	return c.JSON(models.AskResponse{
		Label:        rng.Label,
		LLMAnswer:    answer,
		ShowTop:      showTop,
		ShowRevenue:  showRevenue,
		ShowTrend:    showTrend,
		ShowGeneral:  !(showTop || showRevenue || showTrend),
		Orders:       metrics.OrderCount,
		Revenue:      utils.FriendlyCurrency(metrics.TotalRevenueCents),
		CalcRevenue:  utils.FriendlyCurrency(metrics.CalcRevenueCents),
		AOV:          utils.FriendlyCurrency(metrics.AOVCents),
		TrendInsight: trendInsight,
		TopItems:     topItems,
		Trend:        trend,
	})
}
