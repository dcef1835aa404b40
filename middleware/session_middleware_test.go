package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"app/models"
)

func TestRecentTurns(t *testing.T) {
	var history []models.ConversationTurn
	for i := 0; i < 5; i++ {
		history = append(history, models.ConversationTurn{User: fmt.Sprintf("q%d", i)})
	}

	recent := RecentTurns(history)
	assert.Len(t, recent, 3)
	assert.Equal(t, "q2", recent[0].User)
	assert.Equal(t, "q4", recent[2].User)

	assert.Len(t, RecentTurns(history[:2]), 2)
	assert.Empty(t, RecentTurns(nil))
}

func TestConversationHistoryBounded(t *testing.T) {
	InitSessionStore()

	app := fiber.New()
	app.Post("/turn", func(c *fiber.Ctx) error {
		history := GetConversation(c)
		AppendConversation(c, history, models.ConversationTurn{User: c.Query("q"), Bot: "ok"})
		return c.JSON(fiber.Map{"turns": len(history)})
	})
	var got []models.ConversationTurn
	app.Post("/peek", func(c *fiber.Ctx) error {
		got = GetConversation(c)
		return c.SendStatus(200)
	})

	var cookie string
	post := func(q string) *http.Response {
		req := httptest.NewRequest("POST", "/turn?q="+q, nil)
		if cookie != "" {
			req.Header.Set("Cookie", cookie)
		}
		resp, err := app.Test(req)
		assert.NoError(t, err)
		if sc := resp.Header.Get("Set-Cookie"); sc != "" {
			cookie = sc
		}
		return resp
	}

	for i := 0; i < 7; i++ {
		post(fmt.Sprintf("q%d", i))
	}

	// history is truncated to the most recent five turns
	peek := httptest.NewRequest("POST", "/peek", nil)
	peek.Header.Set("Cookie", cookie)
	_, err := app.Test(peek)
	assert.NoError(t, err)

	assert.Len(t, got, 5)
	assert.Equal(t, "q2", got[0].User)
	assert.Equal(t, "q6", got[4].User)
}
