package middleware

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"app/models"
)

const (
	historyKey = "conversation_history"
	// historyLimit bounds the per-session memory.
	historyLimit = 5
	// contextTurns is how many recent turns the agent sees.
	contextTurns = 3
)

var store *session.Store

// InitSessionStore sets up the in-memory session store used for
// per-client conversation history.
func InitSessionStore() {
	store = session.New()
}

// GetConversation returns the stored conversation history for the
// request's session. History is best-effort; any session failure
// yields an empty history rather than an error.
func GetConversation(c *fiber.Ctx) []models.ConversationTurn {
	sess, err := store.Get(c)
	if err != nil {
		log.Printf("⚠️  [SESSION] Failed to load session: %v", err)
		return nil
	}
	raw, ok := sess.Get(historyKey).(string)
	if !ok || raw == "" {
		return nil
	}
	var history []models.ConversationTurn
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		return nil
	}
	return history
}

// RecentTurns returns the tail of the history passed into the agent's
// prompt construction.
func RecentTurns(history []models.ConversationTurn) []models.ConversationTurn {
	if len(history) > contextTurns {
		return history[len(history)-contextTurns:]
	}
	return history
}

// AppendConversation records a question/answer turn, keeping only the
// most recent turns.
func AppendConversation(c *fiber.Ctx, history []models.ConversationTurn, turn models.ConversationTurn) {
	sess, err := store.Get(c)
	if err != nil {
		log.Printf("⚠️  [SESSION] Failed to load session: %v", err)
		return
	}
	history = append(history, turn)
	if len(history) > historyLimit {
		history = history[len(history)-historyLimit:]
	}
	raw, err := json.Marshal(history)
	if err != nil {
		return
	}
	sess.Set(historyKey, string(raw))
	if err := sess.Save(); err != nil {
		log.Printf("⚠️  [SESSION] Failed to save session: %v", err)
	}
}
