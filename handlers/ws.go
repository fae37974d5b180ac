package handlers

import (
	"log"
	"time"

	"github.com/fintrack/fintrack-api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

// WSHandler pushes refresh signals to connected clients. Whenever a
// transaction or budget write lands, every session of that user gets a small
// typed message telling it to re-pull the dashboard; the engine itself stays
// pull-only.
type WSHandler struct {
	M *melody.Melody
}

func NewWSHandler() *WSHandler {
	m := melody.New()

	m.Config.MaxMessageSize = 1024 * 1024

	// Keep-alive matters behind cloud load balancers
	m.Config.PingPeriod = 30 * time.Second
	m.Config.PongWait = 60 * time.Second

	m.HandleDisconnect(func(s *melody.Session) {
		userID, _ := s.Get("user_id")
		log.Printf("🔌 Client disconnected: user %v", userID)
	})

	m.HandleError(func(s *melody.Session, err error) {
		log.Printf("❌ WebSocket error: %v", err)
	})

	return &WSHandler{M: m}
}

// HandleWS upgrades the request and binds the session to the authenticated user.
func (h *WSHandler) HandleWS(c *gin.Context) {
	userID := middleware.GetUserID(c)

	h.M.HandleConnect(func(s *melody.Session) {
		s.Set("user_id", userID)
		log.Printf("✅ Client connected: user %s", userID)
	})

	if err := h.M.HandleRequest(c.Writer, c.Request); err != nil {
		log.Printf("❌ Failed to upgrade websocket: %v", err)
	}
}

// BroadcastRefresh signals all of the user's sessions to re-fetch.
func (h *WSHandler) BroadcastRefresh(userID string, updateType string) {
	msg := []byte(`{"type": "` + updateType + `"}`)

	err := h.M.BroadcastFilter(msg, func(q *melody.Session) bool {
		id, exists := q.Get("user_id")
		return exists && id == userID
	})

	if err != nil {
		log.Printf("⚠️ Error broadcasting to user %s: %v", userID, err)
	}
}
