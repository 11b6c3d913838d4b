package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleActivityWebSocket handles GET /ws/activity — a live feed of newly
// created assignment records for dashboard clients.
func (h *Handler) HandleActivityWebSocket(c *gin.Context) {
	if h.hub == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Activity feed not available"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("⚠️ WebSocket upgrade failed: %v", err)
		return
	}

	h.hub.ServeWS(conn, c.Request.RemoteAddr)
}

// GetFeedStats handles GET /api/feed/stats
func (h *Handler) GetFeedStats(c *gin.Context) {
	if h.hub == nil || h.bus == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Activity feed not available"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"clients":         h.hub.ClientCount(),
		"eventsDelivered": h.hub.EventsDelivered(),
		"nats":            h.bus.GetStats(),
	})
}
