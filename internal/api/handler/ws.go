package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"roomchat/backend/internal/chathub"
	"roomchat/backend/internal/config"
	"roomchat/backend/internal/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allows connections from any origin. Tighten for production!
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWebSocket upgrades the HTTP connection to WebSocket and hands it to
// the hub. Each connection gets a fresh identifier; joining a room is a
// separate joinRoom frame sent by the client afterwards.
func (h *Handler) ServeWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
		return
	}

	client := &chathub.WebSocketClient{
		Hub:    h.Hub,
		ConnID: uuid.NewString(),
		Conn:   conn,
		Send:   make(chan models.Envelope, config.SendBufferSize),
	}

	// Register before the pumps start so the first inbound frame already
	// finds the connection in the hub.
	h.Hub.RegisterCh <- client
	client.Run()
}
