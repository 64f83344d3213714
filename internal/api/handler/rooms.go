package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RoomUsers returns the current roster of a room. Same view the roomUsers
// broadcast carries, exposed for polling clients and operators.
func (h *Handler) RoomUsers(c *gin.Context) {
	room := c.Param("room")
	c.JSON(http.StatusOK, gin.H{
		"room":  room,
		"users": h.Hub.Registry.RoomMembers(room),
	})
}

// RoomMessages returns the message records currently indexed for a room.
// Process-lifetime only; nothing is persisted.
func (h *Handler) RoomMessages(c *gin.Context) {
	room := c.Param("room")
	c.JSON(http.StatusOK, gin.H{
		"room":     room,
		"messages": h.Hub.Index.ByRoom(room),
	})
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
