package handler

import "roomchat/backend/internal/chathub"

// Handler carries the hub shared by every route.
type Handler struct {
	Hub *chathub.Hub
}

func NewHandler(hub *chathub.Hub) *Handler {
	return &Handler{Hub: hub}
}
