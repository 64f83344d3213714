package chathub

import (
	"encoding/json"
	"fmt"
	"log"

	"roomchat/backend/internal/config"
	"roomchat/backend/internal/models"
)

const (
	invalidPayloadText = "Invalid payload"
	kickedNoticeText   = "You have been kicked from the room."

	joinedTextFmt = "%s has joined the chat."
	leftTextFmt   = "%s has left the chat."
	kickedTextFmt = "%s has been kicked out of the room."
)

// handleJoinRoom moves a connection from Unjoined to Joined: validate the
// payload, register the participant, announce the join to the rest of the
// room and send the updated roster to everyone including the joiner.
func (h *Hub) handleJoinRoom(env models.Envelope) {
	var payload models.JoinPayload
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		h.NotifyConnection(env.SenderID, models.EventError, invalidPayloadText)
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		h.NotifyConnection(env.SenderID, models.EventError, invalidPayloadText)
		return
	}

	// A connection carries at most one participant; a repeated join from an
	// already-joined connection is ignored.
	if _, ok := h.Registry.CurrentUser(env.SenderID); ok {
		log.Printf("Join ignored: connection %s already joined a room", env.SenderID)
		return
	}

	user, err := h.Registry.Join(env.SenderID, payload.Username, payload.Room)
	if err != nil {
		h.NotifyConnection(env.SenderID, models.EventError, invalidPayloadText)
		return
	}

	h.NotifyRoomExcept(user.Room, user.ID, models.EventMessage,
		models.FormatMessage(config.SystemSender, fmt.Sprintf(joinedTextFmt, user.Username)))
	h.broadcastRoster(user.Room)
}

// handleDisconnect is the terminal transition for a connection. The transport
// reports each disconnect exactly once; if the connection had joined a room,
// the rest of the room gets a system notice and a fresh roster.
func (h *Hub) handleDisconnect(client Client) {
	connID := client.GetConnID()

	if _, ok := h.Clients[connID]; ok {
		delete(h.Clients, connID)
		client.Close()
	}

	user, ok := h.Registry.Leave(connID)
	if !ok {
		return
	}

	h.NotifyRoomExcept(user.Room, connID, models.EventMessage,
		models.FormatMessage(config.SystemSender, fmt.Sprintf(leftTextFmt, user.Username)))
	h.broadcastRoster(user.Room)
}

// handleKickUser evicts a participant by display name. Only a participant
// whose own display name equals the admin name may kick; anyone else is a
// logged no-op, as is a missing target. The kicked connection stays open but
// is no longer in any room, so its later content events do nothing.
func (h *Hub) handleKickUser(env models.Envelope) {
	var payload models.KickPayload
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		log.Printf("Error decoding kick payload from %s: %v", env.SenderID, err)
		return
	}

	issuer, ok := h.Registry.CurrentUser(env.SenderID)
	if !ok || issuer.Username != config.AdminUsername {
		log.Printf("Kick denied: connection %s is not an admin", env.SenderID)
		return
	}

	target, ok := h.Registry.FindInRoom(payload.Room, payload.Username)
	if !ok {
		log.Printf("Kick target %q not found in room %q", payload.Username, payload.Room)
		return
	}

	h.NotifyConnection(target.ID, models.EventKicked, kickedNoticeText)
	h.Registry.Leave(target.ID)

	// Everyone still in the room, the issuer included, sees the eviction.
	h.NotifyRoom(payload.Room, models.EventMessage,
		models.FormatMessage(config.SystemSender, fmt.Sprintf(kickedTextFmt, payload.Username)))
	h.broadcastRoster(payload.Room)
}
