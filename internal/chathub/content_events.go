package chathub

import (
	"encoding/json"
	"log"

	"roomchat/backend/internal/models"
)

// Content events are stateless relays keyed by the sender's current room.
// Every handler here is a no-op when the sender has not joined a room, which
// is also what makes a kicked-but-still-connected client harmless.

func (h *Hub) handleSendMessage(env models.Envelope) {
	user, ok := h.Registry.CurrentUser(env.SenderID)
	if !ok {
		return
	}

	var payload models.SendMessagePayload
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		log.Printf("Error decoding message payload from %s: %v", env.SenderID, err)
		return
	}

	h.Index.Record(user.Room, payload.MessageID, payload.Text)

	msg := models.FormatMessage(user.Username, payload.Text)
	msg.MessageID = payload.MessageID
	h.NotifyRoom(user.Room, models.EventMessage, msg)
}

func (h *Hub) handleTyping(env models.Envelope) {
	if _, ok := h.Registry.CurrentUser(env.SenderID); !ok {
		return
	}

	var payload models.TypingPayload
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		log.Printf("Error decoding typing payload from %s: %v", env.SenderID, err)
		return
	}

	h.NotifyRoomExcept(payload.Room, env.SenderID, models.EventTypingNotice, payload.Username)
}

func (h *Hub) handleUpdateMessage(env models.Envelope) {
	user, ok := h.Registry.CurrentUser(env.SenderID)
	if !ok {
		return
	}

	var payload models.UpdateMessagePayload
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		log.Printf("Error decoding update payload from %s: %v", env.SenderID, err)
		return
	}

	// Edits are relayed only; the index keeps the original content.
	h.NotifyRoom(user.Room, models.EventMessageUpdate, models.MessageUpdate{
		MessageID: payload.MessageID,
		Text:      payload.Text,
		Edited:    true,
	})
}

func (h *Hub) handleUpdateReply(env models.Envelope) {
	user, ok := h.Registry.CurrentUser(env.SenderID)
	if !ok {
		return
	}

	var payload models.UpdateReplyPayload
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		log.Printf("Error decoding reply update payload from %s: %v", env.SenderID, err)
		return
	}

	h.NotifyRoom(user.Room, models.EventReplyUpdate, models.ReplyUpdate{
		ReplyID: payload.ReplyID,
		Text:    payload.Text,
		Edited:  true,
	})
}

func (h *Hub) handleSendReply(env models.Envelope) {
	user, ok := h.Registry.CurrentUser(env.SenderID)
	if !ok {
		return
	}

	var payload models.SendReplyPayload
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		log.Printf("Error decoding reply payload from %s: %v", env.SenderID, err)
		return
	}

	// Replies are never indexed server-side.
	h.NotifyRoom(user.Room, models.EventReply, models.Reply{
		Text:              payload.Text,
		ReplyID:           payload.ReplyID,
		OriginalMessageID: payload.OriginalMessageID,
	})
}

func (h *Hub) handleDeleteMessage(env models.Envelope) {
	user, ok := h.Registry.CurrentUser(env.SenderID)
	if !ok {
		return
	}

	var messageID models.FlexID
	if err := json.Unmarshal(env.Data, &messageID); err != nil {
		log.Printf("Error decoding delete payload from %s: %v", env.SenderID, err)
		return
	}

	// The deletion broadcast goes out whether or not the id was indexed.
	h.Index.RemoveByMessageID(messageID)
	h.NotifyRoom(user.Room, models.EventMessageDeleted, messageID)
}

func (h *Hub) handleDeleteReply(env models.Envelope) {
	user, ok := h.Registry.CurrentUser(env.SenderID)
	if !ok {
		return
	}

	var replyID models.FlexID
	if err := json.Unmarshal(env.Data, &replyID); err != nil {
		log.Printf("Error decoding reply delete payload from %s: %v", env.SenderID, err)
		return
	}

	h.NotifyRoom(user.Room, models.EventReplyDeleted, replyID)
}
