package models

import "encoding/json"

// Inbound event names accepted from clients.
const (
	EventJoinRoom      = "joinRoom"
	EventTyping        = "typing"
	EventSendMessage   = "sendMessage"
	EventKickUser      = "kickUser"
	EventUpdateMessage = "updateMessage"
	EventUpdateReply   = "updateReply"
	EventSendReply     = "sendReply"
	EventDeleteMessage = "deleteMessage"
	EventDeleteReply   = "deleteReply"
)

// Outbound event names emitted to clients.
const (
	EventError          = "error"
	EventMessage        = "message"
	EventRoomUsers      = "roomUsers"
	EventTypingNotice   = "typing"
	EventKicked         = "kicked"
	EventMessageUpdate  = "messageUpdate"
	EventReplyUpdate    = "replyUpdate"
	EventReply          = "reply"
	EventMessageDeleted = "messageDeleted"
	EventReplyDeleted   = "replyDeleted"
)

// Envelope is the frame exchanged with clients over the transport: an event
// name plus an opaque payload. SenderID is stamped by the transport on
// inbound frames and never serialized.
type Envelope struct {
	Event    string          `json:"event"`
	Data     json.RawMessage `json:"data,omitempty"`
	SenderID string          `json:"-"`
}

// NewEnvelope builds an outbound frame, serializing the payload.
func NewEnvelope(event string, payload any) (Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{Event: event, Data: data}, nil
}
