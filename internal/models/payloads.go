package models

// JoinPayload is the joinRoom request. Both fields are required; a join with
// either missing is rejected with an error frame.
type JoinPayload struct {
	Username string `json:"username" validate:"required"`
	Room     string `json:"room" validate:"required"`
}

// TypingPayload announces that a user is composing a message. Ephemeral: it
// is relayed to the rest of the room and recorded nowhere.
type TypingPayload struct {
	Room     string `json:"room"`
	Username string `json:"username"`
}

// SendMessagePayload carries a top-level chat message. The identifier is
// caller-supplied and assumed unique for the process lifetime.
type SendMessagePayload struct {
	Text      string `json:"text"`
	MessageID FlexID `json:"messageId"`
}

// KickPayload asks the server to evict a participant by display name.
type KickPayload struct {
	Room     string `json:"room"`
	Username string `json:"username"`
}

// UpdateMessagePayload edits a previously sent message.
type UpdateMessagePayload struct {
	MessageID FlexID `json:"messageId"`
	Text      string `json:"text"`
}

// UpdateReplyPayload edits a previously sent reply.
type UpdateReplyPayload struct {
	ReplyID FlexID `json:"replyId"`
	Text    string `json:"text"`
}

// SendReplyPayload carries a reply to an existing message.
type SendReplyPayload struct {
	Text              string `json:"text"`
	ReplyID           FlexID `json:"replyId"`
	OriginalMessageID FlexID `json:"originalMessageId"`
}

// MessageUpdate is the broadcast emitted after an edit.
type MessageUpdate struct {
	MessageID FlexID `json:"messageId"`
	Text      string `json:"text"`
	Edited    bool   `json:"edited"`
}

// ReplyUpdate is the broadcast emitted after a reply edit.
type ReplyUpdate struct {
	ReplyID FlexID `json:"replyId"`
	Text    string `json:"text"`
	Edited  bool   `json:"edited"`
}

// Reply is the broadcast emitted for a new reply.
type Reply struct {
	Text              string `json:"text"`
	ReplyID           FlexID `json:"replyId"`
	OriginalMessageID FlexID `json:"originalMessageId"`
}
