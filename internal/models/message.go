package models

import (
	"encoding/json"
	"strconv"
	"time"
)

// FlexID is a message or reply identifier as supplied by the client. The wire
// carries it either as a JSON number or a JSON string; numeric values are
// re-emitted as numbers so clients see the same type they sent.
type FlexID string

func (f *FlexID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = FlexID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}

func (f FlexID) MarshalJSON() ([]byte, error) {
	if f != "" {
		if _, err := strconv.ParseFloat(string(f), 64); err == nil {
			return []byte(f), nil
		}
	}
	return json.Marshal(string(f))
}

// ChatMessage is the broadcast shape shared by user messages and system
// notices: an identifier, the sender's display name, the text and a
// human-readable send time.
type ChatMessage struct {
	MessageID FlexID `json:"messageId"`
	Username  string `json:"username"`
	Text      string `json:"text"`
	Time      string `json:"time"`
}

// FormatMessage stamps a message with the current server time. The identifier
// defaults to unix milliseconds; user messages overwrite it with the
// client-supplied one.
func FormatMessage(username, text string) ChatMessage {
	now := time.Now()
	return ChatMessage{
		MessageID: FlexID(strconv.FormatInt(now.UnixMilli(), 10)),
		Username:  username,
		Text:      text,
		Time:      now.Format("3:04 pm"),
	}
}

// MessageRecord is one entry of the in-process message index. Only top-level
// sent messages are recorded; the index exists solely to support deletion by
// identifier and does not survive a restart.
type MessageRecord struct {
	Room      string `json:"room"`
	MessageID FlexID `json:"messageId"`
	Content   string `json:"content"`
}

// RoomUsers is the roster broadcast sent after every membership change.
type RoomUsers struct {
	Room  string        `json:"room"`
	Users []Participant `json:"users"`
}
