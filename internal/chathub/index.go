package chathub

import (
	"sync"

	"github.com/samber/lo"

	"roomchat/backend/internal/models"
)

// MessageIndex keeps the transient list of sent messages so that they can be
// deleted by identifier later. Only top-level sends are recorded: edits,
// replies and reply deletions are relayed without touching the index. Nothing
// here survives a restart.
type MessageIndex struct {
	mu      sync.Mutex
	records []models.MessageRecord
}

func NewMessageIndex() *MessageIndex {
	return &MessageIndex{}
}

// Record appends a message unconditionally. Identifiers are caller-supplied
// and not checked for uniqueness; duplicates coexist.
func (i *MessageIndex) Record(room string, messageID models.FlexID, content string) {
	i.mu.Lock()
	i.records = append(i.records, models.MessageRecord{
		Room:      room,
		MessageID: messageID,
		Content:   content,
	})
	i.mu.Unlock()
}

// RemoveByMessageID removes the first record matching the identifier and
// returns it. The room is not part of the match. Returns false when no
// record carries the identifier.
func (i *MessageIndex) RemoveByMessageID(messageID models.FlexID) (models.MessageRecord, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()

	rec, idx, ok := lo.FindIndexOf(i.records, func(r models.MessageRecord) bool {
		return r.MessageID == messageID
	})
	if !ok {
		return models.MessageRecord{}, false
	}

	i.records = append(i.records[:idx], i.records[idx+1:]...)
	return rec, true
}

// ByRoom returns the records currently held for a room, oldest first.
func (i *MessageIndex) ByRoom(room string) []models.MessageRecord {
	i.mu.Lock()
	defer i.mu.Unlock()

	return lo.Filter(i.records, func(r models.MessageRecord, _ int) bool {
		return r.Room == room
	})
}
