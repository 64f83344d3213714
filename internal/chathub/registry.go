package chathub

import (
	"errors"
	"sync"

	"github.com/samber/lo"

	"roomchat/backend/internal/models"
)

// ErrInvalidPayload is returned when a join request is missing its display
// name or room.
var ErrInvalidPayload = errors.New("invalid payload")

// Registry owns every connected participant, in insertion order. Lookups are
// linear, which is fine at chat-room scale; the interesting property is that
// every method is safe under concurrent access, since the HTTP read handlers
// query it while the hub goroutine mutates it.
type Registry struct {
	mu    sync.RWMutex
	users []models.Participant
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Join registers a participant for the given connection with the online flag
// set. It fails with ErrInvalidPayload when the display name or room is
// empty, leaving the registry unchanged.
func (r *Registry) Join(connID, username, room string) (models.Participant, error) {
	if username == "" || room == "" {
		return models.Participant{}, ErrInvalidPayload
	}

	user := models.Participant{
		ID:       connID,
		Username: username,
		Room:     room,
		IsOnline: true,
	}

	r.mu.Lock()
	r.users = append(r.users, user)
	r.mu.Unlock()

	return user, nil
}

// CurrentUser resolves the participant bound to a connection. Pure lookup.
func (r *Registry) CurrentUser(connID string) (models.Participant, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Find(r.users, func(u models.Participant) bool {
		return u.ID == connID
	})
}

// Leave removes the participant for a connection and returns the removed
// copy with the online flag cleared. Removing an absent connection is a
// no-op, so repeated calls are safe.
func (r *Registry) Leave(connID string) (models.Participant, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, idx, ok := lo.FindIndexOf(r.users, func(u models.Participant) bool {
		return u.ID == connID
	})
	if !ok {
		return models.Participant{}, false
	}

	r.users = append(r.users[:idx], r.users[idx+1:]...)
	user.IsOnline = false
	return user, true
}

// RoomMembers returns every participant of a room in registry insertion
// order. A room nobody joined is just an empty result; rooms have no
// independent lifecycle.
func (r *Registry) RoomMembers(room string) []models.Participant {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Filter(r.users, func(u models.Participant, _ int) bool {
		return u.Room == room
	})
}

// FindInRoom resolves a participant by display name within a room. Used to
// locate kick targets; returns the first match when names collide.
func (r *Registry) FindInRoom(room, username string) (models.Participant, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Find(r.users, func(u models.Participant) bool {
		return u.Room == room && u.Username == username
	})
}
