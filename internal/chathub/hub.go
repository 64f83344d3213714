package chathub

import (
	"log"

	"github.com/go-playground/validator/v10"

	"roomchat/backend/internal/models"
)

// Hub owns the set of live connections and drives every membership and
// content event. All state mutations run on the Run goroutine, so a roster
// broadcast can never observe membership older than the system message sent
// just before it.
type Hub struct {
	Clients map[string]Client

	// Channels
	RegisterCh   chan Client
	UnregisterCh chan Client
	IncomingCh   chan models.Envelope

	Registry *Registry
	Index    *MessageIndex

	validate *validator.Validate
}

func NewHub(registry *Registry, index *MessageIndex) *Hub {
	return &Hub{
		Clients:      make(map[string]Client),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		IncomingCh:   make(chan models.Envelope),
		Registry:     registry,
		Index:        index,
		validate:     validator.New(),
	}
}

// Run is the hub's main dispatch loop. Frames from different connections are
// serialized here, which is what keeps join/leave/kick on the same room from
// racing into an inconsistent roster.
func (h *Hub) Run() {
	log.Println("Hub started.")

	for {
		select {
		case client := <-h.RegisterCh:
			h.Clients[client.GetConnID()] = client

		case client := <-h.UnregisterCh:
			h.handleDisconnect(client)

		case env := <-h.IncomingCh:
			h.dispatch(env)
		}
	}
}

func (h *Hub) dispatch(env models.Envelope) {
	switch env.Event {
	case models.EventJoinRoom:
		h.handleJoinRoom(env)
	case models.EventKickUser:
		h.handleKickUser(env)
	case models.EventTyping:
		h.handleTyping(env)
	case models.EventSendMessage:
		h.handleSendMessage(env)
	case models.EventUpdateMessage:
		h.handleUpdateMessage(env)
	case models.EventUpdateReply:
		h.handleUpdateReply(env)
	case models.EventSendReply:
		h.handleSendReply(env)
	case models.EventDeleteMessage:
		h.handleDeleteMessage(env)
	case models.EventDeleteReply:
		h.handleDeleteReply(env)
	default:
		log.Printf("Unknown event %q from connection %s", env.Event, env.SenderID)
	}
}

// NotifyRoom delivers an event to every participant currently in the room.
// Membership is resolved from the registry at send time; there is no
// subscriber list to keep in sync.
func (h *Hub) NotifyRoom(room, event string, payload any) {
	h.fanOut(h.Registry.RoomMembers(room), "", event, payload)
}

// NotifyRoomExcept delivers an event to the room minus one connection,
// typically the originator of the event.
func (h *Hub) NotifyRoomExcept(room, exceptID, event string, payload any) {
	h.fanOut(h.Registry.RoomMembers(room), exceptID, event, payload)
}

// NotifyConnection delivers an event to a single connection.
func (h *Hub) NotifyConnection(connID, event string, payload any) {
	env, err := models.NewEnvelope(event, payload)
	if err != nil {
		log.Printf("Error encoding %q frame: %v", event, err)
		return
	}

	if client, ok := h.Clients[connID]; ok {
		h.push(client, env)
	}
}

func (h *Hub) fanOut(members []models.Participant, exceptID, event string, payload any) {
	env, err := models.NewEnvelope(event, payload)
	if err != nil {
		log.Printf("Error encoding %q frame: %v", event, err)
		return
	}

	for _, member := range members {
		if member.ID == exceptID {
			continue
		}
		if client, ok := h.Clients[member.ID]; ok {
			h.push(client, env)
		}
	}
}

// push is fire-and-forget: a client whose send buffer is full loses the
// frame instead of stalling the dispatch loop.
func (h *Hub) push(client Client, env models.Envelope) {
	select {
	case client.GetSendChannel() <- env:
	default:
		log.Printf("Dropping %q frame for slow connection %s", env.Event, client.GetConnID())
	}
}

// broadcastRoster sends the current member list to everyone in the room.
// Every membership change is followed by exactly one of these, after the
// change is committed.
func (h *Hub) broadcastRoster(room string) {
	h.NotifyRoom(room, models.EventRoomUsers, models.RoomUsers{
		Room:  room,
		Users: h.Registry.RoomMembers(room),
	})
}
