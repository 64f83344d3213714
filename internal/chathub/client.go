package chathub

import "roomchat/backend/internal/models"

// Client is the interface for any type of connection driven by the hub. It
// abstracts the underlying communication mechanism, allowing the hub to
// manage real WebSocket connections and test doubles uniformly.
type Client interface {
	// GetConnID returns the unique identifier of the connection.
	GetConnID() string

	// GetSendChannel returns the channel to which the hub pushes outbound
	// frames for this connection. It is a send-only channel.
	GetSendChannel() chan<- models.Envelope

	// Run starts the client's read and write pumps, which handle incoming
	// and outgoing frames.
	Run()

	// Close shuts down the client's connection and associated channels.
	Close()
}
