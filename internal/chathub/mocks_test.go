package chathub_test

import (
	"roomchat/backend/internal/models"
)

// MockClient is a test double for the chathub.Client interface. Frames the
// hub sends to the client land in RecvChannel, buffered so the hub's
// non-blocking push never drops them in tests.
type MockClient struct {
	connID      string
	RecvChannel chan models.Envelope
	closed      bool
}

func newMockClient(connID string) *MockClient {
	return &MockClient{
		connID:      connID,
		RecvChannel: make(chan models.Envelope, 16),
	}
}

func (c *MockClient) GetConnID() string {
	return c.connID
}

func (c *MockClient) GetSendChannel() chan<- models.Envelope {
	return c.RecvChannel
}

func (c *MockClient) Run() {
	// Not needed for testing
}

func (c *MockClient) Close() {
	c.closed = true
}

// drain returns every frame currently buffered for the client.
func (c *MockClient) drain() []models.Envelope {
	var frames []models.Envelope
	for {
		select {
		case env := <-c.RecvChannel:
			frames = append(frames, env)
		default:
			return frames
		}
	}
}
