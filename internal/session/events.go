package session

import "github.com/MKhiriev/smscli/models"

// Publisher receives session events. Publish may block until the consumer
// has accepted the event; events from one goroutine keep their order.
type Publisher interface {
	Publish(ev any)
}

// StateChanged is published on every state transition. Err is set when the
// transition to StateDisconnected was caused by a failure.
type StateChanged struct {
	State State
	Host  string
	Port  string
	Err   error
}

// SnapshotReceived carries the contact list the relay sends right after the
// connection is established.
type SnapshotReceived struct {
	Contacts []models.Contact
}

// MessageReceived carries one decoded inbound message.
type MessageReceived struct {
	Message models.Message
}

// MessageSent carries one outbound chunk. It is published before the chunk is
// written, so it is also published for a chunk whose write fails.
type MessageSent struct {
	Message models.Message
}

// FrameRejected is published for an inbound frame that could not be decoded.
// The connection stays up.
type FrameRejected struct {
	Err error
}

// Disconnected is published exactly once when an established connection
// ends. Err is nil when the user asked to disconnect.
type Disconnected struct {
	Host string
	Port string
	Err  error
}
