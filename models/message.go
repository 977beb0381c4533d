package models

// MessageType classifies who produced a message.
// The OUTBOX and INBOX values are the ones carried in the smsMessageType
// field of the wire protocol; LOG is internal and never leaves the client.
type MessageType string

const (
	// MessageTypeLog marks client-generated status lines shown in the log view.
	MessageTypeLog MessageType = "LOG"

	// MessageTypeOutgoing marks a message sent from this side of the relay.
	MessageTypeOutgoing MessageType = "OUTBOX"

	// MessageTypeIncoming marks a message received from a contact.
	MessageTypeIncoming MessageType = "INBOX"
)

// IsWire reports whether t may be sent or received over the wire.
func (t MessageType) IsWire() bool {
	return t == MessageTypeOutgoing || t == MessageTypeIncoming
}

// Message is a single immutable entry of a conversation transcript.
// It is created once and appended to exactly one conversation.
type Message struct {
	// Time is the wall-clock time in the client's 24-hour format (HH:MM:SS).
	Time string

	// Body is the text of the message.
	Body string

	// ConversationID is the address of the conversation the message belongs
	// to (relatedContactId on the wire).
	ConversationID string

	// Type tells whether the message is a log line, outgoing or incoming.
	Type MessageType
}
