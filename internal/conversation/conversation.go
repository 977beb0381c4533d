package conversation

import (
	"sync"

	"github.com/MKhiriev/smscli/models"
)

// Conversation is the transcript with one contact. Messages are only ever
// appended.
type Conversation struct {
	id string

	mu          sync.RWMutex
	displayName string
	address     string
	messages    []models.Message
}

func newConversation(id, displayName, address string) *Conversation {
	if displayName == "" {
		displayName = id
	}

	return &Conversation{id: id, displayName: displayName, address: address}
}

// ID returns the conversation id.
func (c *Conversation) ID() string { return c.id }

// DisplayName returns the contact name, or the id when none is known.
func (c *Conversation) DisplayName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.displayName
}

// Address returns the contact phone number, if the relay sent one.
func (c *Conversation) Address() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.address
}

// Messages returns a copy of the transcript.
func (c *Conversation) Messages() []models.Message {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Message(nil), c.messages...)
}

// Len returns the number of messages.
func (c *Conversation) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.messages)
}

// Last returns the newest message.
func (c *Conversation) Last() (models.Message, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.messages) == 0 {
		return models.Message{}, false
	}
	return c.messages[len(c.messages)-1], true
}

func (c *Conversation) append(msg models.Message) {
	c.mu.Lock()
	c.messages = append(c.messages, msg)
	c.mu.Unlock()
}

func (c *Conversation) rename(displayName, address string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if displayName != "" {
		c.displayName = displayName
	}
	if address != "" {
		c.address = address
	}
}
