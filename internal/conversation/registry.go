package conversation

import (
	"strings"
	"sync"

	"github.com/MKhiriev/smscli/models"
)

// LogConversationID is the id of the conversation that holds client log
// lines. It always exists.
const LogConversationID = "smscli"

// Registry maps conversation ids to conversations. There is at most one
// conversation per id.
type Registry struct {
	mu    sync.RWMutex
	convs map[string]*Conversation
	order []string
}

// NewRegistry returns a registry holding only the log conversation.
func NewRegistry() *Registry {
	r := &Registry{convs: make(map[string]*Conversation)}
	r.getOrCreate(LogConversationID)
	return r
}

// Load adds the contacts from a snapshot. Known conversations keep their
// transcript and take the new display name.
func (r *Registry) Load(contacts []models.Contact) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, contact := range contacts {
		if contact.ID == "" || contact.ID == LogConversationID {
			continue
		}

		if conv, ok := r.convs[contact.ID]; ok {
			conv.rename(contact.DisplayName, contact.PhoneNumber)
			continue
		}

		r.convs[contact.ID] = newConversation(contact.ID, contact.DisplayName, contact.PhoneNumber)
		r.order = append(r.order, contact.ID)
	}
}

// Get returns the conversation with the given id.
func (r *Registry) Get(id string) (*Conversation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	conv, ok := r.convs[id]
	return conv, ok
}

// GetOrCreate returns the conversation with the given id, creating it with
// the id as display name when it is unknown.
func (r *Registry) GetOrCreate(id string) (conv *Conversation, created bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getOrCreate(id)
}

func (r *Registry) getOrCreate(id string) (*Conversation, bool) {
	if conv, ok := r.convs[id]; ok {
		return conv, false
	}

	conv := newConversation(id, "", "")
	r.convs[id] = conv
	r.order = append(r.order, id)
	return conv, true
}

// Append adds msg to the conversation named by msg.ConversationID, creating
// the conversation first when needed.
func (r *Registry) Append(msg models.Message) (conv *Conversation, created bool) {
	r.mu.Lock()
	conv, created = r.getOrCreate(msg.ConversationID)
	r.mu.Unlock()

	conv.append(msg)
	return conv, created
}

// FindByName returns the conversations whose display name equals name,
// ignoring case. The log conversation is never returned.
func (r *Registry) FindByName(name string) []*Conversation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var found []*Conversation
	for _, id := range r.order {
		if id == LogConversationID {
			continue
		}
		conv := r.convs[id]
		if strings.EqualFold(conv.DisplayName(), name) {
			found = append(found, conv)
		}
	}
	return found
}

// All returns every conversation in creation order, the log conversation
// first.
func (r *Registry) All() []*Conversation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Conversation, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.convs[id])
	}
	return out
}

// Len returns the number of conversations, the log conversation included.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.convs)
}
