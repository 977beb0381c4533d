package conversation

import (
	"fmt"
	"time"

	"github.com/MKhiriev/smscli/internal/logger"
	"github.com/MKhiriev/smscli/internal/protocol"
	"github.com/MKhiriev/smscli/models"
)

// Router applies messages to the registry and keeps the presenter in step.
type Router struct {
	registry  *Registry
	presenter Presenter
	notifier  Notifier
	logger    *logger.Logger

	now func() time.Time
}

// NewRouter creates a Router. notifier may be nil to disable notifications.
func NewRouter(registry *Registry, presenter Presenter, notifier Notifier, log *logger.Logger) *Router {
	return &Router{
		registry:  registry,
		presenter: presenter,
		notifier:  notifier,
		logger:    log,
		now:       time.Now,
	}
}

// Registry returns the registry the router writes to.
func (r *Router) Registry() *Registry {
	return r.registry
}

// Route appends msg to its conversation, opens a view for it when none is
// shown, notifies about incoming messages and requests a redraw. It returns
// the conversation the message was appended to.
func (r *Router) Route(msg models.Message) *Conversation {
	if msg.ConversationID == "" {
		r.logger.Warn().Str("type", string(msg.Type)).Msg("dropping message without conversation id")
		return nil
	}

	conv, created := r.registry.Append(msg)
	if created {
		r.logger.Debug().Str("conversation", conv.ID()).Msg("conversation created")
	}

	if !r.presenter.IsViewShown(conv.ID()) {
		if err := r.presenter.AddView(conv.ID()); err != nil {
			r.logger.Warn().Err(err).Str("conversation", conv.ID()).Msg("view not opened")
			if conv.ID() != LogConversationID {
				r.Log(err.Error())
			}
		}
	}

	if msg.Type == models.MessageTypeIncoming && r.notifier != nil {
		if err := r.notifier.Notify(conv.DisplayName(), msg.Body); err != nil {
			r.logger.Warn().Err(err).Msg("notification failed")
		}
	}

	r.presenter.RequestRedraw()
	return conv
}

// Log appends a line to the log conversation.
func (r *Router) Log(text string) {
	r.Route(models.Message{
		Time:           protocol.FormatLocalTime(r.now()),
		Body:           text,
		ConversationID: LogConversationID,
		Type:           models.MessageTypeLog,
	})
}

// Logf is Log with formatting.
func (r *Router) Logf(format string, args ...any) {
	r.Log(fmt.Sprintf(format, args...))
}

// Reject records a frame that could not be decoded.
func (r *Router) Reject(err error) {
	r.logger.Warn().Err(err).Msg("malformed frame discarded")
	r.Logf("Discarded malformed message: %v", err)
}

// LoadSnapshot adds the relay's contact list to the registry.
func (r *Router) LoadSnapshot(contacts []models.Contact) {
	r.registry.Load(contacts)
	r.presenter.RequestRedraw()
}
