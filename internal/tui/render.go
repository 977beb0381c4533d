package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/MKhiriev/smscli/internal/conversation"
	"github.com/MKhiriev/smscli/models"
)

const (
	senderMe  = "Me"
	senderLog = "smscli"
)

// senderName is who a message is shown as coming from.
func senderName(msg models.Message, conv *conversation.Conversation) string {
	switch msg.Type {
	case models.MessageTypeOutgoing:
		return senderMe
	case models.MessageTypeIncoming:
		if conv != nil {
			return conv.DisplayName()
		}
		return msg.ConversationID
	default:
		return senderLog
	}
}

// messageWidth is the wrap width for a screen of the given width.
func messageWidth(screenWidth, percent int) int {
	w := screenWidth * percent / 100
	return max(w, 10)
}

// renderMessage draws "HH:MM:SS - Sender: body" wrapped at width.
func renderMessage(msg models.Message, sender string, width int, theme Theme) string {
	line := theme.MessageTime.Render(msg.Time) +
		theme.Sender(msg.Type).Render(" - "+sender+":") +
		" " + theme.Body.Render(msg.Body)

	return wrap.String(wordwrap.String(line, width), width)
}

// renderTranscript draws every message of conv.
func renderTranscript(conv *conversation.Conversation, width int, theme Theme) string {
	if conv == nil {
		return ""
	}

	msgs := conv.Messages()
	lines := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		lines = append(lines, renderMessage(msg, senderName(msg, conv), width, theme))
	}
	return strings.Join(lines, "\n")
}

// renderDivider draws "[connected] -0:smscli- [1:Alice]".
func renderDivider(state string, views *viewSet, registry *conversation.Registry) string {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(state)
	b.WriteString("]")

	for i, id := range views.ids {
		name := id
		if conv, ok := registry.Get(id); ok {
			name = conv.DisplayName()
		}
		label := strconv.Itoa(i) + ":" + name

		b.WriteString(" ")
		if i == views.focused {
			b.WriteString("-" + label + "-")
		} else {
			b.WriteString("[" + label + "]")
		}
	}

	return b.String()
}

// renderTitle draws the title bar text for the focused conversation.
func renderTitle(conv *conversation.Conversation) string {
	if conv == nil || conv.ID() == conversation.LogConversationID {
		return "smscli"
	}
	if addr := conv.Address(); addr != "" && addr != conv.DisplayName() {
		return fmt.Sprintf("smscli | %s (%s)", conv.DisplayName(), addr)
	}
	return "smscli | " + conv.DisplayName()
}
