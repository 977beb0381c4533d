package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/smscli/models"
)

// wireMessage is the JSON shape of a message frame. Pointer fields let
// DecodeMessage tell a missing field from an empty one.
type wireMessage struct {
	Time             *string `json:"time"`
	Body             *string `json:"body"`
	RelatedContactID *string `json:"relatedContactId"`
	SMSMessageType   *string `json:"smsMessageType"`
}

// EncodeMessage returns the JSON payload for msg.
// Only OUTBOX and INBOX messages can be encoded.
func EncodeMessage(msg models.Message) ([]byte, error) {
	if !msg.Type.IsWire() {
		return nil, fmt.Errorf("%w: message type %q is not sent over the wire", ErrProtocol, msg.Type)
	}

	msgType := string(msg.Type)
	payload, err := json.Marshal(wireMessage{
		Time:             &msg.Time,
		Body:             &msg.Body,
		RelatedContactID: &msg.ConversationID,
		SMSMessageType:   &msgType,
	})
	if err != nil {
		return nil, fmt.Errorf("encode message: %w", err)
	}

	return payload, nil
}

// DecodeMessage parses a message frame payload.
//
// Every field is required; relatedContactId must not be empty and
// smsMessageType must be OUTBOX or INBOX. The time is normalized with
// [NormalizeTime]. All failures wrap [ErrProtocol].
func DecodeMessage(payload []byte) (models.Message, error) {
	var wire wireMessage
	if err := json.Unmarshal(payload, &wire); err != nil {
		return models.Message{}, fmt.Errorf("%w: decode message: %w", ErrProtocol, err)
	}

	switch {
	case wire.Time == nil:
		return models.Message{}, fmt.Errorf("%w: message has no time", ErrProtocol)
	case wire.Body == nil:
		return models.Message{}, fmt.Errorf("%w: message has no body", ErrProtocol)
	case wire.RelatedContactID == nil || *wire.RelatedContactID == "":
		return models.Message{}, fmt.Errorf("%w: message has no relatedContactId", ErrProtocol)
	case wire.SMSMessageType == nil:
		return models.Message{}, fmt.Errorf("%w: message has no smsMessageType", ErrProtocol)
	}

	msgType := models.MessageType(*wire.SMSMessageType)
	if !msgType.IsWire() {
		return models.Message{}, fmt.Errorf("%w: unknown smsMessageType %q", ErrProtocol, *wire.SMSMessageType)
	}

	localTime, err := NormalizeTime(*wire.Time)
	if err != nil {
		return models.Message{}, err
	}

	return models.Message{
		Time:           localTime,
		Body:           *wire.Body,
		ConversationID: *wire.RelatedContactID,
		Type:           msgType,
	}, nil
}
