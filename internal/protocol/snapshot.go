package protocol

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/MKhiriev/smscli/models"
)

type wireContact struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	PhoneNumber string `json:"phoneNumber"`
}

// DecodeSnapshot parses the contact snapshot: a JSON object mapping a
// conversation id to {id, displayName, phoneNumber}.
//
// The map key is used as the contact ID. Contacts without a display name are
// named after their key. The result is sorted by ID so callers get a stable
// order.
func DecodeSnapshot(payload []byte) ([]models.Contact, error) {
	var wire map[string]wireContact
	if err := json.Unmarshal(payload, &wire); err != nil {
		return nil, fmt.Errorf("%w: decode snapshot: %w", ErrProtocol, err)
	}

	contacts := make([]models.Contact, 0, len(wire))
	for key, c := range wire {
		if key == "" {
			return nil, fmt.Errorf("%w: snapshot contains an empty conversation id", ErrProtocol)
		}

		name := c.DisplayName
		if name == "" {
			name = key
		}
		contacts = append(contacts, models.Contact{
			ID:          key,
			DisplayName: name,
			PhoneNumber: c.PhoneNumber,
		})
	}

	sort.Slice(contacts, func(i, j int) bool { return contacts[i].ID < contacts[j].ID })

	return contacts, nil
}

// EncodeSnapshot is the inverse of [DecodeSnapshot]. The client never sends a
// snapshot; relay fakes and tests do.
func EncodeSnapshot(contacts []models.Contact) ([]byte, error) {
	wire := make(map[string]wireContact, len(contacts))
	for _, c := range contacts {
		wire[c.ID] = wireContact{ID: c.ID, DisplayName: c.DisplayName, PhoneNumber: c.PhoneNumber}
	}

	payload, err := json.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	return payload, nil
}
