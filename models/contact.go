package models

// Contact is one entry of the contact snapshot the relay sends right after
// a connection is established.
type Contact struct {
	// ID is the server-assigned identifier; it is also the conversation address.
	ID string

	// DisplayName is the human readable contact name.
	DisplayName string

	// PhoneNumber is the contact's phone number as known by the relay.
	PhoneNumber string
}
