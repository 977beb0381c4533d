// Package utils provides small helpers shared across the client.
package utils

import "github.com/google/uuid"

// SessionIDs issues the session_id stamped on the log lines of one
// connection. Ids are UUIDv7, so a log sorted by id follows connection order.
type SessionIDs struct {
	newV7 func() (uuid.UUID, error)
}

func NewSessionIDs() *SessionIDs {
	return &SessionIDs{newV7: uuid.NewV7}
}

// Next returns a new session id. A random UUID is used when the clock source
// fails.
func (s *SessionIDs) Next() string {
	id, err := s.newV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
