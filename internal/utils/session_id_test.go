package utils

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionIDs_Next(t *testing.T) {
	ids := NewSessionIDs()

	first := ids.Next()
	second := ids.Next()

	id, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.NotEqual(t, first, second)
	assert.Less(t, first, second, "later connections sort after earlier ones")
}

func TestSessionIDs_Next_ClockFailure(t *testing.T) {
	ids := &SessionIDs{newV7: func() (uuid.UUID, error) {
		return uuid.Nil, errors.New("clock unavailable")
	}}

	id, err := uuid.Parse(ids.Next())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), id.Version())
}
