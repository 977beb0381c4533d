package tui

//go:generate mockgen -source=interfaces.go -destination=../mock/tui_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/smscli/internal/session"
)

// Session is the connection the UI drives. It is implemented by
// *session.Session.
type Session interface {
	Connect(ctx context.Context, host, port string) error
	Disconnect()
	SendMessage(ctx context.Context, conversationID, text string) error
	State() session.State
	Remote() (host, port string)
	LastErr() error
}

// AliasResolver turns a /connect alias into an address. It is implemented
// by config.Aliases.
type AliasResolver interface {
	Resolve(name string) (host, port string, ok bool)
	Names() []string
}
