// Package tui is the terminal front end: conversation views, the input line
// and the slash commands.
package tui

import (
	"context"
	"fmt"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/smscli/internal/config"
	"github.com/MKhiriev/smscli/internal/conversation"
	"github.com/MKhiriev/smscli/internal/logger"
	"github.com/MKhiriev/smscli/models"
)

// Deps is what the terminal UI needs besides the session.
type Deps struct {
	Registry *conversation.Registry
	// Notifier is told about incoming messages. Nil disables notifications.
	Notifier conversation.Notifier
	Aliases  AliasResolver
	UI       config.ClientUI
	// AutoConnect is an optional "host:port" connected to on start.
	AutoConnect string
	BuildInfo   models.AppBuildInfo
	Logger      *logger.Logger
}

// TUI is the terminal front end. It doubles as the session's event
// publisher: events are handed to the running program and applied on its
// event loop.
type TUI struct {
	deps    Deps
	theme   Theme
	program atomic.Pointer[tea.Program]
}

// New validates the theme and returns a TUI ready to Run.
func New(deps Deps) (*TUI, error) {
	theme, err := NewTheme(deps.UI.Theme)
	if err != nil {
		return nil, fmt.Errorf("error building theme: %w", err)
	}
	if deps.Registry == nil {
		deps.Registry = conversation.NewRegistry()
	}
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}

	return &TUI{deps: deps, theme: theme}, nil
}

// Publish hands a session event to the UI loop. Events published while no
// program is running are dropped.
func (t *TUI) Publish(ev any) {
	p := t.program.Load()
	if p == nil {
		t.deps.Logger.Debug().Type("event", ev).Msg("no ui running, event dropped")
		return
	}
	p.Send(ev)
}

// Run draws the interface and blocks until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context, sess Session) error {
	m := newModel(ctx, sess, t.deps, t.theme)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	t.program.Store(p)
	defer t.program.Store(nil)

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("error running ui: %w", err)
	}
	return nil
}
