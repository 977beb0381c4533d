package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/smscli/internal/config"
	"github.com/MKhiriev/smscli/internal/conversation"
	"github.com/MKhiriev/smscli/internal/logger"
	"github.com/MKhiriev/smscli/internal/notify"
	"github.com/MKhiriev/smscli/internal/session"
	"github.com/MKhiriev/smscli/internal/tui"
	"github.com/MKhiriev/smscli/internal/workers"
	"github.com/MKhiriev/smscli/models"
)

// AppName is shown as the sender of desktop notifications.
const AppName = "smscli"

type App struct {
	session *session.Session
	ui      *tui.TUI
	workers *workers.Workers
	logger  *logger.Logger
}

// NewApp wires the registry, the notification queue, the session and the
// terminal UI.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	jobs := workers.New()

	notifier := notify.Nop()
	if cfg.UI.Notifications {
		queue := notify.NewQueue(notify.NewDesktop(AppName, ""), notify.DefaultQueueSize, log)
		jobs.Add(queue)
		notifier = queue
	}

	ui, err := tui.New(tui.Deps{
		Registry:    conversation.NewRegistry(),
		Notifier:    notifier,
		Aliases:     cfg.Aliases,
		UI:          cfg.UI,
		AutoConnect: cfg.Session.AutoConnect,
		BuildInfo:   buildInfo,
		Logger:      log,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating ui: %w", err)
	}

	return &App{
		session: session.New(cfg.Session, ui, log),
		ui:      ui,
		workers: jobs,
		logger:  log,
	}, nil
}

// Run blocks until the user quits or the process is signalled. The
// connection is closed and background workers are stopped before it
// returns.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	a.workers.Start(ctx)
	defer a.workers.Stop()

	a.logger.Info().Msg("client started")
	err := a.ui.Run(ctx, a.session)

	a.session.Disconnect()
	a.session.Wait()
	a.logger.Info().Msg("client stopped")

	return err
}
