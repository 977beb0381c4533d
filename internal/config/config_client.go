package config

import (
	"fmt"
	"time"
)

// ClientSession holds settings used by the relay session.
type ClientSession struct {
	// ConnectTimeout bounds a single connection attempt.
	ConnectTimeout time.Duration
	// MaxChunkSize is the maximum number of characters per sent message.
	MaxChunkSize int
	// ChunkDelay is the pause between two chunks of one text.
	ChunkDelay time.Duration
	// AutoConnect is an optional "host:port" to connect to on start.
	AutoConnect string
}

// ClientUI holds terminal interface settings.
type ClientUI struct {
	// MaxViews is the number of conversation views that can be open.
	MaxViews int
	// Notifications enables desktop notifications for incoming messages.
	Notifications bool
	// MessageWidthPercent is the share of the screen width used by a
	// message before wrapping.
	MessageWidthPercent int
	// Theme maps a display attribute to "foreground, background".
	Theme map[string]string
}

// ClientLog holds logging settings.
type ClientLog struct {
	// File is the log file path. Empty means next to the executable.
	File string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Session contains connection and send-path settings.
	Session ClientSession
	// UI contains terminal interface settings.
	UI ClientUI
	// Log contains logging settings.
	Log ClientLog
	// Aliases resolves /connect shortcuts.
	Aliases Aliases
	// FilePath is the config file that was loaded, if any.
	FilePath string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Session: ClientSession{
			ConnectTimeout: cfg.Session.ConnectTimeout,
			MaxChunkSize:   cfg.Session.MaxChunkSize,
			ChunkDelay:     cfg.Session.ChunkDelay,
			AutoConnect:    cfg.Session.Connect,
		},
		UI: ClientUI{
			MaxViews:            cfg.UI.MaxViews,
			Notifications:       !cfg.UI.DisableNotifications,
			MessageWidthPercent: cfg.UI.MessageWidthPercent,
			Theme:               cfg.Theme,
		},
		Log: ClientLog{
			File: cfg.Log.File,
		},
		Aliases:  Aliases(cfg.Aliases),
		FilePath: cfg.FilePath,
	}

	return clientCfg, clientCfg.validate()
}
