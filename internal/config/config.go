// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "SMSCLI_"

// Default values used when no source sets a field.
const (
	DefaultConnectTimeout      = 15 * time.Second
	DefaultMaxChunkSize        = 300
	DefaultChunkDelay          = 200 * time.Millisecond
	DefaultMaxViews            = 6
	DefaultMessageWidthPercent = 80
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging defaults, environment variables, command-line flags,
// and an optional config file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Session holds connection and send-path settings.
	Session Session `envPrefix:"SESSION_"`

	// UI holds terminal interface settings.
	UI UI `envPrefix:"UI_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// Aliases maps a connection alias to "host, port" (or "host:port").
	// Aliases can only be set in the config file.
	Aliases map[string]string

	// Theme maps a display attribute (log, incoming, outgoing, message_time,
	// titlebar, divider, body) to "foreground, background".
	// The theme can only be set in the config file.
	Theme map[string]string

	// FilePath is the optional path to a JSON or YAML config file.
	// Populated via the SMSCLI_CONFIG environment variable or the -c / -config
	// flag.
	FilePath string `env:"CONFIG"`
}

// Session holds connection and send-path settings.
type Session struct {
	// ConnectTimeout bounds a connection attempt.
	// Env: SMSCLI_SESSION_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`

	// MaxChunkSize is the maximum number of characters sent in one message;
	// longer texts are split.
	// Env: SMSCLI_SESSION_MAX_CHUNK_SIZE
	MaxChunkSize int `env:"MAX_CHUNK_SIZE"`

	// ChunkDelay is the pause between two chunks of one text.
	// Env: SMSCLI_SESSION_CHUNK_DELAY
	ChunkDelay time.Duration `env:"CHUNK_DELAY"`

	// Connect is an optional "host:port" the client connects to on start.
	// Env: SMSCLI_SESSION_CONNECT
	Connect string `env:"CONNECT"`
}

// UI holds terminal interface settings.
type UI struct {
	// MaxViews is the number of conversation views that can be open next to
	// the log view.
	// Env: SMSCLI_UI_MAX_VIEWS
	MaxViews int `env:"MAX_VIEWS"`

	// DisableNotifications turns desktop notifications off.
	// Env: SMSCLI_UI_DISABLE_NOTIFICATIONS
	DisableNotifications bool `env:"DISABLE_NOTIFICATIONS"`

	// MessageWidthPercent is how much of the screen width a message takes
	// before wrapping.
	// Env: SMSCLI_UI_MESSAGE_WIDTH_PERCENT
	MessageWidthPercent int `env:"MESSAGE_WIDTH_PERCENT"`
}

// Log holds logging settings.
type Log struct {
	// File is the path of the log file. Empty means next to the executable.
	// Env: SMSCLI_LOG_FILE
	File string `env:"FILE"`
}

// DefaultTheme is the built-in color theme.
func DefaultTheme() map[string]string {
	return map[string]string{
		"message_time": "dark red, default",
		"log":          "dark blue, default",
		"incoming":     "dark blue, default",
		"outgoing":     "dark green, default",
		"titlebar":     "black, dark blue",
		"divider":      "black, dark blue",
	}
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Session: Session{
			ConnectTimeout: DefaultConnectTimeout,
			MaxChunkSize:   DefaultMaxChunkSize,
			ChunkDelay:     DefaultChunkDelay,
		},
		UI: UI{
			MaxViews:            DefaultMaxViews,
			MessageWidthPercent: DefaultMessageWidthPercent,
		},
		Theme: DefaultTheme(),
	}
}

// GetStructuredConfig builds the merged configuration from all sources.
//
// Sources are applied in this order: defaults, environment variables,
// command-line flags (args, without the program name), and finally the config
// file. Later sources override earlier ones for non-zero fields.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withDefaultFile(DefaultFilePath()).
		withFile().
		build()
	if err != nil {
		return nil, fmt.Errorf("error building config: %w", err)
	}

	return cfg, nil
}

// DefaultFilePath is the config file used when none is given explicitly:
// smscli/smscli.json under the user configuration directory.
func DefaultFilePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, "smscli", "smscli.json")
}
