package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when configuration
// groups are incomplete or invalid.
var (
	// ErrInvalidSessionConfigs indicates invalid session settings
	// (for example, a zero connect timeout or chunk size).
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidUIConfigs indicates invalid UI settings
	// (for example, no room for conversation views).
	ErrInvalidUIConfigs = errors.New("invalid ui configuration")
	// ErrInvalidAlias indicates an alias that is not "host, port" or
	// "host:port".
	ErrInvalidAlias = errors.New("invalid connection alias")
	// ErrInvalidTheme indicates a theme entry that is not
	// "foreground, background".
	ErrInvalidTheme = errors.New("invalid theme entry")
)
