// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

func (cfg *ClientConfig) validate() error {
	if cfg.Session.ConnectTimeout <= 0 || cfg.Session.MaxChunkSize <= 0 || cfg.Session.ChunkDelay < 0 {
		return ErrInvalidSessionConfigs
	}

	if cfg.Session.AutoConnect != "" {
		var addr NetAddress
		if err := addr.Set(cfg.Session.AutoConnect); err != nil {
			return fmt.Errorf("%w: connect %q: %w", ErrInvalidSessionConfigs, cfg.Session.AutoConnect, err)
		}
	}

	if cfg.UI.MaxViews < 1 || cfg.UI.MessageWidthPercent < 1 || cfg.UI.MessageWidthPercent > 100 {
		return ErrInvalidUIConfigs
	}

	for name, value := range cfg.Aliases {
		if _, _, err := parseAlias(value); err != nil {
			return fmt.Errorf("%w: %q: %w", ErrInvalidAlias, name, err)
		}
	}

	for attr, value := range cfg.UI.Theme {
		if _, _, err := ParseThemeEntry(value); err != nil {
			return fmt.Errorf("%w: %q: %w", ErrInvalidTheme, attr, err)
		}
	}

	return nil
}

// ParseThemeEntry splits a "foreground, background" theme value.
func ParseThemeEntry(value string) (fg, bg string, err error) {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("need a value in a form `foreground, background`, got %q", value)
	}

	fg, bg = strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if fg == "" || bg == "" {
		return "", "", fmt.Errorf("empty color in %q", value)
	}

	return fg, bg, nil
}
