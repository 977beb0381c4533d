// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/smscli/internal/app"
	"github.com/MKhiriev/smscli/internal/session"
)

var (
	ErrTooManyViews     = errors.New("Cant open anymore views")
	ErrUnknownColor     = errors.New("unknown color")
	ErrUnknownAttribute = errors.New("unknown theme attribute")
)

// humanizeConnectError turns a connect failure into a log line.
func humanizeConnectError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, session.ErrInvalidArgument):
		return "Invalid address or port"
	case errors.Is(err, session.ErrConnectTimeout):
		return "Connection timed out"
	case errors.Is(err, session.ErrConnectRefused):
		return "Connection refused"
	case errors.Is(err, session.ErrAlreadyConnected):
		return app.MsgAlreadyConnected
	default:
		return "Failed to connect: " + err.Error()
	}
}
