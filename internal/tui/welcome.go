package tui

import "github.com/MKhiriev/smscli/internal/app"

const welcomeLine = app.MsgWelcome

// welcomeLines are written to the log view on start.
func welcomeLines() []string {
	return []string{welcomeLine, app.MsgWelcomeHint}
}
