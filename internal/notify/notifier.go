package notify

import (
	"github.com/gen2brain/beeep"
)

// MaxBodyLength is the number of characters of a message shown in a
// notification.
const MaxBodyLength = 100

// Notifier delivers one notification.
type Notifier interface {
	Notify(title, body string) error
}

// Desktop sends notifications through the desktop notification service.
type Desktop struct {
	icon   string
	notify func(title, message string, icon any) error
}

// NewDesktop creates a Desktop notifier that reports as appName. icon is an
// optional path to an image.
func NewDesktop(appName, icon string) *Desktop {
	beeep.AppName = appName
	return &Desktop{icon: icon, notify: beeep.Notify}
}

// Notify implements Notifier.
func (d *Desktop) Notify(title, body string) error {
	return d.notify(title, Truncate(body, MaxBodyLength), d.icon)
}

// Truncate shortens s to at most n characters, marking the cut with "...".
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

type nop struct{}

func (nop) Notify(string, string) error { return nil }

// Nop returns a Notifier that does nothing.
func Nop() Notifier {
	return nop{}
}
