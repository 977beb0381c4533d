package protocol

import (
	"fmt"
	"strings"
	"time"
)

const (
	// LocalTimeLayout is the client's 24-hour time format (strftime %H:%M:%S).
	LocalTimeLayout = "15:04:05"

	// RemoteTimeLayout is the 12-hour format used by the relay
	// (strftime %I:%M:%S %p).
	RemoteTimeLayout = "03:04:05 PM"

	// remoteShortHourLayout also takes an hour without the leading zero.
	remoteShortHourLayout = "3:04:05 PM"
)

// FormatLocalTime formats t in the client's time format.
func FormatLocalTime(t time.Time) string {
	return t.Format(LocalTimeLayout)
}

// NormalizeTime converts a wire timestamp into the client's 24-hour format.
//
// The relay sends 12-hour times; timestamps produced by a client are already
// in the 24-hour format and are accepted as they are. Wire times carry no
// date, so the result cannot tell two days apart. The AM/PM marker is
// matched case-insensitively.
func NormalizeTime(wire string) (string, error) {
	value := strings.ToUpper(strings.TrimSpace(wire))
	for _, layout := range []string{RemoteTimeLayout, remoteShortHourLayout, LocalTimeLayout} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(LocalTimeLayout), nil
		}
	}

	return "", fmt.Errorf("%w: unrecognized time %q", ErrProtocol, wire)
}
