package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/smscli/internal/config"
	"github.com/MKhiriev/smscli/models"
)

// Theme attribute names accepted in the config file.
const (
	attrMessageTime = "message_time"
	attrLog         = "log"
	attrIncoming    = "incoming"
	attrOutgoing    = "outgoing"
	attrTitleBar    = "titlebar"
	attrDivider     = "divider"
	attrBody        = "body"
)

// namedColors maps the classic 16 terminal color names onto ANSI indexes.
var namedColors = map[string]string{
	"black":         "0",
	"dark red":      "1",
	"dark green":    "2",
	"brown":         "3",
	"dark yellow":   "3",
	"dark blue":     "4",
	"dark magenta":  "5",
	"dark cyan":     "6",
	"light gray":    "7",
	"light grey":    "7",
	"dark gray":     "8",
	"dark grey":     "8",
	"light red":     "9",
	"light green":   "10",
	"yellow":        "11",
	"light blue":    "12",
	"light magenta": "13",
	"light cyan":    "14",
	"white":         "15",
}

// Theme holds the styles used to draw the screen.
type Theme struct {
	MessageTime lipgloss.Style
	Log         lipgloss.Style
	Incoming    lipgloss.Style
	Outgoing    lipgloss.Style
	TitleBar    lipgloss.Style
	Divider     lipgloss.Style
	Body        lipgloss.Style
}

// NewTheme builds a Theme from attribute → "foreground, background" entries.
// Attributes missing from entries keep the built-in look.
func NewTheme(entries map[string]string) (Theme, error) {
	theme := Theme{
		MessageTime: lipgloss.NewStyle(),
		Log:         lipgloss.NewStyle(),
		Incoming:    lipgloss.NewStyle(),
		Outgoing:    lipgloss.NewStyle(),
		TitleBar:    lipgloss.NewStyle().Bold(true),
		Divider:     lipgloss.NewStyle(),
		Body:        lipgloss.NewStyle(),
	}

	merged := config.DefaultTheme()
	for attr, value := range entries {
		merged[strings.ToLower(attr)] = value
	}

	for attr, value := range merged {
		style, err := theme.style(attr)
		if err != nil {
			return Theme{}, err
		}

		fgName, bgName, err := config.ParseThemeEntry(value)
		if err != nil {
			return Theme{}, fmt.Errorf("theme %q: %w", attr, err)
		}
		fg, err := parseColor(fgName)
		if err != nil {
			return Theme{}, fmt.Errorf("theme %q: %w", attr, err)
		}
		bg, err := parseColor(bgName)
		if err != nil {
			return Theme{}, fmt.Errorf("theme %q: %w", attr, err)
		}

		*style = style.Foreground(fg).Background(bg)
	}

	return theme, nil
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	theme, err := NewTheme(nil)
	if err != nil {
		panic(err)
	}
	return theme
}

func (t *Theme) style(attr string) (*lipgloss.Style, error) {
	switch attr {
	case attrMessageTime:
		return &t.MessageTime, nil
	case attrLog:
		return &t.Log, nil
	case attrIncoming:
		return &t.Incoming, nil
	case attrOutgoing:
		return &t.Outgoing, nil
	case attrTitleBar:
		return &t.TitleBar, nil
	case attrDivider:
		return &t.Divider, nil
	case attrBody:
		return &t.Body, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAttribute, attr)
	}
}

// Sender returns the style for the sender part of a message of type typ.
func (t Theme) Sender(typ models.MessageType) lipgloss.Style {
	switch typ {
	case models.MessageTypeIncoming:
		return t.Incoming
	case models.MessageTypeOutgoing:
		return t.Outgoing
	default:
		return t.Log
	}
}

// parseColor accepts a color name, "default", an ANSI index or a #rrggbb
// value.
func parseColor(name string) (lipgloss.TerminalColor, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	switch {
	case name == "default" || name == "":
		return lipgloss.NoColor{}, nil
	case strings.HasPrefix(name, "#") && (len(name) == 7 || len(name) == 4):
		return lipgloss.Color(name), nil
	}

	if idx, ok := namedColors[name]; ok {
		return lipgloss.Color(idx), nil
	}

	var n int
	if _, err := fmt.Sscanf(name, "%d", &n); err == nil && n >= 0 && n <= 255 && fmt.Sprint(n) == name {
		return lipgloss.Color(name), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}
