package config

import (
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/smscli/internal/validators"
)

// Aliases maps a lower-cased alias name to a "host, port" or "host:port"
// value.
type Aliases map[string]string

// Resolve looks up name case-insensitively. ok is false when the alias is
// unknown or its value is malformed.
func (a Aliases) Resolve(name string) (host, port string, ok bool) {
	value, found := a[strings.ToLower(strings.TrimSpace(name))]
	if !found {
		return "", "", false
	}

	h, p, err := parseAlias(value)
	if err != nil {
		return "", "", false
	}

	return h, strconv.Itoa(p), true
}

// Names returns the configured alias names in alphabetical order.
func (a Aliases) Names() []string {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func parseAlias(value string) (string, int, error) {
	value = strings.TrimSpace(value)

	h, p, found := strings.Cut(value, ",")
	if !found {
		return validators.SplitAddress(value)
	}

	host, portStr := strings.TrimSpace(h), strings.TrimSpace(p)
	port, err := validators.ValidateAddress(host, portStr)
	if err != nil {
		return "", 0, err
	}

	return host, port, nil
}
