package validators

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"unicode"
)

const (
	maxHostnameLength = 253
	maxLabelLength    = 63
)

// ValidateHost accepts an IP address or an RFC 1123 hostname.
func ValidateHost(host string) error {
	if host == "" {
		return fmt.Errorf("%w: empty host", ErrInvalidHost)
	}
	if net.ParseIP(host) != nil {
		return nil
	}
	if len(host) > maxHostnameLength {
		return fmt.Errorf("%w: %q is too long", ErrInvalidHost, host)
	}

	for _, label := range strings.Split(strings.TrimSuffix(host, "."), ".") {
		if label == "" || len(label) > maxLabelLength {
			return fmt.Errorf("%w: %q", ErrInvalidHost, host)
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return fmt.Errorf("%w: %q", ErrInvalidHost, host)
		}
		for _, r := range label {
			if !isHostnameRune(r) {
				return fmt.Errorf("%w: %q", ErrInvalidHost, host)
			}
		}
	}

	return nil
}

func isHostnameRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-'
}

// ParsePort parses a decimal port in the range 1..65535.
func ParsePort(port string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(port))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidPort, port)
	}

	if n < 1 || n > 65535 {
		return 0, fmt.Errorf("%w: %d is out of range 1-65535", ErrInvalidPort, n)
	}

	return n, nil
}

// ValidateAddress checks host and port and returns the numeric port.
func ValidateAddress(host, port string) (int, error) {
	if err := ValidateHost(host); err != nil {
		return 0, err
	}

	return ParsePort(port)
}

// SplitAddress parses "host:port" (IPv6 hosts in brackets) and validates both
// parts.
func SplitAddress(address string) (string, int, error) {
	host, port, err := net.SplitHostPort(strings.TrimSpace(address))
	if err != nil {
		return "", 0, fmt.Errorf("%w: need `host:port`, got %q", ErrInvalidAddress, address)
	}

	n, err := ValidateAddress(host, port)
	if err != nil {
		return "", 0, err
	}

	return host, n, nil
}

// ValidatePhoneNumber accepts any non-empty string without letters, so
// formats like "+1 (555) 123-4567" and "555-1234" pass.
func ValidatePhoneNumber(number string) error {
	if strings.TrimSpace(number) == "" {
		return fmt.Errorf("%w: empty", ErrInvalidPhoneNumber)
	}

	for _, r := range number {
		if unicode.IsLetter(r) {
			return fmt.Errorf("%w: %q contains letters", ErrInvalidPhoneNumber, number)
		}
	}

	return nil
}
