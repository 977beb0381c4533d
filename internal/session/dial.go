package session

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
)

// DialFunc opens a stream connection. It matches net.Dialer.DialContext.
type DialFunc func(ctx context.Context, network, address string) (net.Conn, error)

// classifyDialError maps a dial failure onto ErrConnectTimeout,
// ErrConnectRefused or ErrConnectFailed, keeping the cause in the chain.
func classifyDialError(err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, syscall.ECONNREFUSED):
		return fmt.Errorf("%w: %w", ErrConnectRefused, err)
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return fmt.Errorf("%w: %w", ErrConnectTimeout, err)
	default:
		return fmt.Errorf("%w: %w", ErrConnectFailed, err)
	}
}
