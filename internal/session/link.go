package session

import (
	"net"
	"sync"

	"github.com/MKhiriev/smscli/internal/protocol"
)

// link is one established connection. close is safe to call from the read
// loop, the send path and Disconnect at the same time.
type link struct {
	conn    net.Conn
	channel *protocol.Channel
	host    string
	port    string

	once   sync.Once
	closed chan struct{}
}

func newLink(conn net.Conn, host, port string) *link {
	return &link{
		conn:    conn,
		channel: protocol.NewChannel(conn),
		host:    host,
		port:    port,
		closed:  make(chan struct{}),
	}
}

// close shuts the socket down in both directions, which unblocks a pending
// read, and releases it. It reports whether this call did the work.
func (l *link) close() bool {
	first := false
	l.once.Do(func() {
		first = true
		if hc, ok := l.conn.(interface {
			CloseRead() error
			CloseWrite() error
		}); ok {
			_ = hc.CloseRead()
			_ = hc.CloseWrite()
		}
		_ = l.conn.Close()
		close(l.closed)
	})
	return first
}

func (l *link) isClosed() bool {
	select {
	case <-l.closed:
		return true
	default:
		return false
	}
}
