package session

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/smscli/internal/config"
	"github.com/MKhiriev/smscli/internal/logger"
	"github.com/MKhiriev/smscli/internal/protocol"
	"github.com/MKhiriev/smscli/internal/utils"
	"github.com/MKhiriev/smscli/internal/validators"
	"github.com/MKhiriev/smscli/models"
)

// Session is the single connection to the relay. All methods are safe for
// concurrent use.
type Session struct {
	cfg       config.ClientSession
	publisher Publisher
	logger    *logger.Logger

	dial DialFunc
	now  func() time.Time
	ids  *utils.SessionIDs

	mu            sync.Mutex
	state         State
	link          *link
	host          string
	port          string
	lastErr       error
	cancelConnect context.CancelFunc
	aborted       bool

	// sendMu keeps the chunks of one text together on the wire.
	sendMu sync.Mutex

	wg sync.WaitGroup
}

// Option customizes a Session.
type Option func(*Session)

// WithDialer replaces the TCP dialer.
func WithDialer(dial DialFunc) Option {
	return func(s *Session) { s.dial = dial }
}

// WithClock replaces the clock used to timestamp outgoing chunks.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New creates a disconnected Session.
func New(cfg config.ClientSession, publisher Publisher, log *logger.Logger, opts ...Option) *Session {
	s := &Session{
		cfg:       cfg,
		publisher: publisher,
		logger:    log,
		now:       time.Now,
		ids:       utils.NewSessionIDs(),
	}
	if s.cfg.ConnectTimeout <= 0 {
		s.cfg.ConnectTimeout = config.DefaultConnectTimeout
	}
	s.dial = (&net.Dialer{}).DialContext

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// State returns the current connection state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Remote returns the address of the current or last connection.
func (s *Session) Remote() (host, port string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.host, s.port
}

// LastErr returns the error that ended the last connection or connection
// attempt, or nil.
func (s *Session) LastErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Connect dials host:port, reads the contact snapshot and starts the read
// loop. It returns once the snapshot has been published or the attempt has
// failed; on failure the session is Disconnected again.
func (s *Session) Connect(ctx context.Context, host, port string) error {
	portNum, err := validators.ValidateAddress(host, port)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	port = strconv.Itoa(portNum)

	s.mu.Lock()
	if s.state != StateDisconnected {
		s.mu.Unlock()
		return ErrAlreadyConnected
	}
	dialCtx, cancel := context.WithTimeout(ctx, s.cfg.ConnectTimeout)
	defer cancel()
	s.state = StateConnecting
	s.host, s.port = host, port
	s.lastErr = nil
	s.cancelConnect = cancel
	s.aborted = false
	s.mu.Unlock()

	s.publisher.Publish(StateChanged{State: StateConnecting, Host: host, Port: port})

	address := net.JoinHostPort(host, port)
	conn, err := s.dial(dialCtx, "tcp", address)
	if err != nil {
		err = classifyDialError(err)
		s.logger.Warn().Err(err).Str("remote", address).Msg("connect failed")
		s.fail(err)
		return err
	}

	l := newLink(conn, host, port)
	log := s.connectionLogger(address)

	s.mu.Lock()
	s.cancelConnect = nil
	if s.aborted {
		s.mu.Unlock()
		l.close()
		err = fmt.Errorf("%w: %w", ErrConnectFailed, context.Canceled)
		s.fail(err)
		return err
	}
	s.state = StateConnected
	s.link = l
	s.mu.Unlock()

	log.Info().Msg("connected")
	s.publisher.Publish(StateChanged{State: StateConnected, Host: host, Port: port})

	contacts, err := readSnapshot(l.channel)
	if err != nil {
		log.Warn().Err(err).Msg("reading contact snapshot failed")
		s.teardown(l, err)
		return fmt.Errorf("%w: %w", ErrConnectFailed, err)
	}
	log.Debug().Int("contacts", len(contacts)).Msg("contact snapshot received")
	s.publisher.Publish(SnapshotReceived{Contacts: contacts})

	s.wg.Add(1)
	go s.readLoop(l, log)

	return nil
}

func readSnapshot(ch *protocol.Channel) ([]models.Contact, error) {
	payload, err := ch.ReadFrame()
	if err != nil {
		return nil, fmt.Errorf("reading contact snapshot: %w", err)
	}

	return protocol.DecodeSnapshot(payload)
}

func (s *Session) connectionLogger(address string) *logger.Logger {
	log := s.logger.GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("session_id", s.ids.Next()).Str("remote", address)
	})
	return log
}

// readLoop runs until the connection ends. Malformed frames are reported and
// skipped.
func (s *Session) readLoop(l *link, log *logger.Logger) {
	defer s.wg.Done()

	for {
		payload, err := l.channel.ReadFrame()
		if err != nil {
			switch {
			case l.isClosed():
				log.Debug().Msg("read loop stopped")
			case errors.Is(err, protocol.ErrConnectionClosed):
				log.Info().Msg("relay closed the connection")
			default:
				log.Warn().Err(err).Msg("read failed")
			}
			s.teardown(l, err)
			return
		}

		msg, err := protocol.DecodeMessage(payload)
		if err != nil {
			log.Warn().Err(err).Msg("discarding malformed frame")
			s.publisher.Publish(FrameRejected{Err: err})
			continue
		}

		s.publisher.Publish(MessageReceived{Message: msg})
	}
}

// SendMessage sends text to the conversation, split into chunks of at most
// MaxChunkSize characters with ChunkDelay between them. Every chunk is
// published as MessageSent before it is written. A write failure disconnects
// the session and the remaining chunks are dropped. Concurrent calls are
// serialized: the chunks of one text are never mixed with another's.
func (s *Session) SendMessage(ctx context.Context, conversationID, text string) error {
	if conversationID == "" {
		return fmt.Errorf("%w: empty conversation id", ErrInvalidArgument)
	}
	if text == "" {
		return fmt.Errorf("%w: empty message", ErrInvalidArgument)
	}

	s.sendMu.Lock()
	defer s.sendMu.Unlock()

	s.mu.Lock()
	l := s.link
	s.mu.Unlock()
	if l == nil {
		return ErrNotConnected
	}

	chunks := Chunk(text, s.cfg.MaxChunkSize)
	for i, chunk := range chunks {
		if i > 0 && s.cfg.ChunkDelay > 0 {
			timer := time.NewTimer(s.cfg.ChunkDelay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}

		if l.isClosed() {
			return ErrNotConnected
		}

		msg := models.Message{
			Time:           protocol.FormatLocalTime(s.now()),
			Body:           chunk,
			ConversationID: conversationID,
			Type:           models.MessageTypeOutgoing,
		}
		payload, err := protocol.EncodeMessage(msg)
		if err != nil {
			return fmt.Errorf("encoding chunk %d: %w", i+1, err)
		}

		s.publisher.Publish(MessageSent{Message: msg})

		if err := l.channel.WriteFrame(payload); err != nil {
			s.logger.Warn().Err(err).Int("chunk", i+1).Int("chunks", len(chunks)).Msg("send failed")
			s.teardown(l, err)
			return fmt.Errorf("sending chunk %d of %d: %w", i+1, len(chunks), err)
		}
	}

	return nil
}

// Disconnect closes the current connection, or abandons a connection attempt
// in progress. It does not wait for the read loop; use Wait for that.
// Calling it while disconnected does nothing.
func (s *Session) Disconnect() {
	s.mu.Lock()
	l := s.link
	if l == nil && s.state == StateConnecting {
		s.aborted = true
		if s.cancelConnect != nil {
			s.cancelConnect()
		}
	}
	s.mu.Unlock()

	if l != nil {
		s.teardown(l, nil)
	}
}

// Wait blocks until every read loop has exited.
func (s *Session) Wait() {
	s.wg.Wait()
}

// teardown is the single cleanup path for an established connection. Only
// the first call per link has any effect.
func (s *Session) teardown(l *link, cause error) {
	if !l.close() {
		return
	}

	s.mu.Lock()
	if s.link == l {
		s.link = nil
		s.state = StateDisconnected
		s.lastErr = cause
	}
	s.mu.Unlock()

	s.publisher.Publish(StateChanged{State: StateDisconnected, Host: l.host, Port: l.port, Err: cause})
	s.publisher.Publish(Disconnected{Host: l.host, Port: l.port, Err: cause})
}

// fail returns a session that never got a link to Disconnected.
func (s *Session) fail(err error) {
	s.mu.Lock()
	s.state = StateDisconnected
	s.cancelConnect = nil
	s.lastErr = err
	host, port := s.host, s.port
	s.mu.Unlock()

	s.publisher.Publish(StateChanged{State: StateDisconnected, Host: host, Port: port, Err: err})
}
