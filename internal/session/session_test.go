package session

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/smscli/internal/config"
	"github.com/MKhiriev/smscli/internal/logger"
	"github.com/MKhiriev/smscli/internal/protocol"
	"github.com/MKhiriev/smscli/models"
)

const eventTimeout = 2 * time.Second

// ── helpers ───────────────────────────────────────────────────────────────────

// recorder is a Publisher that keeps every event and lets tests wait for one.
type recorder struct {
	mu     sync.Mutex
	events []any
	ch     chan any
}

func newRecorder() *recorder {
	return &recorder{ch: make(chan any, 256)}
}

func (r *recorder) Publish(ev any) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
	r.ch <- ev
}

func (r *recorder) all() []any {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]any(nil), r.events...)
}

// waitFor consumes events until one of type T arrives.
func waitFor[T any](t *testing.T, r *recorder) T {
	t.Helper()
	deadline := time.After(eventTimeout)
	for {
		select {
		case ev := <-r.ch:
			if v, ok := ev.(T); ok {
				return v
			}
		case <-deadline:
			var zero T
			t.Fatalf("timed out waiting for %T", zero)
			return zero
		}
	}
}

func eventsOf[T any](r *recorder) []T {
	var out []T
	for _, ev := range r.all() {
		if v, ok := ev.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

func testConfig() config.ClientSession {
	return config.ClientSession{
		ConnectTimeout: time.Second,
		MaxChunkSize:   config.DefaultMaxChunkSize,
		ChunkDelay:     time.Millisecond,
	}
}

var testContacts = []models.Contact{
	{ID: "555-1234", DisplayName: "Alice", PhoneNumber: "555-1234"},
	{ID: "555-9876", DisplayName: "Bob", PhoneNumber: "555-9876"},
}

// startRelay listens on loopback and hands the first accepted connection to
// serve. The connection is closed when serve returns.
func startRelay(t *testing.T, serve func(conn net.Conn, ch *protocol.Channel)) (host, port string) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		serve(conn, protocol.NewChannel(conn))
	}()

	t.Cleanup(func() {
		_ = ln.Close()
		<-done
	})

	addr := ln.Addr().(*net.TCPAddr)
	return "127.0.0.1", strconv.Itoa(addr.Port)
}

func writeSnapshot(t *testing.T, ch *protocol.Channel) {
	payload, err := protocol.EncodeSnapshot(testContacts)
	if !assert.NoError(t, err) {
		return
	}
	assert.NoError(t, ch.WriteFrame(payload))
}

func writeMessage(t *testing.T, ch *protocol.Channel, msg models.Message) {
	payload, err := protocol.EncodeMessage(msg)
	if !assert.NoError(t, err) {
		return
	}
	assert.NoError(t, ch.WriteFrame(payload))
}

// drain reads frames until the client goes away.
func drain(ch *protocol.Channel) {
	for {
		if _, err := ch.ReadFrame(); err != nil {
			return
		}
	}
}

// ── Connect ───────────────────────────────────────────────────────────────────

// TestSession_Connect_SnapshotThenMessages verifies the event order for a
// normal session that the relay ends.
func TestSession_Connect_SnapshotThenMessages(t *testing.T) {
	host, port := startRelay(t, func(_ net.Conn, ch *protocol.Channel) {
		writeSnapshot(t, ch)
		writeMessage(t, ch, models.Message{
			Time:           "01:02:03 PM",
			Body:           "hi there",
			ConversationID: "555-1234",
			Type:           models.MessageTypeIncoming,
		})
	})

	rec := newRecorder()
	s := New(testConfig(), rec, logger.Nop())

	require.NoError(t, s.Connect(context.Background(), host, port))

	disc := waitFor[Disconnected](t, rec)
	s.Wait()

	assert.ErrorIs(t, disc.Err, protocol.ErrConnectionClosed)
	assert.Equal(t, StateDisconnected, s.State())

	events := rec.all()
	require.Len(t, events, 6)
	assert.Equal(t, StateChanged{State: StateConnecting, Host: host, Port: port}, events[0])
	assert.Equal(t, StateChanged{State: StateConnected, Host: host, Port: port}, events[1])
	assert.Equal(t, SnapshotReceived{Contacts: testContacts}, events[2])
	assert.Equal(t, MessageReceived{Message: models.Message{
		Time:           "13:02:03",
		Body:           "hi there",
		ConversationID: "555-1234",
		Type:           models.MessageTypeIncoming,
	}}, events[3])
	assert.IsType(t, StateChanged{}, events[4])
	assert.Equal(t, StateDisconnected, events[4].(StateChanged).State)
	assert.IsType(t, Disconnected{}, events[5])
}

func TestSession_Connect_InvalidArgument(t *testing.T) {
	tests := []struct {
		name string
		host string
		port string
	}{
		{name: "empty host", host: "", port: "5000"},
		{name: "bad host", host: "not a host", port: "5000"},
		{name: "port zero", host: "127.0.0.1", port: "0"},
		{name: "port too large", host: "127.0.0.1", port: "65536"},
		{name: "port not a number", host: "127.0.0.1", port: "http"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := newRecorder()
			s := New(testConfig(), rec, logger.Nop())

			err := s.Connect(context.Background(), tt.host, tt.port)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.Equal(t, StateDisconnected, s.State())
			assert.Empty(t, rec.all(), "validation happens before Connecting")
		})
	}
}

// TestSession_Connect_NormalizesPort verifies that a port written with
// spaces or a sign is dialled and reported in its plain decimal form.
func TestSession_Connect_NormalizesPort(t *testing.T) {
	for _, decorate := range []func(string) string{
		func(p string) string { return " " + p + " " },
		func(p string) string { return "+" + p },
	} {
		host, port := startRelay(t, func(_ net.Conn, ch *protocol.Channel) {
			writeSnapshot(t, ch)
			drain(ch)
		})

		rec := newRecorder()
		s := New(testConfig(), rec, logger.Nop())

		require.NoError(t, s.Connect(context.Background(), host, decorate(port)))

		gotHost, gotPort := s.Remote()
		assert.Equal(t, host, gotHost)
		assert.Equal(t, port, gotPort)
		assert.Equal(t, StateChanged{State: StateConnecting, Host: host, Port: port}, rec.all()[0])

		s.Disconnect()
		s.Wait()
	}
}

func TestSession_Connect_Refused(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := strconv.Itoa(ln.Addr().(*net.TCPAddr).Port)
	require.NoError(t, ln.Close())

	rec := newRecorder()
	s := New(testConfig(), rec, logger.Nop())

	err = s.Connect(context.Background(), "127.0.0.1", port)
	assert.ErrorIs(t, err, ErrConnectRefused)
	assert.Equal(t, StateDisconnected, s.State())
	assert.ErrorIs(t, s.LastErr(), ErrConnectRefused)

	states := eventsOf[StateChanged](rec)
	require.Len(t, states, 2)
	assert.Equal(t, StateConnecting, states[0].State)
	assert.Equal(t, StateDisconnected, states[1].State)
	assert.Empty(t, eventsOf[Disconnected](rec), "no connection was established")
}

func TestSession_Connect_Timeout(t *testing.T) {
	blockingDial := func(ctx context.Context, _, _ string) (net.Conn, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}

	cfg := testConfig()
	cfg.ConnectTimeout = 20 * time.Millisecond

	s := New(cfg, newRecorder(), logger.Nop(), WithDialer(blockingDial))

	err := s.Connect(context.Background(), "10.255.255.1", "5000")
	assert.ErrorIs(t, err, ErrConnectTimeout)
	assert.Equal(t, StateDisconnected, s.State())
}

// TestSession_Disconnect_WhileConnecting verifies that Disconnect abandons a
// pending dial.
func TestSession_Disconnect_WhileConnecting(t *testing.T) {
	dialing := make(chan struct{})
	blockingDial := func(ctx context.Context, _, _ string) (net.Conn, error) {
		close(dialing)
		<-ctx.Done()
		return nil, ctx.Err()
	}

	cfg := testConfig()
	cfg.ConnectTimeout = time.Minute
	s := New(cfg, newRecorder(), logger.Nop(), WithDialer(blockingDial))

	errCh := make(chan error, 1)
	go func() { errCh <- s.Connect(context.Background(), "10.0.0.1", "5000") }()

	<-dialing
	assert.Equal(t, StateConnecting, s.State())
	s.Disconnect()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, ErrConnectFailed)
	case <-time.After(eventTimeout):
		t.Fatal("Connect did not return after Disconnect")
	}
	assert.Equal(t, StateDisconnected, s.State())
}

func TestSession_Connect_AlreadyConnected(t *testing.T) {
	host, port := startRelay(t, func(_ net.Conn, ch *protocol.Channel) {
		writeSnapshot(t, ch)
		drain(ch)
	})

	s := New(testConfig(), newRecorder(), logger.Nop())
	require.NoError(t, s.Connect(context.Background(), host, port))
	defer func() {
		s.Disconnect()
		s.Wait()
	}()

	err := s.Connect(context.Background(), host, port)
	assert.ErrorIs(t, err, ErrAlreadyConnected)
	assert.Equal(t, StateConnected, s.State())
}

func TestSession_Connect_BadSnapshot(t *testing.T) {
	host, port := startRelay(t, func(_ net.Conn, ch *protocol.Channel) {
		_ = ch.WriteFrame([]byte(`["not", "an", "object"]`))
		drain(ch)
	})

	rec := newRecorder()
	s := New(testConfig(), rec, logger.Nop())

	err := s.Connect(context.Background(), host, port)
	assert.ErrorIs(t, err, ErrConnectFailed)
	assert.ErrorIs(t, err, protocol.ErrProtocol)
	assert.Equal(t, StateDisconnected, s.State())
	assert.Empty(t, eventsOf[SnapshotReceived](rec))
	s.Wait()
}

// ── read loop ─────────────────────────────────────────────────────────────────

// TestSession_ReadLoop_SkipsMalformedFrames verifies that a frame that fails
// to decode is reported and the loop keeps reading.
func TestSession_ReadLoop_SkipsMalformedFrames(t *testing.T) {
	host, port := startRelay(t, func(_ net.Conn, ch *protocol.Channel) {
		writeSnapshot(t, ch)
		_ = ch.WriteFrame([]byte(`{"body": "missing fields"}`))
		writeMessage(t, ch, models.Message{
			Time:           "09:15:00 AM",
			Body:           "still here",
			ConversationID: "555-9876",
			Type:           models.MessageTypeIncoming,
		})
		drain(ch)
	})

	rec := newRecorder()
	s := New(testConfig(), rec, logger.Nop())
	require.NoError(t, s.Connect(context.Background(), host, port))

	rejected := waitFor[FrameRejected](t, rec)
	assert.ErrorIs(t, rejected.Err, protocol.ErrProtocol)

	received := waitFor[MessageReceived](t, rec)
	assert.Equal(t, "still here", received.Message.Body)
	assert.Equal(t, StateConnected, s.State())

	s.Disconnect()
	s.Wait()
}

// ── Disconnect ────────────────────────────────────────────────────────────────

func TestSession_Disconnect_WhenDisconnectedIsNoop(t *testing.T) {
	rec := newRecorder()
	s := New(testConfig(), rec, logger.Nop())

	s.Disconnect()
	s.Disconnect()

	assert.Equal(t, StateDisconnected, s.State())
	assert.Empty(t, rec.all())
}

// TestSession_Disconnect_Idempotent verifies that a user disconnect closes
// the connection once and publishes a single Disconnected event.
func TestSession_Disconnect_Idempotent(t *testing.T) {
	relayDone := make(chan struct{})
	host, port := startRelay(t, func(_ net.Conn, ch *protocol.Channel) {
		defer close(relayDone)
		writeSnapshot(t, ch)
		drain(ch)
	})

	rec := newRecorder()
	s := New(testConfig(), rec, logger.Nop())
	require.NoError(t, s.Connect(context.Background(), host, port))

	s.Disconnect()
	s.Disconnect()
	s.Wait()

	select {
	case <-relayDone:
	case <-time.After(eventTimeout):
		t.Fatal("relay did not see the connection close")
	}

	disconnects := eventsOf[Disconnected](rec)
	require.Len(t, disconnects, 1)
	assert.NoError(t, disconnects[0].Err)
	assert.Equal(t, StateDisconnected, s.State())
	assert.NoError(t, s.LastErr())
}

// ── SendMessage ───────────────────────────────────────────────────────────────

func TestSession_SendMessage_NotConnected(t *testing.T) {
	s := New(testConfig(), newRecorder(), logger.Nop())

	err := s.SendMessage(context.Background(), "555-1234", "hello")
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestSession_SendMessage_InvalidArgument(t *testing.T) {
	s := New(testConfig(), newRecorder(), logger.Nop())

	assert.ErrorIs(t, s.SendMessage(context.Background(), "", "hello"), ErrInvalidArgument)
	assert.ErrorIs(t, s.SendMessage(context.Background(), "555-1234", ""), ErrInvalidArgument)
}

// TestSession_SendMessage_Chunks verifies that a long text goes out as
// ordered OUTBOX chunks, each recorded before it is written.
func TestSession_SendMessage_Chunks(t *testing.T) {
	frames := make(chan []byte, 8)
	host, port := startRelay(t, func(_ net.Conn, ch *protocol.Channel) {
		writeSnapshot(t, ch)
		for {
			payload, err := ch.ReadFrame()
			if err != nil {
				close(frames)
				return
			}
			frames <- payload
		}
	})

	cfg := testConfig()
	cfg.MaxChunkSize = 5
	clock := func() time.Time { return time.Date(2026, 1, 2, 21, 4, 5, 0, time.Local) }

	rec := newRecorder()
	s := New(cfg, rec, logger.Nop(), WithClock(clock))
	require.NoError(t, s.Connect(context.Background(), host, port))

	require.NoError(t, s.SendMessage(context.Background(), "555-1234", "aaaaabbbbbccccc"))

	var got []models.Message
	for i := 0; i < 3; i++ {
		select {
		case payload := <-frames:
			msg, err := protocol.DecodeMessage(payload)
			require.NoError(t, err)
			got = append(got, msg)
		case <-time.After(eventTimeout):
			t.Fatal("relay did not receive all chunks")
		}
	}

	s.Disconnect()
	s.Wait()

	want := []models.Message{
		{Time: "21:04:05", Body: "aaaaa", ConversationID: "555-1234", Type: models.MessageTypeOutgoing},
		{Time: "21:04:05", Body: "bbbbb", ConversationID: "555-1234", Type: models.MessageTypeOutgoing},
		{Time: "21:04:05", Body: "ccccc", ConversationID: "555-1234", Type: models.MessageTypeOutgoing},
	}
	assert.Equal(t, want, got)

	sent := eventsOf[MessageSent](rec)
	require.Len(t, sent, 3)
	for i, ev := range sent {
		assert.Equal(t, want[i], ev.Message)
	}
}

// TestSession_SendMessage_ConcurrentSendsKeepChunksTogether verifies that a
// second text sent while the first is still being chunked waits for it, so
// the relay never sees the two texts mixed.
func TestSession_SendMessage_ConcurrentSendsKeepChunksTogether(t *testing.T) {
	bodies := make(chan string, 8)
	host, port := startRelay(t, func(_ net.Conn, ch *protocol.Channel) {
		writeSnapshot(t, ch)
		for {
			payload, err := ch.ReadFrame()
			if err != nil {
				return
			}
			msg, err := protocol.DecodeMessage(payload)
			if assert.NoError(t, err) {
				bodies <- msg.Body
			}
		}
	})

	cfg := testConfig()
	cfg.MaxChunkSize = 2
	cfg.ChunkDelay = 20 * time.Millisecond

	rec := newRecorder()
	s := New(cfg, rec, logger.Nop())
	require.NoError(t, s.Connect(context.Background(), host, port))

	var wg sync.WaitGroup
	send := func(text string) {
		defer wg.Done()
		assert.NoError(t, s.SendMessage(context.Background(), "555-1234", text))
	}

	wg.Add(2)
	go send("AAAAAA")
	first := waitFor[MessageSent](t, rec)
	require.Equal(t, "AA", first.Message.Body)
	go send("BBBBBB")
	wg.Wait()

	var got []string
	for i := 0; i < 6; i++ {
		select {
		case body := <-bodies:
			got = append(got, body)
		case <-time.After(eventTimeout):
			t.Fatal("relay did not receive all chunks")
		}
	}

	s.Disconnect()
	s.Wait()

	assert.Equal(t, []string{"AA", "AA", "AA", "BB", "BB", "BB"}, got)

	var recorded []string
	for _, ev := range eventsOf[MessageSent](rec) {
		recorded = append(recorded, ev.Message.Body)
	}
	assert.Equal(t, got, recorded)
}

func TestSession_SendMessage_ContextCanceledBetweenChunks(t *testing.T) {
	host, port := startRelay(t, func(_ net.Conn, ch *protocol.Channel) {
		writeSnapshot(t, ch)
		drain(ch)
	})

	cfg := testConfig()
	cfg.MaxChunkSize = 1
	cfg.ChunkDelay = time.Minute

	rec := newRecorder()
	s := New(cfg, rec, logger.Nop())
	require.NoError(t, s.Connect(context.Background(), host, port))
	defer func() {
		s.Disconnect()
		s.Wait()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- s.SendMessage(ctx, "555-1234", "abc") }()

	waitFor[MessageSent](t, rec)
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(eventTimeout):
		t.Fatal("SendMessage ignored cancellation")
	}
	assert.Len(t, eventsOf[MessageSent](rec), 1)
	assert.Equal(t, StateConnected, s.State())
}

// scriptedConn serves a fixed byte stream to the reader and fails the
// failAt-th write.
type scriptedConn struct {
	reader *bytes.Reader
	failAt int

	mu     sync.Mutex
	writes [][]byte

	once   sync.Once
	closed chan struct{}
}

func newScriptedConn(t *testing.T, failAt int) *scriptedConn {
	t.Helper()

	payload, err := protocol.EncodeSnapshot(testContacts)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, protocol.NewChannel(&buf).WriteFrame(payload))

	return &scriptedConn{
		reader: bytes.NewReader(buf.Bytes()),
		failAt: failAt,
		closed: make(chan struct{}),
	}
}

func (c *scriptedConn) Read(p []byte) (int, error) {
	n, err := c.reader.Read(p)
	if errors.Is(err, io.EOF) {
		<-c.closed
		return 0, net.ErrClosed
	}
	return n, err
}

func (c *scriptedConn) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.writes)+1 == c.failAt {
		c.failAt = -1
		return 0, errors.New("broken pipe")
	}
	c.writes = append(c.writes, append([]byte(nil), p...))
	return len(p), nil
}

func (c *scriptedConn) Close() error {
	c.once.Do(func() { close(c.closed) })
	return nil
}

func (c *scriptedConn) writeCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.writes)
}

func (c *scriptedConn) LocalAddr() net.Addr { return &net.TCPAddr{} }
func (c *scriptedConn) RemoteAddr() net.Addr { return &net.TCPAddr{} }
func (c *scriptedConn) SetDeadline(time.Time) error { return nil }
func (c *scriptedConn) SetReadDeadline(time.Time) error { return nil }
func (c *scriptedConn) SetWriteDeadline(time.Time) error { return nil }

// TestSession_SendMessage_SecondWriteFails verifies that both attempted
// chunks are recorded, the session disconnects and the third chunk is never
// written.
func TestSession_SendMessage_SecondWriteFails(t *testing.T) {
	conn := newScriptedConn(t, 2)
	dial := func(context.Context, string, string) (net.Conn, error) { return conn, nil }

	cfg := testConfig()
	cfg.MaxChunkSize = 4

	rec := newRecorder()
	s := New(cfg, rec, logger.Nop(), WithDialer(dial))
	require.NoError(t, s.Connect(context.Background(), "10.0.0.1", "5000"))

	err := s.SendMessage(context.Background(), "555-1234", strings.Repeat("x", 12))
	assert.ErrorIs(t, err, protocol.ErrIO)

	s.Wait()

	sent := eventsOf[MessageSent](rec)
	require.Len(t, sent, 2)
	assert.Equal(t, "xxxx", sent[0].Message.Body)
	assert.Equal(t, "xxxx", sent[1].Message.Body)

	assert.Equal(t, 1, conn.writeCount())
	assert.Equal(t, StateDisconnected, s.State())

	disconnects := eventsOf[Disconnected](rec)
	require.Len(t, disconnects, 1)
	assert.ErrorIs(t, disconnects[0].Err, protocol.ErrIO)
}
