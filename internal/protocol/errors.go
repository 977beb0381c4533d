package protocol

import "errors"

var (
	// ErrIO is returned when a read or write on an established stream fails,
	// including a partial length prefix or a truncated payload.
	ErrIO = errors.New("stream i/o error")

	// ErrConnectionClosed is returned by [Channel.ReadFrame] when the peer
	// closed the stream cleanly before a new frame started.
	ErrConnectionClosed = errors.New("connection closed by peer")

	// ErrProtocol is returned when a frame payload is not a valid message
	// (malformed JSON, missing or invalid fields).
	ErrProtocol = errors.New("protocol error")
)
