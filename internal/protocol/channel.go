package protocol

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"sync"
)

// LengthPrefixSize is the size in bytes of the frame length prefix.
const LengthPrefixSize = 4

// readBlockSize bounds the payload buffer allocated before any payload byte
// has arrived. Larger frames grow the buffer as data is read.
const readBlockSize = 64 << 10

// Channel reads and writes length-prefixed frames over a byte stream.
//
// ReadFrame must only be called from one goroutine. WriteFrame may be called
// concurrently: the prefix and the payload of a frame are written under one
// lock, so frames from different writers never interleave.
type Channel struct {
	r io.Reader
	w io.Writer

	wmu sync.Mutex
}

// NewChannel returns a Channel framing rw.
func NewChannel(rw io.ReadWriter) *Channel {
	return &Channel{r: rw, w: rw}
}

// WriteFrame writes the length prefix and payload as a single write.
// Any socket error or short write is reported as [ErrIO].
func (c *Channel) WriteFrame(payload []byte) error {
	if uint64(len(payload)) > math.MaxUint32 {
		return fmt.Errorf("%w: payload of %d bytes does not fit the length prefix", ErrIO, len(payload))
	}

	frame := make([]byte, LengthPrefixSize+len(payload))
	binary.BigEndian.PutUint32(frame, uint32(len(payload)))
	copy(frame[LengthPrefixSize:], payload)

	c.wmu.Lock()
	defer c.wmu.Unlock()

	n, err := c.w.Write(frame)
	if err != nil {
		return fmt.Errorf("%w: write frame: %w", ErrIO, err)
	}
	if n != len(frame) {
		return fmt.Errorf("%w: write frame: %w (%d of %d bytes)", ErrIO, io.ErrShortWrite, n, len(frame))
	}

	return nil
}

// ReadFrame blocks until a whole frame is available and returns its payload.
//
// It returns [ErrConnectionClosed] when the stream ends (or is closed locally)
// before any byte of the length prefix was read, and [ErrIO] for every other
// failure, including a stream that ends in the middle of a frame.
func (c *Channel) ReadFrame() ([]byte, error) {
	var prefix [LengthPrefixSize]byte
	if _, err := io.ReadFull(c.r, prefix[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) || errors.Is(err, io.ErrClosedPipe) {
			return nil, fmt.Errorf("%w: %w", ErrConnectionClosed, err)
		}
		return nil, fmt.Errorf("%w: read length prefix: %w", ErrIO, err)
	}

	length := binary.BigEndian.Uint32(prefix[:])
	if length == 0 {
		return []byte{}, nil
	}

	var payload bytes.Buffer
	payload.Grow(int(min(length, readBlockSize)))
	if n, err := io.CopyN(&payload, c.r, int64(length)); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("%w: read payload: got %d of %d bytes: %w", ErrIO, n, length, err)
	}

	return payload.Bytes(), nil
}
