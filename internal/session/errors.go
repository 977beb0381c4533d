package session

import "errors"

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrConnectTimeout   = errors.New("connection timed out")
	ErrConnectRefused   = errors.New("connection refused")
	ErrConnectFailed    = errors.New("connection failed")
	ErrAlreadyConnected = errors.New("already connected")
	ErrNotConnected     = errors.New("not connected")
)
