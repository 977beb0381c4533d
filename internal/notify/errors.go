package notify

import "errors"

var (
	ErrQueueFull    = errors.New("notification queue is full")
	ErrQueueStopped = errors.New("notification queue is stopped")
)
