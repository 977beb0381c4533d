package notify

import (
	"context"
	"sync"

	"github.com/MKhiriev/smscli/internal/logger"
)

// DefaultQueueSize is the buffer size used when NewQueue gets a non-positive
// size.
const DefaultQueueSize = 16

type note struct {
	title string
	body  string
}

// Queue hands notifications to a background worker. Notify never blocks:
// when the buffer is full the notification is dropped.
type Queue struct {
	next   Notifier
	logger *logger.Logger
	notes  chan note

	mu      sync.Mutex
	cancel  context.CancelFunc
	stopped bool
	wg      sync.WaitGroup
}

// NewQueue creates a Queue in front of next. The worker is idle until Start
// is called; notifications sent before that wait in the buffer.
func NewQueue(next Notifier, size int, log *logger.Logger) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}

	return &Queue{
		next:   next,
		logger: log,
		notes:  make(chan note, size),
	}
}

// Notify implements Notifier.
func (q *Queue) Notify(title, body string) error {
	q.mu.Lock()
	stopped := q.stopped
	q.mu.Unlock()
	if stopped {
		return ErrQueueStopped
	}

	select {
	case q.notes <- note{title: title, body: body}:
		return nil
	default:
		return ErrQueueFull
	}
}

// Start launches the worker. A second call while running does nothing. The
// worker exits when ctx is cancelled or Stop is called.
func (q *Queue) Start(ctx context.Context) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.cancel != nil {
		return
	}

	jobCtx, cancel := context.WithCancel(ctx)
	q.cancel = cancel
	q.stopped = false
	q.wg.Add(1)

	go func() {
		defer q.wg.Done()
		for {
			select {
			case <-jobCtx.Done():
				return
			case n := <-q.notes:
				if err := q.next.Notify(n.title, n.body); err != nil {
					q.logger.Warn().Err(err).Str("title", n.title).Msg("desktop notification failed")
				}
			}
		}
	}()
}

// Stop cancels the worker and blocks until it has exited. Pending
// notifications are dropped. Safe to call when the queue is not running.
func (q *Queue) Stop() {
	q.mu.Lock()
	cancel := q.cancel
	q.cancel = nil
	q.stopped = true
	q.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	q.wg.Wait()
}
