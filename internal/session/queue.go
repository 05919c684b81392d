package session

import (
	"context"
	"errors"
	"sync"

	"github.com/meshwire/connector/internal/message"
)

// QueueCapacity bounds each session's outbound queue. A slow client fills
// its own queue and blocks its own producers; nothing else in the process
// backs up behind it.
const QueueCapacity = 64

// ErrQueueClosed is returned by Push once the owning session has entered
// teardown.
var ErrQueueClosed = errors.New("session: queue closed")

// Queue is the bounded outbound buffer between a session's producers
// (request router, dispatch server) and its single send pump. Closing is
// idempotent and never panics a concurrent Push.
type Queue struct {
	ch        chan message.ServiceMessage
	done      chan struct{}
	closeOnce sync.Once
}

// NewQueue creates a queue with capacity QueueCapacity.
func NewQueue() *Queue {
	return &Queue{
		ch:   make(chan message.ServiceMessage, QueueCapacity),
		done: make(chan struct{}),
	}
}

// Push enqueues msg, blocking while the queue is full. It fails with
// ErrQueueClosed once Close has been called and with ctx.Err() if the
// caller's context ends first.
func (q *Queue) Push(ctx context.Context, msg message.ServiceMessage) error {
	select {
	case <-q.done:
		return ErrQueueClosed
	default:
	}

	select {
	case q.ch <- msg:
		return nil
	case <-q.done:
		return ErrQueueClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Messages exposes the receive side of the queue. The session's send pump
// is its only consumer; ordering holds because nothing else reads here.
func (q *Queue) Messages() <-chan message.ServiceMessage { return q.ch }

// Done is closed when the queue closes. The send pump selects on it to
// begin draining.
func (q *Queue) Done() <-chan struct{} { return q.done }

// Close marks the queue closed. Messages already buffered remain readable
// so the send pump can drain them.
func (q *Queue) Close() {
	q.closeOnce.Do(func() { close(q.done) })
}
