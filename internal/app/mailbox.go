package app

import (
	"context"
	"sync"
)

// mailbox is an unbounded FIFO queue with many writers and one reader.
// Post never blocks; Receive blocks until a message is queued or ctx ends.
type mailbox[M any] struct {
	mu    sync.Mutex
	queue []M
	ready chan struct{}
}

func newMailbox[M any]() *mailbox[M] {
	return &mailbox[M]{ready: make(chan struct{}, 1)}
}

// Post enqueues msg. Safe for concurrent use.
func (m *mailbox[M]) Post(msg M) {
	m.mu.Lock()
	m.queue = append(m.queue, msg)
	m.mu.Unlock()

	select {
	case m.ready <- struct{}{}:
	default:
		// A wakeup is already pending; the reader drains the whole queue.
	}
}

// Receive dequeues the oldest message.
func (m *mailbox[M]) Receive(ctx context.Context) (M, error) {
	for {
		m.mu.Lock()
		if len(m.queue) > 0 {
			msg := m.queue[0]
			var zero M
			m.queue[0] = zero
			m.queue = m.queue[1:]
			m.mu.Unlock()
			return msg, nil
		}
		m.mu.Unlock()

		select {
		case <-m.ready:
		case <-ctx.Done():
			var zero M
			return zero, ctx.Err()
		}
	}
}

// Len returns the number of queued messages.
func (m *mailbox[M]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}
