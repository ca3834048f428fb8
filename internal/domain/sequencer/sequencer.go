// Package sequencer serializes work per conversation: messages from one
// conversation run strictly in arrival order, while different
// conversations proceed concurrently.
package sequencer

import (
	"context"
	"sync"
)

type job struct {
	fn   func()
	done chan struct{}
}

type queue struct {
	jobs    []job
	running bool
}

// Sequencer owns one logical queue per conversation. A queue drains on
// its own goroutine, which exits as soon as the queue empties; idle
// conversations cost nothing.
type Sequencer struct {
	mu     sync.Mutex
	queues map[string]*queue
}

func New() *Sequencer {
	return &Sequencer{queues: make(map[string]*queue)}
}

// Do runs fn in the conversation's queue and blocks until it finishes or
// ctx is done. When ctx wins, fn still runs in its turn; only the wait is
// abandoned.
func (s *Sequencer) Do(ctx context.Context, conversationID string, fn func()) error {
	j := job{fn: fn, done: make(chan struct{})}

	s.mu.Lock()
	q, ok := s.queues[conversationID]
	if !ok {
		q = &queue{}
		s.queues[conversationID] = q
	}
	q.jobs = append(q.jobs, j)
	if !q.running {
		q.running = true
		go s.drain(conversationID, q)
	}
	s.mu.Unlock()

	select {
	case <-j.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// drain runs the conversation's jobs one at a time until the queue is
// empty, then retires.
func (s *Sequencer) drain(conversationID string, q *queue) {
	for {
		s.mu.Lock()
		if len(q.jobs) == 0 {
			q.running = false
			delete(s.queues, conversationID)
			s.mu.Unlock()
			return
		}
		j := q.jobs[0]
		q.jobs = q.jobs[1:]
		s.mu.Unlock()

		j.fn()
		close(j.done)
	}
}
