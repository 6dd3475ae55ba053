package queue

import (
	"errors"
	"strings"
	"sync"

	"sndconvert/internal/services"
)

// ErrEmpty is returned by Get when no items are pending.
var ErrEmpty = errors.New("queue empty")

// Stats is a snapshot of queue occupancy.
type Stats struct {
	Pending  int
	InFlight int
}

// Queue is an unbounded FIFO of file paths safe for concurrent use.
type Queue struct {
	mu         sync.Mutex
	drained    *sync.Cond
	items      []string
	unfinished int
}

// New returns an empty queue.
func New() *Queue {
	q := &Queue{}
	q.drained = sync.NewCond(&q.mu)
	return q
}

// Put appends paths to the queue.
func (q *Queue) Put(paths ...string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, paths...)
	q.unfinished += len(paths)
}

// Get removes and returns the oldest pending path without blocking. Each item
// is handed to exactly one caller. A blank entry is still removed but
// reported as services.ErrQueueAccess; the caller owns it either way and must
// call Done.
func (q *Queue) Get() (string, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return "", ErrEmpty
	}
	path := q.items[0]
	q.items[0] = ""
	q.items = q.items[1:]
	if strings.TrimSpace(path) == "" {
		return "", services.Wrap(services.ErrQueueAccess, "queue", "get", "blank work item", nil)
	}
	return path, nil
}

// Done acknowledges one item previously returned by Get.
func (q *Queue) Done() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.unfinished <= len(q.items) {
		return errors.New("queue: Done called more times than Get")
	}
	q.unfinished--
	if q.unfinished == 0 {
		q.drained.Broadcast()
	}
	return nil
}

// Discard drops every pending item, acknowledging it, and returns how many
// were dropped. Items already handed out still need Done.
func (q *Queue) Discard() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	dropped := len(q.items)
	q.items = nil
	q.unfinished -= dropped
	if q.unfinished == 0 {
		q.drained.Broadcast()
	}
	return dropped
}

// Join blocks until every item put into the queue has been acknowledged.
func (q *Queue) Join() {
	q.mu.Lock()
	defer q.mu.Unlock()
	for q.unfinished > 0 {
		q.drained.Wait()
	}
}

// Stats reports the current occupancy.
func (q *Queue) Stats() Stats {
	q.mu.Lock()
	defer q.mu.Unlock()
	return Stats{Pending: len(q.items), InFlight: q.unfinished - len(q.items)}
}
