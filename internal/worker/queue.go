// Package worker runs storage mutations off the caller's goroutine.
//
// A Queue owns a single goroutine that executes jobs strictly in submission
// order, so two mutations submitted one after another are applied in that
// order even though the submitter never waits. Each submission returns a
// Future that resolves to the job's error.
package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Common errors returned through futures
var (
	ErrQueueClosed = errors.New("worker queue is closed")
	ErrQueueFull   = errors.New("worker queue is full")
)

// Job is a unit of background work
type Job func(ctx context.Context) error

type item struct {
	name   string
	job    Job
	future *Future
}

// Queue executes jobs one at a time in submission order
type Queue struct {
	items  chan item
	logger *zap.Logger

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

// NewQueue creates a queue holding up to size pending jobs and starts its worker
func NewQueue(size int, logger *zap.Logger) *Queue {
	if size <= 0 {
		size = 1
	}
	q := &Queue{
		items:  make(chan item, size),
		logger: logger,
		done:   make(chan struct{}),
	}
	go q.run()
	return q
}

// Submit enqueues job and returns immediately
func (q *Queue) Submit(name string, job Job) *Future {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return Resolved(ErrQueueClosed)
	}

	f := newFuture()
	select {
	case q.items <- item{name: name, job: job, future: f}:
		q.logger.Debug("Job enqueued",
			zap.String("job", name),
			zap.Int("queue_len", len(q.items)),
		)
		return f
	default:
		return Resolved(fmt.Errorf("%w: capacity %d reached", ErrQueueFull, cap(q.items)))
	}
}

// Close stops accepting jobs, runs the ones already queued and waits for them
func (q *Queue) Close() {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.items)
	}
	q.mu.Unlock()

	<-q.done
}

func (q *Queue) run() {
	defer close(q.done)

	ctx := context.Background()
	for it := range q.items {
		err := q.execute(ctx, it)
		if err != nil {
			q.logger.Error("Job failed",
				zap.String("job", it.name),
				zap.Error(err),
			)
		}
		it.future.resolve(err)
	}
	q.logger.Info("Worker queue stopped")
}

// execute runs one job, turning a panic into an error so the queue survives
func (q *Queue) execute(ctx context.Context, it item) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job %s panicked: %v", it.name, r)
		}
	}()
	return it.job(ctx)
}
