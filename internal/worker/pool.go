// Package worker drains a sched.Queue with a pool of polling consumers.
//
// The queue itself never blocks waiting for work, so the pool layers
// the blocking semantics on top: each worker dequeues in a loop and
// sleeps for the poll interval when the queue comes up empty.
package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"tierq/internal/sched"
)

const (
	defaultWorkers = 4
	defaultPoll    = 50 * time.Millisecond
)

// Runnable is a task the pool knows how to execute.
type Runnable interface {
	Run(context.Context) error
}

// Pool runs dequeued tasks on a fixed set of goroutines. Failure
// handling stops at logging; tasks are never re-enqueued.
type Pool struct {
	queue   *sched.Queue
	workers int
	poll    time.Duration
	log     *zap.Logger
}

// New creates a pool draining q. Non-positive workers or poll fall back
// to defaults; a nil logger disables logging.
func New(q *sched.Queue, workers int, poll time.Duration, log *zap.Logger) *Pool {
	if workers <= 0 {
		workers = defaultWorkers
	}
	if poll <= 0 {
		poll = defaultPoll
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Pool{
		queue:   q,
		workers: workers,
		poll:    poll,
		log:     log,
	}
}

// Run starts the workers and blocks until ctx ends and all workers have
// returned. Tasks already picked up are finished; queued tasks are left
// in the queue.
func (p *Pool) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			p.worker(ctx, id)
		}(i)
	}
	wg.Wait()
}

func (p *Pool) worker(ctx context.Context, id int) {
	log := p.log.With(zap.Int("worker", id))
	for {
		if ctx.Err() != nil {
			return
		}

		t, ok := p.queue.Dequeue()
		if !ok {
			select {
			case <-ctx.Done():
				return
			case <-time.After(p.poll):
			}
			continue
		}
		p.process(ctx, log, t)
	}
}

func (p *Pool) process(ctx context.Context, log *zap.Logger, t sched.Task) {
	log = log.With(zap.String("task_id", t.ID()), zap.String("task", t.Name()))

	defer func() {
		if r := recover(); r != nil {
			log.Error("task panicked", zap.Any("panic", r))
		}
	}()

	r, ok := t.(Runnable)
	if !ok {
		log.Warn("task is not runnable, dropping")
		return
	}
	if err := r.Run(ctx); err != nil {
		log.Error("task failed", zap.Error(err))
		return
	}
	log.Debug("task finished")
}
