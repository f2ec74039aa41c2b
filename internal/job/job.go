package job

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is a runnable task with a generated identifier. It satisfies the
// scheduler's Task contract and the worker pool's Runnable contract.
type Job struct {
	id   string
	name string
	run  func(context.Context) error
}

// New creates a job with a fresh UUID and the given work function.
func New(name string, run func(context.Context) error) *Job {
	return &Job{
		id:   uuid.NewString(),
		name: name,
		run:  run,
	}
}

// ID returns the job's unique identifier.
func (j *Job) ID() string { return j.id }

// Name returns the job's diagnostic name.
func (j *Job) Name() string { return j.name }

// Run executes the job's work function. A job without one succeeds
// immediately.
func (j *Job) Run(ctx context.Context) error {
	if j.run == nil {
		return nil
	}
	return j.run(ctx)
}

// Sleep returns a work function that just sleeps for the given duration,
// returning early if the context ends first.
func Sleep(d time.Duration) func(context.Context) error {
	return func(ctx context.Context) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(d):
			return nil
		}
	}
}
