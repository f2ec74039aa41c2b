package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"tierq/internal/job"
	"tierq/internal/sched"
	"tierq/internal/worker"
)

func main() {
	// Read the configuration
	cfg := sched.Load("config.yml")

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	logger.Info("loaded config",
		zap.Int("workers", cfg.Workers),
		zap.Int("poll_ms", cfg.PollMS),
		zap.Any("weights", cfg.Weights),
	)

	q := sched.NewWithWeights(cfg.WeightTable())

	// Count dequeues per tier off the queue's event stream.
	counts := make(map[string]int)
	var mu sync.Mutex
	go func() {
		for ev := range q.Events() {
			if ev.Kind != sched.EventDequeue {
				continue
			}
			mu.Lock()
			counts[ev.Priority.String()]++
			mu.Unlock()
		}
	}()

	// Enqueue a batch of sleepy jobs across the tiers.
	tiers := []sched.Priority{sched.Low, sched.Normal, sched.High}
	for i := 0; i < 30; i++ {
		p := tiers[i%len(tiers)]
		name := fmt.Sprintf("%s-job-%02d", p, i)
		q.Enqueue(job.New(name, job.Sleep(10*time.Millisecond)), p)
	}
	logger.Info("enqueued demo jobs", zap.Int("total", q.Len()))

	// Drain with the worker pool until empty or the deadline hits.
	ctx, cancel := context.WithCancel(context.Background())
	pool := worker.New(q, cfg.Workers, time.Duration(cfg.PollMS)*time.Millisecond, logger)

	go func() {
		deadline := time.After(10 * time.Second)
		for {
			select {
			case <-deadline:
				cancel()
				return
			case <-time.After(20 * time.Millisecond):
				if q.IsEmpty() {
					cancel()
					return
				}
			}
		}
	}()

	pool.Run(ctx)

	mu.Lock()
	logger.Info("drained", zap.Any("dequeues_per_tier", counts), zap.Int("left", q.Len()))
	mu.Unlock()
}
