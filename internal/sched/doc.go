// Package sched implements a weighted priority task queue.
//
// Tasks are enqueued into tiers ([Low], [Normal], [High] or [Custom])
// and each tier holds a FIFO of tasks. Dequeue picks one non-empty tier
// per call using a deterministic weighted draw: an instance-scoped
// counter, taken modulo the summed weight of the non-empty tiers,
// selects the tier whose cumulative weight slot it falls into. Over
// many draws a tier receives a share of dequeues proportional to its
// weight, so lower tiers keep making progress while higher tiers
// dominate.
//
// The core type is [Queue], which is safe for concurrent producers and
// consumers. Dequeue never blocks waiting for work; callers that want
// blocking semantics poll on an interval (see internal/worker).
//
// Usage:
//
//	q := sched.New()
//	q.Enqueue(task, sched.High)
//
//	if t, ok := q.Dequeue(); ok {
//	    // run t
//	}
package sched
