package sched

// Task is the unit of work handed through the queue. The queue treats it
// as opaque: it never inspects the payload and keeps no reference after
// a successful dequeue. Any type exposing an identifier and a diagnostic
// name qualifies.
type Task interface {
	// ID returns a unique identifier for the task.
	ID() string

	// Name returns a human-readable name used for diagnostics.
	Name() string
}
