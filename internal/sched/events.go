package sched

import "time"

const eventBuffer = 256

// EventKind identifies a queue operation.
type EventKind int

const (
	EventEnqueue EventKind = iota
	EventDequeue
)

func (k EventKind) String() string {
	switch k {
	case EventEnqueue:
		return "Enqueue"
	case EventDequeue:
		return "Dequeue"
	default:
		return "Unknown"
	}
}

// Event describes one enqueue or dequeue.
type Event struct {
	Time     time.Time
	Kind     EventKind
	TaskID   string
	TaskName string
	Priority Priority
	Depth    int // queue length after the operation
}

// Events exposes the queue's activity stream. The channel is buffered;
// when no consumer keeps up, events are dropped rather than blocking
// queue operations.
func (q *Queue) Events() <-chan Event {
	return q.events
}

// emit publishes an event. Called after the queue lock is released so a
// slow or absent consumer can never stall enqueue or dequeue.
func (q *Queue) emit(kind EventKind, t Task, p Priority, depth int) {
	ev := Event{
		Time:     time.Now(),
		Kind:     kind,
		TaskID:   t.ID(),
		TaskName: t.Name(),
		Priority: p,
		Depth:    depth,
	}
	select {
	case q.events <- ev:
	default:
	}
}
