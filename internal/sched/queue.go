package sched

import (
	"sync"
	"sync/atomic"
)

// WeightTable overrides the selection weight of individual tiers.
// Entries key by tier, so High and Custom(100) address the same row.
// Zero-weight entries are ignored; weights are positive by contract.
type WeightTable map[Priority]uint32

// Queue is a weighted priority task queue. Producers enqueue tasks into
// tiers; each dequeue deterministically picks one non-empty tier, with
// a tier's share of picks proportional to its weight, and pops the
// front of that tier's FIFO.
//
// All methods are safe for concurrent use. Dequeue never blocks waiting
// for tasks; an empty queue reports a miss immediately.
type Queue struct {
	mu      sync.RWMutex
	store   *tierStore
	weights map[uint32]uint32 // intrinsic weight -> configured weight

	// draws feeds the weighted selection. It is owned by this
	// instance, starts at zero and is consumed once per dequeue that
	// reaches the selection step.
	draws atomic.Uint64

	events chan Event
}

// New creates a queue with the default tier weights (low 10, normal 50,
// high 100).
func New() *Queue {
	return NewWithWeights(nil)
}

// NewWithWeights creates a queue whose selection weights are overridden
// by the given table. Tiers absent from the table keep their intrinsic
// default weight. Overrides change selection shares only; tier ordering
// and equality always follow intrinsic weights.
func NewWithWeights(table WeightTable) *Queue {
	weights := make(map[uint32]uint32, len(table))
	for p, w := range table {
		if w == 0 {
			continue
		}
		weights[p.Weight()] = w
	}
	return &Queue{
		store:   newTierStore(),
		weights: weights,
		events:  make(chan Event, eventBuffer),
	}
}

// weightFor resolves the selection weight of a tier: the configured
// override if present, the intrinsic default otherwise. A Custom(0)
// tier resolves to 1 so its tasks stay reachable.
func (q *Queue) weightFor(p Priority) uint64 {
	if w, ok := q.weights[p.Weight()]; ok {
		return uint64(w)
	}
	if w := p.Weight(); w > 0 {
		return uint64(w)
	}
	return 1
}

// Enqueue appends the task to the back of the tier's FIFO, creating the
// tier on first use. It never fails; the queue is unbounded.
func (q *Queue) Enqueue(t Task, p Priority) {
	q.mu.Lock()
	q.store.push(p, t)
	depth := q.store.size()
	q.mu.Unlock()

	q.emit(EventEnqueue, t, p, depth)
}

// Dequeue removes and returns one task, or reports false if every tier
// is empty. The weighted pick and the pop run under a single lock
// acquisition so no concurrent dequeuer can drain the chosen tier in
// between.
func (q *Queue) Dequeue() (Task, bool) {
	q.mu.Lock()

	loads := q.store.loads(q.weightFor)
	var total uint64
	for _, l := range loads {
		total += l.weight
	}
	if total == 0 {
		q.mu.Unlock()
		return nil, false
	}

	draw := q.draws.Add(1) - 1
	chosen := loads[pickTier(loads, draw%total)]
	t, ok := q.store.pop(chosen.prio)
	depth := q.store.size()
	q.mu.Unlock()

	if !ok {
		// loads reported the tier non-empty under the same lock.
		return nil, false
	}
	q.emit(EventDequeue, t, chosen.prio, depth)
	return t, true
}

// Len returns the number of queued tasks across all tiers.
func (q *Queue) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.store.size()
}

// IsEmpty reports whether every tier is empty.
func (q *Queue) IsEmpty() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.store.size() == 0
}

// LenFor returns the length of one tier's FIFO, 0 if the tier has never
// been used.
func (q *Queue) LenFor(p Priority) int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.store.sizeFor(p)
}
