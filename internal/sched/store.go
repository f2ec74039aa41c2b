package sched

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// byWeight orders tiers ascending by intrinsic weight. Weight-equal
// tiers (High and Custom(100)) compare equal and share a single entry.
func byWeight(a, b interface{}) int {
	return a.(Priority).Compare(b.(Priority))
}

// tierStore is an ordered mapping from tier to a FIFO of tasks. Tiers
// are created lazily on first push and stay in the map once drained.
// It is not safe for concurrent use; the Queue facade serializes access.
type tierStore struct {
	tiers *treemap.Map // Priority -> *linkedlistqueue.Queue
	total int
}

func newTierStore() *tierStore {
	return &tierStore{tiers: treemap.NewWith(byWeight)}
}

// push appends the task to the back of the tier's FIFO.
func (s *tierStore) push(p Priority, t Task) {
	var fifo *linkedlistqueue.Queue
	if v, ok := s.tiers.Get(p); ok {
		fifo = v.(*linkedlistqueue.Queue)
	} else {
		fifo = linkedlistqueue.New()
		s.tiers.Put(p, fifo)
	}
	fifo.Enqueue(t)
	s.total++
}

// pop removes the front of the tier's FIFO. It reports false if the
// tier is absent or drained.
func (s *tierStore) pop(p Priority) (Task, bool) {
	v, ok := s.tiers.Get(p)
	if !ok {
		return nil, false
	}
	front, ok := v.(*linkedlistqueue.Queue).Dequeue()
	if !ok {
		return nil, false
	}
	s.total--
	return front.(Task), true
}

// size returns the number of tasks across all tiers.
func (s *tierStore) size() int {
	return s.total
}

// sizeFor returns the length of one tier's FIFO, 0 if the tier is absent.
func (s *tierStore) sizeFor(p Priority) int {
	v, ok := s.tiers.Get(p)
	if !ok {
		return 0
	}
	return v.(*linkedlistqueue.Queue).Size()
}

// tierLoad is a snapshot of one non-empty tier and its selection weight.
type tierLoad struct {
	prio   Priority
	weight uint64
}

// loads returns the non-empty tiers in ascending intrinsic order, each
// carrying the selection weight resolved by weightFor.
func (s *tierStore) loads(weightFor func(Priority) uint64) []tierLoad {
	out := make([]tierLoad, 0, s.tiers.Size())
	s.tiers.Each(func(key, value interface{}) {
		if value.(*linkedlistqueue.Queue).Empty() {
			return
		}
		p := key.(Priority)
		out = append(out, tierLoad{prio: p, weight: weightFor(p)})
	})
	return out
}
