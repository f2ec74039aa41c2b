package sched

import "testing"

func defaultLoads() []tierLoad {
	return []tierLoad{
		{prio: Low, weight: 10},
		{prio: Normal, weight: 50},
		{prio: High, weight: 100},
	}
}

func TestPickTier(t *testing.T) {
	// Total weight 160: draws 0-9 land on low, 10-59 on normal,
	// 60-159 on high.
	tests := map[uint64]int{
		0:   0,
		9:   0,
		10:  1,
		59:  1,
		60:  2,
		159: 2,
	}
	for draw, want := range tests {
		if got := pickTier(defaultLoads(), draw); got != want {
			t.Errorf("pickTier(draw=%d) = %d, want %d", draw, got, want)
		}
	}
}

func TestPickTierSingle(t *testing.T) {
	loads := []tierLoad{{prio: Normal, weight: 50}}
	for draw := uint64(0); draw < 50; draw++ {
		if got := pickTier(loads, draw); got != 0 {
			t.Fatalf("pickTier(draw=%d) = %d, want 0", draw, got)
		}
	}
}

// The accumulation loop cannot miss while weights are exact integers
// and the draw is reduced modulo their sum. Guard the fallback anyway:
// if a future change makes draws inexact, selection must degrade to the
// lowest tier instead of crashing.
func TestPickTierFallback(t *testing.T) {
	loads := defaultLoads()
	for _, draw := range []uint64{160, 1000, ^uint64(0)} {
		if got := pickTier(loads, draw); got != 0 {
			t.Errorf("pickTier(draw=%d) = %d, want fallback to 0", draw, got)
		}
	}
}
