package sched

// pickTier selects one tier from loads by cumulative weight. loads must
// be ordered ascending by intrinsic weight and draw must already be
// reduced modulo the summed weight: the first tier whose cumulative
// weight exceeds the draw wins, so each tier owns a share of the draw
// space proportional to its weight.
func pickTier(loads []tierLoad, draw uint64) int {
	var cum uint64
	for i, l := range loads {
		cum += l.weight
		if cum > draw {
			return i
		}
	}
	// Unreachable while weights are exact integers and draw < sum.
	// Kept so an inexact draw can only ever degrade to the lowest
	// tier rather than crash a dequeue.
	return 0
}
