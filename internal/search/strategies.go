package search

// Algorithm names form a closed registry; callers select by these strings.
const (
	NameBFS     = "BFS"
	NameDFS     = "DFS"
	NameUCS     = "UCS"
	NameGreedy  = "Greedy"
	NameAStar   = "A*"
	NameNearest = "Nearest Neighbor"
)

// bfsPlan: FIFO frontier, skip states already explored or queued. Finds the
// shortest path in steps.
func bfsPlan() plan {
	return plan{
		name:        NameBFS,
		newFrontier: func() frontier { return &fifoFrontier{} },
	}
}

// dfsPlan: LIFO frontier bounded by Limits.MaxDepth, skip states already
// explored or queued. No optimality guarantee; the bound keeps it from
// wandering forever.
func dfsPlan() plan {
	return plan{
		name:        NameDFS,
		newFrontier: func() frontier { return &lifoFrontier{} },
		depthBound:  true,
	}
}

// ucsPlan: priority frontier keyed by accumulated cost, re-insert on a
// strictly cheaper cost. Optimal under the uniform unit step cost used here.
func ucsPlan() plan {
	return plan{
		name:        NameUCS,
		newFrontier: func() frontier { return newHeapFrontier() },
		priority:    func(n *node) float64 { return float64(n.cost) },
		reinsert:    true,
	}
}

// greedyPlan: priority frontier keyed by the heuristic alone, skip once
// explored. Fast, no optimality guarantee.
func greedyPlan() plan {
	return plan{
		name:        NameGreedy,
		newFrontier: func() frontier { return newHeapFrontier() },
		priority:    func(n *node) float64 { return float64(Estimate(n.state)) },
	}
}

// astarPlan: priority frontier keyed by cost plus heuristic, re-insert on a
// strictly cheaper cost. Optimal only under an admissible heuristic, which
// Estimate does not claim to be; see its doc comment.
func astarPlan() plan {
	return plan{
		name:        NameAStar,
		newFrontier: func() frontier { return newHeapFrontier() },
		priority:    func(n *node) float64 { return float64(n.cost + Estimate(n.state)) },
		reinsert:    true,
	}
}
