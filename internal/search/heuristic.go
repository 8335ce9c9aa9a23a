package search

import "github.com/jask/vacuumworld/internal/world"

// Estimate is the distance estimate used by Greedy and A*: Manhattan distance
// from the agent to the nearest dirty cell, plus one for every further dirty
// cell. Zero on a clean board.
//
// The estimate is a deliberate approximation: it charges a flat point per
// extra dirty cell no matter how the cells are laid out, and no admissibility
// argument is made for it. A* built on it is treated as fast rather than
// provably optimal, and tests assert that A* finds a solution whenever BFS
// does, not that its path is shortest.
func Estimate(s world.State) int {
	dirt := s.Dirt()
	if len(dirt) == 0 {
		return 0
	}
	agent := s.Agent()
	min := -1
	for _, d := range dirt {
		dist := abs(agent.X-d.X) + abs(agent.Y-d.Y)
		if min < 0 || dist < min {
			min = dist
		}
	}
	return min + len(dirt) - 1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
