package search

import (
	"time"

	"github.com/jask/vacuumworld/internal/world"
)

// nearestProgressEvery is the reporting cadence for the nearest-neighbor
// walker, which counts executed steps rather than frontier expansions.
const nearestProgressEvery = 10

// runNearestNeighbor is the fast non-optimal strategy: no state-space search
// at all. It repeatedly picks the closest remaining dirty cell by Manhattan
// distance, walks there one axis at a time (horizontal first, then
// vertical), sucks, and repeats. It always terminates and succeeds on any
// in-bounds board, so it is the fallback for boards where a full search
// would blow the resource governor's ceilings; the governor is deliberately
// not consulted here. A state that violates the bounds invariant (dirt or
// agent off the grid) makes a leg unwalkable; the walker reports failure
// rather than stepping in place forever. It fills in the same Result and
// diagnostics contract as the full searches.
func runNearestNeighbor(initial world.State, gridSize int, prog *Progress, opts Options) Result {
	start := time.Now()
	prog.Start(NameNearest)
	defer prog.Stop()

	var path []world.Action
	var explored []world.Position
	var edges []Edge
	steps := 0
	current := initial

	record := func(action world.Action, next world.State, target world.Position) {
		if opts.Capture {
			// Capture every possible branch from the current state so the
			// expansion tree shows the alternatives the walker passed over,
			// scored by distance to the chosen target.
			for _, succ := range world.Successors(current, gridSize) {
				agent := succ.State.Agent()
				dist := abs(agent.X-target.X) + abs(agent.Y-target.Y)
				edges = append(edges, Edge{Parent: current, Action: succ.Action, Child: succ.State, Metric: float64(dist)})
			}
			explored = append(explored, current.Agent())
		}
		current = next
		path = append(path, action)
		steps++
		if steps%nearestProgressEvery == 0 {
			prog.Update(steps, current.DirtCount())
		}
	}

	step := func(action world.Action, target world.Position) bool {
		next, ok := stepState(current, action, gridSize)
		if !ok {
			return false
		}
		record(action, next, target)
		return true
	}

	for !current.IsGoal() {
		target := nearestDirt(current)

		ok := true
		for ok && current.Agent().X != target.X {
			action := world.Right
			if current.Agent().X > target.X {
				action = world.Left
			}
			ok = step(action, target)
		}
		for ok && current.Agent().Y != target.Y {
			action := world.Down
			if current.Agent().Y > target.Y {
				action = world.Up
			}
			ok = step(action, target)
		}
		if ok {
			ok = step(world.Suck, target)
		}
		if !ok {
			prog.Update(steps, current.DirtCount())
			return Result{
				NodesExpanded: steps,
				Duration:      time.Since(start),
				FrontierPeak:  initial.DirtCount(),
				Algorithm:     NameNearest,
				Explored:      explored,
				Edges:         edges,
			}
		}
	}

	prog.Update(steps, 0)
	return Result{
		Path:          path,
		NodesExpanded: steps,
		Duration:      time.Since(start),
		FrontierPeak:  initial.DirtCount(),
		Success:       true,
		Algorithm:     NameNearest,
		Explored:      explored,
		Edges:         edges,
	}
}

// nearestDirt returns the dirty cell closest to the agent, ties resolved by
// canonical dirt order so runs are reproducible.
func nearestDirt(s world.State) world.Position {
	agent := s.Agent()
	var best world.Position
	bestDist := -1
	for _, d := range s.Dirt() {
		dist := abs(agent.X-d.X) + abs(agent.Y-d.Y)
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = d
		}
	}
	return best
}

// stepState applies one action via the transition function. A missing
// successor means the action is illegal from s, which happens only when the
// walk's target cannot be reached inside the grid.
func stepState(s world.State, action world.Action, gridSize int) (world.State, bool) {
	for _, succ := range world.Successors(s, gridSize) {
		if succ.Action == action {
			return succ.State, true
		}
	}
	return world.State{}, false
}
