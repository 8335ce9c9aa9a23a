package search

import "github.com/jask/vacuumworld/internal/world"

// progressEvery is the reporting cadence for the full-search strategies:
// update the live Progress once per this many expansions rather than on
// every node, so a concurrent observer is never the bottleneck.
const progressEvery = 64

// plan is what distinguishes the five full-search strategies: how the
// frontier orders nodes, how duplicates are handled, and whether depth is
// bounded. Everything else lives in the shared run loop below.
type plan struct {
	name        string
	newFrontier func() frontier
	// priority computes the frontier key for heap-ordered strategies and
	// doubles as the captured edge metric. Nil means FIFO/LIFO ordering,
	// with depth as the metric.
	priority func(n *node) float64
	// reinsert switches duplicate handling from skip-once-seen to
	// re-insert-on-strictly-cheaper-cost (UCS and A*).
	reinsert bool
	// depthBound stops expansion at Limits.MaxDepth (DFS).
	depthBound bool
}

// run drives the shared expansion loop: pop per strategy order, consult the
// governor, deduplicate, goal-test, expand. Goal testing happens at pop time
// for every strategy; none of them early-test generated children, so path
// length comparisons between strategies stay consistent.
func (p plan) run(initial world.State, gridSize int, prog *Progress, opts Options) Result {
	limits := opts.limits()
	gov := newGovernor(limits)
	prog.Start(p.name)
	defer prog.Stop()

	var explored []world.Position
	var edges []Edge

	// A clean board needs no search at all.
	if initial.IsGoal() {
		return Result{
			Success:   true,
			Algorithm: p.name,
			Duration:  gov.Elapsed(),
		}
	}

	front := p.newFrontier()
	root := &node{state: initial, path: nil, cost: 0}
	if p.priority != nil {
		root.prio = p.priority(root)
	}
	front.push(root)

	// exploredCost holds g values for re-inserting strategies; for the
	// others presence alone marks a state expanded. inFrontier backs the
	// skip-if-already-queued policy of BFS and DFS.
	exploredCost := make(map[string]int)
	var inFrontier map[string]struct{}
	if !p.reinsert {
		inFrontier = map[string]struct{}{initial.Key(): {}}
	}

	nodesExpanded := 0
	frontierPeak := 1

	finish := func(success bool, reason StopReason, path []world.Action) Result {
		prog.Update(nodesExpanded, front.len())
		return Result{
			Path:          path,
			NodesExpanded: nodesExpanded,
			Duration:      gov.Elapsed(),
			FrontierPeak:  frontierPeak,
			Success:       success,
			Algorithm:     taggedName(p.name, reason),
			Explored:      explored,
			Edges:         edges,
		}
	}

	for front.len() > 0 {
		if front.len() > frontierPeak {
			frontierPeak = front.len()
		}
		if reason := gov.Check(nodesExpanded); reason != StopNone {
			return finish(false, reason, nil)
		}

		n := front.pop()
		key := n.state.Key()
		if inFrontier != nil {
			delete(inFrontier, key)
		}

		if p.reinsert {
			if cost, seen := exploredCost[key]; seen && cost <= n.cost {
				continue
			}
		} else if _, seen := exploredCost[key]; seen {
			continue
		}
		exploredCost[key] = n.cost
		nodesExpanded++

		if opts.Capture {
			explored = append(explored, n.state.Agent())
		}
		if nodesExpanded%progressEvery == 0 {
			prog.Update(nodesExpanded, front.len())
		}

		if n.state.IsGoal() {
			return finish(true, StopNone, n.path)
		}
		if p.depthBound && len(n.path) >= limits.MaxDepth {
			continue
		}

		for _, succ := range world.Successors(n.state, gridSize) {
			child := n.extend(succ.Action, succ.State)
			childKey := succ.State.Key()
			if p.reinsert {
				if cost, seen := exploredCost[childKey]; seen && cost <= child.cost {
					continue
				}
			} else {
				if _, seen := exploredCost[childKey]; seen {
					continue
				}
				if _, queued := inFrontier[childKey]; queued {
					continue
				}
				inFrontier[childKey] = struct{}{}
			}
			metric := float64(len(child.path))
			if p.priority != nil {
				child.prio = p.priority(child)
				metric = child.prio
			}
			if opts.Capture {
				edges = append(edges, Edge{Parent: n.state, Action: succ.Action, Child: succ.State, Metric: metric})
			}
			front.push(child)
		}
	}

	return finish(false, StopNone, nil)
}
