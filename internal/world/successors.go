package world

import (
	"errors"
	"fmt"
)

// Successor pairs an action with the state it leads to.
type Successor struct {
	Action Action
	State  State
}

// Successors returns the legal (action, next-state) pairs for s on a
// gridSize x gridSize board, in the canonical order Up, Down, Left, Right,
// Suck. Moves that would leave the grid are omitted rather than clamped, and
// Suck appears only when the agent's cell is dirty, so no pair is ever a
// no-op.
func Successors(s State, gridSize int) []Successor {
	out := make([]Successor, 0, 5)
	for _, a := range moveActions {
		dx, dy := a.delta()
		next := Position{X: s.agent.X + dx, Y: s.agent.Y + dy}
		if !InBounds(next, gridSize) {
			continue
		}
		out = append(out, Successor{Action: a, State: s.withAgent(next)})
	}
	if s.HasDirt(s.agent) {
		out = append(out, Successor{Action: Suck, State: s.withoutDirt(s.agent)})
	}
	return out
}

// ErrReplayMismatch is returned by Replay when an action in the path has no
// matching successor. It signals an inconsistent path, a logic error in the
// producer; Replay never pads the result with unchanged states.
var ErrReplayMismatch = errors.New("world: action does not match any successor")

// Replay reconstructs the state sequence visited by applying path to initial.
// The result always starts with initial and has len(path)+1 entries on
// success.
func Replay(initial State, path []Action, gridSize int) ([]State, error) {
	states := make([]State, 0, len(path)+1)
	states = append(states, initial)
	current := initial
	for i, action := range path {
		matched := false
		for _, succ := range Successors(current, gridSize) {
			if succ.Action == action {
				current = succ.State
				matched = true
				break
			}
		}
		if !matched {
			return nil, fmt.Errorf("%w: step %d action %s from agent %s", ErrReplayMismatch, i, action, current.Agent())
		}
		states = append(states, current)
	}
	return states, nil
}
