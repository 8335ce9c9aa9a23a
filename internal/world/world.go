package world

import "math/rand"

// Grid size bounds for the interactive environment.
const (
	DefaultGridSize = 5
	MinGridSize     = 2
	MaxGridSize     = 10
)

// Scoring for the interactive environment: every action costs a point, a
// successful suck earns ten back.
const (
	actionPoints = -1
	suckPoints   = 10
)

// World is the mutable environment the editor and visualizer work against.
// It is not used by the search strategies, which only ever see immutable
// State values taken from it via State().
type World struct {
	gridSize      int
	agent         Position
	dirt          map[Position]bool
	actionHistory []Action
	pathHistory   []Position
	totalCost     int
	points        int
}

// New returns a clean world of the given size, clamped to [MinGridSize,
// MaxGridSize], with the agent at the origin.
func New(gridSize int) *World {
	w := &World{}
	w.gridSize = clampSize(gridSize)
	w.Reset()
	return w
}

func clampSize(n int) int {
	if n < MinGridSize {
		return MinGridSize
	}
	if n > MaxGridSize {
		return MaxGridSize
	}
	return n
}

// Reset clears dirt and histories and returns the agent to the origin.
func (w *World) Reset() {
	w.agent = Position{}
	w.dirt = make(map[Position]bool)
	w.actionHistory = nil
	w.pathHistory = []Position{{}}
	w.totalCost = 0
	w.points = 0
}

// GridSize returns the current edge length.
func (w *World) GridSize() int { return w.gridSize }

// Agent returns the agent's position.
func (w *World) Agent() Position { return w.agent }

// TotalCost returns the number of actions executed since the last reset.
func (w *World) TotalCost() int { return w.totalCost }

// Points returns the performance score accumulated so far.
func (w *World) Points() int { return w.points }

// ActionHistory returns the executed actions in order.
func (w *World) ActionHistory() []Action { return w.actionHistory }

// PathHistory returns the cells the agent has occupied, starting cell first.
func (w *World) PathHistory() []Position { return w.pathHistory }

// InBounds reports whether p lies on the grid.
func (w *World) InBounds(p Position) bool {
	return InBounds(p, w.gridSize)
}

// SetAgent moves the agent. Out-of-bounds positions are ignored.
func (w *World) SetAgent(p Position) {
	if !w.InBounds(p) {
		return
	}
	w.agent = p
	w.pathHistory = []Position{p}
	w.points = 0
}

// AddDirt marks p dirty. Out-of-bounds positions are ignored.
func (w *World) AddDirt(p Position) {
	if w.InBounds(p) {
		w.dirt[p] = true
	}
}

// RemoveDirt marks p clean.
func (w *World) RemoveDirt(p Position) {
	delete(w.dirt, p)
}

// ToggleDirt flips the dirt at p.
func (w *World) ToggleDirt(p Position) {
	if w.dirt[p] {
		w.RemoveDirt(p)
	} else {
		w.AddDirt(p)
	}
}

// HasDirt reports whether p is dirty.
func (w *World) HasDirt(p Position) bool { return w.dirt[p] }

// DirtCount returns the number of dirty cells.
func (w *World) DirtCount() int { return len(w.dirt) }

// RandomDirt replaces the dirt layout, marking each cell dirty with the given
// probability.
func (w *World) RandomDirt(r *rand.Rand, probability float64) {
	w.dirt = make(map[Position]bool)
	for x := 0; x < w.gridSize; x++ {
		for y := 0; y < w.gridSize; y++ {
			if r.Float64() < probability {
				w.dirt[Position{X: x, Y: y}] = true
			}
		}
	}
	w.points = 0
}

// Resize changes the grid size, clamped to the allowed range. Dirt outside
// the new bounds is dropped and the agent is pulled back onto the grid.
func (w *World) Resize(size int) {
	w.gridSize = clampSize(size)
	for p := range w.dirt {
		if !w.InBounds(p) {
			delete(w.dirt, p)
		}
	}
	if w.agent.X >= w.gridSize {
		w.agent.X = w.gridSize - 1
	}
	if w.agent.Y >= w.gridSize {
		w.agent.Y = w.gridSize - 1
	}
	w.pathHistory = []Position{w.agent}
}

// Execute applies one action to the live world. Unlike Successors, movement
// into a wall is clamped rather than rejected: the robot bumps and stays,
// and the action still costs a point. Returns true once the world is clean.
func (w *World) Execute(action Action) bool {
	pointsGained := actionPoints
	next := w.agent
	switch action {
	case Up, Down, Left, Right:
		dx, dy := action.delta()
		next = Position{X: w.agent.X + dx, Y: w.agent.Y + dy}
		if !w.InBounds(next) {
			next = w.agent
		}
	case Suck:
		if w.dirt[w.agent] {
			delete(w.dirt, w.agent)
			pointsGained += suckPoints
		}
	}

	old := w.agent
	w.agent = next
	w.actionHistory = append(w.actionHistory, action)
	if w.agent != old {
		w.pathHistory = append(w.pathHistory, w.agent)
	}
	w.totalCost++
	w.points += pointsGained
	return len(w.dirt) == 0
}

// State snapshots the world as an immutable search state.
func (w *World) State() State {
	dirt := make([]Position, 0, len(w.dirt))
	for p := range w.dirt {
		dirt = append(dirt, p)
	}
	return NewState(w.agent, dirt)
}

// Load replaces the world contents with a saved layout.
func (w *World) Load(gridSize int, agent Position, dirt []Position) {
	w.gridSize = clampSize(gridSize)
	w.Reset()
	w.SetAgent(agent)
	for _, p := range dirt {
		w.AddDirt(p)
	}
}
