package world

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Position is a cell on the grid. X grows rightward, Y grows downward.
type Position struct {
	X int
	Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// InBounds reports whether p lies on a gridSize x gridSize board.
func InBounds(p Position, gridSize int) bool {
	return p.X >= 0 && p.X < gridSize && p.Y >= 0 && p.Y < gridSize
}

// manhattan returns the grid distance between two positions.
func manhattan(a, b Position) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// State is an immutable value: where the agent stands plus the set of dirty
// cells. Two states are equal iff agent position and dirt set are equal,
// regardless of the order dirt was added in. Explored-set deduplication keys
// on Key(), so equality must be content equality, never identity.
type State struct {
	agent Position
	dirt  []Position // sorted by (Y, X), deduplicated, never mutated
	key   string
}

// NewState builds a state from an agent position and any dirt ordering.
// The dirt slice is copied; callers keep ownership of their argument.
func NewState(agent Position, dirt []Position) State {
	d := normalizeDirt(dirt)
	return State{agent: agent, dirt: d, key: stateKey(agent, d)}
}

func normalizeDirt(dirt []Position) []Position {
	if len(dirt) == 0 {
		return nil
	}
	d := make([]Position, len(dirt))
	copy(d, dirt)
	sort.Slice(d, func(i, j int) bool {
		if d[i].Y != d[j].Y {
			return d[i].Y < d[j].Y
		}
		return d[i].X < d[j].X
	})
	// drop duplicates in place
	out := d[:1]
	for _, p := range d[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}

func stateKey(agent Position, sortedDirt []Position) string {
	var b strings.Builder
	b.Grow(8 + 6*len(sortedDirt))
	b.WriteString(strconv.Itoa(agent.X))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(agent.Y))
	b.WriteByte('|')
	for i, p := range sortedDirt {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.Itoa(p.X))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(p.Y))
	}
	return b.String()
}

// ValidateState checks that the agent and every dirty cell lie on a
// gridSize x gridSize board. States built from external input (flags,
// scenario files, rows read back from the board library) must pass through
// here before being searched: the search strategies assume in-bounds states
// and do not re-check.
func ValidateState(s State, gridSize int) error {
	if !InBounds(s.agent, gridSize) {
		return fmt.Errorf("world: agent %s outside %dx%d grid", s.agent, gridSize, gridSize)
	}
	for _, d := range s.dirt {
		if !InBounds(d, gridSize) {
			return fmt.Errorf("world: dirt %s outside %dx%d grid", d, gridSize, gridSize)
		}
	}
	return nil
}

// Agent returns the agent's position.
func (s State) Agent() Position { return s.agent }

// Key returns a canonical identity string, suitable as a map key.
func (s State) Key() string { return s.key }

// Equal reports content equality.
func (s State) Equal(o State) bool { return s.key == o.key }

// IsGoal reports whether every cell is clean.
func (s State) IsGoal() bool { return len(s.dirt) == 0 }

// DirtCount returns the number of dirty cells.
func (s State) DirtCount() int { return len(s.dirt) }

// HasDirt reports whether p is dirty.
func (s State) HasDirt(p Position) bool {
	for _, d := range s.dirt {
		if d == p {
			return true
		}
	}
	return false
}

// Dirt returns the dirty cells in canonical order. The returned slice is a
// copy; mutating it does not affect the state.
func (s State) Dirt() []Position {
	if len(s.dirt) == 0 {
		return nil
	}
	out := make([]Position, len(s.dirt))
	copy(out, s.dirt)
	return out
}

// withAgent returns a state with the agent moved and the dirt shared.
// Sharing is safe because dirt slices are never mutated.
func (s State) withAgent(p Position) State {
	return State{agent: p, dirt: s.dirt, key: stateKey(p, s.dirt)}
}

// withoutDirt returns a state with p removed from the dirt set. If p is not
// dirty the receiver is returned unchanged.
func (s State) withoutDirt(p Position) State {
	idx := -1
	for i, d := range s.dirt {
		if d == p {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s
	}
	d := make([]Position, 0, len(s.dirt)-1)
	d = append(d, s.dirt[:idx]...)
	d = append(d, s.dirt[idx+1:]...)
	if len(d) == 0 {
		d = nil
	}
	return State{agent: s.agent, dirt: d, key: stateKey(s.agent, d)}
}

func (s State) String() string {
	return fmt.Sprintf("State(agent=%s dirt=%d)", s.agent, len(s.dirt))
}

// FormatPositions renders positions as "x,y;x,y". Used for board storage and
// scenario files.
func FormatPositions(ps []Position) string {
	var b strings.Builder
	for i, p := range ps {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.Itoa(p.X))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(p.Y))
	}
	return b.String()
}

// ParsePositions is the inverse of FormatPositions. An empty string yields an
// empty set.
func ParsePositions(s string) ([]Position, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ";")
	out := make([]Position, 0, len(parts))
	for _, part := range parts {
		xy := strings.Split(strings.TrimSpace(part), ",")
		if len(xy) != 2 {
			return nil, fmt.Errorf("world: bad position %q", part)
		}
		x, err := strconv.Atoi(strings.TrimSpace(xy[0]))
		if err != nil {
			return nil, fmt.Errorf("world: bad position %q: %w", part, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(xy[1]))
		if err != nil {
			return nil, fmt.Errorf("world: bad position %q: %w", part, err)
		}
		out = append(out, Position{X: x, Y: y})
	}
	return out, nil
}
