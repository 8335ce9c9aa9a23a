package world

// Action is one of the five things the agent can do. The set is closed;
// nothing extends it at runtime.
type Action int

const (
	Up Action = iota
	Down
	Left
	Right
	Suck
)

var actionNames = [...]string{"Up", "Down", "Left", "Right", "Suck"}

func (a Action) String() string {
	if a < Up || a > Suck {
		return "Unknown"
	}
	return actionNames[a]
}

// delta returns the movement offset for a. Suck moves nothing.
func (a Action) delta() (dx, dy int) {
	switch a {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// moveActions is the canonical expansion order for movement. Successors
// returns pairs in this order (then Suck), which fixes tie-breaking for
// order-sensitive strategies.
var moveActions = [...]Action{Up, Down, Left, Right}
