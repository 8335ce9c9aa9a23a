package repository

import "time"

// Board represents a saved grid layout. Dirt is stored in the "x,y;x,y"
// encoding from the world package. Boards are inputs to the solver; search
// results themselves are never persisted.
type Board struct {
	ID        string
	Name      string
	GridSize  int
	AgentX    int
	AgentY    int
	Dirt      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
