package search

import (
	"time"

	"github.com/jask/vacuumworld/internal/world"
)

// Result is what every strategy returns, success or not. It is built once at
// the end of a run and never mutated afterwards; the caller owns it.
type Result struct {
	Path          []world.Action
	NodesExpanded int
	Duration      time.Duration
	FrontierPeak  int
	Success       bool
	Algorithm     string

	// Diagnostics, populated only when Options.Capture is set. Explored
	// lists agent positions in expansion order; Edges records the expansion
	// tree for post-hoc analysis or visualization. Both are kept on
	// governor-triggered aborts, since a partial picture of a cut-off
	// search is still useful.
	Explored []world.Position
	Edges    []Edge
}

// Edge is one captured expansion: parent taken from the frontier, the action
// applied, the child generated, and the metric the strategy ordered the child
// by (depth, cost, heuristic or f value depending on the strategy).
type Edge struct {
	Parent world.State
	Action world.Action
	Child  world.State
	Metric float64
}

// Options tunes a single Solve invocation.
type Options struct {
	// Limits overrides the default resource ceilings when non-zero.
	Limits Limits
	// Capture turns on explored-set and expansion-edge recording.
	Capture bool
}

func (o Options) limits() Limits {
	l := o.Limits
	if l.MaxDuration == 0 {
		l.MaxDuration = DefaultMaxDuration
	}
	if l.MaxNodes == 0 {
		l.MaxNodes = DefaultMaxNodes
	}
	if l.MaxDepth == 0 {
		l.MaxDepth = DefaultMaxDepth
	}
	return l
}
