package search

import "time"

// Default resource ceilings shared by all strategies.
const (
	DefaultMaxDuration = 30 * time.Second
	DefaultMaxNodes    = 1_000_000
	DefaultMaxDepth    = 100 // DFS only
)

// StopReason says why the governor cut a search off.
type StopReason string

const (
	// StopNone means no ceiling has been breached.
	StopNone StopReason = ""
	// StopTimedOut means the wall-clock deadline passed.
	StopTimedOut StopReason = "timeout"
	// StopNodeLimit means the node ceiling was reached.
	StopNodeLimit StopReason = "node limit"
)

// Limits holds the resource ceilings for one run. Zero fields fall back to
// the defaults above.
type Limits struct {
	// MaxDuration is the wall-clock budget for the whole search.
	MaxDuration time.Duration
	// MaxNodes caps the number of expanded nodes.
	MaxNodes int
	// MaxDepth bounds DFS path length. Other strategies ignore it.
	MaxDepth int
}

// governor enforces Limits. Strategies call Check once per expansion, making
// the search cooperatively preemptible; there is no external cancel signal.
type governor struct {
	limits Limits
	start  time.Time
}

func newGovernor(limits Limits) *governor {
	return &governor{limits: limits, start: time.Now()}
}

// Check returns the first breached ceiling, or StopNone.
func (g *governor) Check(nodesExpanded int) StopReason {
	if time.Since(g.start) >= g.limits.MaxDuration {
		return StopTimedOut
	}
	if nodesExpanded >= g.limits.MaxNodes {
		return StopNodeLimit
	}
	return StopNone
}

// Elapsed returns the wall-clock time since the governor was armed.
func (g *governor) Elapsed() time.Duration { return time.Since(g.start) }

// taggedName suffixes an algorithm name with the stop reason, so callers can
// tell "no solution exists" apart from "search was cut off".
func taggedName(name string, reason StopReason) string {
	if reason == StopNone {
		return name
	}
	return name + " (" + string(reason) + ")"
}
