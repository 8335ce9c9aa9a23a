package search

import (
	"sync/atomic"
	"time"
)

// Progress is the live handle a caller passes into Solve to watch a search
// from another goroutine. The running strategy writes it at a throttled
// cadence; any number of readers may call Snapshot concurrently without
// blocking. Fields are independent atomics, so a snapshot is eventually
// consistent rather than a cross-field atomic view; that is enough for a UI
// refreshing a few times a second, but a stricter consumer would need a
// mutex here instead.
type Progress struct {
	algorithm  atomic.Pointer[string]
	nodes      atomic.Int64
	frontier   atomic.Int64
	startNanos atomic.Int64
	active     atomic.Bool
}

// NewProgress returns an idle reporter.
func NewProgress() *Progress {
	return &Progress{}
}

// ProgressSnapshot is a point-in-time copy of a reporter.
type ProgressSnapshot struct {
	Algorithm     string
	NodesExplored int
	FrontierSize  int
	Elapsed       time.Duration
	Active        bool
}

// Start resets the counters and marks the reporter active.
func (p *Progress) Start(algorithm string) {
	if p == nil {
		return
	}
	p.algorithm.Store(&algorithm)
	p.nodes.Store(0)
	p.frontier.Store(0)
	p.startNanos.Store(time.Now().UnixNano())
	p.active.Store(true)
}

// Update records the latest counters. Called by the running strategy.
func (p *Progress) Update(nodesExpanded, frontierSize int) {
	if p == nil {
		return
	}
	p.nodes.Store(int64(nodesExpanded))
	p.frontier.Store(int64(frontierSize))
}

// Stop marks the reporter inactive. Counters keep their final values.
func (p *Progress) Stop() {
	if p == nil {
		return
	}
	p.active.Store(false)
}

// Snapshot returns a copy of the current values. Never blocks.
func (p *Progress) Snapshot() ProgressSnapshot {
	if p == nil {
		return ProgressSnapshot{}
	}
	s := ProgressSnapshot{
		NodesExplored: int(p.nodes.Load()),
		FrontierSize:  int(p.frontier.Load()),
		Active:        p.active.Load(),
	}
	if name := p.algorithm.Load(); name != nil {
		s.Algorithm = *name
	}
	if start := p.startNanos.Load(); start > 0 {
		s.Elapsed = time.Since(time.Unix(0, start))
	}
	return s
}
