package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/vacuumworld/internal/world"
)

// ErrUnknownAlgorithm is returned by Solve for a name outside the registry.
var ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

type runFunc func(initial world.State, gridSize int, prog *Progress, opts Options) Result

// registry is the closed set of selectable strategies, in display order.
var registry = []struct {
	name string
	run  runFunc
}{
	{NameBFS, func(s world.State, g int, p *Progress, o Options) Result { return bfsPlan().run(s, g, p, o) }},
	{NameDFS, func(s world.State, g int, p *Progress, o Options) Result { return dfsPlan().run(s, g, p, o) }},
	{NameUCS, func(s world.State, g int, p *Progress, o Options) Result { return ucsPlan().run(s, g, p, o) }},
	{NameGreedy, func(s world.State, g int, p *Progress, o Options) Result { return greedyPlan().run(s, g, p, o) }},
	{NameAStar, func(s world.State, g int, p *Progress, o Options) Result { return astarPlan().run(s, g, p, o) }},
	{NameNearest, runNearestNeighbor},
}

// Names lists the registry in display order.
func Names() []string {
	out := make([]string, len(registry))
	for i, entry := range registry {
		out[i] = entry.name
	}
	return out
}

// Resolve maps a name to its canonical registry spelling, ignoring case.
func Resolve(name string) (string, bool) {
	for _, entry := range registry {
		if strings.EqualFold(entry.name, name) {
			return entry.name, true
		}
	}
	return "", false
}

// Solve runs the named strategy against initial on a gridSize x gridSize
// board. prog may be nil when nobody is watching. Strategies never fail with
// an error themselves; the only error here is an unknown algorithm name,
// reported with a closest-match suggestion.
func Solve(name string, initial world.State, gridSize int, prog *Progress, opts Options) (Result, error) {
	for _, entry := range registry {
		if strings.EqualFold(entry.name, name) {
			return entry.run(initial, gridSize, prog, opts), nil
		}
	}
	if suggestion := closestName(name); suggestion != "" {
		return Result{}, fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownAlgorithm, name, suggestion)
	}
	return Result{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// closestName finds the registry entry with the smallest edit distance to
// name, or "" when nothing is plausibly close.
func closestName(name string) string {
	upper := strings.ToUpper(name)
	best := ""
	bestDist := -1
	for _, entry := range registry {
		dist := levenshtein.ComputeDistance(upper, strings.ToUpper(entry.name))
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = entry.name
		}
	}
	if bestDist > len(name) {
		return ""
	}
	return best
}
