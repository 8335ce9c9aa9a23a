// Package search plans action sequences that leave the vacuum world clean.
//
// Six strategies share one closed registry: BFS, DFS, UCS, Greedy and A*
// run a common frontier/explored-set loop differing only in ordering and
// duplicate policy, and Nearest Neighbor is a structurally different greedy
// walker used as a fast fallback. Every run is bounded by a resource
// governor (wall clock and node count) and can feed a live Progress handle
// read concurrently by a UI. Searches are single-threaded and share no
// state between invocations; the Progress handle is the only concurrency
// boundary.
package search
