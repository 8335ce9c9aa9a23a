package search

import (
	"container/heap"

	"github.com/jask/vacuumworld/internal/world"
)

// node is one frontier entry: a discovered state plus the action path that
// reached it. Paths are copied on extension, so nodes share nothing mutable.
type node struct {
	state world.State
	path  []world.Action
	cost  int     // accumulated unit step cost (g)
	prio  float64 // ordering key for priority frontiers
	seq   int     // insertion sequence, breaks heap ties deterministically
	index int     // position in the heap, maintained by heap.Interface
}

// extend returns a child node reached from n by action.
func (n *node) extend(action world.Action, state world.State) *node {
	path := make([]world.Action, len(n.path)+1)
	copy(path, n.path)
	path[len(n.path)] = action
	return &node{state: state, path: path, cost: n.cost + 1}
}

// frontier is the set of discovered-but-not-yet-expanded nodes. The three
// implementations differ only in pop order.
type frontier interface {
	push(*node)
	pop() *node
	len() int
}

// fifoFrontier pops oldest-first (BFS).
type fifoFrontier struct {
	items []*node
	head  int
}

func (f *fifoFrontier) push(n *node) { f.items = append(f.items, n) }

func (f *fifoFrontier) pop() *node {
	n := f.items[f.head]
	f.items[f.head] = nil
	f.head++
	if f.head > 1024 && f.head*2 > len(f.items) {
		f.items = append([]*node(nil), f.items[f.head:]...)
		f.head = 0
	}
	return n
}

func (f *fifoFrontier) len() int { return len(f.items) - f.head }

// lifoFrontier pops newest-first (DFS).
type lifoFrontier struct {
	items []*node
}

func (f *lifoFrontier) push(n *node) { f.items = append(f.items, n) }

func (f *lifoFrontier) pop() *node {
	n := f.items[len(f.items)-1]
	f.items[len(f.items)-1] = nil
	f.items = f.items[:len(f.items)-1]
	return n
}

func (f *lifoFrontier) len() int { return len(f.items) }

// heapFrontier pops the lowest prio first, with insertion order as the
// tiebreak so identical inputs always expand in the same order.
type heapFrontier struct {
	h   nodeHeap
	seq int
}

func newHeapFrontier() *heapFrontier {
	f := &heapFrontier{}
	heap.Init(&f.h)
	return f
}

func (f *heapFrontier) push(n *node) {
	f.seq++
	n.seq = f.seq
	heap.Push(&f.h, n)
}

func (f *heapFrontier) pop() *node {
	return heap.Pop(&f.h).(*node)
}

func (f *heapFrontier) len() int { return f.h.Len() }

type nodeHeap []*node

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].prio != h[j].prio {
		return h[i].prio < h[j].prio
	}
	return h[i].seq < h[j].seq
}

func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *nodeHeap) Push(x any) {
	n := x.(*node)
	n.index = len(*h)
	*h = append(*h, n)
}

func (h *nodeHeap) Pop() any {
	old := *h
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	*h = old[:last]
	return n
}
