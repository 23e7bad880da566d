package systems

import (
	"container/heap"

	"github.com/pthm-cable/pathsnake/components"
)

// AStarPlanner finds shortest 4-directional routes on a Grid.
// It reuses its open heap and closed set between searches, so a planner
// must not be shared across goroutines.
type AStarPlanner struct {
	grid Grid

	// Reusable data structures (cleared between searches)
	openHeap  *nodeHeap
	closedSet map[components.Cell]struct{}
	seq       uint64

	// Stats from the most recent search
	lastExpanded int
	lastPushed   int
}

// searchNode is a node in the A* search. Parents form the route back to
// the start.
type searchNode struct {
	cell   components.Cell
	g      int // steps from start
	h      int // Manhattan distance to goal
	parent *searchNode
	seq    uint64 // insertion order, last tie-break
	index  int    // heap index
}

func (n *searchNode) f() int { return n.g + n.h }

// nodeHeap implements heap.Interface for the A* open set.
// Duplicate entries for a cell are allowed; stale ones are dropped on pop.
type nodeHeap []*searchNode

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	fi, fj := h[i].f(), h[j].f()
	if fi != fj {
		return fi < fj
	}
	if h[i].h != h[j].h {
		return h[i].h < h[j].h
	}
	return h[i].seq < h[j].seq
}
func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *nodeHeap) Push(x any) {
	n := x.(*searchNode)
	n.index = len(*h)
	*h = append(*h, n)
}

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*h = old[0 : n-1]
	return node
}

// NewAStarPlanner creates a planner for the given grid.
func NewAStarPlanner(grid Grid) *AStarPlanner {
	return &AStarPlanner{
		grid:      grid,
		openHeap:  &nodeHeap{},
		closedSet: make(map[components.Cell]struct{}, grid.Area()),
	}
}

// Grid returns the grid the planner searches.
func (a *AStarPlanner) Grid() Grid {
	return a.grid
}

// FindPath computes a shortest route from start to goal that avoids blockers.
// The returned path excludes start and ends at goal. ok is false when the
// goal cannot be reached; an empty path with ok=true means start == goal.
// The start cell itself is never checked against blockers.
func (a *AStarPlanner) FindPath(start, goal components.Cell, blockers CellSet) (path []components.Cell, ok bool) {
	a.lastExpanded = 0
	a.lastPushed = 0

	if start == goal {
		return []components.Cell{}, true
	}
	if a.grid.IsBlocked(goal, blockers) {
		return nil, false
	}

	// Clear reusable data structures
	*a.openHeap = (*a.openHeap)[:0]
	clear(a.closedSet)
	a.seq = 0

	a.push(&searchNode{cell: start, g: 0, h: components.Manhattan(start, goal)})

	for a.openHeap.Len() > 0 {
		current := heap.Pop(a.openHeap).(*searchNode)

		// First pop of a cell is authoritative
		if _, closed := a.closedSet[current.cell]; closed {
			continue
		}

		if current.cell == goal {
			return reconstructPath(current), true
		}

		a.closedSet[current.cell] = struct{}{}
		a.lastExpanded++

		for _, d := range components.Directions {
			next := current.cell.Add(d)

			if a.grid.IsBlocked(next, blockers) {
				continue
			}
			if _, closed := a.closedSet[next]; closed {
				continue
			}

			a.push(&searchNode{
				cell:   next,
				g:      current.g + 1,
				h:      components.Manhattan(next, goal),
				parent: current,
			})
		}
	}

	// No path found
	return nil, false
}

func (a *AStarPlanner) push(n *searchNode) {
	n.seq = a.seq
	a.seq++
	a.lastPushed++
	heap.Push(a.openHeap, n)
}

// LastSearchStats returns how many cells the previous search expanded and
// how many nodes it pushed.
func (a *AStarPlanner) LastSearchStats() (expanded, pushed int) {
	return a.lastExpanded, a.lastPushed
}

// reconstructPath walks parent links back to the start, then reverses.
// The start cell is dropped.
func reconstructPath(goal *searchNode) []components.Cell {
	path := make([]components.Cell, 0, goal.g)
	for n := goal; n.parent != nil; n = n.parent {
		path = append(path, n.cell)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
