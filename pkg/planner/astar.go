package planner

import "container/heap"

// aStarItem is one entry in A*'s priority frontier: f = g + h, with
// insertion sequence number as a stable tie-break (§4.7: "Tie-break is
// stable insertion order").
type aStarItem struct {
	nodeIdx int
	f       int
	seq     int
}

type aStarFrontier []aStarItem

func (h aStarFrontier) Len() int { return len(h) }
func (h aStarFrontier) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}
func (h aStarFrontier) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *aStarFrontier) Push(x any)   { *h = append(*h, x.(aStarItem)) }
func (h *aStarFrontier) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// solveAStar implements §4.7's A* strategy: a priority frontier ordered by
// f = g + h, where g is the node's depth (parent's g + 1) and h is the
// caller-supplied heuristic evaluated on the state. Pops the minimum,
// marks it visited, tests the goal, expands it, and pushes every child not
// already visited. Returns the first solution found.
//
// A state may be pushed more than once, at different g values, via
// different predecessors; the pop-time visited check dedups, and under a
// consistent heuristic the lower-g copy is guaranteed to pop first, so the
// first pop of a given state is always along an optimal path to it. Unlike
// BFS, A*'s frontier is not popped in g order for the whole search (only in
// f order), so unlike solveBFS, solveAStar cannot gate on "ever pushed"
// without risking a node's g getting locked to a non-optimal predecessor.
//
// Optimality requires an admissible, consistent heuristic; this function
// does not enforce admissibility (§4.7, §8 invariants 6-7) — that
// obligation is on the caller.
func solveAStar(d *Domain, p *Problem, h Heuristic) SolveResult {
	arena := []searchNode{{state: p.Initial, parent: -1, depth: 0, g: 0}}
	visited := make(map[string]bool)
	stats := Stats{}

	frontier := &aStarFrontier{}
	heap.Init(frontier)
	seq := 0
	heap.Push(frontier, aStarItem{nodeIdx: 0, f: h(p.Initial), seq: seq})
	seq++

	for frontier.Len() > 0 {
		item := heap.Pop(frontier).(aStarItem)
		idx := item.nodeIdx
		node := arena[idx]
		key := node.state.String()
		if visited[key] {
			continue
		}
		visited[key] = true
		stats.NodesVisited++
		stats.NodesExpanded++

		if IsGoal(node.state, p.Goal) {
			return SolveResult{
				Solutions: []Solution{reconstructPlan(arena, idx)},
				Stats:     stats,
			}
		}

		for _, ga := range ApplicableActions(d, node.state) {
			child := ApplyEffect(ga, node.state)
			ckey := child.String()
			if visited[ckey] {
				continue
			}
			g := node.g + 1
			arena = append(arena, searchNode{
				state: child, action: ga, hasAction: true,
				parent: idx, depth: node.depth + 1, g: g,
			})
			heap.Push(frontier, aStarItem{nodeIdx: len(arena) - 1, f: g + h(child), seq: seq})
			seq++
		}
	}

	return SolveResult{Stats: stats}
}
