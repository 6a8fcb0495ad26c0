package planner

// solveBFS implements §4.7's BFS strategy: an iterative FIFO frontier that
// pops the head, marks it visited on pop, tests the goal, expands it, and
// pushes only children whose state has never been pushed before (a
// stricter gate than "not yet visited", safe here because a FIFO frontier
// first pushes each state at its smallest depth). This guarantees the minimum
// action-count plan when a solution exists (§8 invariant 5). Returns up to
// maxSolutions solutions in order of discovery.
func solveBFS(d *Domain, p *Problem, maxSolutions int) SolveResult {
	arena := []searchNode{{state: p.Initial, parent: -1, depth: 0}}
	visited := make(map[string]bool)
	pushed := map[string]bool{p.Initial.String(): true}
	stats := Stats{}
	var solutions []Solution

	queue := []int{0}
	for len(queue) > 0 && len(solutions) < maxSolutions {
		idx := queue[0]
		queue = queue[1:]

		node := arena[idx]
		key := node.state.String()
		if visited[key] {
			continue
		}
		visited[key] = true
		stats.NodesVisited++
		stats.NodesExpanded++

		if IsGoal(node.state, p.Goal) {
			solutions = append(solutions, reconstructPlan(arena, idx))
			continue
		}

		for _, ga := range ApplicableActions(d, node.state) {
			child := ApplyEffect(ga, node.state)
			ckey := child.String()
			if pushed[ckey] {
				continue
			}
			pushed[ckey] = true
			arena = append(arena, searchNode{
				state: child, action: ga, hasAction: true,
				parent: idx, depth: node.depth + 1,
			})
			queue = append(queue, len(arena)-1)
		}
	}

	return SolveResult{Solutions: solutions, Stats: stats}
}
