package planner

// solveDFS implements §4.7's DFS strategy: recursive, expanding children in
// the deterministic order ApplicableActions returns. The initial state is
// marked visited at entry; each child is marked visited before the
// recursive call into it. Up to maxSolutions solutions are collected; the
// search stops expanding as soon as that many have been found. Not
// guaranteed shortest. Termination on a finite reachable state space is
// guaranteed by the visited set (§4.7, §8 invariant 4).
func solveDFS(d *Domain, p *Problem, maxSolutions int) SolveResult {
	arena := []searchNode{{state: p.Initial, parent: -1, depth: 0}}
	visited := map[string]bool{p.Initial.String(): true}
	stats := Stats{NodesVisited: 1}
	var solutions []Solution

	var rec func(idx int)
	rec = func(idx int) {
		if len(solutions) >= maxSolutions {
			return
		}
		stats.NodesExpanded++
		node := arena[idx]

		if IsGoal(node.state, p.Goal) {
			solutions = append(solutions, reconstructPlan(arena, idx))
			return
		}

		for _, ga := range ApplicableActions(d, node.state) {
			if len(solutions) >= maxSolutions {
				return
			}
			child := ApplyEffect(ga, node.state)
			key := child.String()
			if visited[key] {
				continue
			}
			visited[key] = true
			stats.NodesVisited++
			arena = append(arena, searchNode{
				state: child, action: ga, hasAction: true,
				parent: idx, depth: node.depth + 1,
			})
			rec(len(arena) - 1)
		}
	}
	rec(0)

	return SolveResult{Solutions: solutions, Stats: stats}
}
