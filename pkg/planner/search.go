package planner

// Solution is one plan found by a search strategy: the number of steps and
// the whitespace-delimited token sequence for each step, in execution
// order from initial to goal (§6's plan output format).
type Solution struct {
	Steps int
	Path  []string
}

// Stats carries simple bookkeeping about a search run — nodes expanded
// (states popped off the frontier and had their children generated) and
// nodes visited (states ever added to the visited set). This is not part
// of spec.md's §6 surface; it is a SPEC_FULL addition returned in every
// SolveResult, and carries no effect on search behaviour. Neither the CLI
// nor the batch runner prints it.
type Stats struct {
	NodesExpanded int
	NodesVisited  int
}

// SolveResult is the outcome of a search: zero or more solutions (empty
// when no plan exists) plus Stats for the run that produced them.
type SolveResult struct {
	Solutions []Solution
	Stats     Stats
}

// searchNode is one entry in a search tree's node arena, addressed by
// index rather than by pointer: child-to-parent references are indices
// into the same arena, never cyclic object graphs, per spec.md §9's
// design note ("implement as an arena of search nodes addressed by index").
type searchNode struct {
	state     State
	action    GroundAction
	hasAction bool // false only for the root node, which has no incoming action
	parent    int  // index into the arena, or -1 for the root
	depth     int
	g         int // path cost so far, used by A*
}

// reconstructPlan walks parent pointers from the node at index leaf back to
// the root and reverses the result, per §4.7's "plan can be reconstructed
// by walking parent pointers from goal to root and reversing".
func reconstructPlan(arena []searchNode, leaf int) Solution {
	var steps []string
	for i := leaf; arena[i].hasAction; i = arena[i].parent {
		steps = append(steps, actionToString(arena[i].action))
	}
	for l, r := 0, len(steps)-1; l < r; l, r = l+1, r-1 {
		steps[l], steps[r] = steps[r], steps[l]
	}
	return Solution{Steps: len(steps), Path: steps}
}

// GetChildStates returns the successor states reachable from s in one
// ground-action step, per §6's getChildStates entry point. It is a thin
// composition of ApplicableActions and ApplyEffect and does no search of
// its own.
func GetChildStates(d *Domain, s State) []State {
	actions := ApplicableActions(d, s)
	out := make([]State, len(actions))
	for i, a := range actions {
		out[i] = ApplyEffect(a, s)
	}
	return out
}

// ApplyAction is the exported §6 name for effect application (§4.4);
// ApplyEffect is the name used internally by this package's other files.
func ApplyAction(a GroundAction, s State) State { return ApplyEffect(a, s) }

// Heuristic estimates the remaining cost from a state to the goal for A*
// (§4.7). It is admissible if it never overestimates true remaining cost;
// the engine does not verify admissibility, only that heuristic is
// non-nil before search begins (§7 InvalidHeuristic).
type Heuristic func(State) int

// SearchMode selects which of the three strategies Solve dispatches to.
type SearchMode int

const (
	ModeDFS SearchMode = iota
	ModeBFS
	ModeAStar
)

// SolveOptions configures Solve's dispatch (§6's solve entry point).
type SolveOptions struct {
	Mode         SearchMode
	MaxSolutions int       // must be >= 1; defaults to 1 if <= 0
	Heuristic    Heuristic // required (non-nil) for ModeAStar only
	Sink         ErrorSink
}

// Solve dispatches to DFS, BFS, or A* per opts.Mode (§4.7, §6).
func Solve(d *Domain, p *Problem, opts SolveOptions) (SolveResult, error) {
	maxSolutions := opts.MaxSolutions
	if maxSolutions <= 0 {
		maxSolutions = 1
	}

	switch opts.Mode {
	case ModeDFS:
		return solveDFS(d, p, maxSolutions), nil
	case ModeBFS:
		return solveBFS(d, p, maxSolutions), nil
	case ModeAStar:
		if opts.Heuristic == nil {
			err := NewPlannerError(InvalidHeuristic, "A* requires a non-nil heuristic", nil)
			report(opts.Sink, InvalidHeuristic, err.Message, nil)
			return SolveResult{}, err
		}
		return solveAStar(d, p, opts.Heuristic), nil
	default:
		err := NewPlannerError(InvalidHeuristic, "unknown search mode", nil)
		return SolveResult{}, err
	}
}
