package planner

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func solvableProblem(t *testing.T) (*Domain, *Problem) {
	t.Helper()
	domainAST, problemAST := blocksworldAST()
	d, p, err := Load(domainAST, problemAST, DefaultLoadOptions())
	require.NoError(t, err)
	return d, p
}

func unsolvableProblem(t *testing.T) (*Domain, *Problem) {
	t.Helper()
	domainAST, problemAST := blocksworldAST()
	problemAST.States[1] = StateAST{Actions: []LiteralAST{{Action: "on", Parameters: []string{"a", "z"}}}}
	d, p, err := Load(domainAST, problemAST, DefaultLoadOptions())
	require.NoError(t, err)
	return d, p
}

func TestSolveDispatchesByMode(t *testing.T) {
	d, p := solvableProblem(t)

	for _, mode := range []SearchMode{ModeDFS, ModeBFS} {
		result, err := Solve(d, p, SolveOptions{Mode: mode, MaxSolutions: 1})
		require.NoError(t, err)
		require.Lenf(t, result.Solutions, 1, "mode %d should find a solution", mode)
		require.Equal(t, 1, result.Solutions[0].Steps)
		require.Equal(t, "move a x y", result.Solutions[0].Path[0])
	}
}

func TestSolveAStarRequiresHeuristic(t *testing.T) {
	d, p := solvableProblem(t)

	_, err := Solve(d, p, SolveOptions{Mode: ModeAStar})
	require.Error(t, err)

	var perr *PlannerError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, InvalidHeuristic, perr.Kind)
}

func TestSolveAStarWithZeroHeuristicFindsPlan(t *testing.T) {
	d, p := solvableProblem(t)
	zero := func(State) int { return 0 }

	result, err := Solve(d, p, SolveOptions{Mode: ModeAStar, Heuristic: zero})
	require.NoError(t, err)
	require.Len(t, result.Solutions, 1)
}

func TestSolveUnsolvableProblemReturnsNoSolutions(t *testing.T) {
	d, p := unsolvableProblem(t)

	for _, mode := range []SearchMode{ModeDFS, ModeBFS} {
		result, err := Solve(d, p, SolveOptions{Mode: mode, MaxSolutions: 1})
		require.NoError(t, err)
		require.Emptyf(t, result.Solutions, "mode %d should find no plan", mode)
	}
}

func TestGetChildStates(t *testing.T) {
	d, p := solvableProblem(t)
	children := GetChildStates(d, p.Initial)
	require.Len(t, children, 1)
	require.True(t, children[0].Has(Literal{Predicate: "on", Args: []string{"a", "y"}}))
}
