package planner

import "testing"

// twoStepDomain is a tiny domain where exactly one action fires, then a
// second unlocks, giving a deterministic two-step plan to reach the goal.
// Shared by the DFS, BFS, A* and SolveGraph tests.
func twoStepDomain() (*Domain, *Problem) {
	unlock := &ActionSchema{
		Name:         "unlock",
		Precondition: []Literal{{Predicate: "locked"}},
		Effect:       []Literal{{Predicate: "locked", Negative: true}, {Predicate: "open"}},
	}
	enter := &ActionSchema{
		Name:         "enter",
		Precondition: []Literal{{Predicate: "open"}},
		Effect:       []Literal{{Predicate: "inside"}},
	}
	d := &Domain{Schemas: []*ActionSchema{unlock, enter}}
	Ground(d, &ObjectCatalogue{}, NewState([]Literal{{Predicate: "locked"}}), true, nil)

	p := &Problem{
		Initial: NewState([]Literal{{Predicate: "locked"}}),
		Goal:    []Literal{{Predicate: "inside"}},
	}
	return d, p
}

func TestSolveDFSFindsPlan(t *testing.T) {
	d, p := twoStepDomain()
	result := solveDFS(d, p, 1)

	if len(result.Solutions) != 1 {
		t.Fatalf("got %d solutions, want 1", len(result.Solutions))
	}
	sol := result.Solutions[0]
	if sol.Steps != 2 {
		t.Fatalf("got %d steps, want 2", sol.Steps)
	}
	if sol.Path[0] != "unlock" || sol.Path[1] != "enter" {
		t.Fatalf("unexpected path: %v", sol.Path)
	}
}

func TestSolveDFSStopsAtMaxSolutions(t *testing.T) {
	// Two independent one-step routes both satisfy the goal (each grounding
	// of "arrive" adds a shared "moved" literal alongside a distinct "at"
	// literal), so two distinct one-step plans exist from the initial state.
	arrive := &ActionSchema{
		Name:       "arrive",
		Parameters: []Parameter{{Name: "?loc"}},
		Effect: []Literal{
			{Predicate: "at", Args: []string{"?loc"}},
			{Predicate: "moved"},
		},
	}
	d := &Domain{Schemas: []*ActionSchema{arrive}}
	Ground(d, &ObjectCatalogue{}, NewState([]Literal{
		{Predicate: "place", Args: []string{"x"}},
		{Predicate: "place", Args: []string{"y"}},
	}), false, nil)

	p := &Problem{
		Initial: NewState([]Literal{{Predicate: "place", Args: []string{"x"}}, {Predicate: "place", Args: []string{"y"}}}),
		Goal:    []Literal{{Predicate: "moved"}},
	}

	result := solveDFS(d, p, 1)
	if len(result.Solutions) != 1 {
		t.Fatalf("got %d solutions, want exactly maxSolutions=1 even though two routes exist", len(result.Solutions))
	}
}

func TestSolveDFSNoPlanReturnsEmptySolutions(t *testing.T) {
	d, p := twoStepDomain()
	p.Goal = []Literal{{Predicate: "nonexistent"}}

	result := solveDFS(d, p, 1)
	if len(result.Solutions) != 0 {
		t.Fatalf("got %d solutions, want 0", len(result.Solutions))
	}
}

// solvableProblemForDFS builds the blocksworld S1 fixture through the AST
// loader, reusing blocksworldAST from load_test.go.
func solvableProblemForDFS() (*Domain, *Problem) {
	domainAST, problemAST := blocksworldAST()
	d, p, err := Load(domainAST, problemAST, DefaultLoadOptions())
	if err != nil {
		panic(err)
	}
	return d, p
}
