package planner

import "testing"

func moveSchema() *ActionSchema {
	return &ActionSchema{
		Name: "move",
		Parameters: []Parameter{
			{Name: "?b"}, {Name: "?t1"}, {Name: "?t2"},
		},
		Precondition: []Literal{{Predicate: "on", Args: []string{"?b", "?t1"}}},
		Effect:       []Literal{{Predicate: "on", Args: []string{"?b", "?t2"}}},
	}
}

func TestGroundUntypedFastModeIsPermutationsWithoutRepetition(t *testing.T) {
	schema := moveSchema()
	d := &Domain{Schemas: []*ActionSchema{schema}}
	initial := NewState([]Literal{
		{Predicate: "block", Args: []string{"a"}},
		{Predicate: "table", Args: []string{"x"}},
		{Predicate: "table", Args: []string{"y"}},
	})

	Ground(d, &ObjectCatalogue{}, initial, true, nil)

	// 3 objects, 3 positions, no repeats: 3*2*1 = 6 tuples.
	if got := len(schema.Groundings); got != 6 {
		t.Fatalf("got %d groundings, want 6", got)
	}
	for _, ga := range schema.Groundings {
		if ga.Args[0] == ga.Args[1] || ga.Args[1] == ga.Args[2] || ga.Args[0] == ga.Args[2] {
			t.Fatalf("fast mode must not repeat an argument across positions: %v", ga.Args)
		}
	}
}

func TestGroundUntypedFullCartesianAllowsRepeats(t *testing.T) {
	schema := moveSchema()
	d := &Domain{Schemas: []*ActionSchema{schema}}
	initial := NewState([]Literal{
		{Predicate: "block", Args: []string{"a"}},
		{Predicate: "table", Args: []string{"x"}},
		{Predicate: "table", Args: []string{"y"}},
	})

	Ground(d, &ObjectCatalogue{}, initial, false, nil)

	// 3 objects, 3 positions, full Cartesian: 3^3 = 27 tuples.
	if got := len(schema.Groundings); got != 27 {
		t.Fatalf("got %d groundings, want 27", got)
	}
}

// TestGroundTypedFastVsFullMatchesWorkedArithmetic exercises the typed
// scenario directly: 2 builder-typed objects, 4 area-typed objects, schema
// moveTo(?w:builder ?from:area ?to:area). Full mode takes the Cartesian
// product per position (2*4*4=32); fast mode takes permutations without
// repetition within each type group (2 * (4*3)=24), since only the two
// same-typed area positions lose their repeated combinations.
func TestGroundTypedFastVsFullMatchesWorkedArithmetic(t *testing.T) {
	schema := &ActionSchema{
		Name: "moveTo",
		Parameters: []Parameter{
			{Name: "?w", Type: "builder"},
			{Name: "?from", Type: "area"},
			{Name: "?to", Type: "area"},
		},
		Precondition: []Literal{{Predicate: "at", Args: []string{"?w", "?from"}}},
		Effect:       []Literal{{Predicate: "at", Args: []string{"?w", "?to"}}},
	}
	d := &Domain{Requirements: []string{"typing"}, Schemas: []*ActionSchema{schema}}
	objects := NewObjectCatalogue([]ObjectAST{
		{Parameters: []string{"scv", "probe"}, Type: "builder"},
		{Parameters: []string{"sectorA", "sectorB", "mineralFieldA", "mineralFieldB"}, Type: "area"},
	}, true, nil)

	Ground(d, objects, State{}, false, nil)
	if got := len(schema.Groundings); got != 32 {
		t.Fatalf("full Cartesian mode: got %d groundings, want 32", got)
	}

	Ground(d, objects, State{}, true, nil)
	if got := len(schema.Groundings); got != 24 {
		t.Fatalf("fast mode: got %d groundings, want 24", got)
	}
	for _, ga := range schema.Groundings {
		if ga.Args[1] == ga.Args[2] {
			t.Fatalf("fast mode must not repeat an area across ?from/?to: %v", ga.Args)
		}
	}
}

func TestGroundTypedUntypedParameterReportsTypingViolation(t *testing.T) {
	schema := &ActionSchema{
		Name:       "moveTo",
		Parameters: []Parameter{{Name: "?w", Type: "builder"}, {Name: "?to"}},
	}
	d := &Domain{Requirements: []string{"typing"}, Schemas: []*ActionSchema{schema}}
	objects := NewObjectCatalogue(nil, true, nil)

	var got *PlannerError
	Ground(d, objects, State{}, true, func(e *PlannerError) { got = e })

	if got == nil || got.Kind != TypingViolation {
		t.Fatalf("expected a TypingViolation diagnostic, got %+v", got)
	}
	if schema.Groundings != nil {
		t.Fatal("a schema with an untyped parameter under :typing should ground to nothing")
	}
}

func TestGroundTypedUnknownTypeContributesNothing(t *testing.T) {
	schema := &ActionSchema{
		Name:       "fly",
		Parameters: []Parameter{{Name: "?x", Type: "spaceship"}},
	}
	d := &Domain{Requirements: []string{"typing"}, Schemas: []*ActionSchema{schema}}
	objects := NewObjectCatalogue([]ObjectAST{{Parameters: []string{"a"}, Type: "builder"}}, true, nil)

	Ground(d, objects, State{}, true, nil)

	if len(schema.Groundings) != 0 {
		t.Fatalf("an unknown type should ground to nothing, got %d groundings", len(schema.Groundings))
	}
}
