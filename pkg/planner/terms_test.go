package planner

import "testing"

func TestLiteralEqual(t *testing.T) {
	a := Literal{Predicate: "on", Args: []string{"a", "b"}}
	b := Literal{Predicate: "on", Args: []string{"a", "b"}}
	c := Literal{Predicate: "on", Args: []string{"b", "a"}}
	d := Literal{Predicate: "on", Args: []string{"a", "b"}, Negative: true}

	if !a.Equal(b) {
		t.Fatal("identical literals should be equal")
	}
	if a.Equal(c) {
		t.Fatal("argument order matters")
	}
	if a.Equal(d) {
		t.Fatal("polarity matters")
	}
}

func TestLiteralPositiveNegated(t *testing.T) {
	pos := Literal{Predicate: "clear", Args: []string{"a"}}
	neg := pos.Negated()

	if !neg.Negative {
		t.Fatal("Negated should flip polarity")
	}
	if !neg.Positive().Equal(pos) {
		t.Fatal("Positive should strip polarity back to the original atom")
	}
	if pos.Positive().Negative {
		t.Fatal("Positive on an already-positive literal is a no-op")
	}
}

func TestLiteralSubstitute(t *testing.T) {
	l := Literal{Predicate: "on", Args: []string{"?x", "?y"}}
	bound := l.Substitute(map[string]string{"?x": "a", "?y": "b"})

	want := Literal{Predicate: "on", Args: []string{"a", "b"}}
	if !bound.Equal(want) {
		t.Fatalf("got %v, want %v", bound, want)
	}

	// An argument absent from binding passes through unchanged.
	partial := l.Substitute(map[string]string{"?x": "a"})
	if partial.Args[1] != "?y" {
		t.Fatalf("unbound argument should pass through, got %q", partial.Args[1])
	}
}

func TestLiteralSubstituteStrictReportsUnknownBinding(t *testing.T) {
	l := Literal{Predicate: "on", Args: []string{"?x", "?y"}}
	paramNames := map[string]bool{"?x": true, "?y": true}

	var got *PlannerError
	sink := func(e *PlannerError) { got = e }

	l.SubstituteStrict(map[string]string{"?x": "a"}, paramNames, sink)

	if got == nil {
		t.Fatal("expected an UnknownBinding diagnostic for ?y")
	}
	if got.Kind != UnknownBinding {
		t.Fatalf("got kind %v, want UnknownBinding", got.Kind)
	}
}

func TestLiteralString(t *testing.T) {
	l := Literal{Predicate: "on", Args: []string{"a", "b"}}
	if got, want := l.String(), "(on a b)"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	zero := Literal{Predicate: "clear", Args: nil}
	if got, want := zero.String(), "(clear)"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestActionToString(t *testing.T) {
	a := GroundAction{SchemaName: "move", Args: []string{"a", "x", "y"}}
	if got, want := ActionToString(a), "move a x y"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
