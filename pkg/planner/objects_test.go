package planner

import "testing"

func TestObjectCatalogueTyped(t *testing.T) {
	objs := []ObjectAST{
		{Parameters: []string{"scv", "probe"}, Type: "builder"},
		{Parameters: []string{"sectorA", "sectorB"}, Type: "area"},
	}
	c := NewObjectCatalogue(objs, true, nil)

	if got := c.ByType("builder"); len(got) != 2 {
		t.Fatalf("got %d builders, want 2", len(got))
	}
	if got := c.ByType("area"); len(got) != 2 {
		t.Fatalf("got %d areas, want 2", len(got))
	}
	if got := c.ByType("nonexistent"); got != nil {
		t.Fatalf("unknown type should contribute nothing, got %v", got)
	}
	if got := len(c.All()); got != 4 {
		t.Fatalf("got %d objects in All(), want 4", got)
	}
}

func TestObjectCatalogueUntypedCollapsesToOneBucket(t *testing.T) {
	objs := []ObjectAST{
		{Parameters: []string{"a"}, Type: ""},
		{Parameters: []string{"x", "y"}, Type: ""},
	}
	c := NewObjectCatalogue(objs, false, nil)

	if got := len(c.ByType("")); got != 3 {
		t.Fatalf("got %d objects in the anonymous bucket, want 3", got)
	}
	if got := len(c.All()); got != 3 {
		t.Fatalf("got %d objects in All(), want 3", got)
	}
}

func TestObjectCatalogueReportsUntypedObjectWhenTyped(t *testing.T) {
	objs := []ObjectAST{{Parameters: []string{"a"}, Type: ""}}

	var got *PlannerError
	NewObjectCatalogue(objs, true, func(e *PlannerError) { got = e })

	if got == nil {
		t.Fatal("expected a TypingViolation diagnostic")
	}
	if got.Kind != TypingViolation {
		t.Fatalf("got kind %v, want TypingViolation", got.Kind)
	}
}
