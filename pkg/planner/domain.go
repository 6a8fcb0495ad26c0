package planner

// Parameter is a typed parameter of an action schema: a name and an
// optional type. An empty Type means untyped, which is only a typing
// violation (§7) when the enclosing domain declares :typing.
type Parameter struct {
	Name string
	Type string
}

// ActionSchema is a parameterized action as defined in a domain: a name,
// an ordered parameter list, and schematic precondition/effect literals
// whose arguments are drawn from the parameter list (§3).
//
// Groundings is populated once by the grounder at load time and cached
// here (§3 "Lifecycle": "ground-action lists are computed lazily at load
// time and cached on the schema").
type ActionSchema struct {
	Name         string
	Parameters   []Parameter
	Precondition []Literal
	Effect       []Literal

	Groundings []GroundAction
}

// paramNames returns the set of this schema's parameter names, in the form
// SubstituteStrict takes to distinguish "unbound parameter" (§7
// UnknownBinding) from "already ground term". The grounder's instantiate
// uses plain Substitute and does not call it.
func (s *ActionSchema) paramNames() map[string]bool {
	m := make(map[string]bool, len(s.Parameters))
	for _, p := range s.Parameters {
		m[p.Name] = true
	}
	return m
}

// GroundAction is an action schema with every parameter bound to a ground
// object (§3). Two ground actions are equal iff they share a schema name
// and an identical ordered argument tuple.
type GroundAction struct {
	SchemaName   string
	Args         []string
	Precondition []Literal
	Effect       []Literal
}

// Equal implements §3's ground-action equality.
func (g GroundAction) Equal(other GroundAction) bool {
	if g.SchemaName != other.SchemaName || len(g.Args) != len(other.Args) {
		return false
	}
	for i, a := range g.Args {
		if a != other.Args[i] {
			return false
		}
	}
	return true
}

// Domain is a loaded planning domain: name, requirement flags, type
// catalogue, and action schemas. Predicates are informational only (§3);
// grounding uses schemas, parameter types, and the problem's objects.
type Domain struct {
	Name         string
	Requirements []string
	Types        []string
	Schemas      []*ActionSchema
}

// Typed reports whether :typing was declared.
func (d *Domain) Typed() bool {
	for _, r := range d.Requirements {
		if r == "typing" {
			return true
		}
	}
	return false
}

// SchemaByName returns the schema with the given name, or nil if none
// exists.
func (d *Domain) SchemaByName(name string) *ActionSchema {
	for _, s := range d.Schemas {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Problem is a loaded planning problem: name, domain reference, the
// object catalogue, the initial state, and the goal description (which may
// contain negative literals, §3).
type Problem struct {
	Name    string
	Domain  string
	Objects *ObjectCatalogue
	Initial State
	Goal    []Literal
}
