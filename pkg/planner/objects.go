package planner

// ObjectCatalogue indexes a problem's objects by declared type. Under
// untyped mode the catalogue holds a single anonymous bucket (key "") that
// holds every object name — see §2 step 1 and §4.1's untyped grounding mode.
//
// Objects, once loaded, are immutable (§3 "Lifecycle").
type ObjectCatalogue struct {
	byType map[string][]string
	all    []string // flat, deduplicated list of every declared object
}

// NewObjectCatalogue builds a catalogue from the problem AST's object
// declarations. typed controls whether objects are indexed by their
// declared type (and an untyped object reported via sink) or collapsed
// into the single anonymous bucket.
func NewObjectCatalogue(objects []ObjectAST, typed bool, sink ErrorSink) *ObjectCatalogue {
	c := &ObjectCatalogue{byType: make(map[string][]string)}
	seen := make(map[string]bool)
	for _, decl := range objects {
		t := decl.Type
		if typed && t == "" {
			report(sink, TypingViolation, "object declared without a type while :typing is requested", nil)
		}
		key := t
		if !typed {
			key = ""
		}
		for _, name := range decl.Parameters {
			c.byType[key] = append(c.byType[key], name)
			if !seen[name] {
				seen[name] = true
				c.all = append(c.all, name)
			}
		}
	}
	return c
}

// ByType returns the object names declared of the given type, or nil if
// none are declared of that type (including the case of an unknown type,
// per §4.1: "objects declared of an unknown type contribute nothing").
func (c *ObjectCatalogue) ByType(t string) []string {
	return c.byType[t]
}

// All returns the flat, deduplicated set of every object name in the
// catalogue. Untyped-mode grounding does not use it: it draws its universe
// from the initial state's literals instead (see Ground).
func (c *ObjectCatalogue) All() []string {
	return c.all
}
