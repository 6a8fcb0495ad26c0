package planner

// Ground populates the cached Groundings slice on every schema of d,
// enumerating the ground parameter tuples described in §4.1.
//
// Typed mode (d.Typed()): for each parameter position the candidate domain
// is the set of objects declared of that parameter's type (via objects).
// fastMode false (typed Cartesian mode) takes the full Cartesian product of
// the per-position candidate sets; fastMode true restricts this per type —
// among the positions sharing one type, bindings are the permutations
// without repetition of that type's candidates, combined via Cartesian
// product across distinct types (§8 scenario S4: a 2-builder/4-area typed
// schema yields 2×4×4=32 tuples in Cartesian mode and 2×4×3=24 in fast
// mode, since only the two same-typed area positions lose their repeated
// combinations). A schema with any untyped parameter contributes no ground
// actions and reports a TypingViolation. Objects declared of an unknown
// type contribute nothing (objects.ByType already returns nil for an
// unknown type, so that position's candidate set — and hence the whole
// schema — comes out empty, which is the specified behaviour without
// special-casing it).
//
// Untyped mode: the candidate universe U is the flat set of object names
// appearing anywhere in the problem's initial state (§4.1) — not the
// problem's declared objects, which untyped mode ignores entirely.
// fastMode true (the default) yields the size-n permutations of U without
// repetition (blocks-world style: no parameter position reuses another
// position's binding); false yields the full n-ary Cartesian product,
// allowing repeated arguments.
//
// Ordering of the output is unspecified but deterministic for a given
// input, as required by §4.1.
func Ground(d *Domain, objects *ObjectCatalogue, initial State, fastMode bool, sink ErrorSink) {
	typed := d.Typed()
	universe := literalUniverse(initial)

	for _, schema := range d.Schemas {
		if typed {
			groundTyped(schema, objects, fastMode, sink)
		} else {
			groundUntyped(schema, universe, fastMode)
		}
	}
}

// typeGroup is the set of a schema's parameter positions sharing one type,
// plus the argument tuples (one value per position, in position order)
// that are valid bindings for that group alone.
type typeGroup struct {
	positions []int
	tuples    [][]string
}

func groundTyped(schema *ActionSchema, objects *ObjectCatalogue, fastMode bool, sink ErrorSink) {
	n := len(schema.Parameters)
	if n == 0 {
		schema.Groundings = []GroundAction{instantiate(schema, nil)}
		return
	}

	positionsByType := make(map[string][]int)
	var typeOrder []string
	for i, p := range schema.Parameters {
		if p.Type == "" {
			report(sink, TypingViolation, "schema "+schema.Name+" has untyped parameter "+p.Name+" but :typing is requested", nil)
			schema.Groundings = nil
			return
		}
		if _, ok := positionsByType[p.Type]; !ok {
			typeOrder = append(typeOrder, p.Type)
		}
		positionsByType[p.Type] = append(positionsByType[p.Type], i)
	}

	groups := make([]typeGroup, len(typeOrder))
	for gi, t := range typeOrder {
		positions := positionsByType[t]
		candidates := objects.ByType(t)

		var tuples [][]string
		if fastMode {
			tuples = permutationsWithoutRepetition(candidates, len(positions))
		} else {
			sets := make([][]string, len(positions))
			for i := range sets {
				sets[i] = candidates
			}
			tuples = cartesianProduct(sets)
		}
		groups[gi] = typeGroup{positions: positions, tuples: tuples}
	}

	schema.Groundings = instantiateAll(schema, combineTypeGroups(groups, n))
}

// combineTypeGroups takes each type group's argument tuples (sized to that
// group's own parameter positions) and combines them across groups via
// Cartesian product, scattering each group's chosen values back into their
// original schema parameter positions.
func combineTypeGroups(groups []typeGroup, n int) [][]string {
	combos := [][]string{make([]string, n)}
	for _, g := range groups {
		if len(g.tuples) == 0 {
			return nil
		}
		var next [][]string
		for _, prefix := range combos {
			for _, tuple := range g.tuples {
				row := append([]string(nil), prefix...)
				for i, pos := range g.positions {
					row[pos] = tuple[i]
				}
				next = append(next, row)
			}
		}
		combos = next
	}
	return combos
}

func groundUntyped(schema *ActionSchema, universe []string, fastMode bool) {
	n := len(schema.Parameters)
	if n == 0 {
		schema.Groundings = []GroundAction{instantiate(schema, nil)}
		return
	}

	var tuples [][]string
	if fastMode {
		tuples = permutationsWithoutRepetition(universe, n)
	} else {
		sets := make([][]string, n)
		for i := range sets {
			sets[i] = universe
		}
		tuples = cartesianProduct(sets)
	}
	schema.Groundings = instantiateAll(schema, tuples)
}

// instantiateAll instantiates one ground action per argument tuple,
// deduplicating by ordered argument tuple per §4.1.
func instantiateAll(schema *ActionSchema, tuples [][]string) []GroundAction {
	seen := make(map[string]bool, len(tuples))
	out := make([]GroundAction, 0, len(tuples))
	for _, tuple := range tuples {
		key := schema.Name
		for _, a := range tuple {
			key += "\x00" + a
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, instantiate(schema, tuple))
	}
	return out
}

// instantiate builds the ground action for schema bound to args (positional,
// matching schema.Parameters order), substituting the schema's precondition
// and effect literals with the resulting binding map.
func instantiate(schema *ActionSchema, args []string) GroundAction {
	binding := make(map[string]string, len(args))
	for i, p := range schema.Parameters {
		if i < len(args) {
			binding[p.Name] = args[i]
		}
	}

	precond := make([]Literal, len(schema.Precondition))
	for i, l := range schema.Precondition {
		precond[i] = l.Substitute(binding)
	}
	effect := make([]Literal, len(schema.Effect))
	for i, l := range schema.Effect {
		effect[i] = l.Substitute(binding)
	}

	return GroundAction{
		SchemaName:   schema.Name,
		Args:         append([]string(nil), args...),
		Precondition: precond,
		Effect:       effect,
	}
}

// literalUniverse collects the distinct object names appearing anywhere in
// a state's literals, for untyped-mode grounding (§4.1).
func literalUniverse(s State) []string {
	seen := make(map[string]bool)
	var out []string
	for _, l := range s.Literals() {
		for _, a := range l.Args {
			if !seen[a] {
				seen[a] = true
				out = append(out, a)
			}
		}
	}
	return out
}

// cartesianProduct returns every tuple formed by choosing one element from
// each set in sets, in order. If any set is empty the result is empty.
func cartesianProduct(sets [][]string) [][]string {
	if len(sets) == 0 {
		return [][]string{{}}
	}
	for _, s := range sets {
		if len(s) == 0 {
			return nil
		}
	}

	result := [][]string{{}}
	for _, set := range sets {
		var next [][]string
		for _, prefix := range result {
			for _, v := range set {
				tuple := append(append([]string(nil), prefix...), v)
				next = append(next, tuple)
			}
		}
		result = next
	}
	return result
}

// permutationsWithoutRepetition returns every ordered selection of n
// distinct elements from u (the size-n permutations without repetition,
// §4.1's blocks-world fast mode).
func permutationsWithoutRepetition(u []string, n int) [][]string {
	if n == 0 {
		return [][]string{{}}
	}
	if n > len(u) {
		return nil
	}

	var out [][]string
	used := make([]bool, len(u))
	cur := make([]string, 0, n)

	var rec func()
	rec = func() {
		if len(cur) == n {
			out = append(out, append([]string(nil), cur...))
			return
		}
		for i, v := range u {
			if used[i] {
				continue
			}
			used[i] = true
			cur = append(cur, v)
			rec()
			cur = cur[:len(cur)-1]
			used[i] = false
		}
	}
	rec()
	return out
}
