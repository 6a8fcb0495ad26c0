package planner

// ApplicableActions enumerates every ground action whose precondition
// holds in s (§4.3): for each schema, iterate its cached groundings,
// instantiate the precondition, test it against s, and collect the ground
// actions that pass. The result is deduplicated by ground-action equality.
func ApplicableActions(d *Domain, s State) []GroundAction {
	idx := s.index()
	var out []GroundAction
	seen := make(map[string]bool)
	for _, schema := range d.Schemas {
		for _, ga := range schema.Groundings {
			if !preconditionHoldsIndexed(ga.Precondition, idx) {
				continue
			}
			key := groundActionKey(ga)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, ga)
		}
	}
	return out
}

// ApplicableActionsMixed implements the two-pass, union-then-dedup
// enumeration of §4.3 used when the caller's literal set may contain
// negative literals — meaningful only for planning-graph intermediate
// levels (§4.8), where a layer's "effective state" is the union of effect
// literals of every node in the previous layer.
//
// Pass one strips negative literals entirely and tests applicability
// against the remaining positives ("positive-only applicability"). Pass two
// additionally strips any positive literal whose negative twin is also
// present ("negative wins"). The two result sets are unioned and
// deduplicated by ground-action equality.
func ApplicableActionsMixed(d *Domain, lits []Literal) []GroundAction {
	var positives []Literal
	negated := make(map[string]bool)
	for _, l := range lits {
		if l.Negative {
			negated[l.Positive().String()] = true
		} else {
			positives = append(positives, l)
		}
	}

	pass1 := ApplicableActions(d, NewState(positives))

	var negWins []Literal
	for _, l := range positives {
		if negated[l.String()] {
			continue
		}
		negWins = append(negWins, l)
	}
	pass2 := ApplicableActions(d, NewState(negWins))

	seen := make(map[string]bool)
	var out []GroundAction
	for _, ga := range append(pass1, pass2...) {
		key := groundActionKey(ga)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, ga)
	}
	return out
}

// groundActionKey is a cheap, stable key for ground-action equality
// (§3): schema name plus the argument tuple joined unambiguously.
func groundActionKey(a GroundAction) string {
	key := a.SchemaName
	for _, arg := range a.Args {
		key += "\x00" + arg
	}
	return key
}
