package planner

// PreconditionHolds tests a ground action's instantiated precondition
// against a state (§4.2). For each precondition literal: a positive literal
// requires an equal literal present in the state; a negative literal
// requires that no equal *positive* literal is present (closed-world). All
// conjuncts must hold. The matcher is total: it never panics on a
// malformed-but-parseable action, per §4.2.
func PreconditionHolds(a GroundAction, s State) bool {
	idx := s.index()
	return preconditionHoldsIndexed(a.Precondition, idx)
}

func preconditionHoldsIndexed(precond []Literal, idx map[string][]Literal) bool {
	for _, l := range precond {
		if l.Negative {
			if hasIndexed(idx, l.Positive()) {
				return false
			}
		} else {
			if !hasIndexed(idx, l) {
				return false
			}
		}
	}
	return true
}

// ApplyEffect computes the successor state of applying a's instantiated
// effect to s (§4.4): copy s, walk the effect literals in schema-declared
// order, add each positive effect literal if absent, remove the matching
// positive literal for each negative effect literal.
//
// Effect ordering within a single action is implementation-defined: if a
// single action's effect both adds and deletes the same atom, the last
// write in declaration order wins (not guarded against) — this mirrors the
// source's undocumented behaviour, flagged in spec.md §9 as an open
// question the implementation preserves rather than resolves differently.
func ApplyEffect(a GroundAction, s State) State {
	next := s.Clone()
	for _, eff := range a.Effect {
		if eff.Negative {
			next.removeInPlace(eff)
		} else {
			next.addInPlace(eff)
		}
	}
	return next
}

// IsGoal implements §4.5: a goal is satisfied in s iff every positive
// conjunct of goal is present in s and every negative conjunct is absent.
func IsGoal(s State, goal []Literal) bool {
	idx := s.index()
	for _, g := range goal {
		if g.Negative {
			if hasIndexed(idx, g.Positive()) {
				return false
			}
		} else {
			if !hasIndexed(idx, g) {
				return false
			}
		}
	}
	return true
}
