package planner

import (
	"sort"
	"strings"
)

// State is an unordered set of ground positive literals under the
// closed-world assumption (§3): a literal not present is false. There are
// no duplicates, by literal equality. Ordering within the set carries no
// meaning; canonical form is computed on demand by String (§4.6).
//
// States produced by ApplyEffect are newly allocated and logically
// immutable with respect to any prior state (§5) — callers may share
// structural substructure freely since a State is only ever read after
// construction.
type State struct {
	literals []Literal
}

// NewState builds a state from a literal slice, deduplicating by literal
// equality. The input slice is not retained.
func NewState(literals []Literal) State {
	s := State{literals: make([]Literal, 0, len(literals))}
	for _, l := range literals {
		s.addInPlace(l)
	}
	return s
}

// Literals returns the state's literals. The returned slice must not be
// mutated by the caller; it may alias internal storage.
func (s State) Literals() []Literal {
	return s.literals
}

// Len returns the number of literals in the state.
func (s State) Len() int { return len(s.literals) }

// Has reports whether the state contains a literal equal to l.
func (s State) Has(l Literal) bool {
	for _, x := range s.literals {
		if x.Equal(l) {
			return true
		}
	}
	return false
}

// addInPlace adds l if not already present. Only used while building a
// fresh State value (NewState, Clone-then-mutate in apply.go); States are
// otherwise treated as immutable once constructed and handed to a caller.
func (s *State) addInPlace(l Literal) {
	if s.Has(l) {
		return
	}
	s.literals = append(s.literals, l)
}

// removeInPlace deletes the positive literal matching l.Positive(), if
// present.
func (s *State) removeInPlace(l Literal) {
	target := l.Positive()
	for i, x := range s.literals {
		if x.Equal(target) {
			s.literals = append(s.literals[:i], s.literals[i+1:]...)
			return
		}
	}
}

// Clone returns a State with the same literals, backed by a fresh slice so
// the clone can be mutated independently of the receiver.
func (s State) Clone() State {
	out := make([]Literal, len(s.literals))
	copy(out, s.literals)
	return State{literals: out}
}

// index builds a predicate -> literals map for faster precondition
// matching (§4.3: "an implementer may index S by predicate for speed
// without changing observable behaviour").
func (s State) index() map[string][]Literal {
	idx := make(map[string][]Literal, len(s.literals))
	for _, l := range s.literals {
		idx[l.Predicate] = append(idx[l.Predicate], l)
	}
	return idx
}

// hasIndexed reports whether idx (from State.index) contains a literal
// equal to target.
func hasIndexed(idx map[string][]Literal, target Literal) bool {
	for _, l := range idx[target.Predicate] {
		if l.Equal(target) {
			return true
		}
	}
	return false
}

// String renders the canonical form of the state per §4.6: format each
// ground positive literal as "(predicate arg1 arg2 ...)", sort those
// strings lexicographically, and join with single spaces. This is the key
// used in visited sets (§4.7) and in goal-literal equality tests across
// search branches, and StateToString is its exported alias (§6).
func (s State) String() string {
	toks := make([]string, len(s.literals))
	for i, l := range s.literals {
		toks[i] = l.String()
	}
	sort.Strings(toks)
	return strings.Join(toks, " ")
}

// StateToString is the exported form of (State).String, per §6's external
// interface list.
func StateToString(s State) string { return s.String() }
