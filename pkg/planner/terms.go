package planner

import (
	"strings"
)

// Literal is a ground or schematic atom: a predicate applied to an ordered
// argument list, with a polarity. In a state literal the arguments are
// ground object names and Negative is always false (states hold only
// positive literals, §3). In a schematic literal (inside a precondition or
// effect) the arguments are parameter names drawn from the enclosing
// schema's parameter list.
//
// Equality on two literals is: same predicate, same polarity, same argument
// list in the same order (§3). Literal is a plain value type — compare with
// Equal; its slice field makes Literal non-comparable, so == does not
// compile.
type Literal struct {
	Predicate string
	Args      []string
	Negative  bool
}

// NewLiteral builds a literal from an AST literal node, copying the argument
// slice so the result does not alias AST storage.
func NewLiteral(l LiteralAST) Literal {
	args := make([]string, len(l.Parameters))
	copy(args, l.Parameters)
	return Literal{
		Predicate: l.Action,
		Args:      args,
		Negative:  l.Negative(),
	}
}

// Positive returns the positive form of a literal, i.e. itself if already
// positive. Used by the precondition matcher (§4.2) and goal test (§4.5) to
// test for presence of the underlying atom regardless of polarity.
func (l Literal) Positive() Literal {
	if !l.Negative {
		return l
	}
	return Literal{Predicate: l.Predicate, Args: l.Args, Negative: false}
}

// Negated returns the opposite-polarity literal over the same atom.
func (l Literal) Negated() Literal {
	return Literal{Predicate: l.Predicate, Args: l.Args, Negative: !l.Negative}
}

// Equal implements §3's literal equality: same predicate, same polarity,
// same argument list in the same order.
func (l Literal) Equal(other Literal) bool {
	if l.Predicate != other.Predicate || l.Negative != other.Negative {
		return false
	}
	if len(l.Args) != len(other.Args) {
		return false
	}
	for i, a := range l.Args {
		if a != other.Args[i] {
			return false
		}
	}
	return true
}

// Substitute returns the ground literal obtained by replacing each
// schematic argument with binding[argument]. If an argument is not a key of
// binding it is assumed to already be a ground term and is copied through
// unchanged — this lets Substitute be used on both schematic literals
// (argument names) and already-ground literals (idempotent).
//
// An argument that names a declared parameter but is absent from binding is
// the "unknown binding" diagnostic of §7: callers that need to detect this
// should use SubstituteStrict.
func (l Literal) Substitute(binding map[string]string) Literal {
	out := make([]string, len(l.Args))
	for i, a := range l.Args {
		if g, ok := binding[a]; ok {
			out[i] = g
		} else {
			out[i] = a
		}
	}
	return Literal{Predicate: l.Predicate, Args: out, Negative: l.Negative}
}

// SubstituteStrict behaves like Substitute but reports an UnknownBinding
// error (§7) through the given sink for any argument that is listed in
// paramNames but not bound. Such an argument, like any other unbound
// argument, is still copied through unchanged.
func (l Literal) SubstituteStrict(binding map[string]string, paramNames map[string]bool, sink ErrorSink) Literal {
	out := make([]string, len(l.Args))
	for i, a := range l.Args {
		if g, ok := binding[a]; ok {
			out[i] = g
			continue
		}
		if paramNames[a] {
			report(sink, UnknownBinding, "effect references unbound parameter "+a, nil)
		}
		out[i] = a
	}
	return Literal{Predicate: l.Predicate, Args: out, Negative: l.Negative}
}

// String renders the literal as "(predicate arg1 arg2 ...)" per §4.6,
// unprefixed by polarity — callers that need to show negation prepend "not "
// themselves (schematic-literal printing) since ground states never contain
// negative literals.
func (l Literal) String() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(l.Predicate)
	for _, a := range l.Args {
		b.WriteByte(' ')
		b.WriteString(a)
	}
	b.WriteByte(')')
	return b.String()
}

// actionToString renders a ground action as a single whitespace-delimited
// token sequence: the schema name followed by its bound arguments in order,
// per §6's plan output format.
func actionToString(a GroundAction) string {
	var b strings.Builder
	b.WriteString(a.SchemaName)
	for _, arg := range a.Args {
		b.WriteByte(' ')
		b.WriteString(arg)
	}
	return b.String()
}

// ActionToString is the exported form of actionToString, per §6's external
// interface list.
func ActionToString(a GroundAction) string { return actionToString(a) }
