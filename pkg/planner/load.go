package planner

// LoadOptions controls Load's behaviour. The zero value selects
// full-Cartesian grounding with a discarding error sink; DefaultLoadOptions
// gives the fast-mode default of §4.1.
type LoadOptions struct {
	// FastMode selects permutation-without-repetition grounding (true, the
	// default from DefaultLoadOptions) over the full Cartesian product
	// (false). In typed mode it applies within each group of same-typed
	// parameter positions (see Ground).
	FastMode bool
	// Sink receives non-fatal diagnostics (§7). May be nil to discard them.
	Sink ErrorSink
}

// DefaultLoadOptions returns the package default: fast-mode grounding, no
// diagnostics sink.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{FastMode: true}
}

// Load builds a Domain and Problem from their external AST representations
// and grounds every schema against the problem's objects (§6's load entry
// point). The core is synchronous: Load does its work and returns — there
// is no callback-style loading here, as spec.md §9's design notes call
// out, since the engine has no non-blocking I/O of its own to hide behind
// a continuation.
func Load(domainAST *DomainAST, problemAST *ProblemAST, opts LoadOptions) (*Domain, *Problem, error) {
	domain := buildDomain(domainAST)

	typed := domain.Typed()
	objects := NewObjectCatalogue(problemAST.Objects, typed, opts.Sink)

	initial := buildState(problemAST.States[0].Actions)
	goal := buildLiterals(problemAST.States[1].Actions)

	if typed {
		for _, o := range problemAST.Objects {
			if o.Type == "" {
				report(opts.Sink, TypingViolation, "problem declares an object without a type while :typing is requested", nil)
			}
		}
	}

	problem := &Problem{
		Name:    problemAST.Problem,
		Domain:  problemAST.Domain,
		Objects: objects,
		Initial: initial,
		Goal:    goal,
	}

	if !typed && len(literalUniverse(initial)) == 0 {
		report(opts.Sink, EmptyUniverse, "grounding universe is empty: no objects appear in the initial state's literals", nil)
	}

	Ground(domain, objects, initial, opts.FastMode, opts.Sink)

	return domain, problem, nil
}

func buildDomain(ast *DomainAST) *Domain {
	d := &Domain{
		Name:         ast.Domain,
		Requirements: append([]string(nil), ast.Requirements...),
		Types:        append([]string(nil), ast.Types...),
	}
	for _, sa := range ast.Actions {
		d.Schemas = append(d.Schemas, buildSchema(sa))
	}
	return d
}

func buildSchema(sa SchemaAST) *ActionSchema {
	params := make([]Parameter, len(sa.Parameters))
	for i, p := range sa.Parameters {
		params[i] = Parameter{Name: p.Parameter, Type: p.Type}
	}
	return &ActionSchema{
		Name:         sa.Action,
		Parameters:   params,
		Precondition: buildLiterals(sa.Precondition),
		Effect:       buildLiterals(sa.Effect),
	}
}

func buildLiterals(ls []LiteralAST) []Literal {
	out := make([]Literal, len(ls))
	for i, l := range ls {
		out[i] = NewLiteral(l)
	}
	return out
}

func buildState(ls []LiteralAST) State {
	return NewState(buildLiterals(ls))
}
