package planner

// MutexReason tags why two action nodes or two literal nodes in the same
// planning-graph layer cannot both be realised together (§3, §4.8).
type MutexReason int

const (
	InconsistentEffect MutexReason = iota
	Interference
	Negation
	InconsistentSupport
	// CompetingNeeds resolves spec.md §9's open question: named in the
	// mutex taxonomy but not actually computed by the source. Two actions
	// are mutex under this rule if any pairing of one precondition from
	// each is literal-mutex at the previous layer.
	CompetingNeeds
)

func (r MutexReason) String() string {
	switch r {
	case InconsistentEffect:
		return "inconsistent-effect"
	case Interference:
		return "interference"
	case Negation:
		return "negation"
	case InconsistentSupport:
		return "inconsistent-support"
	case CompetingNeeds:
		return "competing-needs"
	default:
		return "unknown-mutex-reason"
	}
}

// ActionNode is a node in a planning-graph action level: either a synthetic
// no-op carrying a single literal forward, or a ground action. Its
// precondition and effect are surfaced through Precondition/Effect so the
// rest of this file can treat both kinds uniformly (§3's "synthetic noop
// action carrying one literal forward").
type ActionNode struct {
	IsNoop  bool
	Literal Literal      // set only when IsNoop
	Action  GroundAction // set only when !IsNoop
}

// Name renders the node for display and for deterministic fixed-point
// comparison between layers.
func (n ActionNode) Name() string {
	if n.IsNoop {
		return "noop " + n.Literal.String()
	}
	return actionToString(n.Action)
}

// Precondition returns the node's precondition: the carried literal for a
// no-op, or the ground action's instantiated precondition.
func (n ActionNode) Precondition() []Literal {
	if n.IsNoop {
		return []Literal{n.Literal}
	}
	return n.Action.Precondition
}

// Effect returns the node's effect, symmetric with Precondition.
func (n ActionNode) Effect() []Literal {
	if n.IsNoop {
		return []Literal{n.Literal}
	}
	return n.Action.Effect
}

// mutexPair is an unordered pair of node indices, used as a map key for a
// layer's action-mutex side table (spec.md §9: "store mutex relations in a
// side table keyed by node index per layer; do not attach them to the
// literal values themselves, which are shared across layers").
type mutexPair struct{ i, j int }

func pairKey(i, j int) mutexPair {
	if i > j {
		i, j = j, i
	}
	return mutexPair{i, j}
}

func litPairKey(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}

// Layer is one layer of a planning graph: a bag of action nodes (including
// no-ops), the distinct effect literals those nodes produce, and the two
// mutex side tables computed over them.
type Layer struct {
	Actions      []ActionNode
	Literals     []Literal
	ActionMutex  map[mutexPair]MutexReason
	LiteralMutex map[[2]string]MutexReason
}

func (l *Layer) actionsMutex(i, j int) (MutexReason, bool) {
	r, ok := l.ActionMutex[pairKey(i, j)]
	return r, ok
}

func (l *Layer) literalsMutex(a, b Literal) (MutexReason, bool) {
	r, ok := l.LiteralMutex[litPairKey(literalKey(a), literalKey(b))]
	return r, ok
}

// literalKey distinguishes a literal's polarity (Literal.String does not),
// so a positive and negative reading of the same atom are different nodes
// for mutex and dedup purposes.
func literalKey(l Literal) string {
	if l.Negative {
		return "!" + l.String()
	}
	return l.String()
}

func argsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func negatesLiteral(a, b Literal) bool {
	return a.Predicate == b.Predicate && a.Negative != b.Negative && argsEqual(a.Args, b.Args)
}

// GraphOptions configures planning-graph construction (§4.8, §6's graph()
// entry point).
type GraphOptions struct {
	// MinLayers forces construction to continue even after a fixed point
	// is reached, until at least this many action layers exist.
	MinLayers int
	// MaxLayers caps construction; 0 means uncapped (rely on the fixed
	// point to terminate).
	MaxLayers int
	// SkipNegative drops negative effect literals from no-op carry-forward
	// and from a layer's literal set entirely.
	SkipNegative bool
	// SkipMutex disables mutex computation, leaving both side tables
	// empty — useful for cheap reachability-only graphs.
	SkipMutex bool
}

// PlanningGraph is the layer sequence produced by Graph (§3, §4.8).
type PlanningGraph struct {
	Layers []*Layer
}

// Graph constructs a planning graph per §4.8: L0 from the initial state,
// each subsequent layer from the previous one's effects, stopping at a
// fixed point (no new literal and no new action versus the previous layer)
// once opts.MinLayers is satisfied, or at opts.MaxLayers if set. A final
// literal-only layer is appended, capturing the effects of the last action
// layer, per §4.8's closing step and §6's graph() surface.
func Graph(d *Domain, p *Problem, opts GraphOptions) *PlanningGraph {
	l0 := buildLayer0(d, p.Initial, opts)
	computeMutex(l0, nil, opts)
	layers := []*Layer{l0}

	for {
		if opts.MaxLayers > 0 && len(layers) >= opts.MaxLayers {
			break
		}
		prev := layers[len(layers)-1]
		next := buildNextLayer(d, prev, opts)
		computeMutex(next, prev, opts)
		fixedPoint := layerContentEqual(prev, next)
		layers = append(layers, next)
		if fixedPoint && len(layers) >= opts.MinLayers {
			break
		}
		if opts.MaxLayers > 0 && len(layers) >= opts.MaxLayers {
			break
		}
	}

	last := layers[len(layers)-1]
	layers = append(layers, &Layer{Literals: append([]Literal(nil), last.Literals...)})

	return &PlanningGraph{Layers: layers}
}

func buildLayer0(d *Domain, initial State, opts GraphOptions) *Layer {
	var actions []ActionNode
	for _, l := range initial.Literals() {
		actions = append(actions, ActionNode{IsNoop: true, Literal: l})
	}
	for _, ga := range ApplicableActions(d, initial) {
		actions = append(actions, ActionNode{Action: ga})
	}
	layer := &Layer{Actions: actions}
	layer.Literals = collectEffectLiterals(actions, !opts.SkipNegative)
	return layer
}

func buildNextLayer(d *Domain, prev *Layer, opts GraphOptions) *Layer {
	carried := collectEffectLiterals(prev.Actions, !opts.SkipNegative)

	var actions []ActionNode
	for _, l := range carried {
		actions = append(actions, ActionNode{IsNoop: true, Literal: l})
	}
	for _, ga := range ApplicableActionsMixed(d, carried) {
		actions = append(actions, ActionNode{Action: ga})
	}

	layer := &Layer{Actions: actions}
	layer.Literals = collectEffectLiterals(actions, !opts.SkipNegative)
	return layer
}

// collectEffectLiterals gathers the distinct effect literals of every node
// in actions (§4.8 step 1), dropping negative literals when includeNegative
// is false.
func collectEffectLiterals(actions []ActionNode, includeNegative bool) []Literal {
	seen := make(map[string]bool)
	var out []Literal
	for _, a := range actions {
		for _, e := range a.Effect() {
			if e.Negative && !includeNegative {
				continue
			}
			key := literalKey(e)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, e)
		}
	}
	return out
}

func producersFor(layer *Layer, lit Literal) []int {
	var out []int
	for idx, n := range layer.Actions {
		for _, e := range n.Effect() {
			if e.Equal(lit) {
				out = append(out, idx)
				break
			}
		}
	}
	return out
}

func producerIndexByLiteral(layer *Layer) map[string][]int {
	m := make(map[string][]int)
	for idx, n := range layer.Actions {
		for _, e := range n.Effect() {
			k := literalKey(e)
			m[k] = append(m[k], idx)
		}
	}
	return m
}

// computeMutex runs the four specified mutex rules plus the competing-needs
// rule added per SPEC_FULL's resolution of spec.md §9's open question, and
// stores the results on layer. prev is the previous layer (nil for L0),
// whose literal-mutex set feeds the competing-needs rule and the inherited
// no-op precondition mutex the spec describes.
func computeMutex(layer *Layer, prev *Layer, opts GraphOptions) {
	layer.ActionMutex = make(map[mutexPair]MutexReason)
	layer.LiteralMutex = make(map[[2]string]MutexReason)
	if opts.SkipMutex {
		return
	}

	n := len(layer.Actions)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			ai, aj := layer.Actions[i], layer.Actions[j]

			if !ai.IsNoop && !aj.IsNoop && inconsistentEffects(ai, aj) {
				layer.ActionMutex[pairKey(i, j)] = InconsistentEffect
				continue
			}
			if interferes(ai, aj) {
				layer.ActionMutex[pairKey(i, j)] = Interference
				continue
			}
			if prev != nil && competingNeeds(ai, aj, prev) {
				layer.ActionMutex[pairKey(i, j)] = CompetingNeeds
			}
		}
	}

	for i := 0; i < len(layer.Literals); i++ {
		for j := i + 1; j < len(layer.Literals); j++ {
			a, b := layer.Literals[i], layer.Literals[j]
			if negatesLiteral(a, b) {
				layer.LiteralMutex[litPairKey(literalKey(a), literalKey(b))] = Negation
			}
		}
	}

	producers := producerIndexByLiteral(layer)
	for i := 0; i < len(layer.Literals); i++ {
		for j := i + 1; j < len(layer.Literals); j++ {
			a, b := layer.Literals[i], layer.Literals[j]
			key := litPairKey(literalKey(a), literalKey(b))
			if _, already := layer.LiteralMutex[key]; already {
				continue
			}
			pa, pb := producers[literalKey(a)], producers[literalKey(b)]
			if len(pa) == 0 || len(pb) == 0 {
				continue
			}
			if everyProducerPairMutex(layer, pa, pb) {
				layer.LiteralMutex[key] = InconsistentSupport
			}
		}
	}
}

// everyProducerPairMutex implements inconsistent support's universal
// quantifier (§4.8: "if any pair is not mutex, the literals are not mutex
// by this rule").
func everyProducerPairMutex(layer *Layer, pa, pb []int) bool {
	for _, x := range pa {
		for _, y := range pb {
			if x == y {
				return false
			}
			if _, ok := layer.actionsMutex(x, y); !ok {
				return false
			}
		}
	}
	return true
}

func inconsistentEffects(a, b ActionNode) bool {
	for _, ea := range a.Effect() {
		for _, eb := range b.Effect() {
			if negatesLiteral(ea, eb) {
				return true
			}
		}
	}
	return false
}

func interferes(a, b ActionNode) bool {
	for _, ea := range a.Effect() {
		for _, pb := range b.Precondition() {
			if negatesLiteral(ea, pb) {
				return true
			}
		}
	}
	for _, eb := range b.Effect() {
		for _, pa := range a.Precondition() {
			if negatesLiteral(eb, pa) {
				return true
			}
		}
	}
	return false
}

func competingNeeds(a, b ActionNode, prev *Layer) bool {
	for _, pa := range a.Precondition() {
		for _, pb := range b.Precondition() {
			if _, mutex := prev.literalsMutex(pa, pb); mutex {
				return true
			}
		}
	}
	return false
}

// layerContentEqual reports whether next adds no new literal and no new
// action compared to prev — the fixed-point condition of §4.8.
func layerContentEqual(prev, next *Layer) bool {
	if len(prev.Literals) != len(next.Literals) || len(prev.Actions) != len(next.Actions) {
		return false
	}
	return sameLiteralSet(prev.Literals, next.Literals) && sameActionSet(prev.Actions, next.Actions)
}

func sameLiteralSet(a, b []Literal) bool {
	sa, sb := literalKeySet(a), literalKeySet(b)
	if len(sa) != len(sb) {
		return false
	}
	for k := range sa {
		if !sb[k] {
			return false
		}
	}
	return true
}

func literalKeySet(ls []Literal) map[string]bool {
	m := make(map[string]bool, len(ls))
	for _, l := range ls {
		m[literalKey(l)] = true
	}
	return m
}

func sameActionSet(a, b []ActionNode) bool {
	sa, sb := actionNameSet(a), actionNameSet(b)
	if len(sa) != len(sb) {
		return false
	}
	for k := range sa {
		if !sb[k] {
			return false
		}
	}
	return true
}

func actionNameSet(ns []ActionNode) map[string]bool {
	m := make(map[string]bool, len(ns))
	for _, n := range ns {
		m[n.Name()] = true
	}
	return m
}
