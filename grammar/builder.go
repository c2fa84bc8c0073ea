package grammar

// Builder assembles a Grammar from BNF productions. It is the seam an
// out-of-core surface grammar builder (regex-like combinators, labels,
// character ranges) would target: Builder only ever accepts flattened,
// already-normalized alternatives.
//
// Example:
//
//	b := grammar.NewBuilder("G")
//	b.LHS("S").T("a", 'a').N("S").End()  // S → 'a' S
//	b.LHS("S").T("b", 'b').End()         // S → 'b'
//	g, err := b.Grammar()
type Builder struct {
	name    string
	symbols *symbolTable
	prods   []*Production
	seen    map[string]*Production
	start   *Symbol
	rules   *Rules
	err     error
}

// NewBuilder creates a grammar builder. The first LHS ever declared
// becomes the grammar's start symbol, unless StartSymbol overrides it.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:    name,
		symbols: newSymbolTable(),
		seen:    make(map[string]*Production),
		rules:   NewRules(),
	}
}

// StartSymbol explicitly names the grammar's start symbol, overriding
// the "first LHS declared" default.
func (b *Builder) StartSymbol(name string) *Builder {
	b.start = b.symbols.nonTerminal(name)
	return b
}

// WithRules attaches a disambiguation rule bundle to the grammar under
// construction.
func (b *Builder) WithRules(r *Rules) *Builder {
	b.rules = r
	return b
}

// NonTerminal interns and returns the non-terminal symbol named name,
// without adding a production for it. Useful for referencing a symbol
// from Rules before or after its productions are declared.
func (b *Builder) NonTerminal(name string) *Symbol {
	return b.symbols.nonTerminal(name)
}

// Terminal interns and returns a terminal symbol matching literal, giving
// it a display name.
func (b *Builder) Terminal(name string, literal interface{}) *Symbol {
	return b.symbols.terminal(name, literal)
}

// Wildcard interns and returns the grammar's wildcard terminal `·`.
func (b *Builder) Wildcard() *Symbol {
	return b.symbols.wildcardSymbol()
}

// LHS starts a new production for non-terminal name.
func (b *Builder) LHS(name string) *ProdBuilder {
	if b.start == nil {
		b.start = b.symbols.nonTerminal(name)
	}
	return &ProdBuilder{
		b:   b,
		lhs: b.symbols.nonTerminal(name),
	}
}

// ProdBuilder accumulates the right-hand side of one production.
type ProdBuilder struct {
	b   *Builder
	lhs *Symbol
	rhs []*Symbol
}

// N appends a non-terminal reference to the right-hand side.
func (pb *ProdBuilder) N(name string) *ProdBuilder {
	pb.rhs = append(pb.rhs, pb.b.symbols.nonTerminal(name))
	return pb
}

// T appends a terminal reference to the right-hand side, matching input
// tokens equal to literal. An empty string literal is a GrammarError,
// reported by Builder.Grammar.
func (pb *ProdBuilder) T(name string, literal interface{}) *ProdBuilder {
	if s, ok := literal.(string); ok && s == "" {
		pb.b.err = newGrammarError("empty terminal literal in a production of %s", pb.lhs.Name)
	}
	pb.rhs = append(pb.rhs, pb.b.symbols.terminal(name, literal))
	return pb
}

// Any appends the wildcard symbol `·` to the right-hand side.
func (pb *ProdBuilder) Any() *ProdBuilder {
	pb.rhs = append(pb.rhs, pb.b.symbols.wildcardSymbol())
	return pb
}

// End finalizes a non-epsilon production and returns its interned,
// content-addressed Production (repeating the same (LHS, RHS) elsewhere
// in the grammar yields the very same pointer).
func (pb *ProdBuilder) End() *Production {
	return pb.finish(pb.rhs)
}

// Epsilon finalizes an ε-production: A → (empty).
func (pb *ProdBuilder) Epsilon() *Production {
	if len(pb.rhs) != 0 {
		pb.b.err = newGrammarError("Epsilon() called after symbols were already added to %s", pb.lhs.Name)
		return nil
	}
	return pb.finish(nil)
}

func (pb *ProdBuilder) finish(rhs []*Symbol) *Production {
	b := pb.b
	key := productionKey(pb.lhs, rhs)
	if p, ok := b.seen[key]; ok {
		return p
	}
	p := &Production{LHS: pb.lhs, RHS: rhs, Serial: len(b.prods)}
	b.prods = append(b.prods, p)
	b.seen[key] = p
	return p
}

// Grammar freezes the builder into an immutable Grammar, computing the
// nullable set and validating structural invariants. Priority and
// single-production associativity rules referencing productions unknown
// to this grammar are reported with a logged warning rather than failing
// construction; they stay in the rule bundle.
func (b *Builder) Grammar() (*Grammar, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.start == nil {
		return nil, newGrammarError("grammar %q has no start symbol", b.name)
	}
	byLHS := make(map[*Symbol][]*Production)
	var nonterms []*Symbol
	seenNT := make(map[*Symbol]bool)
	for _, p := range b.prods {
		byLHS[p.LHS] = append(byLHS[p.LHS], p)
		if !seenNT[p.LHS] {
			seenNT[p.LHS] = true
			nonterms = append(nonterms, p.LHS)
		}
	}
	if len(byLHS[b.start]) == 0 {
		return nil, newGrammarError("start symbol %q has no production", b.start.Name)
	}
	for nt := range seenNT {
		for _, p := range byLHS[nt] {
			for _, s := range p.RHS {
				if s.Kind == NonTerminalKind && len(byLHS[s]) == 0 {
					return nil, newGrammarError("non-terminal %q (referenced by %s) has no production", s.Name, p)
				}
			}
		}
	}
	g := &Grammar{
		Name:     b.name,
		start:    b.start,
		byLHS:    byLHS,
		all:      b.prods,
		wildcard: b.symbols.wildcard,
		hasWild:  b.symbols.wildcard != nil,
		rules:    b.rules,
		nonterms: nonterms,
	}
	g.nullable = computeNullable(g)
	warnUnknownRuleReferences(g, b.rules)
	return g, nil
}

func warnUnknownRuleReferences(g *Grammar, r *Rules) {
	known := make(map[*Production]bool, len(g.all))
	for _, p := range g.all {
		known[p] = true
	}
	for _, e := range r.PriorityEdges() {
		if !known[e.Higher] || !known[e.Lower] {
			tracer().Infof("priority rule references a production not in grammar %q; rule is inactive", g.Name)
		}
	}
	for p := range r.assoc {
		if !known[p] {
			tracer().Infof("associativity rule references a production not in grammar %q; rule is inactive", g.Name)
		}
	}
	if r.HasFollowRestrictionLiterals() {
		tracer().Infof("grammar %q installs a literal-yield follow restriction; this is an optional feature the pruning engine never consults", g.Name)
	}
}
