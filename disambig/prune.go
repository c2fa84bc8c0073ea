package disambig

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/nparse/thicket/forest"
	"github.com/nparse/thicket/grammar"
)

// Prune applies a grammar's validator bundle to a freshly-built forest, in
// place: prefer/avoid → reject → followRestriction at the node level, then
// priority → associativity at the alternative level, then fixed-point
// dead-node GC. Calling Prune on an already-pruned forest is idempotent:
// every rule only ever discards, never restores, so a second pass changes
// nothing.
func Prune(f *forest.Forest) {
	r := f.G.Rules()
	tracer().Debugf("Prune: starting over %d node(s), %d root(s)", len(f.Nodes()), len(f.Roots))
	applyPreferAvoid(f, r)
	applyReject(f, r)
	applyFollowRestriction(f, r)
	dag := buildPriorityDAG(r)
	applyPriorityAndAssoc(f, r, dag)
	f.GC()
	tracer().Debugf("Prune: done, %d root(s) survive", len(f.Roots))
}

type groupKey struct {
	lhs  *grammar.Symbol
	i, j int
}

// applyPreferAvoid partitions the live nodes by (lhs, i, j) — the set of
// competing completions of the same non-terminal over the same span — and
// kills the productions that avoid/prefer rule out, each step applied only
// if it leaves at least one survivor.
func applyPreferAvoid(f *forest.Forest, r *grammar.Rules) {
	groups := make(map[groupKey][]*forest.Node)
	for _, n := range f.Nodes() {
		if n.IsDead() {
			continue
		}
		groups[groupKey{n.Prod.LHS, n.I, n.J}] = append(groups[groupKey{n.Prod.LHS, n.I, n.J}], n)
	}
	// groups is a map; iterating its keys directly would make the order
	// prefer/avoid kills happen in (and anything tracing that) vary
	// between runs. The kills themselves are order-independent, but
	// reproducible trace output and deterministic test failures aren't
	// optional extras.
	keys := maps.Keys(groups)
	slices.SortFunc(keys, func(a, b groupKey) bool {
		if a.i != b.i {
			return a.i < b.i
		}
		if a.j != b.j {
			return a.j < b.j
		}
		return a.lhs.Name < b.lhs.Name
	})
	for _, k := range keys {
		nodes := groups[k]
		if avoid := r.AvoidOf(k.lhs); len(avoid) > 0 {
			if survivors := filterProds(nodes, avoid, false); len(survivors) > 0 {
				tracer().Debugf("applyPreferAvoid: %s@(%d,%d) avoid rule drops %d of %d candidate(s)", k.lhs, k.i, k.j, len(nodes)-len(survivors), len(nodes))
				killAllExcept(nodes, survivors)
				nodes = survivors
			}
		}
		if prefer := r.PreferOf(k.lhs); len(prefer) > 0 {
			if survivors := filterProds(nodes, prefer, true); len(survivors) > 0 {
				tracer().Debugf("applyPreferAvoid: %s@(%d,%d) prefer rule drops %d of %d candidate(s)", k.lhs, k.i, k.j, len(nodes)-len(survivors), len(nodes))
				killAllExcept(nodes, survivors)
			}
		}
	}
}

// filterProds returns the subset of nodes whose production is in set
// (keep=true) or not in set (keep=false).
func filterProds(nodes []*forest.Node, set []*grammar.Production, keep bool) []*forest.Node {
	in := make(map[*grammar.Production]bool, len(set))
	for _, p := range set {
		in[p] = true
	}
	var out []*forest.Node
	for _, n := range nodes {
		if in[n.Prod] == keep {
			out = append(out, n)
		}
	}
	return out
}

func killAllExcept(all, survivors []*forest.Node) {
	keep := make(map[*forest.Node]bool, len(survivors))
	for _, n := range survivors {
		keep[n] = true
	}
	for _, n := range all {
		if !keep[n] {
			n.Kill()
		}
	}
}

// applyReject kills any node whose non-terminal has a reject pattern
// matching its yield.
func applyReject(f *forest.Forest, r *grammar.Rules) {
	for _, n := range f.Nodes() {
		if n.IsDead() {
			continue
		}
		patterns := r.RejectOf(n.Prod.LHS)
		if len(patterns) == 0 {
			continue
		}
		yield := renderTokens(n.Yield(f.Input))
		for _, p := range patterns {
			if p.Matches(yield) {
				n.Kill()
				break
			}
		}
	}
}

// applyFollowRestriction kills any node whose non-terminal has a
// follow-restriction regex matching the start of the remaining input right
// after the node's span. The literal-yield variant (FollowRestrictionLiteralOf)
// is deliberately never consulted here — see grammar.Rules.FollowRestrictionLiteral.
func applyFollowRestriction(f *forest.Forest, r *grammar.Rules) {
	for _, n := range f.Nodes() {
		if n.IsDead() {
			continue
		}
		regexes := r.FollowRestrictionOf(n.Prod.LHS)
		if len(regexes) == 0 {
			continue
		}
		var rest []interface{}
		if n.J <= len(f.Input) {
			rest = f.Input[n.J:]
		}
		remaining := renderTokens(rest)
		for _, re := range regexes {
			if loc := re.FindStringIndex(remaining); loc != nil && loc[0] == 0 {
				n.Kill()
				break
			}
		}
	}
}

// applyPriorityAndAssoc drops, per node, any alternative whose children
// violate the priority DAG or an associativity rule — leaving the node
// itself alive as long as at least one alternative survives (GC settles
// that afterwards).
func applyPriorityAndAssoc(f *forest.Forest, r *grammar.Rules, dag *priorityDAG) {
	for _, n := range f.Nodes() {
		if n.IsDead() {
			continue
		}
		var kept [][]forest.Child
		for _, alt := range n.Alternatives {
			if violatesPriority(n.Prod, alt, dag) {
				continue
			}
			if violatesAssoc(n.Prod, alt, r) {
				continue
			}
			kept = append(kept, alt)
		}
		n.Alternatives = kept
	}
}

func violatesPriority(parent *grammar.Production, alt []forest.Child, dag *priorityDAG) bool {
	for _, c := range alt {
		if c.Node == nil {
			continue
		}
		if dag.lowerThan(parent, c.Node.Prod) {
			return true
		}
	}
	return false
}

func violatesAssoc(parent *grammar.Production, alt []forest.Child, r *grammar.Rules) bool {
	if len(alt) == 0 {
		return false
	}
	left := childProd(alt[0])
	right := childProd(alt[len(alt)-1])

	if dir := r.AssocOf(parent); dir != grammar.NoAssoc {
		if assocRejects(dir, left, right, func(p *grammar.Production) bool { return p == parent }, alt) {
			return true
		}
	}
	for _, g := range r.AssocGroups() {
		if !g.Members[parent] {
			continue
		}
		if assocRejects(g.Direction, left, right, func(p *grammar.Production) bool { return p != nil && g.Members[p] }, alt) {
			return true
		}
	}
	return false
}

func childProd(c forest.Child) *grammar.Production {
	if c.Node == nil {
		return nil
	}
	return c.Node.Prod
}

func assocRejects(dir grammar.Assoc, left, right *grammar.Production, matches func(*grammar.Production) bool, alt []forest.Child) bool {
	switch dir {
	case grammar.LeftAssoc:
		return matches(right)
	case grammar.RightAssoc:
		return matches(left)
	case grammar.NoneAssoc:
		for _, c := range alt {
			if matches(childProd(c)) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
