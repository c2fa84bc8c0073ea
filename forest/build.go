package forest

import (
	"golang.org/x/exp/slices"

	"github.com/nparse/thicket/earley"
	"github.com/nparse/thicket/grammar"
)

// Forest is the shared packed parse forest produced by Build: a DAG of
// packed Nodes plus the root set ((A→γ,0,n) with A = start symbol).
type Forest struct {
	G     *grammar.Grammar
	Input []interface{}

	nodes map[nodeKey]*Node
	Roots []*Node

	// startAt indexes nodes by (LHS symbol, start position) for the
	// alternative-enumeration search in build.go.
	startAt map[*grammar.Symbol]map[int][]*Node
}

type nodeKey struct {
	Prod *grammar.Production
	I, J int
}

// Nodes returns every packed node currently in the forest (including dead
// ones: GC marks nodes dead but does not remove them), in a deterministic
// order (by span, then by
// production). f.nodes is a map, so ranging over it directly would give
// disambig's node-level passes — and anything tracing over them — a
// different visitation order on every run; the passes themselves don't
// depend on order for correctness, but reproducible trace output and
// reproducible test failures do.
func (f *Forest) Nodes() []*Node {
	out := make([]*Node, 0, len(f.nodes))
	for _, n := range f.nodes {
		out = append(out, n)
	}
	slices.SortFunc(out, func(a, b *Node) bool {
		if a.I != b.I {
			return a.I < b.I
		}
		if a.J != b.J {
			return a.J < b.J
		}
		return a.Prod.Serial < b.Prod.Serial
	})
	return out
}

func (f *Forest) getOrCreate(prod *grammar.Production, i, j int) *Node {
	key := nodeKey{prod, i, j}
	if n, ok := f.nodes[key]; ok {
		return n
	}
	n := &Node{Prod: prod, I: i, J: j}
	f.nodes[key] = n
	f.startAt[prod.LHS][i] = append(f.startAt[prod.LHS][i], n)
	return n
}

// Build translates a recognized chart into a forest, per the completed-item
// harvesting and alternative-enumeration procedure of the forest builder:
// mint one node per completed item, then for every node enumerate every way
// its production's RHS can be spelled out by children across its span,
// forbidding a node from referencing itself at the same span. Dead nodes
// (zero alternatives) are then pruned to a fixed point.
func Build(g *grammar.Grammar, c *earley.Chart) *Forest {
	f := &Forest{
		G:       g,
		Input:   c.Input(),
		nodes:   make(map[nodeKey]*Node),
		startAt: make(map[*grammar.Symbol]map[int][]*Node),
	}
	for _, nt := range g.NonTerminals() {
		f.startAt[nt] = make(map[int][]*Node)
	}
	n := c.Len()
	states := c.States()
	for j := 0; j <= n; j++ {
		if states[j] == nil {
			continue
		}
		states[j].Each(func(e interface{}) {
			it := e.(earley.Item)
			if it.IsComplete() {
				f.getOrCreate(it.Prod, it.Origin, j)
			}
		})
	}
	tracer().Debugf("Build: harvested %d completed node(s) from %d state set(s)", len(f.nodes), n+1)
	for _, node := range f.nodes {
		f.fillAlternatives(node)
	}
	// Walk the already-sorted node list, not the backing map, so Roots
	// comes out in the same (I, J, Prod.Serial) order on every run —
	// Forest.Trees() enumerates in Roots order, and that order is part
	// of the documented tree ordering.
	for _, node := range f.Nodes() {
		if node.Prod.LHS == g.Start() && node.I == 0 && node.J == n {
			f.Roots = append(f.Roots, node)
		}
	}
	tracer().Debugf("Build: %d root(s) at span (0…%d) before GC", len(f.Roots), n)
	f.GC()
	tracer().Debugf("Build: %d root(s) survive after GC", len(f.Roots))
	return f
}

// fillAlternatives enumerates every valid child-list for node's production
// across node's span, left to right, and records each as an alternative.
func (f *Forest) fillAlternatives(node *Node) {
	rhs := node.Prod.RHS
	if len(rhs) == 0 {
		if node.I == node.J {
			node.addAlternative(nil)
		}
		return
	}
	var walk func(idx, cursor int, acc []Child)
	walk = func(idx, cursor int, acc []Child) {
		if idx == len(rhs) {
			if cursor == node.J {
				node.addAlternative(acc)
			}
			return
		}
		sym := rhs[idx]
		if sym.IsTerminal() {
			if cursor >= len(f.Input) || cursor >= node.J {
				return
			}
			tok := f.Input[cursor]
			if !sym.Matches(tok) {
				return
			}
			leaf := &Leaf{Token: tok, I: cursor, J: cursor + 1}
			walk(idx+1, cursor+1, append(acc, Child{Leaf: leaf}))
			return
		}
		for _, cand := range f.startAt[sym][cursor] {
			if cand == node {
				continue // forbid self-reference at the same span
			}
			if cand.J > node.J {
				continue
			}
			walk(idx+1, cand.J, append(acc, Child{Node: cand}))
		}
	}
	walk(0, node.I, nil)
	if node.IsOrNode() {
		tracer().Debugf("fillAlternatives: %s packs %d alternatives (OR-node)", node, len(node.Alternatives))
	}
}
