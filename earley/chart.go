package earley

import (
	"github.com/nparse/thicket/grammar"
	"github.com/nparse/thicket/internal/itemset"
)

// Chart is the indexed sequence of Earley item sets S[0..n] produced by a
// recognition run, kept around afterwards so package forest can read
// completed items back out of it.
type Chart struct {
	g      *grammar.Grammar
	states []*itemset.Set
	input  []interface{}
}

// States returns S[0..n] — one set per input position, plus the seed set.
func (c *Chart) States() []*itemset.Set { return c.states }

// Input returns the token sequence the chart was built over.
func (c *Chart) Input() []interface{} { return c.input }

// Len returns n, the number of input tokens consumed.
func (c *Chart) Len() int { return len(c.input) }

// Recognize runs the Scanner/Predictor/Completer worklist over input and
// reports whether it is accepted by g. The returned Chart is always
// populated (even on rejection), so callers that need partial-chart
// diagnostics can inspect it regardless of the boolean result.
func Recognize(g *grammar.Grammar, input []interface{}) (bool, *Chart) {
	n := len(input)
	c := &Chart{
		g:      g,
		states: make([]*itemset.Set, n+1),
		input:  input,
	}
	c.states[0] = itemset.New(8)
	for _, p := range g.Alternatives(g.Start()) {
		c.states[0].Add(startItem(p, 0))
	}
	for i := 0; i <= n; i++ {
		if c.states[i] == nil {
			c.states[i] = itemset.New(8)
		}
		var tok interface{}
		hasTok := i < n
		if hasTok {
			tok = input[i]
		}
		S := c.states[i]
		S.IterateOnce()
		for S.Next() {
			it := S.Item().(Item)
			if hasTok {
				scan(S, c.nextSet(i, n), it, tok)
			}
			predict(g, S, it, i)
			complete(c, S, it, i)
		}
	}
	accept := acceptedAt(c.states[n], g)
	tracer().Debugf("Recognize: %d input tokens, accept=%v", n, accept)
	return accept, c
}

// nextSet lazily allocates S[i+1] the first time it is touched by the
// scanner.
func (c *Chart) nextSet(i, n int) *itemset.Set {
	if i+1 > n {
		return nil
	}
	if c.states[i+1] == nil {
		c.states[i+1] = itemset.New(8)
	}
	return c.states[i+1]
}

// scan: if (A → α • a β, k) is in S[i] and a matches the lookahead token
// (by value equality, or a is the wildcard), add (A → α a • β, k) to
// S[i+1].
func scan(S, S1 *itemset.Set, it Item, tok interface{}) {
	if S1 == nil {
		return
	}
	a := it.PeekSymbol()
	if a == nil || !a.IsTerminal() {
		return
	}
	if a.Matches(tok) {
		tracer().Debugf("scan: %v matches %s, advancing %s", tok, a, it)
		S1.Add(it.Advance())
	}
}

// predict: if (A → α • B β, k) is in S[i], add (B → •γ, i) to S[i] for
// every production of B. If B is nullable, also add (A → α B • β, k) to
// S[i] directly — the "magical completion" fold that replaces a separate
// ε-completer pass (per the source's own caution: do not also run a
// secondary ε-loop, or items duplicate).
func predict(g *grammar.Grammar, S *itemset.Set, it Item, i int) {
	B := it.PeekSymbol()
	if B == nil || B.Kind != grammar.NonTerminalKind {
		return
	}
	tracer().Debugf("predict: %s over %d alternative(s) of %s", it, len(g.Alternatives(B)), B)
	for _, p := range g.Alternatives(B) {
		S.Add(startItem(p, i))
	}
	if g.Nullable(B) {
		tracer().Debugf("predict: %s is nullable, folding in magical completion for %s", B, it)
		S.Add(it.Advance())
	}
}

// complete: if (A → γ •, k) is in S[i], add (B → δ A • η, m) to S[i] for
// every (B → δ • A η, m) already in S[k].
func complete(c *Chart, S *itemset.Set, it Item, i int) {
	if !it.IsComplete() {
		return
	}
	A := it.Prod.LHS
	k := it.Origin
	Sk := c.states[k]
	predecessors := Sk.Copy().Subset(func(e interface{}) bool {
		pit := e.(Item)
		sym := pit.PeekSymbol()
		return sym == A
	})
	tracer().Debugf("complete: %s completes %s, %d predecessor(s) in S[%d]", it, A, predecessors.Size(), k)
	predecessors.Each(func(e interface{}) {
		pit := e.(Item)
		S.Add(pit.Advance())
	})
}

// acceptedAt reports whether S[n] contains (S → γ •, 0) for some γ.
func acceptedAt(Sn *itemset.Set, g *grammar.Grammar) bool {
	accepted := false
	Sn.Each(func(e interface{}) {
		it := e.(Item)
		if it.IsComplete() && it.Prod.LHS == g.Start() && it.Origin == 0 {
			tracer().Debugf("accept: %s", it)
			accepted = true
		}
	})
	return accepted
}
