package disambig

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/nparse/thicket/grammar"
)

func prodComparator(a, b interface{}) int {
	return utils.IntComparator(a.(*grammar.Production).Serial, b.(*grammar.Production).Serial)
}

// priorityDAG is the transitive closure of the grammar's priority edges:
// lower[P] holds every production reachable downward from P (i.e. every Q
// such that P has priority over Q, directly or transitively).
type priorityDAG struct {
	lower map[*grammar.Production]*treeset.Set
}

func buildPriorityDAG(r *grammar.Rules) *priorityDAG {
	direct := make(map[*grammar.Production][]*grammar.Production)
	for _, e := range r.PriorityEdges() {
		direct[e.Higher] = append(direct[e.Higher], e.Lower)
	}
	d := &priorityDAG{lower: make(map[*grammar.Production]*treeset.Set)}
	for p := range direct {
		d.lower[p] = closeFrom(p, direct, treeset.NewWith(prodComparator))
	}
	return d
}

// closeFrom performs a DFS over the direct-edge map, accumulating every
// production transitively reachable from p, guarding against cycles in a
// (presumably acyclic, but not grammar-enforced) priority relation.
func closeFrom(p *grammar.Production, direct map[*grammar.Production][]*grammar.Production, acc *treeset.Set) *treeset.Set {
	for _, q := range direct[p] {
		if acc.Contains(q) {
			continue
		}
		acc.Add(q)
		closeFrom(q, direct, acc)
	}
	return acc
}

// lowerThan reports whether q is (transitively) lower priority than p.
func (d *priorityDAG) lowerThan(p, q *grammar.Production) bool {
	set, ok := d.lower[p]
	if !ok {
		return false
	}
	return set.Contains(q)
}
