// Package disambig prunes a forest.Forest according to the validator
// bundle attached to a grammar: priority, associativity, reject,
// follow-restriction, and prefer/avoid. It applies them in the fixed
// order prefer/avoid → reject → followRestriction at the node level, then
// priority → associativity at the alternative level, followed by
// fixed-point dead-node garbage collection — exactly the pruning order of
// the four smaller passes, not a single combined predicate, which keeps
// each rule family independently testable.
//
// The priority DAG's transitive closure is computed once per Prune call,
// with one github.com/emirpasic/gods treeset of reachable productions per
// production that has priority over another.
package disambig

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'thicket.disambig'.
func tracer() tracing.Trace {
	return tracing.Select("thicket.disambig")
}
