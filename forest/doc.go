// Package forest builds a shared packed parse forest (SPPF-like DAG) from
// an earley.Chart: one packed node per (production, i, j), fanning out to
// OR-alternatives of child references, with dead-node garbage collection
// to a fixed point.
//
// The node shape is a single flat Node{Prod,I,J,Alternatives} rather
// than a two-level symbol-node/RHS-node split, matching a
// `SPPFNode.Children [][]*SPPFNode` style packed-forest representation.
// Alternative signatures, used to deduplicate a node's alternatives, are
// computed with structhash.
package forest

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'thicket.forest'.
func tracer() tracing.Trace {
	return tracing.Select("thicket.forest")
}
