// Package enum walks a pruned forest.Forest and yields each distinct
// parse tree exactly once, via depth-first construction with backtracking
// across OR-nodes.
//
// Per-node branch state lives in an explicit side table (map[*forest.Node]int)
// owned by the Enumerator, not on the node itself: the forest DAG stays
// immutable and independent enumerations over the same forest never
// interfere with each other.
//
// Branch choices are tracked as an ordered path of OR-nodes encountered
// during the last depth-first construction (in visitation order); that
// path doubles as a stack of branch cursors, since a Go slice's position
// already encodes visitation order without a separate counter.
package enum

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'thicket.enum'.
func tracer() tracing.Trace {
	return tracing.Select("thicket.enum")
}
