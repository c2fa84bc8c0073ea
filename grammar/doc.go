/*
Package grammar implements the BNF-normalized grammar model the rest of
this module builds on: productions over terminals, non-terminals and a
wildcard "any single token" symbol, a start symbol, a memoized nullable
set, and the disambiguation rule bundle that travels alongside a grammar
into the parse forest.

Grammars are immutable once built. A client constructs one with a
Builder, which interns every symbol and production so that downstream
packages (earley, forest, disambig, enum) may use pointer equality
instead of repeated structural comparison — the productions are
content-addressable by construction.

This package has no notion of a surface syntax (regex-like combinators,
labels, character ranges): it only ever consumes already-flattened
alternatives, each a sequence of symbols. A higher-level grammar builder
is explicitly out of scope for this module; it only has to deliver BNF
productions compatible with Builder.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package grammar

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'thicket.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("thicket.grammar")
}
