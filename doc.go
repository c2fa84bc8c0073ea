/*
Package thicket implements a general context-free parser for potentially
ambiguous grammars.

Given a grammar (package `grammar`) and an input of tokens, a Parser
decides membership in the language (Recognize), builds a shared packed
parse forest of every derivation (Parse), and lets a caller prune that
forest with declarative disambiguation rules (package `disambig`) and
enumerate the surviving trees one at a time (package `enum`).

Building a Grammar

Grammars are built with grammar.NewBuilder, adding productions over
non-terminals, terminals and the wildcard symbol:

    b := grammar.NewBuilder("G")
    b.LHS("S").N("S").T("a", 'a').End()
    b.LHS("S").T("b", 'b').End()
    g, err := b.Grammar()

Parsing

    p := thicket.NewParser(g)
    if !p.Recognize(input) {
        // input not in the language
    }
    forest, err := p.Parse(input)
    fmt.Println(forest.Count(), "trees survived disambiguation")
    for trees := forest.Trees(); trees.Next(); {
        tree := trees.Tree()
        _ = tree
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package thicket

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'thicket'.
func tracer() tracing.Trace {
	return tracing.Select("thicket")
}
