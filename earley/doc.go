// Package earley implements the Scanner/Predictor/Completer recognizer
// described by Aycock and Horspool in "Practical Earley Parsing" (2002),
// extended with nullable-non-terminal folding ("magical completion") and
// wildcard-terminal support.
//
// A Chart is a sequence of item sets S[0..n], one per input position plus
// one seed set. Recognize runs the three sub-rules to a worklist fixed
// point in every set and returns the chart along with its verdict, so
// that package forest can read completed items back out of it.
package earley

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'thicket.earley'.
func tracer() tracing.Trace {
	return tracing.Select("thicket.earley")
}
