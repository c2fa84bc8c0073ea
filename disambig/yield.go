package disambig

import (
	"fmt"
	"strings"
)

// renderTokens concatenates a token slice into the string reject and
// follow-restriction patterns match against. Tokens are typically runes or
// single-character strings in the reference use (an input "stream of
// characters/symbols", per the grammar's own scope); %v covers both, and
// any richer token type degrades gracefully to its default representation.
func renderTokens(toks []interface{}) string {
	var b strings.Builder
	for _, t := range toks {
		fmt.Fprintf(&b, "%v", t)
	}
	return b.String()
}
