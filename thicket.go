package thicket

import "fmt"

// Token is the contract an input element must satisfy: value equality by
// way of Go's `==`. The reference use is runes of a character stream, but
// any comparable value works — pre-lexed keywords, enum-like token kinds,
// and so on. There is no tokenizer in this module: a caller hands a
// []Token to Recognize/Parse directly.
type Token interface{}

// Span denotes a half-open interval [From, To) of positions in an input
// token slice. Every terminal and non-terminal a parse derives is tagged
// with the span of input it covers.
type Span [2]int

// From returns the start of the span.
func (s Span) From() int { return s[0] }

// To returns the position just behind the end of the span.
func (s Span) To() int { return s[1] }

// Len returns the number of input positions covered by the span.
func (s Span) Len() int { return s[1] - s[0] }

// IsEmpty reports whether the span covers zero input positions, as is the
// case for ε-productions.
func (s Span) IsEmpty() bool { return s[0] == s[1] }

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
