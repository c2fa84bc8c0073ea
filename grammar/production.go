package grammar

import (
	"strings"
)

// Production is a BNF production (A, α): a left-hand side non-terminal
// and a, possibly empty, ordered sequence of right-hand side symbols. An
// empty RHS denotes an ε-production.
//
// Productions are content-addressable: two productions with the same LHS
// and the same sequence of RHS symbols are the same production (same
// pointer), interned by the Builder at grammar-construction time.
type Production struct {
	LHS    *Symbol
	RHS    []*Symbol
	Serial int // position in the grammar's production list; stable, 0-based
}

// IsEpsilon reports whether this production has an empty right-hand
// side.
func (p *Production) IsEpsilon() bool {
	return len(p.RHS) == 0
}

func (p *Production) String() string {
	var b strings.Builder
	b.WriteString(p.LHS.Name)
	b.WriteString(" → ")
	if len(p.RHS) == 0 {
		b.WriteString("ε")
	}
	for i, s := range p.RHS {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s.Name)
	}
	return b.String()
}

// productionKey builds the string key used to intern productions: the
// LHS name followed by the RHS symbols, each already-interned so pointer
// identity stands in for the symbol's own identity.
func productionKey(lhs *Symbol, rhs []*Symbol) string {
	var b strings.Builder
	b.WriteString(lhs.Name)
	b.WriteByte('|')
	for _, s := range rhs {
		b.WriteString(symbolKey(s))
		b.WriteByte(',')
	}
	return b.String()
}

func symbolKey(s *Symbol) string {
	switch s.Kind {
	case WildcardKind:
		return "·"
	case TerminalKind:
		return "t:" + s.Name
	default:
		return "n:" + s.Name
	}
}
