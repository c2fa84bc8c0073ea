package earley

import (
	"fmt"
	"strings"

	"github.com/nparse/thicket/grammar"
)

// Item is a dotted production plus an origin position: (A → α • β, k).
// Items are plain comparable structs (a production pointer plus two ints)
// so value identity — required by the chart's duplicate-suppressing item
// sets — falls out of Go's struct equality for free, as long as
// productions are interned (see grammar.Builder).
type Item struct {
	Prod   *grammar.Production
	Dot    int
	Origin int
}

// startItem builds (A → •γ, k) for production p.
func startItem(p *grammar.Production, origin int) Item {
	return Item{Prod: p, Dot: 0, Origin: origin}
}

// IsComplete reports whether the dot has moved past the entire RHS.
func (it Item) IsComplete() bool {
	return it.Dot >= len(it.Prod.RHS)
}

// PeekSymbol returns the symbol immediately to the right of the dot, or
// nil if the item is complete.
func (it Item) PeekSymbol() *grammar.Symbol {
	if it.IsComplete() {
		return nil
	}
	return it.Prod.RHS[it.Dot]
}

// Advance returns the item with the dot moved one position to the right.
// Must only be called on a non-complete item.
func (it Item) Advance() Item {
	return Item{Prod: it.Prod, Dot: it.Dot + 1, Origin: it.Origin}
}

func (it Item) String() string {
	var b strings.Builder
	b.WriteString(it.Prod.LHS.Name)
	b.WriteString(" → ")
	for i, s := range it.Prod.RHS {
		if i == it.Dot {
			b.WriteString("• ")
		}
		b.WriteString(s.Name)
		b.WriteByte(' ')
	}
	if it.IsComplete() {
		b.WriteString("•")
	}
	if len(it.Prod.RHS) == 0 {
		b.WriteString("•")
	}
	fmt.Fprintf(&b, ", %d", it.Origin)
	return b.String()
}
