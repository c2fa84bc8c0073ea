package forest

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"

	"github.com/nparse/thicket/grammar"
)

// Leaf is a terminal child reference: the token matched at position I,
// spanning the half-open interval [I, I+1).
type Leaf struct {
	Token interface{}
	I, J  int
}

// Child is one element of an alternative's child list: either a Node (for
// a non-terminal symbol of the production) or a Leaf (for a terminal or
// wildcard symbol). Exactly one of the two fields is set.
type Child struct {
	Node *Node
	Leaf *Leaf
}

// I returns the child's starting input position.
func (c Child) I() int {
	if c.Node != nil {
		return c.Node.I
	}
	return c.Leaf.I
}

// J returns the child's ending input position.
func (c Child) J() int {
	if c.Node != nil {
		return c.Node.J
	}
	return c.Leaf.J
}

func (c Child) String() string {
	if c.Node != nil {
		return c.Node.String()
	}
	return fmt.Sprintf("%v@(%d…%d)", c.Leaf.Token, c.Leaf.I, c.Leaf.J)
}

// Node is a packed forest node: all derivations of the same production
// across the same input span [I, J) are coalesced into one Node, carrying
// one alternative per distinct way of spelling out the RHS from children.
// A Node with two or more alternatives is an OR-node.
type Node struct {
	Prod         *grammar.Production
	I, J         int
	Alternatives [][]Child

	altSigs map[string]bool // dedup key per alternative
	dead    bool
}

// IsOrNode reports whether this node currently packs more than one
// alternative.
func (n *Node) IsOrNode() bool { return len(n.Alternatives) > 1 }

// Kill forcibly marks a node dead and discards its alternatives. Used by
// node-level disambiguation rules (reject, follow-restriction,
// prefer/avoid) that reject a node outright, as opposed to the
// alternative-level rules (priority, associativity) that only drop
// individual alternatives and let GC decide whether the node survives.
func (n *Node) Kill() {
	n.dead = true
	n.Alternatives = nil
}

// addAlternative appends children as a new alternative if no
// already-recorded alternative has the same signature. Returns true if it
// was actually new.
func (n *Node) addAlternative(children []Child) bool {
	sig := alternativeSignature(children)
	if n.altSigs == nil {
		n.altSigs = make(map[string]bool)
	}
	if n.altSigs[sig] {
		return false
	}
	n.altSigs[sig] = true
	cp := make([]Child, len(children))
	copy(cp, children)
	n.Alternatives = append(n.Alternatives, cp)
	return true
}

// Yield returns the slice of input tokens spanned by this node,
// input[I:J).
func (n *Node) Yield(input []interface{}) []interface{} {
	return input[n.I:n.J]
}

func (n *Node) String() string {
	return fmt.Sprintf("[%s (%d…%d)]", n.Prod.LHS.Name, n.I, n.J)
}

// DumpAlternatives renders every alternative of the node, for debugging.
func (n *Node) DumpAlternatives() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s → {\n", n)
	for _, alt := range n.Alternatives {
		b.WriteString("  [")
		for i, c := range alt {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(c.String())
		}
		b.WriteString("]\n")
	}
	b.WriteString("}")
	return b.String()
}

// childSig is the flat, gob-friendly shape structhash sees for one child
// slot: hashing a child's own grammar/position identity rather than the
// Node/Leaf pointer itself, so packed siblings never drag the rest of the
// (possibly large, possibly cyclic-looking) DAG into the hash.
type childSig struct {
	IsLeaf bool
	Serial int // production serial, for a non-terminal child
	Token  string
	I, J   int
}

// alternativeSignature hashes the production-and-span identity of every
// child in order, using structhash.Hash.
func alternativeSignature(children []Child) string {
	sigs := make([]childSig, len(children))
	for i, c := range children {
		if c.Node != nil {
			sigs[i] = childSig{Serial: c.Node.Prod.Serial, I: c.Node.I, J: c.Node.J}
		} else {
			sigs[i] = childSig{IsLeaf: true, Token: fmt.Sprintf("%v", c.Leaf.Token), I: c.Leaf.I, J: c.Leaf.J}
		}
	}
	h, err := structhash.Hash(sigs, 1)
	if err != nil {
		// structhash only fails on unsupported field types; sigs is a
		// plain value type, so this is unreachable in practice.
		panic(err)
	}
	return h
}
