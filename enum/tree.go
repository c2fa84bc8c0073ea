package enum

import "github.com/nparse/thicket/forest"

// Tree is one concrete parse tree carved out of a forest: a root node plus
// the committed alternative index for every OR-node encountered while
// constructing it. Nodes with only one alternative need no entry — their
// single alternative is implicit.
type Tree struct {
	Root   *forest.Node
	Choice map[*forest.Node]int

	// Annotations holds per-node decorations attached by a binder callback
	// (see thicket.Forest.UniqueAnnotated); nil until something populates
	// it.
	Annotations map[*forest.Node]interface{}
}

// Children returns the child references of n as selected by this tree's
// committed branch (or alternative 0, if n is not an OR-node in this
// tree).
func (t *Tree) Children(n *forest.Node) []forest.Child {
	idx := t.Choice[n]
	if idx >= len(n.Alternatives) {
		return nil
	}
	return n.Alternatives[idx]
}

// Walk visits every node of the tree in pre-order, calling visit once per
// node (terminal leaves are passed to visitLeaf instead). Used by the
// annotation hook and by tests asserting tree shape.
func (t *Tree) Walk(visit func(*forest.Node), visitLeaf func(*forest.Leaf)) {
	var rec func(*forest.Node)
	rec = func(n *forest.Node) {
		visit(n)
		for _, c := range t.Children(n) {
			if c.Node != nil {
				rec(c.Node)
			} else if visitLeaf != nil {
				visitLeaf(c.Leaf)
			}
		}
	}
	rec(t.Root)
}
