package enum

import "github.com/nparse/thicket/forest"

// Enumerator is a lazy, pull-based sequence of Trees over a forest.Forest:
// it suspends after each yielded tree and resumes construction on the next
// call to Next, per the concurrency model's "suspension points are only
// between trees" rule.
type Enumerator struct {
	f       *forest.Forest
	rootIdx int
	started bool
	done    bool

	branch  map[*forest.Node]int
	orPath  []*forest.Node
	current *Tree
}

// NewEnumerator creates an enumerator over every tree of f, across all of
// f's root nodes, in root order.
func NewEnumerator(f *forest.Forest) *Enumerator {
	return &Enumerator{f: f}
}

// Next advances to the next tree and reports whether one was produced.
func (e *Enumerator) Next() bool {
	if e.done {
		return false
	}
	for {
		if e.rootIdx >= len(e.f.Roots) {
			e.done = true
			e.current = nil
			return false
		}
		root := e.f.Roots[e.rootIdx]
		if !e.started {
			e.reset()
			e.build(root)
			e.current = &Tree{Root: root, Choice: copyBranch(e.branch)}
			e.started = true
			return true
		}
		if e.advance() {
			e.current = &Tree{Root: root, Choice: copyBranch(e.branch)}
			return true
		}
		e.rootIdx++
		e.started = false
	}
}

// Tree returns the tree produced by the most recent call to Next that
// returned true. Calling it before any such call, or after Next has
// returned false without an intervening Reset, is a misuse: it traces a
// BranchPointerError and returns nil (or panics, if the operator opted
// into panic-on-reenumerate-without-reset).
func (e *Enumerator) Tree() *Tree {
	if e.current == nil {
		guardBranchPointer("Tree() called with no committed branch; call Next() first and check its result")
		return nil
	}
	return e.current
}

// Reset rewinds the enumerator to produce the first tree again, required
// before reusing it — BranchPointerError guards against the alternative
// (re-enumerating without resetting).
func (e *Enumerator) Reset() {
	e.rootIdx = 0
	e.started = false
	e.done = false
	e.branch = nil
	e.orPath = nil
	e.current = nil
}

func (e *Enumerator) reset() {
	e.branch = make(map[*forest.Node]int)
	e.orPath = nil
}

// build performs a pre-order depth-first construction of the tree implied
// by the current branch assignments, recording every OR-node it visits (in
// visitation order) onto orPath, defaulting any node not yet assigned a
// branch to alternative 0.
func (e *Enumerator) build(node *forest.Node) {
	if node.IsOrNode() {
		if _, ok := e.branch[node]; !ok {
			e.branch[node] = 0
		}
		e.orPath = append(e.orPath, node)
	}
	idx := e.branch[node]
	if idx >= len(node.Alternatives) {
		return
	}
	for _, c := range node.Alternatives[idx] {
		if c.Node != nil {
			e.build(c.Node)
		}
	}
}

// advance implements the backtracking step: pop OR-nodes from the tail of
// orPath (the most recently visited, i.e. least significant in DFS
// pre-order) until one can move to its next alternative; every popped
// OR-node's branch assignment is discarded so the next full rebuild
// revisits it fresh at alternative 0 — which is exactly what "re-enqueue
// every non-terminal sibling to the right... rebuilt from scratch" means
// once order is tracked implicitly by slice position rather than by a
// separate counter.
func (e *Enumerator) advance() bool {
	for len(e.orPath) > 0 {
		last := len(e.orPath) - 1
		node := e.orPath[last]
		if e.branch[node]+1 < len(node.Alternatives) {
			e.branch[node]++
			e.orPath = nil
			root := e.f.Roots[e.rootIdx]
			e.build(root)
			return true
		}
		delete(e.branch, node)
		e.orPath = e.orPath[:last]
	}
	return false
}

func copyBranch(m map[*forest.Node]int) map[*forest.Node]int {
	out := make(map[*forest.Node]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
