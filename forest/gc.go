package forest

// GC iteratively drops alternatives that reference a dead node, and marks a
// node dead once it has zero alternatives, until a fixed point is reached.
// Dead root nodes are removed from f.Roots. Safe to call repeatedly (e.g.
// once after Build, and again after the disambiguation engine discards
// alternatives of its own).
func (f *Forest) GC() {
	pass := 0
	for {
		changed := false
		killed := 0
		for _, n := range f.nodes {
			if n.dead {
				continue
			}
			kept := n.Alternatives[:0:0]
			for _, alt := range n.Alternatives {
				if alternativeAlive(alt) {
					kept = append(kept, alt)
				} else {
					changed = true
				}
			}
			n.Alternatives = kept
			if len(n.Alternatives) == 0 && !n.dead {
				n.dead = true
				changed = true
				killed++
			}
		}
		pass++
		tracer().Debugf("GC: pass %d killed %d node(s)", pass, killed)
		if !changed {
			break
		}
	}
	f.dropDeadRoots()
}

func alternativeAlive(alt []Child) bool {
	for _, c := range alt {
		if c.Node != nil && c.Node.dead {
			return false
		}
	}
	return true
}

func (f *Forest) dropDeadRoots() {
	var live []*Node
	for _, r := range f.Roots {
		if !r.dead {
			live = append(live, r)
		}
	}
	f.Roots = live
}

// IsDead reports whether a node has been garbage-collected (zero surviving
// alternatives).
func (n *Node) IsDead() bool { return n.dead }
