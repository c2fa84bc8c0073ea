package itemset

// Set is a destructive, iteratable collection of comparable values. Its
// cursor-based iteration mode is a worklist: IterateOnce resets a cursor, and
// repeated calls to Next walk the set in insertion order, observing any
// element appended by Add *during* the very iteration that is under way.
// This is what lets the Earley inner loop treat "the item set at position
// i" as both the data being scanned and the queue being grown.
type Set struct {
	order []interface{}
	index map[interface{}]int
	pos   int
}

// New creates an empty set, optionally pre-sizing its backing storage.
func New(sizeHint int) *Set {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Set{
		order: make([]interface{}, 0, sizeHint),
		index: make(map[interface{}]int, sizeHint),
	}
}

// Add inserts v if not already present. Safe to call while iterating:
// the new element becomes visible to a subsequent Next.
func (s *Set) Add(v interface{}) bool {
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = len(s.order)
	s.order = append(s.order, v)
	return true
}

// Contains reports whether v is a member of the set.
func (s *Set) Contains(v interface{}) bool {
	_, ok := s.index[v]
	return ok
}

// Size returns the number of elements currently in the set.
func (s *Set) Size() int { return len(s.order) }

// Values returns all elements, in insertion order. The returned slice
// must not be mutated by the caller.
func (s *Set) Values() []interface{} { return s.order }

// IterateOnce resets the worklist cursor to the beginning.
func (s *Set) IterateOnce() { s.pos = 0 }

// Next advances the worklist cursor and reports whether an element is
// available. It observes elements appended after iteration started.
func (s *Set) Next() bool {
	if s.pos >= len(s.order) {
		return false
	}
	s.pos++
	return true
}

// Item returns the element the cursor currently points to. Only valid
// immediately after a call to Next that returned true.
func (s *Set) Item() interface{} { return s.order[s.pos-1] }

// Each calls f once for every element currently in the set (a snapshot:
// elements added by f are not visited by this call).
func (s *Set) Each(f func(interface{})) {
	n := len(s.order)
	for i := 0; i < n; i++ {
		f(s.order[i])
	}
}

// Subset returns a fresh set containing the elements for which predicate
// returns true.
func (s *Set) Subset(predicate func(interface{}) bool) *Set {
	out := New(0)
	for _, v := range s.order {
		if predicate(v) {
			out.Add(v)
		}
	}
	return out
}

// FirstMatch returns the first element for which predicate returns true,
// or nil if none match.
func (s *Set) FirstMatch(predicate func(interface{}) bool) interface{} {
	for _, v := range s.order {
		if predicate(v) {
			return v
		}
	}
	return nil
}

// Copy returns a shallow copy of the set, independent of the receiver for
// subsequent Add calls.
func (s *Set) Copy() *Set {
	out := New(len(s.order))
	for _, v := range s.order {
		out.Add(v)
	}
	return out
}
