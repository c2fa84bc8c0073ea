package grammar

import "regexp"

// Assoc names the associativity direction of a production or of a group
// of equal-priority productions.
type Assoc int8

const (
	// NoAssoc means no associativity rule applies.
	NoAssoc Assoc = iota
	// LeftAssoc rejects an alternative whose rightmost child is produced
	// by the same production (or the same equal-priority group).
	LeftAssoc
	// RightAssoc rejects an alternative whose leftmost child is produced
	// by the same production (or the same equal-priority group).
	RightAssoc
	// NoneAssoc rejects an alternative in which any direct child is
	// produced by the same production (or group) — i.e. the operator
	// does not chain at all.
	NoneAssoc
)

// RejectPattern is either a literal string (matched by full equality
// against a node's yield) or a compiled regular expression (which must
// match the whole yield, not just a substring of it).
type RejectPattern struct {
	Literal string
	Regex   *regexp.Regexp
}

// Matches reports whether yield triggers this reject pattern.
func (r RejectPattern) Matches(yield string) bool {
	if r.Regex != nil {
		full := regexp.MustCompile(`^(?:` + r.Regex.String() + `)$`)
		return full.MatchString(yield)
	}
	return r.Literal == yield
}

// assocGroup is the "group form" of associativity: a set of
// equal-priority productions sharing one associativity direction.
type assocGroup struct {
	direction Assoc
	members   map[*Production]bool
}

// priorityEdge records "higher has priority over lower" (P ▷ Q).
type priorityEdge struct {
	higher *Production
	lower  *Production
}

// Rules is the disambiguation validator bundle that travels alongside a
// Grammar: priority DAG edges, per-production and per-group
// associativity, reject patterns, follow restrictions, and prefer/avoid
// sets. It is created with NewRules, filled in by its chainable methods,
// and attached to a Grammar with Builder.WithRules.
type Rules struct {
	priority    []priorityEdge
	assoc       map[*Production]Assoc
	assocGroups []assocGroup

	reject map[*Symbol][]RejectPattern

	// followRestriction is keyed by non-terminal. followRestrictionLiteral
	// is the optional, rarely-used literal-yield variant — installed but
	// never actually consulted by the pruning engine; Grammar emits a
	// warning if a rule of this shape is registered.
	followRestriction        map[*Symbol][]*regexp.Regexp
	followRestrictionLiteral map[string][]*regexp.Regexp

	prefer map[*Symbol][]*Production
	avoid  map[*Symbol][]*Production
}

// NewRules creates an empty rule bundle.
func NewRules() *Rules {
	return &Rules{
		assoc:                    make(map[*Production]Assoc),
		reject:                   make(map[*Symbol][]RejectPattern),
		followRestriction:        make(map[*Symbol][]*regexp.Regexp),
		followRestrictionLiteral: make(map[string][]*regexp.Regexp),
		prefer:                   make(map[*Symbol][]*Production),
		avoid:                    make(map[*Symbol][]*Production),
	}
}

// Priority declares that higher has priority over lower.
func (r *Rules) Priority(higher, lower *Production) *Rules {
	r.priority = append(r.priority, priorityEdge{higher, lower})
	return r
}

// Associate sets the associativity of a single production.
func (r *Rules) Associate(p *Production, dir Assoc) *Rules {
	r.assoc[p] = dir
	return r
}

// AssociateGroup sets the associativity of a set of equal-priority
// productions: an alternative is invalid if the corresponding edge child
// (rightmost for Left, leftmost for Right, any for None) belongs to a
// production of the very same group.
func (r *Rules) AssociateGroup(dir Assoc, members ...*Production) *Rules {
	set := make(map[*Production]bool, len(members))
	for _, m := range members {
		set[m] = true
	}
	r.assocGroups = append(r.assocGroups, assocGroup{direction: dir, members: set})
	return r
}

// Reject installs a reject rule for non-terminal A: any derivation whose
// yielded substring equals literal, or is matched in full by regex, is
// rejected outright.
func (r *Rules) Reject(a *Symbol, literal string, regex *regexp.Regexp) *Rules {
	r.reject[a] = append(r.reject[a], RejectPattern{Literal: literal, Regex: regex})
	return r
}

// RejectLiteral is a convenience for the common case of rejecting an
// exact yield.
func (r *Rules) RejectLiteral(a *Symbol, literal string) *Rules {
	return r.Reject(a, literal, nil)
}

// RejectRegex is a convenience for rejecting a regex-matched yield.
func (r *Rules) RejectRegex(a *Symbol, regex *regexp.Regexp) *Rules {
	return r.Reject(a, "", regex)
}

// FollowRestriction installs a regex which, if it matches at the very
// start of the remaining input right after a derivation of A, rejects
// that derivation.
func (r *Rules) FollowRestriction(a *Symbol, regex *regexp.Regexp) *Rules {
	r.followRestriction[a] = append(r.followRestriction[a], regex)
	return r
}

// FollowRestrictionLiteral installs the rare literal-yield variant of a
// follow restriction (keyed by the literal text a terminal production
// yields, rather than by a non-terminal symbol). Carried as an optional,
// documented feature: the pruning engine never actually looks it up, and
// Grammar construction warns if one is registered.
func (r *Rules) FollowRestrictionLiteral(yield string, regex *regexp.Regexp) *Rules {
	r.followRestrictionLiteral[yield] = append(r.followRestrictionLiteral[yield], regex)
	return r
}

// Prefer restricts competing completions of non-terminal a to those
// whose production is in the given set (applied only if doing so leaves
// at least one candidate).
func (r *Rules) Prefer(a *Symbol, prods ...*Production) *Rules {
	r.prefer[a] = append(r.prefer[a], prods...)
	return r
}

// Avoid drops competing completions of non-terminal a whose production is
// in the given set (applied only if doing so leaves at least one
// candidate).
func (r *Rules) Avoid(a *Symbol, prods ...*Production) *Rules {
	r.avoid[a] = append(r.avoid[a], prods...)
	return r
}

// --- read-only accessors used by package disambig -----------------------

// PriorityEdges returns the raw "higher ▷ lower" edges.
func (r *Rules) PriorityEdges() []struct{ Higher, Lower *Production } {
	out := make([]struct{ Higher, Lower *Production }, len(r.priority))
	for i, e := range r.priority {
		out[i] = struct{ Higher, Lower *Production }{e.higher, e.lower}
	}
	return out
}

// AssocOf returns the associativity of a single production (NoAssoc if
// none was set).
func (r *Rules) AssocOf(p *Production) Assoc {
	return r.assoc[p]
}

// AssocGroups returns the group-form associativity rules.
func (r *Rules) AssocGroups() []struct {
	Direction Assoc
	Members   map[*Production]bool
} {
	out := make([]struct {
		Direction Assoc
		Members   map[*Production]bool
	}, len(r.assocGroups))
	for i, g := range r.assocGroups {
		out[i] = struct {
			Direction Assoc
			Members   map[*Production]bool
		}{g.direction, g.members}
	}
	return out
}

// RejectOf returns the reject patterns for non-terminal a.
func (r *Rules) RejectOf(a *Symbol) []RejectPattern {
	return r.reject[a]
}

// FollowRestrictionOf returns the follow-restriction regexes for
// non-terminal a.
func (r *Rules) FollowRestrictionOf(a *Symbol) []*regexp.Regexp {
	return r.followRestriction[a]
}

// FollowRestrictionLiteralOf returns the literal-yield follow-restriction
// regexes for a given yielded text.
func (r *Rules) FollowRestrictionLiteralOf(yield string) []*regexp.Regexp {
	return r.followRestrictionLiteral[yield]
}

// HasFollowRestrictionLiterals reports whether any literal-yield follow
// restriction was registered — used by Grammar construction to decide
// whether to emit the "never consulted" warning.
func (r *Rules) HasFollowRestrictionLiterals() bool {
	return len(r.followRestrictionLiteral) > 0
}

// PreferOf returns the preferred productions for non-terminal a.
func (r *Rules) PreferOf(a *Symbol) []*Production {
	return r.prefer[a]
}

// AvoidOf returns the avoided productions for non-terminal a.
func (r *Rules) AvoidOf(a *Symbol) []*Production {
	return r.avoid[a]
}
