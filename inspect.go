package rulekit

// NodeCount returns the total number of nodes in the rule tree, composites
// and leaves alike. Describe produces exactly one line per counted node.
func NodeCount(r Rule) int {
	return Accept[int](r, nodeCounter{})
}

// Depth returns the nesting depth of the rule tree. A leaf has depth 1; a
// composite is one deeper than its deepest child, so an empty composite also
// has depth 1.
func Depth(r Rule) int {
	return Accept[int](r, depthFinder{})
}

// nodeCounter and depthFinder are input-free visitors: they need nothing
// beyond the tree itself.
type nodeCounter struct{}

func (v nodeCounter) VisitAnd(r *And) int { return 1 + v.countAll(r.Rules) }
func (v nodeCounter) VisitOr(r *Or) int   { return 1 + v.countAll(r.Rules) }

func (v nodeCounter) VisitMinLength(*MinLength) int                 { return 1 }
func (v nodeCounter) VisitContainsCharacter(*ContainsCharacter) int { return 1 }
func (v nodeCounter) VisitContainsAnyOf(*ContainsAnyOf) int         { return 1 }

func (v nodeCounter) countAll(rules []Rule) int {
	n := 0
	for _, c := range rules {
		n += Accept[int](c, v)
	}
	return n
}

type depthFinder struct{}

func (v depthFinder) VisitAnd(r *And) int { return 1 + v.deepest(r.Rules) }
func (v depthFinder) VisitOr(r *Or) int   { return 1 + v.deepest(r.Rules) }

func (v depthFinder) VisitMinLength(*MinLength) int                 { return 1 }
func (v depthFinder) VisitContainsCharacter(*ContainsCharacter) int { return 1 }
func (v depthFinder) VisitContainsAnyOf(*ContainsAnyOf) int         { return 1 }

func (v depthFinder) deepest(rules []Rule) int {
	max := 0
	for _, c := range rules {
		if d := Accept[int](c, v); d > max {
			max = d
		}
	}
	return max
}
