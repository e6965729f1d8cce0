package rulekit

import (
	"fmt"
	"strings"
)

// A Rule is one node in a validation rule tree. The set of rule variants is
// closed: And, Or, MinLength, ContainsCharacter and ContainsAnyOf. Composite
// rules (And, Or) hold child rules, enabling you to create a hierarchy of
// rules; the remaining variants are leaves that test the input string
// directly.
//
// Rules are pure data and must not be modified after construction. A rule
// must not be a child rule of more than one parent, and must never appear as
// its own descendant. An immutable tree may be evaluated or described from
// any number of goroutines without synchronization.
//
// Algorithms over a tree are written as visitors (see Visitor and
// InputVisitor) and dispatched with Accept or AcceptInput.
type Rule interface {
	fmt.Stringer

	// Restricts implementations to this package, keeping the variant set
	// closed so visitor dispatch stays exhaustive.
	isRule()
}

// And is satisfied when every child rule is satisfied. An And with no
// children is vacuously satisfied.
type And struct {
	// Rules are the child rules, in declaration order. The order matters
	// for rendering, not for the boolean result.
	Rules []Rule
}

// Or is satisfied when at least one child rule is satisfied. An Or with no
// children is never satisfied.
type Or struct {
	Rules []Rule
}

// MinLength is satisfied when the input contains at least Min characters
// (Unicode code points). A negative Min is always satisfied.
type MinLength struct {
	Min int
}

// ContainsCharacter is satisfied when Char occurs anywhere in the input.
type ContainsCharacter struct {
	Char rune
}

// ContainsAnyOf is satisfied when at least one of Chars occurs in the input.
// Chars is read as a set, but its order is preserved when the rule is
// rendered. An empty set is never satisfied.
type ContainsAnyOf struct {
	Chars []rune
}

// NewAnd returns a rule satisfied when all of the given rules are satisfied.
func NewAnd(rules ...Rule) *And {
	return &And{Rules: rules}
}

// NewOr returns a rule satisfied when any of the given rules is satisfied.
func NewOr(rules ...Rule) *Or {
	return &Or{Rules: rules}
}

// NewMinLength returns a rule satisfied by inputs of at least min characters.
func NewMinLength(min int) *MinLength {
	return &MinLength{Min: min}
}

// NewContainsCharacter returns a rule satisfied by inputs containing c.
func NewContainsCharacter(c rune) *ContainsCharacter {
	return &ContainsCharacter{Char: c}
}

// NewContainsAnyOf returns a rule satisfied by inputs containing any
// character of chars.
func NewContainsAnyOf(chars string) *ContainsAnyOf {
	return &ContainsAnyOf{Chars: []rune(chars)}
}

func (r *And) isRule()               {}
func (r *Or) isRule()                {}
func (r *MinLength) isRule()         {}
func (r *ContainsCharacter) isRule() {}
func (r *ContainsAnyOf) isRule()     {}

// String returns a short single-line summary of the rule, without its
// children. Use Tree or Describe for the full hierarchy.
func (r *And) String() string {
	return fmt.Sprintf("and(%d rules)", len(r.Rules))
}

func (r *Or) String() string {
	return fmt.Sprintf("or(%d rules)", len(r.Rules))
}

func (r *MinLength) String() string {
	return fmt.Sprintf("min_length(%d)", r.Min)
}

func (r *ContainsCharacter) String() string {
	return fmt.Sprintf("contains(%q)", r.Char)
}

func (r *ContainsAnyOf) String() string {
	return fmt.Sprintf("contains_any(%q)", string(r.Chars))
}

// children returns the child rules of composite variants, nil for leaves.
func children(r Rule) []Rule {
	switch n := r.(type) {
	case *And:
		return n.Rules
	case *Or:
		return n.Rules
	default:
		return nil
	}
}

// Tree returns a tree representation of the rule hierarchy showing rule
// summaries. The tree uses box-drawing characters to visualize parent-child
// relationships. Recursion is limited to a maximum depth of 20 levels.
//
// Example output:
//
//	and(2 rules)
//	├── min_length(8)
//	└── or(2 rules)
//	    ├── contains('!')
//	    └── contains_any("?.,")
func Tree(r Rule) string {
	if r == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(r.String())
	sb.WriteString("\n")
	buildTree(r, &sb, "", 0)
	return sb.String()
}

// buildTree recursively builds the tree representation with proper
// indentation and tree characters (├──, └──, │).
// depth limits recursion to a maximum of 20 levels.
func buildTree(r Rule, sb *strings.Builder, prefix string, depth int) {
	if depth >= 20 {
		return
	}
	kids := children(r)
	for i, child := range kids {
		isLast := i == len(kids)-1
		var connector, childPrefix string
		if isLast {
			connector = "└── "
			childPrefix = "    "
		} else {
			connector = "├── "
			childPrefix = "│   "
		}

		sb.WriteString(prefix)
		sb.WriteString(connector)
		sb.WriteString(child.String())
		sb.WriteString("\n")
		buildTree(child, sb, prefix+childPrefix, depth+1)
	}
}
