package rulekit

import "fmt"

// Visitor is the interface implemented by algorithms that operate on a rule
// tree without any per-call input. A visitor defines one method per rule
// variant; adding a variant to the package adds a method here, so every
// existing visitor breaks at compile time until it handles the new variant.
//
// R is the result type produced by the algorithm.
type Visitor[R any] interface {
	VisitAnd(r *And) R
	VisitOr(r *Or) R
	VisitMinLength(r *MinLength) R
	VisitContainsCharacter(r *ContainsCharacter) R
	VisitContainsAnyOf(r *ContainsAnyOf) R
}

// InputVisitor is the interface implemented by algorithms that carry one
// extra input value through the traversal, such as the string being tested
// or an accumulation context. The input type I and result type R are chosen
// independently by each algorithm.
type InputVisitor[I, R any] interface {
	VisitAnd(r *And, in I) R
	VisitOr(r *Or, in I) R
	VisitMinLength(r *MinLength, in I) R
	VisitContainsCharacter(r *ContainsCharacter, in I) R
	VisitContainsAnyOf(r *ContainsAnyOf, in I) R
}

// Accept dispatches r to the visitor method matching its concrete variant
// and returns the method's result. Accept panics on a nil rule; the Rule
// interface is sealed, so no other variant can reach the default case.
func Accept[R any](r Rule, v Visitor[R]) R {
	switch n := r.(type) {
	case *And:
		return v.VisitAnd(n)
	case *Or:
		return v.VisitOr(n)
	case *MinLength:
		return v.VisitMinLength(n)
	case *ContainsCharacter:
		return v.VisitContainsCharacter(n)
	case *ContainsAnyOf:
		return v.VisitContainsAnyOf(n)
	default:
		panic(fmt.Sprintf("rulekit: cannot dispatch rule of type %T", r))
	}
}

// AcceptInput dispatches r to the visitor method matching its concrete
// variant, passing the input value through unchanged. AcceptInput panics on
// a nil rule.
func AcceptInput[I, R any](r Rule, v InputVisitor[I, R], in I) R {
	switch n := r.(type) {
	case *And:
		return v.VisitAnd(n, in)
	case *Or:
		return v.VisitOr(n, in)
	case *MinLength:
		return v.VisitMinLength(n, in)
	case *ContainsCharacter:
		return v.VisitContainsCharacter(n, in)
	case *ContainsAnyOf:
		return v.VisitContainsAnyOf(n, in)
	default:
		panic(fmt.Sprintf("rulekit: cannot dispatch rule of type %T", r))
	}
}
