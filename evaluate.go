package rulekit

import (
	"strings"
	"unicode/utf8"
)

// Evaluate reports whether the input satisfies the rule tree. It is a pure
// function of the tree and the input: it never fails, has no side effects,
// and is safe to call concurrently on the same tree.
//
// Composite semantics: an And with no children is satisfied, an Or with no
// children is not. Lengths are counted in Unicode code points.
func Evaluate(r Rule, input string) bool {
	return AcceptInput[string, bool](r, satisfier{}, input)
}

// satisfier is the visitor behind Evaluate. Children of And and Or are
// checked in declared order with short-circuiting; the result is
// order-independent, so this is not observable.
type satisfier struct{}

func (s satisfier) VisitAnd(r *And, input string) bool {
	for _, c := range r.Rules {
		if !AcceptInput[string, bool](c, s, input) {
			return false
		}
	}
	return true
}

func (s satisfier) VisitOr(r *Or, input string) bool {
	for _, c := range r.Rules {
		if AcceptInput[string, bool](c, s, input) {
			return true
		}
	}
	return false
}

func (s satisfier) VisitMinLength(r *MinLength, input string) bool {
	return utf8.RuneCountInString(input) >= r.Min
}

func (s satisfier) VisitContainsCharacter(r *ContainsCharacter, input string) bool {
	return strings.ContainsRune(input, r.Char)
}

func (s satisfier) VisitContainsAnyOf(r *ContainsAnyOf, input string) bool {
	return strings.ContainsAny(input, string(r.Chars))
}
