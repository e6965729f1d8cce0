package rulekit

import (
	"github.com/pkg/errors"
)

// ErrInvalidRuleParameter indicates a rule was constructed with a parameter
// that can never behave usefully, such as a negative length threshold.
// Findings returned by Valid wrap this sentinel, so callers can test for it
// with errors.Is.
var ErrInvalidRuleParameter = errors.New("invalid rule parameter")

// Valid checks the rule tree for construction mistakes and returns an error
// describing the first one found, or nil. It reports:
//
//   - a nil rule, or a nil child of a composite
//   - a MinLength with a negative threshold
//   - a ContainsAnyOf with an empty character set
//
// Valid is an opt-in check. Evaluate and Describe accept these trees and
// give them their defined vacuous/exact semantics; Valid exists for callers
// who would rather reject them at construction time. Engine.AddRule runs it
// by default.
func Valid(r Rule) error {
	if r == nil {
		return errors.Wrap(ErrInvalidRuleParameter, "nil rule")
	}
	return AcceptInput[string, error](r, validator{}, r.String())
}

// validator walks the tree carrying the path from the root to the node
// being checked, so findings name the offending node.
type validator struct{}

func (v validator) VisitAnd(r *And, path string) error {
	return v.checkChildren(r.Rules, path)
}

func (v validator) VisitOr(r *Or, path string) error {
	return v.checkChildren(r.Rules, path)
}

func (v validator) VisitMinLength(r *MinLength, path string) error {
	if r.Min < 0 {
		return errors.Wrapf(ErrInvalidRuleParameter, "%s: negative length threshold %d", path, r.Min)
	}
	return nil
}

func (v validator) VisitContainsCharacter(r *ContainsCharacter, path string) error {
	return nil
}

func (v validator) VisitContainsAnyOf(r *ContainsAnyOf, path string) error {
	if len(r.Chars) == 0 {
		return errors.Wrapf(ErrInvalidRuleParameter, "%s: empty character set", path)
	}
	return nil
}

func (v validator) checkChildren(rules []Rule, path string) error {
	for i, c := range rules {
		if c == nil {
			return errors.Wrapf(ErrInvalidRuleParameter, "%s: child %d is nil", path, i)
		}
		if err := AcceptInput[string, error](c, v, path+"/"+c.String()); err != nil {
			return err
		}
	}
	return nil
}
