package rulekit_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/rulekit/rulekit"
)

func TestValid(t *testing.T) {
	is := is.New(t)

	is.NoErr(rulekit.Valid(rulekit.NewMinLength(0)))
	is.NoErr(rulekit.Valid(rulekit.NewAnd()))
	is.NoErr(rulekit.Valid(rulekit.NewOr()))
	is.NoErr(rulekit.Valid(rulekit.NewAnd(
		rulekit.NewMinLength(8),
		rulekit.NewOr(
			rulekit.NewContainsCharacter('!'),
			rulekit.NewContainsAnyOf("?.,"),
		),
	)))

	err := rulekit.Valid(nil)
	is.True(errors.Is(err, rulekit.ErrInvalidRuleParameter))

	err = rulekit.Valid(rulekit.NewMinLength(-1))
	is.True(errors.Is(err, rulekit.ErrInvalidRuleParameter))

	err = rulekit.Valid(rulekit.NewContainsAnyOf(""))
	is.True(errors.Is(err, rulekit.ErrInvalidRuleParameter))

	err = rulekit.Valid(&rulekit.And{Rules: []rulekit.Rule{nil}})
	is.True(errors.Is(err, rulekit.ErrInvalidRuleParameter))
}

// The finding names the offending node via its path from the root.
func TestValidReportsPath(t *testing.T) {
	is := is.New(t)

	rule := rulekit.NewAnd(
		rulekit.NewMinLength(8),
		rulekit.NewOr(
			rulekit.NewMinLength(-3),
		),
	)

	err := rulekit.Valid(rule)
	is.True(errors.Is(err, rulekit.ErrInvalidRuleParameter))
	is.True(strings.Contains(err.Error(), "and(2 rules)/or(1 rules)/min_length(-3)"))
	is.True(strings.Contains(err.Error(), "negative length threshold -3"))
}

// Findings surface the first problem in declared child order.
func TestValidFirstFinding(t *testing.T) {
	is := is.New(t)

	rule := rulekit.NewOr(
		rulekit.NewContainsAnyOf(""),
		rulekit.NewMinLength(-1),
	)

	err := rulekit.Valid(rule)
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "empty character set"))
}
