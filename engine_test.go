package rulekit_test

import (
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/matryer/is"
	"github.com/rulekit/rulekit"
)

func TestEngine(t *testing.T) {
	is := is.New(t)

	e := rulekit.NewEngine()
	is.Equal(0, e.RuleCount())

	password := rulekit.NewAnd(
		rulekit.NewMinLength(8),
		rulekit.NewContainsAnyOf("!?@"),
	)

	err := e.AddRule("password", password)
	is.NoErr(err)
	is.Equal(1, e.RuleCount())

	err = e.AddRule("username", rulekit.NewMinLength(3))
	is.NoErr(err)
	is.Equal(2, e.RuleCount())
	is.Equal([]string{"password", "username"}, e.Keys())

	ok, err := e.Evaluate("password", "hunter2!")
	is.NoErr(err)
	is.True(ok)

	ok, err = e.Evaluate("password", "hunter2")
	is.NoErr(err)
	is.True(!ok)

	text, err := e.Describe("username")
	is.NoErr(err)
	is.Equal("The value must have at least 3 characters\n", text)

	res, err := e.Explain("password", "short!")
	is.NoErr(err)
	is.True(!res.Pass)
	is.Equal(2, len(res.Results))

	r, found := e.Rule("password")
	is.True(found)
	is.Equal(rulekit.Rule(password), r)

	_, found = e.Rule("goofy")
	is.True(!found)

	// replacing an existing ID
	err = e.AddRule("username", rulekit.NewMinLength(5))
	is.NoErr(err)
	is.Equal(2, e.RuleCount())
	ok, err = e.Evaluate("username", "abcd")
	is.NoErr(err)
	is.True(!ok)

	e.Remove("username")
	is.Equal(1, e.RuleCount())
	is.Equal([]string{"password"}, e.Keys())
}

func TestEngineRuleNotFound(t *testing.T) {
	is := is.New(t)

	e := rulekit.NewEngine()

	_, err := e.Evaluate("missing", "input")
	is.True(errors.Is(err, rulekit.ErrRuleNotFound))

	_, err = e.Explain("missing", "input")
	is.True(errors.Is(err, rulekit.ErrRuleNotFound))

	_, err = e.Describe("missing")
	is.True(errors.Is(err, rulekit.ErrRuleNotFound))
}

func TestEngineAddRuleErrors(t *testing.T) {
	is := is.New(t)

	e := rulekit.NewEngine()

	is.True(e.AddRule("", rulekit.NewMinLength(1)) != nil)
	is.True(e.AddRule("   ", rulekit.NewMinLength(1)) != nil)
	is.True(e.AddRule("a/b", rulekit.NewMinLength(1)) != nil)
	is.True(e.AddRule("nil", nil) != nil)

	err := e.AddRule("negative", rulekit.NewMinLength(-1))
	is.True(errors.Is(err, rulekit.ErrInvalidRuleParameter))

	err = e.AddRule("empty_set", rulekit.NewAnd(rulekit.NewContainsAnyOf("")))
	is.True(errors.Is(err, rulekit.ErrInvalidRuleParameter))

	is.Equal(0, e.RuleCount())
}

func TestEngineSkipValidation(t *testing.T) {
	is := is.New(t)

	e := rulekit.NewEngine(rulekit.SkipValidation(true))

	err := e.AddRule("negative", rulekit.NewMinLength(-1))
	is.NoErr(err)

	// literal semantics: a negative threshold is always satisfied
	ok, err := e.Evaluate("negative", "")
	is.NoErr(err)
	is.True(ok)
}

func TestEngineMaxDepth(t *testing.T) {
	is := is.New(t)

	e := rulekit.NewEngine(rulekit.MaxDepth(2))

	shallow := rulekit.NewAnd(rulekit.NewMinLength(1))
	is.NoErr(e.AddRule("shallow", shallow))

	deep := rulekit.NewAnd(rulekit.NewOr(rulekit.NewMinLength(1)))
	is.True(e.AddRule("deep", deep) != nil)
}

func TestEngineConcurrency(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test in short mode.")
	}

	is := is.New(t)

	e := rulekit.NewEngine()
	err := e.AddRule("password", rulekit.NewAnd(
		rulekit.NewMinLength(8),
		rulekit.NewOr(
			rulekit.NewContainsCharacter('!'),
			rulekit.NewContainsAnyOf("?.,"),
		),
	))
	is.NoErr(err)

	inputs := []string{"", "short", "long enough!", "also long enough?", "no punctuation here"}
	wants := make([]bool, len(inputs))
	for i, in := range inputs {
		wants[i], err = e.Evaluate("password", in)
		is.NoErr(err)
	}

	var wg sync.WaitGroup
	for g := 0; g < 50; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				i := rand.Intn(len(inputs))
				got, err := e.Evaluate("password", inputs[i])
				if err != nil || got != wants[i] {
					t.Errorf("concurrent Evaluate(%q) = %v, %v; want %v", inputs[i], got, err, wants[i])
					return
				}
				if _, err := e.Describe("password"); err != nil {
					t.Errorf("concurrent Describe failed: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
