package rulekit

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Engine is a concurrency-safe registry of named rule trees, ready to be
// evaluated or described by ID. The engine validates rules as they are
// added; the trees themselves are immutable, so evaluations take only a
// read lock.
type Engine struct {

	// The rules map holds the rules passed by the user of the engine
	rules map[string]Rule

	// Mutex for the rules map
	mu sync.RWMutex

	// Options used by the engine when rules are added
	opts EngineOptions
}

var ErrRuleNotFound = errors.New("rule not found")

// Rule IDs may not contain the path separator.
const bannedIDCharacters = "/"

// The default maximum nesting depth of a registered rule tree.
const defaultMaxDepth = 100

// NewEngine initializes a new engine.
func NewEngine(opts ...EngineOption) *Engine {
	engine := Engine{
		rules: make(map[string]Rule),
		opts:  EngineOptions{MaxDepth: defaultMaxDepth},
	}
	applyEngineOptions(&engine.opts, opts...)
	return &engine
}

// See the functional definitions below for the meaning.
type EngineOptions struct {
	MaxDepth       int
	SkipValidation bool
}

type EngineOption func(f *EngineOptions)

// Given an array of EngineOption functions, apply their effect
// on the EngineOptions struct.
func applyEngineOptions(o *EngineOptions, opts ...EngineOption) {
	for _, opt := range opts {
		opt(o)
	}
}

// MaxDepth sets the maximum nesting depth accepted by AddRule. Rule trees
// come from the caller and may nest arbitrarily deep; bounding the depth at
// registration keeps the recursive traversals within a known stack budget.
// Default: 100
func MaxDepth(n int) EngineOption {
	return func(f *EngineOptions) {
		f.MaxDepth = n
	}
}

// SkipValidation disables the Valid check in AddRule, admitting rules such
// as a negative MinLength with their literal evaluation semantics.
// Default: off
func SkipValidation(b bool) EngineOption {
	return func(f *EngineOptions) {
		f.SkipValidation = b
	}
}

// AddRule adds the rule tree to the engine under the ID, ready to be
// evaluated. An existing rule with the same ID is replaced. The rule is
// checked with Valid unless the engine was created with SkipValidation, and
// must not nest deeper than the engine's maximum depth.
func (e *Engine) AddRule(id string, r Rule) error {
	if len(strings.TrimSpace(id)) == 0 {
		return fmt.Errorf("required rule ID")
	}

	if strings.ContainsAny(id, bannedIDCharacters) {
		return fmt.Errorf("rule ID is invalid (%s), cannot contain any of '%s'", id, bannedIDCharacters)
	}

	if r == nil {
		return fmt.Errorf("attempt to add nil rule %s", id)
	}

	if !e.opts.SkipValidation {
		if err := Valid(r); err != nil {
			return fmt.Errorf("rule %s: %w", id, err)
		}
	}

	if d := Depth(r); d > e.opts.MaxDepth {
		return fmt.Errorf("rule %s: depth %d exceeds maximum depth %d", id, d, e.opts.MaxDepth)
	}

	e.mu.Lock()
	e.rules[id] = r
	e.mu.Unlock()
	return nil
}

// Evaluate reports whether the input satisfies the rule with the ID.
func (e *Engine) Evaluate(id string, input string) (bool, error) {
	r, err := e.lookup(id)
	if err != nil {
		return false, err
	}
	return Evaluate(r, input), nil
}

// Explain evaluates the rule with the ID and returns the per-node results.
func (e *Engine) Explain(id string, input string) (*Result, error) {
	r, err := e.lookup(id)
	if err != nil {
		return nil, err
	}
	return Explain(r, input), nil
}

// Describe returns the requirements text for the rule with the ID.
func (e *Engine) Describe(id string) (string, error) {
	r, err := e.lookup(id)
	if err != nil {
		return "", err
	}
	return Describe(r), nil
}

// Rule returns the rule with the given ID. The rule is shared, not copied;
// callers must not modify it.
func (e *Engine) Rule(id string) (Rule, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	r, ok := e.rules[id]
	return r, ok
}

// Keys returns the IDs of all registered rules, sorted.
func (e *Engine) Keys() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	ks := make([]string, 0, len(e.rules))
	for k := range e.rules {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}

// Remove deletes the rule with the ID, if present.
func (e *Engine) Remove(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.rules, id)
}

// RuleCount is the number of rules in the engine.
func (e *Engine) RuleCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.rules)
}

func (e *Engine) lookup(id string) (Rule, error) {
	e.mu.RLock()
	r, ok := e.rules[id]
	e.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRuleNotFound, id)
	}
	return r, nil
}
