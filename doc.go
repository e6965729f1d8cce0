// Package rulekit provides a small composable rule-tree engine for
// validating strings, such as passwords or user names.
//
// A rule tree is built from a closed set of node variants: the composites
// And and Or, and the leaves MinLength, ContainsCharacter and ContainsAnyOf.
// Composites nest to any depth, so a complete policy is a single Rule value.
//
// Typical use is as follows:
//
//  1. Build a rule tree from the node types, directly or with the New*
//     constructors
//  2. Test inputs against it with Evaluate, or with Explain to see the
//     outcome of every node
//  3. Render it for users with Describe, or for debugging with Tree
//
// Algorithms over a tree are visitors: one method per rule variant,
// dispatched by Accept (no per-call input) or AcceptInput (one input value
// of the algorithm's choosing). A new algorithm is a new visitor and touches
// no node code; a new node variant adds a method to the visitor interfaces,
// which breaks every existing visitor at compile time until it handles the
// new case. That trade-off is deliberate: the node set is closed, the
// algorithm set is open.
//
// # Rule Ownership and Modification
//
// The calling application is responsible for managing the lifecycle of
// rules. Specifically, this means:
//
//  1. You must not modify a rule tree after construction.
//  2. A rule must not be a child rule of more than one parent.
//  3. A rule must never appear as its own descendant.
//
// Within those rules, a tree is safe to evaluate and describe concurrently
// from any number of goroutines; each call keeps its own traversal state.
// If you need to change a policy, build a new tree and swap the reference
// (or replace it in an Engine, which registers named rules behind a lock).
//
// Evaluate and Describe are total: any syntactically valid tree and any
// input produce a result. Degenerate parameters have defined semantics (an
// empty And is satisfied, an empty Or and an empty ContainsAnyOf are not, a
// negative MinLength always passes). Use Valid to reject such trees at
// construction time instead.
package rulekit
