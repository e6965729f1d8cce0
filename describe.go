package rulekit

import (
	"fmt"
	"strings"
)

// Describe renders the rule tree as indented human-readable text describing
// what an input must satisfy. Each node produces exactly one line, parent
// before children, children in declared order. A line at nesting level L is
// indented by L two-space units, the first of which is the "- " list marker
// (root lines carry no marker). Every line is newline-terminated.
//
// Composites with no children emit only their heading line; the vacuous
// true/false semantics of Evaluate are not spelled out in the text.
//
// The output is stable and whitespace-exact, suitable for display to users.
func Describe(r Rule) string {
	var sb strings.Builder
	AcceptInput[describeContext, struct{}](r, describer{}, describeContext{out: &sb})
	return sb.String()
}

// describeContext carries the traversal state for Describe. It is passed by
// value: each recursive descent copies the context with level+1, so the
// level is local to the recursion frame, while the builder pointer is shared
// by the whole traversal. A context lives for exactly one Describe call.
type describeContext struct {
	out   *strings.Builder
	level int
}

// line writes one heading at the context's nesting level.
func (ctx describeContext) line(text string) {
	if ctx.level > 0 {
		ctx.out.WriteString(strings.Repeat("  ", ctx.level-1))
		ctx.out.WriteString("- ")
	}
	ctx.out.WriteString(text)
	ctx.out.WriteString("\n")
}

// child returns the context for the next nesting level, sharing the buffer.
func (ctx describeContext) child() describeContext {
	return describeContext{out: ctx.out, level: ctx.level + 1}
}

// describer is the visitor behind Describe.
type describer struct{}

func (d describer) VisitAnd(r *And, ctx describeContext) struct{} {
	ctx.line("All the following conditions must be true:")
	for _, c := range r.Rules {
		AcceptInput[describeContext, struct{}](c, d, ctx.child())
	}
	return struct{}{}
}

func (d describer) VisitOr(r *Or, ctx describeContext) struct{} {
	ctx.line("One of the following conditions must be true:")
	for _, c := range r.Rules {
		AcceptInput[describeContext, struct{}](c, d, ctx.child())
	}
	return struct{}{}
}

func (d describer) VisitMinLength(r *MinLength, ctx describeContext) struct{} {
	ctx.line(fmt.Sprintf("The value must have at least %d characters", r.Min))
	return struct{}{}
}

func (d describer) VisitContainsCharacter(r *ContainsCharacter, ctx describeContext) struct{} {
	ctx.line(fmt.Sprintf("The value must contain the character %c", r.Char))
	return struct{}{}
}

func (d describer) VisitContainsAnyOf(r *ContainsAnyOf, ctx describeContext) struct{} {
	ctx.line("The value must contain at least one of these characters: " + string(r.Chars))
	return struct{}{}
}
