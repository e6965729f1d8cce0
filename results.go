package rulekit

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Result of evaluating one rule against an input.
type Result struct {
	// The Rule that was evaluated
	Rule Rule

	// Whether the rule is satisfied by the input. For composites this is
	// the roll-up of the child results: all children for And, at least
	// one for Or.
	Pass bool

	// Results of evaluating the child rules, in declared order. Empty
	// for leaf rules.
	Results []*Result
}

// Explain evaluates the rule tree against the input, like Evaluate, but
// returns the outcome of every node rather than the root boolean alone. No
// short-circuiting takes place: every node in the tree is evaluated so the
// result tree is complete.
//
// Explain(r, s).Pass always equals Evaluate(r, s).
func Explain(r Rule, input string) *Result {
	return AcceptInput[string, *Result](r, explainer{}, input)
}

// explainer is the visitor behind Explain.
type explainer struct{}

func (e explainer) VisitAnd(r *And, input string) *Result {
	res := &Result{Rule: r, Pass: true, Results: make([]*Result, 0, len(r.Rules))}
	for _, c := range r.Rules {
		cr := AcceptInput[string, *Result](c, e, input)
		if !cr.Pass {
			res.Pass = false
		}
		res.Results = append(res.Results, cr)
	}
	return res
}

func (e explainer) VisitOr(r *Or, input string) *Result {
	res := &Result{Rule: r, Pass: false, Results: make([]*Result, 0, len(r.Rules))}
	for _, c := range r.Rules {
		cr := AcceptInput[string, *Result](c, e, input)
		if cr.Pass {
			res.Pass = true
		}
		res.Results = append(res.Results, cr)
	}
	return res
}

func (e explainer) VisitMinLength(r *MinLength, input string) *Result {
	return &Result{Rule: r, Pass: satisfier{}.VisitMinLength(r, input)}
}

func (e explainer) VisitContainsCharacter(r *ContainsCharacter, input string) *Result {
	return &Result{Rule: r, Pass: satisfier{}.VisitContainsCharacter(r, input)}
}

func (e explainer) VisitContainsAnyOf(r *ContainsAnyOf, input string) *Result {
	return &Result{Rule: r, Pass: satisfier{}.VisitContainsAnyOf(r, input)}
}

// String produces a table of all the rules evaluated (including child rules)
// and the result for each.
func (u *Result) String() string {
	tw := table.NewWriter()
	tw.SetTitle("\nRULEKIT RESULT SUMMARY\n")
	tw.AppendHeader(table.Row{"\nRule", "Pass/\nFail", "Chil-\ndren"})

	for _, r := range u.resultsToRows(0) {
		tw.AppendRow(r)
	}

	style := table.StyleLight
	style.Format.Header = text.FormatDefault
	tw.SetStyle(style)
	return tw.Render()
}

func boolString(b bool) string {
	switch b {
	case true:
		return "PASS"
	default:
		return "FAIL"
	}
}

// resultsToRows transforms the Result data to a list of rows
// for inclusion in a table.Writer table.
func (u *Result) resultsToRows(n int) []table.Row {
	rows := []table.Row{}
	indent := strings.Repeat("  ", n)

	row := table.Row{
		fmt.Sprintf("%s%s", indent, u.Rule),
		boolString(u.Pass),
		fmt.Sprintf("%d", len(u.Results)),
	}

	rows = append(rows, row)
	for _, cd := range u.Results {
		rows = append(rows, cd.resultsToRows(n+1)...)
	}
	return rows
}
