package rules

import (
	"strings"

	"github.com/codewithboateng/pyreview/internal/issue"
	"github.com/codewithboateng/pyreview/internal/pyast"
)

// CheckFunc is a whole-file rule body. It inspects ctx.Tree and ctx.Lines
// and records findings through the ctx helpers.
type CheckFunc func(ctx *Context)

// Hook handles one node kind during the shared traversal.
type Hook func(ctx *Context, n *pyast.Node)

// Rule is a single diagnostic. A rule supplies either Check (whole-file
// style) or Hooks (per-node dispatch); Hooks run in tree pre-order.
type Rule struct {
	Name      string
	Category  string
	Priority  string
	Impact    string
	Heuristic bool

	Check CheckFunc
	Hooks map[pyast.Kind]Hook
}

// Context carries one file's parsed state through a rule execution and
// accumulates the findings the rule reports.
type Context struct {
	File    string
	Source  string
	Lines   []string // raw source split on newlines, index 0 = line 1
	Tree    *pyast.Node
	Parents pyast.ParentMap

	Settings Settings

	rule   *Rule
	issues []issue.Issue
}

// Run executes the rule against ctx and returns its findings. A nil tree
// yields no findings for every rule, including the text scanners.
func (r *Rule) Run(ctx *Context) []issue.Issue {
	if ctx.Tree == nil {
		return nil
	}
	ctx.rule = r
	ctx.issues = nil
	if r.Check != nil {
		r.Check(ctx)
	} else if len(r.Hooks) > 0 {
		pyast.Walk(ctx.Tree, func(n *pyast.Node) bool {
			if h, ok := r.Hooks[n.Kind]; ok {
				h(ctx, n)
			}
			return true
		})
	}
	out := ctx.issues
	ctx.issues = nil
	ctx.rule = nil
	return out
}

// At records a finding on a single line using the rule's default
// category, priority, and impact.
func (c *Context) At(line int, msg string) {
	c.add(issue.FormatLine(line), msg)
}

// AtRange records a finding spanning start through end.
func (c *Context) AtRange(start, end int, msg string) {
	c.add(issue.FormatRange(start, end), msg)
}

// AtLines records a finding over a set of lines, deduplicated and sorted.
func (c *Context) AtLines(lines []int, msg string) {
	c.add(issue.FormatSet(lines), msg)
}

// Report records a finding with explicit fields; empty category,
// priority, or impact fall back to the rule's defaults.
func (c *Context) Report(category, priority string, line int, impact, msg string) {
	if category == "" {
		category = c.rule.Category
	}
	if priority == "" {
		priority = c.rule.Priority
	}
	if impact == "" {
		impact = c.rule.Impact
	}
	c.issues = append(c.issues, issue.Issue{
		Category:        category,
		Priority:        priority,
		ImpactedLines:   issue.FormatLine(line),
		PotentialImpact: impact,
		Description:     msg,
	})
}

func (c *Context) add(lines, msg string) {
	c.issues = append(c.issues, issue.Issue{
		Category:        c.rule.Category,
		Priority:        c.rule.Priority,
		ImpactedLines:   lines,
		PotentialImpact: c.rule.Impact,
		Description:     msg,
	})
}

// Prefixed formats a message the way the hook-style rules word theirs,
// leading with the analyzed file name.
func (c *Context) Prefixed(msg string) string {
	return c.File + ": " + msg
}

// NewContext builds the per-file execution state shared by every rule.
func NewContext(file, source string, tree *pyast.Node, s Settings) *Context {
	ctx := &Context{
		File:     file,
		Source:   source,
		Lines:    strings.Split(source, "\n"),
		Tree:     tree,
		Settings: s,
	}
	if tree != nil {
		ctx.Parents = pyast.BuildParents(tree)
	}
	return ctx
}
