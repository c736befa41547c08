package rules

import (
	"fmt"

	"github.com/codewithboateng/pyreview/internal/pyast"
)

// Complexity scores each function, async function, and class with a
// cyclomatic-like count plus a line-count measure and flags definitions
// exceeding either threshold.
func Complexity(maxComplexity, maxLines int) Rule {
	r := Rule{
		Name:     "Complexity",
		Category: "Maintainability",
		Priority: low,
		Impact:   "High complexity/size reduces readability and increases bug risk.",
	}
	check := func(ctx *Context, n *pyast.Node, kind string) {
		cplx := complexityScore(n)
		loc := 0
		if n.Line > 0 && n.EndLine >= n.Line {
			loc = n.EndLine - n.Line + 1
		}
		if cplx > maxComplexity || loc > maxLines {
			ctx.Report("", "", n.Line, "", ctx.Prefixed(fmt.Sprintf(
				"%s '%s' too complex (C=%d, LOC=%d); thresholds: C>%d or LOC>%d.",
				kind, n.Name, cplx, loc, maxComplexity, maxLines)))
		}
	}
	r.Hooks = map[pyast.Kind]Hook{
		pyast.FunctionDef:      func(ctx *Context, n *pyast.Node) { check(ctx, n, "Function") },
		pyast.AsyncFunctionDef: func(ctx *Context, n *pyast.Node) { check(ctx, n, "Async function") },
		pyast.ClassDef:         func(ctx *Context, n *pyast.Node) { check(ctx, n, "Class") },
	}
	return r
}

// complexityScore starts at 1 and adds one per branching or scoped
// construct anywhere in the subtree.
func complexityScore(root *pyast.Node) int {
	score := 1
	pyast.Walk(root, func(n *pyast.Node) bool {
		switch n.Kind {
		case pyast.If, pyast.For, pyast.AsyncFor, pyast.While, pyast.Try,
			pyast.With, pyast.AsyncWith, pyast.BoolOp, pyast.IfExp,
			pyast.Comprehension, pyast.Match:
			score++
		}
		return true
	})
	return score
}
