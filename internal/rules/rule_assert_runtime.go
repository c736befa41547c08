package rules

import "github.com/codewithboateng/pyreview/internal/pyast"

// AssertForRuntime flags assert statements used for runtime validation.
func AssertForRuntime() Rule {
	return Rule{
		Name:     "AssertForRuntime",
		Category: "Correctness",
		Priority: medium,
		Impact:   "Asserts can be stripped with -O; critical checks may disappear.",
		Check: func(ctx *Context) {
			pyast.Walk(ctx.Tree, func(n *pyast.Node) bool {
				if n.Kind == pyast.Assert {
					ctx.At(n.Line, "Avoid assert for runtime validation; raise exceptions instead.")
				}
				return true
			})
		},
	}
}
