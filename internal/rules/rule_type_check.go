package rules

import "github.com/codewithboateng/pyreview/internal/pyast"

// TypeCheck flags type(x) == T style comparisons.
func TypeCheck() Rule {
	return Rule{
		Name:     "TypeCheck",
		Category: "Correctness",
		Priority: medium,
		Impact:   "type(x)==T is brittle; prefer isinstance().",
		Check: func(ctx *Context) {
			pyast.Walk(ctx.Tree, func(n *pyast.Node) bool {
				if n.Kind != pyast.Compare || !isNameCall(n.Left, "type") {
					return true
				}
				for _, op := range n.Ops {
					switch op {
					case pyast.OpEq, pyast.OpNotEq, pyast.OpIs, pyast.OpIsNot:
						ctx.At(n.Line, "Use isinstance(x, T) instead of type(x) == T.")
						return true
					}
				}
				return true
			})
		},
	}
}
