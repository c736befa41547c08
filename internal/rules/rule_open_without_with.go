package rules

import "github.com/codewithboateng/pyreview/internal/pyast"

// OpenWithoutWith flags open() calls that are not the context expression
// of a with statement. Coverage is tracked by node identity.
func OpenWithoutWith() Rule {
	return Rule{
		Name:     "OpenWithoutWith",
		Category: "Resource Management",
		Priority: medium,
		Impact:   "Resource leaks; file handles not closed on error.",
		Check: func(ctx *Context) {
			covered := map[*pyast.Node]bool{}
			pyast.Walk(ctx.Tree, func(n *pyast.Node) bool {
				if n.Kind != pyast.With && n.Kind != pyast.AsyncWith {
					return true
				}
				for _, item := range n.Items {
					if isOpenCall(item.Value) {
						covered[item.Value] = true
					}
				}
				return true
			})
			pyast.Walk(ctx.Tree, func(n *pyast.Node) bool {
				if isOpenCall(n) && !covered[n] {
					ctx.At(n.Line, "Use 'with open(...)' to ensure closure.")
				}
				return true
			})
		},
	}
}

func isOpenCall(n *pyast.Node) bool {
	if n == nil || n.Kind != pyast.Call || n.Func == nil {
		return false
	}
	switch n.Func.Kind {
	case pyast.Name:
		return n.Func.Name == "open"
	case pyast.Attribute:
		return n.Func.Name == "open"
	}
	return false
}
