package rules

import "github.com/codewithboateng/pyreview/internal/pyast"

// WildcardImports flags `from x import *`.
func WildcardImports() Rule {
	return Rule{
		Name:      "WildcardImports",
		Category:  "Style/Maintainability",
		Priority:  low,
		Impact:    "Polluted namespace; unclear origins.",
		Heuristic: true,
		Check: func(ctx *Context) {
			pyast.Walk(ctx.Tree, func(n *pyast.Node) bool {
				if n.Kind != pyast.ImportFrom {
					return true
				}
				for _, a := range n.Names {
					if a.Name == "*" {
						ctx.At(n.Line, `Wildcard import from "`+n.Module+`". Prefer explicit imports.`)
						break
					}
				}
				return true
			})
		},
	}
}
