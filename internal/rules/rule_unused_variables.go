package rules

import (
	"strings"

	"github.com/codewithboateng/pyreview/internal/pyast"
)

// UnusedVariables flags stored names never loaded, whole-module scope.
// Underscore-prefixed names are intentionally unused and skipped.
func UnusedVariables() Rule {
	return Rule{
		Name:      "UnusedVariables",
		Category:  "Code Cleanliness",
		Priority:  low,
		Impact:    "Possible mistakes; maintainability issues.",
		Heuristic: true,
		Check: func(ctx *Context) {
			assigned := map[string]int{} // first store line
			var order []string
			used := map[string]bool{}

			pyast.Walk(ctx.Tree, func(n *pyast.Node) bool {
				if n.Kind != pyast.Name {
					return true
				}
				switch n.Ctx {
				case pyast.Store:
					if _, seen := assigned[n.Name]; !seen {
						assigned[n.Name] = n.Line
						order = append(order, n.Name)
					}
				case pyast.Load:
					used[n.Name] = true
				}
				return true
			})

			for _, name := range order {
				if strings.HasPrefix(name, "_") {
					continue
				}
				if !used[name] {
					ctx.At(assigned[name], `Variable "`+name+`" assigned but not used.`)
				}
			}
		},
	}
}
