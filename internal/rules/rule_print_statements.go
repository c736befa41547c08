package rules

import "github.com/codewithboateng/pyreview/internal/pyast"

// PrintStatements flags print() calls.
func PrintStatements() Rule {
	return Rule{
		Name:     "PrintStatements",
		Category: "Code Cleanliness",
		Priority: low,
		Impact:   "Prefer logging or returning values.",
		Check: func(ctx *Context) {
			pyast.Walk(ctx.Tree, func(n *pyast.Node) bool {
				if isNameCall(n, "print") {
					ctx.At(n.Line, "print() used; consider logging or returning values instead.")
				}
				return true
			})
		},
	}
}
