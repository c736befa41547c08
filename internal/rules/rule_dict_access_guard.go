package rules

import "github.com/codewithboateng/pyreview/internal/pyast"

// DictAccessGuard flags subscript access on plain names; .get() or a
// membership check avoids KeyError.
func DictAccessGuard() Rule {
	return Rule{
		Name:      "DictAccessGuard",
		Category:  "Robustness",
		Priority:  medium,
		Impact:    "Possible KeyError on missing keys.",
		Heuristic: true,
		Check: func(ctx *Context) {
			pyast.Walk(ctx.Tree, func(n *pyast.Node) bool {
				if n.Kind == pyast.Subscript && n.Value != nil && n.Value.Kind == pyast.Name {
					ctx.At(n.Line, `Key access on "`+n.Value.Name+`" without guard; prefer .get() or "in" checks or try/except.`)
				}
				return true
			})
		},
	}
}
