package rules

import "github.com/codewithboateng/pyreview/internal/pyast"

// ExceptionChaining flags raises inside except blocks that drop the
// original context: a new exception without "from", or "from None".
func ExceptionChaining() Rule {
	r := Rule{
		Name:     "ExceptionChaining",
		Category: "Error Handling",
		Priority: medium,
		Impact:   "Lost traceback/context makes debugging and triage harder.",
	}
	r.Hooks = map[pyast.Kind]Hook{
		pyast.ExceptHandler: func(ctx *Context, n *pyast.Node) {
			for _, sub := range n.Body {
				if sub.Kind != pyast.Raise || sub.Exc == nil {
					continue
				}
				if sub.Cause == nil {
					ctx.Report("Error Handling", "", sub.Line, "",
						ctx.Prefixed("New exception raised in 'except' without 'from' to preserve context."))
				} else if isConstNone(sub.Cause) {
					ctx.Report("Error Handling", "", sub.Line, "",
						ctx.Prefixed("Exception raised 'from None' suppresses chaining; prefer 'from e' or bare re-raise."))
				}
			}
		},
	}
	return r
}
