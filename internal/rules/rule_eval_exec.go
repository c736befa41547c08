package rules

import "github.com/codewithboateng/pyreview/internal/pyast"

// EvalExecUse flags calls to eval() and exec().
func EvalExecUse() Rule {
	return Rule{
		Name:     "EvalExecUse",
		Category: "Security",
		Priority: high,
		Impact:   "Arbitrary code execution risk.",
		Check: func(ctx *Context) {
			pyast.Walk(ctx.Tree, func(n *pyast.Node) bool {
				if isNameCall(n, "eval") || isNameCall(n, "exec") {
					ctx.At(n.Line, "Use of "+n.Func.Name+"(). Avoid on untrusted input.")
				}
				return true
			})
		},
	}
}
