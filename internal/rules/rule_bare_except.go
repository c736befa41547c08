package rules

import "github.com/codewithboateng/pyreview/internal/pyast"

// BareOrBroadExcept flags catch-all handlers and handlers that name
// Exception or BaseException, directly or inside a tuple.
func BareOrBroadExcept() Rule {
	return Rule{
		Name:     "BareOrBroadExcept",
		Category: "Error Handling",
		Priority: high,
		Impact:   "Bugs hidden by catching everything; harder debugging.",
		Check: func(ctx *Context) {
			pyast.Walk(ctx.Tree, func(n *pyast.Node) bool {
				if n.Kind != pyast.ExceptHandler {
					return true
				}
				switch {
				case n.ExcType == nil:
					ctx.At(n.Line, `Catch-all "except:" used. Catch specific exceptions.`)
				case n.ExcType.Kind == pyast.Name && isBroadExc(n.ExcType.Name):
					ctx.At(n.Line, "Overly broad exception handler ("+n.ExcType.Name+").")
				case n.ExcType.Kind == pyast.TupleExpr:
					for _, elt := range n.ExcType.Elts {
						if elt.Kind == pyast.Name && isBroadExc(elt.Name) {
							ctx.At(n.Line, "Overly broad exception handler ("+elt.Name+").")
						}
					}
				}
				return true
			})
		},
	}
}

func isBroadExc(name string) bool {
	return name == "Exception" || name == "BaseException"
}
