package rules

import "github.com/codewithboateng/pyreview/internal/pyast"

// NonPythonicLoops flags range(len(...)) iteration and looping over
// dict.keys().
func NonPythonicLoops() Rule {
	return Rule{
		Name:      "NonPythonicLoops",
		Category:  "Style/Idioms",
		Priority:  low,
		Impact:    "Harder to read; potential for index errors.",
		Heuristic: true,
		Check: func(ctx *Context) {
			pyast.Walk(ctx.Tree, func(n *pyast.Node) bool {
				if n.Kind != pyast.For {
					return true
				}
				it := n.Iter
				if isNameCall(it, "range") && len(it.CallArgs) == 1 && isNameCall(it.CallArgs[0], "len") {
					ctx.At(n.Line, "Use direct iteration or enumerate() instead of range(len(...)).")
				}
				if it != nil && it.Kind == pyast.Call && it.Func != nil &&
					it.Func.Kind == pyast.Attribute && it.Func.Name == "keys" {
					ctx.At(n.Line, "Iterating dict.keys(); consider dict.items() if values are used.")
				}
				return true
			})
		},
	}
}
