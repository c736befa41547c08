package rules

import "github.com/codewithboateng/pyreview/internal/pyast"

// ShadowBuiltins flags parameters and assigned variables whose names
// collide with built-in identifiers.
func ShadowBuiltins() Rule {
	return Rule{
		Name:      "ShadowBuiltins",
		Category:  "Style",
		Priority:  low,
		Impact:    "Confusion; possible bugs by clobbering built-ins.",
		Heuristic: true,
		Check: func(ctx *Context) {
			pyast.Walk(ctx.Tree, func(n *pyast.Node) bool {
				switch n.Kind {
				case pyast.FunctionDef:
					if n.Args != nil {
						for _, p := range n.Args.Args {
							if pyast.IsBuiltin(p.Name) {
								ctx.At(n.Line, `Parameter "`+p.Name+`" shadows built-in.`)
							}
						}
					}
				case pyast.Assign:
					for _, t := range n.Targets {
						if t.Kind == pyast.Name && pyast.IsBuiltin(t.Name) {
							ctx.At(n.Line, `Variable "`+t.Name+`" shadows built-in.`)
						}
					}
				}
				return true
			})
		},
	}
}
