package rules

import "github.com/codewithboateng/pyreview/internal/pyast"

// PotentialStringCastNeeded flags len(name) compared against a small
// integer constant, a pattern that breaks when the value is not a string.
func PotentialStringCastNeeded() Rule {
	return Rule{
		Name:      "PotentialStringCastNeeded",
		Category:  "Correctness",
		Priority:  medium,
		Impact:    "TypeError/logic bug if value not str.",
		Heuristic: true,
		Check: func(ctx *Context) {
			pyast.Walk(ctx.Tree, func(n *pyast.Node) bool {
				if n.Kind != pyast.Compare || !isNameCall(n.Left, "len") || len(n.Left.CallArgs) == 0 {
					return true
				}
				arg := n.Left.CallArgs[0]
				argName := ""
				switch arg.Kind {
				case pyast.Name:
					argName = arg.Name
				case pyast.Attribute:
					argName = arg.Name
				}
				if argName == "" {
					return true
				}
				for _, c := range n.Comparators {
					if c.Kind == pyast.Constant && c.Lit.Kind == pyast.LitInt && c.Lit.Int >= 2 && c.Lit.Int <= 64 {
						ctx.At(n.Line, "len("+argName+`) compared to constant. Ensure "`+argName+`" is str (cast with str() upstream if needed).`)
						break
					}
				}
				return true
			})
		},
	}
}
