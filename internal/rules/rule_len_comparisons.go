package rules

import "github.com/codewithboateng/pyreview/internal/pyast"

// LenComparisons flags len(x) compared against zero; truthiness reads better.
func LenComparisons() Rule {
	return Rule{
		Name:      "LenComparisons",
		Category:  "Style/Idioms",
		Priority:  low,
		Impact:    "Prefer truthiness checks for readability.",
		Heuristic: true,
		Check: func(ctx *Context) {
			pyast.Walk(ctx.Tree, func(n *pyast.Node) bool {
				if n.Kind != pyast.Compare || len(n.Comparators) != 1 || len(n.Ops) != 1 {
					return true
				}
				if !isNameCall(n.Left, "len") || len(n.Left.CallArgs) != 1 {
					return true
				}
				c := n.Comparators[0]
				if c.Kind == pyast.Constant && c.Lit.IsNumber() && isZeroLit(c.Lit) {
					ctx.At(n.Line, `Use "if x:" or "if not x:" instead of len(...) comparisons.`)
				}
				return true
			})
		},
	}
}

func isZeroLit(l *pyast.Literal) bool {
	switch l.Kind {
	case pyast.LitInt:
		return l.Int == 0
	case pyast.LitFloat:
		return l.Float == 0
	}
	return false
}
