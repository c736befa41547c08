package rules

import "github.com/codewithboateng/pyreview/internal/pyast"

// IdentityVsEquality flags "is"/"is not" against constants and "=="/"!="
// against None or booleans.
func IdentityVsEquality() Rule {
	return Rule{
		Name:      "IdentityVsEquality",
		Category:  "Correctness",
		Priority:  medium,
		Impact:    "Wrong operator may yield incorrect logic.",
		Heuristic: true,
		Check: func(ctx *Context) {
			pyast.Walk(ctx.Tree, func(n *pyast.Node) bool {
				if n.Kind != pyast.Compare {
					return true
				}
				left := n.Left
				for i, op := range n.Ops {
					if i >= len(n.Comparators) {
						break
					}
					comp := n.Comparators[i]
					if op == pyast.OpIs || op == pyast.OpIsNot {
						checkIdentityOperand(ctx, n.Line, comp)
						checkIdentityOperand(ctx, n.Line, left)
					}
					if op == pyast.OpEq || op == pyast.OpNotEq {
						if isConstNone(comp) {
							ctx.At(n.Line, `Use "is (not) None" for None checks.`)
						}
						if comp.Kind == pyast.Constant && comp.Lit.IsBool() {
							ctx.At(n.Line, "Avoid == True/False; use the value directly.")
						}
						if isConstNone(left) {
							ctx.At(n.Line, `Use "is (not) None" for None checks.`)
						}
					}
				}
				return true
			})
		},
	}
}

func checkIdentityOperand(ctx *Context, line int, n *pyast.Node) {
	if n == nil || n.Kind != pyast.Constant {
		return
	}
	switch {
	case n.Lit.IsBool():
		ctx.At(line, `Avoid using "is True/False" in comparisons.`)
	case !n.Lit.IsNone():
		ctx.At(line, `Use "==" for value comparison; reserve "is" for None.`)
	}
}

func isConstNone(n *pyast.Node) bool {
	return n != nil && n.Kind == pyast.Constant && n.Lit.IsNone()
}
