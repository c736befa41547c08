package rules

import (
	"strconv"

	"github.com/codewithboateng/pyreview/internal/pyast"
)

// MagicLiterals flags numeric literals outside the small allow-set when
// they appear in comparisons, returns, or non-constant assignments.
// Literals inside range(...) calls are exempt, as are assignments whose
// targets are all ALL_CAPS names.
func MagicLiterals() Rule {
	r := Rule{
		Name:      "MagicLiterals",
		Category:  "Style",
		Priority:  low,
		Impact:    "Unexplained literals obscure intent; prefer named constants.",
		Heuristic: true,
	}
	check := func(ctx *Context, root *pyast.Node) {
		pyast.Walk(root, func(n *pyast.Node) bool {
			if !isMagicNum(n) {
				return true
			}
			if ctx.Parents.InsideCallTo(n, "range") {
				return true
			}
			ctx.Report("", "", n.Line, "",
				ctx.Prefixed("Magic literal '"+litText(n.Lit)+"' detected; use a named constant."))
			return true
		})
	}
	r.Hooks = map[pyast.Kind]Hook{
		pyast.Compare: func(ctx *Context, n *pyast.Node) { check(ctx, n) },
		pyast.Return:  func(ctx *Context, n *pyast.Node) { check(ctx, n) },
		pyast.Assign: func(ctx *Context, n *pyast.Node) {
			allConst := len(n.Targets) > 0
			for _, t := range n.Targets {
				if t.Kind != pyast.Name || !isAllUpper(t.Name) {
					allConst = false
				}
			}
			if !allConst {
				check(ctx, n)
			}
		},
	}
	return r
}

// The allow-set covers the common sentinels -1, 0, 1, and 2. A negative
// literal parses as unary minus over a positive constant, so -1 appears
// here as the constant 1 under a "-" operator and is already allowed.
func isMagicNum(n *pyast.Node) bool {
	if n.Kind != pyast.Constant || !n.Lit.IsNumber() {
		return false
	}
	switch n.Lit.Kind {
	case pyast.LitInt:
		v := n.Lit.Int
		return v != -1 && v != 0 && v != 1 && v != 2
	case pyast.LitFloat:
		f := n.Lit.Float
		return f != -1 && f != 0 && f != 1 && f != 2
	}
	return false
}

func litText(l *pyast.Literal) string {
	if l.Kind == pyast.LitInt {
		return strconv.FormatInt(l.Int, 10)
	}
	return strconv.FormatFloat(l.Float, 'g', -1, 64)
}
