package rules

import "github.com/codewithboateng/pyreview/internal/pyast"

// EmptyExceptBody flags except blocks that swallow errors with nothing
// but pass, ellipsis, or a bare string literal.
func EmptyExceptBody() Rule {
	r := Rule{
		Name:     "EmptyExceptBody",
		Category: "Error Handling",
		Priority: high,
		Impact:   "Silently ignoring errors hides failures and complicates debugging.",
	}
	r.Hooks = map[pyast.Kind]Hook{
		pyast.ExceptHandler: func(ctx *Context, n *pyast.Node) {
			if len(n.Body) == 0 {
				ctx.Report("", "", n.Line, "", ctx.Prefixed("Empty 'except' block; handle or re-raise."))
				return
			}
			for _, s := range n.Body {
				if !isTrivialStmt(s) {
					return
				}
			}
			ctx.Report("", "", n.Line, "",
				ctx.Prefixed("'except' body does nothing (pass/ellipsis/docstring). Avoid swallowing exceptions."))
		},
	}
	return r
}

func isTrivialStmt(s *pyast.Node) bool {
	if s.Kind == pyast.Pass {
		return true
	}
	if s.Kind == pyast.ExprStmt && s.Value != nil && s.Value.Kind == pyast.Constant {
		return s.Value.Lit.Kind == pyast.LitEllipsis || s.Value.Lit.IsStr()
	}
	return false
}
