package rules

import "github.com/codewithboateng/pyreview/internal/pyast"

// MutableDefaultArgs flags list/dict/set defaults, literal or constructed.
func MutableDefaultArgs() Rule {
	return Rule{
		Name:     "MutableDefaultArgs",
		Category: "Correctness",
		Priority: high,
		Impact:   "Shared mutable state across calls; surprising behavior.",
		Check: func(ctx *Context) {
			pyast.Walk(ctx.Tree, func(fn *pyast.Node) bool {
				if !fn.IsFunction() || fn.Args == nil {
					return true
				}
				for _, p := range fn.Args.Args {
					if isMutableDefault(p.Default) {
						ctx.At(fn.Line, `Mutable default in function "`+fn.Name+`".`)
					}
				}
				for _, p := range fn.Args.KwOnly {
					if isMutableDefault(p.Default) {
						ctx.At(fn.Line, `Mutable keyword-only default in function "`+fn.Name+`".`)
					}
				}
				return true
			})
		},
	}
}

func isMutableDefault(n *pyast.Node) bool {
	if n == nil {
		return false
	}
	switch n.Kind {
	case pyast.ListExpr, pyast.DictExpr, pyast.SetExpr:
		return true
	case pyast.Call:
		return isNameCall(n, "list") || isNameCall(n, "dict") || isNameCall(n, "set")
	}
	return false
}
