package rules

import (
	"strings"

	"github.com/codewithboateng/pyreview/internal/pyast"
)

// CircularImports flags import shapes commonly used to work around
// import cycles: dotted or relative imports inside function bodies, and
// imports guarded by TYPE_CHECKING.
func CircularImports() Rule {
	r := Rule{
		Name:      "CircularImports",
		Category:  "Maintainability",
		Priority:  medium,
		Impact:    "Likely circular-import workaround; consider refactoring shared types or moving imports.",
		Heuristic: true,
	}
	r.Hooks = map[pyast.Kind]Hook{
		pyast.Import: func(ctx *Context, n *pyast.Node) {
			if ctx.Parents.Enclosing(n, pyast.FunctionDef, pyast.AsyncFunctionDef) == nil {
				return
			}
			for _, a := range n.Names {
				if strings.Contains(a.Name, ".") {
					ctx.Report("", "", n.Line, "",
						ctx.Prefixed("Local-module import inside a function suggests a circular import workaround."))
					break
				}
			}
		},
		pyast.ImportFrom: func(ctx *Context, n *pyast.Node) {
			inFunc := ctx.Parents.Enclosing(n, pyast.FunctionDef, pyast.AsyncFunctionDef) != nil
			if inFunc && (n.Level > 0 || strings.Contains(n.Module, ".")) {
				ctx.Report("", "", n.Line, "",
					ctx.Prefixed("Relative/inner import inside a function suggests a circular import workaround."))
			}
			if guard := ctx.Parents.Enclosing(n, pyast.If); guard != nil {
				if t := guard.Test; t != nil && t.Kind == pyast.Attribute && t.Name == "TYPE_CHECKING" {
					ctx.Report("", "", n.Line, "",
						ctx.Prefixed("Import under TYPE_CHECKING likely indicates a type-only import to avoid cycles."))
				}
			}
		},
	}
	return r
}
