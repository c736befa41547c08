package rules

import (
	"strings"

	"github.com/codewithboateng/pyreview/internal/pyast"
)

// MissingDocstrings requires docstrings on the module and on public
// functions and classes. Public means no leading underscore.
func MissingDocstrings() Rule {
	r := Rule{
		Name:     "MissingDocstrings",
		Category: "Style/Maintainability",
		Priority: low,
		Impact:   "Missing docstrings hurt discoverability and maintenance.",
	}
	public := func(name string) bool { return !strings.HasPrefix(name, "_") }
	r.Hooks = map[pyast.Kind]Hook{
		pyast.Module: func(ctx *Context, n *pyast.Node) {
			if !pyast.HasDocstring(n.Body) {
				ctx.Report("", "", 1, "", ctx.Prefixed("Module missing top-level docstring."))
			}
		},
		pyast.FunctionDef: func(ctx *Context, n *pyast.Node) {
			if public(n.Name) && !pyast.HasDocstring(n.Body) {
				ctx.Report("", "", n.Line, "", ctx.Prefixed("Public function '"+n.Name+"' missing docstring."))
			}
		},
		pyast.AsyncFunctionDef: func(ctx *Context, n *pyast.Node) {
			if public(n.Name) && !pyast.HasDocstring(n.Body) {
				ctx.Report("", "", n.Line, "", ctx.Prefixed("Public async function '"+n.Name+"' missing docstring."))
			}
		},
		pyast.ClassDef: func(ctx *Context, n *pyast.Node) {
			if public(n.Name) && !pyast.HasDocstring(n.Body) {
				ctx.Report("", "", n.Line, "", ctx.Prefixed("Public class '"+n.Name+"' missing docstring."))
			}
		},
	}
	return r
}
