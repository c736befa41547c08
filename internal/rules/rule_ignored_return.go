package rules

import (
	"strings"

	"github.com/codewithboateng/pyreview/internal/pyast"
)

var suspectPrefixes = []string{
	"get", "find", "compute", "calc", "build", "create",
	"search", "match", "read", "load", "parse", "json",
}

var sideEffecty = map[string]bool{
	"print": true, "write": true, "writelines": true, "append": true,
	"extend": true, "add": true, "update": true, "setdefault": true,
	"logger": true, "log": true, "info": true, "warning": true,
	"error": true, "debug": true, "critical": true,
}

// IgnoredReturnValue flags expression statements that call a function
// whose name suggests it produces a value, discarding the result.
func IgnoredReturnValue() Rule {
	r := Rule{
		Name:     "IgnoredReturnValue",
		Category: "Correctness",
		Priority: low,
		Impact:   "Ignoring return values can hide bugs and make code harder to reason about.",
	}
	r.Hooks = map[pyast.Kind]Hook{
		pyast.ExprStmt: func(ctx *Context, n *pyast.Node) {
			name := calleeName(n.Value)
			if name == "" {
				return
			}
			lower := strings.ToLower(name)
			if sideEffecty[lower] {
				return
			}
			for _, p := range suspectPrefixes {
				if strings.HasPrefix(lower, p) {
					ctx.Report("", "", n.Line, "",
						ctx.Prefixed("Return value from '"+name+"()' is ignored; assign or use it."))
					return
				}
			}
		},
	}
	return r
}
