package rules

import (
	"strings"

	"github.com/codewithboateng/pyreview/internal/pyast"
)

// OpenEncoding requires an explicit encoding= when open() targets text
// mode. Binary modes are exempt.
func OpenEncoding() Rule {
	r := Rule{
		Name:     "OpenEncoding",
		Category: "Robustness",
		Priority: low,
		Impact:   "Implicit platform encoding can cause subtle bugs across environments.",
	}
	r.Hooks = map[pyast.Kind]Hook{
		pyast.Call: func(ctx *Context, n *pyast.Node) {
			if !isNameCall(n, "open") {
				return
			}
			if keywordArg(n, "encoding") != nil {
				return
			}
			mode := ""
			if len(n.CallArgs) >= 2 {
				if s, ok := constStr(n.CallArgs[1]); ok {
					mode = s
				}
			}
			textMode := mode == "" ||
				(strings.ContainsAny(mode[:1], "rwax") && !strings.Contains(mode, "b"))
			if textMode {
				ctx.Report("", "", n.Line, "",
					ctx.Prefixed("open() called for text mode without 'encoding='."))
			}
		},
	}
	return r
}
