package rules

import (
	"strings"

	"github.com/codewithboateng/pyreview/internal/pyast"
)

// DangerousFunctions flags unsafe deserialization and shell execution:
// yaml.load without a Loader, pickle.load(s), os.system, and subprocess
// calls with shell=True.
func DangerousFunctions() Rule {
	return Rule{
		Name:     "DangerousFunctions",
		Category: "Security",
		Priority: high,
		Impact:   "Unsafe deserialization or command injection risk.",
		Check: func(ctx *Context) {
			pyast.Walk(ctx.Tree, func(n *pyast.Node) bool {
				base, attr, ok := attrCall(n)
				if !ok {
					return true
				}
				if base == "yaml" && attr == "load" {
					hasLoader := false
					for _, kw := range n.Keywords {
						if strings.ToLower(kw.Name) == "loader" {
							hasLoader = true
						}
					}
					if !hasLoader {
						ctx.At(n.Line, "yaml.load() without Loader; use yaml.safe_load or specify a safe Loader.")
					}
				}
				if base == "pickle" && (attr == "load" || attr == "loads") {
					ctx.At(n.Line, "pickle.load(s) on untrusted data is unsafe.")
				}
				if base == "os" && attr == "system" {
					ctx.At(n.Line, "os.system used; prefer subprocess without shell=True.")
				}
				if base == "subprocess" {
					if kw := keywordArg(n, "shell"); kw != nil &&
						kw.Value != nil && kw.Value.Kind == pyast.Constant &&
						kw.Value.Lit.IsBool() && kw.Value.Lit.Bool {
						ctx.At(n.Line, "subprocess with shell=True; risk of injection.")
					}
				}
				return true
			})
		},
	}
}
