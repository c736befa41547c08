package rules

import (
	"strings"
	"unicode"

	"github.com/codewithboateng/pyreview/internal/pyast"
)

// FStringMissing flags string literals containing {placeholder}-looking
// text that are neither f-strings nor .format() receivers.
func FStringMissing() Rule {
	return Rule{
		Name:      "FStringMissing",
		Category:  "Style",
		Priority:  low,
		Impact:    "String likely intended as f-string; confusing output.",
		Heuristic: true,
		Check: func(ctx *Context) {
			formatted := map[*pyast.Node]bool{}
			pyast.Walk(ctx.Tree, func(n *pyast.Node) bool {
				if n.Kind == pyast.Call && n.Func != nil && n.Func.Kind == pyast.Attribute && n.Func.Name == "format" {
					if recv := n.Func.Value; recv != nil && recv.Kind == pyast.Constant && recv.Lit.IsStr() {
						formatted[recv] = true
					}
				}
				return true
			})
			pyast.Walk(ctx.Tree, func(n *pyast.Node) bool {
				if n.Kind != pyast.Constant || !n.Lit.IsStr() || formatted[n] {
					return true
				}
				s := n.Lit.Str
				if !strings.Contains(s, "{") || !strings.Contains(s, "}") ||
					strings.Contains(s, "{{") || strings.Contains(s, "}}") {
					return true
				}
				lo := strings.Index(s, "{")
				hi := strings.Index(s, "}")
				if lo+1 > hi {
					return true
				}
				inside := s[lo+1 : hi]
				for _, r := range inside {
					if unicode.IsLetter(r) {
						ctx.At(n.Line, "String contains { } but is not an f-string (missing f-prefix or .format).")
						break
					}
				}
				return true
			})
		},
	}
}
