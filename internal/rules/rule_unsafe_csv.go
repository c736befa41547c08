package rules

import "github.com/codewithboateng/pyreview/internal/pyast"

var csvDelims = map[string]bool{",": true, ";": true, "\t": true}

// UnsafeCSVParsing flags split() on common CSV delimiters.
func UnsafeCSVParsing() Rule {
	return Rule{
		Name:      "UnsafeCSVParsing",
		Category:  "Robustness",
		Priority:  medium,
		Impact:    "Delimiter-in-data breaks parsing; use csv module.",
		Heuristic: true,
		Check: func(ctx *Context) {
			pyast.Walk(ctx.Tree, func(n *pyast.Node) bool {
				if n.Kind != pyast.Call || n.Func == nil || n.Func.Kind != pyast.Attribute || n.Func.Name != "split" {
					return true
				}
				if len(n.CallArgs) == 0 {
					return true
				}
				if delim, ok := constStr(n.CallArgs[0]); ok && csvDelims[delim] {
					ctx.At(n.Line, "Possible CSV parsing via split('"+delim+"'); prefer csv module.")
				}
				return true
			})
		},
	}
}
