package rules

import "strings"

// TodoComments flags TODO/FIXME markers anywhere in the raw text.
func TodoComments() Rule {
	return Rule{
		Name:      "TodoComments",
		Category:  "Process",
		Priority:  low,
		Impact:    "Outstanding work items; ensure tracking.",
		Heuristic: true,
		Check: func(ctx *Context) {
			for i, line := range ctx.Lines {
				up := strings.ToUpper(line)
				if strings.Contains(up, "TODO") || strings.Contains(up, "FIXME") {
					ctx.At(i+1, "Found TODO/FIXME. Confirm ticket/issue reference or resolve.")
				}
			}
		},
	}
}
