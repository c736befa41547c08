package rules

import (
	"strings"

	"github.com/codewithboateng/pyreview/internal/pyast"
)

// UnusedImports flags imported names never loaded anywhere in the module.
func UnusedImports() Rule {
	return Rule{
		Name:      "UnusedImports",
		Category:  "Code Cleanliness",
		Priority:  low,
		Impact:    "Dead code; slower imports; namespace clutter.",
		Heuristic: true,
		Check: func(ctx *Context) {
			imported := map[string]int{}
			var order []string
			used := map[string]bool{}

			record := func(name string, line int) {
				if _, seen := imported[name]; !seen {
					order = append(order, name)
				}
				imported[name] = line
			}

			pyast.Walk(ctx.Tree, func(n *pyast.Node) bool {
				switch n.Kind {
				case pyast.Import:
					for _, a := range n.Names {
						name := a.Asname
						if name == "" {
							name = strings.SplitN(a.Name, ".", 2)[0]
						}
						record(name, n.Line)
					}
				case pyast.ImportFrom:
					if n.Module == "__future__" {
						return true
					}
					for _, a := range n.Names {
						if a.Name == "*" {
							continue
						}
						name := a.Asname
						if name == "" {
							name = a.Name
						}
						record(name, n.Line)
					}
				case pyast.Name:
					if n.Ctx == pyast.Load {
						used[n.Name] = true
					}
				}
				return true
			})

			for _, name := range order {
				if !used[name] {
					ctx.At(imported[name], `Imported "`+name+`" not used.`)
				}
			}
		},
	}
}
