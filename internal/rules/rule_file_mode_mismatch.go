package rules

import (
	"strings"

	"github.com/codewithboateng/pyreview/internal/pyast"
)

var (
	readMethods  = map[string]bool{"read": true, "readline": true, "readlines": true}
	writeMethods = map[string]bool{"write": true, "writelines": true}
)

// FileModeMismatch tracks variables bound to open() calls and flags
// read-mode handles that are written or write-mode handles that are read.
func FileModeMismatch() Rule {
	return Rule{
		Name:      "FileModeMismatch",
		Category:  "Resource Management",
		Priority:  high,
		Impact:    "Read/write mismatch likely bugs.",
		Heuristic: true,
		Check:     checkFileModeMismatch,
	}
}

func checkFileModeMismatch(ctx *Context) {
	modes := map[string]string{} // handle variable -> declared mode
	var order []string           // first-binding order keeps output stable
	reads := map[string][]int{}
	writes := map[string][]int{}

	bind := func(name string, call *pyast.Node) {
		mode := openMode(call)
		if mode == "" {
			mode = "r"
		}
		if _, seen := modes[name]; !seen {
			order = append(order, name)
		}
		modes[name] = mode
	}

	pyast.Walk(ctx.Tree, func(n *pyast.Node) bool {
		switch n.Kind {
		case pyast.Assign:
			if isNameCall(n.Value, "open") {
				for _, t := range n.Targets {
					if t.Kind == pyast.Name {
						bind(t.Name, n.Value)
					}
				}
			}
		case pyast.With, pyast.AsyncWith:
			for _, item := range n.Items {
				if isNameCall(item.Value, "open") && item.Target != nil && item.Target.Kind == pyast.Name {
					bind(item.Target.Name, item.Value)
				}
			}
		case pyast.Call:
			if base, attr, ok := attrCall(n); ok {
				if readMethods[attr] {
					reads[base] = append(reads[base], n.Line)
				}
				if writeMethods[attr] {
					writes[base] = append(writes[base], n.Line)
				}
			}
		}
		return true
	})

	for _, name := range order {
		mode := modes[name]
		if strings.HasPrefix(mode, "r") && len(writes[name]) > 0 {
			ctx.At(writes[name][0], `File handle "`+name+`" opened read-mode "`+mode+`" but written to.`)
		}
		if (mode[0] == 'w' || mode[0] == 'a') && len(reads[name]) > 0 {
			ctx.At(reads[name][0], `File handle "`+name+`" opened write/append "`+mode+`" but read from.`)
		}
	}
}
