package rules

import (
	"fmt"
	"sort"

	"github.com/codewithboateng/pyreview/internal/pyast"
)

// ThreadSafety flags module-level mutable globals that are written while
// the module also constructs threads; shared state like that needs locks.
func ThreadSafety() Rule {
	r := Rule{
		Name:      "ThreadSafety",
		Category:  "Concurrency",
		Priority:  medium,
		Impact:    "Shared mutable globals accessed by threads can cause races; use locks or confine state.",
		Heuristic: true,
	}
	r.Hooks = map[pyast.Kind]Hook{
		pyast.Module: checkThreadSafety,
	}
	return r
}

func checkThreadSafety(ctx *Context, mod *pyast.Node) {
	threadsPresent := false
	pyast.Walk(mod, func(n *pyast.Node) bool {
		if calleeName(n) == "Thread" {
			threadsPresent = true
			return false
		}
		return true
	})

	mutableGlobals := map[string]bool{}
	for _, n := range mod.Body {
		if n.Kind != pyast.Assign || n.Value == nil {
			continue
		}
		switch n.Value.Kind {
		case pyast.DictExpr, pyast.ListExpr, pyast.SetExpr:
			for _, t := range n.Targets {
				if t.Kind == pyast.Name {
					mutableGlobals[t.Name] = true
				}
			}
		}
	}

	written := map[string]bool{}
	pyast.Walk(mod, func(n *pyast.Node) bool {
		switch n.Kind {
		case pyast.Assign:
			for _, t := range n.Targets {
				for _, name := range namesAnywhere(t) {
					if mutableGlobals[name] {
						written[name] = true
					}
				}
			}
		case pyast.AugAssign:
			for _, name := range namesAnywhere(n.Target) {
				if mutableGlobals[name] {
					written[name] = true
				}
			}
		case pyast.Call:
			if base, _, ok := attrCall(n); ok && mutableGlobals[base] {
				written[base] = true
			}
		}
		return true
	})

	if !threadsPresent || len(written) == 0 {
		return
	}

	names := make([]string, 0, len(written))
	for name := range written {
		names = append(names, name)
	}
	sort.Strings(names)

	firstLine := 0
	pyast.Walk(mod, func(n *pyast.Node) bool {
		if n.Kind == pyast.Name && written[n.Name] {
			if firstLine == 0 || n.Line < firstLine {
				firstLine = n.Line
			}
		}
		return true
	})
	if firstLine == 0 {
		firstLine = 1
	}

	ctx.Report("", "", firstLine, "", ctx.Prefixed(fmt.Sprintf(
		"Mutable globals %v written while using threads; use locks or avoid shared state.", names)))
}

// namesAnywhere collects every identifier in the subtree, matching how
// write targets are attributed regardless of nesting.
func namesAnywhere(n *pyast.Node) []string {
	var out []string
	pyast.Walk(n, func(sub *pyast.Node) bool {
		if sub.Kind == pyast.Name {
			out = append(out, sub.Name)
		}
		return true
	})
	return out
}
