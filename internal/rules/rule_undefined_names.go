package rules

import (
	"strings"

	"github.com/codewithboateng/pyreview/internal/pyast"
)

// UndefinedNames detects names loaded before any definition or import,
// modeling exactly two scope levels: the module and each function body.
// A function sees the module-defined names plus its own parameters and
// local bindings; closures over intermediate scopes are not modeled.
func UndefinedNames() Rule {
	return Rule{
		Name:      "UndefinedNames",
		Category:  "Correctness",
		Priority:  high,
		Impact:    "Name used before definition/import.",
		Heuristic: true,
		Check:     checkUndefinedNames,
	}
}

func checkUndefinedNames(ctx *Context) {
	moduleDefined := collectDefined(ctx.Tree.Body)

	flagLoads := func(n *pyast.Node, visible map[string]bool, skipNestedFuncs bool) {
		pyast.Walk(n, func(sub *pyast.Node) bool {
			if skipNestedFuncs && sub != n && sub.IsFunction() {
				return false
			}
			if sub.Kind == pyast.Name && sub.Ctx == pyast.Load {
				if !visible[sub.Name] && !pyast.IsBuiltin(sub.Name) {
					ctx.At(sub.Line, `Name "`+sub.Name+`" might be undefined in this scope.`)
				}
			}
			return true
		})
	}

	// Module pass: top-level statements only, never descending into
	// def/class bodies. Those are owned by the per-function pass.
	// Decorators evaluate in the enclosing scope, so check them here.
	for _, top := range ctx.Tree.Body {
		if top.IsDefinition() {
			for _, d := range top.Decorators {
				flagLoads(d, moduleDefined, false)
			}
			continue
		}
		flagLoads(top, moduleDefined, false)
	}

	// Per-function pass. Nested function bodies are excluded from the
	// enclosing walk so every name load is checked exactly once.
	pyast.Walk(ctx.Tree, func(fn *pyast.Node) bool {
		if !fn.IsFunction() {
			return true
		}
		visible := collectDefined(fn.Body)
		for name := range moduleDefined {
			visible[name] = true
		}
		for _, name := range fn.Args.AllNames() {
			visible[name] = true
		}
		// nested def/class statements are owned by their own pass, but
		// their decorators evaluate in this scope
		for _, stmt := range fn.Body {
			if stmt.IsDefinition() {
				for _, d := range stmt.Decorators {
					flagLoads(d, visible, true)
				}
				continue
			}
			flagLoads(stmt, visible, true)
		}
		return true
	})
}

// collectDefined gathers every name the given body binds anywhere inside
// it: definitions, parameters, assignment/loop/with/comprehension
// targets, and imports. Walks nested scopes too; the caller decides how
// far visibility extends.
func collectDefined(body []*pyast.Node) map[string]bool {
	defined := map[string]bool{"__name__": true, "__file__": true}
	add := func(names ...string) {
		for _, name := range names {
			if name != "" {
				defined[name] = true
			}
		}
	}
	pyast.WalkBody(body, func(n *pyast.Node) bool {
		switch n.Kind {
		case pyast.FunctionDef, pyast.AsyncFunctionDef, pyast.ClassDef:
			add(n.Name)
			if n.Args != nil {
				add(n.Args.AllNames()...)
			}
		case pyast.Lambda:
			if n.Args != nil {
				add(n.Args.AllNames()...)
			}
		case pyast.Assign:
			for _, t := range n.Targets {
				add(pyast.NamesIn(t)...)
			}
		case pyast.For, pyast.AsyncFor:
			add(pyast.NamesIn(n.Target)...)
		case pyast.With, pyast.AsyncWith:
			for _, item := range n.Items {
				add(pyast.NamesIn(item.Target)...)
			}
		case pyast.ListComp, pyast.SetComp, pyast.GeneratorExp, pyast.DictComp:
			for _, gen := range n.Generators {
				add(pyast.NamesIn(gen.Target)...)
			}
		case pyast.Import:
			for _, a := range n.Names {
				if a.Asname != "" {
					add(a.Asname)
				} else {
					add(strings.SplitN(a.Name, ".", 2)[0])
				}
			}
		case pyast.ImportFrom:
			for _, a := range n.Names {
				if a.Name == "*" {
					continue
				}
				if a.Asname != "" {
					add(a.Asname)
				} else {
					add(a.Name)
				}
			}
		}
		return true
	})
	return defined
}
