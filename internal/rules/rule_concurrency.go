package rules

import (
	"sort"

	"github.com/codewithboateng/pyreview/internal/pyast"
)

// Concurrency tracks thread and process lifecycles per lexical scope:
// started-but-never-joined variables, construct-then-start chains with no
// binding to join later, and multiprocessing objects created at import
// time without a __main__ guard.
func Concurrency() Rule {
	return Rule{
		Name:      "Concurrency",
		Category:  "Concurrency",
		Priority:  medium,
		Impact:    "Race conditions, zombie processes, or platform-specific hangs.",
		Heuristic: true,
		Check:     checkConcurrency,
	}
}

func checkConcurrency(ctx *Context) {
	guarded := mainGuardBlocks(ctx.Tree)

	threadAliases := map[string]bool{}
	procAliases := map[string]bool{}
	poolAliases := map[string]bool{}
	pyast.Walk(ctx.Tree, func(n *pyast.Node) bool {
		if n.Kind != pyast.ImportFrom {
			return true
		}
		for _, a := range n.Names {
			bound := a.Asname
			if bound == "" {
				bound = a.Name
			}
			switch {
			case n.Module == "threading" && a.Name == "Thread":
				threadAliases[bound] = true
			case n.Module == "multiprocessing" && a.Name == "Process":
				procAliases[bound] = true
			case n.Module == "multiprocessing" && a.Name == "Pool":
				poolAliases[bound] = true
			}
		}
		return true
	})

	isCtor := func(call *pyast.Node, aliases map[string]bool, module, ctor string) bool {
		if call == nil || call.Kind != pyast.Call {
			return false
		}
		if base, attr, ok := attrCall(call); ok && base == module && attr == ctor {
			return true
		}
		return call.Func != nil && call.Func.Kind == pyast.Name && aliases[call.Func.Name]
	}

	analyze := func(body []*pyast.Node, scopeName string, inModule bool) {
		tracker := lifecycleTracker{startLines: map[string]int{}}
		procs := lifecycleTracker{startLines: map[string]int{}}

		pyast.WalkBody(body, func(n *pyast.Node) bool {
			switch n.Kind {
			case pyast.FunctionDef, pyast.AsyncFunctionDef:
				// nested scopes are analyzed on their own
				return false
			case pyast.Assign:
				if isCtor(n.Value, threadAliases, "threading", "Thread") {
					tracker.bind(n.Targets)
				}
				if isCtor(n.Value, procAliases, "multiprocessing", "Process") {
					procs.bind(n.Targets)
				}
			case pyast.Call:
				if base, attr, ok := attrCall(n); ok {
					tracker.observe(base, attr, n.Line)
					procs.observe(base, attr, n.Line)
				}
				// chained Thread(...).start() has no variable to join later
				if n.Func != nil && n.Func.Kind == pyast.Attribute && n.Func.Name == "start" {
					recv := n.Func.Value
					if isCtor(recv, threadAliases, "threading", "Thread") {
						ctx.At(n.Line, "Thread started without a matching join(); ensure a join() in this code path.")
					}
					if isCtor(recv, procAliases, "multiprocessing", "Process") {
						ctx.At(n.Line, "Process started without a matching join(); ensure a join() in this code path.")
					}
				}
				if inModule && (isCtor(n, poolAliases, "multiprocessing", "Pool") ||
					isCtor(n, procAliases, "multiprocessing", "Process")) {
					if !inAnySpan(n.Line, guarded) {
						ctx.At(n.Line, "multiprocessing object created at import time; protect with if __name__ == '__main__':")
					}
				}
			}
			return true
		})

		for _, v := range tracker.unjoined() {
			ctx.At(tracker.startLines[v], `Thread "`+v+`" started but not joined in scope "`+scopeName+`".`)
		}
		for _, v := range procs.unjoined() {
			ctx.At(procs.startLines[v], `Process "`+v+`" started but not joined in scope "`+scopeName+`".`)
		}
	}

	analyze(ctx.Tree.Body, "<module>", true)
	pyast.Walk(ctx.Tree, func(fn *pyast.Node) bool {
		if fn.IsFunction() {
			analyze(fn.Body, fn.Name, false)
		}
		return true
	})
}

// lifecycleTracker follows one kind of concurrency handle through a scope.
type lifecycleTracker struct {
	vars       map[string]bool
	started    map[string]bool
	joined     map[string]bool
	startLines map[string]int
}

func (t *lifecycleTracker) bind(targets []*pyast.Node) {
	if t.vars == nil {
		t.vars = map[string]bool{}
		t.started = map[string]bool{}
		t.joined = map[string]bool{}
	}
	for _, tgt := range targets {
		if tgt.Kind == pyast.Name {
			t.vars[tgt.Name] = true
		}
	}
}

func (t *lifecycleTracker) observe(base, attr string, line int) {
	if !t.vars[base] {
		return
	}
	switch attr {
	case "start":
		t.started[base] = true
		if _, ok := t.startLines[base]; !ok {
			t.startLines[base] = line
		}
	case "join":
		t.joined[base] = true
	}
}

func (t *lifecycleTracker) unjoined() []string {
	var out []string
	for v := range t.started {
		if !t.joined[v] {
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}
