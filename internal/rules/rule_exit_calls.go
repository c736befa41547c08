package rules

import "github.com/codewithboateng/pyreview/internal/pyast"

// ExitCallsInLibrary flags exit()/quit()/sys.exit() outside a
// `if __name__ == "__main__":` block.
func ExitCallsInLibrary() Rule {
	return Rule{
		Name:      "ExitCallsInLibrary",
		Category:  "Correctness",
		Priority:  high,
		Impact:    "Premature interpreter exit; unusable as import.",
		Heuristic: true,
		Check: func(ctx *Context) {
			guarded := mainGuardBlocks(ctx.Tree)
			pyast.Walk(ctx.Tree, func(n *pyast.Node) bool {
				if n.Kind != pyast.Call {
					return true
				}
				if (isNameCall(n, "exit") || isNameCall(n, "quit")) && !inAnySpan(n.Line, guarded) {
					ctx.At(n.Line, "exit()/quit() in non-__main__ context; raise exception instead.")
				}
				if base, attr, ok := attrCall(n); ok && base == "sys" && attr == "exit" && !inAnySpan(n.Line, guarded) {
					ctx.At(n.Line, "sys.exit() in non-__main__ context; raise exception instead.")
				}
				return true
			})
		},
	}
}
