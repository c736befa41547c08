package rules

import (
	"github.com/codewithboateng/pyreview/internal/issue"
	"github.com/codewithboateng/pyreview/internal/pyast"
)

// Priority aliases keep rule declarations compact.
const (
	high   = issue.High
	medium = issue.Medium
	low    = issue.Low
)

// isNameCall reports whether n is a call to a bare name, e.g. open(...).
func isNameCall(n *pyast.Node, name string) bool {
	return n != nil && n.Kind == pyast.Call &&
		n.Func != nil && n.Func.Kind == pyast.Name && n.Func.Name == name
}

// attrCall unpacks base.attr(...) where base is a plain name. ok is false
// for any other callee shape.
func attrCall(n *pyast.Node) (base, attr string, ok bool) {
	if n == nil || n.Kind != pyast.Call || n.Func == nil || n.Func.Kind != pyast.Attribute {
		return "", "", false
	}
	f := n.Func
	if f.Value == nil || f.Value.Kind != pyast.Name {
		return "", f.Name, false
	}
	return f.Value.Name, f.Name, true
}

// calleeName returns the trailing identifier of a call target: f for f(...),
// attr for any.path.attr(...).
func calleeName(n *pyast.Node) string {
	if n == nil || n.Kind != pyast.Call || n.Func == nil {
		return ""
	}
	switch n.Func.Kind {
	case pyast.Name, pyast.Attribute:
		return n.Func.Name
	}
	return ""
}

// keywordArg returns the keyword argument named arg, or nil.
func keywordArg(call *pyast.Node, arg string) *pyast.Node {
	for _, kw := range call.Keywords {
		if kw.Name == arg {
			return kw
		}
	}
	return nil
}

// constStr returns the string value of a Constant node, if it is one.
func constStr(n *pyast.Node) (string, bool) {
	if n != nil && n.Kind == pyast.Constant && n.Lit.IsStr() {
		return n.Lit.Str, true
	}
	return "", false
}

// openMode extracts the mode of an open(...) call from the second
// positional argument or the mode= keyword. Missing mode returns "".
func openMode(call *pyast.Node) string {
	mode := ""
	if len(call.CallArgs) >= 2 {
		if s, ok := constStr(call.CallArgs[1]); ok {
			mode = s
		}
	}
	if kw := keywordArg(call, "mode"); kw != nil {
		if s, ok := constStr(kw.Value); ok {
			mode = s
		}
	}
	return mode
}

// span is an inclusive line range.
type span struct{ start, end int }

func (s span) contains(line int) bool { return s.start <= line && line <= s.end }

// mainGuardBlocks finds every `if __name__ == "__main__":` statement and
// returns the line span each one covers.
func mainGuardBlocks(tree *pyast.Node) []span {
	var blocks []span
	pyast.Walk(tree, func(n *pyast.Node) bool {
		if n.Kind == pyast.If && isMainGuardTest(n.Test) {
			end := n.Line
			pyast.Walk(n, func(sub *pyast.Node) bool {
				if sub.Line > end {
					end = sub.Line
				}
				return true
			})
			blocks = append(blocks, span{n.Line, end})
		}
		return true
	})
	return blocks
}

func isMainGuardTest(t *pyast.Node) bool {
	if t == nil || t.Kind != pyast.Compare || len(t.Ops) == 0 || len(t.Comparators) == 0 {
		return false
	}
	if t.Left == nil || t.Left.Kind != pyast.Name || t.Left.Name != "__name__" {
		return false
	}
	if t.Ops[0] != pyast.OpEq {
		return false
	}
	s, ok := constStr(t.Comparators[0])
	return ok && s == "__main__"
}

func inAnySpan(line int, spans []span) bool {
	for _, s := range spans {
		if s.contains(line) {
			return true
		}
	}
	return false
}
