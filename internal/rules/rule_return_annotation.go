package rules

import (
	"strconv"
	"strings"

	"github.com/codewithboateng/pyreview/internal/pyast"
)

// ReturnAnnotationMismatch compares declared return annotations against
// the return statements actually present in the function.
func ReturnAnnotationMismatch() Rule {
	return Rule{
		Name:      "ReturnAnnotationMismatch",
		Category:  "Correctness",
		Priority:  medium,
		Impact:    "Return type may not match annotation.",
		Heuristic: true,
		Check: func(ctx *Context) {
			pyast.Walk(ctx.Tree, func(fn *pyast.Node) bool {
				if !fn.IsFunction() || fn.Returns == nil {
					return true
				}
				ann := annString(fn.Returns)
				if ann == "" {
					return true
				}
				returnsNone, returnsValue := false, false
				pyast.Walk(fn, func(sub *pyast.Node) bool {
					if sub.Kind == pyast.Return {
						if sub.Value == nil || isConstNone(sub.Value) {
							returnsNone = true
						} else {
							returnsValue = true
						}
					}
					return true
				})
				if returnsNone && !annAllowsNone(ann) {
					ctx.At(fn.Line, `Function "`+fn.Name+`" returns None but annotation is `+ann+`.`)
				}
				if returnsValue {
					switch strings.TrimSpace(ann) {
					case "None", "NoneType":
						ctx.At(fn.Line, `Function "`+fn.Name+`" returns a value but annotation is `+ann+`.`)
					}
				}
				return true
			})
		},
	}
}

func annAllowsNone(ann string) bool {
	s := strings.ReplaceAll(ann, " ", "")
	if strings.Contains(s, "None") {
		return true
	}
	if strings.Contains(s, "Optional[") {
		return true
	}
	return false
}

// annString renders an annotation expression back to source-like text.
// Shapes it cannot render return "".
func annString(n *pyast.Node) string {
	if n == nil {
		return ""
	}
	switch n.Kind {
	case pyast.Name:
		return n.Name
	case pyast.Constant:
		switch {
		case n.Lit.IsNone():
			return "None"
		case n.Lit.IsStr():
			return n.Lit.Str
		case n.Lit.Kind == pyast.LitInt:
			return strconv.FormatInt(n.Lit.Int, 10)
		}
		return ""
	case pyast.Attribute:
		base := annString(n.Value)
		if base == "" {
			return ""
		}
		return base + "." + n.Name
	case pyast.Subscript:
		base := annString(n.Value)
		if base == "" {
			return ""
		}
		parts := make([]string, 0, len(n.Elts))
		for _, e := range n.Elts {
			parts = append(parts, annString(e))
		}
		return base + "[" + strings.Join(parts, ", ") + "]"
	case pyast.TupleExpr:
		parts := make([]string, 0, len(n.Elts))
		for _, e := range n.Elts {
			parts = append(parts, annString(e))
		}
		return strings.Join(parts, ", ")
	case pyast.BinOp:
		if n.Op == "|" && len(n.Comparators) == 1 {
			return annString(n.Left) + " | " + annString(n.Comparators[0])
		}
		return ""
	}
	return ""
}
