package parser

import (
	"strconv"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/codewithboateng/pyreview/internal/pyast"
)

// expr converts an expression node. Unknown kinds become Bad nodes that
// still expose their named children so name walks stay complete.
func (c *converter) expr(n *sitter.Node) *pyast.Node {
	if n == nil {
		return nil
	}
	switch n.Kind() {
	case "identifier":
		id := c.node(pyast.Name, n)
		id.Name = c.text(n)
		id.Ctx = pyast.Load
		return id

	case "parenthesized_expression":
		if inner := n.NamedChild(0); inner != nil {
			return c.expr(inner)
		}
		return c.node(pyast.Bad, n)

	case "true", "false":
		k := c.node(pyast.Constant, n)
		k.Lit = &pyast.Literal{Kind: pyast.LitBool, Bool: n.Kind() == "true"}
		return k

	case "none":
		k := c.node(pyast.Constant, n)
		k.Lit = &pyast.Literal{Kind: pyast.LitNone}
		return k

	case "ellipsis":
		k := c.node(pyast.Constant, n)
		k.Lit = &pyast.Literal{Kind: pyast.LitEllipsis}
		return k

	case "integer":
		return c.intLiteral(n)

	case "float":
		k := c.node(pyast.Constant, n)
		f, err := strconv.ParseFloat(strings.ReplaceAll(c.text(n), "_", ""), 64)
		if err != nil {
			return c.badNode(n)
		}
		k.Lit = &pyast.Literal{Kind: pyast.LitFloat, Float: f}
		return k

	case "string":
		return c.stringLiteral(n)

	case "concatenated_string":
		// adjacent literals; an f-string part makes the whole thing formatted
		var parts []*pyast.Node
		joined := false
		var buf strings.Builder
		for _, ch := range named(n) {
			p := c.stringLiteral(ch)
			parts = append(parts, p)
			if p.Kind == pyast.JoinedStr {
				joined = true
			} else if p.Lit != nil {
				buf.WriteString(p.Lit.Str)
			}
		}
		if joined {
			js := c.node(pyast.JoinedStr, n)
			for _, p := range parts {
				if p.Kind == pyast.JoinedStr {
					js.Values = append(js.Values, p.Values...)
				}
			}
			return js
		}
		k := c.node(pyast.Constant, n)
		k.Lit = &pyast.Literal{Kind: pyast.LitStr, Str: buf.String()}
		return k

	case "call":
		call := c.node(pyast.Call, n)
		call.Func = c.expr(n.ChildByFieldName("function"))
		if argl := n.ChildByFieldName("arguments"); argl != nil {
			// f(x for x in xs): the bare generator's clauses sit directly in
			// the argument list, so assemble the GeneratorExp here.
			if firstOfKind(argl, "for_in_clause") != nil {
				gen := c.node(pyast.GeneratorExp, argl)
				if ncs := named(argl); len(ncs) > 0 {
					gen.Body = []*pyast.Node{c.expr(ncs[0])}
				}
				gen.Generators = c.generators(argl)
				call.CallArgs = append(call.CallArgs, gen)
				return call
			}
			for _, a := range named(argl) {
				switch a.Kind() {
				case "keyword_argument":
					kw := c.node(pyast.Keyword, a)
					kw.Name = c.text(a.ChildByFieldName("name"))
					kw.Value = c.expr(a.ChildByFieldName("value"))
					call.Keywords = append(call.Keywords, kw)
				case "dictionary_splat":
					kw := c.node(pyast.Keyword, a)
					if v := a.NamedChild(0); v != nil {
						kw.Value = c.expr(v)
					}
					call.Keywords = append(call.Keywords, kw)
				case "list_splat":
					st := c.node(pyast.Starred, a)
					if v := a.NamedChild(0); v != nil {
						st.Value = c.expr(v)
					}
					call.CallArgs = append(call.CallArgs, st)
				default:
					call.CallArgs = append(call.CallArgs, c.expr(a))
				}
			}
		}
		return call

	case "attribute":
		at := c.node(pyast.Attribute, n)
		at.Value = c.expr(n.ChildByFieldName("object"))
		at.Name = c.text(n.ChildByFieldName("attribute"))
		return at

	case "subscript":
		sub := c.node(pyast.Subscript, n)
		sub.Value = c.expr(n.ChildByFieldName("value"))
		for _, s := range named(n) {
			if v := n.ChildByFieldName("value"); v != nil && s.StartByte() == v.StartByte() && s.EndByte() == v.EndByte() {
				continue
			}
			sub.Elts = append(sub.Elts, c.expr(s))
		}
		return sub

	case "slice":
		sl := c.node(pyast.SliceExpr, n)
		for _, ch := range named(n) {
			sl.Elts = append(sl.Elts, c.expr(ch))
		}
		return sl

	case "comparison_operator":
		return c.comparison(n)

	case "boolean_operator":
		b := c.node(pyast.BoolOp, n)
		b.Op = c.text(n.ChildByFieldName("operator"))
		b.Left = c.expr(n.ChildByFieldName("left"))
		b.Comparators = []*pyast.Node{c.expr(n.ChildByFieldName("right"))}
		return b

	case "binary_operator":
		b := c.node(pyast.BinOp, n)
		b.Op = c.text(n.ChildByFieldName("operator"))
		b.Left = c.expr(n.ChildByFieldName("left"))
		b.Comparators = []*pyast.Node{c.expr(n.ChildByFieldName("right"))}
		return b

	case "unary_operator":
		u := c.node(pyast.UnaryOp, n)
		u.Op = c.text(n.ChildByFieldName("operator"))
		u.Value = c.expr(n.ChildByFieldName("argument"))
		return u

	case "not_operator":
		u := c.node(pyast.UnaryOp, n)
		u.Op = "not"
		u.Value = c.expr(n.ChildByFieldName("argument"))
		return u

	case "conditional_expression":
		// grammar order: value if test else orelse
		ie := c.node(pyast.IfExp, n)
		ncs := named(n)
		if len(ncs) == 3 {
			ie.Elts = []*pyast.Node{c.expr(ncs[0]), c.expr(ncs[1]), c.expr(ncs[2])}
			ie.Value = ie.Elts[0]
			ie.Test = ie.Elts[1]
		}
		return ie

	case "lambda":
		l := c.node(pyast.Lambda, n)
		l.Args = c.parameters(n.ChildByFieldName("parameters"))
		l.Value = c.expr(n.ChildByFieldName("body"))
		return l

	case "tuple", "expression_list":
		t := c.node(pyast.TupleExpr, n)
		for _, ch := range named(n) {
			t.Elts = append(t.Elts, c.expr(ch))
		}
		return t

	case "list":
		l := c.node(pyast.ListExpr, n)
		for _, ch := range named(n) {
			l.Elts = append(l.Elts, c.expr(ch))
		}
		return l

	case "set":
		s := c.node(pyast.SetExpr, n)
		for _, ch := range named(n) {
			s.Elts = append(s.Elts, c.expr(ch))
		}
		return s

	case "dictionary":
		d := c.node(pyast.DictExpr, n)
		for _, ch := range named(n) {
			switch ch.Kind() {
			case "pair":
				d.Keys = append(d.Keys, c.expr(ch.ChildByFieldName("key")))
				d.Values = append(d.Values, c.expr(ch.ChildByFieldName("value")))
			case "dictionary_splat":
				d.Keys = append(d.Keys, nil)
				if v := ch.NamedChild(0); v != nil {
					d.Values = append(d.Values, c.expr(v))
				}
			}
		}
		return d

	case "list_comprehension":
		return c.comprehension(n, pyast.ListComp)
	case "set_comprehension":
		return c.comprehension(n, pyast.SetComp)
	case "generator_expression":
		return c.comprehension(n, pyast.GeneratorExp)

	case "dictionary_comprehension":
		dc := c.node(pyast.DictComp, n)
		if body := n.ChildByFieldName("body"); body != nil && body.Kind() == "pair" {
			dc.Keys = []*pyast.Node{c.expr(body.ChildByFieldName("key"))}
			dc.Values = []*pyast.Node{c.expr(body.ChildByFieldName("value"))}
		}
		dc.Generators = c.generators(n)
		return dc

	case "named_expression":
		ne := c.node(pyast.NamedExpr, n)
		ne.Target = c.target(n.ChildByFieldName("name"))
		ne.Value = c.expr(n.ChildByFieldName("value"))
		return ne

	case "await":
		aw := c.node(pyast.Await, n)
		if v := n.NamedChild(0); v != nil {
			aw.Value = c.expr(v)
		}
		return aw

	case "yield":
		y := c.node(pyast.Yield, n)
		if v := n.NamedChild(0); v != nil {
			y.Value = c.expr(v)
		}
		return y

	case "list_splat", "splat_pattern":
		st := c.node(pyast.Starred, n)
		if v := n.NamedChild(0); v != nil {
			st.Value = c.expr(v)
		}
		return st
	}

	return c.badNode(n)
}

// badNode wraps an unrecognized expression so traversals still reach the
// names nested inside it.
func (c *converter) badNode(n *sitter.Node) *pyast.Node {
	b := c.node(pyast.Bad, n)
	for _, ch := range named(n) {
		b.Elts = append(b.Elts, c.expr(ch))
	}
	return b
}

func (c *converter) intLiteral(n *sitter.Node) *pyast.Node {
	k := c.node(pyast.Constant, n)
	s := strings.ReplaceAll(c.text(n), "_", "")
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		// out of range or complex suffix; keep it a number with zero value
		k.Lit = &pyast.Literal{Kind: pyast.LitInt}
		return k
	}
	k.Lit = &pyast.Literal{Kind: pyast.LitInt, Int: v}
	return k
}

// stringLiteral decodes a string node; f-strings become JoinedStr with
// their interpolated expressions in Values.
func (c *converter) stringLiteral(n *sitter.Node) *pyast.Node {
	prefix := ""
	var contents strings.Builder
	var interps []*pyast.Node
	for i := uint(0); i < n.ChildCount(); i++ {
		ch := n.Child(i)
		if ch == nil {
			continue
		}
		switch ch.Kind() {
		case "string_start":
			prefix = strings.ToLower(strings.TrimRight(c.text(ch), `"'`))
		case "string_content":
			contents.WriteString(c.text(ch))
		case "escape_sequence":
			contents.WriteString(decodeEscape(c.text(ch)))
		case "interpolation":
			if v := ch.ChildByFieldName("expression"); v != nil {
				interps = append(interps, c.expr(v))
			} else if v := ch.NamedChild(0); v != nil {
				interps = append(interps, c.expr(v))
			}
		}
	}
	if strings.Contains(prefix, "f") {
		js := c.node(pyast.JoinedStr, n)
		js.Values = interps
		lit := c.node(pyast.Constant, n)
		lit.Lit = &pyast.Literal{Kind: pyast.LitStr, Str: contents.String()}
		js.Values = append(js.Values, lit)
		return js
	}
	k := c.node(pyast.Constant, n)
	kind := pyast.LitStr
	if strings.Contains(prefix, "b") {
		kind = pyast.LitBytes
	}
	k.Lit = &pyast.Literal{Kind: kind, Str: contents.String()}
	return k
}

func decodeEscape(s string) string {
	if len(s) < 2 || s[0] != '\\' {
		return s
	}
	switch s[1] {
	case 'n':
		return "\n"
	case 't':
		return "\t"
	case 'r':
		return "\r"
	case '\\':
		return `\`
	case '\'':
		return "'"
	case '"':
		return `"`
	case '0':
		return "\x00"
	}
	return s
}

// comparison folds a chained comparison into left + op/comparator pairs.
// The grammar aliases "is not" and "not in" into single operator tokens;
// the two-token forms are handled too in case a grammar version splits them.
func (c *converter) comparison(n *sitter.Node) *pyast.Node {
	cmp := c.node(pyast.Compare, n)
	ncs := named(n)
	if len(ncs) == 0 {
		return cmp
	}
	cmp.Left = c.expr(ncs[0])
	for _, rest := range ncs[1:] {
		cmp.Comparators = append(cmp.Comparators, c.expr(rest))
	}
	toks := c.tokens(n)
	for i := 0; i < len(toks); i++ {
		// aliased word operators span source bytes, so collapse inner spacing
		switch strings.Join(strings.Fields(toks[i]), " ") {
		case "is not":
			cmp.Ops = append(cmp.Ops, pyast.OpIsNot)
		case "not in":
			cmp.Ops = append(cmp.Ops, pyast.OpNotIn)
		case "is":
			if i+1 < len(toks) && toks[i+1] == "not" {
				cmp.Ops = append(cmp.Ops, pyast.OpIsNot)
				i++
			} else {
				cmp.Ops = append(cmp.Ops, pyast.OpIs)
			}
		case "not":
			if i+1 < len(toks) && toks[i+1] == "in" {
				cmp.Ops = append(cmp.Ops, pyast.OpNotIn)
				i++
			}
		case "in":
			cmp.Ops = append(cmp.Ops, pyast.OpIn)
		case "==", "!=", "<", "<=", ">", ">=", "<>":
			cmp.Ops = append(cmp.Ops, pyast.CmpOp(toks[i]))
		}
	}
	return cmp
}

func (c *converter) comprehension(n *sitter.Node, kind pyast.Kind) *pyast.Node {
	comp := c.node(kind, n)
	if body := n.ChildByFieldName("body"); body != nil {
		comp.Body = []*pyast.Node{c.expr(body)}
	}
	comp.Generators = c.generators(n)
	return comp
}

func (c *converter) generators(n *sitter.Node) []*pyast.Node {
	var gens []*pyast.Node
	var cur *pyast.Node
	for _, ch := range named(n) {
		switch ch.Kind() {
		case "for_in_clause":
			cur = c.node(pyast.Comprehension, ch)
			cur.Target = c.target(ch.ChildByFieldName("left"))
			cur.Iter = c.expr(ch.ChildByFieldName("right"))
			gens = append(gens, cur)
		case "if_clause":
			if cur != nil {
				if cond := ch.NamedChild(0); cond != nil {
					cur.Ifs = append(cur.Ifs, c.expr(cond))
				}
			}
		}
	}
	return gens
}

// target converts an assignment target, marking plain names as stores.
func (c *converter) target(n *sitter.Node) *pyast.Node {
	if n == nil {
		return nil
	}
	switch n.Kind() {
	case "identifier":
		id := c.node(pyast.Name, n)
		id.Name = c.text(n)
		id.Ctx = pyast.Store
		return id
	case "tuple", "tuple_pattern", "pattern_list", "expression_list":
		t := c.node(pyast.TupleExpr, n)
		for _, ch := range named(n) {
			t.Elts = append(t.Elts, c.target(ch))
		}
		return t
	case "list", "list_pattern":
		l := c.node(pyast.ListExpr, n)
		for _, ch := range named(n) {
			l.Elts = append(l.Elts, c.target(ch))
		}
		return l
	case "list_splat_pattern", "splat_pattern":
		st := c.node(pyast.Starred, n)
		if v := n.NamedChild(0); v != nil {
			st.Value = c.target(v)
		}
		return st
	case "as_pattern_target":
		// "as X" wraps the bound target in an extra node
		if inner := n.NamedChild(0); inner != nil {
			return c.target(inner)
		}
		return c.node(pyast.Bad, n)
	case "parenthesized_expression":
		if inner := n.NamedChild(0); inner != nil {
			return c.target(inner)
		}
		return c.node(pyast.Bad, n)
	}
	// attribute and subscript targets keep their object in load context
	return c.expr(n)
}
