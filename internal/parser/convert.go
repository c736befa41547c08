package parser

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/codewithboateng/pyreview/internal/pyast"
)

type converter struct {
	src []byte
}

func (c *converter) text(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	start, end := n.StartByte(), n.EndByte()
	if start > uint(len(c.src)) || end > uint(len(c.src)) || start > end {
		return ""
	}
	return string(c.src[start:end])
}

func line(n *sitter.Node) int    { return int(n.StartPosition().Row) + 1 }
func endLine(n *sitter.Node) int { return int(n.EndPosition().Row) + 1 }

// named returns the named children of n with comments filtered out;
// tree-sitter injects comment nodes anywhere in the tree.
func named(n *sitter.Node) []*sitter.Node {
	var out []*sitter.Node
	for i := uint(0); i < n.NamedChildCount(); i++ {
		ch := n.NamedChild(i)
		if ch == nil || ch.Kind() == "comment" {
			continue
		}
		out = append(out, ch)
	}
	return out
}

// tokens returns the unnamed (anonymous) children texts of n in order.
func (c *converter) tokens(n *sitter.Node) []string {
	var out []string
	for i := uint(0); i < n.ChildCount(); i++ {
		ch := n.Child(i)
		if ch == nil || ch.IsNamed() {
			continue
		}
		out = append(out, c.text(ch))
	}
	return out
}

func (c *converter) hasToken(n *sitter.Node, tok string) bool {
	for _, t := range c.tokens(n) {
		if t == tok {
			return true
		}
	}
	return false
}

func (c *converter) node(kind pyast.Kind, n *sitter.Node) *pyast.Node {
	return &pyast.Node{Kind: kind, Line: line(n), EndLine: endLine(n)}
}

func (c *converter) module(root *sitter.Node) *pyast.Node {
	m := c.node(pyast.Module, root)
	m.Body = c.block(root)
	return m
}

func (c *converter) block(n *sitter.Node) []*pyast.Node {
	var out []*pyast.Node
	for _, ch := range named(n) {
		out = append(out, c.stmt(ch)...)
	}
	return out
}

func (c *converter) fieldBlock(n *sitter.Node, field string) []*pyast.Node {
	if b := n.ChildByFieldName(field); b != nil {
		return c.block(b)
	}
	return nil
}

// elseBlock unwraps an else_clause (or similar wrapper) down to its block.
func (c *converter) elseBlock(n *sitter.Node) []*pyast.Node {
	for _, ch := range named(n) {
		if ch.Kind() == "block" {
			return c.block(ch)
		}
	}
	return c.block(n)
}

// stmt converts one statement node. It returns a slice because a few
// constructs expand to multiple statements.
func (c *converter) stmt(n *sitter.Node) []*pyast.Node {
	switch n.Kind() {
	case "decorated_definition":
		def := n.ChildByFieldName("definition")
		if def == nil {
			return nil
		}
		out := c.stmt(def)
		var decs []*pyast.Node
		for _, ch := range named(n) {
			if ch.Kind() != "decorator" {
				continue
			}
			if v := ch.NamedChild(0); v != nil {
				decs = append(decs, c.expr(v))
			}
		}
		if len(out) > 0 {
			out[0].Decorators = decs
		}
		return out

	case "function_definition":
		kind := pyast.FunctionDef
		if c.hasToken(n, "async") {
			kind = pyast.AsyncFunctionDef
		}
		fn := c.node(kind, n)
		fn.Name = c.text(n.ChildByFieldName("name"))
		fn.Args = c.parameters(n.ChildByFieldName("parameters"))
		if rt := n.ChildByFieldName("return_type"); rt != nil {
			fn.Returns = c.expr(unwrapType(rt))
		}
		fn.Body = c.fieldBlock(n, "body")
		return []*pyast.Node{fn}

	case "class_definition":
		cls := c.node(pyast.ClassDef, n)
		cls.Name = c.text(n.ChildByFieldName("name"))
		if sup := n.ChildByFieldName("superclasses"); sup != nil {
			for _, b := range named(sup) {
				if b.Kind() == "keyword_argument" {
					continue
				}
				cls.Elts = append(cls.Elts, c.expr(b))
			}
		}
		cls.Body = c.fieldBlock(n, "body")
		return []*pyast.Node{cls}

	case "expression_statement":
		var out []*pyast.Node
		for _, ch := range named(n) {
			switch ch.Kind() {
			case "assignment":
				out = append(out, c.assignment(ch))
			case "augmented_assignment":
				aug := c.node(pyast.AugAssign, ch)
				aug.Target = c.target(ch.ChildByFieldName("left"))
				aug.Op = c.text(ch.ChildByFieldName("operator"))
				aug.Value = c.expr(ch.ChildByFieldName("right"))
				out = append(out, aug)
			default:
				es := c.node(pyast.ExprStmt, ch)
				es.Value = c.expr(ch)
				out = append(out, es)
			}
		}
		return out

	case "return_statement":
		ret := c.node(pyast.Return, n)
		if ncs := named(n); len(ncs) > 0 {
			ret.Value = c.expr(ncs[0])
		}
		return []*pyast.Node{ret}

	case "raise_statement":
		r := c.node(pyast.Raise, n)
		ncs := named(n)
		switch {
		case len(ncs) >= 2:
			r.Exc = c.expr(ncs[0])
			r.Cause = c.expr(ncs[1])
		case len(ncs) == 1:
			r.Exc = c.expr(ncs[0])
		}
		return []*pyast.Node{r}

	case "assert_statement":
		a := c.node(pyast.Assert, n)
		ncs := named(n)
		if len(ncs) > 0 {
			a.Test = c.expr(ncs[0])
		}
		if len(ncs) > 1 {
			a.Value = c.expr(ncs[1])
		}
		return []*pyast.Node{a}

	case "pass_statement":
		return []*pyast.Node{c.node(pyast.Pass, n)}
	case "break_statement":
		return []*pyast.Node{c.node(pyast.Break, n)}
	case "continue_statement":
		return []*pyast.Node{c.node(pyast.Continue, n)}
	case "global_statement", "nonlocal_statement":
		kind := pyast.Global
		if n.Kind() == "nonlocal_statement" {
			kind = pyast.Nonlocal
		}
		g := c.node(kind, n)
		for _, ch := range named(n) {
			id := c.node(pyast.Name, ch)
			id.Name = c.text(ch)
			id.Ctx = pyast.Store
			g.Elts = append(g.Elts, id)
		}
		return []*pyast.Node{g}

	case "delete_statement":
		d := c.node(pyast.Delete, n)
		for _, ch := range named(n) {
			d.Targets = append(d.Targets, c.expr(ch))
		}
		return []*pyast.Node{d}

	case "if_statement":
		return []*pyast.Node{c.ifStatement(n)}

	case "for_statement":
		kind := pyast.For
		if c.hasToken(n, "async") {
			kind = pyast.AsyncFor
		}
		f := c.node(kind, n)
		f.Target = c.target(n.ChildByFieldName("left"))
		f.Iter = c.expr(n.ChildByFieldName("right"))
		f.Body = c.fieldBlock(n, "body")
		if alt := n.ChildByFieldName("alternative"); alt != nil {
			f.Orelse = c.elseBlock(alt)
		}
		return []*pyast.Node{f}

	case "while_statement":
		w := c.node(pyast.While, n)
		w.Test = c.expr(n.ChildByFieldName("condition"))
		w.Body = c.fieldBlock(n, "body")
		if alt := n.ChildByFieldName("alternative"); alt != nil {
			w.Orelse = c.elseBlock(alt)
		}
		return []*pyast.Node{w}

	case "try_statement":
		t := c.node(pyast.Try, n)
		t.Body = c.fieldBlock(n, "body")
		for _, ch := range named(n) {
			switch ch.Kind() {
			case "except_clause", "except_group_clause":
				t.Handlers = append(t.Handlers, c.exceptClause(ch))
			case "else_clause":
				t.Orelse = c.elseBlock(ch)
			case "finally_clause":
				for _, fc := range named(ch) {
					if fc.Kind() == "block" {
						t.Final = c.block(fc)
					}
				}
			}
		}
		return []*pyast.Node{t}

	case "with_statement":
		kind := pyast.With
		if c.hasToken(n, "async") {
			kind = pyast.AsyncWith
		}
		w := c.node(kind, n)
		for _, ch := range named(n) {
			if ch.Kind() == "with_clause" {
				for _, item := range named(ch) {
					if item.Kind() == "with_item" {
						w.Items = append(w.Items, c.withItem(item))
					}
				}
			}
		}
		w.Body = c.fieldBlock(n, "body")
		return []*pyast.Node{w}

	case "import_statement":
		imp := c.node(pyast.Import, n)
		for _, ch := range named(n) {
			imp.Names = append(imp.Names, c.alias(ch))
		}
		return []*pyast.Node{imp}

	case "import_from_statement":
		return []*pyast.Node{c.importFrom(n)}

	case "match_statement":
		m := c.node(pyast.Match, n)
		m.Value = c.expr(n.ChildByFieldName("subject"))
		if body := n.ChildByFieldName("body"); body != nil {
			for _, cse := range named(body) {
				if cse.Kind() != "case_clause" {
					continue
				}
				if cons := cse.ChildByFieldName("consequence"); cons != nil {
					m.Body = append(m.Body, c.block(cons)...)
				}
			}
		}
		return []*pyast.Node{m}
	}

	// Unknown statement kinds are dropped rather than guessed at.
	return nil
}

func (c *converter) ifStatement(n *sitter.Node) *pyast.Node {
	stmt := c.node(pyast.If, n)
	stmt.Test = c.expr(n.ChildByFieldName("condition"))
	stmt.Body = c.fieldBlock(n, "consequence")

	// elif chains nest: each elif becomes an If in the previous orelse.
	cur := stmt
	for _, ch := range named(n) {
		switch ch.Kind() {
		case "elif_clause":
			elif := c.node(pyast.If, ch)
			elif.Test = c.expr(ch.ChildByFieldName("condition"))
			elif.Body = c.fieldBlock(ch, "consequence")
			cur.Orelse = []*pyast.Node{elif}
			cur = elif
		case "else_clause":
			cur.Orelse = c.elseBlock(ch)
		}
	}
	return stmt
}

func (c *converter) assignment(n *sitter.Node) *pyast.Node {
	left := n.ChildByFieldName("left")
	right := n.ChildByFieldName("right")
	typ := n.ChildByFieldName("type")

	if typ != nil {
		ann := c.node(pyast.AnnAssign, n)
		ann.Target = c.target(left)
		ann.Returns = c.expr(unwrapType(typ))
		if right != nil {
			ann.Value = c.expr(right)
		}
		return ann
	}

	as := c.node(pyast.Assign, n)
	as.Targets = []*pyast.Node{c.target(left)}
	if right != nil {
		if right.Kind() == "assignment" {
			// chained a = b = c nests on the right
			as.Value = c.assignment(right)
		} else {
			as.Value = c.expr(right)
		}
	}
	return as
}

func (c *converter) exceptClause(n *sitter.Node) *pyast.Node {
	h := c.node(pyast.ExceptHandler, n)
	for _, ch := range named(n) {
		switch ch.Kind() {
		case "block":
			h.Body = c.block(ch)
		case "as_pattern":
			if v := ch.NamedChild(0); v != nil {
				h.ExcType = c.expr(v)
			}
		default:
			if h.ExcType == nil {
				h.ExcType = c.expr(ch)
			}
		}
	}
	return h
}

func (c *converter) withItem(n *sitter.Node) *pyast.Node {
	item := c.node(pyast.WithItem, n)
	v := n.ChildByFieldName("value")
	if v == nil {
		return item
	}
	if v.Kind() == "as_pattern" {
		if inner := v.NamedChild(0); inner != nil {
			item.Value = c.expr(inner)
		}
		if al := v.ChildByFieldName("alias"); al != nil {
			item.Target = c.target(al)
		}
	} else {
		item.Value = c.expr(v)
	}
	return item
}

func (c *converter) alias(n *sitter.Node) *pyast.Node {
	a := c.node(pyast.Alias, n)
	switch n.Kind() {
	case "aliased_import":
		a.Name = c.text(n.ChildByFieldName("name"))
		a.Asname = c.text(n.ChildByFieldName("alias"))
	case "wildcard_import":
		a.Name = "*"
	default: // dotted_name or identifier
		a.Name = c.text(n)
	}
	return a
}

func (c *converter) importFrom(n *sitter.Node) *pyast.Node {
	imp := c.node(pyast.ImportFrom, n)
	if mod := n.ChildByFieldName("module_name"); mod != nil {
		txt := c.text(mod)
		trimmed := strings.TrimLeft(txt, ".")
		imp.Level = len(txt) - len(trimmed)
		imp.Module = trimmed
	}
	// Imported names are the children after the "import" token.
	afterImport := false
	for i := uint(0); i < n.ChildCount(); i++ {
		ch := n.Child(i)
		if ch == nil {
			continue
		}
		if !ch.IsNamed() {
			if c.text(ch) == "import" {
				afterImport = true
			}
			continue
		}
		if !afterImport || ch.Kind() == "comment" {
			continue
		}
		imp.Names = append(imp.Names, c.alias(ch))
	}
	return imp
}

func (c *converter) parameters(n *sitter.Node) *pyast.Arguments {
	args := &pyast.Arguments{}
	if n == nil {
		return args
	}
	kwOnly := false
	for _, ch := range named(n) {
		switch ch.Kind() {
		case "identifier":
			p := &pyast.Param{Name: c.text(ch), Line: line(ch)}
			args.Add(p, kwOnly)
		case "default_parameter":
			p := &pyast.Param{
				Name:    c.text(ch.ChildByFieldName("name")),
				Line:    line(ch),
				Default: c.expr(ch.ChildByFieldName("value")),
			}
			args.Add(p, kwOnly)
		case "typed_parameter":
			if splat := firstOfKind(ch, "list_splat_pattern"); splat != nil {
				args.Vararg = c.splatParam(splat)
				kwOnly = true
			} else if splat := firstOfKind(ch, "dictionary_splat_pattern"); splat != nil {
				args.Kwarg = c.splatParam(splat)
			} else if id := firstOfKind(ch, "identifier"); id != nil {
				args.Add(&pyast.Param{Name: c.text(id), Line: line(ch)}, kwOnly)
			}
		case "typed_default_parameter":
			p := &pyast.Param{
				Name:    c.text(ch.ChildByFieldName("name")),
				Line:    line(ch),
				Default: c.expr(ch.ChildByFieldName("value")),
			}
			args.Add(p, kwOnly)
		case "list_splat_pattern":
			args.Vararg = c.splatParam(ch)
			kwOnly = true
		case "dictionary_splat_pattern":
			args.Kwarg = c.splatParam(ch)
		case "keyword_separator":
			kwOnly = true
		case "positional_separator":
			// "/" ends positional-only params; no distinction needed here
		}
	}
	return args
}

func (c *converter) splatParam(n *sitter.Node) *pyast.Param {
	if id := firstOfKind(n, "identifier"); id != nil {
		return &pyast.Param{Name: c.text(id), Line: line(n)}
	}
	return &pyast.Param{Line: line(n)}
}

func firstOfKind(n *sitter.Node, kind string) *sitter.Node {
	for i := uint(0); i < n.NamedChildCount(); i++ {
		ch := n.NamedChild(i)
		if ch != nil && ch.Kind() == kind {
			return ch
		}
	}
	return nil
}

// unwrapType strips the "type" wrapper around annotation expressions.
func unwrapType(n *sitter.Node) *sitter.Node {
	if n != nil && n.Kind() == "type" {
		if inner := n.NamedChild(0); inner != nil {
			return inner
		}
	}
	return n
}
