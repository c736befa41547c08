// Package pyast defines the typed syntax tree the analysis rules run over.
// It is a closed, tagged variant: every node carries a Kind plus the role
// fields that kind uses. The tree is produced once per file by the parser
// adapter and treated as immutable by all rules; parent links live in a
// separate ParentMap rather than on the nodes themselves.
package pyast

// Kind tags a Node with its syntactic role.
type Kind uint8

const (
	Bad Kind = iota

	// Statements
	Module
	FunctionDef
	AsyncFunctionDef
	ClassDef
	Assign
	AnnAssign
	AugAssign
	ExprStmt
	Return
	Raise
	Assert
	Pass
	Delete
	Global
	Nonlocal
	Break
	Continue
	If
	For
	AsyncFor
	While
	Try
	ExceptHandler
	With
	AsyncWith
	WithItem
	Import
	ImportFrom
	Alias
	Match

	// Expressions
	Call
	Keyword
	Attribute
	Name
	Constant
	JoinedStr
	TupleExpr
	ListExpr
	SetExpr
	DictExpr
	Subscript
	SliceExpr
	Compare
	BoolOp
	BinOp
	UnaryOp
	IfExp
	Lambda
	ListComp
	SetComp
	DictComp
	GeneratorExp
	Comprehension
	NamedExpr
	Starred
	Await
	Yield
)

// Ctx distinguishes a name being read from a name being bound.
type Ctx uint8

const (
	Load Ctx = iota
	Store
)

// CmpOp is a comparison operator as written in source.
type CmpOp string

const (
	OpEq    CmpOp = "=="
	OpNotEq CmpOp = "!="
	OpLt    CmpOp = "<"
	OpLtE   CmpOp = "<="
	OpGt    CmpOp = ">"
	OpGtE   CmpOp = ">="
	OpIs    CmpOp = "is"
	OpIsNot CmpOp = "is not"
	OpIn    CmpOp = "in"
	OpNotIn CmpOp = "not in"
)

// LitKind classifies a Constant's value.
type LitKind uint8

const (
	LitNone LitKind = iota
	LitBool
	LitInt
	LitFloat
	LitStr
	LitBytes
	LitEllipsis
)

// Literal is the decoded value of a Constant node.
type Literal struct {
	Kind  LitKind
	Bool  bool
	Int   int64
	Float float64
	Str   string
}

// IsNumber reports whether the literal is an int or float.
func (l *Literal) IsNumber() bool {
	return l != nil && (l.Kind == LitInt || l.Kind == LitFloat)
}

// IsBool reports whether the literal is True or False.
func (l *Literal) IsBool() bool { return l != nil && l.Kind == LitBool }

// IsNone reports whether the literal is None.
func (l *Literal) IsNone() bool { return l != nil && l.Kind == LitNone }

// IsStr reports whether the literal is a text string.
func (l *Literal) IsStr() bool { return l != nil && l.Kind == LitStr }

// Param is one formal parameter of a function or lambda.
type Param struct {
	Name    string
	Line    int
	Default *Node // nil when the parameter has no default
}

// Arguments is the parameter list of a function definition.
type Arguments struct {
	Args   []*Param // positional (including positional-only)
	KwOnly []*Param
	Vararg *Param // *args
	Kwarg  *Param // **kwargs
}

// Add appends p as a positional or keyword-only parameter.
func (a *Arguments) Add(p *Param, kwOnly bool) {
	if kwOnly {
		a.KwOnly = append(a.KwOnly, p)
	} else {
		a.Args = append(a.Args, p)
	}
}

// AllNames returns every bound parameter name.
func (a *Arguments) AllNames() []string {
	if a == nil {
		return nil
	}
	var names []string
	for _, p := range a.Args {
		names = append(names, p.Name)
	}
	for _, p := range a.KwOnly {
		names = append(names, p.Name)
	}
	if a.Vararg != nil {
		names = append(names, a.Vararg.Name)
	}
	if a.Kwarg != nil {
		names = append(names, a.Kwarg.Name)
	}
	return names
}

// Node is one syntax tree node. Only the fields relevant to the Kind are
// populated; the rest stay zero.
type Node struct {
	Kind    Kind
	Line    int // 1-based first source line
	EndLine int // 1-based last source line

	// Name carries identifier text: Name.ID, def/class name, Attribute
	// attr, Keyword arg ("" for **expansion), Alias import name.
	Name   string
	Asname string // Alias "as" name
	Ctx    Ctx    // Name only

	Lit *Literal // Constant only

	Args       *Arguments // FunctionDef / AsyncFunctionDef / Lambda
	Returns    *Node      // return annotation
	Decorators []*Node    // FunctionDef / AsyncFunctionDef / ClassDef

	Target      *Node   // For/AugAssign/AnnAssign target, WithItem binding, Comprehension target, NamedExpr target
	Targets     []*Node // Assign targets
	Value       *Node   // generic single value child
	Test        *Node   // If/While/IfExp/Assert condition
	Iter        *Node   // For/Comprehension iterable
	Func        *Node   // Call callee
	CallArgs    []*Node // Call positional arguments
	Keywords    []*Node // Call keyword arguments (Keyword nodes)
	Left        *Node   // Compare/BoolOp/BinOp left operand
	Ops         []CmpOp // Compare operators
	Comparators []*Node // Compare right operands
	Op          string  // BoolOp ("and"/"or"), BinOp, UnaryOp, AugAssign operator

	Elts   []*Node // Tuple/List/Set elements; IfExp (value, test, orelse)
	Keys   []*Node // Dict keys (nil entry for **expansion)
	Values []*Node // Dict values

	Body       []*Node // statement bodies; comprehension element as single entry
	Orelse     []*Node
	Final      []*Node // Try finally
	Handlers   []*Node // Try except clauses
	ExcType    *Node   // ExceptHandler caught type (nil for bare except)
	Exc        *Node   // Raise exception (nil for bare raise)
	Cause      *Node   // Raise "from" cause
	Items      []*Node // With items (WithItem nodes)
	Generators []*Node // comprehension for-clauses (Comprehension nodes)
	Ifs        []*Node // Comprehension conditions
	Names      []*Node // Import/ImportFrom aliases (Alias nodes)
	Module     string  // ImportFrom module ("" for bare relative)
	Level      int     // ImportFrom relative dots
}

// IsFunction reports whether n is a sync or async function definition.
func (n *Node) IsFunction() bool {
	return n != nil && (n.Kind == FunctionDef || n.Kind == AsyncFunctionDef)
}

// IsDefinition reports whether n introduces a nested scope by name.
func (n *Node) IsDefinition() bool {
	return n != nil && (n.Kind == FunctionDef || n.Kind == AsyncFunctionDef || n.Kind == ClassDef)
}

// Children returns all direct child nodes in source order (best effort).
// Parameter defaults and the return annotation are included so a full walk
// sees every expression of a definition.
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	add := func(c *Node) {
		if c != nil {
			out = append(out, c)
		}
	}
	addAll := func(cs []*Node) {
		for _, c := range cs {
			add(c)
		}
	}
	addAll(n.Decorators)
	if n.Args != nil {
		for _, p := range n.Args.Args {
			add(p.Default)
		}
		for _, p := range n.Args.KwOnly {
			add(p.Default)
		}
	}
	add(n.Returns)
	add(n.Func)
	add(n.Left)
	add(n.Target)
	addAll(n.Targets)
	add(n.Test)
	add(n.Iter)
	add(n.Exc)
	add(n.Cause)
	add(n.ExcType)
	add(n.Value)
	addAll(n.CallArgs)
	addAll(n.Keywords)
	addAll(n.Comparators)
	addAll(n.Elts)
	addAll(n.Keys)
	addAll(n.Values)
	addAll(n.Items)
	addAll(n.Generators)
	addAll(n.Ifs)
	addAll(n.Names)
	addAll(n.Handlers)
	addAll(n.Body)
	addAll(n.Orelse)
	addAll(n.Final)
	return out
}

// Walk visits n and its descendants in pre-order. Returning false from visit
// skips the node's children.
func Walk(n *Node, visit func(*Node) bool) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	for _, c := range n.Children() {
		Walk(c, visit)
	}
}

// WalkBody walks each statement of a body in order.
func WalkBody(body []*Node, visit func(*Node) bool) {
	for _, stmt := range body {
		Walk(stmt, visit)
	}
}

// NamesIn collects the plain identifier names bound by an assignment-like
// target, unpacking tuple/list/starred structure recursively.
func NamesIn(target *Node) []string {
	if target == nil {
		return nil
	}
	switch target.Kind {
	case Name:
		return []string{target.Name}
	case TupleExpr, ListExpr:
		var names []string
		for _, el := range target.Elts {
			names = append(names, NamesIn(el)...)
		}
		return names
	case Starred:
		return NamesIn(target.Value)
	}
	return nil
}

// MaxLine returns the highest line number found in the subtree.
func MaxLine(n *Node) int {
	max := 0
	Walk(n, func(c *Node) bool {
		if c.Line > max {
			max = c.Line
		}
		if c.EndLine > max {
			max = c.EndLine
		}
		return true
	})
	return max
}

// HasDocstring reports whether a body starts with a string expression.
func HasDocstring(body []*Node) bool {
	if len(body) == 0 {
		return false
	}
	first := body[0]
	return first.Kind == ExprStmt && first.Value != nil &&
		first.Value.Kind == Constant && first.Value.Lit.IsStr()
}
