package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codewithboateng/pyreview/internal/pyast"
)

func TestParse_SyntaxErrorReturnsNil(t *testing.T) {
	assert.Nil(t, Parse([]byte("def broken(:\n    pass\n")))
	assert.Nil(t, Parse([]byte("if True\n    pass\n")))
}

func TestParse_EmptySourceYieldsModule(t *testing.T) {
	tree := Parse([]byte(""))
	require.NotNil(t, tree)
	assert.Equal(t, pyast.Module, tree.Kind)
	assert.Empty(t, tree.Body)
}

func TestParse_FunctionDef(t *testing.T) {
	src := `def add(a, b=1, *args, **kwargs):
    return a + b
`
	tree := Parse([]byte(src))
	require.NotNil(t, tree)
	require.Len(t, tree.Body, 1)

	fn := tree.Body[0]
	assert.Equal(t, pyast.FunctionDef, fn.Kind)
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, 1, fn.Line)

	require.NotNil(t, fn.Args)
	require.Len(t, fn.Args.Args, 2)
	assert.Equal(t, "a", fn.Args.Args[0].Name)
	assert.Nil(t, fn.Args.Args[0].Default)
	assert.Equal(t, "b", fn.Args.Args[1].Name)
	require.NotNil(t, fn.Args.Args[1].Default)
	require.NotNil(t, fn.Args.Vararg)
	assert.Equal(t, "args", fn.Args.Vararg.Name)
	require.NotNil(t, fn.Args.Kwarg)
	assert.Equal(t, "kwargs", fn.Args.Kwarg.Name)

	require.Len(t, fn.Body, 1)
	assert.Equal(t, pyast.Return, fn.Body[0].Kind)
	assert.Equal(t, 2, fn.Body[0].Line)
}

func TestParse_AsyncFunctionAndClass(t *testing.T) {
	src := `class Account(Base):
    async def close(self):
        await self.flush()
`
	tree := Parse([]byte(src))
	require.NotNil(t, tree)
	require.Len(t, tree.Body, 1)

	cls := tree.Body[0]
	assert.Equal(t, pyast.ClassDef, cls.Kind)
	assert.Equal(t, "Account", cls.Name)
	require.Len(t, cls.Elts, 1)
	assert.Equal(t, "Base", cls.Elts[0].Name)

	require.Len(t, cls.Body, 1)
	fn := cls.Body[0]
	assert.Equal(t, pyast.AsyncFunctionDef, fn.Kind)
	assert.Equal(t, "close", fn.Name)
}

func TestParse_Imports(t *testing.T) {
	src := `import os
import numpy as np
from threading import Thread, Lock
from . import sibling
from ..pkg import thing
`
	tree := Parse([]byte(src))
	require.NotNil(t, tree)
	require.Len(t, tree.Body, 5)

	imp := tree.Body[0]
	assert.Equal(t, pyast.Import, imp.Kind)
	require.Len(t, imp.Names, 1)
	assert.Equal(t, "os", imp.Names[0].Name)

	aliased := tree.Body[1]
	require.Len(t, aliased.Names, 1)
	assert.Equal(t, "numpy", aliased.Names[0].Name)
	assert.Equal(t, "np", aliased.Names[0].Asname)

	from := tree.Body[2]
	assert.Equal(t, pyast.ImportFrom, from.Kind)
	assert.Equal(t, "threading", from.Module)
	assert.Equal(t, 0, from.Level)
	require.Len(t, from.Names, 2)
	assert.Equal(t, "Thread", from.Names[0].Name)
	assert.Equal(t, "Lock", from.Names[1].Name)

	rel := tree.Body[3]
	assert.Equal(t, pyast.ImportFrom, rel.Kind)
	assert.Equal(t, 1, rel.Level)
	assert.Equal(t, "", rel.Module)

	rel2 := tree.Body[4]
	assert.Equal(t, 2, rel2.Level)
	assert.Equal(t, "pkg", rel2.Module)
}

func TestParse_IfElifElse(t *testing.T) {
	src := `if a:
    x = 1
elif b:
    x = 2
else:
    x = 3
`
	tree := Parse([]byte(src))
	require.NotNil(t, tree)
	require.Len(t, tree.Body, 1)

	top := tree.Body[0]
	assert.Equal(t, pyast.If, top.Kind)
	require.Len(t, top.Body, 1)
	require.Len(t, top.Orelse, 1)

	elif := top.Orelse[0]
	assert.Equal(t, pyast.If, elif.Kind)
	require.Len(t, elif.Orelse, 1)
	assert.Equal(t, pyast.Assign, elif.Orelse[0].Kind)
}

func TestParse_TryExceptFinally(t *testing.T) {
	src := `try:
    risky()
except ValueError as e:
    handle(e)
except:
    pass
finally:
    cleanup()
`
	tree := Parse([]byte(src))
	require.NotNil(t, tree)
	tr := tree.Body[0]
	assert.Equal(t, pyast.Try, tr.Kind)
	require.Len(t, tr.Handlers, 2)
	require.NotNil(t, tr.Handlers[0].ExcType)
	assert.Equal(t, "ValueError", tr.Handlers[0].ExcType.Name)
	assert.Nil(t, tr.Handlers[1].ExcType)
	require.Len(t, tr.Final, 1)
}

func TestParse_ForElseBodyIsKept(t *testing.T) {
	src := `for i in range(3):
    use(i)
else:
    done()
`
	tree := Parse([]byte(src))
	require.NotNil(t, tree)
	loop := tree.Body[0]
	assert.Equal(t, pyast.For, loop.Kind)
	require.Len(t, loop.Body, 1)
	require.Len(t, loop.Orelse, 1)
	assert.Equal(t, pyast.ExprStmt, loop.Orelse[0].Kind)
}

func TestParse_Literals(t *testing.T) {
	src := `x = 42
y = 3.5
s = "hi"
b = b"raw"
n = None
t = True
big = 1_000_000
`
	tree := Parse([]byte(src))
	require.NotNil(t, tree)
	require.Len(t, tree.Body, 7)

	lit := func(i int) *pyast.Literal { return tree.Body[i].Value.Lit }
	assert.Equal(t, int64(42), lit(0).Int)
	assert.Equal(t, pyast.LitFloat, lit(1).Kind)
	assert.Equal(t, "hi", lit(2).Str)
	assert.Equal(t, pyast.LitBytes, lit(3).Kind)
	assert.Equal(t, pyast.LitNone, lit(4).Kind)
	assert.True(t, lit(5).Bool)
	assert.Equal(t, int64(1000000), lit(6).Int)
}

func TestParse_FStringBecomesJoinedStr(t *testing.T) {
	tree := Parse([]byte("msg = f\"hello {name}\"\n"))
	require.NotNil(t, tree)
	v := tree.Body[0].Value
	assert.Equal(t, pyast.JoinedStr, v.Kind)

	plain := Parse([]byte("msg = \"hello %s\" % name\n"))
	require.NotNil(t, plain)
	assert.Equal(t, pyast.BinOp, plain.Body[0].Value.Kind)
}

func TestParse_CompareChain(t *testing.T) {
	tree := Parse([]byte("ok = 0 <= x < 10\n"))
	require.NotNil(t, tree)
	cmp := tree.Body[0].Value
	assert.Equal(t, pyast.Compare, cmp.Kind)
	assert.Equal(t, []pyast.CmpOp{pyast.OpLtE, pyast.OpLt}, cmp.Ops)
	require.Len(t, cmp.Comparators, 2)
}

func TestParse_CompareWordOperators(t *testing.T) {
	tree := Parse([]byte("a = x is not None\nb = y not in xs\n"))
	require.NotNil(t, tree)
	assert.Equal(t, []pyast.CmpOp{pyast.OpIsNot}, tree.Body[0].Value.Ops)
	assert.Equal(t, []pyast.CmpOp{pyast.OpNotIn}, tree.Body[1].Value.Ops)
}

func TestParse_CallWithKeywords(t *testing.T) {
	tree := Parse([]byte("open(path, mode=\"r\", encoding=\"utf-8\")\n"))
	require.NotNil(t, tree)
	call := tree.Body[0].Value
	require.Equal(t, pyast.Call, call.Kind)
	assert.Equal(t, "open", call.Func.Name)
	require.Len(t, call.CallArgs, 1)
	require.Len(t, call.Keywords, 2)
	assert.Equal(t, "mode", call.Keywords[0].Name)
	assert.Equal(t, "r", call.Keywords[0].Value.Lit.Str)
}

func TestParse_AttributeCall(t *testing.T) {
	tree := Parse([]byte("thread.start()\n"))
	require.NotNil(t, tree)
	call := tree.Body[0].Value
	attr := call.Func
	require.Equal(t, pyast.Attribute, attr.Kind)
	assert.Equal(t, "start", attr.Name)
	assert.Equal(t, "thread", attr.Value.Name)
}

func TestParse_NegativeNumberStaysUnary(t *testing.T) {
	tree := Parse([]byte("x = -1\n"))
	require.NotNil(t, tree)
	v := tree.Body[0].Value
	require.Equal(t, pyast.UnaryOp, v.Kind)
	assert.Equal(t, "-", v.Op)
	require.NotNil(t, v.Value)
	assert.Equal(t, int64(1), v.Value.Lit.Int)
}

func TestParse_Comprehension(t *testing.T) {
	tree := Parse([]byte("squares = [x * x for x in nums if x > 0]\n"))
	require.NotNil(t, tree)
	comp := tree.Body[0].Value
	assert.Equal(t, pyast.ListComp, comp.Kind)
	require.Len(t, comp.Generators, 1)
	gen := comp.Generators[0]
	assert.Equal(t, pyast.Comprehension, gen.Kind)
	assert.Equal(t, "x", gen.Target.Name)
	require.Len(t, gen.Ifs, 1)
}

func TestParse_WithStatement(t *testing.T) {
	tree := Parse([]byte("with open(p) as f:\n    f.read()\n"))
	require.NotNil(t, tree)
	w := tree.Body[0]
	assert.Equal(t, pyast.With, w.Kind)
	require.Len(t, w.Items, 1)
	item := w.Items[0]
	assert.Equal(t, pyast.WithItem, item.Kind)
	require.NotNil(t, item.Target)
	assert.Equal(t, pyast.Name, item.Target.Kind)
	assert.Equal(t, "f", item.Target.Name)
	assert.Equal(t, pyast.Store, item.Target.Ctx)
}

func TestParse_WithTupleAlias(t *testing.T) {
	tree := Parse([]byte("with pair() as (a, b):\n    pass\n"))
	require.NotNil(t, tree)
	require.Len(t, tree.Body[0].Items, 1)
	target := tree.Body[0].Items[0].Target
	require.NotNil(t, target)
	assert.Equal(t, []string{"a", "b"}, pyast.NamesIn(target))
}

func TestParse_BareGeneratorArgument(t *testing.T) {
	tree := Parse([]byte("total = sum(v * v for v in xs if v)\n"))
	require.NotNil(t, tree)
	call := tree.Body[0].Value
	require.Equal(t, pyast.Call, call.Kind)
	require.Len(t, call.CallArgs, 1)

	gen := call.CallArgs[0]
	assert.Equal(t, pyast.GeneratorExp, gen.Kind)
	require.Len(t, gen.Body, 1)
	assert.Equal(t, pyast.BinOp, gen.Body[0].Kind)
	require.Len(t, gen.Generators, 1)
	assert.Equal(t, "v", gen.Generators[0].Target.Name)
	assert.Equal(t, "xs", gen.Generators[0].Iter.Name)
	require.Len(t, gen.Generators[0].Ifs, 1)
}

func TestParse_Decorators(t *testing.T) {
	src := `@functools.wraps(fn)
@staticmethod
def wrapped():
    pass
`
	tree := Parse([]byte(src))
	require.NotNil(t, tree)
	require.Len(t, tree.Body, 1)
	fn := tree.Body[0]
	assert.Equal(t, pyast.FunctionDef, fn.Kind)
	require.Len(t, fn.Decorators, 2)

	call := fn.Decorators[0]
	require.Equal(t, pyast.Call, call.Kind)
	assert.Equal(t, pyast.Attribute, call.Func.Kind)
	assert.Equal(t, "wraps", call.Func.Name)
	assert.Equal(t, "functools", call.Func.Value.Name)

	assert.Equal(t, pyast.Name, fn.Decorators[1].Kind)
	assert.Equal(t, "staticmethod", fn.Decorators[1].Name)
}

func TestParse_TupleUnpacking(t *testing.T) {
	tree := Parse([]byte("a, b = 1, 2\n"))
	require.NotNil(t, tree)
	asg := tree.Body[0]
	require.Equal(t, pyast.Assign, asg.Kind)
	require.Len(t, asg.Targets, 1)
	assert.Equal(t, []string{"a", "b"}, pyast.NamesIn(asg.Targets[0]))
}

func TestParse_LineNumbersAreOneBased(t *testing.T) {
	src := "x = 1\n\n\ny = 2\n"
	tree := Parse([]byte(src))
	require.NotNil(t, tree)
	assert.Equal(t, 1, tree.Body[0].Line)
	assert.Equal(t, 4, tree.Body[1].Line)
}
